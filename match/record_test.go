package match

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/tagging-football-cli/clock"
	"github.com/user/tagging-football-cli/event"
	"github.com/user/tagging-football-cli/projection"
	"github.com/user/tagging-football-cli/roster"
)

func TestRecordJSONRoundTrip(t *testing.T) {
	snap := Snapshot{
		MatchID:       "m1",
		HomeTeam:      roster.Team{ID: "t1", Name: "Blues", Color: "blue"},
		AwayTeam:      roster.Team{ID: "t2", Name: "Reds"},
		HomePlayers:   []roster.Player{{ID: "h1", TeamID: "t1", Name: "Ito", JerseyNumber: 1, Position: "GK"}},
		HomeLineup:    projection.Lineup{0: "h1"},
		AwayLineup:    projection.Lineup{},
		HomeFormation: "4-4-2",
		AwayFormation: "4-3-3",
		Clock:         clock.State{Phase: clock.SecondHalf, ElapsedMs: 2700000},
	}
	rec := Record{
		ID:       "r1",
		Date:     time.Date(2026, 4, 12, 14, 0, 0, 0, time.UTC),
		HomeTeam: "Blues",
		AwayTeam: "Reds",
		Score:    Score{Home: 1, Away: 0},
		Events: []event.MatchEvent{
			&event.PlayerEvent{Base: event.Base{ID: "e1", Time: 100}, Team: event.TeamHome, PlayerID: "h1", Type: event.TypeGoal},
			&event.SubstitutionEvent{Base: event.Base{ID: "e2", Time: 200}, Team: event.TeamAway, Type: event.TypeSubstitution, PlayerOutID: "a", PlayerInID: "b"},
		},
		PlayerSummary: projection.PlayerSummary{"h1": {Name: "Ito", Counts: map[string]int{"goal": 1}}},
		Notes:         Notes{FullMatch: "comfortable win"},
	}
	rec.Snapshot = &snap

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	var got Record
	require.NoError(t, json.Unmarshal(data, &got))

	// Events come back as their concrete variants, not generic maps.
	require.Len(t, got.Events, 2)
	assert.True(t, event.IsPlayerEvent(got.Events[0]))
	assert.True(t, event.IsSubstitutionEvent(got.Events[1]))
	assert.Equal(t, rec.Score, got.Score)
	assert.Equal(t, rec.Notes, got.Notes)

	require.NotNil(t, got.Snapshot)
	assert.Equal(t, snap.HomeLineup, got.Snapshot.HomeLineup)
	assert.Equal(t, clock.SecondHalf, got.Snapshot.Clock.Phase)
}

func TestSnapshotUnmarshalEmptyEvents(t *testing.T) {
	var snap Snapshot
	require.NoError(t, json.Unmarshal([]byte(`{"matchId":"m1"}`), &snap))
	assert.NotNil(t, snap.Events)
	assert.Empty(t, snap.Events)
}
