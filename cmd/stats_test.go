package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/tagging-football-cli/event"
	"github.com/user/tagging-football-cli/match"
	"github.com/user/tagging-football-cli/projection"
	"github.com/user/tagging-football-cli/roster"
)

func statsRecord() match.Record {
	return match.Record{
		ID:       "rec-1",
		Date:     time.Date(2026, 5, 3, 15, 0, 0, 0, time.UTC),
		HomeTeam: "FC Azul",
		AwayTeam: "Verde United",
		Score:    match.Score{Home: 1},
		Events: []event.MatchEvent{
			&event.PlayerEvent{
				Base:     event.Base{ID: "e1", Time: 60_000},
				Team:     event.TeamHome,
				PlayerID: "p1",
				Type:     event.TypeStamp,
				SubType:  event.StampPass,
				Quality:  event.QualityGood,
			},
			&event.PlayerEvent{
				Base:     event.Base{ID: "e2", Time: 90_000},
				Team:     event.TeamHome,
				PlayerID: "p1",
				Type:     event.TypeStamp,
				SubType:  event.StampShot,
				Quality:  event.QualityBad,
			},
			&event.PlayerEvent{
				Base:     event.Base{ID: "e3", Time: 120_000},
				Team:     event.TeamAway,
				PlayerID: "p2",
				Type:     event.TypeStamp,
				SubType:  event.StampDefense,
				Quality:  event.QualityGood,
			},
			&event.PlayerEvent{
				Base:     event.Base{ID: "e4", Time: 150_000},
				Team:     event.TeamHome,
				PlayerID: "p1",
				Type:     event.TypeGoal,
			},
		},
	}
}

func TestWriteStatsTalliesAndPlayers(t *testing.T) {
	rec := statsRecord()
	rec.PlayerSummary = projection.PlayerSummary{
		"p1": {Name: "Aoki", Counts: map[string]int{"pass": 1, "shot": 1, "goal": 1}},
		"p2": {Name: "Midori", Counts: map[string]int{"defense": 1}},
	}

	var buf bytes.Buffer
	require.NoError(t, writeStats(&buf, rec))
	out := buf.String()

	assert.Contains(t, out, "FC Azul 1 - 0 Verde United (2026-05-03)")
	// Goals never count toward the stamp tally.
	assert.Regexp(t, `FC Azul\s+1\s+1`, out)
	assert.Regexp(t, `Verde United\s+1\s+0`, out)
	assert.Regexp(t, `Aoki\s+goal 1, pass 1, shot 1`, out)
	assert.Regexp(t, `Midori\s+defense 1`, out)
}

func TestWriteStatsRecomputesMissingSummary(t *testing.T) {
	rec := statsRecord()
	rec.Snapshot = &match.Snapshot{
		HomePlayers: []roster.Player{{ID: "p1", Name: "Aoki", JerseyNumber: 10}},
		AwayPlayers: []roster.Player{{ID: "p2", Name: "Midori", JerseyNumber: 4}},
	}

	var buf bytes.Buffer
	require.NoError(t, writeStats(&buf, rec))
	out := buf.String()

	assert.Contains(t, out, "Aoki")
	assert.Contains(t, out, "Midori")
	assert.Regexp(t, `Aoki\s+goal 1, pass 1, shot 1`, out)
}

func TestWriteStatsNoPlayerEvents(t *testing.T) {
	rec := match.Record{
		ID:       "rec-2",
		Date:     time.Date(2026, 5, 3, 15, 0, 0, 0, time.UTC),
		HomeTeam: "FC Azul",
		AwayTeam: "Verde United",
	}

	var buf bytes.Buffer
	require.NoError(t, writeStats(&buf, rec))
	assert.Contains(t, buf.String(), "No player-attributed events.")
}
