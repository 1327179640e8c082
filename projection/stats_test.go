package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/tagging-football-cli/event"
)

func stamp(id string, team event.Team, playerID, subType string, quality event.Quality) event.MatchEvent {
	return &event.PlayerEvent{
		Base:     event.Base{ID: id, Time: 0},
		Team:     team,
		PlayerID: playerID,
		Type:     event.TypeStamp,
		SubType:  subType,
		Quality:  quality,
	}
}

func TestComputeTeamStats(t *testing.T) {
	events := []event.MatchEvent{
		stamp("e1", event.TeamHome, "p1", event.StampPass, event.QualityGood),
		stamp("e2", event.TeamHome, "p1", event.StampShot, event.QualityBad),
		stamp("e3", event.TeamAway, "p9", event.StampDefense, event.QualityGood),
		&event.TeamEvent{Base: event.Base{ID: "e4"}, Team: event.TeamAway, Type: event.TypeTeam, Stamp: event.TeamStampCounter, Quality: event.QualityBad},
	}

	stats := ComputeTeamStats(events)

	assert.Equal(t, TeamStampCounts{Good: 1, Bad: 1}, stats.Home)
	assert.Equal(t, TeamStampCounts{Good: 1, Bad: 1}, stats.Away)
}

func TestComputeTeamStatsExcludesNonStamps(t *testing.T) {
	events := []event.MatchEvent{
		&event.PlayerEvent{Base: event.Base{ID: "g1"}, Team: event.TeamHome, PlayerID: "p1", Type: event.TypeGoal},
		&event.SubstitutionEvent{Base: event.Base{ID: "s1"}, Team: event.TeamHome, Type: event.TypeSubstitution, PlayerOutID: "a", PlayerInID: "b"},
		&event.FormationChangeEvent{Base: event.Base{ID: "f1"}, Team: event.TeamHome, Type: event.TypeFormationChange},
	}

	stats := ComputeTeamStats(events)
	assert.Equal(t, TeamStats{}, stats, "goals, subs, and formation changes never count")
}

func TestComputeTeamStatsDefaultsMissingQualityToGood(t *testing.T) {
	events := []event.MatchEvent{
		stamp("e1", event.TeamHome, "", event.StampPass, ""), // no player id, no quality
	}

	stats := ComputeTeamStats(events)
	assert.Equal(t, TeamStampCounts{Good: 1}, stats.Home, "playerless stamp still counts for the team")
}

func TestComputePlayerSummary(t *testing.T) {
	events := []event.MatchEvent{
		stamp("e1", event.TeamHome, "p1", event.StampPass, event.QualityGood),
		stamp("e2", event.TeamHome, "p1", event.StampPass, event.QualityBad),
		stamp("e3", event.TeamHome, "p2", event.StampShot, event.QualityGood),
		&event.PlayerEvent{Base: event.Base{ID: "g1"}, Team: event.TeamHome, PlayerID: "p2", Type: event.TypeGoal},
		stamp("e4", event.TeamHome, "", event.StampTrap, event.QualityGood), // unattributed
	}

	names := map[string]string{"p1": "Alex", "p2": "Sam"}
	summary := ComputePlayerSummary(events, func(id string) string { return names[id] })

	require.Len(t, summary, 2, "unattributed events never create a summary entry")

	p1 := summary["p1"]
	assert.Equal(t, "Alex", p1.Name)
	assert.Equal(t, 2, p1.Counts[event.StampPass], "quality does not split the count")

	p2 := summary["p2"]
	assert.Equal(t, 1, p2.Counts[event.StampShot])
	assert.Equal(t, 1, p2.Counts["goal"])
}

func TestComputePlayerSummaryNilResolver(t *testing.T) {
	events := []event.MatchEvent{stamp("e1", event.TeamHome, "p1", event.StampPass, event.QualityGood)}

	summary := ComputePlayerSummary(events, nil)
	require.Contains(t, summary, "p1")
	assert.Empty(t, summary["p1"].Name)
}

func TestCountGoals(t *testing.T) {
	events := []event.MatchEvent{
		&event.PlayerEvent{Base: event.Base{ID: "g1"}, Team: event.TeamHome, PlayerID: "p1", Type: event.TypeGoal},
		&event.PlayerEvent{Base: event.Base{ID: "g2"}, Team: event.TeamHome, PlayerID: "p2", Type: event.TypeGoal},
		&event.PlayerEvent{Base: event.Base{ID: "g3"}, Team: event.TeamAway, Type: event.TypeGoal}, // own-goal credit, no player
		stamp("e1", event.TeamHome, "p1", event.StampShot, event.QualityGood),
	}

	assert.Equal(t, 2, CountGoals(events, event.TeamHome))
	assert.Equal(t, 1, CountGoals(events, event.TeamAway))
}
