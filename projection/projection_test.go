package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/tagging-football-cli/event"
	"github.com/user/tagging-football-cli/formation"
)

func sub(id string, t int64, team event.Team, out, in string) event.MatchEvent {
	return &event.SubstitutionEvent{
		Base:        event.Base{ID: id, Time: t},
		Team:        team,
		Type:        event.TypeSubstitution,
		PlayerOutID: out,
		PlayerInID:  in,
	}
}

func formationChange(id string, t int64, team event.Team, from, to string, snapshot map[int]string) event.MatchEvent {
	return &event.FormationChangeEvent{
		Base:           event.Base{ID: id, Time: t},
		Team:           team,
		Type:           event.TypeFormationChange,
		FromFormation:  from,
		ToFormation:    to,
		LineupSnapshot: snapshot,
	}
}

func TestComputeLineupReplaysSubstitution(t *testing.T) {
	initial := Lineup{0: "A", 1: "B"}
	events := []event.MatchEvent{sub("s1", 1000, event.TeamHome, "A", "C")}

	got := ComputeLineup(initial, events, event.TeamHome)

	assert.Equal(t, Lineup{0: "C", 1: "B"}, got)
	assert.Equal(t, Lineup{0: "A", 1: "B"}, initial, "input lineup untouched")
}

func TestComputeLineupIsDeterministic(t *testing.T) {
	initial := Lineup{0: "A", 1: "B", 2: "C"}
	events := []event.MatchEvent{
		sub("s1", 1000, event.TeamHome, "A", "D"),
		sub("s2", 2000, event.TeamHome, "B", "E"),
	}

	first := ComputeLineup(initial, events, event.TeamHome)
	second := ComputeLineup(initial, events, event.TeamHome)
	assert.Equal(t, first, second)
}

func TestComputeLineupDeletionReverses(t *testing.T) {
	initial := Lineup{0: "A", 1: "B"}
	events := []event.MatchEvent{sub("s1", 1000, event.TeamHome, "A", "C")}

	withSub := ComputeLineup(initial, events, event.TeamHome)
	require.Equal(t, "C", withSub[0])

	// Deleting the substitution event fully restores the initial lineup.
	got := ComputeLineup(initial, nil, event.TeamHome)
	assert.Equal(t, initial, got)
}

func TestComputeLineupSortsEventsByTime(t *testing.T) {
	initial := Lineup{0: "A"}
	// Inserted in reverse chronological order; replay must still apply
	// A->B before B->C.
	events := []event.MatchEvent{
		sub("s2", 2000, event.TeamHome, "B", "C"),
		sub("s1", 1000, event.TeamHome, "A", "B"),
	}

	got := ComputeLineup(initial, events, event.TeamHome)
	assert.Equal(t, Lineup{0: "C"}, got)
}

func TestComputeLineupIgnoresOtherTeam(t *testing.T) {
	initial := Lineup{0: "A"}
	events := []event.MatchEvent{sub("s1", 1000, event.TeamAway, "A", "B")}

	got := ComputeLineup(initial, events, event.TeamHome)
	assert.Equal(t, initial, got)
}

func TestComputeLineupSkipsUnresolvedSubstitution(t *testing.T) {
	initial := Lineup{0: "A"}
	events := []event.MatchEvent{
		sub("s1", 1000, event.TeamHome, "", "B"),  // missing outgoing player
		sub("s2", 2000, event.TeamHome, "X", "C"), // outgoing player not on pitch
	}

	got := ComputeLineup(initial, events, event.TeamHome)
	assert.Equal(t, initial, got)
}

func TestComputeLineupFormationChangeInstallsSnapshot(t *testing.T) {
	initial := Lineup{0: "A", 1: "B", 5: "C"}
	events := []event.MatchEvent{
		formationChange("f1", 1000, event.TeamHome, "4-4-2", "4-3-3", map[int]string{0: "A", 2: "B", 3: "C"}),
	}

	got := ComputeLineup(initial, events, event.TeamHome)
	assert.Equal(t, Lineup{0: "A", 2: "B", 3: "C"}, got, "snapshot replaces the lineup verbatim")
}

func TestComputeLineupSubstitutionAfterFormationChange(t *testing.T) {
	initial := Lineup{0: "A", 1: "B"}
	events := []event.MatchEvent{
		formationChange("f1", 1000, event.TeamHome, "4-4-2", "4-3-3", map[int]string{0: "A", 4: "B"}),
		sub("s1", 2000, event.TeamHome, "B", "C"),
	}

	got := ComputeLineup(initial, events, event.TeamHome)
	assert.Equal(t, Lineup{0: "A", 4: "C"}, got)
}

func TestComputeLineupNoDoubleOccupancy(t *testing.T) {
	initial := Lineup{0: "A", 1: "B", 2: "C"}
	events := []event.MatchEvent{
		sub("s1", 1000, event.TeamHome, "A", "D"),
		sub("s2", 2000, event.TeamHome, "B", "E"),
		sub("s3", 3000, event.TeamHome, "D", "F"),
	}

	got := ComputeLineup(initial, events, event.TeamHome)

	seen := map[string]bool{}
	for _, id := range got {
		require.False(t, seen[id], "player %s occupies two slots", id)
		seen[id] = true
	}
}

func TestComputeFormation(t *testing.T) {
	events := []event.MatchEvent{
		formationChange("f1", 1000, event.TeamHome, "4-4-2", "4-3-3", nil),
		formationChange("f2", 2000, event.TeamHome, "4-3-3", "3-5-2", nil),
		formationChange("f3", 1500, event.TeamAway, "4-4-2", "5-3-2", nil),
	}

	assert.Equal(t, "3-5-2", ComputeFormation("4-4-2", events, event.TeamHome))
	assert.Equal(t, "5-3-2", ComputeFormation("4-4-2", events, event.TeamAway))
	assert.Equal(t, "4-4-2", ComputeFormation("4-4-2", nil, event.TeamHome))
}

func TestReassignLineupSequential(t *testing.T) {
	from := formation.Get("4-4-2")
	to := formation.Get("4-3-3")

	current := Lineup{}
	for i, slot := range from.Slots {
		current[slot.ID] = []string{"gk", "rb", "cb1", "cb2", "lb", "rm", "cm1", "cm2", "lm", "st1", "st2"}[i]
	}

	got := ReassignLineup(current, from, to)

	require.Len(t, got, formation.SlotCount)
	assert.Equal(t, "gk", got[to.Slots[0].ID], "first old occupant lands in first new slot")
	assert.Equal(t, "st2", got[to.Slots[10].ID], "last old occupant lands in last new slot")
}

func TestReassignLineupSkipsEmptySlotsAndDropsOverflow(t *testing.T) {
	from := formation.Template{Name: "three", Slots: []formation.Slot{{ID: 0}, {ID: 1}, {ID: 2}}}
	to := formation.Template{Name: "two", Slots: []formation.Slot{{ID: 10}, {ID: 11}}}

	got := ReassignLineup(Lineup{0: "A", 2: "C"}, from, to)
	assert.Equal(t, Lineup{10: "A", 11: "C"}, got)

	got = ReassignLineup(Lineup{0: "A", 1: "B", 2: "C"}, from, to)
	assert.Equal(t, Lineup{10: "A", 11: "B"}, got, "third player dropped")
}

func TestApplyOverrides(t *testing.T) {
	computed := Lineup{0: "A", 1: "B"}
	overrides := Lineup{1: "X", 2: "C", 3: ""}

	got := ApplyOverrides(computed, overrides)

	assert.Equal(t, Lineup{0: "A", 1: "B", 2: "C"}, got,
		"override fills empty slot 2 but never overwrites occupied slot 1")
	assert.Equal(t, Lineup{0: "A", 1: "B"}, computed, "computed lineup untouched")
}

// End to end: a 4-4-2 match with substitutions, a formation change to 4-3-3,
// and stamps before and after, replayed in one pass.
func TestFullReplayScenario(t *testing.T) {
	from := formation.Get("4-4-2")
	to := formation.Get("4-3-3")

	initial := Lineup{}
	for i, slot := range from.Slots {
		initial[slot.ID] = []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8", "p9", "p10", "p11"}[i]
	}

	// The formation change happens after p11 went off, so its snapshot is
	// taken from the post-substitution lineup.
	afterSub := initial.Clone()
	afterSub[afterSub.SlotOf("p11")] = "p12"
	reassigned := ReassignLineup(afterSub, from, to)
	snapshot := map[int]string{}
	for slot, id := range reassigned {
		snapshot[slot] = id
	}

	events := []event.MatchEvent{
		&event.PlayerEvent{Base: event.Base{ID: "e1", Time: 100}, Team: event.TeamHome, PlayerID: "p10", Type: event.TypeStamp, SubType: event.StampShot, Quality: event.QualityGood},
		sub("e2", 500, event.TeamHome, "p11", "p12"),
		formationChange("e3", 1000, event.TeamHome, "4-4-2", "4-3-3", snapshot),
		sub("e4", 2000, event.TeamHome, "p10", "p13"),
		&event.PlayerEvent{Base: event.Base{ID: "e5", Time: 2500}, Team: event.TeamHome, PlayerID: "p13", Type: event.TypeGoal},
	}

	lineup := ComputeLineup(initial, events, event.TeamHome)

	require.Len(t, lineup, formation.SlotCount)
	ids := lineup.PlayerIDs()
	assert.True(t, ids["p13"], "late substitute on pitch")
	assert.False(t, ids["p10"], "substituted player off pitch")
	assert.True(t, ids["p12"], "first substitute survives the formation change")
	assert.False(t, ids["p11"])

	assert.Equal(t, "4-3-3", ComputeFormation("4-4-2", events, event.TeamHome))
	assert.Equal(t, 1, CountGoals(events, event.TeamHome))
	assert.Equal(t, 0, CountGoals(events, event.TeamAway))
}
