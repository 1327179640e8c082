package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortPlayersForDisplay(t *testing.T) {
	players := []Player{
		{ID: "p1", Name: "Striker", JerseyNumber: 9, Position: "FW"},
		{ID: "p2", Name: "Keeper", JerseyNumber: 1, Position: "GK"},
		{ID: "p3", Name: "LateMid", JerseyNumber: 14, Position: "MF"},
		{ID: "p4", Name: "EarlyMid", JerseyNumber: 6, Position: "CM"},
		{ID: "p5", Name: "Back", JerseyNumber: 4, Position: "CB"},
		{ID: "p6", Name: "Mystery", JerseyNumber: 0, Position: ""},
	}

	got := SortPlayersForDisplay(players)

	ids := make([]string, len(got))
	for i, p := range got {
		ids[i] = p.ID
	}
	assert.Equal(t, []string{"p2", "p5", "p4", "p3", "p1", "p6"}, ids,
		"GK, DF, MF by jersey, FW, then unknowns last")
	assert.Equal(t, "p1", players[0].ID, "input slice untouched")
}

func TestMapDirectory(t *testing.T) {
	dir := NewMapDirectory([]Player{{ID: "p1", Name: "Ito"}})

	p, ok := dir.PlayerByID("p1")
	assert.True(t, ok)
	assert.Equal(t, "Ito", p.Name)

	_, ok = dir.PlayerByID("nope")
	assert.False(t, ok)
}
