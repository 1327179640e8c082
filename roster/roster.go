// Package roster holds team and player directory types. The recording core
// reads roster data for display resolution; it never mutates it.
package roster

import (
	"sort"
	"strings"
)

// Team is one side's directory entry. Color is the per-match display color.
type Team struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// Player is a squad member.
type Player struct {
	ID           string `json:"id"`
	TeamID       string `json:"teamId"`
	Name         string `json:"name"`
	JerseyNumber int    `json:"jerseyNumber"`
	Position     string `json:"position"`
}

// Directory resolves player ids to directory entries, read-only.
type Directory interface {
	PlayerByID(id string) (Player, bool)
}

// MapDirectory is an in-memory Directory backed by a player list.
type MapDirectory map[string]Player

// NewMapDirectory indexes players by id.
func NewMapDirectory(players []Player) MapDirectory {
	m := make(MapDirectory, len(players))
	for _, p := range players {
		m[p.ID] = p
	}
	return m
}

func (m MapDirectory) PlayerByID(id string) (Player, bool) {
	p, ok := m[id]
	return p, ok
}

const (
	unknownRank   = 9
	missingJersey = 999
)

// positionRank maps a position string to display order: GK, DF, MF, FW,
// then unknown. Detailed positions (CB, DMF, ST, ...) rank with their line.
func positionRank(pos string) int {
	s := strings.ToUpper(strings.TrimSpace(pos))
	switch {
	case s == "":
		return unknownRank
	case strings.HasPrefix(s, "GK"):
		return 0
	case strings.HasPrefix(s, "D"), strings.Contains(s, "CB"), strings.Contains(s, "LB"),
		strings.Contains(s, "RB"), strings.Contains(s, "WB"):
		return 1
	case strings.HasPrefix(s, "M"), strings.Contains(s, "DM"), strings.Contains(s, "CM"),
		strings.Contains(s, "AM"):
		return 2
	case strings.HasPrefix(s, "F"), strings.Contains(s, "ST"), strings.Contains(s, "CF"):
		return 3
	}
	return unknownRank
}

// SortPlayersForDisplay sorts players by position group (GK, DF, MF, FW,
// unknown) then jersey number ascending. Returns a new slice.
func SortPlayersForDisplay(players []Player) []Player {
	out := make([]Player, len(players))
	copy(out, players)
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := positionRank(out[i].Position), positionRank(out[j].Position)
		if ri != rj {
			return ri < rj
		}
		ji, jj := out[i].JerseyNumber, out[j].JerseyNumber
		if ji == 0 {
			ji = missingJersey
		}
		if jj == 0 {
			jj = missingJersey
		}
		return ji < jj
	})
	return out
}
