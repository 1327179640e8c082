package projection

import "github.com/user/tagging-football-cli/event"

// TeamStampCounts is the good/bad tally for one side.
type TeamStampCounts struct {
	Good int `json:"good"`
	Bad  int `json:"bad"`
}

// TeamStats holds per-side stamp tallies.
type TeamStats struct {
	Home TeamStampCounts `json:"home"`
	Away TeamStampCounts `json:"away"`
}

// isStampEvent reports whether ev counts toward the team good/bad tally:
// player stamps and team stamps, but not goals, substitutions, or formation
// changes.
func isStampEvent(ev event.MatchEvent) bool {
	if event.IsTeamEvent(ev) {
		return true
	}
	if pe, ok := ev.(*event.PlayerEvent); ok {
		return pe.Type != event.TypeGoal
	}
	return false
}

// ComputeTeamStats tallies stamp quality per side. Quality defaults to good
// when missing. Player events without a resolvable player id still count
// here, unlike in ComputePlayerSummary.
func ComputeTeamStats(events []event.MatchEvent) TeamStats {
	var stats TeamStats
	for _, ev := range events {
		if !isStampEvent(ev) {
			continue
		}

		bad := false
		switch e := ev.(type) {
		case *event.PlayerEvent:
			bad = e.Quality == event.QualityBad
		case *event.TeamEvent:
			bad = e.Quality == event.QualityBad
		}

		side := &stats.Home
		if ev.Side() == event.TeamAway {
			side = &stats.Away
		}
		if bad {
			side.Bad++
		} else {
			side.Good++
		}
	}
	return stats
}

// PlayerStats is the per-player counter set in a match summary.
type PlayerStats struct {
	Name   string         `json:"name,omitempty"`
	Counts map[string]int `json:"counts"`
}

// PlayerSummary maps player id to that player's stat counters.
type PlayerSummary map[string]PlayerStats

// NameResolver resolves a player id to a display name. May be nil.
type NameResolver func(playerID string) string

// ComputePlayerSummary folds player-attributable events into per-player
// counters keyed by stamp sub-type, with goals under "goal". Events without
// a resolvable player id are excluded entirely, never attributed to a
// placeholder.
func ComputePlayerSummary(events []event.MatchEvent, resolve NameResolver) PlayerSummary {
	summary := PlayerSummary{}

	for _, ev := range events {
		pe, ok := ev.(*event.PlayerEvent)
		if !ok || pe.PlayerID == "" {
			continue
		}

		stats, exists := summary[pe.PlayerID]
		if !exists {
			stats = PlayerStats{Counts: map[string]int{}}
			if resolve != nil {
				stats.Name = resolve(pe.PlayerID)
			}
		}

		key := "goal"
		if pe.Type != event.TypeGoal {
			key = pe.SubType
			if key == "" {
				key = pe.Type
			}
		}
		stats.Counts[key]++
		summary[pe.PlayerID] = stats
	}

	return summary
}

// CountGoals returns the number of goal events recorded for the given side.
func CountGoals(events []event.MatchEvent, team event.Team) int {
	n := 0
	for _, ev := range events {
		if pe, ok := ev.(*event.PlayerEvent); ok && pe.Team == team && pe.Type == event.TypeGoal {
			n++
		}
	}
	return n
}
