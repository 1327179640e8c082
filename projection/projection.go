// Package projection derives current lineup, formation, and stat summaries
// from an initial state plus the event log. Events are editable and
// deletable, so every function here replays from scratch: pure input to
// output, no incremental patching, no hidden state.
package projection

import (
	"go.uber.org/zap"

	"github.com/user/tagging-football-cli/event"
	"github.com/user/tagging-football-cli/formation"
	"github.com/user/tagging-football-cli/log"
)

// Lineup maps formation slot id to player id for one side.
type Lineup map[int]string

// Clone returns a copy of the lineup.
func (l Lineup) Clone() Lineup {
	out := make(Lineup, len(l))
	for slot, id := range l {
		out[slot] = id
	}
	return out
}

// SlotOf returns the slot currently holding playerID, or -1.
func (l Lineup) SlotOf(playerID string) int {
	for slot, id := range l {
		if id == playerID {
			return slot
		}
	}
	return -1
}

// PlayerIDs returns the set of player ids currently in the lineup.
func (l Lineup) PlayerIDs() map[string]bool {
	out := make(map[string]bool, len(l))
	for _, id := range l {
		out[id] = true
	}
	return out
}

// ComputeLineup replays the team's substitutions and formation changes over
// the initial lineup and returns the current slot-to-player mapping.
//
// Substitutions replace the slot occupied by the outgoing player; a
// substitution whose outgoing player is not on the pitch (an edited or
// inconsistent event) is logged and skipped, never fatal. A formation
// change installs its lineup snapshot verbatim.
func ComputeLineup(initial Lineup, events []event.MatchEvent, team event.Team) Lineup {
	lineup := initial.Clone()

	for _, ev := range replayEvents(events, team) {
		switch e := ev.(type) {
		case *event.SubstitutionEvent:
			if e.PlayerOutID == "" || e.PlayerInID == "" {
				log.Debug("skipping unresolved substitution",
					zap.String("event_id", e.ID),
					zap.String("team", string(team)),
				)
				continue
			}
			slot := lineup.SlotOf(e.PlayerOutID)
			if slot < 0 {
				log.Warn("substitution references player not on pitch",
					zap.String("event_id", e.ID),
					zap.String("player_out", e.PlayerOutID),
				)
				continue
			}
			lineup[slot] = e.PlayerInID
		case *event.FormationChangeEvent:
			lineup = make(Lineup, len(e.LineupSnapshot))
			for slot, id := range e.LineupSnapshot {
				lineup[slot] = id
			}
		}
	}

	return lineup
}

// ComputeFormation returns the formation in effect after replaying the
// team's formation changes: the target of the last one, or the initial
// formation if there are none.
func ComputeFormation(initialFormation string, events []event.MatchEvent, team event.Team) string {
	current := initialFormation
	for _, ev := range replayEvents(events, team) {
		if fc, ok := ev.(*event.FormationChangeEvent); ok {
			current = fc.ToFormation
		}
	}
	return current
}

// replayEvents filters to the team's substitution and formation-change
// events and returns them sorted by time. The input slice is not mutated.
func replayEvents(events []event.MatchEvent, team event.Team) []event.MatchEvent {
	var filtered []event.MatchEvent
	for _, ev := range events {
		if ev.Side() != team {
			continue
		}
		if event.IsSubstitutionEvent(ev) || event.IsFormationChangeEvent(ev) {
			filtered = append(filtered, ev)
		}
	}
	event.SortByTime(filtered)
	return filtered
}

// ReassignLineup maps the current on-pitch players into a new formation
// template. Players are read out in the OLD template's slot order (empty
// slots skipped) and assigned sequentially into the NEW template's slots;
// no positional-role matching is attempted, and overflow players are
// dropped when the new template has fewer slots. This is an interactive
// helper for the formation-change flow, not part of replay; the user can
// correct the mapping before confirming.
func ReassignLineup(current Lineup, fromTemplate, toTemplate formation.Template) Lineup {
	var ordered []string
	for _, slot := range fromTemplate.Slots {
		if id, ok := current[slot.ID]; ok && id != "" {
			ordered = append(ordered, id)
		}
	}

	out := make(Lineup, len(ordered))
	for i, slot := range toTemplate.Slots {
		if i >= len(ordered) {
			break
		}
		out[slot.ID] = ordered[i]
	}
	return out
}

// ApplyOverrides merges ad-hoc slot assignments (manual "place player on
// empty slot" actions outside a formal substitution) on top of a computed
// lineup. An override never overwrites a slot the projection already
// filled, so bench tinkering cannot corrupt the event-sourced history.
func ApplyOverrides(computed Lineup, overrides Lineup) Lineup {
	out := computed.Clone()
	for slot, id := range overrides {
		if _, occupied := out[slot]; occupied {
			continue
		}
		if id != "" {
			out[slot] = id
		}
	}
	return out
}
