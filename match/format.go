package match

import (
	"fmt"

	"github.com/user/tagging-football-cli/event"
	"github.com/user/tagging-football-cli/roster"
)

// StampLabels maps player stamp sub-types to display names.
var StampLabels = map[string]string{
	event.StampPass:        "Pass",
	event.StampTrap:        "Trap",
	event.StampPostPlay:    "Post Play",
	event.StampDribble:     "Dribble",
	event.StampShot:        "Shot",
	event.StampCross:       "Cross",
	event.StampDefense:     "Defense",
	event.StampSave:        "Save",
	event.StampPositioning: "Positioning",
	event.StampRunning:     "Running",
}

// TeamStampLabels maps team stamp kinds to display names.
var TeamStampLabels = map[string]string{
	event.TeamStampBuildUp: "Build-up",
	event.TeamStampCounter: "Counter",
	event.TeamStampBreak:   "Break",
	event.TeamStampDefense: "Defense",
}

// FormatEvent renders one event for the event log:
//   - player event:    "#10 Yamada — Pass"
//   - goal:            "#9 Sato — GOAL"
//   - substitution:    "#8 Tanaka ↔ #14 Suzuki" (out ↔ in)
//   - formation:       "Formation changed: 4-4-2 → 4-3-3"
//   - team stamp:      its label
func FormatEvent(ev event.MatchEvent, dir roster.Directory) string {
	switch e := ev.(type) {
	case *event.FormationChangeEvent:
		return fmt.Sprintf("Formation changed: %s → %s", e.FromFormation, e.ToFormation)

	case *event.TeamEvent:
		if label, ok := TeamStampLabels[e.Stamp]; ok {
			return label
		}
		return e.Stamp

	case *event.SubstitutionEvent:
		if e.PlayerInID != "" && e.PlayerOutID != "" {
			outNum, outName := playerParts(dir, e.PlayerOutID)
			inNum, inName := playerParts(dir, e.PlayerInID)
			return fmt.Sprintf("#%s %s ↔ #%s %s", outNum, outName, inNum, inName)
		}
		if e.Comment != "" {
			return e.Comment
		}
		return "Substitution"

	case *event.PlayerEvent:
		part := playerPart(dir, e)
		if e.Type == event.TypeGoal {
			return part + " — GOAL"
		}
		label := e.Type
		if e.Type == event.TypeStamp && e.SubType != "" {
			label = e.SubType
		}
		if l, ok := StampLabels[label]; ok {
			label = l
		}
		return part + " — " + label
	}
	return ""
}

func playerParts(dir roster.Directory, playerID string) (num, name string) {
	if dir != nil {
		if p, ok := dir.PlayerByID(playerID); ok {
			return fmt.Sprintf("%d", p.JerseyNumber), p.Name
		}
	}
	return "?", "?"
}

func playerPart(dir roster.Directory, e *event.PlayerEvent) string {
	number := e.PlayerNumber
	name := ""
	if dir != nil && e.PlayerID != "" {
		if p, ok := dir.PlayerByID(e.PlayerID); ok {
			number = p.JerseyNumber
			name = p.Name
		}
	}
	switch {
	case number > 0 && name != "":
		return fmt.Sprintf("#%d %s", number, name)
	case name != "":
		return name
	case number > 0:
		return fmt.Sprintf("#%d", number)
	}
	return "-"
}
