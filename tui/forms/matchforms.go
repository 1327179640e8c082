package forms

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/user/tagging-football-cli/clock"
	"github.com/user/tagging-football-cli/event"
	"github.com/user/tagging-football-cli/formation"
	"github.com/user/tagging-football-cli/match"
	"github.com/user/tagging-football-cli/roster"
)

// stampOrder fixes the option order for player stamp sub-types.
var stampOrder = []string{
	event.StampPass, event.StampTrap, event.StampPostPlay, event.StampDribble,
	event.StampShot, event.StampCross, event.StampDefense, event.StampSave,
	event.StampPositioning, event.StampRunning,
}

// teamStampOrder fixes the option order for team stamp kinds.
var teamStampOrder = []string{
	event.TeamStampBuildUp, event.TeamStampCounter, event.TeamStampBreak, event.TeamStampDefense,
}

func playerOptions(players []roster.Player) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(players))
	for _, p := range roster.SortPlayersForDisplay(players) {
		opts = append(opts, huh.NewOption(fmt.Sprintf("#%d %s", p.JerseyNumber, p.Name), p.ID))
	}
	return opts
}

func qualityField(value *string) *huh.Select[string] {
	return huh.NewSelect[string]().
		Title("Quality").
		Options(
			huh.NewOption("Good", string(event.QualityGood)),
			huh.NewOption("Bad", string(event.QualityBad)),
		).
		Value(value)
}

// StampFormResult holds the data returned by a completed stamp form.
type StampFormResult struct {
	PlayerID string
	SubType  string
	Quality  string
	Comment  string
}

// NewStampForm creates a huh form for recording a player stamp. The header
// carries the side and current match time. The result pointer is bound to the
// form fields and will be populated on submit.
func NewStampForm(header string, players []roster.Player, result *StampFormResult) *huh.Form {
	result.Quality = string(event.QualityGood)

	stampOpts := make([]huh.Option[string], 0, len(stampOrder))
	for _, s := range stampOrder {
		stampOpts = append(stampOpts, huh.NewOption(match.StampLabels[s], s))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(header).Description("Player stamp"),

			huh.NewSelect[string]().
				Title("Player").
				Options(playerOptions(players)...).
				Value(&result.PlayerID),

			huh.NewSelect[string]().
				Title("Action").
				Options(stampOpts...).
				Value(&result.SubType),

			qualityField(&result.Quality),

			huh.NewInput().
				Title("Comment").
				Description("Optional").
				Value(&result.Comment),
		),
	).WithTheme(Theme())
}

// GoalFormResult holds the data returned by a completed goal form.
type GoalFormResult struct {
	ScorerID string
	Comment  string
}

// NewGoalForm creates a huh form for recording a goal. The scorer list has an
// extra "unknown / own goal" option which credits the goal to the side without
// attributing it to any player.
func NewGoalForm(header string, players []roster.Player, result *GoalFormResult) *huh.Form {
	opts := playerOptions(players)
	opts = append(opts, huh.NewOption("Unknown / own goal", ""))

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(header).Description("Goal"),

			huh.NewSelect[string]().
				Title("Scorer").
				Options(opts...).
				Value(&result.ScorerID),

			huh.NewInput().
				Title("Comment").
				Description("Optional").
				Value(&result.Comment),
		),
	).WithTheme(Theme())
}

// TeamStampFormResult holds the data returned by a completed team stamp form.
type TeamStampFormResult struct {
	Stamp   string
	Quality string
	Comment string
}

// NewTeamStampForm creates a huh form for recording a team-level tactical
// stamp.
func NewTeamStampForm(header string, result *TeamStampFormResult) *huh.Form {
	result.Quality = string(event.QualityGood)

	opts := make([]huh.Option[string], 0, len(teamStampOrder))
	for _, s := range teamStampOrder {
		opts = append(opts, huh.NewOption(match.TeamStampLabels[s], s))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(header).Description("Team stamp"),

			huh.NewSelect[string]().
				Title("Kind").
				Options(opts...).
				Value(&result.Stamp),

			qualityField(&result.Quality),

			huh.NewInput().
				Title("Comment").
				Description("Optional").
				Value(&result.Comment),
		),
	).WithTheme(Theme())
}

// SubstitutionFormResult holds the data returned by a completed substitution
// form.
type SubstitutionFormResult struct {
	PlayerOutID string
	PlayerInID  string
	Comment     string
}

// NewSubstitutionForm creates a huh form for recording a substitution. Out
// options come from the current lineup, in options from the bench.
func NewSubstitutionForm(header string, onPitch, bench []roster.Player, result *SubstitutionFormResult) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(header).Description("Substitution"),

			huh.NewSelect[string]().
				Title("Out").
				Options(playerOptions(onPitch)...).
				Value(&result.PlayerOutID),

			huh.NewSelect[string]().
				Title("In").
				Options(playerOptions(bench)...).
				Value(&result.PlayerInID),

			huh.NewInput().
				Title("Comment").
				Description("Optional").
				Value(&result.Comment),
		),
	).WithTheme(Theme())
}

// FormationFormResult holds the data returned by a completed formation form.
type FormationFormResult struct {
	To string
}

// NewFormationForm creates a huh form for picking the target formation.
func NewFormationForm(header, current string, result *FormationFormResult) *huh.Form {
	var opts []huh.Option[string]
	for _, name := range formation.Names() {
		if name == current {
			continue
		}
		opts = append(opts, huh.NewOption(name, name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(header).Description(fmt.Sprintf("Change formation (current: %s)", current)),

			huh.NewSelect[string]().
				Title("New formation").
				Options(opts...).
				Value(&result.To),
		),
	).WithTheme(Theme())
}

// AssignSlotFormResult holds the data returned by a completed slot assignment
// form.
type AssignSlotFormResult struct {
	Slot     int
	PlayerID string
}

// NewAssignSlotForm creates a huh form for placing a bench player on an empty
// lineup slot without a formal substitution.
func NewAssignSlotForm(header string, emptySlots []formation.Slot, bench []roster.Player, result *AssignSlotFormResult) *huh.Form {
	slotOpts := make([]huh.Option[int], 0, len(emptySlots))
	for _, s := range emptySlots {
		slotOpts = append(slotOpts, huh.NewOption(s.Label, s.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(header).Description("Place player on empty slot"),

			huh.NewSelect[int]().
				Title("Slot").
				Options(slotOpts...).
				Value(&result.Slot),

			huh.NewSelect[string]().
				Title("Player").
				Options(playerOptions(bench)...).
				Value(&result.PlayerID),
		),
	).WithTheme(Theme())
}

// EditEventFormResult holds the data returned by a completed event edit form.
type EditEventFormResult struct {
	Time    string
	Quality string
	Comment string
}

// NewEditEventForm creates a huh form for editing an existing event's time,
// comment, and (for stamps) quality. Fields are pre-filled from the result.
func NewEditEventForm(header string, withQuality bool, result *EditEventFormResult) *huh.Form {
	fields := []huh.Field{
		huh.NewNote().Title(header).Description("Edit event"),

		huh.NewInput().
			Title("Time").
			Description("MM:SS or seconds").
			Value(&result.Time).
			Validate(func(s string) error {
				if s == "" {
					return fmt.Errorf("time is required")
				}
				if _, err := clock.ParseElapsed(s); err != nil {
					return fmt.Errorf("invalid time format")
				}
				return nil
			}),
	}
	if withQuality {
		fields = append(fields, qualityField(&result.Quality))
	}
	fields = append(fields,
		huh.NewInput().
			Title("Comment").
			Description("Optional").
			Value(&result.Comment),
	)

	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(Theme())
}

// NotesFormResult holds the data returned by a completed match notes form.
type NotesFormResult struct {
	FirstHalf  string
	SecondHalf string
	FullMatch  string
}

// NewNotesForm creates a huh form for editing the spectator's match notes.
// Fields are pre-filled from the result.
func NewNotesForm(result *NotesFormResult) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("Match Notes"),

			huh.NewText().
				Title("First half").
				Value(&result.FirstHalf),

			huh.NewText().
				Title("Second half").
				Value(&result.SecondHalf),

			huh.NewText().
				Title("Full match").
				Value(&result.FullMatch),
		),
	).WithTheme(Theme())
}

// NewLineupForm creates a huh form that picks a side's starting players. The
// selection may be short of a full eleven; open slots can be filled later.
func NewLineupForm(teamName string, players []roster.Player, selected *[]string) *huh.Form {
	max := formation.SlotCount
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(fmt.Sprintf("%s — starting lineup", teamName)),

			huh.NewMultiSelect[string]().
				Title(fmt.Sprintf("Select up to %d players", max)).
				Options(playerOptions(players)...).
				Validate(func(picked []string) error {
					if len(picked) == 0 {
						return fmt.Errorf("select at least one player")
					}
					if len(picked) > max {
						return fmt.Errorf("a lineup has at most %d players", max)
					}
					return nil
				}).
				Value(selected),
		),
	).WithTheme(Theme())
}
