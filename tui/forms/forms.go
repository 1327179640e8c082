// Package forms provides huh-based form components for the TUI.
package forms

import (
	"github.com/charmbracelet/huh"
)

// NewConfirmDeleteForm creates a huh confirm form asking whether to delete
// the named event. The result pointer is bound to the confirm field value.
func NewConfirmDeleteForm(label string, confirm *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Delete event?").
				Description(label).
				Affirmative("Yes, delete").
				Negative("No, keep it").
				Value(confirm),
		),
	).WithTheme(Theme())
}

// NewConfirmFinishForm creates a huh confirm form asking whether to finish
// the match and save it to the permanent record.
func NewConfirmFinishForm(confirm *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Finish match?").
				Description("The match will be saved to the permanent record and the draft cleared.").
				Affirmative("Save and finish").
				Negative("Keep recording").
				Value(confirm),
		),
	).WithTheme(Theme())
}

// NewConfirmResetClockForm creates a huh confirm form guarding the clock
// reset.
func NewConfirmResetClockForm(confirm *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Reset clock?").
				Description("Elapsed time goes back to 00:00. Recorded events keep their times.").
				Affirmative("Yes, reset").
				Negative("No, go back").
				Value(confirm),
		),
	).WithTheme(Theme())
}

// NewResumeDraftForm creates a huh confirm form asking whether to resume an
// unfinished match found in the draft slot.
func NewResumeDraftForm(description string, resume *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Unfinished match found").
				Description(description).
				Affirmative("Resume it").
				Negative("Discard and start fresh").
				Value(resume),
		),
	).WithTheme(Theme())
}
