// Package tui implements the live match recording screen: clock header,
// pitch view, event log, and stat panel, with huh forms for event entry.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/user/tagging-football-cli/clock"
	"github.com/user/tagging-football-cli/event"
	"github.com/user/tagging-football-cli/formation"
	"github.com/user/tagging-football-cli/match"
	"github.com/user/tagging-football-cli/roster"
	"github.com/user/tagging-football-cli/tui/components"
	"github.com/user/tagging-football-cli/tui/forms"
	"github.com/user/tagging-football-cli/tui/styles"
)

const (
	// tickInterval drives the clock display and the draft flush.
	tickInterval = 200 * time.Millisecond
	// resultDisplayDuration is how long to show action results.
	resultDisplayDuration = 3 * time.Second
)

// tickMsg is sent on every tick interval to refresh the clock display.
type tickMsg time.Time

// clearResultMsg is sent to clear the action result message.
type clearResultMsg struct{}

// formKind identifies which form is active and how to apply its result.
type formKind int

const (
	formNone formKind = iota
	formStamp
	formGoal
	formTeamStamp
	formSubstitution
	formFormation
	formAssignSlot
	formEditEvent
	formNotes
	formConfirmDelete
	formConfirmFinish
	formConfirmReset
)

// Model is the Bubbletea model for the recording screen.
type Model struct {
	session *match.Session

	// activeTeam is the side new events are recorded against.
	activeTeam event.Team

	eventList components.EventListState

	width, height int
	showHelp      bool
	quitting      bool

	// result is the transient action feedback line.
	result      string
	resultIsErr bool

	// Active form state. Exactly one form at a time; the bound result
	// struct matches the kind.
	form     *huh.Form
	formKind formKind

	stampResult     forms.StampFormResult
	goalResult      forms.GoalFormResult
	teamStampResult forms.TeamStampFormResult
	subResult       forms.SubstitutionFormResult
	formationResult forms.FormationFormResult
	assignResult    forms.AssignSlotFormResult
	editResult      forms.EditEventFormResult
	notesResult     forms.NotesFormResult
	confirm         bool

	// editTargetID is the event being edited or deleted.
	editTargetID string
}

// NewModel creates the recording screen model for a session.
func NewModel(session *match.Session) *Model {
	m := &Model{
		session:    session,
		activeTeam: event.TeamHome,
	}
	m.refreshEvents()
	return m
}

// Init starts the ticker.
func (m *Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func clearResultCmd() tea.Cmd {
	return tea.Tick(resultDisplayDuration, func(time.Time) tea.Msg {
		return clearResultMsg{}
	})
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		// The tick is the draft-debounce heartbeat: pending changes get
		// persisted here, not on a timer goroutine.
		m.session.FlushDraft()
		return m, tickCmd()

	case clearResultMsg:
		m.result = ""
		m.resultIsErr = false
		return m, nil
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey handles normal-mode key input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "?":
		m.showHelp = true
		return m, nil

	case "q", "ctrl+c":
		m.session.FlushDraftNow()
		m.quitting = true
		return m, tea.Quit

	case " ":
		if m.session.Clock().Running() {
			m.session.PauseClock()
			return m.showResult("Clock paused", false)
		}
		m.session.StartClock()
		return m.showResult("Clock running", false)

	case "p", "P":
		m.session.TogglePhase()
		return m.showResult(m.session.Clock().Phase().Label(), false)

	case "tab":
		if m.activeTeam == event.TeamHome {
			m.activeTeam = event.TeamAway
		} else {
			m.activeTeam = event.TeamHome
		}
		return m, nil

	case "k", "up":
		m.eventList.MoveUp()
		return m, nil

	case "j", "down":
		m.eventList.MoveDown()
		return m, nil

	case "s":
		m.stampResult = forms.StampFormResult{}
		m.openForm(formStamp, forms.NewStampForm(m.header(), m.session.Players(m.activeTeam), &m.stampResult))
		return m, m.form.Init()

	case "g":
		m.goalResult = forms.GoalFormResult{}
		m.openForm(formGoal, forms.NewGoalForm(m.header(), m.session.Players(m.activeTeam), &m.goalResult))
		return m, m.form.Init()

	case "t":
		m.teamStampResult = forms.TeamStampFormResult{}
		m.openForm(formTeamStamp, forms.NewTeamStampForm(m.header(), &m.teamStampResult))
		return m, m.form.Init()

	case "u":
		onPitch := m.lineupPlayers()
		bench := m.session.Bench(m.activeTeam)
		if len(bench) == 0 {
			return m.showResult("No bench players available", true)
		}
		m.subResult = forms.SubstitutionFormResult{}
		m.openForm(formSubstitution, forms.NewSubstitutionForm(m.header(), onPitch, bench, &m.subResult))
		return m, m.form.Init()

	case "f":
		m.formationResult = forms.FormationFormResult{}
		current := m.session.Formation(m.activeTeam)
		m.openForm(formFormation, forms.NewFormationForm(m.header(), current, &m.formationResult))
		return m, m.form.Init()

	case "a":
		empty := m.emptySlots()
		bench := m.session.Bench(m.activeTeam)
		if len(empty) == 0 || len(bench) == 0 {
			return m.showResult("No empty slot or no bench player", true)
		}
		m.assignResult = forms.AssignSlotFormResult{}
		m.openForm(formAssignSlot, forms.NewAssignSlotForm(m.header(), empty, bench, &m.assignResult))
		return m, m.form.Init()

	case "n":
		notes := m.session.Notes()
		m.notesResult = forms.NotesFormResult{
			FirstHalf:  notes.FirstHalf,
			SecondHalf: notes.SecondHalf,
			FullMatch:  notes.FullMatch,
		}
		m.openForm(formNotes, forms.NewNotesForm(&m.notesResult))
		return m, m.form.Init()

	case "e":
		return m.openEditForm()

	case "x":
		item := m.eventList.Selected()
		if item == nil {
			return m.showResult("No event selected", true)
		}
		m.editTargetID = item.ID
		m.confirm = false
		m.openForm(formConfirmDelete, forms.NewConfirmDeleteForm(item.Label, &m.confirm))
		return m, m.form.Init()

	case "r":
		m.confirm = false
		m.openForm(formConfirmReset, forms.NewConfirmResetClockForm(&m.confirm))
		return m, m.form.Init()

	case "S":
		m.confirm = false
		m.openForm(formConfirmFinish, forms.NewConfirmFinishForm(&m.confirm))
		return m, m.form.Init()
	}

	return m, nil
}

// openEditForm opens the edit form pre-filled from the selected event.
func (m *Model) openEditForm() (tea.Model, tea.Cmd) {
	item := m.eventList.Selected()
	if item == nil {
		return m.showResult("No event selected", true)
	}
	m.editTargetID = item.ID

	m.editResult = forms.EditEventFormResult{
		Time:    clock.FormatPlain(time.Duration(item.TimeMs) * time.Millisecond),
		Quality: string(event.QualityGood),
	}
	if item.Bad {
		m.editResult.Quality = string(event.QualityBad)
	}
	m.openForm(formEditEvent, forms.NewEditEventForm(m.header(), item.IsStamp, &m.editResult))
	return m, m.form.Init()
}

// updateForm forwards messages to the active form and applies its result on
// completion.
func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.form.Update(msg)
	if f, ok := next.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		kind := m.formKind
		m.closeForm()
		return m.applyForm(kind)
	case huh.StateAborted:
		m.closeForm()
		return m, nil
	}

	return m, cmd
}

// applyForm turns a completed form into a session mutation.
func (m *Model) applyForm(kind formKind) (tea.Model, tea.Cmd) {
	switch kind {
	case formStamp:
		r := m.stampResult
		ev := m.session.RecordStamp(m.activeTeam, r.PlayerID, r.SubType, event.Quality(r.Quality), r.Comment)
		m.refreshEvents()
		return m.showResult("Recorded: "+match.FormatEvent(ev, m.session), false)

	case formGoal:
		r := m.goalResult
		m.session.RecordGoal(m.activeTeam, r.ScorerID, r.Comment)
		m.refreshEvents()
		score := m.session.Score()
		return m.showResult(fmt.Sprintf("GOAL! %d - %d", score.Home, score.Away), false)

	case formTeamStamp:
		r := m.teamStampResult
		ev := m.session.RecordTeamStamp(m.activeTeam, r.Stamp, event.Quality(r.Quality), r.Comment)
		m.refreshEvents()
		return m.showResult("Recorded: "+match.FormatEvent(ev, m.session), false)

	case formSubstitution:
		r := m.subResult
		ev := m.session.RecordSubstitution(m.activeTeam, r.PlayerOutID, r.PlayerInID, r.Comment)
		m.refreshEvents()
		return m.showResult("Substitution: "+match.FormatEvent(ev, m.session), false)

	case formFormation:
		r := m.formationResult
		ev := m.session.ChangeFormation(m.activeTeam, r.To)
		m.refreshEvents()
		return m.showResult(match.FormatEvent(ev, m.session), false)

	case formAssignSlot:
		r := m.assignResult
		if err := m.session.AssignToSlot(m.activeTeam, r.Slot, r.PlayerID); err != nil {
			return m.showResult("Error: "+err.Error(), true)
		}
		return m.showResult("Player placed", false)

	case formEditEvent:
		return m.applyEdit()

	case formNotes:
		r := m.notesResult
		m.session.SetNotes(match.Notes{
			FirstHalf:  r.FirstHalf,
			SecondHalf: r.SecondHalf,
			FullMatch:  r.FullMatch,
		})
		return m.showResult("Notes saved", false)

	case formConfirmDelete:
		if !m.confirm {
			return m, nil
		}
		if err := m.session.DeleteEvent(m.editTargetID); err != nil {
			return m.showResult("Error: "+err.Error(), true)
		}
		m.refreshEvents()
		if m.eventList.SelectedIndex >= len(m.eventList.Items) && m.eventList.SelectedIndex > 0 {
			m.eventList.SelectedIndex--
		}
		return m.showResult("Event deleted", false)

	case formConfirmReset:
		if !m.confirm {
			return m, nil
		}
		m.session.ResetClock()
		return m.showResult("Clock reset", false)

	case formConfirmFinish:
		if !m.confirm {
			return m, nil
		}
		rec, err := m.session.Save()
		if err != nil {
			// The session is intact; the user can fix the problem and
			// retry without losing anything.
			return m.showResult("Save failed: "+err.Error(), true)
		}
		m.result = fmt.Sprintf("Match saved (%s %d - %d %s)", rec.HomeTeam, rec.Score.Home, rec.Score.Away, rec.AwayTeam)
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// applyEdit applies the edit form to the target event.
func (m *Model) applyEdit() (tea.Model, tea.Cmd) {
	d, err := clock.ParseElapsed(m.editResult.Time)
	if err != nil {
		return m.showResult("Invalid time: "+err.Error(), true)
	}
	timeMs := d.Milliseconds()
	quality := event.Quality(m.editResult.Quality)

	upd := match.EventUpdate{Time: &timeMs, Quality: &quality}
	if m.editResult.Comment != "" {
		upd.Comment = &m.editResult.Comment
	}
	if err := m.session.UpdateEvent(m.editTargetID, upd); err != nil {
		return m.showResult("Error: "+err.Error(), true)
	}
	m.refreshEvents()
	return m.showResult("Event updated", false)
}

func (m *Model) openForm(kind formKind, form *huh.Form) {
	m.formKind = kind
	m.form = form
}

func (m *Model) closeForm() {
	m.form = nil
	m.formKind = formNone
}

func (m *Model) showResult(text string, isErr bool) (tea.Model, tea.Cmd) {
	m.result = text
	m.resultIsErr = isErr
	return m, clearResultCmd()
}

// header renders the side and match time line shown on top of every form.
func (m *Model) header() string {
	name := m.session.HomeTeam().Name
	if m.activeTeam == event.TeamAway {
		name = m.session.AwayTeam().Name
	}
	return fmt.Sprintf("%s @ %s", name, clock.FormatPlain(m.session.Clock().Elapsed()))
}

// refreshEvents rebuilds the event list rows from the session log.
func (m *Model) refreshEvents() {
	events := m.session.Events()
	items := make([]components.EventItem, 0, len(events))
	for _, ev := range events {
		item := components.EventItem{
			ID:     ev.EventID(),
			TimeMs: ev.EventTime(),
			Team:   ev.Side(),
			Label:  match.FormatEvent(ev, m.session),
		}
		if pe, ok := ev.(*event.PlayerEvent); ok && pe.Type != event.TypeGoal {
			item.IsStamp = true
			item.Bad = pe.Quality == event.QualityBad
		}
		if te, ok := ev.(*event.TeamEvent); ok {
			item.IsStamp = true
			item.Bad = te.Quality == event.QualityBad
		}
		items = append(items, item)
	}
	m.eventList.Items = items
	if m.eventList.SelectedIndex >= len(items) {
		m.eventList.SelectedIndex = len(items) - 1
	}
	if m.eventList.SelectedIndex < 0 {
		m.eventList.SelectedIndex = 0
	}
}

// lineupPlayers resolves the active side's current lineup to roster entries.
func (m *Model) lineupPlayers() []roster.Player {
	lineup := m.session.Lineup(m.activeTeam)
	var players []roster.Player
	for _, id := range lineup {
		if p, ok := m.session.PlayerByID(id); ok {
			players = append(players, p)
		}
	}
	return players
}

// emptySlots returns the active side's unfilled formation slots.
func (m *Model) emptySlots() []formation.Slot {
	tmpl := formation.Get(m.session.Formation(m.activeTeam))
	lineup := m.session.Lineup(m.activeTeam)
	var empty []formation.Slot
	for _, slot := range tmpl.Slots {
		if id, ok := lineup[slot.ID]; !ok || id == "" {
			empty = append(empty, slot)
		}
	}
	return empty
}

// minTerminalWidth is the minimum terminal width for the three-column layout.
const minTerminalWidth = 80

// View renders the recording screen.
func (m *Model) View() string {
	if m.quitting {
		if m.result != "" {
			return m.result + "\n"
		}
		return "Draft saved. Run 'record' to resume.\n"
	}

	if m.width == 0 {
		return "Loading..."
	}

	score := m.session.Score()
	statusBar := components.StatusBar(components.StatusBarState{
		HomeName:   m.session.HomeTeam().Name,
		AwayName:   m.session.AwayTeam().Name,
		HomeScore:  score.Home,
		AwayScore:  score.Away,
		Phase:      m.session.Clock().Phase(),
		Running:    m.session.Clock().Running(),
		Elapsed:    m.session.Clock().Elapsed(),
		ActiveHome: m.activeTeam == event.TeamHome,
	}, m.width)

	if m.showHelp {
		return components.HelpOverlay(m.width, m.height)
	}

	if m.form != nil {
		return statusBar + "\n\n" + m.form.View()
	}

	if m.width > 0 && m.width < minTerminalWidth {
		return statusBar + "\n" +
			styles.Warning.Render(fmt.Sprintf("Terminal too narrow (%d cols, need %d)", m.width, minTerminalWidth))
	}

	usableWidth := m.width - 2
	colWidth := usableWidth / 3
	col3Width := usableWidth - colWidth*2

	colHeight := m.height - 3
	if colHeight < 8 {
		colHeight = 8
	}

	tmpl := formation.Get(m.session.Formation(m.activeTeam))
	pitch := components.Pitch(tmpl, m.session.Lineup(m.activeTeam), m.session, colWidth)
	bench := components.BenchList(m.session.Bench(m.activeTeam), colWidth)
	col1 := pitch + "\n\n" + bench

	col2 := components.EventList(m.eventList, colWidth, colHeight, m.session.Clock().Phase())

	col3 := components.StatsPanel(
		m.session.TeamStats(),
		m.session.PlayerSummary(),
		m.session.HomeTeam().Name,
		m.session.AwayTeam().Name,
		col3Width,
	)

	columns := joinColumns([]string{col1, col2, col3}, []int{colWidth, colWidth, col3Width}, colHeight)

	resultLine := styles.SecondaryText.Render(" ? help · tab switch side · space clock")
	if m.result != "" {
		if m.resultIsErr {
			resultLine = styles.Warning.Render(" " + m.result)
		} else {
			resultLine = styles.Success.Render(" " + m.result)
		}
	}

	return statusBar + "\n" + columns + "\n" + resultLine
}

// joinColumns lays out columns side by side with vertical separators,
// padding each to the given height.
func joinColumns(cols []string, widths []int, height int) string {
	border := lipgloss.NewStyle().Foreground(styles.Purple).Render("│")

	split := make([][]string, len(cols))
	for i, col := range cols {
		lines := strings.Split(col, "\n")
		for len(lines) < height {
			lines = append(lines, "")
		}
		split[i] = lines
	}

	var rows []string
	for row := 0; row < height; row++ {
		var cells []string
		for i := range split {
			cells = append(cells, padToWidth(split[i][row], widths[i]))
		}
		rows = append(rows, strings.Join(cells, border))
	}
	return strings.Join(rows, "\n")
}

// padToWidth pads a string with spaces to the specified width.
// If the string is wider (due to ANSI sequences), it is returned as-is.
func padToWidth(s string, width int) string {
	currentWidth := lipgloss.Width(s)
	if currentWidth >= width {
		return s
	}
	return s + strings.Repeat(" ", width-currentWidth)
}

// Run starts the Bubbletea program for a recording session.
func Run(session *match.Session) error {
	model := NewModel(session)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
