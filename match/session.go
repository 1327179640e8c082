package match

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/user/tagging-football-cli/clock"
	"github.com/user/tagging-football-cli/event"
	"github.com/user/tagging-football-cli/formation"
	"github.com/user/tagging-football-cli/log"
	"github.com/user/tagging-football-cli/projection"
	"github.com/user/tagging-football-cli/roster"
)

// draftDebounce is the minimum interval between draft writes. Mutations
// always mark the draft dirty; FlushDraft (called from the UI tick and on
// shutdown) performs the actual write.
const draftDebounce = 2 * time.Second

// Config seeds a new recording session.
type Config struct {
	HomeTeam      roster.Team
	AwayTeam      roster.Team
	HomePlayers   []roster.Player
	AwayPlayers   []roster.Player
	HomeLineup    projection.Lineup
	AwayLineup    projection.Lineup
	HomeFormation string
	AwayFormation string

	Records RecordStore
	Drafts  DraftStore
	Mirror  Mirror
}

// Session owns the in-memory event log of one in-progress match. The
// current lineup, formation, score, and summaries are always derived from
// the initial state plus the log; there is no mutable "current lineup"
// that handlers patch in place.
type Session struct {
	matchID string

	homeTeam, awayTeam       roster.Team
	homePlayers, awayPlayers []roster.Player
	players                  roster.MapDirectory

	initialHomeLineup, initialAwayLineup       projection.Lineup
	initialHomeFormation, initialAwayFormation string

	events    []event.MatchEvent
	overrides map[event.Team]projection.Lineup
	clock     *clock.Clock
	notes     Notes

	records RecordStore
	drafts  DraftStore
	mirror  Mirror

	draftDirty     bool
	lastDraftWrite time.Time
}

// NewSession starts a fresh recording session. Unknown formation names fall
// back to the default template.
func NewSession(cfg Config) *Session {
	s := &Session{
		matchID:              event.NewID(),
		homeTeam:             cfg.HomeTeam,
		awayTeam:             cfg.AwayTeam,
		homePlayers:          cfg.HomePlayers,
		awayPlayers:          cfg.AwayPlayers,
		initialHomeLineup:    cfg.HomeLineup.Clone(),
		initialAwayLineup:    cfg.AwayLineup.Clone(),
		initialHomeFormation: formation.Get(cfg.HomeFormation).Name,
		initialAwayFormation: formation.Get(cfg.AwayFormation).Name,
		overrides:            map[event.Team]projection.Lineup{},
		clock:                clock.New(),
		records:              cfg.Records,
		drafts:               cfg.Drafts,
		mirror:               cfg.Mirror,
	}
	s.players = roster.NewMapDirectory(append(append([]roster.Player{}, cfg.HomePlayers...), cfg.AwayPlayers...))
	return s
}

// Resume rebuilds a session from a draft snapshot, seeding replay/edit mode.
func Resume(d Draft, records RecordStore, drafts DraftStore, mirror Mirror) *Session {
	snap := d.Snapshot
	s := NewSession(Config{
		HomeTeam:      snap.HomeTeam,
		AwayTeam:      snap.AwayTeam,
		HomePlayers:   snap.HomePlayers,
		AwayPlayers:   snap.AwayPlayers,
		HomeLineup:    snap.HomeLineup,
		AwayLineup:    snap.AwayLineup,
		HomeFormation: snap.HomeFormation,
		AwayFormation: snap.AwayFormation,
		Records:       records,
		Drafts:        drafts,
		Mirror:        mirror,
	})
	if snap.MatchID != "" {
		s.matchID = snap.MatchID
	}
	s.events = append(s.events, snap.Events...)
	s.clock = clock.FromState(snap.Clock)
	s.notes = d.Notes
	return s
}

// MatchID returns the session's match identifier.
func (s *Session) MatchID() string { return s.matchID }

// Clock returns the match clock for reads. Transitions go through the
// session methods below so the draft picks them up.
func (s *Session) Clock() *clock.Clock { return s.clock }

// StartClock starts the match clock and marks the draft dirty.
func (s *Session) StartClock() {
	s.clock.Start()
	s.markDirty()
}

// PauseClock pauses the match clock and marks the draft dirty.
func (s *Session) PauseClock() {
	s.clock.Pause()
	s.markDirty()
}

// TogglePhase advances the phase cycle and marks the draft dirty.
func (s *Session) TogglePhase() {
	s.clock.TogglePhase()
	s.markDirty()
}

// ResetClock zeroes the match clock and marks the draft dirty.
func (s *Session) ResetClock() {
	s.clock.Reset()
	s.markDirty()
}

// SetClockElapsed overrides the elapsed time and marks the draft dirty.
func (s *Session) SetClockElapsed(d time.Duration) {
	s.clock.SetElapsed(d)
	s.markDirty()
}

// HomeTeam returns the home side's directory entry.
func (s *Session) HomeTeam() roster.Team { return s.homeTeam }

// AwayTeam returns the away side's directory entry.
func (s *Session) AwayTeam() roster.Team { return s.awayTeam }

// Players returns the squad list for one side.
func (s *Session) Players(team event.Team) []roster.Player {
	if team == event.TeamAway {
		return s.awayPlayers
	}
	return s.homePlayers
}

// PlayerByID resolves a player from either squad.
func (s *Session) PlayerByID(id string) (roster.Player, bool) {
	return s.players.PlayerByID(id)
}

// Notes returns the match notes.
func (s *Session) Notes() Notes { return s.notes }

// SetNotes replaces the match notes.
func (s *Session) SetNotes(n Notes) {
	s.notes = n
	s.markDirty()
}

// jerseyOf resolves a player's jersey number, 0 when unknown. Kept on the
// event as the fallback display key for later directory changes.
func (s *Session) jerseyOf(playerID string) int {
	if p, ok := s.players.PlayerByID(playerID); ok {
		return p.JerseyNumber
	}
	return 0
}

// elapsedMs reads the clock once; event times are raw milliseconds.
func (s *Session) elapsedMs() int64 {
	return s.clock.Elapsed().Milliseconds()
}

// Events returns a time-sorted copy of the event log.
func (s *Session) Events() []event.MatchEvent {
	out := make([]event.MatchEvent, len(s.events))
	copy(out, s.events)
	event.SortByTime(out)
	return out
}

// AddEvent normalizes and appends an externally built event.
func (s *Session) AddEvent(ev event.MatchEvent) {
	event.Normalize(ev)
	s.events = append(s.events, ev)
	s.markDirty()
}

// RecordStamp adds a player stamp at the current clock time.
func (s *Session) RecordStamp(team event.Team, playerID, subType string, quality event.Quality, comment string) *event.PlayerEvent {
	ev := &event.PlayerEvent{
		Base:         event.Base{ID: event.NewID(), Time: s.elapsedMs()},
		Team:         team,
		PlayerID:     playerID,
		PlayerNumber: s.jerseyOf(playerID),
		Type:         event.TypeStamp,
		SubType:      subType,
		Quality:      quality,
		Comment:      comment,
	}
	s.AddEvent(ev)
	return ev
}

// RecordGoal adds a goal at the current clock time. scorerID may be empty
// for an own goal; such goals count in the score but are not attributed to
// any player in the summary.
func (s *Session) RecordGoal(team event.Team, scorerID, comment string) *event.PlayerEvent {
	ev := &event.PlayerEvent{
		Base:         event.Base{ID: event.NewID(), Time: s.elapsedMs()},
		Team:         team,
		PlayerID:     scorerID,
		PlayerNumber: s.jerseyOf(scorerID),
		Type:         event.TypeGoal,
		Comment:      comment,
	}
	s.AddEvent(ev)
	return ev
}

// RecordTeamStamp adds a team-level tactical stamp.
func (s *Session) RecordTeamStamp(team event.Team, stamp string, quality event.Quality, comment string) *event.TeamEvent {
	ev := &event.TeamEvent{
		Base:    event.Base{ID: event.NewID(), Time: s.elapsedMs()},
		Team:    team,
		Type:    event.TypeTeam,
		Stamp:   stamp,
		Quality: quality,
		Comment: comment,
	}
	s.AddEvent(ev)
	return ev
}

// RecordSubstitution adds a substitution at the current clock time. The
// lineup itself is only ever derived by replay, so an inconsistent pair is
// tolerated here and skipped during projection.
func (s *Session) RecordSubstitution(team event.Team, playerOutID, playerInID, comment string) *event.SubstitutionEvent {
	ev := &event.SubstitutionEvent{
		Base:        event.Base{ID: event.NewID(), Time: s.elapsedMs()},
		Team:        team,
		Type:        event.TypeSubstitution,
		PlayerOutID: playerOutID,
		PlayerInID:  playerInID,
		Comment:     comment,
	}
	s.AddEvent(ev)
	return ev
}

// ChangeFormation records a formation change for team. The new lineup is
// derived by sequential reassignment from the current one and installed as
// a full snapshot on the event; pending manual overrides for the team are
// absorbed into that snapshot and cleared.
func (s *Session) ChangeFormation(team event.Team, toFormation string) *event.FormationChangeEvent {
	from := s.Formation(team)
	current := s.Lineup(team)

	next := projection.ReassignLineup(current, formation.Get(from), formation.Get(toFormation))
	delete(s.overrides, team)

	ev := &event.FormationChangeEvent{
		Base:           event.Base{ID: event.NewID(), Time: s.elapsedMs()},
		Team:           team,
		Type:           event.TypeFormationChange,
		FromFormation:  from,
		ToFormation:    formation.Get(toFormation).Name,
		LineupSnapshot: map[int]string(next),
	}
	s.AddEvent(ev)
	return ev
}

// EventUpdate is a partial edit of an existing event. Nil fields are left
// unchanged.
type EventUpdate struct {
	Time    *int64
	Comment *string
	Quality *event.Quality
}

// UpdateEvent edits an event in place. Order is a consequence of the time
// field only; projections recompute from scratch on the next read.
func (s *Session) UpdateEvent(id string, upd EventUpdate) error {
	for _, ev := range s.events {
		if ev.EventID() != id {
			continue
		}
		applyUpdate(ev, upd)
		s.markDirty()
		return nil
	}
	return fmt.Errorf("event %s not found", id)
}

func applyUpdate(ev event.MatchEvent, upd EventUpdate) {
	switch e := ev.(type) {
	case *event.PlayerEvent:
		if upd.Time != nil {
			e.Time = *upd.Time
		}
		if upd.Comment != nil {
			e.Comment = *upd.Comment
		}
		if upd.Quality != nil && e.Type == event.TypeStamp {
			e.Quality = *upd.Quality
		}
	case *event.SubstitutionEvent:
		if upd.Time != nil {
			e.Time = *upd.Time
		}
		if upd.Comment != nil {
			e.Comment = *upd.Comment
		}
	case *event.FormationChangeEvent:
		if upd.Time != nil {
			e.Time = *upd.Time
		}
	case *event.TeamEvent:
		if upd.Time != nil {
			e.Time = *upd.Time
		}
		if upd.Comment != nil {
			e.Comment = *upd.Comment
		}
		if upd.Quality != nil {
			e.Quality = *upd.Quality
		}
	}
}

// DeleteEvent removes an event from the log. Projections recomputed after
// the deletion behave as if the event never happened.
func (s *Session) DeleteEvent(id string) error {
	for i, ev := range s.events {
		if ev.EventID() == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			s.markDirty()
			return nil
		}
	}
	return fmt.Errorf("event %s not found", id)
}

// Lineup derives the current lineup for team: replay projection plus the
// empty-slot override layer.
func (s *Session) Lineup(team event.Team) projection.Lineup {
	initial := s.initialHomeLineup
	if team == event.TeamAway {
		initial = s.initialAwayLineup
	}
	computed := projection.ComputeLineup(initial, s.events, team)
	return projection.ApplyOverrides(computed, s.overrides[team])
}

// Formation derives the current formation name for team.
func (s *Session) Formation(team event.Team) string {
	initial := s.initialHomeFormation
	if team == event.TeamAway {
		initial = s.initialAwayFormation
	}
	return projection.ComputeFormation(initial, s.events, team)
}

// AssignToSlot places a player on an empty slot outside a formal
// substitution. Rejected when the replayed lineup already fills the slot;
// ad-hoc assignments never overwrite event-sourced history.
func (s *Session) AssignToSlot(team event.Team, slot int, playerID string) error {
	initial := s.initialHomeLineup
	if team == event.TeamAway {
		initial = s.initialAwayLineup
	}
	computed := projection.ComputeLineup(initial, s.events, team)
	if _, occupied := computed[slot]; occupied {
		return fmt.Errorf("slot %d is already occupied", slot)
	}
	if s.overrides[team] == nil {
		s.overrides[team] = projection.Lineup{}
	}
	s.overrides[team][slot] = playerID
	s.markDirty()
	return nil
}

// Bench returns the team's players not currently in the lineup, in display
// order.
func (s *Session) Bench(team event.Team) []roster.Player {
	onPitch := s.Lineup(team).PlayerIDs()
	var bench []roster.Player
	for _, p := range s.Players(team) {
		if !onPitch[p.ID] {
			bench = append(bench, p)
		}
	}
	return roster.SortPlayersForDisplay(bench)
}

// Score derives the goal tally from the event log.
func (s *Session) Score() Score {
	return Score{
		Home: projection.CountGoals(s.events, event.TeamHome),
		Away: projection.CountGoals(s.events, event.TeamAway),
	}
}

// TeamStats derives the per-side good/bad stamp tally.
func (s *Session) TeamStats() projection.TeamStats {
	return projection.ComputeTeamStats(s.events)
}

// PlayerSummary derives per-player counters with resolved display names.
func (s *Session) PlayerSummary() projection.PlayerSummary {
	return projection.ComputePlayerSummary(s.events, func(id string) string {
		if p, ok := s.players.PlayerByID(id); ok {
			return p.Name
		}
		return ""
	})
}

// Snapshot builds the replay snapshot of the current session state. The
// clock is flattened (elapsed rolled up, not running).
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		MatchID:       s.matchID,
		HomeTeam:      s.homeTeam,
		AwayTeam:      s.awayTeam,
		HomePlayers:   s.homePlayers,
		AwayPlayers:   s.awayPlayers,
		HomeLineup:    s.initialHomeLineup.Clone(),
		AwayLineup:    s.initialAwayLineup.Clone(),
		HomeFormation: s.initialHomeFormation,
		AwayFormation: s.initialAwayFormation,
		Clock:         s.clock.SnapshotState(),
		Events:        s.Events(),
	}
}

// markDirty flags the draft for the next flush.
func (s *Session) markDirty() {
	s.draftDirty = true
	// Cheap writes ride the debounce window; a long-idle session persists
	// immediately on its next mutation.
	s.FlushDraft()
}

// FlushDraft writes the draft slot if there are unsaved changes and the
// debounce window has passed. Failures are logged, never surfaced: draft
// loss must not block live recording. Call periodically (UI tick).
func (s *Session) FlushDraft() {
	if !s.draftDirty || s.drafts == nil {
		return
	}
	if time.Since(s.lastDraftWrite) < draftDebounce {
		return
	}
	s.writeDraft()
}

// FlushDraftNow writes unsaved changes immediately, skipping the debounce
// window. Call on shutdown.
func (s *Session) FlushDraftNow() {
	if !s.draftDirty || s.drafts == nil {
		return
	}
	s.writeDraft()
}

func (s *Session) writeDraft() {
	d := Draft{Snapshot: s.Snapshot(), Notes: s.notes, SavedAt: time.Now()}
	if err := s.drafts.WriteDraft(d); err != nil {
		log.Warn("draft autosave failed", zap.Error(err))
		return
	}
	s.draftDirty = false
	s.lastDraftWrite = time.Now()
}

// Save finalizes the match: builds the immutable record, writes it to the
// durable store, clears the draft slot, and hands the record to the mirror
// on a detached goroutine. A durable-store failure is returned to the
// caller with the in-memory session intact for retry; mirror and draft
// outcomes never affect the result.
func (s *Session) Save() (Record, error) {
	events := s.Events()
	rec := Record{
		ID:            event.NewID(),
		Date:          time.Now(),
		HomeTeam:      s.homeTeam.Name,
		AwayTeam:      s.awayTeam.Name,
		Score:         s.Score(),
		Events:        events,
		PlayerSummary: s.PlayerSummary(),
		Notes:         s.notes,
	}
	snap := s.Snapshot()
	rec.Snapshot = &snap

	if err := s.records.SaveMatchRecord(rec); err != nil {
		return Record{}, fmt.Errorf("save match record: %w", err)
	}

	if s.drafts != nil {
		if err := s.drafts.ClearDraft(); err != nil {
			log.Warn("clear draft after save failed", zap.Error(err))
		}
		s.draftDirty = false
	}

	if s.mirror != nil {
		go func(rec Record) {
			if err := s.mirror.MirrorMatch(rec); err != nil {
				log.Warn("remote mirror failed",
					zap.String("match_id", rec.ID),
					zap.Error(err),
				)
				return
			}
			log.Info("match mirrored", zap.String("match_id", rec.ID))
		}(rec)
	} else {
		log.Debug("mirror not configured, skipping backup", zap.String("match_id", rec.ID))
	}

	return rec, nil
}
