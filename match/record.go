// Package match holds the recording session controller and the durable
// match record types.
package match

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/user/tagging-football-cli/clock"
	"github.com/user/tagging-football-cli/event"
	"github.com/user/tagging-football-cli/projection"
	"github.com/user/tagging-football-cli/roster"
)

// Score is the goal tally per side.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Notes are the spectator's free-text match notes.
type Notes struct {
	FirstHalf  string `json:"firstHalf"`
	SecondHalf string `json:"secondHalf"`
	FullMatch  string `json:"fullMatch"`
}

// Snapshot captures everything needed to reopen a session: rosters, initial
// lineups and formations, team colors, the flattened clock, and the event
// list. Stored inside records and drafts.
type Snapshot struct {
	MatchID       string             `json:"matchId"`
	HomeTeam      roster.Team        `json:"homeTeam"`
	AwayTeam      roster.Team        `json:"awayTeam"`
	HomePlayers   []roster.Player    `json:"homePlayers"`
	AwayPlayers   []roster.Player    `json:"awayPlayers"`
	HomeLineup    projection.Lineup  `json:"homeLineup"`
	AwayLineup    projection.Lineup  `json:"awayLineup"`
	HomeFormation string             `json:"homeFormation"`
	AwayFormation string             `json:"awayFormation"`
	Clock         clock.State        `json:"timerState"`
	Events        []event.MatchEvent `json:"events"`
}

// snapshotAlias avoids recursing into UnmarshalJSON while deferring the
// event union to event.DecodeList.
type snapshotAlias struct {
	MatchID       string            `json:"matchId"`
	HomeTeam      roster.Team       `json:"homeTeam"`
	AwayTeam      roster.Team       `json:"awayTeam"`
	HomePlayers   []roster.Player   `json:"homePlayers"`
	AwayPlayers   []roster.Player   `json:"awayPlayers"`
	HomeLineup    projection.Lineup `json:"homeLineup"`
	AwayLineup    projection.Lineup `json:"awayLineup"`
	HomeFormation string            `json:"homeFormation"`
	AwayFormation string            `json:"awayFormation"`
	Clock         clock.State       `json:"timerState"`
	Events        json.RawMessage   `json:"events"`
}

func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var a snapshotAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	events := []event.MatchEvent{}
	if len(a.Events) > 0 {
		decoded, err := event.DecodeList(a.Events)
		if err != nil {
			return fmt.Errorf("snapshot events: %w", err)
		}
		events = decoded
	}

	*s = Snapshot{
		MatchID:       a.MatchID,
		HomeTeam:      a.HomeTeam,
		AwayTeam:      a.AwayTeam,
		HomePlayers:   a.HomePlayers,
		AwayPlayers:   a.AwayPlayers,
		HomeLineup:    a.HomeLineup,
		AwayLineup:    a.AwayLineup,
		HomeFormation: a.HomeFormation,
		AwayFormation: a.AwayFormation,
		Clock:         a.Clock,
		Events:        events,
	}
	return nil
}

// Record is the immutable, durably saved result of a finalized match.
// Re-recording from a saved record creates a new record, never a mutation.
type Record struct {
	ID            string                   `json:"id"`
	Date          time.Time                `json:"date"`
	HomeTeam      string                   `json:"homeTeam"`
	AwayTeam      string                   `json:"awayTeam"`
	Score         Score                    `json:"score"`
	Events        []event.MatchEvent       `json:"events"`
	PlayerSummary projection.PlayerSummary `json:"playerSummary"`
	Snapshot      *Snapshot                `json:"snapshot,omitempty"`
	Notes         Notes                    `json:"notes"`
}

type recordAlias struct {
	ID            string                   `json:"id"`
	Date          time.Time                `json:"date"`
	HomeTeam      string                   `json:"homeTeam"`
	AwayTeam      string                   `json:"awayTeam"`
	Score         Score                    `json:"score"`
	Events        json.RawMessage          `json:"events"`
	PlayerSummary projection.PlayerSummary `json:"playerSummary"`
	Snapshot      *Snapshot                `json:"snapshot,omitempty"`
	Notes         Notes                    `json:"notes"`
}

func (r *Record) UnmarshalJSON(data []byte) error {
	var a recordAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	events := []event.MatchEvent{}
	if len(a.Events) > 0 {
		decoded, err := event.DecodeList(a.Events)
		if err != nil {
			return fmt.Errorf("record events: %w", err)
		}
		events = decoded
	}

	*r = Record{
		ID:            a.ID,
		Date:          a.Date,
		HomeTeam:      a.HomeTeam,
		AwayTeam:      a.AwayTeam,
		Score:         a.Score,
		Events:        events,
		PlayerSummary: a.PlayerSummary,
		Snapshot:      a.Snapshot,
		Notes:         a.Notes,
	}
	return nil
}

// Draft is the single transient snapshot of an in-progress match. At most
// one draft exists system-wide, under a fixed slot.
type Draft struct {
	Snapshot Snapshot  `json:"snapshot"`
	Notes    Notes     `json:"notes"`
	SavedAt  time.Time `json:"savedAt"`
}

// RecordStore is the durable tier. Failures are surfaced to the caller.
type RecordStore interface {
	SaveMatchRecord(rec Record) error
	ListMatchRecords() ([]Record, error)
	GetMatchRecord(id string) (Record, error)
	DeleteMatchRecord(id string) error
}

// DraftStore is the single-slot draft tier. Writes are best-effort; the
// session swallows and logs write failures.
type DraftStore interface {
	WriteDraft(d Draft) error
	ReadDraft() (*Draft, error)
	ClearDraft() error
}

// Mirror posts a finalized record to a remote store. The session calls it
// from a detached goroutine after a successful durable save; its outcome
// never affects the save path.
type Mirror interface {
	MirrorMatch(rec Record) error
}
