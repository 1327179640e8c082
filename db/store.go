package db

import (
	"database/sql"

	"github.com/user/tagging-football-cli/match"
)

// Store adapts a database handle to the session's store interfaces
// (match.RecordStore and match.DraftStore).
type Store struct {
	DB *sql.DB
}

// NewStore wraps an open database handle.
func NewStore(database *sql.DB) *Store {
	return &Store{DB: database}
}

func (s *Store) SaveMatchRecord(rec match.Record) error {
	return SaveMatchRecord(s.DB, rec)
}

func (s *Store) ListMatchRecords() ([]match.Record, error) {
	return ListMatchRecords(s.DB)
}

func (s *Store) GetMatchRecord(id string) (match.Record, error) {
	return GetMatchRecord(s.DB, id)
}

func (s *Store) DeleteMatchRecord(id string) error {
	return DeleteMatchRecord(s.DB, id)
}

func (s *Store) WriteDraft(d match.Draft) error {
	return WriteDraft(s.DB, d)
}

func (s *Store) ReadDraft() (*match.Draft, error) {
	return ReadDraft(s.DB)
}

func (s *Store) ClearDraft() error {
	return ClearDraft(s.DB)
}
