package db

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/tagging-football-cli/event"
	"github.com/user/tagging-football-cli/match"
	"github.com/user/tagging-football-cli/projection"
	"github.com/user/tagging-football-cli/roster"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := OpenAt(filepath.Join(t.TempDir(), "data.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestTeamCRUD(t *testing.T) {
	database := openTestDB(t)

	team := roster.Team{ID: "t1", Name: "Blues", Color: "blue"}
	require.NoError(t, InsertTeam(database, team))

	err := InsertTeam(database, roster.Team{ID: "t2", Name: "Blues"})
	assert.ErrorIs(t, err, ErrTeamExists)

	got, err := GetTeamByName(database, "Blues")
	require.NoError(t, err)
	assert.Equal(t, team, got)

	_, err = GetTeamByName(database, "Ghosts")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	require.NoError(t, InsertTeam(database, roster.Team{ID: "t3", Name: "Ambers"}))
	teams, err := ListTeams(database)
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "Ambers", teams[0].Name, "ordered by name")
}

func TestPlayerJerseyUniqueness(t *testing.T) {
	database := openTestDB(t)
	require.NoError(t, InsertTeam(database, roster.Team{ID: "t1", Name: "Blues"}))
	require.NoError(t, InsertTeam(database, roster.Team{ID: "t2", Name: "Reds"}))

	p := roster.Player{ID: "p1", TeamID: "t1", Name: "Ito", JerseyNumber: 10, Position: "MF"}
	require.NoError(t, InsertPlayer(database, p))

	err := InsertPlayer(database, roster.Player{ID: "p2", TeamID: "t1", Name: "Sato", JerseyNumber: 10})
	assert.ErrorIs(t, err, ErrDuplicateJersey)

	// Same jersey on the other team is fine.
	require.NoError(t, InsertPlayer(database, roster.Player{ID: "p3", TeamID: "t2", Name: "Mori", JerseyNumber: 10}))

	got, err := GetPlayerByID(database, "p1")
	require.NoError(t, err)
	assert.Equal(t, p, got)

	players, err := ListPlayersByTeam(database, "t1")
	require.NoError(t, err)
	require.Len(t, players, 1)
}

func TestMatchRecordRoundTrip(t *testing.T) {
	database := openTestDB(t)

	rec := match.Record{
		ID:       "m1",
		Date:     time.Date(2026, 5, 2, 15, 0, 0, 0, time.UTC),
		HomeTeam: "Blues",
		AwayTeam: "Reds",
		Score:    match.Score{Home: 2, Away: 1},
		Events: []event.MatchEvent{
			&event.PlayerEvent{Base: event.Base{ID: "e1", Time: 1000}, Team: event.TeamHome, PlayerID: "p1", Type: event.TypeGoal},
			&event.FormationChangeEvent{Base: event.Base{ID: "e2", Time: 2000}, Team: event.TeamHome, Type: event.TypeFormationChange, FromFormation: "4-4-2", ToFormation: "4-3-3", LineupSnapshot: map[int]string{0: "p1"}},
		},
		PlayerSummary: projection.PlayerSummary{"p1": {Name: "Ito", Counts: map[string]int{"goal": 1}}},
		Notes:         match.Notes{SecondHalf: "pressure told"},
	}
	rec.Snapshot = &match.Snapshot{
		MatchID:    "session-1",
		HomeLineup: projection.Lineup{0: "p1"},
		AwayLineup: projection.Lineup{},
		Events:     rec.Events,
	}

	require.NoError(t, SaveMatchRecord(database, rec))

	got, err := GetMatchRecord(database, "m1")
	require.NoError(t, err)
	assert.Equal(t, rec.Score, got.Score)
	assert.Equal(t, rec.Notes, got.Notes)
	require.Len(t, got.Events, 2)
	assert.True(t, event.IsFormationChangeEvent(got.Events[1]), "event variants survive storage")
	require.NotNil(t, got.Snapshot)
	assert.Equal(t, projection.Lineup{0: "p1"}, got.Snapshot.HomeLineup)
}

func TestListMatchRecordsNewestFirst(t *testing.T) {
	database := openTestDB(t)

	older := match.Record{ID: "m1", Date: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), HomeTeam: "A", AwayTeam: "B"}
	newer := match.Record{ID: "m2", Date: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), HomeTeam: "C", AwayTeam: "D"}
	require.NoError(t, SaveMatchRecord(database, older))
	require.NoError(t, SaveMatchRecord(database, newer))

	records, err := ListMatchRecords(database)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "m2", records[0].ID)
}

func TestDeleteMatchRecord(t *testing.T) {
	database := openTestDB(t)
	require.NoError(t, SaveMatchRecord(database, match.Record{ID: "m1", Date: time.Now()}))

	require.NoError(t, DeleteMatchRecord(database, "m1"))

	_, err := GetMatchRecord(database, "m1")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	err = DeleteMatchRecord(database, "m1")
	assert.True(t, errors.Is(err, sql.ErrNoRows), "deleting a missing record reports not found")
}

func TestDraftSlot(t *testing.T) {
	database := openTestDB(t)

	d, err := ReadDraft(database)
	require.NoError(t, err)
	assert.Nil(t, d, "empty slot reads as nil, not an error")

	first := match.Draft{
		Snapshot: match.Snapshot{MatchID: "s1", HomeLineup: projection.Lineup{}, AwayLineup: projection.Lineup{}},
		Notes:    match.Notes{FirstHalf: "v1"},
		SavedAt:  time.Now().UTC(),
	}
	require.NoError(t, WriteDraft(database, first))

	second := first
	second.Notes.FirstHalf = "v2"
	require.NoError(t, WriteDraft(database, second))

	got, err := ReadDraft(database)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "v2", got.Notes.FirstHalf, "single slot: second write overwrote the first")
	assert.Equal(t, "s1", got.Snapshot.MatchID)

	require.NoError(t, ClearDraft(database))
	got, err = ReadDraft(database)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, ClearDraft(database), "clearing an empty slot is not an error")
}

func TestMigrationsAreIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "data.db")

	database, err := OpenAt(dbPath)
	require.NoError(t, err)
	require.NoError(t, database.Close())

	// Reopening runs the migration pass again over an up-to-date schema.
	database, err = OpenAt(dbPath)
	require.NoError(t, err)
	defer database.Close()

	var version int
	require.NoError(t, database.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version))
	assert.GreaterOrEqual(t, version, 1)
}
