package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/user/tagging-football-cli/match"
	"github.com/user/tagging-football-cli/roster"
)

// ErrDuplicateJersey is returned when a player would reuse a jersey number
// already taken within the same team.
var ErrDuplicateJersey = errors.New("jersey number already taken for this team")

// ErrTeamExists is returned when a team name is already registered.
var ErrTeamExists = errors.New("team already exists")

// InsertTeam adds a team to the directory.
func InsertTeam(database *sql.DB, t roster.Team) error {
	if _, err := GetTeamByName(database, t.Name); err == nil {
		return ErrTeamExists
	} else if !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	if _, err := database.Exec(InsertTeamSQL, t.ID, t.Name, t.Color); err != nil {
		return fmt.Errorf("insert team: %w", err)
	}
	return nil
}

// ListTeams returns all teams ordered by name.
func ListTeams(database *sql.DB) ([]roster.Team, error) {
	rows, err := database.Query(SelectTeamsSQL)
	if err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}
	defer rows.Close()

	var teams []roster.Team
	for rows.Next() {
		var t roster.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Color); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

// GetTeamByName returns a team by its exact name. sql.ErrNoRows when absent.
func GetTeamByName(database *sql.DB, name string) (roster.Team, error) {
	var t roster.Team
	err := database.QueryRow(SelectTeamByNameSQL, name).Scan(&t.ID, &t.Name, &t.Color)
	if err != nil {
		return roster.Team{}, err
	}
	return t, nil
}

// InsertPlayer adds a player, enforcing jersey-number uniqueness within the
// team. A duplicate jersey is a validation error surfaced synchronously.
func InsertPlayer(database *sql.DB, p roster.Player) error {
	var count int
	if err := database.QueryRow(CountJerseySQL, p.TeamID, p.JerseyNumber).Scan(&count); err != nil {
		return fmt.Errorf("check jersey number: %w", err)
	}
	if count > 0 {
		return ErrDuplicateJersey
	}
	if _, err := database.Exec(InsertPlayerSQL, p.ID, p.TeamID, p.Name, p.JerseyNumber, p.Position); err != nil {
		return fmt.Errorf("insert player: %w", err)
	}
	return nil
}

// ListPlayersByTeam returns a team's squad ordered by jersey number.
func ListPlayersByTeam(database *sql.DB, teamID string) ([]roster.Player, error) {
	rows, err := database.Query(SelectPlayersByTeamSQL, teamID)
	if err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}
	defer rows.Close()

	var players []roster.Player
	for rows.Next() {
		var p roster.Player
		if err := rows.Scan(&p.ID, &p.TeamID, &p.Name, &p.JerseyNumber, &p.Position); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// GetPlayerByID returns a single player. sql.ErrNoRows when absent.
func GetPlayerByID(database *sql.DB, id string) (roster.Player, error) {
	var p roster.Player
	err := database.QueryRow(SelectPlayerByIDSQL, id).Scan(&p.ID, &p.TeamID, &p.Name, &p.JerseyNumber, &p.Position)
	if err != nil {
		return roster.Player{}, err
	}
	return p, nil
}

// SaveMatchRecord writes one immutable match record. The full record is
// stored as a JSON payload so the event union and replay snapshot round-trip
// with full fidelity; header columns exist for listing and indexing only.
func SaveMatchRecord(database *sql.DB, rec match.Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal match record: %w", err)
	}
	_, err = database.Exec(InsertMatchSQL,
		rec.ID,
		rec.Date.UTC().Format(time.RFC3339),
		rec.HomeTeam,
		rec.AwayTeam,
		rec.Score.Home,
		rec.Score.Away,
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("insert match record: %w", err)
	}
	return nil
}

// ListMatchRecords returns all saved matches, newest first.
func ListMatchRecords(database *sql.DB) ([]match.Record, error) {
	rows, err := database.Query(SelectMatchesSQL)
	if err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}
	defer rows.Close()

	var records []match.Record
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan match record: %w", err)
		}
		var rec match.Record
		if err := json.Unmarshal([]byte(payload), &rec); err != nil {
			return nil, fmt.Errorf("unmarshal match record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GetMatchRecord returns one saved match by id. sql.ErrNoRows when absent.
func GetMatchRecord(database *sql.DB, id string) (match.Record, error) {
	var payload string
	if err := database.QueryRow(SelectMatchByIDSQL, id).Scan(&payload); err != nil {
		return match.Record{}, err
	}
	var rec match.Record
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		return match.Record{}, fmt.Errorf("unmarshal match record: %w", err)
	}
	return rec, nil
}

// DeleteMatchRecord deletes a saved match by id.
func DeleteMatchRecord(database *sql.DB, id string) error {
	result, err := database.Exec(DeleteMatchSQL, id)
	if err != nil {
		return fmt.Errorf("delete match record: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// WriteDraft overwrites the single draft slot.
func WriteDraft(database *sql.DB, d match.Draft) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}
	if _, err := database.Exec(UpsertDraftSQL, string(payload), d.SavedAt.UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("upsert draft: %w", err)
	}
	return nil
}

// ReadDraft returns the current draft, or nil when the slot is empty.
func ReadDraft(database *sql.DB) (*match.Draft, error) {
	var payload string
	err := database.QueryRow(SelectDraftSQL).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select draft: %w", err)
	}
	var d match.Draft
	if err := json.Unmarshal([]byte(payload), &d); err != nil {
		return nil, fmt.Errorf("unmarshal draft: %w", err)
	}
	return &d, nil
}

// ClearDraft empties the draft slot. Clearing an already-empty slot is not
// an error.
func ClearDraft(database *sql.DB) error {
	if _, err := database.Exec(DeleteDraftSQL); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}
