package db

import (
	_ "embed"
)

// Schema

//go:embed sql/create_tables.sql
var CreateTablesSQL string

// Team queries

//go:embed sql/insert_team.sql
var InsertTeamSQL string

//go:embed sql/select_teams.sql
var SelectTeamsSQL string

//go:embed sql/select_team_by_name.sql
var SelectTeamByNameSQL string

// Player queries

//go:embed sql/insert_player.sql
var InsertPlayerSQL string

//go:embed sql/select_players_by_team.sql
var SelectPlayersByTeamSQL string

//go:embed sql/select_player_by_id.sql
var SelectPlayerByIDSQL string

//go:embed sql/count_jersey.sql
var CountJerseySQL string

// Match record queries

//go:embed sql/insert_match.sql
var InsertMatchSQL string

//go:embed sql/select_matches.sql
var SelectMatchesSQL string

//go:embed sql/select_match_by_id.sql
var SelectMatchByIDSQL string

//go:embed sql/delete_match.sql
var DeleteMatchSQL string

// Draft slot queries

//go:embed sql/upsert_draft.sql
var UpsertDraftSQL string

//go:embed sql/select_draft.sql
var SelectDraftSQL string

//go:embed sql/delete_draft.sql
var DeleteDraftSQL string
