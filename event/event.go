// Package event defines the match event union and the predicates used by
// every downstream consumer. Events are timestamped in milliseconds from
// match start, never wall clock.
package event

// Team identifies which side of the match an event belongs to.
type Team string

const (
	TeamHome Team = "home"
	TeamAway Team = "away"
)

// Quality is the good/bad flag carried by stamps. Missing quality means good.
type Quality string

const (
	QualityGood Quality = "good"
	QualityBad  Quality = "bad"
)

// Discriminant values for the event union. Player events use TypeStamp,
// TypeGoal, or a legacy granular action name ("Pass", "Shot", ...) imported
// from older data.
const (
	TypeStamp           = "Stamp"
	TypeGoal            = "Goal"
	TypeSubstitution    = "Substitution"
	TypeFormationChange = "FORMATION_CHANGE"
	TypeTeam            = "team"
)

// Player stamp sub-types.
const (
	StampPass        = "pass"
	StampTrap        = "trap"
	StampPostPlay    = "post_play"
	StampDribble     = "dribble"
	StampShot        = "shot"
	StampCross       = "cross"
	StampDefense     = "defense"
	StampSave        = "save"
	StampPositioning = "positioning"
	StampRunning     = "running"
)

// Team-level stamp kinds.
const (
	TeamStampBuildUp = "buildUp"
	TeamStampCounter = "counter"
	TeamStampBreak   = "break"
	TeamStampDefense = "defense"
)

// Base carries the fields present on every event variant.
type Base struct {
	// ID is an opaque unique identifier.
	ID string `json:"id"`
	// Time is milliseconds elapsed since match start.
	Time int64 `json:"time"`
}

// EventID returns the event's unique identifier.
func (b *Base) EventID() string { return b.ID }

// EventTime returns milliseconds from match start.
func (b *Base) EventTime() int64 { return b.Time }

// MatchEvent is the tagged union of the four event kinds. Use the Is*
// predicates to discriminate; never inspect the Type field directly outside
// this package.
type MatchEvent interface {
	EventID() string
	EventTime() int64
	// Side reports which team the event belongs to.
	Side() Team
}

// PlayerEvent is a stamp, goal, or legacy granular action recorded against a
// single player. PlayerID may be empty for legacy-imported data, in which
// case PlayerNumber is the fallback display key.
type PlayerEvent struct {
	Base
	Team         Team    `json:"team"`
	PlayerNumber int     `json:"playerNumber"`
	PlayerID     string  `json:"playerId,omitempty"`
	Type         string  `json:"type"`
	SubType      string  `json:"stampType,omitempty"`
	Quality      Quality `json:"quality,omitempty"`
	Comment      string  `json:"comment,omitempty"`
}

func (e *PlayerEvent) Side() Team { return e.Team }

// SubstitutionEvent swaps one on-pitch player for a bench player. Both
// player ids may be absent on legacy-imported data.
type SubstitutionEvent struct {
	Base
	Team        Team   `json:"team"`
	Type        string `json:"type"`
	PlayerInID  string `json:"playerInId,omitempty"`
	PlayerOutID string `json:"playerOutId,omitempty"`
	Comment     string `json:"comment,omitempty"`
}

func (e *SubstitutionEvent) Side() Team { return e.Team }

// FormationChangeEvent records a tactical formation change. LineupSnapshot
// is the complete slot-to-player mapping to install at this instant, not a
// diff, because a formation change can reshuffle many slots at once.
type FormationChangeEvent struct {
	Base
	Team           Team           `json:"team"`
	Type           string         `json:"type"`
	FromFormation  string         `json:"fromFormation"`
	ToFormation    string         `json:"toFormation"`
	LineupSnapshot map[int]string `json:"lineupSnapshot"`
}

func (e *FormationChangeEvent) Side() Team { return e.Team }

// TeamEvent is a team-level tactical stamp (build-up, counter, ...) not tied
// to a single player.
type TeamEvent struct {
	Base
	Team    Team    `json:"team"`
	Type    string  `json:"type"`
	Stamp   string  `json:"stamp"`
	Quality Quality `json:"quality,omitempty"`
	Comment string  `json:"comment,omitempty"`
}

func (e *TeamEvent) Side() Team { return e.Team }

// IsSubstitutionEvent reports whether ev is a substitution.
func IsSubstitutionEvent(ev MatchEvent) bool {
	_, ok := ev.(*SubstitutionEvent)
	return ok
}

// IsFormationChangeEvent reports whether ev is a formation change.
func IsFormationChangeEvent(ev MatchEvent) bool {
	_, ok := ev.(*FormationChangeEvent)
	return ok
}

// IsTeamEvent reports whether ev is a team-level stamp.
func IsTeamEvent(ev MatchEvent) bool {
	_, ok := ev.(*TeamEvent)
	return ok
}

// IsPlayerEvent reports whether ev is a player-attributable action
// (stamp, goal, or legacy granular type).
func IsPlayerEvent(ev MatchEvent) bool {
	_, ok := ev.(*PlayerEvent)
	return ok
}
