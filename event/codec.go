package event

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// probe reads just enough of a raw event to pick the variant and detect
// legacy field names.
type probe struct {
	Type      string `json:"type"`
	Time      *int64 `json:"time"`
	Timestamp *int64 `json:"timestamp"`
}

// Decode unmarshals a single raw event into its concrete variant and
// normalizes it. Unknown type values decode as PlayerEvent, matching the
// union's "anything that is not sub/formation/team is a player event" rule.
func Decode(raw json.RawMessage) (MatchEvent, error) {
	var p probe
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("probe event: %w", err)
	}

	var ev MatchEvent
	switch p.Type {
	case TypeSubstitution:
		var e SubstitutionEvent
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, fmt.Errorf("decode substitution: %w", err)
		}
		ev = &e
	case TypeFormationChange:
		var e FormationChangeEvent
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, fmt.Errorf("decode formation change: %w", err)
		}
		ev = &e
	case TypeTeam:
		var e TeamEvent
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, fmt.Errorf("decode team event: %w", err)
		}
		ev = &e
	default:
		var e PlayerEvent
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, fmt.Errorf("decode player event: %w", err)
		}
		ev = &e
	}

	// Legacy data stored elapsed ms under "timestamp".
	if p.Time == nil && p.Timestamp != nil {
		setTime(ev, *p.Timestamp)
	}

	Normalize(ev)
	return ev, nil
}

// DecodeList unmarshals a heterogeneous JSON array of events. This is the
// single load/import boundary: every event comes out normalized.
func DecodeList(data []byte) ([]MatchEvent, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("decode event list: %w", err)
	}

	events := make([]MatchEvent, 0, len(raws))
	for i, raw := range raws {
		ev, err := Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

// EncodeList marshals events to a JSON array. The inverse of DecodeList.
func EncodeList(events []MatchEvent) ([]byte, error) {
	if events == nil {
		events = []MatchEvent{}
	}
	data, err := json.Marshal(events)
	if err != nil {
		return nil, fmt.Errorf("encode event list: %w", err)
	}
	return data, nil
}

// Normalize upgrades an event to the canonical shape: a fresh unique id if
// missing, explicit type discriminant, and quality defaulting to good where
// quality is meaningful. Idempotent; call once at load/import boundaries.
func Normalize(ev MatchEvent) {
	switch e := ev.(type) {
	case *PlayerEvent:
		if e.ID == "" {
			e.ID = NewID()
		}
		if e.Type == "" {
			e.Type = TypeStamp
		}
		if e.Type == TypeStamp && e.Quality == "" {
			e.Quality = QualityGood
		}
	case *SubstitutionEvent:
		if e.ID == "" {
			e.ID = NewID()
		}
		e.Type = TypeSubstitution
	case *FormationChangeEvent:
		if e.ID == "" {
			e.ID = NewID()
		}
		e.Type = TypeFormationChange
		if e.LineupSnapshot == nil {
			e.LineupSnapshot = map[int]string{}
		}
	case *TeamEvent:
		if e.ID == "" {
			e.ID = NewID()
		}
		e.Type = TypeTeam
		if e.Quality == "" {
			e.Quality = QualityGood
		}
	}
}

// NewID returns a fresh opaque event identifier.
func NewID() string {
	return uuid.NewString()
}

// SortByTime stable-sorts events by time ascending, preserving relative
// order on ties with one exception: at equal timestamps a substitution sorts
// before a formation change, so a "change formation while substituting"
// action always applies the substitution first.
func SortByTime(events []MatchEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		ti, tj := events[i].EventTime(), events[j].EventTime()
		if ti != tj {
			return ti < tj
		}
		return IsSubstitutionEvent(events[i]) && IsFormationChangeEvent(events[j])
	})
}

func setTime(ev MatchEvent, t int64) {
	switch e := ev.(type) {
	case *PlayerEvent:
		e.Time = t
	case *SubstitutionEvent:
		e.Time = t
	case *FormationChangeEvent:
		e.Time = t
	case *TeamEvent:
		e.Time = t
	}
}
