// Package clock implements the match timer state machine: elapsed time
// accumulates across start/pause cycles and survives phase changes.
package clock

import "time"

// Phase labels the stage of the match. HalfTime and FullTime are
// display-only labels reached by the same toggle as the playing halves.
type Phase string

const (
	FirstHalf  Phase = "1H"
	HalfTime   Phase = "HT"
	SecondHalf Phase = "2H"
	FullTime   Phase = "FT"
)

// Label returns the long display name for a phase.
func (p Phase) Label() string {
	switch p {
	case FirstHalf:
		return "1st Half"
	case HalfTime:
		return "Half Time"
	case SecondHalf:
		return "2nd Half"
	case FullTime:
		return "Full Time"
	}
	return string(p)
}

// State is the serializable form of the clock, as stored in drafts and
// snapshots. A snapshot always stores the clock flattened: elapsed rolled
// up, not running.
type State struct {
	Phase     Phase `json:"phase"`
	Running   bool  `json:"running"`
	StartedAt int64 `json:"startedAtMs"`
	ElapsedMs int64 `json:"elapsedMs"`
}

// Clock tracks elapsed match time. Reads never mutate state; only Pause,
// Reset, and SetElapsed write ElapsedMs.
type Clock struct {
	phase     Phase
	running   bool
	startedAt time.Time
	elapsed   time.Duration

	now func() time.Time
}

// New returns a stopped clock at the start of the first half.
func New() *Clock {
	return &Clock{phase: FirstHalf, now: time.Now}
}

// NewAt returns a clock with an injected time source, for tests.
func NewAt(now func() time.Time) *Clock {
	return &Clock{phase: FirstHalf, now: now}
}

// FromState restores a clock from its serialized form.
func FromState(s State) *Clock {
	c := New()
	if s.Phase != "" {
		c.phase = s.Phase
	}
	c.elapsed = time.Duration(s.ElapsedMs) * time.Millisecond
	if s.Running && s.StartedAt > 0 {
		c.running = true
		c.startedAt = time.UnixMilli(s.StartedAt)
	}
	return c
}

// State returns the serializable clock state.
func (c *Clock) State() State {
	s := State{Phase: c.phase, Running: c.running, ElapsedMs: c.elapsed.Milliseconds()}
	if c.running {
		s.StartedAt = c.startedAt.UnixMilli()
	}
	return s
}

// SnapshotState returns the clock flattened for a replay snapshot: current
// elapsed rolled into ElapsedMs, not running.
func (c *Clock) SnapshotState() State {
	return State{Phase: c.phase, Running: false, ElapsedMs: c.Elapsed().Milliseconds()}
}

// Phase returns the current phase label.
func (c *Clock) Phase() Phase { return c.phase }

// Running reports whether the clock is ticking.
func (c *Clock) Running() bool { return c.running }

// Start begins accumulating time from the current wall clock. No-op if
// already running.
func (c *Clock) Start() {
	if c.running {
		return
	}
	c.startedAt = c.now()
	c.running = true
}

// Pause folds the current run interval into the accumulated elapsed time.
// No-op if not running.
func (c *Clock) Pause() {
	if !c.running {
		return
	}
	c.elapsed += c.now().Sub(c.startedAt)
	c.startedAt = time.Time{}
	c.running = false
}

// TogglePhase cycles 1H -> HT -> 2H -> FT -> 1H. Elapsed time is never
// reset by a phase change.
func (c *Clock) TogglePhase() {
	switch c.phase {
	case FirstHalf:
		c.phase = HalfTime
	case HalfTime:
		c.phase = SecondHalf
	case SecondHalf:
		c.phase = FullTime
	default:
		c.phase = FirstHalf
	}
}

// Reset zeroes the clock and stops it. Callers are expected to confirm with
// the user before invoking.
func (c *Clock) Reset() {
	c.elapsed = 0
	c.startedAt = time.Time{}
	c.running = false
}

// SetElapsed replaces the accumulated elapsed time with an operator-supplied
// correction. A correction always pauses the clock.
func (c *Clock) SetElapsed(d time.Duration) {
	if d < 0 {
		d = 0
	}
	c.elapsed = d
	c.startedAt = time.Time{}
	c.running = false
}

// Elapsed returns the current elapsed match time. Read-only: repeated calls
// while running never mutate stored state.
func (c *Clock) Elapsed() time.Duration {
	if c.running {
		return c.now().Sub(c.startedAt) + c.elapsed
	}
	return c.elapsed
}
