package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTime is a manually advanced time source.
type fakeTime struct {
	t time.Time
}

func newFakeTime() *fakeTime {
	return &fakeTime{t: time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)}
}

func (f *fakeTime) now() time.Time { return f.t }

func (f *fakeTime) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestAccumulationAcrossPauses(t *testing.T) {
	ft := newFakeTime()
	c := NewAt(ft.now)

	c.Start()
	ft.advance(5000 * time.Millisecond)
	c.Pause()

	ft.advance(20 * time.Second) // paused gap does not count

	c.Start()
	ft.advance(3000 * time.Millisecond)
	c.Pause()

	assert.Equal(t, 8000*time.Millisecond, c.Elapsed())
}

func TestElapsedReadIsIdempotent(t *testing.T) {
	ft := newFakeTime()
	c := NewAt(ft.now)

	c.Start()
	ft.advance(7 * time.Second)

	first := c.Elapsed()
	second := c.Elapsed()
	assert.Equal(t, first, second, "reads while running must not mutate state")

	ft.advance(2 * time.Second)
	assert.Equal(t, 9*time.Second, c.Elapsed())
}

func TestStartWhileRunningIsNoop(t *testing.T) {
	ft := newFakeTime()
	c := NewAt(ft.now)

	c.Start()
	ft.advance(4 * time.Second)
	c.Start() // must not restart the interval
	ft.advance(1 * time.Second)
	c.Pause()

	assert.Equal(t, 5*time.Second, c.Elapsed())
}

func TestPauseWhileStoppedIsNoop(t *testing.T) {
	ft := newFakeTime()
	c := NewAt(ft.now)

	c.Pause()
	assert.Equal(t, time.Duration(0), c.Elapsed())
	assert.False(t, c.Running())
}

func TestTogglePhaseCycles(t *testing.T) {
	c := New()

	want := []Phase{HalfTime, SecondHalf, FullTime, FirstHalf}
	for _, p := range want {
		c.TogglePhase()
		assert.Equal(t, p, c.Phase())
	}
}

func TestTogglePhaseKeepsElapsed(t *testing.T) {
	ft := newFakeTime()
	c := NewAt(ft.now)

	c.Start()
	ft.advance(10 * time.Minute)
	c.TogglePhase()

	assert.Equal(t, 10*time.Minute, c.Elapsed())
	assert.True(t, c.Running(), "phase change does not stop the clock")
}

func TestSetElapsedForcesPause(t *testing.T) {
	ft := newFakeTime()
	c := NewAt(ft.now)

	c.Start()
	ft.advance(30 * time.Second)
	c.SetElapsed(42 * time.Second)

	assert.False(t, c.Running())
	ft.advance(time.Hour)
	assert.Equal(t, 42*time.Second, c.Elapsed())
}

func TestSetElapsedClampsNegative(t *testing.T) {
	c := New()
	c.SetElapsed(-5 * time.Second)
	assert.Equal(t, time.Duration(0), c.Elapsed())
}

func TestReset(t *testing.T) {
	ft := newFakeTime()
	c := NewAt(ft.now)

	c.Start()
	ft.advance(time.Minute)
	c.Reset()

	assert.False(t, c.Running())
	assert.Equal(t, time.Duration(0), c.Elapsed())
}

func TestStateRoundTrip(t *testing.T) {
	ft := newFakeTime()
	c := NewAt(ft.now)

	c.Start()
	ft.advance(90 * time.Second)
	c.Pause()
	c.TogglePhase()

	restored := FromState(c.State())
	assert.Equal(t, HalfTime, restored.Phase())
	assert.Equal(t, 90*time.Second, restored.Elapsed())
	assert.False(t, restored.Running())
}

func TestSnapshotStateFlattensRunningClock(t *testing.T) {
	ft := newFakeTime()
	c := NewAt(ft.now)

	c.Start()
	ft.advance(15 * time.Second)

	s := c.SnapshotState()
	require.False(t, s.Running)
	assert.Equal(t, int64(15000), s.ElapsedMs)
	assert.Equal(t, int64(0), s.StartedAt)
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		phase   Phase
		want    string
	}{
		{"regulation first half", 12*time.Minute + 7*time.Second, FirstHalf, "12:07"},
		{"first half stoppage", 47*time.Minute + 30*time.Second, FirstHalf, "45+2"},
		{"exactly 45 in first half", 45 * time.Minute, FirstHalf, "45+0"},
		{"half time keeps stoppage form", 46 * time.Minute, HalfTime, "45+1"},
		{"second half below 90", 70 * time.Minute, SecondHalf, "70:00"},
		{"second half stoppage", 93*time.Minute + 10*time.Second, SecondHalf, "90+3"},
		{"full time stoppage", 95 * time.Minute, FullTime, "90+5"},
		{"second half never shows 45+", 50 * time.Minute, SecondHalf, "50:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatElapsed(tt.elapsed, tt.phase))
		})
	}
}

func TestFormatPlain(t *testing.T) {
	assert.Equal(t, "0:00", FormatPlain(0))
	assert.Equal(t, "92:43", FormatPlain(92*time.Minute+43*time.Second))
	assert.Equal(t, "105:07", FormatPlain(105*time.Minute+7*time.Second))
}

func TestParseElapsed(t *testing.T) {
	d, err := ParseElapsed("12:30")
	require.NoError(t, err)
	assert.Equal(t, 12*time.Minute+30*time.Second, d)

	d, err = ParseElapsed("90")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, d)

	_, err = ParseElapsed("12:75")
	assert.Error(t, err)

	_, err = ParseElapsed("abc")
	assert.Error(t, err)
}
