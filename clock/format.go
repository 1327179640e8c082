package clock

import (
	"fmt"
	"time"
)

const (
	half45 = 45 * time.Minute
	half90 = 90 * time.Minute
)

// FormatElapsed formats an elapsed match time for display, phase-aware:
//   - 1H/HT with elapsed in [45min, 90min): "45+X" (X = whole minutes past 45)
//   - 2H/FT with elapsed >= 90min:          "90+X"
//   - otherwise:                            "MM:SS"
//
// Display only; stored event times stay raw milliseconds.
func FormatElapsed(elapsed time.Duration, phase Phase) string {
	if (phase == SecondHalf || phase == FullTime) && elapsed >= half90 {
		return fmt.Sprintf("90+%d", int((elapsed-half90)/time.Minute))
	}
	if (phase == FirstHalf || phase == HalfTime) && elapsed >= half45 && elapsed < half90 {
		return fmt.Sprintf("45+%d", int((elapsed-half45)/time.Minute))
	}
	return formatMinSec(elapsed, true)
}

// FormatPlain always renders M:SS (e.g. 92:43, 105:07), ignoring phase.
// Used for the stopwatch header; the event log uses FormatElapsed.
func FormatPlain(elapsed time.Duration) string {
	return formatMinSec(elapsed, false)
}

func formatMinSec(elapsed time.Duration, padMinutes bool) string {
	if elapsed < 0 {
		elapsed = 0
	}
	total := int(elapsed / time.Second)
	if padMinutes {
		return fmt.Sprintf("%02d:%02d", total/60, total%60)
	}
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// ParseElapsed parses MM:SS or raw seconds into an elapsed duration, for
// operator time corrections. Uses colon count to pick the format.
func ParseElapsed(s string) (time.Duration, error) {
	var minutes, seconds int
	if n, err := fmt.Sscanf(s, "%d:%d", &minutes, &seconds); n == 2 && err == nil {
		if seconds < 0 || seconds > 59 || minutes < 0 {
			return 0, fmt.Errorf("invalid time '%s'", s)
		}
		return time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second, nil
	}
	var secs float64
	if n, err := fmt.Sscanf(s, "%f", &secs); n == 1 && err == nil && secs >= 0 {
		return time.Duration(secs * float64(time.Second)), nil
	}
	return 0, fmt.Errorf("expected MM:SS or seconds, got '%s'", s)
}
