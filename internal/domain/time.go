package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTime is returned by ParseTime for malformed input
var ErrInvalidTime = errors.New("invalid time, expected hh:mm or hh:mm:ss")

// FormatTime renders milliseconds as hh:mm
func FormatTime(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	d := time.Duration(ms) * time.Millisecond
	h := int64(d / time.Hour)
	m := int64(d/time.Minute) % 60
	return fmt.Sprintf("%02d:%02d", h, m)
}

// ParseTime parses "hh:mm" or "hh:mm:ss" into milliseconds
func ParseTime(s string) (int64, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	units := []time.Duration{time.Hour, time.Minute, time.Second}
	var d time.Duration
	for i, p := range parts {
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil || n < 0 || (i > 0 && n > 59) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
		}
		// d + n*unit must stay within time.Duration
		if n > (math.MaxInt64-int64(d))/int64(units[i]) {
			return 0, fmt.Errorf("%w: %q is too long", ErrInvalidTime, s)
		}
		d += time.Duration(n) * units[i]
	}
	return d.Milliseconds(), nil
}
