package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay is a canonical hour/minute/second value independent of date
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// ParseTimeOfDay parses a user-supplied time string.
// Both HH:MM and HH:MM:SS are accepted; the format is chosen by the
// number of colon separators in the input.
func ParseTimeOfDay(raw string) (TimeOfDay, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return TimeOfDay{}, ErrInvalidTime
	}

	values := make([]int, len(parts))
	for i, part := range parts {
		// Reject signs, spaces and anything else Atoi would let through oddly
		if len(part) == 0 || len(part) > 2 {
			return TimeOfDay{}, ErrInvalidTime
		}
		for _, c := range part {
			if c < '0' || c > '9' {
				return TimeOfDay{}, ErrInvalidTime
			}
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return TimeOfDay{}, ErrInvalidTime
		}
		values[i] = v
	}

	t := TimeOfDay{Hour: values[0], Minute: values[1]}
	if len(values) == 3 {
		t.Second = values[2]
	}

	if t.Hour > 23 || t.Minute > 59 || t.Second > 59 {
		return TimeOfDay{}, ErrInvalidTime
	}

	return t, nil
}

// String renders the time in canonical HH:MM:SS form
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// MarshalJSON encodes the time as its canonical string form
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes either accepted string form
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseFlownHours parses a total-flown-hours value.
// Negative, non-numeric and non-finite input is rejected.
func ParseFlownHours(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, ErrInvalidNumber
	}
	// ParseFloat accepts "NaN" and "Inf" spellings
	if v != v || v > maxFlownHours {
		return 0, ErrInvalidNumber
	}
	if v < 0 {
		return 0, ErrInvalidNumber
	}
	return v, nil
}

// maxFlownHours caps obviously bogus input (and +Inf)
const maxFlownHours = 1e6
