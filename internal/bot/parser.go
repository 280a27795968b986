package bot

import (
	"errors"
	"fmt"
	"time"
)

// The two date formats accepted by session create
var dateLayouts = []string{"02/01/06", "02/01/2006"}

// Bounds for the timeout duration, in hours
const (
	MinTimeoutHours = 1
	MaxTimeoutHours = 40320
)

var ErrInvalidDate = errors.New("invalid date format, use DD/MM/YY or DD/MM/YYYY")

// ParseDate parses a session date in one of the accepted formats
func ParseDate(input string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, input); err == nil {
			return date, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// ParseTimeoutHours validates the requested timeout duration
// and converts it to a time.Duration
func ParseTimeoutHours(hours int64) (time.Duration, error) {
	if hours < MinTimeoutHours || hours > MaxTimeoutHours {
		return 0, fmt.Errorf("timeout duration must be between %d and %d hours", MinTimeoutHours, MaxTimeoutHours)
	}
	return time.Duration(hours) * time.Hour, nil
}
