package validation

import (
	"errors"
	"time"
)

// ValidateDate checks a calendar day in YYYY-MM-DD form.
func ValidateDate(date string) error {
	_, err := time.Parse("2006-01-02", date)
	if err != nil {
		return errors.New("date must be YYYY-MM-DD")
	}
	return nil
}

// ValidateClockTime checks a 24-hour wall-clock time in HH:mm form.
func ValidateClockTime(clock string) error {
	_, err := time.Parse("15:04", clock)
	if err != nil {
		return errors.New("time must be HH:mm")
	}
	return nil
}
