package service

import (
	"fmt"
	"time"

	"coachlab.fr/suivicoach/pkg/apperror"
)

const dateLayout = "2006-01-02"

// parseDate reads an ISO date into a UTC-midnight time.Time, the
// canonical form every date column stores.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", apperror.ErrInvalidInput, s)
	}
	return t, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// mondayOf returns the Monday of the week containing t, at UTC
// midnight. Weeks run Monday..Sunday, matching day_of_week 0..6.
func mondayOf(t time.Time) time.Time {
	d := dateOnly(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}
