package statement

import (
	"fmt"
	"time"
)

const printedDateLayout = "2 Jan 2006"

// ISODate converts a printed statement date ("11 Dec 2025") to ISO
// "2025-12-11" form for sorting and month grouping.
func ISODate(s string) (string, error) {
	t, err := time.Parse(printedDateLayout, s)
	if err != nil {
		return "", fmt.Errorf("parsing date %q: %w", s, err)
	}

	return t.Format(time.DateOnly), nil
}

// MonthKey returns the "YYYY-MM" bucket for a printed statement date.
func MonthKey(s string) (string, error) {
	iso, err := ISODate(s)
	if err != nil {
		return "", err
	}

	return iso[:7], nil
}
