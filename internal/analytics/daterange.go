package analytics

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the accepted format for startDate and endDate
const DateLayout = "2006-01-02"

var (
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrInvalidDateRange  = errors.New("invalid date range")
)

// DateRange is a closed created_at interval. A nil bound leaves that side open
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Key identifies the range for cache lookups
func (r DateRange) Key() string {
	format := func(t *time.Time) string {
		if t == nil {
			return "-"
		}
		return t.Format(DateLayout)
	}
	return format(r.Start) + ":" + format(r.End)
}

// ParseDateRange validates optional YYYY-MM-DD bounds and widens them to whole
// days in loc: start at 00:00:00.000, end at 23:59:59.999. Empty strings mean
// the bound was not provided
func ParseDateRange(startDate, endDate string, loc *time.Location) (DateRange, error) {
	if loc == nil {
		loc = time.UTC
	}

	startDay, err := parseDay("startDate", startDate, loc)
	if err != nil {
		return DateRange{}, err
	}

	endDay, err := parseDay("endDate", endDate, loc)
	if err != nil {
		return DateRange{}, err
	}

	if startDay != nil && endDay != nil && startDay.After(*endDay) {
		return DateRange{}, fmt.Errorf("%w: startDate %s is after endDate %s", ErrInvalidDateRange, startDate, endDate)
	}

	r := DateRange{Start: startDay}
	if endDay != nil {
		end := endDay.AddDate(0, 0, 1).Add(-time.Millisecond)
		r.End = &end
	}

	return r, nil
}

func parseDay(param, value string, loc *time.Location) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	day, err := time.ParseInLocation(DateLayout, value, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a valid date YYYY-MM-DD", ErrInvalidDateFormat, param)
	}

	return &day, nil
}
