package handler

import (
	"net/http"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

func parseDateQuery(r *http.Request, key string) (*time.Time, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func parseMonth(value string) (time.Time, error) {
	return time.Parse(monthLayout, value)
}

// monthQueryOrCurrent returns the month query parameter, defaulting to the
// current month when absent.
func monthQueryOrCurrent(r *http.Request) (string, error) {
	value := r.URL.Query().Get("month")
	if value == "" {
		return time.Now().Format(monthLayout), nil
	}
	if _, err := parseMonth(value); err != nil {
		return "", err
	}
	return value, nil
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// currentMonthSoFar is the default range of the report and most listing
// endpoints: first day of the current month through today.
func currentMonthSoFar() (time.Time, time.Time) {
	end := today()
	start := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, end
}
