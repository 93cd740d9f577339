package service

import (
	"context"
	"time"

	"github.com/godofwar007/Store-income-control/internal/ports"
)

// WorkdayService maintains the worked-day calendar of one employee's month.
type WorkdayService struct {
	Store ports.WorkdayStore
}

type DayFlag struct {
	Date   string
	Worked bool
}

// MonthCalendar returns one entry per calendar day of the month, in order,
// defaulting to worked=false for days without a stored record.
func (s WorkdayService) MonthCalendar(ctx context.Context, employeeID int64, year int, month time.Month) ([]DayFlag, error) {
	stored, err := s.Store.MonthFlags(ctx, employeeID, year, month)
	if err != nil {
		return nil, err
	}

	days := make([]DayFlag, 0, daysInMonth(year, month))
	for _, key := range monthDays(year, month) {
		days = append(days, DayFlag{Date: key, Worked: stored[key]})
	}
	return days, nil
}

// SetWorkedDays reconciles the submitted worked-day set against the full
// month: every day of the month is written, worked iff it is in the set.
// Submitting the same set twice yields the same stored state.
func (s WorkdayService) SetWorkedDays(ctx context.Context, employeeID int64, year int, month time.Month, workedDays []string) error {
	submitted := make(map[string]struct{}, len(workedDays))
	for _, d := range workedDays {
		submitted[d] = struct{}{}
	}

	flags := make(map[string]bool)
	for _, key := range monthDays(year, month) {
		_, worked := submitted[key]
		flags[key] = worked
	}
	return s.Store.Reconcile(ctx, employeeID, flags)
}

// daysInMonth follows standard calendar rules, leap years included.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func monthDays(year int, month time.Month) []string {
	n := daysInMonth(year, month)
	days := make([]string, 0, n)
	for day := 1; day <= n; day++ {
		days = append(days, time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(dateLayout))
	}
	return days
}
