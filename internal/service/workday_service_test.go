package service

import (
	"context"
	"reflect"
	"testing"
	"time"
)

type fakeWorkdayStore struct {
	flags map[string]bool

	reconciled []map[string]bool
}

func (f *fakeWorkdayStore) MonthFlags(ctx context.Context, employeeID int64, year int, month time.Month) (map[string]bool, error) {
	return f.flags, nil
}

func (f *fakeWorkdayStore) Reconcile(ctx context.Context, employeeID int64, flags map[string]bool) error {
	f.reconciled = append(f.reconciled, flags)
	return nil
}

func TestWorkdayService_MonthCalendar(t *testing.T) {
	store := &fakeWorkdayStore{flags: map[string]bool{
		"2025-03-03": true,
		"2025-03-10": true,
	}}
	svc := WorkdayService{Store: store}

	days, err := svc.MonthCalendar(context.Background(), 1, 2025, time.March)
	if err != nil {
		t.Fatalf("MonthCalendar() error = %v", err)
	}

	if len(days) != 31 {
		t.Fatalf("len(days) = %d, want 31", len(days))
	}
	if days[0].Date != "2025-03-01" || days[30].Date != "2025-03-31" {
		t.Errorf("calendar bounds = %s .. %s", days[0].Date, days[30].Date)
	}
	worked := 0
	for _, d := range days {
		if d.Worked {
			worked++
		}
	}
	if worked != 2 {
		t.Errorf("worked days = %d, want 2", worked)
	}
	if !days[2].Worked || !days[9].Worked {
		t.Error("stored worked days not reflected in calendar")
	}
}

func TestWorkdayService_MonthCalendar_Length(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		want  int
	}{
		{name: "february leap year", year: 2024, month: time.February, want: 29},
		{name: "february common year", year: 2023, month: time.February, want: 28},
		{name: "april", year: 2025, month: time.April, want: 30},
		{name: "december", year: 2025, month: time.December, want: 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := WorkdayService{Store: &fakeWorkdayStore{}}
			days, err := svc.MonthCalendar(context.Background(), 1, tt.year, tt.month)
			if err != nil {
				t.Fatalf("MonthCalendar() error = %v", err)
			}
			if len(days) != tt.want {
				t.Errorf("len(days) = %d, want %d", len(days), tt.want)
			}
		})
	}
}

func TestWorkdayService_SetWorkedDays(t *testing.T) {
	store := &fakeWorkdayStore{}
	svc := WorkdayService{Store: store}

	submitted := []string{"2024-02-01", "2024-02-29"}
	if err := svc.SetWorkedDays(context.Background(), 1, 2024, time.February, submitted); err != nil {
		t.Fatalf("SetWorkedDays() error = %v", err)
	}

	if len(store.reconciled) != 1 {
		t.Fatalf("reconcile calls = %d, want 1", len(store.reconciled))
	}
	flags := store.reconciled[0]
	if len(flags) != 29 {
		t.Fatalf("len(flags) = %d, want 29 (full month written)", len(flags))
	}
	if !flags["2024-02-01"] || !flags["2024-02-29"] {
		t.Error("submitted days should be worked")
	}
	if flags["2024-02-15"] {
		t.Error("unsubmitted day should be cleared")
	}
}

func TestWorkdayService_SetWorkedDays_Idempotent(t *testing.T) {
	store := &fakeWorkdayStore{}
	svc := WorkdayService{Store: store}

	submitted := []string{"2025-03-05", "2025-03-06"}
	for i := 0; i < 2; i++ {
		if err := svc.SetWorkedDays(context.Background(), 1, 2025, time.March, submitted); err != nil {
			t.Fatalf("SetWorkedDays() error = %v", err)
		}
	}

	if len(store.reconciled) != 2 {
		t.Fatalf("reconcile calls = %d, want 2", len(store.reconciled))
	}
	if !reflect.DeepEqual(store.reconciled[0], store.reconciled[1]) {
		t.Error("repeat submission should write identical state")
	}
}
