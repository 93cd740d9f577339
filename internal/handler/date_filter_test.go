package handler

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestParseDateQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    string
		wantNil bool
		wantErr bool
	}{
		{name: "absent", query: "/", wantNil: true},
		{name: "valid", query: "/?start_date=2025-03-01", want: "2025-03-01"},
		{name: "wrong layout", query: "/?start_date=01.03.2025", wantErr: true},
		{name: "not a date", query: "/?start_date=yesterday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.query, nil)
			got, err := parseDateQuery(r, "start_date")
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantNil {
				if got != nil {
					t.Errorf("got %v, want nil", got)
				}
				return
			}
			if got == nil || got.Format(dateLayout) != tt.want {
				t.Errorf("got %v, want %s", got, tt.want)
			}
		})
	}
}

func TestMonthQueryOrCurrent(t *testing.T) {
	r := httptest.NewRequest("GET", "/?month=2025-02", nil)
	got, err := monthQueryOrCurrent(r)
	if err != nil || got != "2025-02" {
		t.Errorf("got %q, %v, want 2025-02", got, err)
	}

	r = httptest.NewRequest("GET", "/", nil)
	got, err = monthQueryOrCurrent(r)
	if err != nil || got != time.Now().Format(monthLayout) {
		t.Errorf("got %q, %v, want current month", got, err)
	}

	r = httptest.NewRequest("GET", "/?month=march", nil)
	if _, err := monthQueryOrCurrent(r); err == nil {
		t.Error("expected error for malformed month")
	}
}

func TestCurrentMonthSoFar(t *testing.T) {
	from, to := currentMonthSoFar()
	if from.Day() != 1 {
		t.Errorf("start day = %d, want 1", from.Day())
	}
	if from.Hour() != 0 || to.Hour() != 0 {
		t.Error("bounds should be at midnight")
	}
	if from.Month() != to.Month() || from.Year() != to.Year() {
		t.Error("bounds should share a month")
	}
	if to.Before(from) {
		t.Error("end precedes start")
	}
}
