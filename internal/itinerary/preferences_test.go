package itinerary

import (
	"errors"
	"testing"
)

func validPrefs() Preferences {
	return Preferences{
		Destination:  "Goa",
		StartingCity: "Mumbai",
		StartDate:    "2025-01-01",
		EndDate:      "2025-01-03",
		BudgetLevel:  BudgetLow,
		Interests:    []string{"beaches"},
		TravelMode:   ModeBus,
	}
}

func TestPreferences_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Preferences)
		wantOK bool
	}{
		{"valid", func(p *Preferences) {}, true},
		{"single-day trip", func(p *Preferences) { p.EndDate = p.StartDate }, true},
		{"empty destination", func(p *Preferences) { p.Destination = "" }, false},
		{"empty starting city", func(p *Preferences) { p.StartingCity = "" }, false},
		{"no interests", func(p *Preferences) { p.Interests = nil }, false},
		{"unknown budget level", func(p *Preferences) { p.BudgetLevel = "lavish" }, false},
		{"unknown travel mode", func(p *Preferences) { p.TravelMode = "boat" }, false},
		{"malformed start date", func(p *Preferences) { p.StartDate = "01/01/2025" }, false},
		{"malformed end date", func(p *Preferences) { p.EndDate = "someday" }, false},
		{"end before start", func(p *Preferences) { p.StartDate, p.EndDate = p.EndDate, p.StartDate }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPrefs()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantOK && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.wantOK {
				if err == nil {
					t.Fatal("Validate() = nil, want error")
				}
				if !errors.Is(err, ErrInvalidPreferences) {
					t.Errorf("Validate() = %v, want ErrInvalidPreferences", err)
				}
			}
		})
	}
}

func TestPreferences_DaySpan(t *testing.T) {
	p := validPrefs()
	if got := p.DaySpan(); got != 3 {
		t.Errorf("DaySpan() = %d, want 3", got)
	}
	p.EndDate = p.StartDate
	if got := p.DaySpan(); got != 1 {
		t.Errorf("DaySpan() single day = %d, want 1", got)
	}
}

func TestPreferences_DateForDay(t *testing.T) {
	p := validPrefs()
	tests := []struct {
		day  int
		want string
	}{
		{1, "2025-01-01"},
		{2, "2025-01-02"},
		{3, "2025-01-03"},
	}
	for _, tt := range tests {
		if got := p.DateForDay(tt.day); got != tt.want {
			t.Errorf("DateForDay(%d) = %q, want %q", tt.day, got, tt.want)
		}
	}
}
