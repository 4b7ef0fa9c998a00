package planner

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"yatra/internal/ai"
	"yatra/internal/itinerary"
)

// stubProvider is a test double for ai.Provider.
type stubProvider struct {
	raw   string
	err   error
	calls int
}

func (s *stubProvider) Generate(_ context.Context, _ ai.Request) (string, error) {
	s.calls++
	return s.raw, s.err
}

// stubAllowance always grants or always denies, counting every deduction.
type stubAllowance struct {
	err   error
	calls int
}

func (s *stubAllowance) UseToken(_ context.Context, _ string) error {
	s.calls++
	return s.err
}

// stubGuard is a test double for the single-flight guard.
type stubGuard struct {
	inFlight bool
	acquires int
	releases int
}

func (s *stubGuard) Acquire(_ context.Context, _ string) (bool, error) {
	s.acquires++
	return !s.inFlight, nil
}

func (s *stubGuard) Release(_ context.Context, _ string) { s.releases++ }

type stubRoutes struct {
	duration time.Duration
	err      error
}

func (s *stubRoutes) Estimate(_ context.Context, _, _, _ string) (time.Duration, error) {
	return s.duration, s.err
}

func testPrefs() itinerary.Preferences {
	return itinerary.Preferences{
		Destination:  "Goa",
		StartingCity: "Mumbai",
		StartDate:    "2025-01-01",
		EndDate:      "2025-01-03",
		BudgetLevel:  itinerary.BudgetLow,
		Interests:    []string{"beaches"},
		TravelMode:   itinerary.ModeBus,
	}
}

// A response shaped like real provider output: fenced, prose around it,
// one day per date in the span, a mix of valid and junk coordinates.
const stubResponse = "Here you go!\n```json\n" + `{
	"title": "Goa on a Budget",
	"destination": "Goa",
	"days": [
		{"day": 1, "date": "2025-01-01",
		 "activities": [{"name": "Baga Beach", "cost": 0, "coordinates": {"lat": 15.55, "lng": 73.75}}],
		 "accommodation": {"name": "Zostel", "type": "hostel", "cost": 500, "coordinates": {"lat": 15.56, "lng": 73.76}}},
		{"day": 2,
		 "activities": [{"name": "Fort Aguada", "cost": 50, "coordinates": {"lat": "unknown", "lng": 73.77}}]},
		{"day": 3, "activities": []}
	],
	"budgetBreakdown": {"travel": 800, "accommodation": 1000, "food": 600, "activities": 100, "miscellaneous": 0, "total": 1}
}` + "\n```\nHave fun!"

func TestGenerate_EndToEnd(t *testing.T) {
	provider := &stubProvider{raw: stubResponse}
	svc := NewService(provider, nil, nil, nil, time.Second)

	result, err := svc.Generate(context.Background(), "u1", testPrefs())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if provider.calls != 1 {
		t.Errorf("provider calls = %d, want exactly 1 (no internal retries)", provider.calls)
	}

	it := result.Itinerary
	if span := testPrefs().DaySpan(); len(it.Days) != span {
		t.Errorf("days = %d, want date span %d", len(it.Days), span)
	}
	if it.BudgetBreakdown.Total != 2500 {
		t.Errorf("total = %v, want recomputed 2500", it.BudgetBreakdown.Total)
	}
	// Day 2 has no date in the payload; it inherits from preferences.
	if it.Days[1].Date != "2025-01-02" {
		t.Errorf("day 2 date = %q", it.Days[1].Date)
	}

	// Markers come only from entries with sanitized coordinates: Baga Beach
	// and the hostel. Fort Aguada's junk lat drops the pair, not the marker
	// source activity, but without coordinates it is not plotted.
	if len(result.Markers) != 2 {
		t.Fatalf("markers = %d, want 2", len(result.Markers))
	}
	if result.Markers[0].ID != "attraction-1-0" || result.Markers[1].ID != "hotel-1" {
		t.Errorf("marker ids = %s, %s", result.Markers[0].ID, result.Markers[1].ID)
	}
}

func TestGenerate_InvalidPreferencesFailBeforeProvider(t *testing.T) {
	provider := &stubProvider{raw: stubResponse}
	svc := NewService(provider, nil, nil, nil, time.Second)

	prefs := testPrefs()
	prefs.Destination = ""
	_, err := svc.Generate(context.Background(), "u1", prefs)
	if !errors.Is(err, itinerary.ErrInvalidPreferences) {
		t.Fatalf("error = %v, want ErrInvalidPreferences", err)
	}
	if provider.calls != 0 {
		t.Errorf("provider called %d times for invalid input, want 0", provider.calls)
	}
}

func TestGenerate_ProviderErrorsPassThrough(t *testing.T) {
	for _, sentinel := range []error{ai.ErrRateLimited, ai.ErrQuotaExhausted, ai.ErrMalformedEnvelope} {
		svc := NewService(&stubProvider{err: sentinel}, nil, nil, nil, time.Second)
		_, err := svc.Generate(context.Background(), "u1", testPrefs())
		if !errors.Is(err, sentinel) {
			t.Errorf("error = %v, want %v", err, sentinel)
		}
	}
}

func TestGenerate_UnrecoverableResponse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want error
	}{
		{"prose only", "Sorry, I cannot plan this trip.", itinerary.ErrNotJSON},
		{"json without skeleton", `{"destination": "Goa"}`, itinerary.ErrMissingField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&stubProvider{raw: tt.raw}, nil, nil, nil, time.Second)
			_, err := svc.Generate(context.Background(), "u1", testPrefs())
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestGenerate_AllowanceDeniesBeforeProvider(t *testing.T) {
	denied := errors.New("allowance spent")
	provider := &stubProvider{raw: stubResponse}
	svc := NewService(provider, nil, &stubAllowance{err: denied}, nil, time.Second)

	_, err := svc.Generate(context.Background(), "u1", testPrefs())
	if !errors.Is(err, denied) {
		t.Fatalf("error = %v, want allowance error", err)
	}
	if provider.calls != 0 {
		t.Errorf("provider called despite denied allowance")
	}
}

// A duplicate submission rejected by the guard must not cost the user a
// monthly generation.
func TestGenerate_InFlightRejectionSpendsNoAllowance(t *testing.T) {
	provider := &stubProvider{raw: stubResponse}
	allowance := &stubAllowance{}
	guard := &stubGuard{inFlight: true}
	svc := NewService(provider, guard, allowance, nil, time.Second)

	_, err := svc.Generate(context.Background(), "u1", testPrefs())
	if !errors.Is(err, ErrRunInFlight) {
		t.Fatalf("error = %v, want ErrRunInFlight", err)
	}
	if allowance.calls != 0 {
		t.Errorf("allowance deducted %d times for a rejected duplicate, want 0", allowance.calls)
	}
	if provider.calls != 0 {
		t.Errorf("provider called for a rejected duplicate")
	}
}

func TestGenerate_GuardReleasedWhenAllowanceDenies(t *testing.T) {
	denied := errors.New("allowance spent")
	guard := &stubGuard{}
	svc := NewService(&stubProvider{raw: stubResponse}, guard, &stubAllowance{err: denied}, nil, time.Second)

	_, err := svc.Generate(context.Background(), "u1", testPrefs())
	if !errors.Is(err, denied) {
		t.Fatalf("error = %v, want allowance error", err)
	}
	if guard.acquires != 1 || guard.releases != 1 {
		t.Errorf("guard acquires/releases = %d/%d, want 1/1", guard.acquires, guard.releases)
	}
}

func TestGenerate_RouteEnrichment(t *testing.T) {
	raw := "```json\n" + `{
		"title": "T", "destination": "Goa",
		"days": [],
		"travelRoutes": [
			{"from": "Mumbai", "to": "Goa", "mode": "bus", "duration": "", "estimatedCost": 800},
			{"from": "Goa", "to": "Mumbai", "mode": "bus", "duration": "12 hours", "estimatedCost": 800}
		]
	}` + "\n```"

	svc := NewService(&stubProvider{raw: raw}, nil, nil, &stubRoutes{duration: 11*time.Hour + 30*time.Minute}, time.Second)
	result, err := svc.Generate(context.Background(), "u1", testPrefs())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	routes := result.Itinerary.TravelRoutes
	if routes[0].Duration != "11 hours 30 min" {
		t.Errorf("empty duration not enriched: %q", routes[0].Duration)
	}
	if routes[1].Duration != "12 hours" {
		t.Errorf("generator-provided duration overwritten: %q", routes[1].Duration)
	}
}

func TestGenerate_EnrichmentFailureIsNotFatal(t *testing.T) {
	raw := "```json\n" + `{
		"title": "T", "destination": "Goa", "days": [],
		"travelRoutes": [{"from": "Mumbai", "to": "Goa", "mode": "flight", "duration": "", "estimatedCost": 3000}]
	}` + "\n```"

	svc := NewService(&stubProvider{raw: raw}, nil, nil, &stubRoutes{err: errors.New("no coverage")}, time.Second)
	result, err := svc.Generate(context.Background(), "u1", testPrefs())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if result.Itinerary.TravelRoutes[0].Duration != "" {
		t.Errorf("failed enrichment should leave duration empty")
	}
}

func TestGenerate_MarkersIdempotent(t *testing.T) {
	svc := NewService(&stubProvider{raw: stubResponse}, nil, nil, nil, time.Second)
	result, err := svc.Generate(context.Background(), "u1", testPrefs())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	again := itinerary.DeriveMarkers(result.Itinerary)
	if !reflect.DeepEqual(result.Markers, again) {
		t.Error("marker derivation is not a pure function of the itinerary")
	}
}
