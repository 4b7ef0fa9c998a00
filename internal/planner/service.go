// README: Generation pipeline: preferences -> prompt -> provider -> extract -> repair -> derived views.
package planner

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"yatra/internal/ai"
	"yatra/internal/itinerary"
)

// ErrRunInFlight means the user already has a generation run outstanding.
var ErrRunInFlight = errors.New("a generation run is already in flight")

// Allowance gates how many generations a user may start. Implemented by the
// usage module; nil disables the gate.
type Allowance interface {
	UseToken(ctx context.Context, uid string) error
}

// SingleFlight serializes generation runs per user. Implemented by Guard;
// nil disables the check.
type SingleFlight interface {
	Acquire(ctx context.Context, uid string) (bool, error)
	Release(ctx context.Context, uid string)
}

// RouteEstimator supplies real travel durations for route enrichment.
// Implemented by the maps module; nil disables enrichment.
type RouteEstimator interface {
	Estimate(ctx context.Context, origin, destination, mode string) (time.Duration, error)
}

// Result is what a successful pipeline run hands to rendering and
// persistence collaborators: plain data, no behavior.
type Result struct {
	Itinerary *itinerary.Itinerary  `json:"itinerary"`
	Markers   []itinerary.MapMarker `json:"markers"`
}

// Service runs the generation pipeline. Each run owns its data end to end;
// the only shared state is the read-only provider configuration and the
// per-user in-flight guard.
type Service struct {
	provider  ai.Provider
	guard     SingleFlight
	allowance Allowance
	routes    RouteEstimator
	timeout   time.Duration
}

// NewService wires the pipeline. guard, allowance and routes may each be nil
// to disable the corresponding step.
func NewService(provider ai.Provider, guard SingleFlight, allowance Allowance, routes RouteEstimator, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Service{
		provider:  provider,
		guard:     guard,
		allowance: allowance,
		routes:    routes,
		timeout:   timeout,
	}
}

// Generate runs one pipeline pass for uid. Every error is scoped to this
// run and pre-classified for the HTTP layer: invalid preferences fail before
// any network call, provider outcomes keep their sentinel identity, and
// extraction/validation failures surface as-is. There is no auto-retry and
// no re-prompting on validation failure.
func (s *Service) Generate(ctx context.Context, uid string, prefs itinerary.Preferences) (*Result, error) {
	if err := prefs.Validate(); err != nil {
		return nil, err
	}

	// Guard before allowance: a duplicate submission rejected with
	// ErrRunInFlight must not burn one of the month's generations.
	if s.guard != nil {
		ok, err := s.guard.Acquire(ctx, uid)
		if err != nil {
			// A broken guard should not block generation; log and continue.
			log.Printf("planner: guard acquire failed for %s: %v", uid, err)
		} else if !ok {
			return nil, ErrRunInFlight
		} else {
			defer s.guard.Release(context.WithoutCancel(ctx), uid)
		}
	}

	if s.allowance != nil {
		if err := s.allowance.UseToken(ctx, uid); err != nil {
			return nil, err
		}
	}

	req := ai.BuildPrompt(prefs)

	// The provider call is the only step that can stall on the network;
	// everything after it is in-memory.
	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.provider.Generate(genCtx, req)
	if err != nil {
		log.Printf("planner: provider call failed for %s: %v", uid, err)
		return nil, err
	}

	payload, err := ai.ExtractJSON(raw)
	if err != nil {
		return nil, err
	}

	it, err := itinerary.ParseAndRepair([]byte(payload), prefs)
	if err != nil {
		return nil, err
	}

	s.enrichRoutes(ctx, it)

	return &Result{
		Itinerary: it,
		Markers:   itinerary.DeriveMarkers(it),
	}, nil
}

// enrichRoutes fills empty travel-route durations with real estimates.
// Enrichment never fails a run: a successful itinerary with a blank
// duration beats no itinerary.
func (s *Service) enrichRoutes(ctx context.Context, it *itinerary.Itinerary) {
	if s.routes == nil {
		return
	}
	for i, route := range it.TravelRoutes {
		if route.Duration != "" || route.From == "" || route.To == "" {
			continue
		}
		d, err := s.routes.Estimate(ctx, route.From, route.To, route.Mode)
		if err != nil {
			log.Printf("planner: route estimate %s -> %s failed: %v", route.From, route.To, err)
			continue
		}
		it.TravelRoutes[i].Duration = formatDuration(d)
	}
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	switch {
	case h == 0:
		return fmt.Sprintf("%d min", m)
	case m == 0:
		return fmt.Sprintf("%d hours", h)
	default:
		return fmt.Sprintf("%d hours %d min", h, m)
	}
}
