// README: Trip service: converts pipeline output to records and back, with repair on load.
package trip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"yatra/internal/itinerary"
)

var (
	ErrNotFound   = errors.New("trip not found")
	ErrForbidden  = errors.New("trip belongs to another user")
	ErrBadRequest = errors.New("bad trip request")
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Save persists a generated itinerary together with the preferences that
// produced it and returns the new record's id.
func (s *Service) Save(ctx context.Context, ownerUID string, prefs itinerary.Preferences, it *itinerary.Itinerary) (uuid.UUID, error) {
	if ownerUID == "" || it == nil {
		return uuid.Nil, ErrBadRequest
	}
	if err := prefs.Validate(); err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}

	raw, err := json.Marshal(it)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encode itinerary: %w", err)
	}

	r := &Record{
		ID:          uuid.New(),
		OwnerUID:    ownerUID,
		Preferences: prefs,
		Itinerary:   it,
		CreatedAt:   time.Now(),
	}
	if err := s.store.Create(ctx, r, raw); err != nil {
		return uuid.Nil, err
	}
	return r.ID, nil
}

// List returns the owner's saved trips, newest first.
func (s *Service) List(ctx context.Context, ownerUID string) ([]Summary, error) {
	return s.store.ListByOwner(ctx, ownerUID)
}

// Load fetches a trip and rehydrates its itinerary through the same repair
// path the generator output goes through. Saved records are long-lived and
// may predate fields added later; repair fills those with the same defaults
// instead of failing the load.
func (s *Service) Load(ctx context.Context, ownerUID string, id uuid.UUID) (*Record, error) {
	r, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.OwnerUID != ownerUID {
		return nil, ErrForbidden
	}

	it, err := itinerary.ParseAndRepair(r.rawItinerary, r.Preferences)
	if err != nil {
		return nil, fmt.Errorf("stored itinerary unreadable: %w", err)
	}
	r.Itinerary = it
	return r, nil
}

// Delete removes the owner's trip. Deleting someone else's trip reports
// ErrNotFound rather than revealing that the id exists.
func (s *Service) Delete(ctx context.Context, ownerUID string, id uuid.UUID) error {
	ok, err := s.store.Delete(ctx, id, ownerUID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
