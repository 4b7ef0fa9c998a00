package usage

import "context"

// Service gates itinerary generation behind a monthly per-user allowance.
type Service struct {
	store *Store
}

// NewService creates a Service backed by the given Store.
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// UseToken deducts one generation from the user's monthly allowance.
// If the user row does not exist yet it is initialised and the deduction is
// retried once. Returns ErrAllowanceExhausted when the month's quota is spent.
func (s *Service) UseToken(ctx context.Context, uid string) error {
	err := s.store.UseToken(ctx, uid)
	if err != ErrAllowanceExhausted {
		return err
	}

	// Row may be missing: create it, then retry the deduction once.
	if initErr := s.store.EnsureUser(ctx, uid); initErr != nil {
		return initErr
	}
	return s.store.UseToken(ctx, uid)
}
