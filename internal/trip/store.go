// README: Trip store backed by PostgreSQL.
package trip

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, r *Record, itineraryJSON []byte) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO trips (
			id, owner_uid, title, destination, starting_city,
			start_date, end_date, budget_level, travel_mode, interests,
			itinerary, created_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10,
			$11, $12
		)`,
		r.ID,
		r.OwnerUID,
		r.Itinerary.Title,
		r.Preferences.Destination,
		r.Preferences.StartingCity,
		r.Preferences.StartDate,
		r.Preferences.EndDate,
		r.Preferences.BudgetLevel,
		r.Preferences.TravelMode,
		r.Preferences.Interests,
		itineraryJSON,
		r.CreatedAt,
	)
	return err
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*Record, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, owner_uid, destination, starting_city,
		       start_date, end_date, budget_level, travel_mode, interests,
		       itinerary, created_at
		FROM trips
		WHERE id = $1`, id,
	)

	var r Record
	err := row.Scan(
		&r.ID, &r.OwnerUID,
		&r.Preferences.Destination, &r.Preferences.StartingCity,
		&r.Preferences.StartDate, &r.Preferences.EndDate,
		&r.Preferences.BudgetLevel, &r.Preferences.TravelMode,
		&r.Preferences.Interests,
		&r.rawItinerary, &r.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ListByOwner returns the owner's trip summaries, most recently created first.
func (s *Store) ListByOwner(ctx context.Context, ownerUID string) ([]Summary, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, title, destination, start_date, end_date, created_at
		FROM trips
		WHERE owner_uid = $1
		ORDER BY created_at DESC`, ownerUID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []Summary{}
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.ID, &s.Title, &s.Destination, &s.StartDate, &s.EndDate, &s.CreatedAt); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// Delete removes the trip when it belongs to ownerUID. Returns false when
// no row matched (absent or owned by someone else).
func (s *Store) Delete(ctx context.Context, id uuid.UUID, ownerUID string) (bool, error) {
	tag, err := s.db.Exec(ctx, `
		DELETE FROM trips WHERE id = $1 AND owner_uid = $2`, id, ownerUID,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
