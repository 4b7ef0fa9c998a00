// README: Saved-trip records (preferences + generated itinerary, keyed by owner).
package trip

import (
	"time"

	"github.com/google/uuid"

	"yatra/internal/itinerary"
)

// Record is a persisted trip. Read-only once saved: edits are expressed as
// delete + recreate, so no partial-update path exists.
type Record struct {
	ID          uuid.UUID             `json:"id"`
	OwnerUID    string                `json:"-"`
	Preferences itinerary.Preferences `json:"preferences"`
	Itinerary   *itinerary.Itinerary  `json:"itinerary"`
	CreatedAt   time.Time             `json:"createdAt"`

	// rawItinerary is the stored JSON before repair; populated by the
	// store, consumed by the service on load.
	rawItinerary []byte
}

// Summary is the listing projection (no day-level detail).
type Summary struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Destination string    `json:"destination"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	CreatedAt   time.Time `json:"createdAt"`
}
