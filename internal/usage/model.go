package usage

import "errors"

// ErrAllowanceExhausted is returned when a user has no generations remaining
// for the current month. Distinct from the provider's own quota signal: this
// one is local policy and resets monthly.
var ErrAllowanceExhausted = errors.New("monthly generation allowance exhausted")

// DefaultAllowance is the number of itinerary generations granted per month.
const DefaultAllowance = 30
