// Package payout reports whether a delivered order has cleared the payout
// holding window.
package payout

import "time"

// Status is the payout eligibility state of a delivered order.
type Status string

const (
	// StatusPending means the holding window has not elapsed yet.
	StatusPending Status = "pending"
	// StatusEligible means the order cleared the holding window.
	StatusEligible Status = "eligible"
)

// HoldingWindow is how long after delivery a payout stays pending.
const HoldingWindow = 14 * 24 * time.Hour

// Evaluate returns the payout status at the given instant. Both times are
// compared as absolute instants, so mixed zones are fine. The boundary is
// inclusive: exactly 14 days after delivery is eligible.
func Evaluate(deliveredAt, now time.Time) Status {
	if now.Sub(deliveredAt) >= HoldingWindow {
		return StatusEligible
	}
	return StatusPending
}
