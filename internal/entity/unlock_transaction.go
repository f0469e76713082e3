package entity

import "time"

// UnlockTransaction is one row of the append-only sales ledger. Rows are
// written exactly once by the finalize procedure and never updated.
type UnlockTransaction struct {
	ID              string    `json:"id"`
	LeadID          string    `json:"lead_id"`
	BrokerID        string    `json:"broker_id"`
	AmountCents     int64     `json:"amount_cents"`
	Currency        string    `json:"currency"`
	StripeSessionID string    `json:"stripe_session_id"`
	CompletedAt     time.Time `json:"completed_at"`
}
