package models

// Payment is money received from a client. Payments are append-only and
// immutable once recorded.
type Payment struct {
	ID       int64
	ClientID int64
	Date     string
	Amount   float64

	// Method is the payment method, free-form (e.g. "cash", "transfer").
	Method string

	// Description is an optional free-text note.
	Description string

	// DistributionID links the payment to one distribution, whose
	// remaining amount the payment reduces. Zero means unlinked: the
	// payment counts toward the client's history but no per-distribution
	// balance moves.
	DistributionID int64
}

// PendingBalance is one row of the outstanding-balances report: a client
// with at least one unsettled distribution and the summed remainder.
type PendingBalance struct {
	ClientName string
	Phone      string
	Amount     float64
}
