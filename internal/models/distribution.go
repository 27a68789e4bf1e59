package models

// Distribution is one delivery of product to a client.
//
// QuantityKg, PricePerKg, TotalAmount and PaidAmount are fixed at
// creation; PricePerKg is a snapshot of that day's price, so later price
// changes never reprice past deliveries. RemainingAmount starts at
// TotalAmount - PaidAmount and only ever decreases as payments are
// applied, floored at zero. A distribution is open while
// RemainingAmount > 0 and settled once it reaches zero; it is never
// reopened.
type Distribution struct {
	ID              int64
	ClientID        int64
	Date            string
	QuantityKg      float64
	PricePerKg      float64
	TotalAmount     float64
	PaidAmount      float64
	RemainingAmount float64
}

// DailyDistribution is a distribution joined with its client's name, as
// returned by the per-date listing.
type DailyDistribution struct {
	Distribution
	ClientName string
}

// ClientPeriodSummary aggregates one client's distributions over an
// inclusive date range. Clients without distributions in the range get
// no summary row.
type ClientPeriodSummary struct {
	ClientID       int64
	ClientName     string
	TotalKg        float64
	TotalAmount    float64
	TotalPaid      float64
	TotalRemaining float64
}
