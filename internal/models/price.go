package models

// DailyPrice is the per-kilogram product price for one calendar date.
// At most one row exists per date; setting the price again on the same
// day replaces the earlier value.
type DailyPrice struct {
	ID         int64
	Date       string
	PricePerKg float64
}
