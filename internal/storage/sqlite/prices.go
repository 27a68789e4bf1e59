package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// SetPrice upserts the per-kilogram price for a date. The UNIQUE
// constraint on price_date makes the replace a per-day overwrite.
func (s *Store) SetPrice(ctx context.Context, date string, pricePerKg float64) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO product_prices (price_date, price_per_kg) VALUES (?, ?)",
		date, pricePerKg,
	)
	if err != nil {
		return fmt.Errorf("failed to set price: %w", err)
	}
	return nil
}

// GetPrice returns the price for a date. A date with no price set is not
// an error; the price is simply 0.
func (s *Store) GetPrice(ctx context.Context, date string) (float64, error) {
	var price float64
	err := s.db.QueryRowContext(ctx,
		"SELECT price_per_kg FROM product_prices WHERE price_date = ?",
		date,
	).Scan(&price)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get price: %w", err)
	}
	return price, nil
}
