package service

import (
	"context"
	"log/slog"

	"github.com/abid327/distrib/internal/models"
	"github.com/abid327/distrib/internal/storage"
)

// PricingService manages the daily per-kilogram product price.
type PricingService struct {
	store storage.Store
}

// NewPricingService creates a new PricingService with the given storage backend.
func NewPricingService(store storage.Store) *PricingService {
	return &PricingService{store: store}
}

// SetTodayPrice upserts the price row for the current date. Setting it
// again on the same day replaces the earlier value; already-recorded
// distributions keep their snapshot.
func (s *PricingService) SetTodayPrice(ctx context.Context, price float64) error {
	today := models.Today()
	if err := s.store.SetPrice(ctx, today, price); err != nil {
		slog.Error("SetTodayPrice failed", "date", today, "error", err)
		return err
	}

	slog.Info("Price set", "date", today, "price_per_kg", price)
	return nil
}

// TodayPrice returns the price for the current date. A day with no price
// set yet reads as 0, not an error.
func (s *PricingService) TodayPrice(ctx context.Context) (float64, error) {
	price, err := s.store.GetPrice(ctx, models.Today())
	if err != nil {
		slog.Error("TodayPrice failed", "error", err)
		return 0, err
	}
	return price, nil
}

// PriceOn returns the price recorded for an arbitrary date, 0 when none.
func (s *PricingService) PriceOn(ctx context.Context, date string) (float64, error) {
	price, err := s.store.GetPrice(ctx, date)
	if err != nil {
		slog.Error("PriceOn failed", "date", date, "error", err)
		return 0, err
	}
	return price, nil
}
