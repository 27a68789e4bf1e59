package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/abid327/distrib/internal/models"
	"github.com/abid327/distrib/internal/storage"
)

// DistributionService records deliveries and serves the distribution
// listings and reports.
type DistributionService struct {
	store    storage.Store
	validate *validator.Validate
}

// NewDistributionService creates a new DistributionService with the given
// storage backend.
func NewDistributionService(store storage.Store) *DistributionService {
	return &DistributionService{store: store, validate: newValidator()}
}

type recordInput struct {
	ClientID   int64   `validate:"gt=0"`
	QuantityKg float64 `validate:"gt=0"`
	PaidAmount float64 `validate:"gte=0"`
}

// Record creates a distribution for today at today's price snapshot:
// total = quantity * price, remaining = total - paid. The client must
// exist; an unknown ID fails with storage.ErrNotFound and nothing is
// inserted.
func (s *DistributionService) Record(ctx context.Context, clientID int64, quantityKg, paidAmount float64) (*models.Distribution, error) {
	in := recordInput{ClientID: clientID, QuantityKg: quantityKg, PaidAmount: paidAmount}
	if err := checkInput(s.validate, in); err != nil {
		return nil, err
	}

	price, err := s.store.GetPrice(ctx, models.Today())
	if err != nil {
		slog.Error("RecordDistribution failed to read today's price", "error", err)
		return nil, err
	}

	total := quantityKg * price
	dist := &models.Distribution{
		ClientID:        clientID,
		QuantityKg:      quantityKg,
		PricePerKg:      price,
		TotalAmount:     total,
		PaidAmount:      paidAmount,
		RemainingAmount: total - paidAmount,
	}

	if err := s.store.CreateDistribution(ctx, dist); err != nil {
		slog.Error("RecordDistribution failed", "client_id", clientID, "error", err)
		return nil, err
	}

	slog.Info("Distribution recorded",
		"distribution_id", dist.ID,
		"client_id", dist.ClientID,
		"quantity_kg", dist.QuantityKg,
		"total_amount", dist.TotalAmount,
		"remaining_amount", dist.RemainingAmount,
	)
	return dist, nil
}

// ListDaily returns the distributions for one date joined with client
// names, newest first. An empty date means today.
func (s *DistributionService) ListDaily(ctx context.Context, date string) ([]*models.DailyDistribution, error) {
	if date == "" {
		date = models.Today()
	}
	if !models.ValidDate(date) {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", ErrValidation, date)
	}

	dists, err := s.store.ListDistributionsByDate(ctx, date)
	if err != nil {
		slog.Error("ListDaily failed", "date", date, "error", err)
		return nil, err
	}
	return dists, nil
}

// ListByClient returns all of a client's distributions, newest first.
func (s *DistributionService) ListByClient(ctx context.Context, clientID int64) ([]*models.Distribution, error) {
	dists, err := s.store.ListDistributionsByClient(ctx, clientID)
	if err != nil {
		slog.Error("ListByClient failed", "client_id", clientID, "error", err)
		return nil, err
	}
	return dists, nil
}

// SummarizeByClient aggregates distributions per client over the
// inclusive date range. Clients with no distributions in range are
// omitted.
func (s *DistributionService) SummarizeByClient(ctx context.Context, startDate, endDate string) ([]*models.ClientPeriodSummary, error) {
	if !models.ValidDate(startDate) || !models.ValidDate(endDate) {
		return nil, fmt.Errorf("%w: dates must be YYYY-MM-DD", ErrValidation)
	}
	if endDate < startDate {
		return nil, fmt.Errorf("%w: end date %s before start date %s", ErrValidation, endDate, startDate)
	}

	summaries, err := s.store.SummarizeByClient(ctx, startDate, endDate)
	if err != nil {
		slog.Error("SummarizeByClient failed", "start", startDate, "end", endDate, "error", err)
		return nil, err
	}
	return summaries, nil
}
