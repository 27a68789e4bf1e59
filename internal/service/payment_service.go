package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/abid327/distrib/internal/models"
	"github.com/abid327/distrib/internal/storage"
)

// DefaultPaymentMethod is used when the caller does not name one.
const DefaultPaymentMethod = "cash"

// PaymentService records incoming payments and serves the payment
// listings and the pending-balances report.
type PaymentService struct {
	store    storage.Store
	validate *validator.Validate
}

// NewPaymentService creates a new PaymentService with the given storage backend.
func NewPaymentService(store storage.Store) *PaymentService {
	return &PaymentService{store: store, validate: newValidator()}
}

type paymentInput struct {
	ClientID       int64   `validate:"gt=0"`
	Amount         float64 `validate:"gt=0"`
	DistributionID int64   `validate:"gte=0"`
}

// Record inserts a payment dated today. A zero distributionID records a
// plain payment; a non-zero one also reduces that distribution's
// remaining amount by the payment amount, floored at zero, atomically
// with the insert. Paying more than the remainder settles the
// distribution and absorbs the excess.
func (s *PaymentService) Record(ctx context.Context, clientID int64, amount float64, method, description string, distributionID int64) (*models.Payment, error) {
	in := paymentInput{ClientID: clientID, Amount: amount, DistributionID: distributionID}
	if err := checkInput(s.validate, in); err != nil {
		return nil, err
	}

	method = strings.TrimSpace(method)
	if method == "" {
		method = DefaultPaymentMethod
	}

	payment := &models.Payment{
		ClientID:       clientID,
		Amount:         amount,
		Method:         method,
		Description:    strings.TrimSpace(description),
		DistributionID: distributionID,
	}

	if err := s.store.CreatePayment(ctx, payment); err != nil {
		slog.Error("RecordPayment failed", "client_id", clientID, "error", err)
		return nil, err
	}

	slog.Info("Payment recorded",
		"payment_id", payment.ID,
		"client_id", payment.ClientID,
		"amount", payment.Amount,
		"method", payment.Method,
		"distribution_id", payment.DistributionID,
	)
	return payment, nil
}

// ListByClient returns all of a client's payments, newest first.
func (s *PaymentService) ListByClient(ctx context.Context, clientID int64) ([]*models.Payment, error) {
	payments, err := s.store.ListPaymentsByClient(ctx, clientID)
	if err != nil {
		slog.Error("ListPayments failed", "client_id", clientID, "error", err)
		return nil, err
	}
	return payments, nil
}

// PendingBalances returns one row per client still owing money: name,
// phone and summed remaining amount. Settled clients are omitted.
func (s *PaymentService) PendingBalances(ctx context.Context) ([]*models.PendingBalance, error) {
	balances, err := s.store.ListPendingBalances(ctx)
	if err != nil {
		slog.Error("PendingBalances failed", "error", err)
		return nil, err
	}
	return balances, nil
}
