// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/abid327/distrib/internal/models"
)

// ErrNotFound is returned when a referenced row does not exist. Callers
// test for it with errors.Is; implementations wrap it with context.
var ErrNotFound = errors.New("not found")

// Store defines the persistence operations for the distribution ledger.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// etc.) without changing the service layer.
type Store interface {
	// CreateClient persists a new active client dated today.
	// The client's ID, CreatedDate and IsActive fields are populated.
	CreateClient(ctx context.Context, client *models.Client) error

	// ListActiveClients returns all active clients ordered by name.
	ListActiveClients(ctx context.Context) ([]*models.Client, error)

	// GetClient retrieves a client by ID, active or not.
	GetClient(ctx context.Context, id int64) (*models.Client, error)

	// UpdateClient overwrites a client's name, address and phone. The
	// active flag and creation date are untouched.
	UpdateClient(ctx context.Context, id int64, name, address, phone string) error

	// DeactivateClient flips the client's active flag off. Historical
	// distributions and payments are unaffected.
	DeactivateClient(ctx context.Context, id int64) error

	// OutstandingBalance sums the remaining amount over the client's
	// unsettled distributions. Zero when there are none.
	OutstandingBalance(ctx context.Context, clientID int64) (float64, error)

	// SetPrice upserts the per-kilogram price for a date.
	SetPrice(ctx context.Context, date string, pricePerKg float64) error

	// GetPrice returns the price for a date, or 0 when none is set.
	GetPrice(ctx context.Context, date string) (float64, error)

	// CreateDistribution persists a new distribution. The referenced
	// client must exist. The distribution's ID is populated.
	CreateDistribution(ctx context.Context, dist *models.Distribution) error

	// GetDistribution retrieves a distribution by ID.
	GetDistribution(ctx context.Context, id int64) (*models.Distribution, error)

	// ListDistributionsByDate returns the distributions for one date
	// joined with client names, newest first.
	ListDistributionsByDate(ctx context.Context, date string) ([]*models.DailyDistribution, error)

	// ListDistributionsByClient returns all of a client's distributions,
	// newest first by date.
	ListDistributionsByClient(ctx context.Context, clientID int64) ([]*models.Distribution, error)

	// SummarizeByClient aggregates distributions per client over the
	// inclusive date range. Clients without distributions in range are
	// omitted.
	SummarizeByClient(ctx context.Context, startDate, endDate string) ([]*models.ClientPeriodSummary, error)

	// CreatePayment persists a payment and, when it is linked to a
	// distribution, decrements that distribution's remaining amount by
	// the payment amount (floored at zero) in the same transaction. The
	// referenced client, and distribution if linked, must exist. The
	// payment's ID is populated.
	CreatePayment(ctx context.Context, payment *models.Payment) error

	// ListPaymentsByClient returns all of a client's payments, newest
	// first by date.
	ListPaymentsByClient(ctx context.Context, clientID int64) ([]*models.Payment, error)

	// ListPendingBalances returns, for every client with unsettled
	// distributions, the client's name, phone and summed remainder.
	ListPendingBalances(ctx context.Context) ([]*models.PendingBalance, error)

	// GetUserByUsername retrieves an operator account by login name.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUserByID retrieves an operator account by ID.
	GetUserByID(ctx context.Context, id int64) (*models.User, error)

	// UpdateUserPassword overwrites the stored password hash.
	UpdateUserPassword(ctx context.Context, id int64, passwordHash string) error

	// Close releases any resources held by the store.
	Close() error
}
