package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/abid327/distrib/internal/models"
	"github.com/abid327/distrib/internal/storage"
)

// CreateDistribution persists a new distribution. The referenced client
// must exist; the check runs in the same transaction as the insert so a
// concurrent deactivation cannot slip a dangling reference in.
func (s *Store) CreateDistribution(ctx context.Context, dist *models.Distribution) error {
	if dist.Date == "" {
		dist.Date = models.Today()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := clientExists(ctx, tx, dist.ClientID); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO distributions
		 (client_id, distribution_date, quantity_kg, price_per_kg, total_amount, paid_amount, remaining_amount)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		dist.ClientID, dist.Date, dist.QuantityKg, dist.PricePerKg,
		dist.TotalAmount, dist.PaidAmount, dist.RemainingAmount,
	)
	if err != nil {
		return fmt.Errorf("failed to insert distribution: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read distribution id: %w", err)
	}
	dist.ID = id

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetDistribution retrieves a distribution by ID.
func (s *Store) GetDistribution(ctx context.Context, id int64) (*models.Distribution, error) {
	dist := &models.Distribution{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, client_id, distribution_date, quantity_kg, price_per_kg,
		        total_amount, paid_amount, remaining_amount
		 FROM distributions WHERE id = ?`,
		id,
	).Scan(&dist.ID, &dist.ClientID, &dist.Date, &dist.QuantityKg, &dist.PricePerKg,
		&dist.TotalAmount, &dist.PaidAmount, &dist.RemainingAmount)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("distribution %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get distribution: %w", err)
	}
	return dist, nil
}

// ListDistributionsByDate returns the distributions for one date joined
// with client names, newest first by id.
func (s *Store) ListDistributionsByDate(ctx context.Context, date string) ([]*models.DailyDistribution, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT d.id, d.client_id, d.distribution_date, d.quantity_kg, d.price_per_kg,
		        d.total_amount, d.paid_amount, d.remaining_amount, c.name
		 FROM distributions d
		 JOIN clients c ON d.client_id = c.id
		 WHERE d.distribution_date = ?
		 ORDER BY d.id DESC`,
		date,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily distributions: %w", err)
	}
	defer rows.Close()

	var dists []*models.DailyDistribution
	for rows.Next() {
		d := &models.DailyDistribution{}
		if err := rows.Scan(&d.ID, &d.ClientID, &d.Date, &d.QuantityKg, &d.PricePerKg,
			&d.TotalAmount, &d.PaidAmount, &d.RemainingAmount, &d.ClientName); err != nil {
			return nil, fmt.Errorf("failed to scan distribution: %w", err)
		}
		dists = append(dists, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate distributions: %w", err)
	}

	return dists, nil
}

// ListDistributionsByClient returns all of a client's distributions,
// newest first by date.
func (s *Store) ListDistributionsByClient(ctx context.Context, clientID int64) ([]*models.Distribution, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, client_id, distribution_date, quantity_kg, price_per_kg,
		        total_amount, paid_amount, remaining_amount
		 FROM distributions
		 WHERE client_id = ?
		 ORDER BY distribution_date DESC, id DESC`,
		clientID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list client distributions: %w", err)
	}
	defer rows.Close()

	var dists []*models.Distribution
	for rows.Next() {
		d := &models.Distribution{}
		if err := rows.Scan(&d.ID, &d.ClientID, &d.Date, &d.QuantityKg, &d.PricePerKg,
			&d.TotalAmount, &d.PaidAmount, &d.RemainingAmount); err != nil {
			return nil, fmt.Errorf("failed to scan distribution: %w", err)
		}
		dists = append(dists, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate distributions: %w", err)
	}

	return dists, nil
}

// SummarizeByClient aggregates distributions per client over the
// inclusive date range.
func (s *Store) SummarizeByClient(ctx context.Context, startDate, endDate string) ([]*models.ClientPeriodSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT c.id, c.name,
		        SUM(d.quantity_kg), SUM(d.total_amount), SUM(d.paid_amount), SUM(d.remaining_amount)
		 FROM distributions d
		 JOIN clients c ON d.client_id = c.id
		 WHERE d.distribution_date BETWEEN ? AND ?
		 GROUP BY c.id, c.name
		 ORDER BY c.name`,
		startDate, endDate,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize distributions: %w", err)
	}
	defer rows.Close()

	var summaries []*models.ClientPeriodSummary
	for rows.Next() {
		sum := &models.ClientPeriodSummary{}
		if err := rows.Scan(&sum.ClientID, &sum.ClientName,
			&sum.TotalKg, &sum.TotalAmount, &sum.TotalPaid, &sum.TotalRemaining); err != nil {
			return nil, fmt.Errorf("failed to scan summary: %w", err)
		}
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate summaries: %w", err)
	}

	return summaries, nil
}

// clientExists checks a client row inside an open transaction.
func clientExists(ctx context.Context, tx *sql.Tx, clientID int64) error {
	var one int
	err := tx.QueryRowContext(ctx, "SELECT 1 FROM clients WHERE id = ?", clientID).Scan(&one)
	if err == sql.ErrNoRows {
		return fmt.Errorf("client %d: %w", clientID, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to check client existence: %w", err)
	}
	return nil
}
