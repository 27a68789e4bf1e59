package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/abid327/distrib/internal/models"
	"github.com/abid327/distrib/internal/storage"
)

// CreatePayment persists a payment. When the payment is linked to a
// distribution, the remaining amount is decremented in the same
// transaction with a single atomic UPDATE, so two payments against the
// same distribution can never read a stale balance. Overpayment is
// absorbed: the remainder floors at zero and is neither carried to other
// distributions nor refunded.
func (s *Store) CreatePayment(ctx context.Context, payment *models.Payment) error {
	if payment.Date == "" {
		payment.Date = models.Today()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := clientExists(ctx, tx, payment.ClientID); err != nil {
		return err
	}

	var distributionID any
	if payment.DistributionID != 0 {
		var one int
		err := tx.QueryRowContext(ctx,
			"SELECT 1 FROM distributions WHERE id = ?", payment.DistributionID,
		).Scan(&one)
		if err == sql.ErrNoRows {
			return fmt.Errorf("distribution %d: %w", payment.DistributionID, storage.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to check distribution existence: %w", err)
		}
		distributionID = payment.DistributionID
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO payments (client_id, payment_date, amount, payment_method, description, distribution_id)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		payment.ClientID, payment.Date, payment.Amount,
		payment.Method, nullable(payment.Description), distributionID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read payment id: %w", err)
	}
	payment.ID = id

	if payment.DistributionID != 0 {
		_, err = tx.ExecContext(ctx,
			"UPDATE distributions SET remaining_amount = MAX(0, remaining_amount - ?) WHERE id = ?",
			payment.Amount, payment.DistributionID,
		)
		if err != nil {
			return fmt.Errorf("failed to apply payment to distribution: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListPaymentsByClient returns all of a client's payments, newest first
// by date.
func (s *Store) ListPaymentsByClient(ctx context.Context, clientID int64) ([]*models.Payment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, client_id, payment_date, amount, payment_method, description, distribution_id
		 FROM payments
		 WHERE client_id = ?
		 ORDER BY payment_date DESC, id DESC`,
		clientID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		p := &models.Payment{}
		var description sql.NullString
		var distributionID sql.NullInt64

		if err := rows.Scan(&p.ID, &p.ClientID, &p.Date, &p.Amount,
			&p.Method, &description, &distributionID); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}

		p.Description = description.String
		p.DistributionID = distributionID.Int64

		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}

	return payments, nil
}

// ListPendingBalances returns one row per client with unsettled
// distributions. Fully paid clients are omitted.
func (s *Store) ListPendingBalances(ctx context.Context) ([]*models.PendingBalance, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT c.name, c.phone, SUM(d.remaining_amount)
		 FROM clients c
		 JOIN distributions d ON c.id = d.client_id
		 WHERE d.remaining_amount > 0
		 GROUP BY c.id, c.name
		 HAVING SUM(d.remaining_amount) > 0
		 ORDER BY c.name`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending balances: %w", err)
	}
	defer rows.Close()

	var balances []*models.PendingBalance
	for rows.Next() {
		b := &models.PendingBalance{}
		var phone sql.NullString

		if err := rows.Scan(&b.ClientName, &phone, &b.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan pending balance: %w", err)
		}

		b.Phone = phone.String
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pending balances: %w", err)
	}

	return balances, nil
}
