package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/abid327/distrib/internal/models"
	"github.com/abid327/distrib/internal/storage"
)

// CreateClient persists a new client to the database.
func (s *Store) CreateClient(ctx context.Context, client *models.Client) error {
	if client.CreatedDate == "" {
		client.CreatedDate = models.Today()
	}
	client.IsActive = true

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO clients (name, address, phone, created_date, is_active) VALUES (?, ?, ?, ?, ?)",
		client.Name, nullable(client.Address), nullable(client.Phone), client.CreatedDate, client.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to insert client: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read client id: %w", err)
	}
	client.ID = id

	return nil
}

// ListActiveClients returns all active clients ordered by name.
func (s *Store) ListActiveClients(ctx context.Context) ([]*models.Client, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, address, phone, created_date, is_active FROM clients WHERE is_active = TRUE ORDER BY name",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []*models.Client
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate clients: %w", err)
	}

	return clients, nil
}

// GetClient retrieves a client by ID, active or not.
func (s *Store) GetClient(ctx context.Context, id int64) (*models.Client, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, address, phone, created_date, is_active FROM clients WHERE id = ?",
		id,
	)
	client, err := scanClient(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("client %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return client, nil
}

// UpdateClient overwrites the client's mutable fields. The active flag
// and creation date are untouched.
func (s *Store) UpdateClient(ctx context.Context, id int64, name, address, phone string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE clients SET name = ?, address = ?, phone = ? WHERE id = ?",
		name, nullable(address), nullable(phone), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	return requireRow(res, "client", id)
}

// DeactivateClient soft-deletes a client by flipping the active flag.
func (s *Store) DeactivateClient(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE clients SET is_active = FALSE WHERE id = ?",
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to deactivate client: %w", err)
	}
	return requireRow(res, "client", id)
}

// OutstandingBalance sums the remaining amount over the client's open
// distributions.
func (s *Store) OutstandingBalance(ctx context.Context, clientID int64) (float64, error) {
	var balance float64
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(remaining_amount), 0)
		 FROM distributions
		 WHERE client_id = ? AND remaining_amount > 0`,
		clientID,
	).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("failed to sum outstanding balance: %w", err)
	}
	return balance, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (*models.Client, error) {
	client := &models.Client{}
	var address, phone sql.NullString

	err := row.Scan(&client.ID, &client.Name, &address, &phone, &client.CreatedDate, &client.IsActive)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan client: %w", err)
	}

	client.Address = address.String
	client.Phone = phone.String
	return client, nil
}

// nullable maps empty strings to NULL so optional columns stay NULL
// instead of accumulating empty strings.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// requireRow converts a zero-row update into ErrNotFound.
func requireRow(res sql.Result, entity string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, storage.ErrNotFound)
	}
	return nil
}
