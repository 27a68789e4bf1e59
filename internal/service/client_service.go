package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/abid327/distrib/internal/models"
	"github.com/abid327/distrib/internal/storage"
)

// ClientService manages the client roster.
type ClientService struct {
	store    storage.Store
	validate *validator.Validate
}

// NewClientService creates a new ClientService with the given storage backend.
func NewClientService(store storage.Store) *ClientService {
	return &ClientService{store: store, validate: newValidator()}
}

// clientInput is the validated shape of Add and Update.
type clientInput struct {
	Name    string `validate:"required"`
	Address string
	Phone   string `validate:"omitempty,phone"`
}

// Add inserts a new active client dated today. The name is required;
// address and phone are optional, but a non-empty phone must look like a
// phone number.
func (s *ClientService) Add(ctx context.Context, name, address, phone string) (*models.Client, error) {
	in := clientInput{
		Name:    strings.TrimSpace(name),
		Address: strings.TrimSpace(address),
		Phone:   strings.TrimSpace(phone),
	}
	if err := checkInput(s.validate, in); err != nil {
		return nil, err
	}

	client := &models.Client{
		Name:    in.Name,
		Address: in.Address,
		Phone:   in.Phone,
	}
	if err := s.store.CreateClient(ctx, client); err != nil {
		slog.Error("AddClient failed", "name", in.Name, "error", err)
		return nil, err
	}

	slog.Info("Client added", "client_id", client.ID, "name", client.Name)
	return client, nil
}

// ListActive returns all active clients ordered by name.
func (s *ClientService) ListActive(ctx context.Context) ([]*models.Client, error) {
	clients, err := s.store.ListActiveClients(ctx)
	if err != nil {
		slog.Error("ListActiveClients failed", "error", err)
		return nil, err
	}
	return clients, nil
}

// Get retrieves a client by ID, active or deactivated.
func (s *ClientService) Get(ctx context.Context, id int64) (*models.Client, error) {
	client, err := s.store.GetClient(ctx, id)
	if err != nil {
		slog.Error("GetClient failed", "client_id", id, "error", err)
		return nil, err
	}
	return client, nil
}

// Update overwrites the client's name, address and phone under the same
// validation as Add. The active flag and creation date never change.
func (s *ClientService) Update(ctx context.Context, id int64, name, address, phone string) error {
	in := clientInput{
		Name:    strings.TrimSpace(name),
		Address: strings.TrimSpace(address),
		Phone:   strings.TrimSpace(phone),
	}
	if err := checkInput(s.validate, in); err != nil {
		return err
	}

	if err := s.store.UpdateClient(ctx, id, in.Name, in.Address, in.Phone); err != nil {
		slog.Error("UpdateClient failed", "client_id", id, "error", err)
		return err
	}

	slog.Info("Client updated", "client_id", id)
	return nil
}

// Deactivate soft-deletes a client. Its distributions and payments stay
// queryable.
func (s *ClientService) Deactivate(ctx context.Context, id int64) error {
	if err := s.store.DeactivateClient(ctx, id); err != nil {
		slog.Error("DeactivateClient failed", "client_id", id, "error", err)
		return err
	}

	slog.Info("Client deactivated", "client_id", id)
	return nil
}

// OutstandingBalance returns the sum of the client's open remaining
// amounts, zero when there are none.
func (s *ClientService) OutstandingBalance(ctx context.Context, id int64) (float64, error) {
	balance, err := s.store.OutstandingBalance(ctx, id)
	if err != nil {
		slog.Error("OutstandingBalance failed", "client_id", id, "error", err)
		return 0, err
	}
	return balance, nil
}
