package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abid327/distrib/internal/storage"
)

func TestClientServiceAdd(t *testing.T) {
	store := newTestStore(t)
	clients := NewClientService(store)
	ctx := context.Background()

	t.Run("adds an active client with trimmed fields", func(t *testing.T) {
		client, err := clients.Add(ctx, "  Ali  ", " Main St 4 ", " 0555 12 34 56 ")
		require.NoError(t, err)
		require.NotZero(t, client.ID)
		require.Equal(t, "Ali", client.Name)
		require.Equal(t, "Main St 4", client.Address)
		require.Equal(t, "0555 12 34 56", client.Phone)
		require.True(t, client.IsActive)
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		_, err := clients.Add(ctx, "   ", "", "")
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("rejects a malformed phone", func(t *testing.T) {
		_, err := clients.Add(ctx, "Samir", "", "not-a-phone")
		require.ErrorIs(t, err, ErrValidation)

		_, err = clients.Add(ctx, "Samir", "", "12345")
		require.ErrorIs(t, err, ErrValidation, "too short")
	})

	t.Run("accepts an empty phone", func(t *testing.T) {
		_, err := clients.Add(ctx, "Samir", "", "")
		require.NoError(t, err)
	})
}

func TestClientServiceLifecycle(t *testing.T) {
	store := newTestStore(t)
	clients := NewClientService(store)
	distributions := NewDistributionService(store)
	pricing := NewPricingService(store)
	ctx := context.Background()

	client, err := clients.Add(ctx, "Ali", "", "")
	require.NoError(t, err)

	t.Run("update replaces fields under the same validation", func(t *testing.T) {
		require.NoError(t, clients.Update(ctx, client.ID, "Ali B", "New Rd", "0666 00 11 22"))

		got, err := clients.Get(ctx, client.ID)
		require.NoError(t, err)
		require.Equal(t, "Ali B", got.Name)
		require.Equal(t, "New Rd", got.Address)

		err = clients.Update(ctx, client.ID, "", "", "")
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("update of an unknown client fails", func(t *testing.T) {
		err := clients.Update(ctx, 9999, "Ghost", "", "")
		require.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("deactivation hides the client but keeps history", func(t *testing.T) {
		require.NoError(t, pricing.SetTodayPrice(ctx, 50))
		dist, err := distributions.Record(ctx, client.ID, 10, 0)
		require.NoError(t, err)

		require.NoError(t, clients.Deactivate(ctx, client.ID))

		active, err := clients.ListActive(ctx)
		require.NoError(t, err)
		for _, c := range active {
			require.NotEqual(t, client.ID, c.ID)
		}

		history, err := distributions.ListByClient(ctx, client.ID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		require.Equal(t, dist.ID, history[0].ID)
	})
}

func TestClientServiceOutstandingBalance(t *testing.T) {
	store := newTestStore(t)
	clients := NewClientService(store)
	distributions := NewDistributionService(store)
	pricing := NewPricingService(store)
	ctx := context.Background()

	client, err := clients.Add(ctx, "Ali", "", "")
	require.NoError(t, err)

	t.Run("zero with no distributions", func(t *testing.T) {
		balance, err := clients.OutstandingBalance(ctx, client.ID)
		require.NoError(t, err)
		require.Zero(t, balance)
	})

	t.Run("sums open remainders across distributions", func(t *testing.T) {
		require.NoError(t, pricing.SetTodayPrice(ctx, 50))

		_, err := distributions.Record(ctx, client.ID, 100, 2000) // remaining 3000
		require.NoError(t, err)
		_, err = distributions.Record(ctx, client.ID, 10, 500) // settled on delivery
		require.NoError(t, err)
		_, err = distributions.Record(ctx, client.ID, 20, 0) // remaining 1000
		require.NoError(t, err)

		balance, err := clients.OutstandingBalance(ctx, client.ID)
		require.NoError(t, err)
		require.InDelta(t, 4000, balance, 1e-9)
	})
}
