package wishlist

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/boho-storefront/internal/infrastructure/statestore/mocks"
	streammocks "github.com/example/boho-storefront/internal/infrastructure/stream/mocks"
)

func newTestService() (*Service, *mocks.MockStore, *streammocks.MockPublisher) {
	store := mocks.NewMockStore()
	publisher := streammocks.NewMockPublisher()
	return NewService(store, publisher), store, publisher
}

func necklace() Entry {
	return Entry{
		ProductID: "2",
		Name:      "Goldene Halskette mit Anhänger",
		Price:     decimal.RequireFromString("49.90"),
	}
}

func TestService_Toggle_AddsWhenAbsent(t *testing.T) {
	svc, store, publisher := newTestService()
	ctx := context.Background()

	added, err := svc.Toggle(ctx, "sess-1", necklace())

	require.NoError(t, err)
	assert.True(t, added)

	entries, err := svc.List(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "2", entries[0].ProductID)
	assert.False(t, entries[0].AddedAt.IsZero())

	require.Len(t, store.PutCalls, 1)
	assert.Equal(t, "wishlist:sess-1", store.PutCalls[0].Key)
	assert.Len(t, publisher.PublishCalls, 1)
}

func TestService_Toggle_RemovesWhenPresent(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "sess-1", necklace())
	require.NoError(t, err)

	added, err := svc.Toggle(ctx, "sess-1", necklace())
	require.NoError(t, err)
	assert.False(t, added)

	entries, err := svc.List(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestService_Contains(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "sess-1", necklace())
	require.NoError(t, err)

	ok, err := svc.Contains(ctx, "sess-1", "2")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Contains(ctx, "sess-1", "1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestService_List_PreservesInsertionOrder(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "sess-1", Entry{ProductID: "3", Name: "Perlenkette"})
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, "sess-1", Entry{ProductID: "1", Name: "Armband"})
	require.NoError(t, err)

	entries, err := svc.List(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "3", entries[0].ProductID)
	assert.Equal(t, "1", entries[1].ProductID)
}
