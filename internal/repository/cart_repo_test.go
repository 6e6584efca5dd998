package repository

import (
	"testing"

	"FigureShopAPI/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLines() []model.CartLine {
	return []model.CartLine{
		{Product: model.Product{ID: "1", Name: "Iron Man Mark LXXXV", Price: 450000}, Quantity: 2},
		{Product: model.Product{ID: "2", Name: "Spider-Man (Black & Gold Suit)", Price: 320000}, Quantity: 1},
	}
}

func TestCartRepoRoundTrip(t *testing.T) {
	repo := NewCartRepository(NewMemoryStore())

	require.NoError(t, repo.Save("s1", sampleLines()))

	// same lines, same quantities, same order
	assert.Equal(t, sampleLines(), repo.Load("s1"))
}

func TestCartRepoMissingKeyIsEmpty(t *testing.T) {
	repo := NewCartRepository(NewMemoryStore())
	assert.Empty(t, repo.Load("nobody"))
}

func TestCartRepoCorruptDataIsEmpty(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set("figure-shop-cart/s1", "definitely not json"))

	repo := NewCartRepository(store)
	assert.Empty(t, repo.Load("s1"))
}

func TestCartRepoClear(t *testing.T) {
	repo := NewCartRepository(NewMemoryStore())

	require.NoError(t, repo.Save("s1", sampleLines()))
	require.NoError(t, repo.Clear("s1"))
	assert.Empty(t, repo.Load("s1"))
}

func TestOrderRepoLastOrder(t *testing.T) {
	repo := NewOrderRepository(NewMemoryStore())

	_, ok := repo.GetLastOrder("s1")
	assert.False(t, ok)

	oc := model.OrderConfirmation{
		OrderID:    "payment-abc",
		Items:      sampleLines(),
		TotalPrice: 1220000,
		Buyer:      model.OrderForm{Name: "n", Phone: "p", Email: "e", Address: "a"},
	}
	require.NoError(t, repo.SaveLastOrder("s1", oc))

	got, ok := repo.GetLastOrder("s1")
	require.True(t, ok)
	assert.Equal(t, oc.OrderID, got.OrderID)
	assert.Equal(t, oc.Items, got.Items)
	assert.Equal(t, oc.TotalPrice, got.TotalPrice)
}

func TestOrderRepoCorruptDataIsAbsent(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set("last-order/s1", "<garbage>"))

	repo := NewOrderRepository(store)
	_, ok := repo.GetLastOrder("s1")
	assert.False(t, ok)
}
