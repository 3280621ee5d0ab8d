package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jashanpratapsingh/story-shelf-manager/internal/model"
)

func purchaseFixtures() ([]model.Book, []model.Customer) {
	books := []model.Book{
		{ID: "b1", Title: "The Go Programming Language", Author: "Donovan & Kernighan", PriceCents: 3999, Quantity: 10},
		{ID: "b2", Title: "Clean Code", Author: "Robert Martin", PriceCents: 2950, Quantity: 2},
	}
	customers := []model.Customer{
		{ID: "c1", Username: "alice", Name: "Alice", PurchaseHistory: []model.Purchase{}},
		{ID: "c2", Username: "bob", Name: "Bob", PurchaseHistory: []model.Purchase{
			{ID: "p0", BookID: "b1", BookTitle: "The Go Programming Language", Quantity: 1, TotalPriceCents: 3999, Date: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)},
		}},
	}
	return books, customers
}

func TestApplyPurchaseSuccess(t *testing.T) {
	books, customers := purchaseFixtures()
	at := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	res, err := ApplyPurchase(books, customers, "alice", "b1", 3, "p1", at)
	require.NoError(t, err)

	// Stock decremented on the new collection only.
	assert.Equal(t, 7, res.Books[0].Quantity)
	assert.Equal(t, 10, books[0].Quantity, "input books must not be mutated")

	// Purchase captured title, price and timestamp.
	assert.Equal(t, model.Purchase{
		ID:              "p1",
		BookID:          "b1",
		BookTitle:       "The Go Programming Language",
		Quantity:        3,
		TotalPriceCents: 3 * 3999,
		Date:            at,
	}, res.Purchase)

	// History appended to the acting customer only.
	require.Len(t, res.Customers[0].PurchaseHistory, 1)
	assert.Equal(t, res.Purchase, res.Customers[0].PurchaseHistory[0])
	assert.Len(t, res.Customers[1].PurchaseHistory, 1)
	assert.Empty(t, customers[0].PurchaseHistory, "input customers must not be mutated")
}

func TestApplyPurchaseExactStock(t *testing.T) {
	books, customers := purchaseFixtures()

	res, err := ApplyPurchase(books, customers, "bob", "b2", 2, "p1", time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Books[1].Quantity, "buying the whole stock floors at zero")
}

func TestApplyPurchaseFailuresLeaveStateUntouched(t *testing.T) {
	cases := []struct {
		name     string
		bookID   string
		username string
		quantity int
		want     error
	}{
		{"insufficient stock", "b2", "alice", 3, ErrInsufficientStock},
		{"zero quantity", "b1", "alice", 0, ErrInvalidQuantity},
		{"negative quantity", "b1", "alice", -4, ErrInvalidQuantity},
		{"book not found", "missing", "alice", 1, ErrBookNotFound},
		{"customer not found", "b1", "ghost", 1, ErrCustomerNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			books, customers := purchaseFixtures()
			wantBooks, wantCustomers := purchaseFixtures()

			_, err := ApplyPurchase(books, customers, tc.username, tc.bookID, tc.quantity, "p1", time.Now().UTC())
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, wantBooks, books)
			assert.Equal(t, wantCustomers, customers)
		})
	}
}

func TestApplyPurchaseTitleFrozenAfterRename(t *testing.T) {
	books, customers := purchaseFixtures()
	res, err := ApplyPurchase(books, customers, "alice", "b1", 1, "p1", time.Now().UTC())
	require.NoError(t, err)

	// Renaming the book afterwards must not touch the recorded title.
	res.Books[0].Title = "Renamed"
	assert.Equal(t, "The Go Programming Language", res.Customers[0].PurchaseHistory[0].BookTitle)
}
