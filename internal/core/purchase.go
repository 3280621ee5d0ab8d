package core

import (
	"time"

	"github.com/jashanpratapsingh/story-shelf-manager/internal/model"
)

// PurchaseResult carries the outcome of a successful purchase
// transaction: whole replacement slices for both collections plus the
// purchase record that was appended. The input slices are never
// modified; callers swap references on success.
type PurchaseResult struct {
	Books     []model.Book
	Customers []model.Customer
	Purchase  model.Purchase
}

// ApplyPurchase executes the purchase transaction: it decrements the
// matched book's stock, builds a Purchase with the book's title and
// price captured now, and appends it to the acting customer's
// history. The id becomes the purchase id and at its timestamp.
//
// The transaction is all-or-nothing: any failure returns a sentinel
// error and leaves both input collections byte-for-byte unchanged.
// An acting username with no customer record is a hard
// ErrCustomerNotFound rather than a silent no-op, so the stock
// decrement can never happen without the matching history append.
func ApplyPurchase(books []model.Book, customers []model.Customer, username, bookID string, quantity int, id string, at time.Time) (PurchaseResult, error) {
	if quantity <= 0 {
		return PurchaseResult{}, ErrInvalidQuantity
	}

	bookIdx := -1
	for i, b := range books {
		if b.ID == bookID {
			bookIdx = i
			break
		}
	}
	if bookIdx == -1 {
		return PurchaseResult{}, ErrBookNotFound
	}
	book := books[bookIdx]
	if quantity > book.Quantity {
		return PurchaseResult{}, ErrInsufficientStock
	}

	custIdx := -1
	for i, c := range customers {
		if c.Username == username {
			custIdx = i
			break
		}
	}
	if custIdx == -1 {
		return PurchaseResult{}, ErrCustomerNotFound
	}

	purchase := model.Purchase{
		ID:              id,
		BookID:          book.ID,
		BookTitle:       book.Title,
		Quantity:        quantity,
		TotalPriceCents: book.PriceCents * int64(quantity),
		Date:            at,
	}

	newBooks := make([]model.Book, len(books))
	copy(newBooks, books)
	newBooks[bookIdx].Quantity -= quantity

	newCustomers := make([]model.Customer, len(customers))
	copy(newCustomers, customers)
	cust := newCustomers[custIdx]
	history := make([]model.Purchase, len(cust.PurchaseHistory), len(cust.PurchaseHistory)+1)
	copy(history, cust.PurchaseHistory)
	newCustomers[custIdx].PurchaseHistory = append(history, purchase)

	return PurchaseResult{Books: newBooks, Customers: newCustomers, Purchase: purchase}, nil
}
