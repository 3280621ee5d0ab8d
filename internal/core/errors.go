// Package core implements the bookstore domain logic as pure
// functions over the book and customer collections. Every operation
// either succeeds and returns fresh collections, or fails with one of
// the sentinel errors below leaving its inputs untouched. Handlers
// translate these sentinels into HTTP status codes.
package core

import "errors"

// ErrInvalidCredentials is returned for every failed authentication
// attempt. Unknown usernames and wrong passwords are deliberately not
// distinguished so the API does not leak account existence.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrBookNotFound is returned when no book matches the requested id.
var ErrBookNotFound = errors.New("book not found")

// ErrCustomerNotFound is returned when the acting username does not
// match any customer record, e.g. an account deleted mid-session.
var ErrCustomerNotFound = errors.New("customer not found")

// ErrInvalidQuantity is returned when a purchase requests zero or a
// negative number of units.
var ErrInvalidQuantity = errors.New("quantity must be positive")

// ErrInsufficientStock is returned when a purchase requests more
// units than the book has on hand.
var ErrInsufficientStock = errors.New("insufficient stock")
