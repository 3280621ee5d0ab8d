// Package state holds the application state container: the book and
// customer collections behind a single lock, with every operation
// expressed through the pure functions in internal/core. Mutations
// swap whole collections on success (copy-on-write) and trigger a
// fire-and-forget save through the persistence adapter; a failed save
// is logged and swallowed, never undoing the in-memory transaction.
package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jashanpratapsingh/story-shelf-manager/internal/core"
	"github.com/jashanpratapsingh/story-shelf-manager/internal/kv"
	"github.com/jashanpratapsingh/story-shelf-manager/internal/model"
	"github.com/jashanpratapsingh/story-shelf-manager/internal/utils"
)

// Persistence keys, one JSON array per collection. They mirror the
// layout the store has always used, so existing data loads unchanged.
const (
	booksKey     = "books"
	customersKey = "customers"
)

// ErrValidation wraps every malformed-input failure. Handlers match
// it with errors.Is and answer 400.
var ErrValidation = errors.New("validation failed")

// ErrDuplicateUsername is returned when a new customer's username is
// already taken. The comparison is case-insensitive: "Alice" and
// "alice" cannot coexist.
var ErrDuplicateUsername = errors.New("username already exists")

// Store is the state container. One instance exists per process.
type Store struct {
	mu         sync.RWMutex
	kv         kv.Store
	owner      core.OwnerCredential
	bcryptCost int

	books     []model.Book
	customers []model.Customer
}

// New builds a Store over the given persistence adapter. Call Load
// before serving requests.
func New(store kv.Store, owner core.OwnerCredential, bcryptCost int) *Store {
	return &Store{kv: store, owner: owner, bcryptCost: bcryptCost}
}

// Load reads both collections from the adapter. Missing keys mean a
// fresh installation and yield empty collections.
func (s *Store) Load(ctx context.Context) error {
	books, err := loadSlice[model.Book](ctx, s.kv, booksKey)
	if err != nil {
		return fmt.Errorf("load books: %w", err)
	}
	customers, err := loadSlice[model.Customer](ctx, s.kv, customersKey)
	if err != nil {
		return fmt.Errorf("load customers: %w", err)
	}
	s.mu.Lock()
	s.books = books
	s.customers = customers
	s.mu.Unlock()
	return nil
}

func loadSlice[T any](ctx context.Context, store kv.Store, key string) ([]T, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return out, nil
}

// Save writes both collections to the adapter. Used at shutdown and
// on logout; mutating operations go through persist instead.
func (s *Store) Save(ctx context.Context) error {
	s.mu.RLock()
	books, customers := s.books, s.customers
	s.mu.RUnlock()

	rawBooks, err := json.Marshal(books)
	if err != nil {
		return err
	}
	rawCustomers, err := json.Marshal(customers)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, booksKey, rawBooks); err != nil {
		return fmt.Errorf("save books: %w", err)
	}
	if err := s.kv.Set(ctx, customersKey, rawCustomers); err != nil {
		return fmt.Errorf("save customers: %w", err)
	}
	return nil
}

// persist saves after a mutation. Persistence is not part of the
// transactional guarantee: failures are logged and otherwise ignored.
func (s *Store) persist(ctx context.Context) {
	if err := s.Save(ctx); err != nil {
		log.Printf("state: save failed: %v", err)
	}
}

// Authenticate validates credentials against the owner credential and
// the customer collection.
func (s *Store) Authenticate(username, password string) (model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return core.Authenticate(s.owner, s.customers, username, password)
}

// Books returns a copy of the catalog.
func (s *Store) Books() []model.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Book, len(s.books))
	copy(out, s.books)
	return out
}

// Customers returns a copy of the customer collection.
func (s *Store) Customers() []model.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

// CustomerByUsername looks up a customer by exact username.
func (s *Store) CustomerByUsername(username string) (model.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if c.Username == username {
			return c, true
		}
	}
	return model.Customer{}, false
}

// AddBook validates and appends a new catalog entry.
func (s *Store) AddBook(ctx context.Context, title, author string, priceCents int64, quantity int) (model.Book, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)
	if err := validateBook(title, author, priceCents, quantity); err != nil {
		return model.Book{}, err
	}
	book := model.Book{
		ID:         uuid.NewString(),
		Title:      title,
		Author:     author,
		PriceCents: priceCents,
		Quantity:   quantity,
	}
	s.mu.Lock()
	books := make([]model.Book, len(s.books), len(s.books)+1)
	copy(books, s.books)
	s.books = append(books, book)
	s.mu.Unlock()
	s.persist(ctx)
	return book, nil
}

// UpdateBook replaces the fields of an existing catalog entry.
func (s *Store) UpdateBook(ctx context.Context, id, title, author string, priceCents int64, quantity int) (model.Book, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)
	if err := validateBook(title, author, priceCents, quantity); err != nil {
		return model.Book{}, err
	}
	s.mu.Lock()
	idx := -1
	for i, b := range s.books {
		if b.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return model.Book{}, core.ErrBookNotFound
	}
	books := make([]model.Book, len(s.books))
	copy(books, s.books)
	books[idx] = model.Book{ID: id, Title: title, Author: author, PriceCents: priceCents, Quantity: quantity}
	s.books = books
	s.mu.Unlock()
	s.persist(ctx)
	return books[idx], nil
}

// DeleteBook removes a catalog entry. Past purchases keep their
// denormalized titles, so history is unaffected.
func (s *Store) DeleteBook(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := -1
	for i, b := range s.books {
		if b.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return core.ErrBookNotFound
	}
	books := make([]model.Book, 0, len(s.books)-1)
	books = append(books, s.books[:idx]...)
	books = append(books, s.books[idx+1:]...)
	s.books = books
	s.mu.Unlock()
	s.persist(ctx)
	return nil
}

// AddCustomer validates, hashes the password and appends a new
// customer with an empty purchase history.
func (s *Store) AddCustomer(ctx context.Context, username, password, name string) (model.Customer, error) {
	username = strings.TrimSpace(username)
	name = strings.TrimSpace(name)
	if username == "" || password == "" || name == "" {
		return model.Customer{}, fmt.Errorf("%w: username, password and name are required", ErrValidation)
	}
	hash, err := utils.HashPassword(password, s.bcryptCost)
	if err != nil {
		return model.Customer{}, err
	}
	customer := model.Customer{
		ID:              uuid.NewString(),
		Username:        username,
		PasswordHash:    hash,
		Name:            name,
		PurchaseHistory: []model.Purchase{},
	}
	s.mu.Lock()
	for _, c := range s.customers {
		if strings.EqualFold(c.Username, username) {
			s.mu.Unlock()
			return model.Customer{}, ErrDuplicateUsername
		}
	}
	customers := make([]model.Customer, len(s.customers), len(s.customers)+1)
	copy(customers, s.customers)
	s.customers = append(customers, customer)
	s.mu.Unlock()
	s.persist(ctx)
	return customer, nil
}

// UpdateCustomer changes a customer's display name and, when password
// is non-empty, rehashes their password. Usernames are immutable so
// the session-to-history link never breaks.
func (s *Store) UpdateCustomer(ctx context.Context, id, name, password string) (model.Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Customer{}, fmt.Errorf("%w: name is required", ErrValidation)
	}
	var hash string
	if password != "" {
		var err error
		hash, err = utils.HashPassword(password, s.bcryptCost)
		if err != nil {
			return model.Customer{}, err
		}
	}
	s.mu.Lock()
	idx := -1
	for i, c := range s.customers {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return model.Customer{}, core.ErrCustomerNotFound
	}
	customers := make([]model.Customer, len(s.customers))
	copy(customers, s.customers)
	if hash != "" {
		customers[idx].PasswordHash = hash
	}
	customers[idx].Name = name
	s.customers = customers
	updated := customers[idx]
	s.mu.Unlock()
	s.persist(ctx)
	return updated, nil
}

// DeleteCustomer removes a customer account and its history.
func (s *Store) DeleteCustomer(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := -1
	for i, c := range s.customers {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return core.ErrCustomerNotFound
	}
	customers := make([]model.Customer, 0, len(s.customers)-1)
	customers = append(customers, s.customers[:idx]...)
	customers = append(customers, s.customers[idx+1:]...)
	s.customers = customers
	s.mu.Unlock()
	s.persist(ctx)
	return nil
}

// Purchase runs the purchase transaction for the acting customer and
// swaps both collections atomically under the lock.
func (s *Store) Purchase(ctx context.Context, username, bookID string, quantity int) (model.Purchase, error) {
	id := uuid.NewString()
	now := time.Now().UTC()

	s.mu.Lock()
	result, err := core.ApplyPurchase(s.books, s.customers, username, bookID, quantity, id, now)
	if err != nil {
		s.mu.Unlock()
		return model.Purchase{}, err
	}
	s.books = result.Books
	s.customers = result.Customers
	s.mu.Unlock()
	s.persist(ctx)
	return result.Purchase, nil
}

// Stats recomputes the full statistics report from scratch.
func (s *Store) Stats() core.StatsReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return core.ComputeStats(s.books, s.customers)
}

// Loyalty returns the acting customer's point total and tier.
func (s *Store) Loyalty(username string) (int64, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if c.Username == username {
			points := core.LoyaltyPoints(c.PurchaseHistory)
			return points, core.TierFor(points), nil
		}
	}
	return 0, "", core.ErrCustomerNotFound
}

func validateBook(title, author string, priceCents int64, quantity int) error {
	if title == "" || author == "" {
		return fmt.Errorf("%w: title and author are required", ErrValidation)
	}
	if priceCents <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrValidation)
	}
	if quantity < 0 {
		return fmt.Errorf("%w: quantity cannot be negative", ErrValidation)
	}
	return nil
}
