package model

// Customer is an account created by the owner. The purchase history
// is append-only: entries are added by the purchase transaction in
// chronological order and never rewritten afterwards.
//
// Passwords are stored as bcrypt hashes, never in plain text. The
// stored username keeps its original casing; duplicate checks at
// creation time compare case-insensitively.
//
// Fields:
//  ID              – opaque unique identifier (UUID string).
//  Username        – unique login name.
//  PasswordHash    – bcrypt hash of the customer's password.
//  Name            – display name.
//  PurchaseHistory – ordered purchase records, oldest first.
type Customer struct {
	ID              string     `json:"id"`
	Username        string     `json:"username"`
	PasswordHash    string     `json:"password_hash"`
	Name            string     `json:"name"`
	PurchaseHistory []Purchase `json:"purchase_history"`
}
