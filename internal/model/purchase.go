package model

import "time"

// Purchase records one completed purchase transaction. It is
// immutable once created. BookTitle is a denormalized copy of the
// book's title at purchase time and is never corrected if the book
// is later renamed or deleted.
//
// Fields:
//  ID              – opaque unique identifier (UUID string).
//  BookID          – identifier of the purchased book.
//  BookTitle       – title captured at purchase time.
//  Quantity        – units purchased, always positive.
//  TotalPriceCents – unit price × quantity, frozen at purchase time.
//  Date            – UTC instant the transaction completed.
type Purchase struct {
	ID              string    `json:"id"`
	BookID          string    `json:"book_id"`
	BookTitle       string    `json:"book_title"`
	Quantity        int       `json:"quantity"`
	TotalPriceCents int64     `json:"total_price_cents"`
	Date            time.Time `json:"date"`
}
