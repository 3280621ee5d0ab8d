package model

// Book is a single catalog entry owned by the store. Prices are kept
// in integer cents to avoid floating point drift when totals and
// loyalty points are derived from them.
//
// Fields:
//  ID         – opaque unique identifier (UUID string).
//  Title      – book title.
//  Author     – book author.
//  PriceCents – unit price in cents, always positive.
//  Quantity   – stock on hand, never negative.
type Book struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	PriceCents int64  `json:"price_cents"`
	Quantity   int    `json:"quantity"`
}
