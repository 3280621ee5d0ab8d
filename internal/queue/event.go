// Package queue defines message payloads exchanged over the message
// broker and the background consumer that records them.
package queue

// PurchaseCompletedEvent is published after a purchase transaction
// commits. It carries enough information for downstream consumers to
// log, notify, or feed analytics without reading the primary store.
type PurchaseCompletedEvent struct {
	PurchaseID      string `json:"purchase_id"`
	Username        string `json:"username"`
	BookID          string `json:"book_id"`
	BookTitle       string `json:"book_title"`
	Quantity        int    `json:"quantity"`
	TotalPriceCents int64  `json:"total_price_cents"`
	PurchasedAt     string `json:"purchased_at"`
}
