package core

import "github.com/jashanpratapsingh/story-shelf-manager/internal/model"

// Loyalty tier labels and their fixed domain constants: customers
// earn 10 points per currency unit spent and reach Gold at 1000
// points (i.e. 100.00 of cumulative spend).
const (
	TierGold   = "Gold"
	TierSilver = "Silver"

	pointsPerCurrencyUnit = 10
	goldThreshold         = 1000
)

// LoyaltyPoints derives a customer's point total from their purchase
// history. Points are recomputed fresh on every call, never stored,
// and the sum is order-independent.
func LoyaltyPoints(history []model.Purchase) int64 {
	var totalCents int64
	for _, p := range history {
		totalCents += p.TotalPriceCents
	}
	// 10 points per currency unit = totalCents * 10 / 100.
	return totalCents * pointsPerCurrencyUnit / 100
}

// TierFor maps a point total to its tier label.
func TierFor(points int64) string {
	if points >= goldThreshold {
		return TierGold
	}
	return TierSilver
}
