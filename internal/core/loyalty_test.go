package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jashanpratapsingh/story-shelf-manager/internal/model"
)

func TestLoyaltyPointsEmptyHistory(t *testing.T) {
	assert.Equal(t, int64(0), LoyaltyPoints(nil))
	assert.Equal(t, TierSilver, TierFor(LoyaltyPoints(nil)))
}

func TestLoyaltyPointsGoldBoundary(t *testing.T) {
	// Exactly 100.00 of spend is exactly 1000 points, which is Gold.
	history := []model.Purchase{
		{ID: "p1", TotalPriceCents: 6000},
		{ID: "p2", TotalPriceCents: 4000},
	}
	points := LoyaltyPoints(history)
	assert.Equal(t, int64(1000), points)
	assert.Equal(t, TierGold, TierFor(points))

	// One cent short stays Silver.
	short := []model.Purchase{{ID: "p1", TotalPriceCents: 9999}}
	assert.Equal(t, int64(999), LoyaltyPoints(short))
	assert.Equal(t, TierSilver, TierFor(LoyaltyPoints(short)))
}

func TestLoyaltyPointsOrderIndependent(t *testing.T) {
	a := []model.Purchase{
		{ID: "p1", TotalPriceCents: 1250},
		{ID: "p2", TotalPriceCents: 875},
		{ID: "p3", TotalPriceCents: 4400},
	}
	b := []model.Purchase{a[2], a[0], a[1]}
	assert.Equal(t, LoyaltyPoints(a), LoyaltyPoints(b))
}

func TestTierFor(t *testing.T) {
	assert.Equal(t, TierSilver, TierFor(0))
	assert.Equal(t, TierSilver, TierFor(999))
	assert.Equal(t, TierGold, TierFor(1000))
	assert.Equal(t, TierGold, TierFor(250000))
}
