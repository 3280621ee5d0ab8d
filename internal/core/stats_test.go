package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jashanpratapsingh/story-shelf-manager/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func TestComputeStatsTotals(t *testing.T) {
	customers := []model.Customer{
		{ID: "c1", Username: "alice", PurchaseHistory: []model.Purchase{
			{ID: "p1", BookID: "a", BookTitle: "A", Quantity: 2, TotalPriceCents: 2000, Date: day(2025, time.January, 5)},
		}},
		{ID: "c2", Username: "bob", PurchaseHistory: []model.Purchase{
			{ID: "p2", BookID: "b", BookTitle: "B", Quantity: 1, TotalPriceCents: 1500, Date: day(2025, time.February, 1)},
		}},
	}

	report := ComputeStats(nil, customers)
	assert.Equal(t, int64(3500), report.TotalRevenueCents)
	assert.Equal(t, 3, report.TotalUnitsSold)
	assert.Equal(t, 2, report.TotalCustomers)
}

func TestComputeStatsTopBooksMergesBeforeRanking(t *testing.T) {
	// Purchases {A:3, B:5, A:2}: A sums to 5, but B keeps rank one
	// because it reached 5 at the second record while A only got there
	// at the third.
	customers := []model.Customer{
		{ID: "c1", Username: "alice", PurchaseHistory: []model.Purchase{
			{ID: "p1", BookID: "a", BookTitle: "Book A", Quantity: 3, TotalPriceCents: 300, Date: day(2025, time.March, 1)},
			{ID: "p2", BookID: "b", BookTitle: "Book B", Quantity: 5, TotalPriceCents: 500, Date: day(2025, time.March, 2)},
			{ID: "p3", BookID: "a", BookTitle: "Book A", Quantity: 2, TotalPriceCents: 200, Date: day(2025, time.March, 3)},
		}},
	}

	report := ComputeStats(nil, customers)
	require.Len(t, report.TopBooks, 2)
	assert.Equal(t, TopBook{BookID: "b", Title: "Book B", Quantity: 5}, report.TopBooks[0])
	assert.Equal(t, TopBook{BookID: "a", Title: "Book A", Quantity: 5}, report.TopBooks[1])
}

func TestComputeStatsTopBooksTieCompletedFirstWins(t *testing.T) {
	// Purchases {A:5, B:2, B:3}: both total 5, but A completed its
	// count at the first record and stays ahead of B's later top-up.
	customers := []model.Customer{
		{ID: "c1", Username: "alice", PurchaseHistory: []model.Purchase{
			{ID: "p1", BookID: "a", BookTitle: "Book A", Quantity: 5, TotalPriceCents: 500, Date: day(2025, time.March, 1)},
			{ID: "p2", BookID: "b", BookTitle: "Book B", Quantity: 2, TotalPriceCents: 200, Date: day(2025, time.March, 2)},
			{ID: "p3", BookID: "b", BookTitle: "Book B", Quantity: 3, TotalPriceCents: 300, Date: day(2025, time.March, 3)},
		}},
	}

	report := ComputeStats(nil, customers)
	require.Len(t, report.TopBooks, 2)
	assert.Equal(t, "a", report.TopBooks[0].BookID)
	assert.Equal(t, "b", report.TopBooks[1].BookID)
}

func TestComputeStatsTopBooksLimitAndTitle(t *testing.T) {
	history := make([]model.Purchase, 0, 7)
	for i, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		history = append(history, model.Purchase{
			ID: id, BookID: id, BookTitle: "T-" + id,
			Quantity: 7 - i, TotalPriceCents: 100, Date: day(2025, time.April, i+1),
		})
	}
	// A later purchase of "a" under a renamed title: the ranking entry
	// carries the most recently seen title.
	history = append(history, model.Purchase{
		ID: "p-last", BookID: "a", BookTitle: "T-a (2nd ed.)",
		Quantity: 1, TotalPriceCents: 100, Date: day(2025, time.May, 1),
	})
	customers := []model.Customer{{ID: "c1", Username: "alice", PurchaseHistory: history}}

	report := ComputeStats(nil, customers)
	require.Len(t, report.TopBooks, 5)
	assert.Equal(t, "a", report.TopBooks[0].BookID)
	assert.Equal(t, "T-a (2nd ed.)", report.TopBooks[0].Title)
	assert.Equal(t, 8, report.TopBooks[0].Quantity)
}

func TestComputeStatsMonthlyRevenueChronological(t *testing.T) {
	customers := []model.Customer{
		{ID: "c1", Username: "alice", PurchaseHistory: []model.Purchase{
			{ID: "p1", BookID: "a", BookTitle: "A", Quantity: 1, TotalPriceCents: 100, Date: day(2025, time.February, 10)},
			{ID: "p2", BookID: "a", BookTitle: "A", Quantity: 1, TotalPriceCents: 200, Date: day(2024, time.December, 24)},
			{ID: "p3", BookID: "a", BookTitle: "A", Quantity: 1, TotalPriceCents: 400, Date: day(2025, time.February, 20)},
			{ID: "p4", BookID: "a", BookTitle: "A", Quantity: 1, TotalPriceCents: 800, Date: day(2025, time.January, 1)},
		}},
	}

	report := ComputeStats(nil, customers)
	require.Len(t, report.MonthlyRevenue, 3)
	assert.Equal(t, MonthlyRevenue{Year: 2024, Month: time.December, Label: "12/2024", RevenueCents: 200}, report.MonthlyRevenue[0])
	assert.Equal(t, MonthlyRevenue{Year: 2025, Month: time.January, Label: "1/2025", RevenueCents: 800}, report.MonthlyRevenue[1])
	assert.Equal(t, MonthlyRevenue{Year: 2025, Month: time.February, Label: "2/2025", RevenueCents: 500}, report.MonthlyRevenue[2])
}

func TestComputeStatsInventory(t *testing.T) {
	books := []model.Book{
		{ID: "b1", Title: "Gone", Quantity: 0},
		{ID: "b2", Title: "Scarce", Quantity: 4},
		{ID: "b3", Title: "Plenty", Quantity: 5},
	}

	report := ComputeStats(books, nil)
	require.Len(t, report.Inventory, 3)
	assert.Equal(t, StockOut, report.Inventory[0].Status)
	assert.Equal(t, StockLow, report.Inventory[1].Status)
	assert.Equal(t, StockIn, report.Inventory[2].Status)
}

func TestStockStatus(t *testing.T) {
	assert.Equal(t, StockOut, StockStatus(0))
	assert.Equal(t, StockLow, StockStatus(1))
	assert.Equal(t, StockLow, StockStatus(4))
	assert.Equal(t, StockIn, StockStatus(5))
	assert.Equal(t, StockIn, StockStatus(100))
}

func TestComputeStatsEmpty(t *testing.T) {
	report := ComputeStats(nil, nil)
	assert.Zero(t, report.TotalRevenueCents)
	assert.Zero(t, report.TotalUnitsSold)
	assert.Zero(t, report.TotalCustomers)
	assert.Empty(t, report.TopBooks)
	assert.Empty(t, report.MonthlyRevenue)
	assert.Empty(t, report.Inventory)
}
