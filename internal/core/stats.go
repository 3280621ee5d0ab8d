package core

import (
	"fmt"
	"sort"
	"time"

	"github.com/jashanpratapsingh/story-shelf-manager/internal/model"
)

// Stock classification labels and the fixed low-stock threshold.
const (
	StockOut = "Out of Stock"
	StockLow = "Low Stock"
	StockIn  = "In Stock"

	lowStockThreshold = 5
)

const topBooksLimit = 5

// TopBook is one entry of the top-selling ranking: a book id with its
// summed sold quantity and the title from the most recently seen
// purchase record for that id.
type TopBook struct {
	BookID   string `json:"book_id"`
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
}

// MonthlyRevenue is one point of the monthly revenue series.
type MonthlyRevenue struct {
	Year         int        `json:"year"`
	Month        time.Month `json:"month"`
	Label        string     `json:"label"`
	RevenueCents int64      `json:"revenue_cents"`
}

// BookStock pairs a catalog entry with its stock classification.
type BookStock struct {
	BookID   string `json:"book_id"`
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
	Status   string `json:"status"`
}

// StatsReport aggregates every sales statistic the owner dashboard
// shows. It is recomputed from scratch on each request; nothing is
// cached or maintained incrementally.
type StatsReport struct {
	TotalRevenueCents int64            `json:"total_revenue_cents"`
	TotalUnitsSold    int              `json:"total_units_sold"`
	TotalCustomers    int              `json:"total_customers"`
	TopBooks          []TopBook        `json:"top_books"`
	MonthlyRevenue    []MonthlyRevenue `json:"monthly_revenue"`
	Inventory         []BookStock      `json:"inventory"`
}

// ComputeStats derives the full statistics report from the current
// collections. All aggregates walk every purchase of every customer
// exactly once, so the cost is O(total purchases + number of books).
func ComputeStats(books []model.Book, customers []model.Customer) StatsReport {
	var report StatsReport
	report.TotalCustomers = len(customers)

	type monthKey struct {
		year  int
		month time.Month
	}
	type salesGroup struct {
		TopBook
		lastSeen int // stream index of the record that completed the total
	}
	sales := make(map[string]*salesGroup)
	groups := make([]*salesGroup, 0)
	monthly := make(map[monthKey]int64)

	seq := 0
	for _, cust := range customers {
		for _, p := range cust.PurchaseHistory {
			report.TotalRevenueCents += p.TotalPriceCents
			report.TotalUnitsSold += p.Quantity

			entry, ok := sales[p.BookID]
			if !ok {
				entry = &salesGroup{TopBook: TopBook{BookID: p.BookID}}
				sales[p.BookID] = entry
				groups = append(groups, entry)
			}
			// Later records win the title so renames show up.
			entry.Title = p.BookTitle
			entry.Quantity += p.Quantity
			entry.lastSeen = seq
			seq++

			k := monthKey{year: p.Date.Year(), month: p.Date.Month()}
			monthly[k] += p.TotalPriceCents
		}
	}

	// Rank by summed quantity. Ties go to the book whose total was
	// completed earlier in the stream: a later top-up cannot overtake
	// a seller that reached the same count first.
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Quantity != groups[j].Quantity {
			return groups[i].Quantity > groups[j].Quantity
		}
		return groups[i].lastSeen < groups[j].lastSeen
	})
	ranked := make([]TopBook, 0, len(groups))
	for _, g := range groups {
		ranked = append(ranked, g.TopBook)
	}
	if len(ranked) > topBooksLimit {
		ranked = ranked[:topBooksLimit]
	}
	report.TopBooks = ranked

	series := make([]MonthlyRevenue, 0, len(monthly))
	for k, cents := range monthly {
		series = append(series, MonthlyRevenue{
			Year:         k.year,
			Month:        k.month,
			Label:        fmt.Sprintf("%d/%d", int(k.month), k.year),
			RevenueCents: cents,
		})
	}
	sort.Slice(series, func(i, j int) bool {
		if series[i].Year != series[j].Year {
			return series[i].Year < series[j].Year
		}
		return series[i].Month < series[j].Month
	})
	report.MonthlyRevenue = series

	inventory := make([]BookStock, 0, len(books))
	for _, b := range books {
		inventory = append(inventory, BookStock{
			BookID:   b.ID,
			Title:    b.Title,
			Quantity: b.Quantity,
			Status:   StockStatus(b.Quantity),
		})
	}
	report.Inventory = inventory

	return report
}

// StockStatus classifies a stock level against the fixed thresholds.
func StockStatus(quantity int) string {
	switch {
	case quantity == 0:
		return StockOut
	case quantity < lowStockThreshold:
		return StockLow
	default:
		return StockIn
	}
}
