package report

import (
	"errors"

	"github.com/shopspring/decimal"

	"pos_sales/internal/sales"
)

// TopN is the length of the best-sellers list.
const TopN = 5

// PeriodSummary is the slice of sales inside the selected period.
// ReferenceValid is false when the reference date could not be parsed and
// ModeValid is false for a mode other than Daily, Weekly or Monthly; either
// leaves the summary empty.
type PeriodSummary struct {
	Period
	ReferenceValid bool                `json:"referenceValid"`
	ModeValid      bool                `json:"modeValid"`
	Transactions   []sales.Transaction `json:"transactions"`
	Count          int                 `json:"count"`
	Revenue        decimal.Decimal     `json:"revenue"`
}

// Dashboard is every view the sales dashboard renders.
type Dashboard struct {
	AllTimeSales      decimal.Decimal  `json:"allTimeSales"`
	Period            PeriodSummary    `json:"period"`
	SalesByProduct    []ProductSummary `json:"salesByProduct"`
	Top5ByQuantity    []ProductSummary `json:"top5ByQuantity"`
	DailyTrend        []SeriesPoint    `json:"dailyTrend"`
	RevenueByCategory []CategoryShare  `json:"revenueByCategory"`
}

// BuildDashboard computes the dashboard from a snapshot of transactions.
// It holds no state: identical inputs yield identical output.
func BuildDashboard(txs []sales.Transaction, mode Mode, reference string) Dashboard {
	filtered, period, err := Filter(txs, mode, reference)

	byProduct := GroupBy(txs, ByItemName)
	byCategory := GroupBy(txs, ByCategory)

	categories := make([]CategoryShare, len(byCategory))
	for i, g := range byCategory {
		categories[i] = CategoryShare{Name: g.Key, Value: g.Revenue}
	}

	return Dashboard{
		AllTimeSales: Sum(txs),
		Period: PeriodSummary{
			Period:         period,
			ReferenceValid: !errors.Is(err, ErrInvalidReferenceDate),
			ModeValid:      !errors.Is(err, ErrInvalidMode),
			Transactions:   filtered,
			Count:          len(filtered),
			Revenue:        Sum(filtered),
		},
		SalesByProduct:    ToProductSummary(Rank(byProduct, ByRevenue, 0)),
		Top5ByQuantity:    ToProductSummary(Rank(byProduct, ByQuantity, TopN)),
		DailyTrend:        DailySeries(txs),
		RevenueByCategory: categories,
	}
}
