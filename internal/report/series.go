package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"pos_sales/internal/sales"
)

// SeriesPoint is the revenue recorded on one calendar day.
type SeriesPoint struct {
	Date  string          `json:"date"`
	Sales decimal.Decimal `json:"sales"`
}

// DailySeries returns one point per distinct date in txs, oldest first.
// Days without sales are not synthesized.
func DailySeries(txs []sales.Transaction) []SeriesPoint {
	groups := GroupBy(txs, ByDate)
	points := make([]SeriesPoint, len(groups))
	for i, g := range groups {
		points[i] = SeriesPoint{Date: g.Key, Sales: g.Revenue}
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}
