package report

import (
	"github.com/shopspring/decimal"

	"pos_sales/internal/sales"
)

// Group holds the summed figures for all transactions sharing a key.
type Group struct {
	Key      string          `json:"key"`
	Count    int             `json:"count"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// KeyFunc extracts the aggregation key from a transaction.
type KeyFunc func(sales.Transaction) string

// ByItemName groups by product.
func ByItemName(t sales.Transaction) string { return t.ItemName }

// ByCategory groups by the category stamped at sale time.
func ByCategory(t sales.Transaction) string { return t.Category }

// ByDate groups by calendar day.
func ByDate(t sales.Transaction) string { return t.Date }

// GroupBy aggregates transactions in a single pass. Groups are emitted in order
// of first occurrence in txs. TotalPrice is summed as stored, never recomputed.
func GroupBy(txs []sales.Transaction, key KeyFunc) []Group {
	index := make(map[string]int)
	groups := make([]Group, 0)

	for _, t := range txs {
		k := key(t)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Key: k, Revenue: decimal.Zero})
		}
		g := &groups[i]
		g.Count++
		g.Quantity += t.Quantity
		g.Revenue = g.Revenue.Add(t.TotalPrice)
	}
	return groups
}

// Sum returns the total revenue of txs.
func Sum(txs []sales.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txs {
		total = total.Add(t.TotalPrice)
	}
	return total
}

// ProductSummary is a per-product row of the sales table.
type ProductSummary struct {
	ItemName string          `json:"itemName"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
	Count    int             `json:"transactions"`
}

// ToProductSummary labels groups keyed by item name.
func ToProductSummary(groups []Group) []ProductSummary {
	out := make([]ProductSummary, len(groups))
	for i, g := range groups {
		out[i] = ProductSummary{
			ItemName: g.Key,
			Quantity: g.Quantity,
			Revenue:  g.Revenue,
			Count:    g.Count,
		}
	}
	return out
}

// CategoryShare is one slice of the revenue-by-category breakdown.
type CategoryShare struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}
