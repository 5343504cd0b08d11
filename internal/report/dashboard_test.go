package report

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos_sales/internal/sales"
)

func TestBuildDashboard_Scenario(t *testing.T) {
	d := BuildDashboard(scenario(), Daily, "2024-01-01")

	assert.True(t, d.AllTimeSales.Equal(dec(35)))

	require.Len(t, d.SalesByProduct, 2)
	assert.Equal(t, "A", d.SalesByProduct[0].ItemName)
	assert.Equal(t, 3, d.SalesByProduct[0].Quantity)
	assert.True(t, d.SalesByProduct[0].Revenue.Equal(dec(30)))
	assert.Equal(t, "B", d.SalesByProduct[1].ItemName)
	assert.Equal(t, 1, d.SalesByProduct[1].Quantity)
	assert.True(t, d.SalesByProduct[1].Revenue.Equal(dec(5)))

	assert.True(t, d.Period.ReferenceValid)
	assert.Equal(t, []string{"1", "2"}, ids(d.Period.Transactions))
	assert.Equal(t, 2, d.Period.Count)
	assert.True(t, d.Period.Revenue.Equal(dec(25)))

	require.Len(t, d.DailyTrend, 2)
	assert.Equal(t, "2024-01-01", d.DailyTrend[0].Date)
	assert.True(t, d.DailyTrend[0].Sales.Equal(dec(25)))
	assert.Equal(t, "2024-01-08", d.DailyTrend[1].Date)
	assert.True(t, d.DailyTrend[1].Sales.Equal(dec(10)))

	require.Len(t, d.RevenueByCategory, 2)
	assert.Equal(t, "X", d.RevenueByCategory[0].Name)
	assert.True(t, d.RevenueByCategory[0].Value.Equal(dec(30)))
	assert.Equal(t, "Y", d.RevenueByCategory[1].Name)

	require.Len(t, d.Top5ByQuantity, 2)
	assert.Equal(t, "A", d.Top5ByQuantity[0].ItemName)
}

func TestBuildDashboard_Top5Length(t *testing.T) {
	var txs []sales.Transaction
	for i := 0; i < 8; i++ {
		txs = append(txs, tx(fmt.Sprint(i), fmt.Sprintf("item-%d", i), "X", 1, i+1, "2024-01-01"))
	}

	for n := 0; n <= len(txs); n++ {
		d := BuildDashboard(txs[:n], Daily, "2024-01-01")
		assert.Len(t, d.Top5ByQuantity, min(5, n))
	}

	d := BuildDashboard(txs, Daily, "2024-01-01")
	assert.Equal(t, "item-7", d.Top5ByQuantity[0].ItemName)
	assert.Equal(t, "item-3", d.Top5ByQuantity[4].ItemName)
}

func TestBuildDashboard_ProductRevenueMatchesAllTime(t *testing.T) {
	txs := append(scenario(), tx("4", "C", "Z", 12, 3, "2024-02-02"))
	txs[0].TotalPrice = decimal.RequireFromString("20.05")

	d := BuildDashboard(txs, Monthly, "2024-01-20")
	sum := decimal.Zero
	for _, p := range d.SalesByProduct {
		sum = sum.Add(p.Revenue)
	}
	assert.True(t, sum.Equal(d.AllTimeSales))
}

func TestBuildDashboard_Empty(t *testing.T) {
	d := BuildDashboard(nil, Weekly, "2024-01-01")

	assert.True(t, d.AllTimeSales.IsZero())
	assert.True(t, d.Period.Revenue.IsZero())
	assert.True(t, d.Period.ReferenceValid)
	assert.True(t, d.Period.ModeValid)
	assert.Empty(t, d.Period.Transactions)
	assert.Empty(t, d.SalesByProduct)
	assert.Empty(t, d.Top5ByQuantity)
	assert.Empty(t, d.DailyTrend)
	assert.Empty(t, d.RevenueByCategory)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "null", "empty views serialize as empty arrays")
}

func TestBuildDashboard_InvalidReference(t *testing.T) {
	d := BuildDashboard(scenario(), Weekly, "31/01/2024")

	assert.False(t, d.Period.ReferenceValid)
	assert.True(t, d.Period.ModeValid)
	assert.Empty(t, d.Period.Transactions)
	assert.True(t, d.Period.Revenue.IsZero())
	assert.True(t, d.AllTimeSales.Equal(dec(35)), "other views are unaffected")
	assert.Len(t, d.SalesByProduct, 2)
}

func TestBuildDashboard_Idempotent(t *testing.T) {
	txs := scenario()
	first, err := json.Marshal(BuildDashboard(txs, Weekly, "2024-01-03"))
	require.NoError(t, err)
	second, err := json.Marshal(BuildDashboard(txs, Weekly, "2024-01-03"))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestBuildDashboard_InvalidModeKeepsReferenceValid(t *testing.T) {
	d := BuildDashboard(scenario(), Mode("Hourly"), "2024-01-01")

	assert.True(t, d.Period.ReferenceValid)
	assert.False(t, d.Period.ModeValid)
	assert.Empty(t, d.Period.Transactions)
	assert.True(t, d.Period.Revenue.IsZero())
}
