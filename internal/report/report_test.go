package report

import (
	"github.com/shopspring/decimal"

	"pos_sales/internal/sales"
)

func tx(id, item, category string, price int64, qty int, date string) sales.Transaction {
	unit := decimal.NewFromInt(price)
	return sales.Transaction{
		ID:         id,
		ItemName:   item,
		Category:   category,
		UnitPrice:  unit,
		Quantity:   qty,
		Date:       date,
		TotalPrice: unit.Mul(decimal.NewFromInt(int64(qty))),
	}
}

// scenario is the three-record example used across the engine tests.
func scenario() []sales.Transaction {
	return []sales.Transaction{
		tx("1", "A", "X", 10, 2, "2024-01-01"),
		tx("2", "B", "Y", 5, 1, "2024-01-01"),
		tx("3", "A", "X", 10, 1, "2024-01-08"),
	}
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }
