package sales

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the zero-padded calendar day format every transaction date is stored in.
// Lexicographic order on this layout matches chronological order.
const DateLayout = "2006-01-02"

// Transaction represents one recorded point-of-sale event.
// Records are never mutated after creation.
type Transaction struct {
	ID         string          `json:"id"`
	ItemName   string          `json:"itemName"`
	Category   string          `json:"category"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	Quantity   int             `json:"quantity"`
	Date       string          `json:"date"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// Product is a read-only catalog entry used to stamp new transactions.
type Product struct {
	ItemName  string          `json:"itemName"`
	Category  string          `json:"category"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// SaleRequest carries the user input for a new sale.
type SaleRequest struct {
	ItemName string
	Quantity int
	// Date is a YYYY-MM-DD calendar day. Empty means today.
	Date string
}

// normalizeDate parses a calendar day and re-renders it zero padded.
func normalizeDate(s string) (string, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", err
	}
	return t.Format(DateLayout), nil
}
