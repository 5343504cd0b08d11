package sales

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrProductNotFound is returned when a sale references an item missing from the catalog.
var ErrProductNotFound = errors.New("product not found")

// ErrInvalidQuantity is returned when a sale quantity is below one.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// ErrInvalidDate is returned when a sale date is not a YYYY-MM-DD calendar day.
var ErrInvalidDate = errors.New("invalid sale date")

// Service provides sale entry operations on a Storage backend.
// It is the only writer of the collection; mu serializes load-modify-save.
type Service struct {
	mu      sync.Mutex
	storage Storage
	catalog Catalog
	logger  *zap.Logger
	now     func() time.Time
}

// NewService creates a new Service.
func NewService(storage Storage, catalog Catalog, logger *zap.Logger) *Service {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}

	return &Service{
		storage: storage,
		catalog: catalog,
		logger:  logger,
		now:     time.Now,
	}
}

// Today returns the current calendar day in DateLayout.
func (s *Service) Today() string {
	return s.now().Format(DateLayout)
}

// Products returns the catalog in its original order.
func (s *Service) Products() []Product {
	return s.catalog.ListProducts()
}

// Quote returns the total a sale of quantity units of itemName would be recorded with.
func (s *Service) Quote(itemName string, quantity int) (decimal.Decimal, error) {
	if quantity < 1 {
		return decimal.Zero, ErrInvalidQuantity
	}
	p, ok := s.catalog.Lookup(itemName)
	if !ok {
		return decimal.Zero, ErrProductNotFound
	}
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(quantity))), nil
}

// CreateSale stamps a new transaction from the catalog and prepends it to the collection.
func (s *Service) CreateSale(ctx context.Context, req SaleRequest) (*Transaction, error) {
	if req.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	product, ok := s.catalog.Lookup(req.ItemName)
	if !ok {
		s.logger.Warn("sale rejected: unknown product", zap.String("item_name", req.ItemName))
		return nil, ErrProductNotFound
	}

	date := req.Date
	if date == "" {
		date = s.Today()
	}
	date, err := normalizeDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	tx := Transaction{
		ID:         uuid.NewString(),
		ItemName:   product.ItemName,
		Category:   product.Category,
		UnitPrice:  product.UnitPrice,
		Quantity:   req.Quantity,
		Date:       date,
		TotalPrice: product.UnitPrice.Mul(decimal.NewFromInt(int64(req.Quantity))),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.storage.Load(ctx)
	next := make([]Transaction, 0, len(current)+1)
	next = append(next, tx)
	next = append(next, current...)

	if err := s.storage.Save(ctx, next); err != nil {
		s.logger.Error("failed to save sale", zap.String("sale_id", tx.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to save sale: %w", err)
	}

	s.logger.Info("sale created",
		zap.String("sale_id", tx.ID),
		zap.String("item_name", tx.ItemName),
		zap.Int("quantity", tx.Quantity),
		zap.Stringer("total_price", tx.TotalPrice),
		zap.String("date", tx.Date),
	)
	return &tx, nil
}

// Transactions returns a fresh snapshot of the collection, newest first.
func (s *Service) Transactions(ctx context.Context) []Transaction {
	return s.storage.Load(ctx)
}

// Clear removes every recorded transaction.
func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Save(ctx, []Transaction{}); err != nil {
		s.logger.Error("failed to clear transactions", zap.Error(err))
		return fmt.Errorf("failed to clear transactions: %w", err)
	}
	s.logger.Info("transactions cleared")
	return nil
}
