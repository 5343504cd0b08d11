package sales

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// TransactionsKey is the well-known key the transaction collection is persisted under.
const TransactionsKey = "transactions_v1"

// ErrNoValue is returned by a KeyValue when nothing is stored under the key.
var ErrNoValue = errors.New("no value stored for key")

// ErrEmptyKey is returned when trying to store a value under an empty key.
var ErrEmptyKey = errors.New("empty key")

// Storage is the persistence boundary for the transaction collection.
// Load never fails: missing or corrupt data reads as an empty collection.
type Storage interface {
	Load(ctx context.Context) []Transaction
	Save(ctx context.Context, transactions []Transaction) error
}

// KeyValue is a durable byte store addressed by string keys.
type KeyValue interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// LocalStorage provides an in-memory KeyValue implementation.
type LocalStorage struct {
	mu sync.RWMutex
	m  map[string][]byte
}

// NewLocalStorage instantiates a new LocalStorage with an empty map.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{
		m: map[string][]byte{},
	}
}

// Get returns a copy of the value stored under key.
// Returns ErrNoValue if the key was never written.
func (l *LocalStorage) Get(_ context.Context, key string) ([]byte, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	v, ok := l.m[key]
	if !ok {
		return nil, ErrNoValue
	}
	return append([]byte(nil), v...), nil
}

// Put replaces the value stored under key.
func (l *LocalStorage) Put(_ context.Context, key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.m[key] = append([]byte(nil), value...)
	return nil
}

// KVStorage persists the whole collection as a JSON array under TransactionsKey.
type KVStorage struct {
	kv     KeyValue
	logger *zap.Logger
}

// NewKVStorage creates a Storage on top of a KeyValue backend.
func NewKVStorage(kv KeyValue, logger *zap.Logger) *KVStorage {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KVStorage{kv: kv, logger: logger}
}

// Load reads the persisted collection. Absent, unreadable or corrupt payloads
// degrade to an empty collection.
func (s *KVStorage) Load(ctx context.Context) []Transaction {
	raw, err := s.kv.Get(ctx, TransactionsKey)
	if err != nil {
		if !errors.Is(err, ErrNoValue) {
			s.logger.Warn("failed to read transactions", zap.String("key", TransactionsKey), zap.Error(err))
		}
		return []Transaction{}
	}
	if len(raw) == 0 {
		return []Transaction{}
	}

	var txs []Transaction
	if err := json.Unmarshal(raw, &txs); err != nil {
		s.logger.Warn("stored transactions are corrupt, treating as empty",
			zap.String("key", TransactionsKey),
			zap.Int("payload_bytes", len(raw)),
			zap.Error(err),
		)
		return []Transaction{}
	}
	if txs == nil {
		return []Transaction{}
	}
	return txs
}

// Save replaces the entire persisted collection.
func (s *KVStorage) Save(ctx context.Context, transactions []Transaction) error {
	if transactions == nil {
		transactions = []Transaction{}
	}
	raw, err := json.Marshal(transactions)
	if err != nil {
		return fmt.Errorf("encode transactions: %w", err)
	}
	if err := s.kv.Put(ctx, TransactionsKey, raw); err != nil {
		return fmt.Errorf("save transactions: %w", err)
	}
	return nil
}
