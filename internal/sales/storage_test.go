package sales

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type failingKV struct{}

func (failingKV) Get(context.Context, string) ([]byte, error) { return nil, errors.New("disk on fire") }
func (failingKV) Put(context.Context, string, []byte) error { return errors.New("disk on fire") }

func TestLocalStorage_GetPut(t *testing.T) {
	ctx := context.Background()
	l := NewLocalStorage()

	_, err := l.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNoValue)

	assert.ErrorIs(t, l.Put(ctx, "", []byte("x")), ErrEmptyKey)

	value := []byte("hello")
	require.NoError(t, l.Put(ctx, "k", value))
	value[0] = 'j'

	got, err := l.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got), "stored value must not alias the caller's slice")
}

func TestKVStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewKVStorage(NewLocalStorage(), zaptest.NewLogger(t))

	in := []Transaction{
		{ID: "b", ItemName: "Latte", Category: "Coffee", UnitPrice: decimal.NewFromInt(65), Quantity: 2, Date: "2024-01-02", TotalPrice: decimal.NewFromInt(130)},
		{ID: "a", ItemName: "Croissant", Category: "Bakery", UnitPrice: decimal.RequireFromString("45.5"), Quantity: 1, Date: "2024-01-01", TotalPrice: decimal.RequireFromString("45.5")},
	}
	require.NoError(t, store.Save(ctx, in))

	out := store.Load(ctx)
	require.Len(t, out, 2)
	assert.Equal(t, "b", out[0].ID)
	assert.Equal(t, "a", out[1].ID)
	assert.True(t, out[1].TotalPrice.Equal(decimal.RequireFromString("45.5")))
}

func TestKVStorage_PayloadIsFieldNamed(t *testing.T) {
	ctx := context.Background()
	kv := NewLocalStorage()
	store := NewKVStorage(kv, zaptest.NewLogger(t))

	require.NoError(t, store.Save(ctx, []Transaction{{ID: "a", ItemName: "Latte", Quantity: 1, Date: "2024-01-01"}}))

	raw, err := kv.Get(ctx, TransactionsKey)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"itemName":"Latte"`)
	assert.Contains(t, string(raw), `"date":"2024-01-01"`)
}

func TestKVStorage_LoadDegradesToEmpty(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		payload []byte
	}{
		{"corrupt json", []byte(`[{"id":`)},
		{"wrong shape", []byte(`{"id":"a"}`)},
		{"null", []byte(`null`)},
		{"empty", []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := NewLocalStorage()
			require.NoError(t, kv.Put(ctx, TransactionsKey, tt.payload))

			txs := NewKVStorage(kv, zaptest.NewLogger(t)).Load(ctx)
			assert.NotNil(t, txs)
			assert.Empty(t, txs)
		})
	}

	t.Run("never written", func(t *testing.T) {
		txs := NewKVStorage(NewLocalStorage(), nil).Load(ctx)
		assert.NotNil(t, txs)
		assert.Empty(t, txs)
	})

	t.Run("backend error", func(t *testing.T) {
		txs := NewKVStorage(failingKV{}, zaptest.NewLogger(t)).Load(ctx)
		assert.Empty(t, txs)
	})
}

func TestKVStorage_SaveError(t *testing.T) {
	err := NewKVStorage(failingKV{}, zaptest.NewLogger(t)).Save(context.Background(), nil)
	assert.Error(t, err)
}
