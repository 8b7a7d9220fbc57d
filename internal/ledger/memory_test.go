package ledger_test

import (
	"context"
	"sync"
	"testing"

	"github.com/apm-labs/portfolio-service/internal/ledger"
	"github.com/apm-labs/portfolio-service/internal/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLedger_AppendAssignsSequentialIDs(t *testing.T) {
	l := ledger.NewMemoryLedger()
	userID := uuid.New()

	for i := 1; i <= 3; i++ {
		recorded, err := l.Append(context.Background(), model.Trade{
			UserID:   userID,
			Ticker:   "AAPL",
			Side:     model.Buy,
			Quantity: 1,
			Price:    decimal.RequireFromString("180.00"),
		})
		require.NoError(t, err)
		assert.EqualValues(t, i, recorded.ID)
	}
}

func TestMemoryLedger_ScanByUserFilters(t *testing.T) {
	l := ledger.NewMemoryLedger()
	alice := uuid.New()
	bob := uuid.New()

	ctx := context.Background()
	_, err := l.Append(ctx, model.Trade{UserID: alice, Ticker: "AAPL", Side: model.Buy, Quantity: 10})
	require.NoError(t, err)
	_, err = l.Append(ctx, model.Trade{UserID: bob, Ticker: "NVDA", Side: model.Buy, Quantity: 5})
	require.NoError(t, err)
	_, err = l.Append(ctx, model.Trade{UserID: alice, Ticker: "AAPL", Side: model.Sell, Quantity: 3})
	require.NoError(t, err)

	trades, err := l.ScanByUser(ctx, alice)
	require.NoError(t, err)
	require.Len(t, trades, 2)
	assert.Less(t, trades[0].ID, trades[1].ID, "insertion order is preserved")

	all, err := l.ScanAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMemoryLedger_ConcurrentAppends(t *testing.T) {
	l := ledger.NewMemoryLedger()
	userID := uuid.New()

	const (
		writers = 20
		perW    = 50
	)

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perW; j++ {
				_, err := l.Append(context.Background(), model.Trade{
					UserID:   userID,
					Ticker:   "AAPL",
					Side:     model.Buy,
					Quantity: 1,
				})
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	trades, err := l.ScanAll(context.Background())
	require.NoError(t, err)
	require.Len(t, trades, writers*perW)

	seen := make(map[int64]struct{}, len(trades))
	for _, trade := range trades {
		_, dup := seen[trade.ID]
		assert.False(t, dup, "id %d assigned twice", trade.ID)
		seen[trade.ID] = struct{}{}
	}
}
