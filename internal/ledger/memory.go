package ledger

import (
	"context"
	"sync"

	"github.com/apm-labs/portfolio-service/internal/model"
	"github.com/google/uuid"
)

// MemoryLedger mirrors the Postgres contract without a database: ids are
// assigned from a monotonic counter under the lock, records are kept in
// insertion order.
type MemoryLedger struct {
	mu     sync.RWMutex
	nextID int64
	trades []model.Trade
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{}
}

func (l *MemoryLedger) Append(_ context.Context, t model.Trade) (model.Trade, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	t.ID = l.nextID
	l.trades = append(l.trades, t)
	return t, nil
}

func (l *MemoryLedger) ScanByUser(_ context.Context, userID uuid.UUID) ([]model.Trade, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	trades := make([]model.Trade, 0, len(l.trades))
	for _, t := range l.trades {
		if t.UserID == userID {
			trades = append(trades, t)
		}
	}
	return trades, nil
}

func (l *MemoryLedger) ScanAll(_ context.Context) ([]model.Trade, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	trades := make([]model.Trade, len(l.trades))
	copy(trades, l.trades)
	return trades, nil
}
