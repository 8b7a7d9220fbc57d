package portfolio

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/apm-labs/portfolio-service/internal/logger"
	"github.com/apm-labs/portfolio-service/internal/model"
	"github.com/apm-labs/portfolio-service/internal/quotes"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// A trade submitted with a timestamp older than this is historical: it
// must carry an explicit price, a current quote can't represent it.
const _historicalAfter = 5 * time.Minute

type Ledger interface {
	Append(ctx context.Context, t model.Trade) (model.Trade, error)
	ScanByUser(ctx context.Context, userID uuid.UUID) ([]model.Trade, error)
	ScanAll(ctx context.Context) ([]model.Trade, error)
}

// Service is the request-scoped portfolio engine: every read re-scans
// the ledger and re-queries the quote service, nothing is cached between
// calls.
type Service struct {
	ledger   Ledger
	quotes   quotes.Service
	currency string
	logger   logger.Logger

	now func() time.Time
}

// NewService wires the engine. now may be nil, in which case time.Now is
// used; tests inject a fixed clock to pin the historical-trade boundary.
func NewService(ledger Ledger, quoteService quotes.Service, currency string, logger logger.Logger, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		ledger:   ledger,
		quotes:   quoteService,
		currency: currency,
		logger:   logger,
		now:      now,
	}
}

// IsHistorical reports whether ts falls outside the real-time window
// relative to the service clock.
func (s *Service) IsHistorical(ts *time.Time) bool {
	return ts != nil && ts.Before(s.now().Add(-_historicalAfter))
}

// RecordTrade validates an incoming trade, resolves its execution price
// and appends it to the ledger. Real-time trades without a price get one
// from the quote service; historical trades must carry an explicit
// price. A failed quote aborts the whole operation, nothing is written.
func (s *Service) RecordTrade(
	ctx context.Context,
	userID uuid.UUID,
	ticker string,
	side model.TradeSide,
	quantity int64,
	price decimal.Decimal,
	ts *time.Time,
) (model.Trade, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))

	if ticker == "" {
		return model.Trade{}, newValidationError("ticker symbol is required")
	}
	if side != model.Buy && side != model.Sell {
		return model.Trade{}, newValidationError("unknown trade side %q", side)
	}
	if quantity <= 0 {
		return model.Trade{}, newValidationError("quantity must be greater than 0")
	}
	if price.IsNegative() {
		return model.Trade{}, newValidationError("price must not be negative")
	}

	now := s.now()
	executionPrice := price

	if price.IsZero() {
		if s.IsHistorical(ts) {
			return model.Trade{}, newValidationError("price is required for historical trades")
		}

		s.logger.Infof("price not provided, fetching real-time price for %s", ticker)
		quoted, err := s.quotes.Quote(ctx, ticker)
		if err != nil {
			return model.Trade{}, fmt.Errorf("%w: can't resolve execution price for %s", err, ticker)
		}
		executionPrice = quoted
	}

	trade := model.Trade{
		UserID:   userID,
		Ticker:   ticker,
		Side:     side,
		Quantity: quantity,
		Price:    executionPrice,
		Ts:       now,
	}
	if ts != nil {
		trade.Ts = *ts
	}

	recorded, err := s.ledger.Append(ctx, trade)
	if err != nil {
		return model.Trade{}, fmt.Errorf("%w: can't append trade", err)
	}

	s.logger.Infof("trade recorded: %s %d shares of %s at %s", side, quantity, ticker, executionPrice)
	return recorded, nil
}

func (s *Service) TradeHistory(ctx context.Context, userID uuid.UUID) ([]model.Trade, error) {
	return s.ledger.ScanByUser(ctx, userID)
}

func (s *Service) AllTrades(ctx context.Context) ([]model.Trade, error) {
	return s.ledger.ScanAll(ctx)
}
