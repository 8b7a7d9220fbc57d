package portfolio

import (
	"context"
	"fmt"

	"github.com/apm-labs/portfolio-service/internal/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const _priceUnavailable = "price unavailable"

// GetPortfolioValue prices every open position of the user. A failed
// quote degrades that ticker to an unavailable marker and keeps it out
// of the total; it never fails the whole read.
func (s *Service) GetPortfolioValue(ctx context.Context, userID uuid.UUID) (model.ValuationSnapshot, error) {
	trades, err := s.ledger.ScanByUser(ctx, userID)
	if err != nil {
		return model.ValuationSnapshot{}, fmt.Errorf("%w: can't scan trades", err)
	}

	open := OpenPositions(AggregatePositions(trades))

	snapshot := model.ValuationSnapshot{
		Holdings:   make(map[string]model.HoldingValue, len(open)),
		TotalValue: decimal.Zero,
		Currency:   s.currency,
	}

	for ticker, p := range open {
		price, err := s.quotes.Quote(ctx, ticker)
		if err != nil {
			s.logger.Warnf("%s: can't fetch price for %s", err, ticker)
			snapshot.Holdings[ticker] = model.HoldingValue{
				Quantity: p.Quantity,
				PriceErr: _priceUnavailable,
			}
			continue
		}

		value := price.Mul(decimal.NewFromInt(p.Quantity))
		snapshot.TotalValue = snapshot.TotalValue.Add(value)
		snapshot.Holdings[ticker] = model.HoldingValue{
			Quantity: p.Quantity,
			Price:    price,
			Value:    value,
		}
	}

	return snapshot, nil
}
