package portfolio

import (
	"context"
	"fmt"

	"github.com/apm-labs/portfolio-service/internal/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Monetary amounts round to 2 places half-up; percentage ratios are
// computed at 4 places before the final 2-place display rounding.
const (
	_moneyScale = 2
	_ratioScale = 4
)

var _hundred = decimal.NewFromInt(100)

// GetPortfolioAnalytics extends valuation with cost basis and P&L per
// open position. Unpriced tickers still report quantity and cost basis,
// and their cost basis still counts toward the aggregate total, so the
// total cost basis always covers all open positions.
func (s *Service) GetPortfolioAnalytics(ctx context.Context, userID uuid.UUID) (model.AnalyticsSnapshot, error) {
	trades, err := s.ledger.ScanByUser(ctx, userID)
	if err != nil {
		return model.AnalyticsSnapshot{}, fmt.Errorf("%w: can't scan trades", err)
	}

	open := OpenPositions(AggregatePositions(trades))

	snapshot := model.AnalyticsSnapshot{
		Holdings:           make(map[string]model.HoldingAnalytics, len(open)),
		TotalCostBasis:     decimal.Zero,
		TotalValue:         decimal.Zero,
		TotalProfitLoss:    decimal.Zero,
		TotalPercentChange: decimal.Zero,
		Currency:           s.currency,
	}

	// Totals accumulate unrounded, rounding happens once per figure.
	totalCost := decimal.Zero
	totalValue := decimal.Zero

	for ticker, p := range open {
		quantity := decimal.NewFromInt(p.Quantity)

		h := model.HoldingAnalytics{
			Quantity:        p.Quantity,
			CostBasis:       p.Cost.Round(_moneyScale),
			AvgCostPerShare: p.Cost.DivRound(quantity, _moneyScale),
		}
		totalCost = totalCost.Add(p.Cost)

		price, err := s.quotes.Quote(ctx, ticker)
		if err != nil {
			s.logger.Warnf("%s: can't fetch price for %s", err, ticker)
			h.PriceErr = _priceUnavailable
			snapshot.Holdings[ticker] = h
			continue
		}

		value := price.Mul(quantity)
		profitLoss := value.Sub(p.Cost)

		h.Price = price
		h.Value = value.Round(_moneyScale)
		h.ProfitLoss = profitLoss.Round(_moneyScale)
		h.PercentChange = percentChange(profitLoss, p.Cost)

		totalValue = totalValue.Add(value)
		snapshot.Holdings[ticker] = h
	}

	totalProfitLoss := totalValue.Sub(totalCost)

	snapshot.TotalCostBasis = totalCost.Round(_moneyScale)
	snapshot.TotalValue = totalValue.Round(_moneyScale)
	snapshot.TotalProfitLoss = totalProfitLoss.Round(_moneyScale)
	if totalCost.IsPositive() {
		snapshot.TotalPercentChange = percentChange(totalProfitLoss, totalCost)
	}

	return snapshot, nil
}

// percentChange is profitLoss/costBasis*100 at 4-digit intermediate
// precision, displayed at 2. Zero cost basis yields exactly 0 rather
// than a division error.
func percentChange(profitLoss, costBasis decimal.Decimal) decimal.Decimal {
	if costBasis.IsZero() {
		return decimal.Zero
	}
	return profitLoss.DivRound(costBasis, _ratioScale).Mul(_hundred).Round(_moneyScale)
}
