package portfolio

import "github.com/apm-labs/portfolio-service/internal/model"

// AggregatePositions folds an ordered trade sequence into per-ticker
// positions. BUY adds quantity and price*quantity to the accumulated
// cost; SELL subtracts quantity only, so the cost reflects everything
// ever paid for the ticker (average-cost accounting). The fold is pure:
// the same sequence always produces the same positions.
//
// Accumulated cost is deliberately not reset when a position crosses
// zero and later BUYs reopen it.
func AggregatePositions(trades []model.Trade) map[string]model.Position {
	positions := make(map[string]model.Position)
	for _, t := range trades {
		p := positions[t.Ticker]
		p.Ticker = t.Ticker

		switch t.Side {
		case model.Buy:
			p.Quantity += t.Quantity
			p.Cost = p.Cost.Add(t.Cost())
		case model.Sell:
			p.Quantity -= t.Quantity
		}

		positions[t.Ticker] = p
	}
	return positions
}

// OpenPositions drops sold-out positions: net quantity <= 0 means the
// position is closed and excluded from valuation and analytics.
func OpenPositions(positions map[string]model.Position) map[string]model.Position {
	open := make(map[string]model.Position, len(positions))
	for ticker, p := range positions {
		if p.Quantity <= 0 {
			continue
		}
		open[ticker] = p
	}
	return open
}
