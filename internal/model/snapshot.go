package model

import "github.com/shopspring/decimal"

// Position is the folded state of one ticker within a user's trade
// history. Cost accumulates BUY trades only; SELL reduces quantity but
// never the accumulated cost (average-cost accounting, not FIFO/LIFO).
type Position struct {
	Ticker   string
	Quantity int64
	Cost     decimal.Decimal
}

// HoldingValue is one priced line of a valuation snapshot. PriceErr is
// set when the quote for the ticker failed; Price and Value are zero in
// that case and the line is excluded from the snapshot total.
type HoldingValue struct {
	Quantity int64
	Price    decimal.Decimal
	Value    decimal.Decimal
	PriceErr string
}

type ValuationSnapshot struct {
	Holdings   map[string]HoldingValue
	TotalValue decimal.Decimal
	Currency   string
}

// HoldingAnalytics extends a valuation line with cost-basis and P&L
// figures. CostBasis and AvgCostPerShare are always present; the
// price-derived fields are only meaningful when PriceErr is empty.
type HoldingAnalytics struct {
	Quantity        int64
	CostBasis       decimal.Decimal
	AvgCostPerShare decimal.Decimal
	Price           decimal.Decimal
	Value           decimal.Decimal
	ProfitLoss      decimal.Decimal
	PercentChange   decimal.Decimal
	PriceErr        string
}

type AnalyticsSnapshot struct {
	Holdings           map[string]HoldingAnalytics
	TotalCostBasis     decimal.Decimal
	TotalValue         decimal.Decimal
	TotalProfitLoss    decimal.Decimal
	TotalPercentChange decimal.Decimal
	Currency           string
}
