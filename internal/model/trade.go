package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TradeSide string

const (
	Buy  TradeSide = "BUY"
	Sell TradeSide = "SELL"
)

func ParseTradeSide(s string) (TradeSide, error) {
	switch side := TradeSide(strings.ToUpper(strings.TrimSpace(s))); side {
	case Buy, Sell:
		return side, nil
	default:
		return "", fmt.Errorf("unknown trade side %q", s)
	}
}

// Trade is a single immutable ledger record. Corrections are new
// offsetting trades, never updates.
type Trade struct {
	ID       int64           `json:"id" db:"id"`
	UserID   uuid.UUID       `json:"userId" db:"user_id"`
	Ticker   string          `json:"ticker" db:"ticker"`
	Side     TradeSide       `json:"side" db:"side"`
	Quantity int64           `json:"quantity" db:"quantity"`
	Price    decimal.Decimal `json:"price" db:"price"`
	Ts       time.Time       `json:"timestamp" db:"ts"`
}

// Cost is the total amount paid, price per share times quantity.
func (t Trade) Cost() decimal.Decimal {
	return t.Price.Mul(decimal.NewFromInt(t.Quantity))
}
