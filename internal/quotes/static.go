package quotes

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// StaticService serves quotes from an in-memory table. Used in tests and
// for running the service without a market data upstream.
type StaticService struct {
	mu     sync.RWMutex
	prices map[string]decimal.Decimal
}

func NewStaticService() *StaticService {
	return NewStaticServiceFrom(map[string]decimal.Decimal{
		"AAPL":  decimal.RequireFromString("185.92"),
		"NVDA":  decimal.RequireFromString("485.50"),
		"GOOGL": decimal.RequireFromString("140.25"),
		"MSFT":  decimal.RequireFromString("375.00"),
		"TSLA":  decimal.RequireFromString("245.75"),
		"AMZN":  decimal.RequireFromString("155.30"),
	})
}

func NewStaticServiceFrom(prices map[string]decimal.Decimal) *StaticService {
	s := &StaticService{
		prices: make(map[string]decimal.Decimal, len(prices)),
	}
	for ticker, price := range prices {
		s.prices[strings.ToUpper(ticker)] = price
	}
	return s
}

func (s *StaticService) SetPrice(ticker string, price decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prices[strings.ToUpper(ticker)] = price
}

func (s *StaticService) Quote(_ context.Context, ticker string) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	price, ok := s.prices[strings.ToUpper(ticker)]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: ticker %q not found", ErrUnavailable, ticker)
	}
	return price, nil
}
