package quotes

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrUnavailable is wrapped by every implementation when a quote can't
// be resolved: unknown ticker, upstream unreachable, malformed response.
// Callers decide per invocation whether that degrades a single line or
// fails the whole operation.
var ErrUnavailable = errors.New("quote unavailable")

// Service returns the current unit price for a ticker. One synchronous
// call per ticker; no batching, caching or retries here.
type Service interface {
	Quote(ctx context.Context, ticker string) (decimal.Decimal, error)
}
