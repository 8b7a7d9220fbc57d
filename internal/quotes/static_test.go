package quotes_test

import (
	"context"
	"testing"

	"github.com/apm-labs/portfolio-service/internal/quotes"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticService_Quote(t *testing.T) {
	s := quotes.NewStaticService()

	price, err := s.Quote(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, "185.92", price.StringFixed(2))

	price, err = s.Quote(context.Background(), "nvda")
	require.NoError(t, err, "lookup is case-insensitive")
	assert.Equal(t, "485.50", price.StringFixed(2))
}

func TestStaticService_UnknownTicker(t *testing.T) {
	s := quotes.NewStaticService()

	_, err := s.Quote(context.Background(), "ZZZZ")
	assert.ErrorIs(t, err, quotes.ErrUnavailable)
}

func TestStaticService_SetPrice(t *testing.T) {
	s := quotes.NewStaticServiceFrom(nil)

	_, err := s.Quote(context.Background(), "AAPL")
	require.ErrorIs(t, err, quotes.ErrUnavailable)

	s.SetPrice("aapl", decimal.RequireFromString("190.10"))

	price, err := s.Quote(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, "190.10", price.StringFixed(2))
}
