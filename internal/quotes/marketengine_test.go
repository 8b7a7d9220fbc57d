package quotes_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/apm-labs/portfolio-service/internal/config"
	"github.com/apm-labs/portfolio-service/internal/logger"
	"github.com/apm-labs/portfolio-service/internal/quotes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMarketEngineStub(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/price/AAPL", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ticker":"AAPL","price":185.92,"currency":"USD"}`))
	})
	mux.HandleFunc("/price/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Ticker not found or API unavailable"}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestMarketEngineService_Quote(t *testing.T) {
	srv := newMarketEngineStub(t)

	s := quotes.NewMarketEngineService(config.MarketEngineConfig{
		Address:       srv.URL,
		RatePerMinute: 1000,
	}, logger.NewNopLogger())

	price, err := s.Quote(context.Background(), "aapl")
	require.NoError(t, err, "ticker must be uppercased before the request")
	assert.Equal(t, "185.92", price.StringFixed(2))
}

func TestMarketEngineService_UpstreamError(t *testing.T) {
	srv := newMarketEngineStub(t)

	s := quotes.NewMarketEngineService(config.MarketEngineConfig{
		Address:       srv.URL,
		RatePerMinute: 1000,
	}, logger.NewNopLogger())

	_, err := s.Quote(context.Background(), "ZZZZ")
	assert.ErrorIs(t, err, quotes.ErrUnavailable)
}

func TestMarketEngineService_Unreachable(t *testing.T) {
	s := quotes.NewMarketEngineService(config.MarketEngineConfig{
		Address:       "http://127.0.0.1:1",
		RatePerMinute: 1000,
	}, logger.NewNopLogger())

	_, err := s.Quote(context.Background(), "AAPL")
	assert.ErrorIs(t, err, quotes.ErrUnavailable)
}
