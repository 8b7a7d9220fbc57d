package quotes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/apm-labs/portfolio-service/internal/config"
	"github.com/apm-labs/portfolio-service/internal/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

const _priceURL = "/price/"

type priceResponse struct {
	Ticker   string          `json:"ticker"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
}

type priceErrorResponse struct {
	Error string `json:"error"`
}

// MarketEngineService fetches prices from the market-engine HTTP
// service (GET {address}/price/{TICKER}).
type MarketEngineService struct {
	c           *resty.Client
	rateLimiter ratelimit.Limiter

	logger logger.Logger
}

func NewMarketEngineService(cfg config.MarketEngineConfig, logger logger.Logger) *MarketEngineService {
	client := resty.New().
		SetLogger(logger).
		SetBaseURL(cfg.Address)

	return &MarketEngineService{
		c:           client,
		rateLimiter: ratelimit.New(cfg.RatePerMinute, ratelimit.Per(1*time.Minute)),
		logger:      logger,
	}
}

func (s *MarketEngineService) Quote(ctx context.Context, ticker string) (decimal.Decimal, error) {
	s.rateLimiter.Take()

	req := s.c.R().
		SetResult(&priceResponse{}).
		SetError(&priceErrorResponse{}).
		SetContext(ctx)

	resp, err := req.Get(_priceURL + strings.ToUpper(ticker))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: can't send price request for %s: %s", ErrUnavailable, ticker, err)
	}
	defer resp.Body.Close()

	s.logger.Debugf("got response %s status: %s, %s", resp.Request.URL, resp.Status(), resp.Duration())

	if resp.IsError() {
		response := resp.Error().(*priceErrorResponse)
		return decimal.Zero, fmt.Errorf("%w: %s", ErrUnavailable, response.Error)
	}
	if resp.IsSuccess() {
		return resp.Result().(*priceResponse).Price, nil
	}

	return decimal.Zero, fmt.Errorf("%w: unexpected price response status %s", ErrUnavailable, resp.Status())
}
