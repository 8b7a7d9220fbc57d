package quotes

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/apm-labs/portfolio-service/internal/logger"
	"github.com/russianinvestments/invest-api-go-sdk/investgo"
	"github.com/shopspring/decimal"
	"go.uber.org/ratelimit"
)

// InvestService resolves quotes through the T-Invest API: the ticker is
// mapped to an instrument UID once (cached), then the last traded price
// is requested. API limits are respected with a shared rate limiter.
type InvestService struct {
	instrClient *investgo.InstrumentsServiceClient
	mdClient    *investgo.MarketDataServiceClient
	rateLimiter ratelimit.Limiter
	logger      logger.Logger

	mu       sync.Mutex
	uidCache map[string]string
}

func NewInvestService(c *investgo.Client, logger logger.Logger) *InvestService {
	return &InvestService{
		instrClient: c.NewInstrumentsServiceClient(),
		mdClient:    c.NewMarketDataServiceClient(),
		rateLimiter: ratelimit.New(200, ratelimit.Per(1*time.Minute)),
		logger:      logger,
		uidCache:    make(map[string]string),
	}
}

func (s *InvestService) Quote(_ context.Context, ticker string) (decimal.Decimal, error) {
	uid, err := s.instrumentUID(strings.ToUpper(ticker))
	if err != nil {
		return decimal.Zero, err
	}

	s.rateLimiter.Take()
	resp, err := s.mdClient.GetLastPrices([]string{uid})
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: can't get last price for %s: %s", ErrUnavailable, ticker, err)
	}

	if len(resp.GetLastPrices()) == 0 {
		return decimal.Zero, fmt.Errorf("%w: empty last price for %s", ErrUnavailable, ticker)
	}

	return decimal.NewFromFloat(resp.GetLastPrices()[0].GetPrice().ToFloat()), nil
}

func (s *InvestService) instrumentUID(ticker string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if uid, ok := s.uidCache[ticker]; ok {
		return uid, nil
	}

	s.rateLimiter.Take()
	resp, err := s.instrClient.FindInstrument(ticker)
	if err != nil {
		return "", fmt.Errorf("%w: can't find instrument %s: %s", ErrUnavailable, ticker, err)
	}

	for _, instrument := range resp.GetInstruments() {
		if !instrument.GetApiTradeAvailableFlag() {
			continue
		}
		if !strings.EqualFold(instrument.GetTicker(), ticker) {
			continue
		}

		s.uidCache[ticker] = instrument.GetUid()
		return instrument.GetUid(), nil
	}

	return "", fmt.Errorf("%w: instrument %s not found", ErrUnavailable, ticker)
}
