package api

import (
	"time"

	"github.com/apm-labs/portfolio-service/internal/model"
	"github.com/shopspring/decimal"
)

type tradeRequest struct {
	Ticker    string          `json:"ticker"`
	Type      string          `json:"type"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Timestamp *time.Time      `json:"timestamp"`
}

type tradeResponse struct {
	ID             int64  `json:"id"`
	Status         string `json:"status"`
	ExecutionPrice string `json:"executionPrice"`
}

type tradeDTO struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userId"`
	Ticker    string    `json:"ticker"`
	Type      string    `json:"type"`
	Quantity  int64     `json:"quantity"`
	Price     string    `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

func toTradeDTO(t model.Trade) tradeDTO {
	return tradeDTO{
		ID:        t.ID,
		UserID:    t.UserID.String(),
		Ticker:    t.Ticker,
		Type:      string(t.Side),
		Quantity:  t.Quantity,
		Price:     t.Price.StringFixed(2),
		Timestamp: t.Ts,
	}
}

type holdingValueDTO struct {
	Quantity     int64  `json:"quantity"`
	CurrentPrice string `json:"currentPrice,omitempty"`
	Value        string `json:"value,omitempty"`
	Error        string `json:"error,omitempty"`
}

type valuationDTO struct {
	Holdings   map[string]holdingValueDTO `json:"holdings"`
	TotalValue string                     `json:"totalValue"`
	Currency   string                     `json:"currency"`
}

func toValuationDTO(s model.ValuationSnapshot) valuationDTO {
	dto := valuationDTO{
		Holdings:   make(map[string]holdingValueDTO, len(s.Holdings)),
		TotalValue: s.TotalValue.StringFixed(2),
		Currency:   s.Currency,
	}
	for ticker, h := range s.Holdings {
		if h.PriceErr != "" {
			dto.Holdings[ticker] = holdingValueDTO{
				Quantity: h.Quantity,
				Error:    h.PriceErr,
			}
			continue
		}
		dto.Holdings[ticker] = holdingValueDTO{
			Quantity:     h.Quantity,
			CurrentPrice: h.Price.StringFixed(2),
			Value:        h.Value.StringFixed(2),
		}
	}
	return dto
}

type holdingAnalyticsDTO struct {
	Quantity        int64  `json:"quantity"`
	CostBasis       string `json:"costBasis"`
	AvgCostPerShare string `json:"avgCostPerShare"`
	CurrentPrice    string `json:"currentPrice"`
	CurrentValue    string `json:"currentValue,omitempty"`
	ProfitLoss      string `json:"profitLoss,omitempty"`
	PercentChange   string `json:"percentChange,omitempty"`
	Error           string `json:"error,omitempty"`
}

type analyticsDTO struct {
	Holdings           map[string]holdingAnalyticsDTO `json:"holdings"`
	TotalCostBasis     string                         `json:"totalCostBasis"`
	TotalCurrentValue  string                         `json:"totalCurrentValue"`
	TotalProfitLoss    string                         `json:"totalProfitLoss"`
	TotalPercentChange string                         `json:"totalPercentChange"`
	Currency           string                         `json:"currency"`
}

func toAnalyticsDTO(s model.AnalyticsSnapshot) analyticsDTO {
	dto := analyticsDTO{
		Holdings:           make(map[string]holdingAnalyticsDTO, len(s.Holdings)),
		TotalCostBasis:     s.TotalCostBasis.StringFixed(2),
		TotalCurrentValue:  s.TotalValue.StringFixed(2),
		TotalProfitLoss:    s.TotalProfitLoss.StringFixed(2),
		TotalPercentChange: s.TotalPercentChange.StringFixed(2),
		Currency:           s.Currency,
	}
	for ticker, h := range s.Holdings {
		if h.PriceErr != "" {
			dto.Holdings[ticker] = holdingAnalyticsDTO{
				Quantity:        h.Quantity,
				CostBasis:       h.CostBasis.StringFixed(2),
				AvgCostPerShare: h.AvgCostPerShare.StringFixed(2),
				CurrentPrice:    "unavailable",
				Error:           h.PriceErr,
			}
			continue
		}
		dto.Holdings[ticker] = holdingAnalyticsDTO{
			Quantity:        h.Quantity,
			CostBasis:       h.CostBasis.StringFixed(2),
			AvgCostPerShare: h.AvgCostPerShare.StringFixed(2),
			CurrentPrice:    h.Price.StringFixed(2),
			CurrentValue:    h.Value.StringFixed(2),
			ProfitLoss:      h.ProfitLoss.StringFixed(2),
			PercentChange:   h.PercentChange.StringFixed(2),
		}
	}
	return dto
}
