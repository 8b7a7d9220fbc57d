package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/apm-labs/portfolio-service/internal/logger"
	"github.com/apm-labs/portfolio-service/internal/model"
	"github.com/apm-labs/portfolio-service/internal/portfolio"
	"github.com/apm-labs/portfolio-service/internal/quotes"
	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

// Demo user until real authentication lands in front of the service.
var _demoUserID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

type handlers struct {
	service *portfolio.Service
	logger  logger.Logger
}

func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "UP"})
}

func (h *handlers) createTrade(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "can't read request body")
		return
	}

	var req tradeRequest
	if err := sonic.Unmarshal(body, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	side, err := model.ParseTradeSide(req.Type)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	trade, err := h.service.RecordTrade(
		r.Context(), _demoUserID, req.Ticker, side, req.Quantity, req.Price, req.Timestamp,
	)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	status := "CONFIRMED"
	if h.service.IsHistorical(req.Timestamp) {
		status = "HISTORICAL"
	}

	h.writeJSON(w, http.StatusCreated, tradeResponse{
		ID:             trade.ID,
		Status:         status,
		ExecutionPrice: trade.Price.StringFixed(2),
	})
}

func (h *handlers) listTrades(w http.ResponseWriter, r *http.Request) {
	trades, err := h.service.AllTrades(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	dtos := make([]tradeDTO, 0, len(trades))
	for _, t := range trades {
		dtos = append(dtos, toTradeDTO(t))
	}
	h.writeJSON(w, http.StatusOK, dtos)
}

func (h *handlers) getPortfolio(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.service.GetPortfolioValue(r.Context(), _demoUserID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toValuationDTO(snapshot))
}

func (h *handlers) getAnalytics(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.service.GetPortfolioAnalytics(r.Context(), _demoUserID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toAnalyticsDTO(snapshot))
}

func (h *handlers) writeServiceError(w http.ResponseWriter, err error) {
	var validationErr *portfolio.ValidationError
	switch {
	case errors.As(err, &validationErr):
		h.writeError(w, http.StatusBadRequest, validationErr.Reason)
	case errors.Is(err, quotes.ErrUnavailable):
		h.writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		h.logger.Errorf("%s: request failed", err)
		h.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (h *handlers) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handlers) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	body, err := sonic.Marshal(v)
	if err != nil {
		h.logger.Errorf("%s: can't marshal response", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		h.logger.Warnf("%s: can't write response", err)
	}
}
