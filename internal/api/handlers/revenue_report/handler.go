package revenue_report

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/bookings"
	"github.com/m04kA/SMC-ParkingService/internal/service/bookings/models"
)

const (
	msgInvalidQuery  = "некорректные параметры периода, ожидается YYYY-MM-DD"
	msgInvalidPeriod = "некорректный период отчёта"
)

const dateFormat = "2006-01-02"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/revenue?from=2025-10-01&to=2025-10-31
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.RevenueReportRequest{}
	query := r.URL.Query()

	if v := query.Get("from"); v != "" {
		from, err := time.Parse(dateFormat, v)
		if err != nil {
			h.logger.Warn("GET /reports/revenue - Invalid from date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		req.From = &from
	}

	if v := query.Get("to"); v != "" {
		to, err := time.Parse(dateFormat, v)
		if err != nil {
			h.logger.Warn("GET /reports/revenue - Invalid to date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		// Конец периода включает весь день
		endOfDay := to.Add(24*time.Hour - time.Second)
		req.To = &endOfDay
	}

	result, err := h.service.RevenueReport(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /reports/revenue - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /reports/revenue - Failed to build report: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reports/revenue - Report built: total=%.2f, payments=%d",
		result.TotalAmount, result.PaymentsCount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
