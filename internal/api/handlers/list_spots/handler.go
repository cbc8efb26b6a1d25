package list_spots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/spots"
	"github.com/m04kA/SMC-ParkingService/internal/service/spots/models"
)

const (
	msgInvalidQuery  = "некорректные параметры фильтрации"
	msgInvalidFilter = "некорректный фильтр мест"
)

type Handler struct {
	service SpotService
	logger  Logger
}

func NewHandler(service SpotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/spots?floor=&type=&isOccupied=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListSpotsRequest{}
	query := r.URL.Query()

	if v := query.Get("floor"); v != "" {
		floor, err := strconv.Atoi(v)
		if err != nil {
			h.logger.Warn("GET /spots - Invalid floor: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		req.Floor = &floor
	}

	if v := query.Get("type"); v != "" {
		req.Type = &v
	}

	if v := query.Get("isOccupied"); v != "" {
		isOccupied, err := strconv.ParseBool(v)
		if err != nil {
			h.logger.Warn("GET /spots - Invalid isOccupied: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		req.IsOccupied = &isOccupied
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, spots.ErrInvalidInput):
			h.logger.Warn("GET /spots - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /spots - Failed to list spots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /spots - Retrieved %d spots", len(result.Spots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
