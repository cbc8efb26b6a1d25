package get_spot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/spots"
)

const (
	msgInvalidSpotID = "некорректный ID места"
	msgNotFound      = "парковочное место не найдено"
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

// Handle GET /api/v1/spots/{spotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	spotIDStr := vars["spotId"]

	spotID, err := strconv.ParseInt(spotIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /spots/{id} - Invalid spot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpotID)
		return
	}

	spot, err := h.service.GetByID(r.Context(), spotID)
	if err != nil {
		switch {
		case errors.Is(err, spots.ErrSpotNotFound):
			h.logger.Warn("GET /spots/{id} - Spot not found: spot_id=%d", spotID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /spots/{id} - Failed to get spot: spot_id=%d, error=%v", spotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /spots/{id} - Spot retrieved successfully: spot_id=%d", spotID)
	handlers.RespondJSON(w, http.StatusOK, spot)
}
