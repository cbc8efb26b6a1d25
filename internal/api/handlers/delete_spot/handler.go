package delete_spot

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
	msgSpotOccupied  = "нельзя удалить занятое место"
	msgHasBookings   = "нельзя удалить место с бронированиями"
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

// Handle DELETE /api/v1/spots/{spotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	spotIDStr := vars["spotId"]

	spotID, err := strconv.ParseInt(spotIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /spots/{id} - Invalid spot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpotID)
		return
	}

	err = h.service.Delete(r.Context(), spotID)
	if err != nil {
		switch {
		case errors.Is(err, spots.ErrSpotNotFound):
			h.logger.Warn("DELETE /spots/{id} - Spot not found: spot_id=%d", spotID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, spots.ErrSpotOccupied):
			h.logger.Warn("DELETE /spots/{id} - Spot occupied: spot_id=%d", spotID)
			handlers.RespondConflict(w, msgSpotOccupied)

		case errors.Is(err, spots.ErrSpotHasBookings):
			h.logger.Warn("DELETE /spots/{id} - Spot has bookings: spot_id=%d", spotID)
			handlers.RespondConflict(w, msgHasBookings)

		default:
			h.logger.Error("DELETE /spots/{id} - Failed to delete spot: spot_id=%d, error=%v", spotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /spots/{id} - Spot deleted successfully: spot_id=%d", spotID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
