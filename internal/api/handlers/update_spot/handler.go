package update_spot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/spots"
	"github.com/m04kA/SMC-ParkingService/internal/service/spots/models"
)

const (
	msgInvalidSpotID      = "некорректный ID места"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные места"
	msgNotFound           = "парковочное место не найдено"
	msgNumberTaken        = "место с таким номером уже существует"
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

// Handle PUT /api/v1/spots/{spotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	spotIDStr := vars["spotId"]

	spotID, err := strconv.ParseInt(spotIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /spots/{id} - Invalid spot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpotID)
		return
	}

	var req models.UpdateSpotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /spots/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	spot, err := h.service.Update(r.Context(), spotID, &req)
	if err != nil {
		switch {
		case errors.Is(err, spots.ErrSpotNotFound):
			h.logger.Warn("PUT /spots/{id} - Spot not found: spot_id=%d", spotID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, spots.ErrInvalidInput):
			h.logger.Warn("PUT /spots/{id} - Invalid input: spot_id=%d, error=%v", spotID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, spots.ErrSpotNumberTaken):
			h.logger.Warn("PUT /spots/{id} - Spot number taken: spot_id=%d", spotID)
			handlers.RespondConflict(w, msgNumberTaken)

		default:
			h.logger.Error("PUT /spots/{id} - Failed to update spot: spot_id=%d, error=%v", spotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /spots/{id} - Spot updated successfully: spot_id=%d", spotID)
	handlers.RespondJSON(w, http.StatusOK, spot)
}
