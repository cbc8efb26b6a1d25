package create_spot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/spots"
	"github.com/m04kA/SMC-ParkingService/internal/service/spots/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные места"
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

// Handle POST /api/v1/spots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSpotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /spots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	spot, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, spots.ErrInvalidInput):
			h.logger.Warn("POST /spots - Invalid input: number=%s, error=%v", req.SpotNumber, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, spots.ErrSpotNumberTaken):
			h.logger.Warn("POST /spots - Spot number taken: number=%s", req.SpotNumber)
			handlers.RespondConflict(w, msgNumberTaken)

		default:
			h.logger.Error("POST /spots - Failed to create spot: number=%s, error=%v", req.SpotNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /spots - Spot created successfully: spot_id=%d, number=%s", spot.ID, spot.SpotNumber)
	handlers.RespondJSON(w, http.StatusCreated, spot)
}
