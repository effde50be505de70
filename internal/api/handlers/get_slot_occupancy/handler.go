package get_slot_occupancy

import (
	"errors"
	"net/http"

	"github.com/m04kA/CIV-StickerService/internal/api/handlers"
	getSlotOccupancy "github.com/m04kA/CIV-StickerService/internal/usecase/get_slot_occupancy"
)

const msgPeriodNotSet = "период выдачи стикеров не настроен"

type Handler struct {
	useCase GetSlotOccupancyUseCase
	logger  Logger
}

func NewHandler(useCase GetSlotOccupancyUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/claim-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, getSlotOccupancy.ErrPeriodNotSet):
			h.logger.Warn("GET /claim-slots - Claim period not set")
			handlers.RespondNotFound(w, msgPeriodNotSet)

		default:
			h.logger.Error("GET /claim-slots - Failed to get occupancy: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
