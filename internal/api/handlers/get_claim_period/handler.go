package get_claim_period

import (
	"net/http"

	"github.com/m04kA/CIV-StickerService/internal/api/handlers"
)

type Handler struct {
	periodSvc PeriodService
	logger    Logger
}

func NewHandler(periodSvc PeriodService, logger Logger) *Handler {
	return &Handler{
		periodSvc: periodSvc,
		logger:    logger,
	}
}

// Handle GET /api/v1/claim-period
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.periodSvc.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /claim-period - Failed to get period: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
