package update_claim_period

import (
	"errors"
	"net/http"

	"github.com/m04kA/CIV-StickerService/internal/api/handlers"
	"github.com/m04kA/CIV-StickerService/internal/api/middleware"
	periodSvc "github.com/m04kA/CIV-StickerService/internal/service/period"
	"github.com/m04kA/CIV-StickerService/internal/service/period/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPeriod      = "некорректный период: обе даты обязательны и начало не позже окончания"
	msgUnauthorized       = "не удалось определить пользователя"
)

type Handler struct {
	periodService PeriodService
	logger        Logger
}

func NewHandler(periodService PeriodService, logger Logger) *Handler {
	return &Handler{
		periodService: periodService,
		logger:        logger,
	}
}

// Handle PUT /api/v1/claim-period
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	updatedBy, ok := middleware.UserID(r)
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req UpdatePeriodRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /claim-period - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var result *models.PeriodResponse
	var err error

	if req.IsClear() {
		result, err = h.periodService.Clear(r.Context(), updatedBy)
	} else {
		result, err = h.periodService.Set(r.Context(), &models.SetPeriodRequest{
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
			UpdatedBy: updatedBy,
		})
	}

	if err != nil {
		switch {
		case errors.Is(err, periodSvc.ErrInvalidInput):
			h.logger.Warn("PUT /claim-period - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("PUT /claim-period - Failed to update period: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /claim-period - Period updated: start=%s, end=%s, by=%s",
		req.StartDate, req.EndDate, updatedBy)
	handlers.RespondJSON(w, http.StatusOK, result)
}
