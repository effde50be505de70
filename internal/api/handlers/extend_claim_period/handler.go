package extend_claim_period

import (
	"errors"
	"net/http"

	"github.com/m04kA/CIV-StickerService/internal/api/handlers"
	"github.com/m04kA/CIV-StickerService/internal/api/middleware"
	extendPeriod "github.com/m04kA/CIV-StickerService/internal/usecase/extend_claim_period"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDays        = "количество дней продления должно быть от 1 до 90"
	msgPeriodNotSet       = "период выдачи стикеров не настроен"
	msgUnauthorized       = "не удалось определить пользователя"
)

type Handler struct {
	useCase ExtendClaimPeriodUseCase
	logger  Logger
}

func NewHandler(useCase ExtendClaimPeriodUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/claim-period/extend
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	updatedBy, ok := middleware.UserID(r)
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req ExtendPeriodRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /claim-period/extend - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &extendPeriod.Request{
		ExtensionDays: req.ExtensionDays,
		UpdatedBy:     updatedBy,
	})
	if err != nil {
		switch {
		case errors.Is(err, extendPeriod.ErrPeriodNotSet):
			h.logger.Warn("POST /claim-period/extend - Period not set")
			handlers.RespondError(w, http.StatusConflict, msgPeriodNotSet)

		case errors.Is(err, extendPeriod.ErrInvalidInput):
			h.logger.Warn("POST /claim-period/extend - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDays)

		default:
			h.logger.Error("POST /claim-period/extend - Failed to extend period: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /claim-period/extend - Period extended: %s -> %s (+%d days), by=%s",
		result.PreviousEndDate, result.NewEndDate, req.ExtensionDays, updatedBy)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
