package accept_validation_request

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CIV-StickerService/internal/api/handlers"
	"github.com/m04kA/CIV-StickerService/internal/api/middleware"
	acceptRequest "github.com/m04kA/CIV-StickerService/internal/usecase/accept_validation_request"
	assignClaimSchedule "github.com/m04kA/CIV-StickerService/internal/usecase/assign_claim_schedule"
)

const (
	msgInvalidRequestID   = "некорректный ID заявки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgRequestNotFound    = "заявка не найдена"
	msgAlreadyProcessed   = "заявка уже обработана"
	msgClaimPeriodNotSet  = "период выдачи стикеров не настроен"
	msgClaimPeriodExpired = "период выдачи стикеров закончился"
	msgInvalidInput       = "некорректные данные запроса"
	msgUnauthorized       = "не удалось определить пользователя"
)

type Handler struct {
	useCase AcceptValidationRequestUseCase
	logger  Logger
}

func NewHandler(useCase AcceptValidationRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/validation-requests/{requestId}/accept
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID, err := strconv.ParseInt(vars["requestId"], 10, 64)
	if err != nil || requestID <= 0 {
		h.logger.Warn("POST /validation-requests/accept - Invalid request id: %s", vars["requestId"])
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	reviewedBy, ok := middleware.UserID(r)
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	// Тело опционально: без него используется дефолтный срок действия QR-кода
	var req AcceptRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /validation-requests/accept - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &acceptRequest.Request{
		RequestID:      requestID,
		ReviewedBy:     reviewedBy,
		ExpirationDays: req.ExpirationDays,
	})
	if err != nil {
		switch {
		case errors.Is(err, acceptRequest.ErrRequestNotFound):
			h.logger.Warn("POST /validation-requests/accept - Request not found: request_id=%d", requestID)
			handlers.RespondNotFound(w, msgRequestNotFound)

		case errors.Is(err, acceptRequest.ErrAlreadyProcessed):
			h.logger.Warn("POST /validation-requests/accept - Already processed: request_id=%d", requestID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyProcessed)

		case errors.Is(err, acceptRequest.ErrClaimPeriodNotSet):
			h.logger.Warn("POST /validation-requests/accept - Claim period not set: request_id=%d", requestID)
			handlers.RespondError(w, http.StatusConflict, msgClaimPeriodNotSet)

		case errors.Is(err, acceptRequest.ErrClaimPeriodExpired):
			h.logger.Warn("POST /validation-requests/accept - Claim period expired: request_id=%d", requestID)
			handlers.RespondError(w, http.StatusConflict, expiredMessage(err))

		case errors.Is(err, acceptRequest.ErrInvalidInput):
			h.logger.Warn("POST /validation-requests/accept - Invalid input: request_id=%d, error=%v", requestID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /validation-requests/accept - Failed to accept: request_id=%d, error=%v", requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /validation-requests/accept - Request accepted: request_id=%d, slot=%s",
		requestID, result.ClaimSlotKey)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// expiredMessage дополняет сообщение датой окончания периода, если она известна
func expiredMessage(err error) string {
	var expired *assignClaimSchedule.ExpiredError
	if errors.As(err, &expired) && expired.EndDateLabel != "" {
		return fmt.Sprintf("%s: %s", msgClaimPeriodExpired, expired.EndDateLabel)
	}
	return msgClaimPeriodExpired
}
