package accept_validation_request

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CIV-StickerService/internal/api/middleware"
	acceptRequest "github.com/m04kA/CIV-StickerService/internal/usecase/accept_validation_request"
	assignClaimSchedule "github.com/m04kA/CIV-StickerService/internal/usecase/assign_claim_schedule"
)

type fakeUseCase struct {
	response *acceptRequest.Response
	err      error

	lastReq *acceptRequest.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *acceptRequest.Request) (*acceptRequest.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestRouter(useCase *fakeUseCase) *mux.Router {
	handler := NewHandler(useCase, nopLogger{})

	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/validation-requests/{requestId}/accept", handler.Handle).Methods(http.MethodPost)
	return r
}

func acceptedResponse() *acceptRequest.Response {
	return &acceptRequest.Response{
		RequestID:      42,
		StudentID:      "TUPV-21-1234",
		StudentName:    "Juan Dela Cruz",
		Email:          "juan@example.edu",
		Status:         "accepted",
		ClaimDate:      time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
		ClaimDateLabel: "Monday, January 5, 2026",
		ClaimSlotLabel: "8:00 AM – 11:00 AM",
		ClaimSlotKey:   "2026-01-05_slot0",
		QRToken:        "qr-token-1",
		QRExpiresAt:    time.Date(2026, time.January, 12, 10, 0, 0, 0, time.UTC),
		ReviewedBy:     "osa-staff-1",
		EmailQueued:    true,
	}
}

func doRequest(router *mux.Router, body []byte, withAuth bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/validation-requests/42/accept", bytes.NewReader(body))
	if withAuth {
		req.Header.Set("X-User-ID", "osa-staff-1")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_AcceptsRequest(t *testing.T) {
	useCase := &fakeUseCase{response: acceptedResponse()}
	router := newTestRouter(useCase)

	rec := doRequest(router, []byte(`{"expirationDays": 14}`), true)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AcceptResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.RequestID)
	assert.Equal(t, "2026-01-05", resp.ClaimDate)
	assert.Equal(t, "Monday, January 5, 2026", resp.ClaimDateLabel)
	assert.Equal(t, "2026-01-05_slot0", resp.ClaimSlotKey)
	assert.True(t, resp.EmailQueued)

	require.NotNil(t, useCase.lastReq)
	assert.Equal(t, int64(42), useCase.lastReq.RequestID)
	assert.Equal(t, "osa-staff-1", useCase.lastReq.ReviewedBy, "ревьюер берется из X-User-ID")
	assert.Equal(t, 14, useCase.lastReq.ExpirationDays)
}

func TestHandle_EmptyBodyUsesDefaults(t *testing.T) {
	useCase := &fakeUseCase{response: acceptedResponse()}
	router := newTestRouter(useCase)

	rec := doRequest(router, nil, true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, useCase.lastReq.ExpirationDays)
}

func TestHandle_MissingAuthHeader(t *testing.T) {
	useCase := &fakeUseCase{response: acceptedResponse()}
	router := newTestRouter(useCase)

	rec := doRequest(router, nil, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, useCase.lastReq, "use case не вызывается без аутентификации")
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"заявка не найдена", acceptRequest.ErrRequestNotFound, http.StatusNotFound},
		{"заявка уже обработана", acceptRequest.ErrAlreadyProcessed, http.StatusConflict},
		{"период не настроен", acceptRequest.ErrClaimPeriodNotSet, http.StatusConflict},
		{"период закончился", acceptRequest.ErrClaimPeriodExpired, http.StatusConflict},
		{"внутренняя ошибка", acceptRequest.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&fakeUseCase{err: tt.err})

			rec := doRequest(router, nil, true)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

// wrapExpired повторяет обертку ошибки истекшего периода из use case
func wrapExpired(err error) error {
	return fmt.Errorf("%w: %w", acceptRequest.ErrClaimPeriodExpired, err)
}

func TestHandle_ExpiredMessageIncludesEndDate(t *testing.T) {
	expiredErr := &assignClaimSchedule.ExpiredError{EndDateLabel: "January 10, 2026"}
	useCase := &fakeUseCase{err: wrapExpired(expiredErr)}
	router := newTestRouter(useCase)

	rec := doRequest(router, nil, true)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "January 10, 2026")
}

func TestHandle_InvalidRequestID(t *testing.T) {
	router := newTestRouter(&fakeUseCase{response: acceptedResponse()})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/validation-requests/abc/accept", nil)
	req.Header.Set("X-User-ID", "osa-staff-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
