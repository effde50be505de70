package mailservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с MailService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента MailService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// QueueAcceptanceEmail ставит в очередь письмо о принятии заявки с QR-кодом и расписанием выдачи
func (c *Client) QueueAcceptanceEmail(ctx context.Context, email *AcceptanceEmail) (*QueueResponse, error) {
	url := fmt.Sprintf("%s/internal/emails/validation-accepted", c.baseURL)

	body, err := json.Marshal(email)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: mailservice rejected the payload", ErrInvalidResponse)
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	// Парсим ответ
	var queued QueueResponse
	if err := json.NewDecoder(resp.Body).Decode(&queued); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &queued, nil
}

// QueueAcceptanceEmailWithGracefulDegradation ставит письмо в очередь с graceful degradation
// При недоступности MailService возвращает ErrServiceDegraded: принятие заявки не должно
// падать из-за почты, письмо можно переотправить вручную
func (c *Client) QueueAcceptanceEmailWithGracefulDegradation(ctx context.Context, email *AcceptanceEmail) (*QueueResponse, error) {
	c.log.Info("Queueing acceptance email for student_id=%s", email.StudentID)

	queued, err := c.QueueAcceptanceEmail(ctx, email)
	if err != nil {
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("MailService unavailable, applying graceful degradation for student_id=%s: %v", email.StudentID, err)
		return nil, fmt.Errorf("%w: student_id=%s, error=%v", ErrServiceDegraded, email.StudentID, err)
	}

	c.log.Info("Acceptance email queued for student_id=%s, message_id=%s", email.StudentID, queued.MessageID)
	return queued, nil
}
