package accept_validation_request

import (
	"fmt"
	"strings"

	"github.com/m04kA/CIV-StickerService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RequestID <= 0 {
		return fmt.Errorf("%w: requestID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ReviewedBy) == "" {
		return fmt.Errorf("%w: reviewedBy is required", ErrInvalidInput)
	}

	return nil
}

// clampExpirationDays приводит срок действия QR-кода к допустимому диапазону
// 0 означает "не указан" и заменяется дефолтом
func clampExpirationDays(days int) int {
	if days == 0 {
		return domain.DefaultQRExpirationDays
	}
	if days < domain.MinQRExpirationDays {
		return domain.MinQRExpirationDays
	}
	if days > domain.MaxQRExpirationDays {
		return domain.MaxQRExpirationDays
	}
	return days
}
