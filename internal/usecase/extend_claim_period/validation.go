package extend_claim_period

import (
	"fmt"
	"strings"

	"github.com/m04kA/CIV-StickerService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ExtensionDays < domain.MinExtensionDays || req.ExtensionDays > domain.MaxExtensionDays {
		return fmt.Errorf("%w: extensionDays must be between %d and %d",
			ErrInvalidInput, domain.MinExtensionDays, domain.MaxExtensionDays)
	}

	if strings.TrimSpace(req.UpdatedBy) == "" {
		return fmt.Errorf("%w: updatedBy is required", ErrInvalidInput)
	}

	return nil
}
