package serverutils

import (
	"errors"
	"fmt"
	"testing"

	"ai-compliance-be/internal/apperr"

	"github.com/gofiber/fiber/v2"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"jurisdiction not found", apperr.ErrJurisdictionNotFound, fiber.StatusNotFound},
		{"document not found", apperr.ErrDocumentNotFound, fiber.StatusNotFound},
		{"requirement not found", apperr.ErrRequirementNotFound, fiber.StatusNotFound},
		{"session not found", apperr.ErrSessionNotFound, fiber.StatusNotFound},
		{"no requirements extracted", apperr.ErrNoRequirementsExtracted, fiber.StatusUnprocessableEntity},
		{"unsupported format", apperr.ErrUnsupportedFormat, fiber.StatusUnprocessableEntity},
		{"file too large", apperr.ErrFileTooLarge, fiber.StatusRequestEntityTooLarge},
		{"service unavailable", apperr.ErrServiceUnavailable, fiber.StatusServiceUnavailable},
		{
			"wrapped service unavailable",
			fmt.Errorf("%w: broker connection refused", apperr.ErrServiceUnavailable),
			fiber.StatusServiceUnavailable,
		},
		{
			"wrapped requirement not found",
			fmt.Errorf("lookup: %w", apperr.ErrRequirementNotFound),
			fiber.StatusNotFound,
		},
		{"unknown error", errors.New("boom"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusFor(tt.err); got != tt.want {
				t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
