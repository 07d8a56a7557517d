package serverutils

import (
	"errors"
	"log"

	"ai-compliance-be/internal/apperr"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts typed domain errors into JSON error
// envelopes with the right status code. Anything unrecognized becomes a
// 500 with the detail kept out of the response body.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		status := statusFor(err)
		if status == fiber.StatusInternalServerError {
			log.Printf("[ERROR] Unhandled error on %s %s: %v", ctx.Method(), ctx.Path(), err)
			return ctx.Status(status).JSON(ErrorResponse("internal server error"))
		}
		return ctx.Status(status).JSON(ErrorResponse(err.Error()))
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperr.ErrJurisdictionNotFound),
		errors.Is(err, apperr.ErrDocumentNotFound),
		errors.Is(err, apperr.ErrRequirementNotFound),
		errors.Is(err, apperr.ErrSessionNotFound),
		errors.Is(err, apperr.ErrTaskNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, apperr.ErrNoRequirementsExtracted),
		errors.Is(err, apperr.ErrNoRequirementsForOrganization),
		errors.Is(err, apperr.ErrUnsupportedFormat),
		errors.Is(err, apperr.ErrTextExtraction):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, apperr.ErrFileTooLarge):
		return fiber.StatusRequestEntityTooLarge
	case errors.Is(err, apperr.ErrServiceUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
