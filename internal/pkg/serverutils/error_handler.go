package serverutils

import (
	"errors"
	"log"

	"ai-counsellor-be/pkg/advising"

	"github.com/gofiber/fiber/v2"
)

var ErrUnauthorized = errors.New("unauthorized")

// StatusOf maps a turn or request error to its HTTP status and wire code.
func StatusOf(err error) (int, string) {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code, "HTTP_ERROR"
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return fiber.StatusBadRequest, "VALIDATION_ERROR"
	}

	if errors.Is(err, ErrUnauthorized) {
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	}

	code := advising.CodeOf(err)
	switch {
	case errors.Is(err, advising.ErrGenerationUnavailable):
		return fiber.StatusServiceUnavailable, code
	case errors.Is(err, advising.ErrExecutionTimeout):
		return fiber.StatusGatewayTimeout, code
	case errors.Is(err, advising.ErrNotFound):
		return fiber.StatusNotFound, code
	case errors.Is(err, advising.ErrNotShortlisted),
		errors.Is(err, advising.ErrNotLocked),
		errors.Is(err, advising.ErrAlreadyDone):
		return fiber.StatusConflict, code
	case errors.Is(err, advising.ErrOnboardingIncomplete):
		return fiber.StatusUnprocessableEntity, code
	case errors.Is(err, advising.ErrInvalidAction):
		return fiber.StatusBadRequest, code
	}
	return fiber.StatusInternalServerError, code
}

// ErrorHandler renders any error returned by a handler as the JSON envelope.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	status, code := StatusOf(err)

	message := err.Error()
	switch {
	case status == fiber.StatusInternalServerError:
		log.Printf("[ERROR] %s %s: %v", ctx.Method(), ctx.Path(), err)
		message = "Internal server error"
	case code != "HTTP_ERROR" && code != "VALIDATION_ERROR" && code != "UNAUTHORIZED":
		message = advising.MessageOf(err)
	}

	return ctx.Status(status).JSON(ErrorResponse(code, message))
}
