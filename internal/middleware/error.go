package middleware

import (
	"errors"
	"net/http"
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler is a centralized error handling middleware. Every error is
// reduced to the uniform envelope with a fixed message per status code;
// no cause detail reaches the caller.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			status := domainErr.HTTPStatus()
			if log := logger.Get(); log != nil {
				log.Warn("Domain error occurred",
					zap.String("code", string(domainErr.Code)),
					zap.String("message", domainErr.Message),
					zap.Int("status", status),
					zap.String("path", c.Path()),
					zap.Error(domainErr.Err),
				)
			}
			return respond(c, status)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			if log := logger.Get(); log != nil {
				log.Warn("Fiber error occurred",
					zap.Int("code", fiberErr.Code),
					zap.String("message", fiberErr.Message),
				)
			}
			return respond(c, fiberErr.Code)
		}

		if log := logger.Get(); log != nil {
			log.Error("Unknown error occurred",
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}
		return respond(c, http.StatusInternalServerError)
	}
}

func respond(c *fiber.Ctx, status int) error {
	return c.Status(status).JSON(dto.ErrorResponse{
		Success: false,
		Error:   status,
		Message: statusMessage(status),
	})
}

// statusMessage returns the fixed message for each error status
func statusMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Bad Request"
	case http.StatusNotFound:
		return "Resource Not Found"
	case http.StatusUnprocessableEntity:
		return "Unprocessable Entity"
	case http.StatusMethodNotAllowed:
		return "Method Not Allowed"
	default:
		return "Internal Server Error"
	}
}
