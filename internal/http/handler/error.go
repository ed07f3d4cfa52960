package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/adevaproject/webapppro/internal/logger"
	"github.com/adevaproject/webapppro/internal/service"
)

// response is the shared success/error envelope: {success, message?, data?}.
type response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// mutationResponse is the envelope for admin create/update/delete, echoing
// the slug the operation acted on.
type mutationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Slug    string `json:"slug"`
}

// listResponse carries a page of articles plus pagination metadata.
type listResponse struct {
	Success    bool               `json:"success"`
	Data       any                `json:"data"`
	Pagination service.Pagination `json:"pagination"`
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(response{Success: false, Message: message})
}

// translateServiceError maps service sentinels onto HTTP statuses. Anything
// unrecognized is a persistence or programming fault and is logged, then
// surfaced as an opaque 500.
func translateServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return fail(c, fiber.StatusNotFound, "article not found")
	case errors.Is(err, service.ErrSlugTaken):
		return fail(c, fiber.StatusConflict, "slug already in use")
	default:
		rid, _ := c.Locals("request_id").(string)
		logger.Get().Error().
			Str("request_id", rid).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Err(err).
			Msg("request failed")
		return fail(c, fiber.StatusInternalServerError, "internal server error")
	}
}

// ErrorHandler returns the Fiber global error handler. It catches everything
// the route handlers did not translate themselves, including unknown routes,
// and keeps the response inside the standard envelope.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return fail(c, status, "bad request")
		case fiber.StatusNotFound:
			return fail(c, status, "not found")
		case fiber.StatusMethodNotAllowed:
			return fail(c, status, "method not allowed")
		default:
			return fail(c, status, "internal server error")
		}
	}
}
