package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/adevaproject/webapppro/internal/service"
)

// GetSettings handles GET /api/settings.
//
// @Summary Get site settings
// @Tags settings
// @Produce json
// @Success 200 {object} response
// @Router /api/settings [get]
func GetSettings(svc service.SettingsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		settings, err := svc.All(c.UserContext())
		if err != nil {
			return translateServiceError(c, err)
		}
		return c.JSON(response{Success: true, Data: settings})
	}
}
