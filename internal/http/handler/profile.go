package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"resumeapi/internal/service"
)

// ProfileText is a pointer so an empty string is accepted while an absent field is not.
type parseProfileRequest struct {
	ProfileText *string `json:"profile_text" validate:"required"`
}

// ParseProfile answers with the structured profile, or the placeholder profile when
// the provider could not produce one. A missing API key is the only failure.
func ParseProfile(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body parseProfileRequest
		if err := bind(c, &body); err != nil {
			return err
		}
		p, err := svc.Parse(c.UserContext(), *body.ProfileText)
		if err != nil {
			if errors.Is(err, service.ErrMissingAPIKey) {
				return writeError(c, fiber.StatusInternalServerError, "MISSING_API_KEY", service.ErrMissingAPIKey.Error())
			}
			return err
		}
		return c.JSON(p)
	}
}
