package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"resumeapi/internal/http/middleware"
	"resumeapi/internal/service"
)

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required"`
}

// loginRequest accepts JSON or an OAuth2 password form, where the email travels as
// "username".
type loginRequest struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func Register(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body registerRequest
		if err := bind(c, &body); err != nil {
			return err
		}
		u, err := svc.Register(c.UserContext(), body.Email, body.Password, body.FullName)
		if err != nil {
			if errors.Is(err, service.ErrEmailTaken) {
				return writeError(c, fiber.StatusConflict, "CONFLICT", "Email already registered")
			}
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(u)
	}
}

func Login(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body loginRequest
		if err := bind(c, &body); err != nil {
			return err
		}
		identity := body.Email
		if identity == "" {
			identity = body.Username
		}
		if identity == "" {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "username: required")
		}

		token, err := svc.Login(c.UserContext(), identity, body.Password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
				return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Incorrect email or password")
			}
			return err
		}
		return c.JSON(tokenResponse{AccessToken: token, TokenType: "bearer"})
	}
}

// Me returns the authenticated user.
func Me() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(middleware.CurrentUser(c))
	}
}
