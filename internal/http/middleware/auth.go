package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"resumeapi/internal/model"
)

// UserLocalKey holds the authenticated *model.User in Fiber's context locals.
const UserLocalKey = "user"

// UnauthorizedMessage is returned for every bearer failure.
const UnauthorizedMessage = "Could not validate credentials"

// UserResolver maps a bearer token to a user.
type UserResolver interface {
	Resolve(ctx context.Context, token string) (*model.User, error)
}

// RequireAuth rejects requests without a valid bearer token with 401.
func RequireAuth(resolver UserResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := BearerToken(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
			return fiber.NewError(fiber.StatusUnauthorized, UnauthorizedMessage)
		}
		u, err := resolver.Resolve(c.UserContext(), token)
		if err != nil {
			c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
			return fiber.NewError(fiber.StatusUnauthorized, UnauthorizedMessage)
		}
		c.Locals(UserLocalKey, u)
		return c.Next()
	}
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// CurrentUser returns the user stored by RequireAuth, or nil.
func CurrentUser(c *fiber.Ctx) *model.User {
	u, _ := c.Locals(UserLocalKey).(*model.User)
	return u
}
