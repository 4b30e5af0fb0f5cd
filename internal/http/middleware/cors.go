package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS allows the configured origins. Credentials are only allowed for an explicit
// origin list; browsers reject them together with "*".
func CORS(origins []string) fiber.Handler {
	allow := strings.Join(origins, ",")
	wildcard := allow == "" || allow == "*"
	if allow == "" {
		allow = "*"
	}
	return cors.New(cors.Config{
		AllowOrigins:     allow,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "*",
		AllowCredentials: !wildcard,
	})
}
