package handler

import (
	"github.com/gofiber/fiber/v2"

	"resumeapi/internal/service"
)

func ListTemplates(svc service.TemplateService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.List())
	}
}

func TemplatePreview(svc service.TemplateService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"preview_url": svc.PreviewURL(c.Params("id"))})
	}
}
