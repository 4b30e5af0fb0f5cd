package handler

import (
	"github.com/gofiber/fiber/v2"

	"resumeapi/internal/database"
	"resumeapi/internal/http/middleware"
	"resumeapi/internal/service"
)

// Deps are the collaborators the routes need.
type Deps struct {
	Store     database.Pinger
	Auth      service.AuthService
	Resumes   service.ResumeService
	Templates service.TemplateService
	Profiles  service.ProfileService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/", Root())
	app.Get("/health", HealthCheck(d.Store))
	app.Get("/healthz", LivenessProbe())

	requireAuth := middleware.RequireAuth(d.Auth)
	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", Register(d.Auth))
	authGroup.Post("/login", Login(d.Auth))
	authGroup.Get("/me", requireAuth, Me())

	resumes := api.Group("/resumes", requireAuth)
	resumes.Post("/", CreateResume(d.Resumes))
	resumes.Get("/", ListResumes(d.Resumes))
	resumes.Get("/:id", GetResume(d.Resumes))
	resumes.Put("/:id", UpdateResume(d.Resumes))
	resumes.Delete("/:id", DeleteResume(d.Resumes))
	resumes.Post("/:id/profile-picture", UploadProfilePicture(d.Resumes))
	resumes.Get("/:id/profile-picture", ProfilePicture(d.Resumes))

	templates := api.Group("/templates", requireAuth)
	templates.Get("/", ListTemplates(d.Templates))
	templates.Get("/:id/preview", TemplatePreview(d.Templates))

	api.Post("/profile/parse-profile", ParseProfile(d.Profiles))
}
