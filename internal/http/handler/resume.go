package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"resumeapi/internal/http/middleware"
	"resumeapi/internal/model"
	"resumeapi/internal/service"
)

func resumeError(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrNotFound) || errors.Is(err, service.ErrIDRequired) {
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "Resume not found")
	}
	return err
}

// CreateResume stores the body as a new résumé owned by the caller.
func CreateResume(svc service.ResumeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body model.ResumeContent
		if err := bind(c, &body); err != nil {
			return err
		}
		res, err := svc.Create(c.UserContext(), middleware.CurrentUser(c).ID, body)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

func ListResumes(svc service.ResumeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext(), middleware.CurrentUser(c).ID)
		if err != nil {
			return err
		}
		return c.JSON(items)
	}
}

func GetResume(svc service.ResumeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Get(c.UserContext(), c.Params("id"), middleware.CurrentUser(c).ID)
		if err != nil {
			return resumeError(c, err)
		}
		return c.JSON(res)
	}
}

// UpdateResume replaces every content field of an owned résumé.
func UpdateResume(svc service.ResumeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body model.ResumeContent
		if err := bind(c, &body); err != nil {
			return err
		}
		res, err := svc.Update(c.UserContext(), c.Params("id"), middleware.CurrentUser(c).ID, body)
		if err != nil {
			return resumeError(c, err)
		}
		return c.JSON(res)
	}
}

func DeleteResume(svc service.ResumeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id"), middleware.CurrentUser(c).ID); err != nil {
			return resumeError(c, err)
		}
		return c.JSON(fiber.Map{"message": "Resume deleted successfully"})
	}
}

// UploadProfilePicture accepts multipart/form-data with the picture in field "file".
func UploadProfilePicture(svc service.ResumeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		_, err = svc.UploadProfilePicture(c.UserContext(), c.Params("id"), middleware.CurrentUser(c).ID, f, fh.Filename, ct, fh.Size)
		if err != nil {
			return resumeError(c, err)
		}
		return c.JSON(fiber.Map{"message": "Profile picture uploaded successfully"})
	}
}

// ProfilePicture redirects to a signed URL when storage can issue one and streams
// the file otherwise.
func ProfilePicture(svc service.ResumeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pic, err := svc.ProfilePicture(c.UserContext(), c.Params("id"), middleware.CurrentUser(c).ID)
		if err != nil {
			if errors.Is(err, service.ErrNoProfilePicture) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "Profile picture not found")
			}
			return resumeError(c, err)
		}
		if pic.URL != "" {
			return c.Redirect(pic.URL, fiber.StatusTemporaryRedirect)
		}

		ct := pic.Info.ContentType
		if ct == "" {
			ct = fiber.MIMEOctetStream
		}
		c.Set(fiber.HeaderContentType, ct)
		// fasthttp closes the body once it has been written.
		if pic.Info.Size > 0 {
			return c.SendStream(pic.Body, int(pic.Info.Size))
		}
		return c.SendStream(pic.Body)
	}
}
