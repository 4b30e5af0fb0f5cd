package repository

import (
	"context"
	"time"

	"resumeapi/internal/model"
)

// ResumeRepository persists résumés. Every lookup and mutation is filtered by both the
// résumé id and the owning user id.
type ResumeRepository interface {
	// Create stores a new résumé and returns it with its generated ID.
	Create(ctx context.Context, r *model.Resume) (*model.Resume, error)

	// FindByID returns the résumé only if it belongs to userID.
	FindByID(ctx context.Context, id, userID string) (*model.Resume, error)

	// ListByUser returns all résumés owned by userID, oldest first.
	ListByUser(ctx context.Context, userID string) ([]model.Resume, error)

	// Update replaces the content of an owned résumé and stamps updatedAt.
	Update(ctx context.Context, id, userID string, content model.ResumeContent, updatedAt time.Time) (*model.Resume, error)

	// Delete removes an owned résumé.
	Delete(ctx context.Context, id, userID string) error

	// SetProfilePicture records the stored picture path on an owned résumé.
	SetProfilePicture(ctx context.Context, id, userID, path string) error
}
