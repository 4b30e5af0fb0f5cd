package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"resumeapi/internal/model"
	"resumeapi/internal/repository"
	"resumeapi/internal/storage"
)

var (
	ErrIDRequired       = errors.New("id is required")
	ErrNotFound         = errors.New("resume not found")
	ErrReaderNil        = errors.New("reader is nil")
	ErrNoProfilePicture = errors.New("profile picture not found")
)

// pictureURLExpiry bounds how long a signed picture URL stays valid.
const pictureURLExpiry = 15 * time.Minute

// ProfilePicture is a stored picture ready to be served. Exactly one of URL and Body
// is set; Body must be closed by the caller.
type ProfilePicture struct {
	URL  string
	Body io.ReadCloser
	Info storage.ObjectInfo
}

// ResumeService defines the résumé use cases. Every method is scoped to userID; a
// résumé owned by someone else behaves exactly like a missing one.
type ResumeService interface {
	// Create stores content as a new résumé owned by userID.
	Create(ctx context.Context, userID string, content model.ResumeContent) (*model.Resume, error)

	// List returns every résumé owned by userID. Never nil.
	List(ctx context.Context, userID string) ([]model.Resume, error)

	Get(ctx context.Context, id, userID string) (*model.Resume, error)

	// Update replaces all content fields and stamps a new updated_at.
	Update(ctx context.Context, id, userID string, content model.ResumeContent) (*model.Resume, error)

	Delete(ctx context.Context, id, userID string) error

	// UploadProfilePicture stores the picture as "<id>_<filename>" and records its
	// location on the résumé, removing the stored object again if that fails.
	UploadProfilePicture(ctx context.Context, id, userID string, r io.Reader, filename, contentType string, size int64) (string, error)

	// ProfilePicture returns a signed URL for the picture when the backend can issue
	// one, and an open stream otherwise.
	ProfilePicture(ctx context.Context, id, userID string) (*ProfilePicture, error)
}

type resumeService struct {
	store storage.Storage
	repo  repository.ResumeRepository
	now   func() time.Time
}

// NewResumeService constructs a new ResumeService.
func NewResumeService(store storage.Storage, repo repository.ResumeRepository) ResumeService {
	return &resumeService{store: store, repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func mapNotFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *resumeService) Create(ctx context.Context, userID string, content model.ResumeContent) (*model.Resume, error) {
	content.Normalize()
	now := s.now()
	res := &model.Resume{
		ResumeContent: content,
		User:          userID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	stored, err := s.repo.Create(ctx, res)
	if err != nil {
		return nil, fmt.Errorf("create resume: %w", err)
	}
	return stored, nil
}

func (s *resumeService) List(ctx context.Context, userID string) ([]model.Resume, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Resume{}
	}
	return items, nil
}

func (s *resumeService) Get(ctx context.Context, id, userID string) (*model.Resume, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	res, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return res, nil
}

func (s *resumeService) Update(ctx context.Context, id, userID string, content model.ResumeContent) (*model.Resume, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	content.Normalize()
	res, err := s.repo.Update(ctx, id, userID, content, s.now())
	if err != nil {
		return nil, mapNotFound(err)
	}
	return res, nil
}

func (s *resumeService) Delete(ctx context.Context, id, userID string) error {
	if id == "" {
		return ErrIDRequired
	}
	return mapNotFound(s.repo.Delete(ctx, id, userID))
}

func (s *resumeService) UploadProfilePicture(ctx context.Context, id, userID string, r io.Reader, filename, contentType string, size int64) (string, error) {
	if id == "" {
		return "", ErrIDRequired
	}
	if r == nil {
		return "", ErrReaderNil
	}
	// Ownership first so nothing is written for a résumé the caller cannot see.
	if _, err := s.repo.FindByID(ctx, id, userID); err != nil {
		return "", mapNotFound(err)
	}

	key := id + "_" + filename
	info, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": filename,
		},
	})
	if err != nil {
		return "", fmt.Errorf("upload to storage: %w", err)
	}

	if err := s.repo.SetProfilePicture(ctx, id, userID, info.Location); err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return "", fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return "", fmt.Errorf("db save failed: %w", mapNotFound(err))
	}
	return info.Location, nil
}

func (s *resumeService) ProfilePicture(ctx context.Context, id, userID string) (*ProfilePicture, error) {
	res, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	loc := res.PersonalInfo.ProfilePicture
	if loc == nil || *loc == "" {
		return nil, ErrNoProfilePicture
	}
	key := storage.KeyFromLocation(*loc)

	url, err := s.store.PresignGet(ctx, key, pictureURLExpiry)
	if err == nil {
		return &ProfilePicture{URL: url}, nil
	}
	if !errors.Is(err, storage.ErrPresignUnsupported) {
		return nil, fmt.Errorf("presign picture: %w", err)
	}

	body, info, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, ErrNoProfilePicture
		}
		return nil, fmt.Errorf("read picture: %w", err)
	}
	return &ProfilePicture{Body: body, Info: info}, nil
}
