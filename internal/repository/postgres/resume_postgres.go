package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"resumeapi/internal/model"
	"resumeapi/internal/repository"
)

// ResumePostgres is a PostgreSQL implementation of repository.ResumeRepository.
// Authored content lives in a JSONB column; ownership and timestamps are columns.
type ResumePostgres struct {
	db *sql.DB
}

// NewResumePostgres creates a new ResumePostgres repository.
func NewResumePostgres(db *sql.DB) *ResumePostgres {
	return &ResumePostgres{db: db}
}

var _ repository.ResumeRepository = (*ResumePostgres)(nil)

const resumeColumns = `id, user_id, content, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (*model.Resume, error) {
	var (
		r   model.Resume
		raw []byte
	)
	if err := row.Scan(&r.ID, &r.User, &raw, &r.CreatedAt, &r.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(raw, &r.ResumeContent); err != nil {
		return nil, fmt.Errorf("decode resume content: %w", err)
	}
	r.Normalize()
	return &r, nil
}

// Create inserts a new résumé row and returns the stored record.
func (r *ResumePostgres) Create(ctx context.Context, res *model.Resume) (*model.Resume, error) {
	content, err := json.Marshal(res.ResumeContent)
	if err != nil {
		return nil, fmt.Errorf("encode resume content: %w", err)
	}
	id := res.ID
	if id == "" {
		id = uuid.NewString()
	}

	const q = `
		INSERT INTO resumes (id, user_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + resumeColumns
	row := r.db.QueryRowContext(ctx, q, id, res.User, content, res.CreatedAt, res.UpdatedAt)
	return scanResume(row)
}

// FindByID fetches a résumé owned by userID.
func (r *ResumePostgres) FindByID(ctx context.Context, id, userID string) (*model.Resume, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, repository.ErrNotFound
	}
	const q = `SELECT ` + resumeColumns + ` FROM resumes WHERE id = $1 AND user_id = $2`
	return scanResume(r.db.QueryRowContext(ctx, q, id, userID))
}

// ListByUser returns every résumé owned by userID in creation order.
func (r *ResumePostgres) ListByUser(ctx context.Context, userID string) ([]model.Resume, error) {
	const q = `
		SELECT ` + resumeColumns + `
		FROM resumes
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Resume, 0)
	for rows.Next() {
		res, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update replaces the content of an owned résumé.
func (r *ResumePostgres) Update(ctx context.Context, id, userID string, content model.ResumeContent, updatedAt time.Time) (*model.Resume, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, repository.ErrNotFound
	}
	raw, err := json.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("encode resume content: %w", err)
	}
	const q = `
		UPDATE resumes SET content = $3, updated_at = $4
		WHERE id = $1 AND user_id = $2
		RETURNING ` + resumeColumns
	return scanResume(r.db.QueryRowContext(ctx, q, id, userID, raw, updatedAt))
}

// Delete removes an owned résumé. ErrNotFound when nothing matched.
func (r *ResumePostgres) Delete(ctx context.Context, id, userID string) error {
	if _, err := uuid.Parse(id); err != nil {
		return repository.ErrNotFound
	}
	const q = `DELETE FROM resumes WHERE id = $1 AND user_id = $2`
	res, err := r.db.ExecContext(ctx, q, id, userID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// SetProfilePicture writes personal_info.profile_picture inside the JSONB content.
func (r *ResumePostgres) SetProfilePicture(ctx context.Context, id, userID, path string) error {
	if _, err := uuid.Parse(id); err != nil {
		return repository.ErrNotFound
	}
	const q = `
		UPDATE resumes
		SET content = jsonb_set(content, '{personal_info,profile_picture}', to_jsonb($3::text), true)
		WHERE id = $1 AND user_id = $2
	`
	res, err := r.db.ExecContext(ctx, q, id, userID, path)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
