package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"resumeapi/internal/model"
	"resumeapi/internal/repository"
	repoMocks "resumeapi/internal/repository/mocks"
	"resumeapi/internal/storage"
	storeMocks "resumeapi/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func newTestResumeService(store storage.Storage, repo repository.ResumeRepository) *resumeService {
	svc := NewResumeService(store, repo).(*resumeService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestResumeService_Create(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockResumeRepository)
	svc := newTestResumeService(nil, mRepo)

	content := model.ResumeContent{Title: "Backend CV", Template: model.TemplateModern}

	mRepo.On("Create", ctx, mock.MatchedBy(func(r *model.Resume) bool {
		return r.User == "user-1" &&
			r.ID == "" &&
			r.CreatedAt.Equal(fixedNow) &&
			r.UpdatedAt.Equal(fixedNow) &&
			r.Experience != nil
	})).Return(&model.Resume{ID: "r1", User: "user-1"}, nil)

	res, err := svc.Create(ctx, "user-1", content)
	require.NoError(t, err)
	assert.Equal(t, "r1", res.ID)
	assert.Equal(t, "user-1", res.User)
	mRepo.AssertExpectations(t)
}

func TestResumeService_Create_RepoError(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockResumeRepository)
	svc := newTestResumeService(nil, mRepo)

	mRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db fail"))

	_, err := svc.Create(ctx, "user-1", model.ResumeContent{})
	assert.EqualError(t, err, "create resume: db fail")
}

func TestResumeService_List(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		setupMocks func(mRepo *repoMocks.MockResumeRepository)
		wantLen    int
		wantErr    bool
	}{
		{
			name: "happy path",
			setupMocks: func(mRepo *repoMocks.MockResumeRepository) {
				mRepo.On("ListByUser", ctx, "user-1").Return([]model.Resume{{ID: "1"}, {ID: "2"}}, nil)
			},
			wantLen: 2,
		},
		{
			name: "nil from repository becomes empty",
			setupMocks: func(mRepo *repoMocks.MockResumeRepository) {
				mRepo.On("ListByUser", ctx, "user-1").Return(nil, nil)
			},
			wantLen: 0,
		},
		{
			name: "repository error",
			setupMocks: func(mRepo *repoMocks.MockResumeRepository) {
				mRepo.On("ListByUser", ctx, "user-1").Return(nil, errors.New("db fail"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockResumeRepository)
			svc := newTestResumeService(nil, mRepo)
			tt.setupMocks(mRepo)

			items, err := svc.List(ctx, "user-1")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, items)
				assert.Len(t, items, tt.wantLen)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestResumeService_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         string
		setupMocks func(mRepo *repoMocks.MockResumeRepository)
		wantErr    error
	}{
		{
			name: "happy path",
			id:   "r1",
			setupMocks: func(mRepo *repoMocks.MockResumeRepository) {
				mRepo.On("FindByID", ctx, "r1", "user-1").Return(&model.Resume{ID: "r1"}, nil)
			},
		},
		{
			name:       "validation - empty id",
			setupMocks: func(mRepo *repoMocks.MockResumeRepository) {},
			wantErr:    ErrIDRequired,
		},
		{
			name: "not found maps repository sentinel",
			id:   "other-users",
			setupMocks: func(mRepo *repoMocks.MockResumeRepository) {
				mRepo.On("FindByID", ctx, "other-users", "user-1").Return(nil, repository.ErrNotFound)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockResumeRepository)
			svc := newTestResumeService(nil, mRepo)
			tt.setupMocks(mRepo)

			res, err := svc.Get(ctx, tt.id, "user-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, res)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.id, res.ID)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestResumeService_Update(t *testing.T) {
	ctx := context.Background()
	content := model.ResumeContent{Title: "New", Template: model.TemplateMinimal}
	normalized := content
	normalized.Normalize()

	t.Run("stamps updated_at and normalizes lists", func(t *testing.T) {
		mRepo := new(repoMocks.MockResumeRepository)
		svc := newTestResumeService(nil, mRepo)
		mRepo.On("Update", ctx, "r1", "user-1", normalized, fixedNow).
			Return(&model.Resume{ID: "r1", UpdatedAt: fixedNow}, nil)

		res, err := svc.Update(ctx, "r1", "user-1", content)
		require.NoError(t, err)
		assert.Equal(t, fixedNow, res.UpdatedAt)
		mRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mRepo := new(repoMocks.MockResumeRepository)
		svc := newTestResumeService(nil, mRepo)
		mRepo.On("Update", ctx, "r1", "user-2", normalized, fixedNow).Return(nil, repository.ErrNotFound)

		_, err := svc.Update(ctx, "r1", "user-2", content)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestResumeService_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "happy path"},
		{name: "not found", repoErr: repository.ErrNotFound, wantErr: ErrNotFound},
		{name: "db error", repoErr: errors.New("db fail"), wantErr: errors.New("db fail")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockResumeRepository)
			svc := newTestResumeService(nil, mRepo)
			mRepo.On("Delete", ctx, "r1", "user-1").Return(tt.repoErr)

			err := svc.Delete(ctx, "r1", "user-1")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("empty id", func(t *testing.T) {
		svc := newTestResumeService(nil, new(repoMocks.MockResumeRepository))
		assert.ErrorIs(t, svc.Delete(ctx, "", "user-1"), ErrIDRequired)
	})
}

func TestResumeService_UploadProfilePicture(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		setupMocks func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockResumeRepository) io.Reader
		wantPath   string
		wantErr    error
		wantErrMsg string
	}{
		{
			name: "happy path",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockResumeRepository) io.Reader {
				r := strings.NewReader("png")
				mRepo.On("FindByID", ctx, "r1", "user-1").Return(&model.Resume{ID: "r1"}, nil)
				mStore.On("Put", ctx, "r1_me.png", r, storage.PutObjectOptions{
					Size:        3,
					ContentType: "image/png",
					Metadata:    map[string]string{"original-filename": "me.png"},
				}).Return(storage.ObjectInfo{Key: "r1_me.png", Location: "uploads/r1_me.png"}, nil)
				mRepo.On("SetProfilePicture", ctx, "r1", "user-1", "uploads/r1_me.png").Return(nil)
				return r
			},
			wantPath: "uploads/r1_me.png",
		},
		{
			name: "nil reader",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockResumeRepository) io.Reader {
				return nil
			},
			wantErr: ErrReaderNil,
		},
		{
			name: "not owned - nothing stored",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockResumeRepository) io.Reader {
				mRepo.On("FindByID", ctx, "r1", "user-1").Return(nil, repository.ErrNotFound)
				return strings.NewReader("png")
			},
			wantErr: ErrNotFound,
		},
		{
			name: "storage error",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockResumeRepository) io.Reader {
				mRepo.On("FindByID", ctx, "r1", "user-1").Return(&model.Resume{ID: "r1"}, nil)
				mStore.On("Put", ctx, "r1_me.png", mock.Anything, mock.Anything).
					Return(storage.ObjectInfo{}, errors.New("disk full"))
				return strings.NewReader("png")
			},
			wantErrMsg: "upload to storage: disk full",
		},
		{
			name: "repository error with successful rollback",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockResumeRepository) io.Reader {
				mRepo.On("FindByID", ctx, "r1", "user-1").Return(&model.Resume{ID: "r1"}, nil)
				mStore.On("Put", ctx, "r1_me.png", mock.Anything, mock.Anything).
					Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
						return storage.ObjectInfo{Key: key, Location: "uploads/" + key}
					}, nil)
				mRepo.On("SetProfilePicture", ctx, "r1", "user-1", "uploads/r1_me.png").Return(errors.New("db fail"))
				mStore.On("Delete", ctx, "r1_me.png").Return(nil)
				return strings.NewReader("png")
			},
			wantErrMsg: "db save failed: db fail",
		},
		{
			name: "repository error with failed rollback",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockResumeRepository) io.Reader {
				mRepo.On("FindByID", ctx, "r1", "user-1").Return(&model.Resume{ID: "r1"}, nil)
				mStore.On("Put", ctx, "r1_me.png", mock.Anything, mock.Anything).
					Return(storage.ObjectInfo{Key: "r1_me.png", Location: "uploads/r1_me.png"}, nil)
				mRepo.On("SetProfilePicture", ctx, "r1", "user-1", "uploads/r1_me.png").Return(errors.New("db fail"))
				mStore.On("Delete", ctx, "r1_me.png").Return(errors.New("delete fail"))
				return strings.NewReader("png")
			},
			wantErrMsg: "rollback delete failed: delete fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStorage)
			mRepo := new(repoMocks.MockResumeRepository)
			svc := newTestResumeService(mStore, mRepo)

			r := tt.setupMocks(mStore, mRepo)

			path, err := svc.UploadProfilePicture(ctx, "r1", "user-1", r, "me.png", "image/png", 3)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else if tt.wantErrMsg != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantPath, path)
			}

			mStore.AssertExpectations(t)
			mRepo.AssertExpectations(t)
		})
	}
}

func TestResumeService_ProfilePicture(t *testing.T) {
	ctx := context.Background()
	withPicture := func(loc string) *model.Resume {
		r := &model.Resume{ID: "r1", User: "user-1"}
		r.PersonalInfo.ProfilePicture = &loc
		return r
	}

	t.Run("signed url when the backend supports it", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockResumeRepository)
		svc := newTestResumeService(mStore, mRepo)

		mRepo.On("FindByID", ctx, "r1", "user-1").Return(withPicture("pictures/r1_me.png"), nil)
		mStore.On("PresignGet", ctx, "r1_me.png", pictureURLExpiry).Return("https://minio.test/pictures/r1_me.png?sig", nil)

		pic, err := svc.ProfilePicture(ctx, "r1", "user-1")
		require.NoError(t, err)
		assert.Equal(t, "https://minio.test/pictures/r1_me.png?sig", pic.URL)
		assert.Nil(t, pic.Body)
		mStore.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("streams when presigning is unsupported", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockResumeRepository)
		svc := newTestResumeService(mStore, mRepo)

		body := io.NopCloser(strings.NewReader("pixels"))
		mRepo.On("FindByID", ctx, "r1", "user-1").Return(withPicture("uploads/r1_me.png"), nil)
		mStore.On("PresignGet", ctx, "r1_me.png", pictureURLExpiry).Return("", storage.ErrPresignUnsupported)
		mStore.On("Get", ctx, "r1_me.png").Return(body, storage.ObjectInfo{Key: "r1_me.png", Size: 6, ContentType: "image/png"}, nil)

		pic, err := svc.ProfilePicture(ctx, "r1", "user-1")
		require.NoError(t, err)
		assert.Empty(t, pic.URL)
		assert.Equal(t, body, pic.Body)
		assert.Equal(t, "image/png", pic.Info.ContentType)
		mStore.AssertExpectations(t)
	})

	t.Run("not owned", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockResumeRepository)
		svc := newTestResumeService(mStore, mRepo)

		mRepo.On("FindByID", ctx, "r1", "user-2").Return(nil, repository.ErrNotFound)

		_, err := svc.ProfilePicture(ctx, "r1", "user-2")
		assert.ErrorIs(t, err, ErrNotFound)
		mStore.AssertNotCalled(t, "PresignGet", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("no picture uploaded", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockResumeRepository)
		svc := newTestResumeService(mStore, mRepo)

		mRepo.On("FindByID", ctx, "r1", "user-1").Return(&model.Resume{ID: "r1"}, nil)

		_, err := svc.ProfilePicture(ctx, "r1", "user-1")
		assert.ErrorIs(t, err, ErrNoProfilePicture)
	})

	t.Run("file gone from storage", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockResumeRepository)
		svc := newTestResumeService(mStore, mRepo)

		mRepo.On("FindByID", ctx, "r1", "user-1").Return(withPicture("uploads/r1_me.png"), nil)
		mStore.On("PresignGet", ctx, "r1_me.png", pictureURLExpiry).Return("", storage.ErrPresignUnsupported)
		mStore.On("Get", ctx, "r1_me.png").Return(nil, storage.ObjectInfo{}, storage.ErrObjectNotFound)

		_, err := svc.ProfilePicture(ctx, "r1", "user-1")
		assert.ErrorIs(t, err, ErrNoProfilePicture)
	})

	t.Run("presign failure", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockResumeRepository)
		svc := newTestResumeService(mStore, mRepo)

		mRepo.On("FindByID", ctx, "r1", "user-1").Return(withPicture("pictures/r1_me.png"), nil)
		mStore.On("PresignGet", ctx, "r1_me.png", pictureURLExpiry).Return("", errors.New("no creds"))

		_, err := svc.ProfilePicture(ctx, "r1", "user-1")
		assert.EqualError(t, err, "presign picture: no creds")
	})
}
