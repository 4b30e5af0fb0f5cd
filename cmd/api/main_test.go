package main

import (
	"context"
	"database/sql"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"resumeapi/docs"
	"resumeapi/internal/config"
	"resumeapi/internal/database"
	"resumeapi/internal/repository/mongodb"
	"resumeapi/internal/repository/postgres"
	"resumeapi/internal/storage"
)

func TestNewRootCmd(t *testing.T) {
	root := newRootCmd()

	names := []string{}
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "migrate"}, names)
	assert.NotNil(t, root.RunE)
}

func TestNewRepositories(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	r, u := newRepositories(&database.Store{Driver: config.DriverPostgres, SQL: db})
	assert.IsType(t, &postgres.ResumePostgres{}, r)
	assert.IsType(t, &postgres.UserPostgres{}, u)

	// Connect does not dial; the client only needs to exist.
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	require.NoError(t, err)
	defer client.Disconnect(context.Background())

	r, u = newRepositories(&database.Store{Driver: config.DriverMongo, MongoClient: client, Mongo: client.Database("test")})
	assert.IsType(t, &mongodb.ResumeMongo{}, r)
	assert.IsType(t, &mongodb.UserMongo{}, u)
}

func testApp(t *testing.T, db *sql.DB) *http.Response {
	t.Helper()
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("STATIC_DIR", t.TempDir())
	cfg := config.Load()

	log := logrus.New()
	log.SetOutput(io.Discard)

	app, err := newApp(cfg, log, prometheus.NewRegistry(), &database.Store{Driver: config.DriverPostgres, SQL: db},
		storage.NewLocal(afero.NewMemMapFs(), "uploads"))
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	return resp
}

func TestNewApp(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	resp := testApp(t, db)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestNewApp_MetricsAndAuth(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	t.Setenv("STORE_DRIVER", "postgres")
	cfg := config.Load()
	log := logrus.New()
	log.SetOutput(io.Discard)

	app, err := newApp(cfg, log, prometheus.NewRegistry(), &database.Store{Driver: config.DriverPostgres, SQL: db},
		storage.NewLocal(afero.NewMemMapFs(), "uploads"))
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/resumes", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.Contains(string(body), "http_requests_total"))
}

func TestNewApp_MissingKeyParse(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("OPENAI_API_KEY", "")
	cfg := config.Load()
	log := logrus.New()
	log.SetOutput(io.Discard)

	app, err := newApp(cfg, log, prometheus.NewRegistry(), &database.Store{Driver: config.DriverPostgres, SQL: db},
		storage.NewLocal(afero.NewMemMapFs(), "uploads"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/profile/parse-profile", strings.NewReader(`{"profile_text":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "OpenAI API key not found")
}

func TestNewApp_SwaggerDocIsHostIndependent(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	t.Setenv("STORE_DRIVER", "postgres")
	cfg := config.Load()
	log := logrus.New()
	log.SetOutput(io.Discard)

	app, err := newApp(cfg, log, prometheus.NewRegistry(), &database.Store{Driver: config.DriverPostgres, SQL: db},
		storage.NewLocal(afero.NewMemMapFs(), "uploads"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for _, host := range []string{"a.example.com", "b.example.com", "c.example.com", "d.example.com"} {
		wg.Add(1)
		go func(host string) {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
			req.Host = host
			req.Header.Set("X-Forwarded-Proto", "https")
			resp, err := app.Test(req)
			if !assert.NoError(t, err) {
				return
			}
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			body, _ := io.ReadAll(resp.Body)
			assert.Contains(t, string(body), "AI Resume Generator API")
			assert.NotContains(t, string(body), host)
		}(host)
	}
	wg.Wait()

	assert.Empty(t, docs.SwaggerInfo.Host)
	assert.Empty(t, docs.SwaggerInfo.Schemes)
}
