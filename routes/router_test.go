package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DhavalSuthar-24/scorebook/config"
	"github.com/DhavalSuthar-24/scorebook/internal/app"
	"github.com/DhavalSuthar-24/scorebook/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	hash, err := utils.HashPassword("letmein")
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.App.Env = config.EnvMemory
	cfg.App.FrontendURL = "http://localhost:3000"
	cfg.JWT.AccessTokenSecret = "router-test"
	cfg.JWT.AccessTokenExpiryMinutes = 10
	cfg.Operator.Username = "scorer"
	cfg.Operator.PasswordHash = hash
	cfg.Scoring.TotalOvers = 20
	cfg.Milestones.RefreshInterval = time.Second
	cfg.Milestones.DisplayDuration = time.Second

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a, err := app.Build(context.Background(), cfg, nil, logger)
	require.NoError(t, err)
	return SetupRoutes(Deps{
		Config:   cfg,
		Store:    a.Store,
		Matches:  a.Matches,
		Notifier: a.Notifier,
		Metrics:  a.Metrics,
		Logger:   logger,
	})
}

func request(r http.Handler, method, path, bearer string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestMutationsNeedOperatorToken(t *testing.T) {
	t.Parallel()
	r := newServer(t)

	rec := request(r, http.MethodPost, "/api/matches", "", gin.H{"team1": "Lions", "team2": "Tigers"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, http.StatusOK, request(r, http.MethodGet, "/api/matches", "", nil).Code)

	rec = request(r, http.MethodPost, "/api/auth/login", "", gin.H{"username": "scorer", "password": "letmein"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var login struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))

	rec = request(r, http.MethodPost, "/api/matches", login.Data.AccessToken, gin.H{"team1": "Lions", "team2": "Tigers"})
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = request(r, http.MethodPost, "/api/admin/recompute", login.Data.AccessToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestOperationalEndpoints(t *testing.T) {
	t.Parallel()
	r := newServer(t)

	assert.Equal(t, http.StatusOK, request(r, http.MethodGet, "/healthz", "", nil).Code)

	rec := request(r, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "scorebook_"), "metrics should expose the scorebook namespace")

	rec = request(r, http.MethodGet, "/api/settings", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
