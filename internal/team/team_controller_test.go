package team

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DhavalSuthar-24/scorebook/internal/models"
	"github.com/DhavalSuthar-24/scorebook/internal/store/memory"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(t *testing.T) (*gin.Engine, *memory.Store) {
	t.Helper()
	st := memory.New()
	r := gin.New()
	allow := func(c *gin.Context) { c.Next() }
	TeamRoutes(r.Group("/api"), st, slog.New(slog.NewTextHandler(io.Discard, nil)), allow)
	return r, st
}

func send(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestStandingsOrder(t *testing.T) {
	t.Parallel()
	r, st := newRouter(t)
	require.NoError(t, st.BulkUpsertTeams(context.Background(), []models.TeamRecord{
		{Name: "Bears", Points: 4, Won: 2, NRR: 0.1},
		{Name: "Lions", Points: 4, Won: 2, NRR: 0.9},
		{Name: "Tigers", Points: 6, Won: 3},
	}))

	rec := send(t, r, http.MethodGet, "/api/teams", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data []models.TeamRecord `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 3)
	assert.Equal(t, "Tigers", body.Data[0].Name)
	assert.Equal(t, "Lions", body.Data[1].Name)
	assert.Equal(t, "Bears", body.Data[2].Name)
}

func TestCreateTeam(t *testing.T) {
	t.Parallel()
	r, st := newRouter(t)

	rec := send(t, r, http.MethodPost, "/api/teams", gin.H{"name": " Lions "})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = send(t, r, http.MethodPost, "/api/teams", gin.H{"name": "lions"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = send(t, r, http.MethodPost, "/api/teams", gin.H{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	teams, err := st.ListTeams(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, "Lions", teams[0].Name)
}

func TestReplaceTeams(t *testing.T) {
	t.Parallel()
	r, st := newRouter(t)
	require.NoError(t, st.BulkUpsertTeams(context.Background(), []models.TeamRecord{{Name: "Old"}}))

	rec := send(t, r, http.MethodPut, "/api/teams", gin.H{"teams": []gin.H{
		{"name": "Lions", "played": 1, "won": 1, "points": 2},
		{"name": "Tigers", "played": 1, "lost": 1},
	}})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	teams, err := st.ListTeams(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "Lions", teams[0].Name)
	assert.Equal(t, 2, teams[0].Points)

	t.Run("duplicate names rejected", func(t *testing.T) {
		rec := send(t, r, http.MethodPut, "/api/teams", gin.H{"teams": []gin.H{{"name": "A"}, {"name": "a"}}})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("negative counters rejected", func(t *testing.T) {
		rec := send(t, r, http.MethodPut, "/api/teams", gin.H{"teams": []gin.H{{"name": "A", "won": -1}}})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteTeam(t *testing.T) {
	t.Parallel()
	r, st := newRouter(t)
	require.NoError(t, st.CreateTeam(context.Background(), &models.TeamRecord{Name: "Lions"}))

	assert.Equal(t, http.StatusOK, send(t, r, http.MethodDelete, "/api/teams/Lions", nil).Code)
	assert.Equal(t, http.StatusNotFound, send(t, r, http.MethodDelete, "/api/teams/Lions", nil).Code)
}

func TestStoreFailureHidesCause(t *testing.T) {
	t.Parallel()
	r, st := newRouter(t)
	st.FailWrites(errors.New("disk on fire"))

	rec := send(t, r, http.MethodPost, "/api/teams", gin.H{"name": "Lions"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "disk on fire")
}
