package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/spicalc/internal/app/models"
	"github.com/yigit/spicalc/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	return cfg
}

func TestBuildDependencies(t *testing.T) {
	deps, err := BuildDependencies(testConfig(t), zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, 8, deps.GradeTable.Len())
	assert.NotNil(t, deps.Repos.SessionRepository)
	assert.NotNil(t, deps.Hub)
	assert.NotNil(t, deps.CalculatorService)
	assert.NotNil(t, deps.WebSocketHandler)
}

func TestBuildDependenciesRejectsBadGrades(t *testing.T) {
	cfg := testConfig(t)
	cfg.Grading.Grades = []models.Grade{{Label: "A", Points: 10}, {Label: "A", Points: 9}}

	_, err := BuildDependencies(cfg, zerolog.Nop())
	assert.Error(t, err)
}

func TestSetupRouter(t *testing.T) {
	cfg := testConfig(t)
	deps, err := BuildDependencies(cfg, zerolog.Nop())
	require.NoError(t, err)

	router := SetupRouter(cfg, deps, zerolog.Nop())
	gin.SetMode(gin.TestMode)

	for _, path := range []string{"/ping", "/health", "/api/v1/grades", "/swagger/index.html"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/sessions/unknown", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
