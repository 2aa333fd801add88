package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sensor-api/internal/cache"
	"sensor-api/internal/config"
	"sensor-api/internal/middleware"
	"sensor-api/internal/service"
	"sensor-api/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) (*gin.Engine, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)

	cfg := &config.Config{
		Port:           "0",
		APIKey:         "test-key",
		RateLimitRPS:   100,
		RateLimitBurst: 100,
	}
	svc := service.NewSensorService(db, cache.NewMemoryCache[string, any]())
	return SetupRoutes(cfg, svc), cfg
}

func TestHealth_Open(t *testing.T) {
	r, _ := newTestEngine(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAPIRoutes_RequireAPIKey(t *testing.T) {
	r, cfg := newTestEngine(t)

	// No key → 401
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/sensors", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Wrong key → 403
	req := httptest.NewRequest(http.MethodGet, "/api/sensors", nil)
	req.Header.Set(middleware.APIKeyHeader, "wrong")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code)

	// Right key → 200
	req = httptest.NewRequest(http.MethodGet, "/api/sensors", nil)
	req.Header.Set(middleware.APIKeyHeader, cfg.APIKey)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestCreateThroughGatedRoute(t *testing.T) {
	r, cfg := newTestEngine(t)

	body, _ := json.Marshal(map[string]string{"name": "Temp Sensor", "description": "x"})
	req := httptest.NewRequest(http.MethodPost, "/api/sensors", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.APIKeyHeader, cfg.APIKey)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)
}
