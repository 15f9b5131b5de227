package wire

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"venue-booking/internal/data/repository"
	"venue-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testApp() *App {
	return Wiring(&repository.Repository{}, nil, &utils.Config{}, zap.NewNop())
}

func TestUnknownRouteReturns404(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest(http.MethodGet, "/api/nonsense", nil)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Route not found", body["message"])
}

func TestWrongMethodReturns404(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest(http.MethodPatch, "/api/venues", nil)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Route not found", body["message"])
}

func TestRequestIDHeaderSet(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest(http.MethodGet, "/api/nonsense", nil)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestCORSPreflight(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest(http.MethodOptions, "/api/venues", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
