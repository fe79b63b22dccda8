package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStubRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewStubHandler().RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

// The placeholder body is a client contract; the message text must not
// change until a real handler replaces the route.
func TestStubRoutes_PlaceholderContract(t *testing.T) {
	t.Parallel()

	engine := newStubRouter()

	cases := []struct {
		path    string
		message string
	}{
		{"/api/v1/marketplace", "Marketplace routes are not implemented yet"},
		{"/api/v1/rough-stones", "Rough stone routes are not implemented yet"},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			engine.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.message, body["message"])
		})
	}
}

func TestStubRoutes_OnlyGet(t *testing.T) {
	t.Parallel()

	engine := newStubRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/marketplace", nil)
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
