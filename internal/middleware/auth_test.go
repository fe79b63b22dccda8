package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gemmarket_backend/internal/auth"
	"gemmarket_backend/internal/config"
	"gemmarket_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(t *testing.T) {
	t.Helper()
	prev := config.AppConfig
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = prev })
}

func newProtectedRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	chain := append([]gin.HandlerFunc{AuthMiddleware()}, extra...)
	group := engine.Group("/protected", chain...)
	group.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("userID")})
	})
	return engine
}

func doGet(engine *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	engine.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	setTestConfig(t)

	token, err := auth.GenerateToken("user-1", []string{"dealer"})
	require.NoError(t, err)

	rec := doGet(newProtectedRouter(), "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user-1")
}

func TestAuthMiddleware_RejectsBadHeaders(t *testing.T) {
	setTestConfig(t)

	engine := newProtectedRouter()

	assert.Equal(t, http.StatusUnauthorized, doGet(engine, "").Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(engine, "Token abc").Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(engine, "Bearer not-a-token").Code)
}

func TestRequireRoles(t *testing.T) {
	setTestConfig(t)

	engine := newProtectedRouter(RequireRoles(models.RoleAdmin, models.RoleAppraiser))

	adminToken, err := auth.GenerateToken("admin-1", []string{"admin"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, doGet(engine, "Bearer "+adminToken).Code)

	dealerToken, err := auth.GenerateToken("dealer-1", []string{"dealer"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, doGet(engine, "Bearer "+dealerToken).Code)
}

func TestAdminMiddleware_BlocksNonAdmin(t *testing.T) {
	setTestConfig(t)

	engine := newProtectedRouter(AdminMiddleware())

	customerToken, err := auth.GenerateToken("customer-1", []string{"customer"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, doGet(engine, "Bearer "+customerToken).Code)
}
