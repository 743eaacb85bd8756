package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Diyary311/onlineMenu/entity"
	"github.com/Diyary311/onlineMenu/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newProtectedRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(testSecret, roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"username": c.GetString("username"),
			"role":     c.GetString("role"),
		})
	})
	return r
}

func request(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	r := newProtectedRouter()
	assert.Equal(t, http.StatusUnauthorized, request(r, "").Code)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	r := newProtectedRouter()
	assert.Equal(t, http.StatusUnauthorized, request(r, "not-a-token").Code)

	// signed with another secret
	token, err := utils.GenerateToken("diyar", entity.RoleUser, "other-secret", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, request(r, token).Code)

	// expired
	token, err = utils.GenerateToken("diyar", entity.RoleUser, testSecret, -time.Minute)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, request(r, token).Code)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	r := newProtectedRouter()
	token, err := utils.GenerateToken("diyar", entity.RoleUser, testSecret, time.Hour)
	require.NoError(t, err)

	w := request(r, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "diyar")
}

func TestAuthMiddlewareRoleEnforcement(t *testing.T) {
	r := newProtectedRouter(entity.RoleAdmin)

	userToken, err := utils.GenerateToken("diyar", entity.RoleUser, testSecret, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, request(r, userToken).Code)

	adminToken, err := utils.GenerateToken("boss", entity.RoleAdmin, testSecret, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, request(r, adminToken).Code)
}
