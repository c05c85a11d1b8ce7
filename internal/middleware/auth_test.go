package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediconnect/mediconnect-api/internal/utils"
)

func newTestRouter(secret string) (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	var seenUserID string
	r := gin.New()
	r.GET("/protected", AuthMiddleware(secret), func(c *gin.Context) {
		id, _ := c.Get("userID")
		seenUserID = id.(string)
		c.Status(http.StatusOK)
	})
	return r, &seenUserID
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	r, _ := newTestRouter("test-secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	r, _ := newTestRouter("test-secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsForeignToken(t *testing.T) {
	r, _ := newTestRouter("test-secret")

	token, err := utils.GenerateJWT("other-secret", "64f0c7e2a1b2c3d4e5f60718", time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareSetsUserID(t *testing.T) {
	r, seenUserID := newTestRouter("test-secret")

	token, err := utils.GenerateJWT("test-secret", "64f0c7e2a1b2c3d4e5f60718", time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "64f0c7e2a1b2c3d4e5f60718", *seenUserID)
}
