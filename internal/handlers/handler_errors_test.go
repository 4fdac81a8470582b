package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ashirovtech/shop_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	return c, w
}

func TestRequireUserID_MissingUserIsUnauthorized(t *testing.T) {
	c, w := newTestContext(t)

	_, ok := requireUserID(c)

	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
}

func TestRequireUserID_FromContext(t *testing.T) {
	c, w := newTestContext(t)
	c.Request = c.Request.WithContext(middleware.WithUserID(c.Request.Context(), "user-9"))

	userID, ok := requireUserID(c)

	assert.True(t, ok)
	assert.Equal(t, "user-9", userID)
	assert.Equal(t, http.StatusOK, w.Code)
}
