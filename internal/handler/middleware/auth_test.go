//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"massfit-bot/internal/domain/user"
	"massfit-bot/internal/handler/middleware"
	"massfit-bot/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newStaffRouter(cfg config.Config) (*gin.Engine, *user.Principal) {
	gin.SetMode(gin.TestMode)
	seen := &user.Principal{}
	r := gin.New()
	r.GET("/staff", middleware.NewAuthMiddleware(cfg).RequireStaff(), func(c *gin.Context) {
		p, ok := middleware.GetPrincipal(c)
		if ok {
			*seen = p
		}
		c.Status(http.StatusNoContent)
	})
	return r, seen
}

func TestRequireStaff(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		header     string
		wantStatus int
	}{
		{name: "valid token", token: "test-staff-token", header: "Bearer test-staff-token", wantStatus: http.StatusNoContent},
		{name: "missing header", token: "test-staff-token", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", token: "test-staff-token", header: "Basic test-staff-token", wantStatus: http.StatusUnauthorized},
		{name: "wrong token", token: "test-staff-token", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
		{name: "no token configured", token: "", header: "Bearer anything", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewTestConfig()
			cfg.API.StaffToken = tt.token
			r, seen := newStaffRouter(cfg)

			req := httptest.NewRequest(http.MethodGet, "/staff", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusNoContent {
				assert.Equal(t, user.RoleStaff, seen.Role)
				assert.True(t, seen.Can(user.RoleStaff))
			} else {
				assert.Contains(t, w.Body.String(), "token")
			}
		})
	}
}

func TestGetPrincipal_Absent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := middleware.GetPrincipal(c)

	assert.False(t, ok)
}
