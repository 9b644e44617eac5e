package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"conference-management-api/models"

	"github.com/gin-gonic/gin"
)

func TestAuthMiddlewareRejectsMissingOrMalformedTokens(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"no bearer prefix", "token-without-prefix"},
		{"garbage token", "Bearer not-a-jwt"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				c.Request.Header.Set("Authorization", tc.header)
			}

			AuthMiddleware()(c)

			if recorder.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", recorder.Code)
			}
			if !c.IsAborted() {
				t.Error("request should be aborted")
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name    string
		role    interface{}
		status  int
		aborted bool
	}{
		{"admin passes", models.RoleAdmin, http.StatusOK, false},
		{"user forbidden", models.RoleUser, http.StatusForbidden, true},
		{"missing role forbidden", nil, http.StatusForbidden, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.role != nil {
				c.Set("role", tc.role)
			}

			RequireAdmin()(c)

			if c.IsAborted() != tc.aborted {
				t.Errorf("aborted = %v, want %v", c.IsAborted(), tc.aborted)
			}
			if tc.aborted && recorder.Code != tc.status {
				t.Errorf("status = %d, want %d", recorder.Code, tc.status)
			}
		})
	}
}
