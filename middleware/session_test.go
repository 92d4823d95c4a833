package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petal-pink/utils"
)

func newSessionRouter(tokens *utils.SessionTokens) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/cart", CartSessionMiddleware(tokens), func(c *gin.Context) {
		c.String(http.StatusOK, SessionID(c))
	})
	return r
}

func TestCartSessionMiddleware(t *testing.T) {
	tokens := utils.NewSessionTokens("secret", time.Hour)
	sessionID, token, _, err := tokens.Issue()
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"valid token", "Bearer " + token, http.StatusOK, sessionID},
		{"missing header", "", http.StatusUnauthorized, "Cart session header required"},
		{"wrong scheme", "Token " + token, http.StatusUnauthorized, "Invalid cart session header format"},
		{"bad token", "Bearer nope", http.StatusUnauthorized, "Invalid or expired cart session"},
	}

	router := newSessionRouter(tokens)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/cart", nil)
			if tt.header != "" {
				req.Header.Set(SessionHeader, tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
		})
	}
}
