package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestRateLimitMiddleware_Basic(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(1, 1)) // 1 rps, burst 1
	r.GET("/r", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// first request consumes the burst token
	rq1 := httptest.NewRequest("GET", "/r", nil)
	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, rq1)
	require.Equal(t, http.StatusOK, w1.Code)

	// immediate second request -> blocked
	rq2 := httptest.NewRequest("GET", "/r", nil)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, rq2)
	require.Equal(t, http.StatusTooManyRequests, w2.Code)
	require.Equal(t, "1", w2.Header().Get("Retry-After"))
}
