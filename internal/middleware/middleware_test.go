package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareit/internal/ratelimit"
)

func setupRouter(t *testing.T, mw ...gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetInt64(UserIDKey), "request_id": requestID(c)})
	})
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r
}

func performRequest(r http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error.Code
}

func TestSharerUser(t *testing.T) {
	r := setupRouter(t, SharerUser())

	w := performRequest(r, http.MethodGet, "/whoami", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "MISSING_USER_ID", errorCode(t, w))

	for _, bad := range []string{"abc", "0", "-3"} {
		w = performRequest(r, http.MethodGet, "/whoami", map[string]string{SharerUserHeader: bad})
		assert.Equal(t, http.StatusBadRequest, w.Code, bad)
	}

	w = performRequest(r, http.MethodGet, "/whoami", map[string]string{SharerUserHeader: "42"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
}

func TestRequestID(t *testing.T) {
	r := setupRouter(t, RequestID())

	w := performRequest(r, http.MethodGet, "/whoami", nil)
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)

	w = performRequest(r, http.MethodGet, "/whoami", map[string]string{RequestIDHeader: "req-1"})
	assert.Equal(t, "req-1", w.Header().Get(RequestIDHeader))
	assert.Contains(t, w.Body.String(), `"request_id":"req-1"`)
}

func TestRecovery(t *testing.T) {
	r := setupRouter(t, Recovery(zerolog.Nop()))

	w := performRequest(r, http.MethodGet, "/panic", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "INTERNAL_ERROR", errorCode(t, w))
}

func TestAccessLog(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	r := setupRouter(t, RequestID(), AccessLog(log), SharerUser())

	performRequest(r, http.MethodGet, "/whoami?x=1", map[string]string{SharerUserHeader: "7", RequestIDHeader: "abc"})

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "abc", line["request_id"])
	assert.Equal(t, float64(200), line["status"])
	assert.Equal(t, float64(7), line["user_id"])
	assert.Equal(t, "x=1", line["query"])
	assert.Equal(t, "info", line["level"])
}

func TestRateLimit(t *testing.T) {
	r := setupRouter(t, RateLimit(ratelimit.NewMemoryLimiter(0.001, 1), zerolog.Nop()))
	h := map[string]string{SharerUserHeader: "1"}

	assert.Equal(t, http.StatusOK, performRequest(r, http.MethodGet, "/whoami", h).Code)
	w := performRequest(r, http.MethodGet, "/whoami", h)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "RATE_LIMITED", errorCode(t, w))

	// another user has its own bucket
	assert.Equal(t, http.StatusOK, performRequest(r, http.MethodGet, "/whoami", map[string]string{SharerUserHeader: "2"}).Code)
}

type brokenLimiter struct{}

func (brokenLimiter) Allow(context.Context, string) (bool, error) {
	return false, errors.New("redis down")
}

func TestRateLimit_FailsOpen(t *testing.T) {
	r := setupRouter(t, RateLimit(brokenLimiter{}, zerolog.Nop()))
	assert.Equal(t, http.StatusOK, performRequest(r, http.MethodGet, "/whoami", nil).Code)
}

func TestCORS_Preflight(t *testing.T) {
	r := setupRouter(t, CORS([]string{"https://app.example.com"}))

	w := performRequest(r, http.MethodOptions, "/whoami", map[string]string{
		"Origin":                        "https://app.example.com",
		"Access-Control-Request-Method": "GET",
	})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	w = performRequest(r, http.MethodOptions, "/whoami", map[string]string{
		"Origin":                        "https://evil.example.com",
		"Access-Control-Request-Method": "GET",
	})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
