package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupTracingRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestTracingMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		id, _ := c.Get("request_id")
		c.String(http.StatusOK, id.(string))
	})
	return router
}

func TestRequestTracingGeneratesID(t *testing.T) {
	router := setupTracingRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ping", nil)
	router.ServeHTTP(w, req)

	header := w.Header().Get("X-Request-ID")
	if header == "" {
		t.Fatal("expected a generated X-Request-ID header")
	}
	if w.Body.String() != header {
		t.Errorf("context request_id %q does not match header %q", w.Body.String(), header)
	}
}

func TestRequestTracingKeepsClientID(t *testing.T) {
	router := setupTracingRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Request-ID", "trace-123")
	router.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "trace-123" {
		t.Errorf("expected the client's request ID to be kept, got %q", got)
	}
	if w.Body.String() != "trace-123" {
		t.Errorf("handler saw request_id %q", w.Body.String())
	}
}
