package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestRequestIDKeepsClientID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		id, _ := c.Get("request_id")
		c.String(http.StatusOK, id.(string))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "client-supplied-id")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Header().Get(RequestIDHeader) != "client-supplied-id" {
		t.Errorf("expected client id echoed, got %s", w.Header().Get(RequestIDHeader))
	}
	if w.Body.String() != "client-supplied-id" {
		t.Errorf("expected client id on context, got %s", w.Body.String())
	}
}

func TestRequestIDGeneratesWhenMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	id := w.Header().Get(RequestIDHeader)
	if id == "" {
		t.Fatal("expected generated request id header")
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("expected UUID request id, got %s: %v", id, err)
	}
}
