package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/healthcheck", NewHealthHandler().HealthCheck)

	rec := doJSON(r, http.MethodGet, "/healthcheck", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}
