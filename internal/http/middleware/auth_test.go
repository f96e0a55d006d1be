package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/shoplist-app/shoplist-backend/internal/domain"
	"github.com/shoplist-app/shoplist-backend/internal/pkg/logger"
	"github.com/shoplist-app/shoplist-backend/internal/requestdata"
)

type stubIdentity struct {
	principal *types.User
}

func (s *stubIdentity) PrincipalFromToken(ctx context.Context, tokenString string) (*types.User, error) {
	if s.principal == nil || tokenString != "valid-token" {
		return nil, fmt.Errorf("invalid token")
	}
	return s.principal, nil
}

func authTestRouter(t *testing.T, identity *stubIdentity) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}

	r := gin.New()
	r.Use(NewAuthMiddleware(log, identity).RequireAuth())
	r.GET("/api/me", func(c *gin.Context) {
		rd := requestdata.GetRequestData(c.Request.Context())
		if rd == nil || rd.Principal == nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": rd.Principal.ID})
	})
	return r
}

func TestRequireAuthRejectsMissingOrBadTokens(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := authTestRouter(t, &stubIdentity{principal: &types.User{ID: uuid.New()}})

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc123"},
		{"empty bearer", "Bearer "},
		{"rejected token", "Bearer expired-token"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusUnauthorized)
			}
		})
	}
}

func TestRequireAuthAttachesPrincipal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	u := &types.User{ID: uuid.New(), Email: "auth@example.com"}
	r := authTestRouter(t, &stubIdentity{principal: u})

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d body=%s", rec.Code, http.StatusOK, rec.Body.String())
	}
}
