package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/shoplist-app/shoplist-backend/internal/domain"
	"github.com/shoplist-app/shoplist-backend/internal/http/response"
	"github.com/shoplist-app/shoplist-backend/internal/requestdata"
)

// principal returns the authenticated user the auth middleware attached.
// A nil result means the route was wired without RequireAuth.
func principal(c *gin.Context) *types.User {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		return nil
	}
	return rd.Principal
}

func requirePrincipal(c *gin.Context) (*types.User, bool) {
	p := principal(c)
	if p == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": gin.H{"message": "missing or invalid token", "code": "unauthorized"},
		})
		return nil, false
	}
	return p, true
}

// pathUUID parses a uuid path param. A malformed id can never resolve to a
// resource, so it reports not found rather than a validation failure.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.RespondError(c, http.StatusNotFound, "not_found", err)
		return uuid.Nil, false
	}
	return id, true
}
