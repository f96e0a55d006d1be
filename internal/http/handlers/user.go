package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shoplist-app/shoplist-backend/internal/http/response"
	"github.com/shoplist-app/shoplist-backend/internal/services"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GET /api/users/me
func (h *UserHandler) GetMe(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	response.RespondOK(c, gin.H{"me": p})
}

// POST /api/users (staff only)
// body: { "email": "...", "first_name": "...", "last_name": "...", "staff": bool }
func (h *UserHandler) CreateUser(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req struct {
		Email     string `json:"email"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Staff     bool   `json:"staff"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	user, err := h.userService.Provision(c.Request.Context(), p, services.ProvisionUserInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Staff:     req.Staff,
	})
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, user)
}
