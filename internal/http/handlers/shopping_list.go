package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shoplist-app/shoplist-backend/internal/http/response"
	"github.com/shoplist-app/shoplist-backend/internal/services"
)

type ShoppingListHandler struct {
	listService services.ShoppingListService
}

func NewShoppingListHandler(listService services.ShoppingListService) *ShoppingListHandler {
	return &ShoppingListHandler{listService: listService}
}

// GET /api/shopping-lists
func (h *ShoppingListHandler) ListLists(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	lists, err := h.listService.ListForUser(c.Request.Context(), p)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"shopping_lists": lists})
}

// POST /api/shopping-lists
// body: { "name": "..." }
func (h *ShoppingListHandler) CreateList(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	list, err := h.listService.Create(c.Request.Context(), p, req.Name)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, list)
}

// GET /api/shopping-lists/:id
func (h *ShoppingListHandler) GetList(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	listID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	detail, err := h.listService.Get(c.Request.Context(), p, listID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, detail)
}

// PUT /api/shopping-lists/:id
// Full replace: name is mandatory.
func (h *ShoppingListHandler) UpdateList(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	listID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Name *string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.Name == nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_name", fmt.Errorf("name is required"))
		return
	}

	list, err := h.listService.UpdateName(c.Request.Context(), p, listID, *req.Name)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, list)
}

// PATCH /api/shopping-lists/:id
// Partial update: an absent name leaves the list untouched.
func (h *ShoppingListHandler) PatchList(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	listID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Name *string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	if req.Name == nil {
		detail, err := h.listService.Get(c.Request.Context(), p, listID)
		if err != nil {
			response.RespondServiceError(c, err)
			return
		}
		response.RespondOK(c, detail.ShoppingList)
		return
	}

	list, err := h.listService.UpdateName(c.Request.Context(), p, listID, *req.Name)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, list)
}

// DELETE /api/shopping-lists/:id
func (h *ShoppingListHandler) DeleteList(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	listID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.listService.Delete(c.Request.Context(), p, listID); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondNoContent(c)
}
