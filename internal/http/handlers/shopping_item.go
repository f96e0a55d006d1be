package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shoplist-app/shoplist-backend/internal/http/response"
	"github.com/shoplist-app/shoplist-backend/internal/services"
)

type ShoppingItemHandler struct {
	itemService services.ShoppingItemService
}

func NewShoppingItemHandler(itemService services.ShoppingItemService) *ShoppingItemHandler {
	return &ShoppingItemHandler{itemService: itemService}
}

// GET /api/shopping-lists/:id/shopping-items?page=&page_size=
func (h *ShoppingItemHandler) ListItems(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	listID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "0"))

	result, err := h.itemService.List(c.Request.Context(), p, listID, page, pageSize)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, result)
}

// POST /api/shopping-lists/:id/shopping-items
// body: { "name": "...", "purchased": bool } — both required.
func (h *ShoppingItemHandler) CreateItem(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	listID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Name      *string `json:"name"`
		Purchased *bool   `json:"purchased"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.Name == nil || req.Purchased == nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", fmt.Errorf("name and purchased are required"))
		return
	}

	item, err := h.itemService.Create(c.Request.Context(), p, listID, *req.Name, *req.Purchased)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, item)
}

// GET /api/shopping-lists/:id/shopping-items/:itemId
func (h *ShoppingItemHandler) GetItem(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	listID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathUUID(c, "itemId")
	if !ok {
		return
	}

	item, err := h.itemService.Get(c.Request.Context(), p, listID, itemID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, item)
}

// PUT /api/shopping-lists/:id/shopping-items/:itemId
// Full replace: name and purchased both required.
func (h *ShoppingItemHandler) UpdateItem(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	listID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathUUID(c, "itemId")
	if !ok {
		return
	}

	var req struct {
		Name      *string `json:"name"`
		Purchased *bool   `json:"purchased"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.Name == nil || req.Purchased == nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", fmt.Errorf("name and purchased are required"))
		return
	}

	item, err := h.itemService.Update(c.Request.Context(), p, listID, itemID, *req.Name, *req.Purchased)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, item)
}

// PATCH /api/shopping-lists/:id/shopping-items/:itemId
// Partial update: any subset of name/purchased.
func (h *ShoppingItemHandler) PatchItem(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	listID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathUUID(c, "itemId")
	if !ok {
		return
	}

	var req struct {
		Name      *string `json:"name"`
		Purchased *bool   `json:"purchased"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	item, err := h.itemService.Patch(c.Request.Context(), p, listID, itemID, services.ItemPatch{
		Name:      req.Name,
		Purchased: req.Purchased,
	})
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, item)
}

// DELETE /api/shopping-lists/:id/shopping-items/:itemId
func (h *ShoppingItemHandler) DeleteItem(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	listID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathUUID(c, "itemId")
	if !ok {
		return
	}

	if err := h.itemService.Delete(c.Request.Context(), p, listID, itemID); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondNoContent(c)
}

// DELETE /api/shopping-lists/:id/shopping-items/purchased
func (h *ShoppingItemHandler) DeletePurchased(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	listID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if _, err := h.itemService.DeletePurchased(c.Request.Context(), p, listID); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondNoContent(c)
}
