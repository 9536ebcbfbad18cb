package api

import (
	"errors"
	"net/http"

	reqdto "peershare/internal/handler/dto/request"
	resdto "peershare/internal/handler/dto/response"
	"peershare/internal/handler/httperr"
	"peershare/internal/pkg/errs"
	"peershare/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	itemUseCase usecase.ItemUseCase
}

func NewItemHandler(itemUseCase usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{itemUseCase: itemUseCase}
}

// @Summary Create item
// @Description Publish an item for sharing
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param request body reqdto.CreateItemRequest true "Item payload"
// @Success 201 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	ownerID, ok := sharerID(c)
	if !ok {
		return
	}

	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrap(err, "bind item body"),
			"Invalid request format")
		return
	}

	view, err := h.itemUseCase.Create(c.Request.Context(), ownerID, req.ToInput())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.ToItemResponse(view))
}

// @Summary Update item
// @Description Patch item fields; only the owner may edit
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param itemId path int true "Item ID"
// @Param request body reqdto.UpdateItemRequest true "Fields to change"
// @Success 200 {object} resdto.ItemResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{itemId} [patch]
func (h *ItemHandler) Update(c *gin.Context) {
	ownerID, ok := sharerID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	var req reqdto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrap(err, "bind item body"),
			"Invalid request format")
		return
	}

	view, err := h.itemUseCase.Update(c.Request.Context(), ownerID, itemID, req.ToInput())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ToItemResponse(view))
}

// @Summary Get item
// @Description Item details with comments; the owner also sees last/next bookings
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param itemId path int true "Item ID"
// @Success 200 {object} resdto.ItemDetailResponse
// @Failure 404 {object} httperr.Response
// @Router /items/{itemId} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	requesterID, ok := sharerID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	view, err := h.itemUseCase.Get(c.Request.Context(), requesterID, itemID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ToItemDetailResponse(view))
}

// @Summary List own items
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param from query int false "Offset anchor" default(0)
// @Param size query int false "Page size" default(20)
// @Success 200 {array} resdto.ItemDetailResponse
// @Router /items [get]
func (h *ItemHandler) ListForOwner(c *gin.Context) {
	ownerID, ok := sharerID(c)
	if !ok {
		return
	}
	from, size, ok := pagination(c)
	if !ok {
		return
	}

	views, err := h.itemUseCase.ListForOwner(c.Request.Context(), ownerID, from, size)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ToItemDetailListResponse(views))
}

// @Summary Search items
// @Description Case-insensitive substring search over available items; blank text yields an empty list
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param text query string true "Search text"
// @Param from query int false "Offset anchor" default(0)
// @Param size query int false "Page size" default(20)
// @Success 200 {array} resdto.ItemResponse
// @Router /items/search [get]
func (h *ItemHandler) Search(c *gin.Context) {
	from, size, ok := pagination(c)
	if !ok {
		return
	}

	views, err := h.itemUseCase.Search(c.Request.Context(), c.Query("text"), from, size)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ToItemListResponse(views))
}

// @Summary Add comment
// @Description Comment on an item; only a booker with a finished approved rental may comment
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param itemId path int true "Item ID"
// @Param request body reqdto.CreateCommentRequest true "Comment payload"
// @Success 200 {object} resdto.CommentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{itemId}/comment [post]
func (h *ItemHandler) AddComment(c *gin.Context) {
	authorID, ok := sharerID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	var req reqdto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrap(err, "bind comment body"),
			"Invalid request format")
		return
	}

	view, err := h.itemUseCase.AddComment(c.Request.Context(), authorID, itemID, req.Text)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ToCommentResponse(view))
}

// @Summary Delete item
// @Tags items
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param itemId path int true "Item ID"
// @Success 200
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{itemId} [delete]
func (h *ItemHandler) Delete(c *gin.Context) {
	ownerID, ok := sharerID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	if err := h.itemUseCase.Delete(c.Request.Context(), ownerID, itemID); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func (h *ItemHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
	case errors.Is(err, usecase.ErrItemNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found")
	case errors.Is(err, usecase.ErrRequestNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Item request not found")
	case errors.Is(err, usecase.ErrNotItemOwner):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Only the owner may modify an item")
	case errors.Is(err, usecase.ErrNotRented):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Commenting requires a finished rental")
	case errors.Is(err, usecase.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item data")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
