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

type RequestHandler struct {
	requestUseCase usecase.RequestUseCase
}

func NewRequestHandler(requestUseCase usecase.RequestUseCase) *RequestHandler {
	return &RequestHandler{requestUseCase: requestUseCase}
}

// @Summary Create item request
// @Description Ask other users to share an item
// @Tags requests
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param request body reqdto.CreateItemRequestRequest true "Request payload"
// @Success 201 {object} resdto.RequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /requests [post]
func (h *RequestHandler) Create(c *gin.Context) {
	requesterID, ok := sharerID(c)
	if !ok {
		return
	}

	var req reqdto.CreateItemRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrap(err, "bind request body"),
			"Invalid request format")
		return
	}

	view, err := h.requestUseCase.Create(c.Request.Context(), requesterID, req.Description)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.ToRequestResponse(view))
}

// @Summary List own item requests
// @Description The acting user's requests, newest first, with answering items
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Success 200 {array} resdto.RequestResponse
// @Failure 404 {object} httperr.Response
// @Router /requests [get]
func (h *RequestHandler) ListOwn(c *gin.Context) {
	requesterID, ok := sharerID(c)
	if !ok {
		return
	}

	views, err := h.requestUseCase.ListOwn(c.Request.Context(), requesterID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ToRequestListResponse(views))
}

// @Summary List other users' item requests
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param from query int false "Offset anchor" default(0)
// @Param size query int false "Page size" default(20)
// @Success 200 {array} resdto.RequestResponse
// @Failure 400 {object} httperr.Response
// @Router /requests/all [get]
func (h *RequestHandler) ListOthers(c *gin.Context) {
	userID, ok := sharerID(c)
	if !ok {
		return
	}
	from, size, ok := pagination(c)
	if !ok {
		return
	}

	views, err := h.requestUseCase.ListOthers(c.Request.Context(), userID, from, size)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ToRequestListResponse(views))
}

// @Summary Get item request
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param requestId path int true "Request ID"
// @Success 200 {object} resdto.RequestResponse
// @Failure 404 {object} httperr.Response
// @Router /requests/{requestId} [get]
func (h *RequestHandler) Get(c *gin.Context) {
	userID, ok := sharerID(c)
	if !ok {
		return
	}
	requestID, ok := pathID(c, "requestId")
	if !ok {
		return
	}

	view, err := h.requestUseCase.Get(c.Request.Context(), userID, requestID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ToRequestResponse(view))
}

func (h *RequestHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
	case errors.Is(err, usecase.ErrRequestNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Item request not found")
	case errors.Is(err, usecase.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
