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

type UserHandler struct {
	userUseCase usecase.UserUseCase
}

func NewUserHandler(userUseCase usecase.UserUseCase) *UserHandler {
	return &UserHandler{userUseCase: userUseCase}
}

// @Summary Create user
// @Description Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body reqdto.CreateUserRequest true "User payload"
// @Success 201 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req reqdto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrap(err, "bind user body"),
			"Invalid request format")
		return
	}

	view, err := h.userUseCase.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.ToUserResponse(view))
}

// @Summary Update user
// @Description Patch user name and/or email
// @Tags users
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Param request body reqdto.UpdateUserRequest true "Fields to change"
// @Success 200 {object} resdto.UserResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /users/{userId} [patch]
func (h *UserHandler) Update(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	var req reqdto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrap(err, "bind user body"),
			"Invalid request format")
		return
	}

	view, err := h.userUseCase.Update(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ToUserResponse(view))
}

// @Summary Get user
// @Tags users
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} resdto.UserResponse
// @Failure 404 {object} httperr.Response
// @Router /users/{userId} [get]
func (h *UserHandler) Get(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	view, err := h.userUseCase.Get(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ToUserResponse(view))
}

// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} resdto.UserResponse
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	views, err := h.userUseCase.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ToUserListResponse(views))
}

// @Summary Delete user
// @Tags users
// @Param userId path int true "User ID"
// @Success 200
// @Failure 404 {object} httperr.Response
// @Router /users/{userId} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	if err := h.userUseCase.Delete(c.Request.Context(), userID); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func (h *UserHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
	case errors.Is(err, usecase.ErrEmailTaken):
		httperr.AbortWithError(c, http.StatusConflict, err, "Email already in use")
	case errors.Is(err, usecase.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user data")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
