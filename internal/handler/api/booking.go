package api

import (
	"errors"
	"net/http"
	"strconv"

	"peershare/internal/domain/booking"
	reqdto "peershare/internal/handler/dto/request"
	resdto "peershare/internal/handler/dto/response"
	"peershare/internal/handler/httperr"
	"peershare/internal/pkg/errs"
	"peershare/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{bookingUseCase: bookingUseCase}
}

// @Summary Create booking
// @Description Request a rental of an available item
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param request body reqdto.CreateBookingRequest true "Booking payload"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	bookerID, ok := sharerID(c)
	if !ok {
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrap(err, "bind booking body"),
			"Invalid request format")
		return
	}

	view, err := h.bookingUseCase.Create(c.Request.Context(), bookerID, req.ToInput())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.ToBookingResponse(view))
}

// @Summary Approve or reject booking
// @Description Owner decides on a waiting booking via the approved query flag
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param bookingId path int true "Booking ID"
// @Param approved query bool true "true approves, false rejects"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{bookingId} [patch]
func (h *BookingHandler) Approve(c *gin.Context) {
	ownerID, ok := sharerID(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}

	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrap(err, "parse approved flag"),
			"Invalid approved parameter")
		return
	}

	view, err := h.bookingUseCase.Approve(c.Request.Context(), ownerID, bookingID, approved)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ToBookingResponse(view))
}

// @Summary Get booking
// @Description Visible only to the booker or the item owner
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param bookingId path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{bookingId} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	requesterID, ok := sharerID(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}

	view, err := h.bookingUseCase.Get(c.Request.Context(), requesterID, bookingID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ToBookingResponse(view))
}

// @Summary List own bookings
// @Description Bookings made by the acting user, filtered by state, newest first
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Param from query int false "Offset anchor" default(0)
// @Param size query int false "Page size" default(20)
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListForBooker(c *gin.Context) {
	bookerID, ok := sharerID(c)
	if !ok {
		return
	}
	filter, ok := h.stateFilter(c)
	if !ok {
		return
	}
	from, size, ok := pagination(c)
	if !ok {
		return
	}

	views, err := h.bookingUseCase.ListForBooker(c.Request.Context(), bookerID, filter, from, size)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ToBookingListResponse(views))
}

// @Summary List bookings of own items
// @Description Bookings of items owned by the acting user, filtered by state, newest first
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Param from query int false "Offset anchor" default(0)
// @Param size query int false "Page size" default(20)
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings/owner [get]
func (h *BookingHandler) ListForOwner(c *gin.Context) {
	ownerID, ok := sharerID(c)
	if !ok {
		return
	}
	filter, ok := h.stateFilter(c)
	if !ok {
		return
	}
	from, size, ok := pagination(c)
	if !ok {
		return
	}

	views, err := h.bookingUseCase.ListForOwner(c.Request.Context(), ownerID, filter, from, size)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ToBookingListResponse(views))
}

func (h *BookingHandler) stateFilter(c *gin.Context) (booking.StateFilter, bool) {
	raw := c.DefaultQuery("state", string(booking.FilterAll))
	filter, err := booking.ParseStateFilter(raw)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown state: "+raw)
		return "", false
	}
	return filter, true
}

func (h *BookingHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
	case errors.Is(err, usecase.ErrItemNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found")
	case errors.Is(err, usecase.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found")
	case errors.Is(err, usecase.ErrItemUnavailable):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Item is not available for booking")
	case errors.Is(err, usecase.ErrInvalidTimeRange):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking time range")
	case errors.Is(err, usecase.ErrBookingNotWaiting):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Booking has already been decided")
	case errors.Is(err, usecase.ErrAccessDenied):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
