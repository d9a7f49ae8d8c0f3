package api

import (
	"errors"
	"net/http"

	"staybook/internal/domain/booking"
	reqdto "staybook/internal/handler/dto/request"
	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/handler/middleware"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Create a new booking for a property
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookingCommands.Create(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPropertyNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Property not found",
			})
		case errors.Is(err, commands.ErrNotAvailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Property is not available for the requested dates",
			})
		case errors.Is(err, commands.ErrValidationFailed):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Get user bookings
// @Description Get all bookings for the current user
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) GetUserBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.bookingQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingList(items))
}

// @Summary Get booking
// @Description Get booking by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, actor, ok := h.bookingRequestContext(c)
	if !ok {
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id, actor)
	if err != nil {
		h.respondQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Get booking history
// @Description Get the status change trail for a booking, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {array} resdto.HistoryEntryResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/history [get]
func (h *BookingHandler) GetBookingHistory(c *gin.Context) {
	id, actor, ok := h.bookingRequestContext(c)
	if !ok {
		return
	}

	entries, err := h.bookingQueries.GetHistory(c.Request.Context(), id, actor)
	if err != nil {
		h.respondQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromHistoryList(entries))
}

// @Summary Get booking receipt
// @Description Get the receipt with the full price breakdown
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.ReceiptResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/receipt [get]
func (h *BookingHandler) GetBookingReceipt(c *gin.Context) {
	id, actor, ok := h.bookingRequestContext(c)
	if !ok {
		return
	}

	receipt, err := h.bookingQueries.GetReceipt(c.Request.Context(), id, actor)
	if err != nil {
		h.respondQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReceiptView(receipt))
}

// @Summary Transition booking status
// @Description Apply a status change to a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.TransitionBookingRequest true "Transition request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/transition [post]
func (h *BookingHandler) TransitionBooking(c *gin.Context) {
	id, actor, ok := h.bookingRequestContext(c)
	if !ok {
		return
	}

	var req reqdto.TransitionBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookingCommands.Transition(c.Request.Context(), id, req, actor)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Cancel a booking, optionally requesting a refund
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest true "Cancellation request"
// @Success 200 {object} resdto.CancelResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id, actor, ok := h.bookingRequestContext(c)
	if !ok {
		return
	}

	var req reqdto.CancelBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookingCommands.Cancel(c.Request.Context(), id, req, actor)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	resp := resdto.CancelResponse{
		Booking:         resdto.FromBookingView(result.Booking),
		RefundRequested: result.Refund != nil,
	}
	if result.Refund != nil {
		refund := result.Refund.RefundCents
		deduction := result.Refund.DeductionCents
		resp.RefundAmountCents = &refund
		resp.DeductionCents = &deduction
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Check availability
// @Description Check whether a property is free for a date range
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param property_id query string true "Property ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/availability [get]
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	var query reqdto.AvailabilityQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	checkIn, checkOut, err := query.Dates()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format",
		})
		return
	}

	view, err := h.bookingQueries.CheckAvailability(c.Request.Context(), query.PropertyID, checkIn, checkOut)
	if err != nil {
		h.respondQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Quote price
// @Description Price a prospective stay without booking it
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param property_id query string true "Property ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param guests query int true "Guest count"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/quote [get]
func (h *BookingHandler) QuotePrice(c *gin.Context) {
	var query reqdto.QuoteQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	checkIn, checkOut, err := query.Dates()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format",
		})
		return
	}

	view, err := h.bookingQueries.QuotePrice(c.Request.Context(), query.PropertyID, checkIn, checkOut, query.Guests)
	if err != nil {
		h.respondQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

func (h *BookingHandler) bookingRequestContext(c *gin.Context) (uuid.UUID, booking.Actor, bool) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return uuid.Nil, booking.Actor{}, false
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return uuid.Nil, booking.Actor{}, false
	}

	return id, actor, true
}

func (h *BookingHandler) respondQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, queries.ErrPropertyNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Property not found",
		})
	case errors.Is(err, queries.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Access denied",
		})
	case errors.Is(err, queries.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func (h *BookingHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, commands.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Access denied",
		})
	case errors.Is(err, commands.ErrInvalidTransition):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Invalid status transition",
		})
	case errors.Is(err, commands.ErrStaleState):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking was modified concurrently",
		})
	case errors.Is(err, commands.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
