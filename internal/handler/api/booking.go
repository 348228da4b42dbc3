package api

import (
	"errors"
	"net/http"
	"time"

	"carwash-booking/internal/domain/booking"
	reqdto "carwash-booking/internal/handler/dto/request"
	resdto "carwash-booking/internal/handler/dto/response"
	"carwash-booking/internal/handler/middleware"
	"carwash-booking/internal/infra"
	"carwash-booking/internal/pkg/clock"
	"carwash-booking/internal/pkg/errs"
	"carwash-booking/internal/usecase/commands"
	"carwash-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
	clock           clock.Clock
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries, clk clock.Clock) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
		clock:           clk,
	}
}

// @Summary Create booking
// @Description Book a service slot at a car wash
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	cmd, err := req.ToCommand()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date or start_time format",
		})
		return
	}

	result, err := h.bookingCommands.CreateBooking(c.Request.Context(), cmd, userID)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Car wash or service not found",
			})
		case errors.Is(err, errs.ErrBookingConflict),
			infra.IsKind(err, infra.KindSlotConflict),
			infra.IsKind(err, infra.KindDuplicateKey):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Requested slot is already booked",
			})
		case errors.Is(err, commands.ErrServiceMismatch):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Service does not belong to this car wash",
			})
		case errors.Is(err, commands.ErrOutsideOpeningHours):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Booking does not fit within opening hours",
			})
		case errors.Is(err, commands.ErrBookingInPast):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Booking start is in the past",
			})
		case errors.Is(err, commands.ErrCarWashInactive), errors.Is(err, commands.ErrServiceInactive):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Car wash or service is inactive",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateBookingResponse{BookingID: result.BookingID})
}

// @Summary List own bookings
// @Description List the current user's bookings, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param from query string false "Earliest date (YYYY-MM-DD)"
// @Param to query string false "Latest date (YYYY-MM-DD)"
// @Param after query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	filters, ok := bookingFilters(c)
	if !ok {
		return
	}

	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	views, next, err := h.bookingQueries.ListByUser(c.Request.Context(), userID, filters, cursor, queryLimit(c))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid cursor",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingList(views, next))
}

// @Summary List upcoming bookings
// @Description List the current user's active bookings from now on
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Success 200 {array} resdto.BookingResponse
// @Router /bookings/upcoming [get]
func (h *BookingHandler) ListUpcoming(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.bookingQueries.ListUpcoming(c.Request.Context(), userID, h.clock.Now(), queryLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items := make([]*resdto.BookingResponse, len(views))
	for i, v := range views {
		items[i] = resdto.FromBookingView(v)
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Get booking
// @Description Get booking by ID; owners and staff only
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	userID, role, ok := actor(c)
	if !ok {
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id, userID, role)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, queries.ErrBookingAccess):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Access denied",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Cancel a booking; owners and staff only
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	userID, role, ok := actor(c)
	if !ok {
		return
	}

	if err := h.bookingCommands.CancelBooking(c.Request.Context(), id, userID, role); err != nil {
		abortBookingStatusError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Update booking status
// @Description Confirm, complete, or cancel a booking; staff only
// @Tags bookings
// @Accept json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "Target status"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	_, role, ok := actor(c)
	if !ok {
		return
	}

	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	target, err := booking.NewStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid status value",
		})
		return
	}

	if err := h.bookingCommands.UpdateBookingStatus(c.Request.Context(), id, target, role); err != nil {
		abortBookingStatusError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Day schedule for a car wash
// @Description List every booking of a car wash on a date; staff only
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Car wash ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /car-washes/{id}/bookings [get]
func (h *BookingHandler) DaySchedule(c *gin.Context) {
	carWashID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	_, role, ok := actor(c)
	if !ok {
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date parameter, expected YYYY-MM-DD",
		})
		return
	}

	views, err := h.bookingQueries.ListByCarWashAndDate(c.Request.Context(), carWashID, date, role)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingAccess):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Access denied",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	items := make([]*resdto.BookingResponse, len(views))
	for i, v := range views {
		items[i] = resdto.FromBookingView(v)
	}
	c.JSON(http.StatusOK, items)
}

func abortBookingStatusError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrBookingNotFound), infra.IsKind(err, infra.KindNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, commands.ErrBookingNotOwned), errors.Is(err, commands.ErrStatusChangeDenied):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Access denied",
		})
	case errors.Is(err, errs.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Status transition not allowed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func bookingFilters(c *gin.Context) (queries.BookingFilters, bool) {
	var filters queries.BookingFilters

	if status := c.Query("status"); status != "" {
		if _, err := booking.NewStatus(status); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid status filter",
			})
			return queries.BookingFilters{}, false
		}
		filters.Status = &status
	}

	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid from parameter, expected YYYY-MM-DD",
			})
			return queries.BookingFilters{}, false
		}
		filters.From = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid to parameter, expected YYYY-MM-DD",
			})
			return queries.BookingFilters{}, false
		}
		filters.To = &t
	}

	return filters, true
}

func actor(c *gin.Context) (userID uuid.UUID, role string, ok bool) {
	id, idOK := middleware.GetUserID(c)
	r, roleOK := middleware.GetUserRole(c)
	if !idOK || !roleOK {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return uuid.Nil, "", false
	}
	return id, string(r), true
}
