package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ComputahSaysNo/catz-court-booking/internal/api"
	"github.com/ComputahSaysNo/catz-court-booking/internal/auth"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func statusFor(kind Kind) int {
	switch kind {
	case KindInvalidInput, KindPastBooking, KindOutOfHours:
		return http.StatusBadRequest
	case KindSchedulingConflict:
		return http.StatusConflict
	case KindRestrictionViolation:
		return http.StatusUnprocessableEntity
	case KindPermissionDenied:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func respondRejection(c *gin.Context, err error) {
	var r *Rejection
	if !errors.As(err, &r) {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal error"})
		return
	}

	if r.Kind == KindStoreError {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal error"})
		return
	}

	if r.Conflicting != nil {
		c.JSON(statusFor(r.Kind), gin.H{
			"error":          r.Message,
			"conflicts_with": r.Conflicting,
		})
		return
	}

	c.JSON(statusFor(r.Kind), api.ErrorResponse{Error: r.Message})
}

// CreateBooking godoc
// @Summary      Create booking
// @Description  Books a court slot for the authenticated user.
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        booking  body      CreateBookingRequest  true  "Booking"
// @Success      201      {object}  Booking
// @Failure      400      {object}  api.ErrorResponse
// @Failure      403      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Failure      422      {object}  api.ErrorResponse
// @Router       /bookings [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	ident := auth.GetIdentity(c)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	created, err := h.service.Create(c.Request.Context(), ident, req)
	if err != nil {
		respondRejection(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// DeleteBooking godoc
// @Summary      Delete booking
// @Description  Deletes a booking. Owners may delete their own bookings;
//               admins may delete any.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID  path      int  true  "Booking ID"
// @Success      200        {object}  DeleteBookingResponse
// @Failure      403        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Router       /bookings/{bookingID} [delete]
func (h *Handler) DeleteBooking(c *gin.Context) {
	ident := auth.GetIdentity(c)

	bookingID, err := strconv.Atoi(c.Param("bookingID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid booking ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), ident, bookingID); err != nil {
		respondRejection(c, err)
		return
	}

	c.JSON(http.StatusOK, DeleteBookingResponse{Message: "Booking deleted successfully"})
}

// ListMyBookings godoc
// @Summary      List my bookings
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Booking
// @Failure      500  {object}  api.ErrorResponse
// @Router       /bookings [get]
func (h *Handler) ListMyBookings(c *gin.Context) {
	ident := auth.GetIdentity(c)
	if !ident.Authenticated {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	bookings, err := h.service.GetBookingsByUser(c.Request.Context(), ident.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// ListBookingsByCourt godoc
// @Summary      List bookings by court
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        courtID  path      int     true   "Court ID"
// @Param        date     query     string  false  "Filter to one day (YYYY-MM-DD)"
// @Success      200      {array}   BookingWithDetails
// @Failure      400      {object}  api.ErrorResponse
// @Router       /courts/{courtID}/bookings [get]
func (h *Handler) ListBookingsByCourt(c *gin.Context) {
	courtID, err := strconv.Atoi(c.Param("courtID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid court ID"})
		return
	}

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := ParseDate(dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid date, use YYYY-MM-DD"})
			return
		}

		bookings, err := h.service.GetBookingsForCourtDate(c.Request.Context(), courtID, date)
		if err != nil {
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch bookings"})
			return
		}

		c.JSON(http.StatusOK, bookings)
		return
	}

	bookings, err := h.service.GetBookingsByCourt(c.Request.Context(), courtID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// ListBookingsByUser godoc
// @Summary      List bookings by user
// @Description  Returns all bookings owned by the given user. Admin only.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        userID  path      int  true  "User ID"
// @Success      200     {array}   Booking
// @Failure      400     {object}  api.ErrorResponse
// @Router       /users/{userID}/bookings [get]
func (h *Handler) ListBookingsByUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid user ID"})
		return
	}

	bookings, err := h.service.GetBookingsByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// ListAllBookings godoc
// @Summary      List all bookings
// @Description  Returns every booking with court and owner details. Admin only.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   BookingWithDetails
// @Failure      500  {object}  api.ErrorResponse
// @Router       /admin/bookings [get]
func (h *Handler) ListAllBookings(c *gin.Context) {
	bookings, err := h.service.GetAllBookings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}
