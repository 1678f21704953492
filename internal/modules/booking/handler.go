package booking

import (
	"errors"
	"net/http"
	"strconv"

	"vehiclerental/internal/domain"
	"vehiclerental/internal/middleware"
	"vehiclerental/internal/pkg/authz"
	"vehiclerental/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings", h.ListBookings)
	rg.PUT("/bookings/:id", h.UpdateBooking)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), p, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Booking created successfully", b)
}

func (h *Handler) ListBookings(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if authz.IsAdmin(p) {
		rows, err := h.service.ListAll(c.Request.Context())
		if err != nil {
			h.writeError(c, err)
			return
		}
		response.Success(c, http.StatusOK, "Bookings retrieved successfully", rows)
		return
	}

	rows, err := h.service.ListOwn(c.Request.Context(), p.ID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Your bookings retrieved successfully", rows)
}

func (h *Handler) UpdateBooking(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), p, bookingID, domain.BookingStatus(req.Status))
	if err != nil {
		h.writeError(c, err)
		return
	}

	msg := "Booking cancelled successfully"
	if b.Status == domain.BookingReturned {
		msg = "Booking marked as returned. Vehicle is now available"
	}
	response.Success(c, http.StatusOK, msg, b)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidTransition):
		response.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "Forbidden")
	case errors.Is(err, ErrCustomerNotFound), errors.Is(err, ErrVehicleNotFound), errors.Is(err, ErrBookingNotFound):
		response.Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrVehicleUnavailable):
		response.Error(c, http.StatusConflict, "Vehicle is not available")
	default:
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
	}
}
