package vehicle

import (
	"errors"
	"net/http"
	"strconv"

	"vehiclerental/internal/middleware"
	"vehiclerental/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the unauthenticated read endpoints.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/vehicles", h.ListVehicles)
	rg.GET("/vehicles/:id", h.GetVehicle)
}

// RegisterAdminRoutes mounts fleet management; callers wrap the group with
// JWTAuth, AdminOnly is applied here.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/vehicles", middleware.AdminOnly())
	{
		admin.POST("", h.CreateVehicle)
		admin.PUT("/:id", h.UpdateVehicle)
		admin.DELETE("/:id", h.DeleteVehicle)
	}
}

func (h *Handler) CreateVehicle(c *gin.Context) {
	var req CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	v, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Vehicle created successfully", v)
}

func (h *Handler) ListVehicles(c *gin.Context) {
	vs, err := h.service.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Vehicles retrieved successfully", vs)
}

func (h *Handler) GetVehicle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid vehicle ID")
		return
	}

	v, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Vehicle retrieved successfully", v)
}

func (h *Handler) UpdateVehicle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid vehicle ID")
		return
	}

	var req UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	v, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Vehicle updated successfully", v)
}

func (h *Handler) DeleteVehicle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid vehicle ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Vehicle deleted successfully", nil)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "Invalid vehicle data")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "Vehicle not found")
	case errors.Is(err, ErrRegistrationExists), errors.Is(err, ErrHasActiveBookings):
		response.Error(c, http.StatusConflict, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
	}
}
