package user

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.GET("", middleware.AdminOnly(), h.ListUsers)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", middleware.AdminOnly(), h.DeleteUser)
	}
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Users retrieved successfully", users)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	u, err := h.service.Update(c.Request.Context(), p, id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "User updated successfully", toSafeUser(u))
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "User deleted successfully", nil)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidRole):
		response.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "Forbidden")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "User not found")
	case errors.Is(err, ErrPhoneAlreadyExists), errors.Is(err, ErrHasActiveBookings):
		response.Error(c, http.StatusConflict, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
	}
}
