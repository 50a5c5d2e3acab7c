package rbac

import (
	"net/http"

	"go-recruit/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) AssignRole(c *gin.Context) {
	agencyID := c.GetString("agency_id")

	var req AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	if err := h.service.AssignRole(agencyID, req.UserID, req.RoleID); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to assign role", nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"assigned": true}, nil)
}
