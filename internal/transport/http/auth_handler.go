package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Alexander2227/tennis-pro-system/internal/service"
)

type AuthHandler struct {
	svc *service.StaffSvc
}

func NewAuthHandler(svc *service.StaffSvc) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// POST /api/staff/login
func (h *AuthHandler) Login(c *gin.Context) {
	var in struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, staff, err := h.svc.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"staff": gin.H{"id": staff.ID, "name": staff.Name, "role": staff.Role},
	})
}
