package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Alexander2227/tennis-pro-system/internal/domain"
	"github.com/Alexander2227/tennis-pro-system/internal/service"
)

type ReservationHandler struct {
	svc *service.BookingSvc
}

func NewReservationHandler(svc *service.BookingSvc) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

// POST /api/reservations
func (h *ReservationHandler) Create(c *gin.Context) {
	var in struct {
		FirstName   string  `json:"firstName" binding:"required"`
		LastName    string  `json:"lastName" binding:"required"`
		Phone       string  `json:"phone" binding:"required"`
		BirthDate   string  `json:"birthDate" binding:"required"`
		Nationality string  `json:"nationality" binding:"required"`
		NationalID  *string `json:"nationalId"`
		Passport    *string `json:"passport"`
		Kind        string  `json:"kind" binding:"required"`
		Date        string  `json:"date" binding:"required"`
		TimeSlot    string  `json:"timeSlot" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	info := service.ClientInfo{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Phone:       in.Phone,
		BirthDate:   in.BirthDate,
		Nationality: in.Nationality,
		NationalID:  in.NationalID,
		Passport:    in.Passport,
	}
	code, err := h.svc.Create(c.Request.Context(), info, in.Date, in.TimeSlot, domain.Kind(in.Kind))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"code": code})
}

// POST /api/reservations/cancel
func (h *ReservationHandler) Cancel(c *gin.Context) {
	var in struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.Cancel(c.Request.Context(), in.Code); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reservation cancelled"})
}

// POST /api/staff/check-in
func (h *ReservationHandler) CheckIn(c *gin.Context) {
	var in struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sub, _ := c.Get("sub")
	staffID, _ := sub.(string)
	status, err := h.svc.CheckIn(c.Request.Context(), in.Code, staffID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}

// GET /api/staff/pending-classes
func (h *ReservationHandler) PendingClasses(c *gin.Context) {
	rows, err := h.svc.ListPending(c.Request.Context())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	if rows == nil {
		rows = []service.PendingClass{}
	}
	c.JSON(http.StatusOK, rows)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrPastSlot), errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrCourtFull), errors.Is(err, service.ErrInstructorBusy), errors.Is(err, service.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrInvalidCode):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidLogin):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
