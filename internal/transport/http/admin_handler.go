package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Alexander2227/tennis-pro-system/internal/domain"
	"github.com/Alexander2227/tennis-pro-system/internal/report"
	"github.com/Alexander2227/tennis-pro-system/internal/service"
)

type AdminHandler struct {
	analytics *service.AnalyticsSvc
	staff     *service.StaffSvc
}

func NewAdminHandler(analytics *service.AnalyticsSvc, staff *service.StaffSvc) *AdminHandler {
	return &AdminHandler{analytics: analytics, staff: staff}
}

// GET /api/admin/analytics?range=today|week|month&kind=...&status=...
func (h *AdminHandler) Analytics(c *gin.Context) {
	rng := service.Range(c.DefaultQuery("range", string(service.RangeWeek)))

	var kind *domain.Kind
	if v := c.Query("kind"); v != "" && v != "all" {
		k := domain.Kind(v)
		if !k.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown kind"})
			return
		}
		kind = &k
	}
	var status *domain.Status
	if v := c.Query("status"); v != "" && v != "all" {
		st := domain.Status(v)
		if !st.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
			return
		}
		status = &st
	}

	rep, err := h.analytics.Analytics(c.Request.Context(), rng, kind, status)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rep)
}

// GET /api/staff/metrics
func (h *AdminHandler) Metrics(c *gin.Context) {
	m, err := h.analytics.Metrics(c.Request.Context())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, m)
}

// GET /api/admin/activity
func (h *AdminHandler) Activity(c *gin.Context) {
	rows, err := h.analytics.Activity(c.Request.Context())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	if rows == nil {
		rows = []service.ActivityRow{}
	}
	c.JSON(http.StatusOK, rows)
}

// GET /api/admin/history?q=&from=&to=
func (h *AdminHandler) History(c *gin.Context) {
	rows, err := h.analytics.History(c.Request.Context(), c.Query("q"), c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	if rows == nil {
		rows = []service.HistoryRow{}
	}
	c.JSON(http.StatusOK, rows)
}

// GET /api/admin/report.pdf?from=&to=
func (h *AdminHandler) ReportPDF(c *gin.Context) {
	from, to := c.Query("from"), c.Query("to")
	rows, err := h.analytics.ReportRows(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	pdf, err := report.ReservationsPDF(rows, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="report.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GET /api/admin/staff
func (h *AdminHandler) ListStaff(c *gin.Context) {
	rows, err := h.staff.List(c.Request.Context())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// POST /api/admin/staff
func (h *AdminHandler) CreateStaff(c *gin.Context) {
	var in struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=5"`
		Role     string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	role := domain.Role(in.Role)
	if role != domain.RoleAdmin && role != domain.RoleInstructor {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown role"})
		return
	}
	staff, err := h.staff.Register(c.Request.Context(), in.Name, in.Email, in.Password, role)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": staff.ID, "name": staff.Name, "email": staff.Email, "role": staff.Role})
}

// DELETE /api/admin/staff/:id
func (h *AdminHandler) DeleteStaff(c *gin.Context) {
	if err := h.staff.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "staff removed"})
}
