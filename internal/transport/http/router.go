package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Alexander2227/tennis-pro-system/internal/service"
)

// Router wires the public booking surface, the staff desk and the
// admin dashboard.
func Router(booking *service.BookingSvc, analytics *service.AnalyticsSvc, staff *service.StaffSvc) *gin.Engine {
	r := gin.Default()

	rh := NewReservationHandler(booking)
	ah := NewAuthHandler(staff)
	adm := NewAdminHandler(analytics, staff)

	api := r.Group("/api")
	{
		api.POST("/reservations", rh.Create)
		api.POST("/reservations/cancel", rh.Cancel)
		api.POST("/staff/login", ah.Login)

		desk := api.Group("/staff")
		desk.Use(JWTAuth())
		{
			desk.POST("/check-in", rh.CheckIn)
			desk.GET("/pending-classes", rh.PendingClasses)
			desk.GET("/metrics", adm.Metrics)
		}

		admin := api.Group("/admin")
		admin.Use(JWTAuth(), RequireRole("ADMIN"))
		{
			admin.GET("/analytics", adm.Analytics)
			admin.GET("/activity", adm.Activity)
			admin.GET("/history", adm.History)
			admin.GET("/report.pdf", adm.ReportPDF)
			admin.GET("/staff", adm.ListStaff)
			admin.POST("/staff", adm.CreateStaff)
			admin.DELETE("/staff/:id", adm.DeleteStaff)
		}
	}
	return r
}
