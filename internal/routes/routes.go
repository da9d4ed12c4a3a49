package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"docgrow-server/internal/handlers"
	"docgrow-server/internal/schedule"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, store *schedule.Store, db *gorm.DB, logger zerolog.Logger) {
	// Initialize handlers
	appointmentHandler := handlers.NewAppointmentHandler(store)
	dashboardHandler := handlers.NewDashboardHandler(store)
	calendarHandler := handlers.NewCalendarHandler(store)
	profileHandler := handlers.NewProfileHandler(db, logger)

	api := router.Group("/api/v1")
	{
		api.GET("/dashboard", dashboardHandler.GetSummary)

		// Appointment routes
		appointmentRoutes := api.Group("/appointments")
		{
			appointmentRoutes.GET("", appointmentHandler.ListAppointments)
			appointmentRoutes.POST("", appointmentHandler.CreateAppointment)
			appointmentRoutes.GET("/:id", appointmentHandler.GetAppointmentByID)
			appointmentRoutes.PATCH("/:id/status", appointmentHandler.UpdateAppointmentStatus)
			appointmentRoutes.PATCH("/:id/notes", appointmentHandler.UpdateAppointmentNotes)
		}

		// Calendar routes
		calendarRoutes := api.Group("/calendar")
		{
			calendarRoutes.GET("/days", calendarHandler.GetDayMarkers)
			calendarRoutes.GET("/:date/appointments", calendarHandler.GetDayAppointments)
		}

		// Profile routes (onboarding + settings display name)
		profileRoutes := api.Group("/profile")
		{
			profileRoutes.GET("", profileHandler.GetProfile)
			profileRoutes.PUT("", profileHandler.UpdateProfile)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
