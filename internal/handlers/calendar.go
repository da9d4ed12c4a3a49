package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"docgrow-server/internal/models"
	"docgrow-server/internal/schedule"
	"docgrow-server/internal/utils"
)

// CalendarHandler serves the calendar density map and day-detail lists.
type CalendarHandler struct {
	Store *schedule.Store
}

// NewCalendarHandler creates a new CalendarHandler.
func NewCalendarHandler(store *schedule.Store) *CalendarHandler {
	return &CalendarHandler{Store: store}
}

// GetDayMarkers handles fetching per-day appointment counts with their
// density tier and render hints. Days without appointments are absent.
func (h *CalendarHandler) GetDayMarkers(c *gin.Context) {
	utils.Success(c, "Calendar days fetched successfully", schedule.DayMarkers(h.Store.Snapshot()))
}

// GetDayAppointments handles fetching the appointments of one calendar day,
// earliest first.
func (h *CalendarHandler) GetDayAppointments(c *gin.Context) {
	raw := c.Param("date")
	day, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		utils.BadRequest(c, "date must be YYYY-MM-DD")
		return
	}

	appts := schedule.ByDay(h.Store.Snapshot(), day)
	if appts == nil {
		appts = []models.Appointment{}
	}

	utils.Success(c, "Appointments fetched successfully", gin.H{
		"date":         raw,
		"count":        len(appts),
		"appointments": appts,
	})
}
