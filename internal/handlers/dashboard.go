package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"docgrow-server/internal/models"
	"docgrow-server/internal/schedule"
	"docgrow-server/internal/utils"
)

// upcomingLimit caps the dashboard's short upcoming list; its head doubles as
// the single next appointment.
const upcomingLimit = 3

// DashboardHandler serves the landing-screen metrics.
type DashboardHandler struct {
	Store *schedule.Store
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(store *schedule.Store) *DashboardHandler {
	return &DashboardHandler{Store: store}
}

// DashboardSummary mirrors what the dashboard renders: today's load, patient
// reach, and the next few visits.
type DashboardSummary struct {
	TodaysAppointments int                  `json:"todaysAppointments"`
	TotalPatients      int                  `json:"totalPatients"`
	NextAppointment    *models.Appointment  `json:"nextAppointment,omitempty"`
	Upcoming           []models.Appointment `json:"upcoming"`
}

// GetSummary handles fetching the dashboard metrics.
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	now := time.Now()
	appts := h.Store.Snapshot()

	upcoming := schedule.NextUpcoming(appts, now, upcomingLimit)
	summary := DashboardSummary{
		TodaysAppointments: schedule.TodaysCount(appts, now),
		TotalPatients:      schedule.DistinctPatients(appts),
		Upcoming:           upcoming,
	}
	if len(upcoming) > 0 {
		next := upcoming[0]
		summary.NextAppointment = &next
	}
	if summary.Upcoming == nil {
		summary.Upcoming = []models.Appointment{}
	}

	utils.Success(c, "Dashboard fetched successfully", summary)
}
