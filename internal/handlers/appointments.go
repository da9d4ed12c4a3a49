package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"docgrow-server/internal/models"
	"docgrow-server/internal/schedule"
	"docgrow-server/internal/utils"
)

// AppointmentHandler handles appointment related requests.
type AppointmentHandler struct {
	Store *schedule.Store
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(store *schedule.Store) *AppointmentHandler {
	return &AppointmentHandler{Store: store}
}

// CreateAppointmentRequest represents the request body for creating an appointment.
// Name and symptom emptiness and the strict date/time format are checked by the
// core so their failures carry the validation error codes; binding only pins
// the status enum (cancellation is not reachable at creation).
type CreateAppointmentRequest struct {
	PatientName string        `json:"patientName"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	Symptom     string        `json:"symptom"`
	Status      models.Status `json:"status" binding:"omitempty,oneof=confirmed pending"`
	Notes       string        `json:"notes"`
}

// CreateAppointment handles creating a new appointment.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	appt, err := schedule.NewAppointment(schedule.NewAppointmentInput{
		PatientName: req.PatientName,
		Date:        req.Date,
		Time:        req.Time,
		Symptom:     req.Symptom,
		Status:      req.Status,
		Notes:       req.Notes,
	})
	if err != nil {
		var verr *schedule.ValidationError
		if errors.As(err, &verr) {
			utils.ValidationFailed(c, verr.Code, verr.Message)
		} else {
			utils.InternalServerError(c, "Failed to create appointment: "+err.Error())
		}
		return
	}

	h.Store.Add(appt)
	utils.Created(c, "Appointment added", appt)
}

// ListAppointments handles the filterable appointment list. The window is
// evaluated against the `date` query parameter when present, so a day tapped
// on the calendar can seed the reference day; it defaults to now. The `q`
// parameter narrows the windowed result by patient name or symptom.
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	window, ok := schedule.ParseWindow(c.DefaultQuery("window", string(schedule.WindowToday)))
	if !ok {
		utils.BadRequest(c, "window must be one of: today, upcoming, past")
		return
	}

	reference := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			utils.BadRequest(c, "date must be YYYY-MM-DD")
			return
		}
		reference = parsed
	}

	appts := schedule.ByWindow(h.Store.Snapshot(), reference, window)
	appts = schedule.Search(appts, c.Query("q"))
	if appts == nil {
		appts = []models.Appointment{}
	}

	utils.Success(c, "Appointments fetched successfully", appts)
}

// GetAppointmentByID handles fetching a single appointment by its ID.
func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	appt, ok := h.Store.Get(c.Param("id"))
	if !ok {
		utils.NotFound(c, "Appointment not found")
		return
	}
	utils.Success(c, "Appointment fetched successfully", appt)
}

// UpdateStatusRequest represents the request body for the status edit flow.
type UpdateStatusRequest struct {
	Status models.Status `json:"status" binding:"required,oneof=confirmed pending canceled"`
}

// UpdateAppointmentStatus handles the status edit-flow save.
func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	appt, ok := h.Store.SetStatus(c.Param("id"), req.Status)
	if !ok {
		utils.NotFound(c, "Appointment not found")
		return
	}
	utils.Success(c, "Status updated", appt)
}

// UpdateNotesRequest represents the request body for the notes edit flow.
// Empty text is allowed: clearing the notes still marks them reviewed.
type UpdateNotesRequest struct {
	Text string `json:"text"`
}

// UpdateAppointmentNotes handles the notes edit-flow save.
func (h *AppointmentHandler) UpdateAppointmentNotes(c *gin.Context) {
	var req UpdateNotesRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	appt, ok := h.Store.SetNotes(c.Param("id"), req.Text)
	if !ok {
		utils.NotFound(c, "Appointment not found")
		return
	}
	utils.Success(c, "Notes saved", appt)
}
