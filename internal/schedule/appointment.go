package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"docgrow-server/internal/models"
)

// Validation error codes surfaced to the API layer.
const (
	CodeMissingRequiredField = "missing-required-field"
	CodeInvalidDateTime      = "invalid-datetime"
)

// ValidationError reports a rejected create input.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// dateTimeLayout is the strict input format for new appointments: a calendar
// date plus a 24h wall time. time.ParseInLocation rejects impossible dates
// such as February 30th.
const dateTimeLayout = "2006-01-02 15:04"

// NewAppointmentInput carries the raw create-form fields.
type NewAppointmentInput struct {
	PatientName string
	Date        string
	Time        string
	Symptom     string
	Status      models.Status
	Notes       string
}

// NewAppointment validates the input and builds a fresh record with a unique
// id. It touches no store; the caller prepends the result.
func NewAppointment(in NewAppointmentInput) (models.Appointment, error) {
	name := strings.TrimSpace(in.PatientName)
	symptom := strings.TrimSpace(in.Symptom)
	if name == "" || symptom == "" {
		return models.Appointment{}, &ValidationError{
			Code:    CodeMissingRequiredField,
			Message: "patient name and symptom are required",
		}
	}

	at, err := time.ParseInLocation(dateTimeLayout, in.Date+" "+in.Time, time.Local)
	if err != nil {
		return models.Appointment{}, &ValidationError{
			Code:    CodeInvalidDateTime,
			Message: "date must be YYYY-MM-DD and time HH:MM (24h)",
		}
	}

	status := in.Status
	if status == "" {
		status = models.StatusConfirmed
	}

	return models.Appointment{
		ID:          uuid.New().String(),
		PatientName: name,
		Time:        at,
		Symptom:     symptom,
		Status:      status,
		Notes:       models.Note{Text: strings.TrimSpace(in.Notes), Reviewed: false},
	}, nil
}

// UpdateStatus returns a copy of appts with the status of the record matching
// id replaced. An unknown id leaves the result identical to the input.
func UpdateStatus(appts []models.Appointment, id string, status models.Status) []models.Appointment {
	out := make([]models.Appointment, len(appts))
	for i, a := range appts {
		if a.ID == id {
			a.Status = status
		}
		out[i] = a
	}
	return out
}

// UpdateNotes returns a copy of appts with the notes of the record matching
// id replaced by the trimmed text. Saving through this path always marks the
// notes reviewed, regardless of their previous state.
func UpdateNotes(appts []models.Appointment, id string, text string) []models.Appointment {
	out := make([]models.Appointment, len(appts))
	for i, a := range appts {
		if a.ID == id {
			a.Notes = models.Note{Text: strings.TrimSpace(text), Reviewed: true}
		}
		out[i] = a
	}
	return out
}
