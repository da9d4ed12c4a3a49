package models

import (
	"time"
)

// Status represents the lifecycle state of an appointment
type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusPending   Status = "pending"
	StatusCanceled  Status = "canceled"
)

// Note holds the free-text notes attached to an appointment. Reviewed flips
// to true only when the notes are saved through the notes edit flow; notes
// entered at creation time start unreviewed.
type Note struct {
	Text     string `json:"text"`
	Reviewed bool   `json:"reviewed"`
}

// Appointment represents a single scheduled visit for the clinician
type Appointment struct {
	ID          string    `json:"id"`
	PatientName string    `json:"patientName"`
	Time        time.Time `json:"timeISO"`
	Symptom     string    `json:"symptom"`
	Status      Status    `json:"status"`
	Notes       Note      `json:"notes"`
}
