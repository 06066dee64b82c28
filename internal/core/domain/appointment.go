package domain

import (
	"errors"
	"time"
)

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusWaiting AppointmentStatus = "waiting"
	StatusDone    AppointmentStatus = "done"
)

// Legacy wire aliases accepted on input for compatibility with the
// original front-desk client, which sends the Arabic status literals.
const (
	statusWaitingLegacy = "انتظار"
	statusDoneLegacy    = "منجز"
)

var ErrAppointmentNotFound = errors.New("appointment not found")
var ErrInvalidSerialNumber = errors.New("invalid serial number")
var ErrValidation = errors.New("validation failed")

// ParseStatus normalises a wire status value, accepting both the stable
// enum values and the legacy client literals.
func ParseStatus(s string) (AppointmentStatus, bool) {
	switch s {
	case string(StatusWaiting), statusWaitingLegacy:
		return StatusWaiting, true
	case string(StatusDone), statusDoneLegacy:
		return StatusDone, true
	}
	return "", false
}

// Toggle flips an appointment between waiting and done.
func (s AppointmentStatus) Toggle() AppointmentStatus {
	if s == StatusDone {
		return StatusWaiting
	}
	return StatusDone
}

// Appointment is a single front-desk booking.
type Appointment struct {
	ID               string            `json:"id"`
	SerialNumber     int               `json:"serialNumber"`
	PatientName      string            `json:"patientName"`
	PatientID        string            `json:"patientId"`
	PatientPhone     string            `json:"patientPhone"`
	PatientBirthDate string            `json:"patientBirthDate,omitempty"`
	AppointmentDate  string            `json:"appointmentDate"`
	AppointmentTime  string            `json:"appointmentTime"`
	Department       string            `json:"department"`
	Status           AppointmentStatus `json:"status"`
	CreatedAt        time.Time         `json:"createdAt"`
	CreatedBy        string            `json:"createdBy"`
}

// NumberingSettings controls serial number allocation.
type NumberingSettings struct {
	Start      int `json:"appointmentNumberStart"`
	NextSerial int `json:"nextSerialNumber"`
}
