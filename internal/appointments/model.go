package appointments

import (
	"strings"
	"time"
)

// Appointment is a stored booking or contact submission.
type Appointment struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	PreferredDate string    `json:"preferred_date"`
	Concern       string    `json:"concern"`
	Message       string    `json:"message,omitempty"`
	Kind          string    `json:"kind"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateAppointmentRequest carries the submitted form fields.
type CreateAppointmentRequest struct {
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	PreferredDate string
	Concern       string
	Message       string
	Kind          string
}

// Normalize trims the name fields and fills defaults for omitted ones.
func (r *CreateAppointmentRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Phone = strings.TrimSpace(r.Phone)
	if r.Concern == "" {
		r.Concern = "General Checkup"
	}
	if r.Kind == "" {
		r.Kind = "appointment"
	}
}

// Validate returns the user-facing validation failures, in field order.
func (r *CreateAppointmentRequest) Validate() []string {
	var errs []string
	if r.FirstName == "" {
		errs = append(errs, "First Name is required.")
	}
	if r.Phone == "" {
		errs = append(errs, "Phone Number is required.")
	}
	if r.PreferredDate == "" {
		errs = append(errs, "Preferred Date is required.")
	}
	return errs
}
