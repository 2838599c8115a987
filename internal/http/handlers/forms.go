package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/lumident/clinic-platform/internal/localstore"
	"github.com/lumident/clinic-platform/internal/pipeline"
	"github.com/lumident/clinic-platform/pkg/logging"
)

// Submitter runs the visitor submission flow.
type Submitter interface {
	SubmitBooking(ctx context.Context, form pipeline.BookingForm) (pipeline.Result, error)
	SubmitContact(ctx context.Context, form pipeline.ContactForm) (pipeline.Result, error)
}

// FormsHandler exposes the booking and contact forms plus the clinic
// contact-info override.
type FormsHandler struct {
	submitter Submitter
	store     *localstore.Store
	logger    *logging.Logger
}

func NewFormsHandler(submitter Submitter, store *localstore.Store, logger *logging.Logger) *FormsHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &FormsHandler{
		submitter: submitter,
		store:     store,
		logger:    logger,
	}
}

// SubmitBooking handles POST /api/bookings.
func (h *FormsHandler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	form := pipeline.BookingForm{
		FirstName:     r.PostFormValue("first_name"),
		LastName:      r.PostFormValue("last_name"),
		Email:         r.PostFormValue("email"),
		Phone:         r.PostFormValue("phone"),
		PreferredDate: r.PostFormValue("preferred_date"),
		Concern:       r.PostFormValue("concern"),
	}

	result, err := h.submitter.SubmitBooking(r.Context(), form)
	if err != nil {
		h.logger.Error("booking submission failed", "error", err)
		http.Error(w, "failed to save submission", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// SubmitContact handles POST /api/contact.
func (h *FormsHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	form := pipeline.ContactForm{
		FirstName: r.PostFormValue("first_name"),
		LastName:  r.PostFormValue("last_name"),
		Email:     r.PostFormValue("email"),
		Subject:   r.PostFormValue("subject"),
		Message:   r.PostFormValue("message"),
	}

	result, err := h.submitter.SubmitContact(r.Context(), form)
	if err != nil {
		h.logger.Error("contact submission failed", "error", err)
		http.Error(w, "failed to save submission", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetContactInfo handles GET /api/contact-info. Returns the stored
// override or 404 when none has been configured.
func (h *FormsHandler) GetContactInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.store.ContactInfo(r.Context())
	if err != nil {
		h.logger.Error("failed to load contact info", "error", err)
		http.Error(w, "failed to load contact info", http.StatusInternalServerError)
		return
	}
	if info == nil {
		http.Error(w, "contact info not configured", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(info)
}
