package appointments

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/lumident/clinic-platform/internal/notify"
	"github.com/lumident/clinic-platform/internal/observability/metrics"
	"github.com/lumident/clinic-platform/pkg/logging"
)

// AdminNotifier alerts clinic staff about a stored submission.
type AdminNotifier interface {
	NotifyAdmin(ctx context.Context, sub notify.Submission)
}

// Handler handles HTTP requests for appointment processing.
type Handler struct {
	repo     Repository
	notifier AdminNotifier
	metrics  *metrics.SubmissionMetrics
	logger   *logging.Logger
}

// NewHandler creates a new appointments handler. The notifier may be nil.
func NewHandler(repo Repository, notifier AdminNotifier, m *metrics.SubmissionMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		repo:     repo,
		notifier: notifier,
		metrics:  m,
		logger:   logger,
	}
}

// resultEnvelope is the JSON shape every response uses.
type resultEnvelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// ProcessBooking handles POST /api/process-booking requests carrying a
// form-encoded submission.
func (h *Handler) ProcessBooking(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeEnvelope(w, http.StatusMethodNotAllowed, resultEnvelope{
			Success: false,
			Message: "Invalid request method.",
		})
		return
	}

	if err := r.ParseForm(); err != nil {
		h.logger.Error("failed to parse form", "error", err)
		writeEnvelope(w, http.StatusBadRequest, resultEnvelope{
			Success: false,
			Message: "Invalid request body.",
		})
		return
	}

	req := &CreateAppointmentRequest{
		FirstName:     r.PostFormValue("first_name"),
		LastName:      r.PostFormValue("last_name"),
		Email:         r.PostFormValue("email"),
		Phone:         r.PostFormValue("phone"),
		PreferredDate: r.PostFormValue("preferred_date"),
		Concern:       r.PostFormValue("concern"),
		Message:       r.PostFormValue("message"),
		Kind:          r.PostFormValue("kind"),
	}
	req.Normalize()

	if errs := req.Validate(); len(errs) > 0 {
		h.metrics.ObserveSubmission(req.Kind, "rejected")
		writeEnvelope(w, http.StatusBadRequest, resultEnvelope{
			Success: false,
			Errors:  errs,
		})
		return
	}

	appt, err := h.repo.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("failed to store submission", "error", err)
		h.metrics.ObserveSubmission(req.Kind, "error")
		writeEnvelope(w, http.StatusInternalServerError, resultEnvelope{
			Success: false,
			Message: "Database error.",
		})
		return
	}

	h.logger.Info("submission stored", "id", appt.ID, "kind", appt.Kind)
	h.metrics.ObserveSubmission(req.Kind, "accepted")

	if h.notifier != nil {
		// Fire and forget: the row is already committed, a broken
		// notification channel must not fail the response.
		go h.notifier.NotifyAdmin(context.WithoutCancel(r.Context()), notify.Submission{
			Kind:          appt.Kind,
			FirstName:     appt.FirstName,
			LastName:      appt.LastName,
			Email:         appt.Email,
			Phone:         appt.Phone,
			PreferredDate: appt.PreferredDate,
			Concern:       appt.Concern,
			Message:       appt.Message,
		})
	}

	writeEnvelope(w, http.StatusOK, resultEnvelope{
		Success: true,
		Message: "Appointment scheduled successfully!",
	})
}

func writeEnvelope(w http.ResponseWriter, status int, env resultEnvelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(env)
}
