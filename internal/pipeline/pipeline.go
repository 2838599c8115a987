// Package pipeline implements the visitor-facing submission flow: every
// booking or contact message is relayed to the form processor, mirrored
// into the demo dashboard store, and acknowledged to the guest. Delivery
// to the processor is best-effort; the local mirror is what the result
// message reflects when the processor is unreachable.
package pipeline

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lumident/clinic-platform/internal/localstore"
	"github.com/lumident/clinic-platform/internal/notify"
	"github.com/lumident/clinic-platform/internal/observability/metrics"
	"github.com/lumident/clinic-platform/pkg/logging"
)

// GuestNotifier acknowledges a submission back to the visitor.
type GuestNotifier interface {
	NotifyGuest(ctx context.Context, sub notify.Submission)
}

// BookingForm is a booking request from the landing page.
type BookingForm struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	PreferredDate string `json:"preferred_date"`
	Concern       string `json:"concern"`
}

// ContactForm is a message from the contact page.
type ContactForm struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

// Result reports the outcome of a submission.
type Result struct {
	RemoteConfirmed bool   `json:"remoteConfirmed"`
	Message         string `json:"message"`
}

// Pipeline runs the three-step submission flow.
type Pipeline struct {
	// No timeout on purpose: the processor call is already soft-fail
	// and the caller's context bounds the request.
	client    *http.Client
	submitURL string
	store     *localstore.Store
	notifier  GuestNotifier
	metrics   *metrics.SubmissionMetrics
	logger    *logging.Logger
	now       func() time.Time
}

// New creates a submission pipeline. The notifier may be nil.
func New(submitURL string, store *localstore.Store, notifier GuestNotifier, m *metrics.SubmissionMetrics, logger *logging.Logger) *Pipeline {
	if logger == nil {
		logger = logging.Default()
	}
	return &Pipeline{
		client:    &http.Client{},
		submitURL: submitURL,
		store:     store,
		notifier:  notifier,
		metrics:   m,
		logger:    logger,
		now:       time.Now,
	}
}

// SubmitBooking relays a booking to the form processor, mirrors it into
// the dashboard store, and thanks the guest.
func (p *Pipeline) SubmitBooking(ctx context.Context, form BookingForm) (Result, error) {
	values := url.Values{
		"first_name":     {form.FirstName},
		"last_name":      {form.LastName},
		"email":          {form.Email},
		"phone":          {form.Phone},
		"preferred_date": {form.PreferredDate},
		"concern":        {form.Concern},
	}
	delivered := p.relay(ctx, values)

	now := p.now().UTC()
	sub := localstore.Submission{
		ID:          now.UnixMilli(),
		Type:        "appointment",
		FirstName:   form.FirstName,
		LastName:    form.LastName,
		Email:       form.Email,
		Phone:       form.Phone,
		Date:        form.PreferredDate,
		Concern:     form.Concern,
		SubmittedAt: now.Format(time.RFC3339),
	}
	if err := p.store.Prepend(ctx, sub); err != nil {
		return Result{}, err
	}

	p.metrics.ObserveSubmission("booking", deliveryStatus(delivered))
	p.acknowledge(ctx, notify.Submission{
		Kind:          "appointment",
		FirstName:     form.FirstName,
		LastName:      form.LastName,
		Email:         form.Email,
		Phone:         form.Phone,
		PreferredDate: form.PreferredDate,
		Concern:       form.Concern,
	})

	if delivered {
		return Result{RemoteConfirmed: true, Message: "Success! Your appointment has been scheduled and an email confirmation sent."}, nil
	}
	return Result{RemoteConfirmed: false, Message: "Success! Your appointment request has been saved locally. (Backend email server not reachable in this demo environment)"}, nil
}

// SubmitContact relays a contact message to the form processor, mirrors
// it into the dashboard store, and thanks the guest. The processor only
// understands booking fields, so the subject rides in the concern slot
// and the missing phone and date get placeholder values.
func (p *Pipeline) SubmitContact(ctx context.Context, form ContactForm) (Result, error) {
	today := p.now().UTC().Format("2006-01-02")
	values := url.Values{
		"first_name":     {form.FirstName},
		"last_name":      {form.LastName},
		"email":          {form.Email},
		"phone":          {"N/A"},
		"preferred_date": {today},
		"concern":        {form.Subject},
		"message":        {form.Message},
		"kind":           {"message"},
	}
	delivered := p.relay(ctx, values)

	now := p.now().UTC()
	sub := localstore.Submission{
		ID:          now.UnixMilli(),
		Type:        "message",
		FirstName:   form.FirstName,
		LastName:    form.LastName,
		Email:       form.Email,
		Phone:       "N/A",
		Date:        "N/A",
		Concern:     form.Subject,
		Message:     form.Message,
		SubmittedAt: now.Format(time.RFC3339),
	}
	if err := p.store.Prepend(ctx, sub); err != nil {
		return Result{}, err
	}

	p.metrics.ObserveSubmission("contact", deliveryStatus(delivered))
	p.acknowledge(ctx, notify.Submission{
		Kind:      "message",
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Concern:   form.Subject,
		Message:   form.Message,
	})

	if delivered {
		return Result{RemoteConfirmed: true, Message: "Message sent! We will get back to you shortly."}, nil
	}
	return Result{RemoteConfirmed: false, Message: "Message saved! We will get back to you shortly. (Backend email server not reachable)"}, nil
}

// relay posts the form to the processor. Any transport error, non-2xx
// status, or success:false envelope counts as undelivered.
func (p *Pipeline) relay(ctx context.Context, values url.Values) bool {
	if p.submitURL == "" {
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.submitURL, strings.NewReader(values.Encode()))
	if err != nil {
		p.logger.Warn("failed to build processor request", "error", err)
		return false
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Warn("form processor unreachable", "error", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		p.logger.Warn("form processor rejected submission", "status", resp.StatusCode)
		return false
	}

	var envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		p.logger.Warn("invalid processor response", "error", err)
		return false
	}
	if !envelope.Success {
		p.logger.Warn("form processor reported failure", "message", envelope.Message)
		return false
	}
	return true
}

func (p *Pipeline) acknowledge(ctx context.Context, sub notify.Submission) {
	if p.notifier == nil {
		return
	}
	go p.notifier.NotifyGuest(context.WithoutCancel(ctx), sub)
}

func deliveryStatus(delivered bool) string {
	if delivered {
		return "delivered"
	}
	return "saved_locally"
}
