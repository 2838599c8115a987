package notify

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/lumident/clinic-platform/internal/observability/metrics"
	"github.com/lumident/clinic-platform/pkg/logging"
)

// Submission carries the form fields the notification channels need.
// It is a flat snapshot so this package does not depend on the
// persistence layer's types.
type Submission struct {
	Kind          string
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	PreferredDate string
	Concern       string
	Message       string
}

// FullName joins the first and last name, tolerating missing parts.
func (s Submission) FullName() string {
	name := strings.TrimSpace(s.FirstName + " " + s.LastName)
	if name == "" {
		return "(no name)"
	}
	return name
}

// Service fans a submission out to the configured channels. Every channel
// is best-effort: failures are logged and counted, never propagated, so a
// broken mailbox or chat bot cannot fail a booking that is already stored.
type Service struct {
	email      EmailSender
	chat       ChatNotifier
	adminEmail string
	clinicName string
	metrics    *metrics.SubmissionMetrics
	logger     *logging.Logger
}

// ServiceConfig holds the destinations for outbound notifications.
type ServiceConfig struct {
	AdminEmail string
	ClinicName string
}

// NewService creates the notification fan-out. Either sender may be nil,
// in which case that channel is skipped.
func NewService(email EmailSender, chat ChatNotifier, cfg ServiceConfig, m *metrics.SubmissionMetrics, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.ClinicName == "" {
		cfg.ClinicName = "Lumident Clinic"
	}
	return &Service{
		email:      email,
		chat:       chat,
		adminEmail: cfg.AdminEmail,
		clinicName: cfg.ClinicName,
		metrics:    m,
		logger:     logger,
	}
}

// NotifyAdmin alerts the clinic staff about a new submission: an HTML
// email to the admin mailbox plus a chat message.
func (s *Service) NotifyAdmin(ctx context.Context, sub Submission) {
	if s.email != nil && s.adminEmail != "" {
		msg := EmailMessage{
			To:      s.adminEmail,
			ToName:  s.clinicName,
			Subject: fmt.Sprintf("New %s from %s", submissionLabel(sub.Kind), sub.FullName()),
			Body:    adminText(sub),
			HTML:    adminHTML(sub),
		}
		if err := s.email.Send(ctx, msg); err != nil {
			s.logger.Error("admin email notification failed", "error", err)
			s.metrics.ObserveNotifyFailure("email")
		}
	}

	if s.chat != nil {
		if err := s.chat.Notify(ctx, chatSummary(sub)); err != nil {
			s.logger.Error("admin chat notification failed", "error", err)
			s.metrics.ObserveNotifyFailure("telegram")
		}
	}
}

// NotifyGuest confirms receipt to the visitor: a chat summary for staff
// awareness and a thank-you email to the visitor's address.
func (s *Service) NotifyGuest(ctx context.Context, sub Submission) {
	if s.chat != nil {
		if err := s.chat.Notify(ctx, chatSummary(sub)); err != nil {
			s.logger.Error("guest chat notification failed", "error", err)
			s.metrics.ObserveNotifyFailure("telegram")
		}
	}

	if s.email != nil && sub.Email != "" {
		msg := EmailMessage{
			To:      sub.Email,
			ToName:  sub.FullName(),
			Subject: fmt.Sprintf("Thank you for contacting %s", s.clinicName),
			Body:    guestText(sub, s.clinicName),
		}
		if err := s.email.Send(ctx, msg); err != nil {
			s.logger.Error("guest email notification failed", "error", err)
			s.metrics.ObserveNotifyFailure("email")
		}
	}
}

func submissionLabel(kind string) string {
	if kind == "message" {
		return "message"
	}
	return "appointment request"
}

func chatSummary(sub Submission) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<b>New %s</b>\n", submissionLabel(sub.Kind))
	fmt.Fprintf(&b, "Name: %s\n", html.EscapeString(sub.FullName()))
	if sub.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", html.EscapeString(sub.Phone))
	}
	if sub.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", html.EscapeString(sub.Email))
	}
	if sub.PreferredDate != "" {
		fmt.Fprintf(&b, "Date: %s\n", html.EscapeString(sub.PreferredDate))
	}
	if sub.Concern != "" {
		fmt.Fprintf(&b, "Concern: %s\n", html.EscapeString(sub.Concern))
	}
	if sub.Message != "" {
		fmt.Fprintf(&b, "Message: %s\n", html.EscapeString(sub.Message))
	}
	return strings.TrimRight(b.String(), "\n")
}

func adminText(sub Submission) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New %s\n\n", submissionLabel(sub.Kind))
	fmt.Fprintf(&b, "Name: %s\n", sub.FullName())
	fmt.Fprintf(&b, "Phone: %s\n", sub.Phone)
	fmt.Fprintf(&b, "Email: %s\n", sub.Email)
	fmt.Fprintf(&b, "Preferred date: %s\n", sub.PreferredDate)
	fmt.Fprintf(&b, "Concern: %s\n", sub.Concern)
	if sub.Message != "" {
		fmt.Fprintf(&b, "Message: %s\n", sub.Message)
	}
	return b.String()
}

func adminHTML(sub Submission) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>New %s</h2>", submissionLabel(sub.Kind))
	b.WriteString("<table>")
	row := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&b, "<tr><td><b>%s</b></td><td>%s</td></tr>", label, html.EscapeString(value))
	}
	row("Name", sub.FullName())
	row("Phone", sub.Phone)
	row("Email", sub.Email)
	row("Preferred date", sub.PreferredDate)
	row("Concern", sub.Concern)
	row("Message", sub.Message)
	b.WriteString("</table>")
	return b.String()
}

func guestText(sub Submission, clinicName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", sub.FirstName)
	fmt.Fprintf(&b, "Thank you for reaching out to %s. We have received your %s and will get back to you shortly.\n\n", clinicName, submissionLabel(sub.Kind))
	if sub.PreferredDate != "" {
		fmt.Fprintf(&b, "Requested date: %s\n", sub.PreferredDate)
	}
	if sub.Concern != "" {
		fmt.Fprintf(&b, "Concern: %s\n", sub.Concern)
	}
	fmt.Fprintf(&b, "\n%s\n", clinicName)
	return b.String()
}
