package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumident/clinic-platform/pkg/logging"
)

type recordingEmailSender struct {
	sent []EmailMessage
	err  error
}

func (r *recordingEmailSender) Send(ctx context.Context, msg EmailMessage) error {
	r.sent = append(r.sent, msg)
	return r.err
}

type recordingChatNotifier struct {
	texts []string
	err   error
}

func (r *recordingChatNotifier) Notify(ctx context.Context, text string) error {
	r.texts = append(r.texts, text)
	return r.err
}

func testSubmission() Submission {
	return Submission{
		Kind:          "appointment",
		FirstName:     "Lan",
		LastName:      "Pham",
		Email:         "lan@example.com",
		Phone:         "+84 90 000 0000",
		PreferredDate: "2026-09-15",
		Concern:       "Braces Consultation",
	}
}

func TestNotifyAdminSendsBothChannels(t *testing.T) {
	email := &recordingEmailSender{}
	chat := &recordingChatNotifier{}
	svc := NewService(email, chat, ServiceConfig{AdminEmail: "staff@lumident.example"}, nil, logging.Default())

	svc.NotifyAdmin(context.Background(), testSubmission())

	require.Len(t, email.sent, 1)
	assert.Equal(t, "staff@lumident.example", email.sent[0].To)
	assert.Contains(t, email.sent[0].Subject, "Lan Pham")
	assert.Contains(t, email.sent[0].HTML, "Braces Consultation")

	require.Len(t, chat.texts, 1)
	assert.Contains(t, chat.texts[0], "<b>New appointment request</b>")
}

func TestNotifyGuestSendsThankYou(t *testing.T) {
	email := &recordingEmailSender{}
	chat := &recordingChatNotifier{}
	svc := NewService(email, chat, ServiceConfig{AdminEmail: "staff@lumident.example"}, nil, logging.Default())

	svc.NotifyGuest(context.Background(), testSubmission())

	require.Len(t, chat.texts, 1)
	require.Len(t, email.sent, 1)
	assert.Equal(t, "lan@example.com", email.sent[0].To, "guest email should go to the visitor")
	assert.Contains(t, email.sent[0].Body, "Hi Lan", "guest email should greet by first name")
}

func TestServiceSwallowsFailures(t *testing.T) {
	email := &recordingEmailSender{err: errors.New("mailbox down")}
	chat := &recordingChatNotifier{err: errors.New("bot down")}
	svc := NewService(email, chat, ServiceConfig{AdminEmail: "staff@lumident.example"}, nil, logging.Default())

	// Neither call may panic or propagate the channel errors.
	svc.NotifyAdmin(context.Background(), testSubmission())
	svc.NotifyGuest(context.Background(), testSubmission())
}

func TestServiceSkipsNilChannels(t *testing.T) {
	svc := NewService(nil, nil, ServiceConfig{}, nil, logging.Default())
	svc.NotifyAdmin(context.Background(), testSubmission())
	svc.NotifyGuest(context.Background(), testSubmission())
}

func TestChatSummaryEscapesHTML(t *testing.T) {
	sub := testSubmission()
	sub.Message = "<script>alert(1)</script>"
	text := chatSummary(sub)
	assert.NotContains(t, text, "<script>", "chat summary must escape user input")
}
