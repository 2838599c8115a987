package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lumident/clinic-platform/pkg/logging"
)

func TestTelegramNotifierPayload(t *testing.T) {
	var gotPath string
	var gotPayload telegramSendMessage

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected application/json content type, got %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("failed to decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewTelegramNotifier(TelegramConfig{
		APIBase: srv.URL,
		Token:   "test-token",
		ChatID:  "12345",
	}, logging.Default())
	if n == nil {
		t.Fatal("expected notifier, got nil")
	}

	if err := n.Notify(context.Background(), "<b>New appointment request</b>"); err != nil {
		t.Fatalf("Notify failed: %v", err)
	}

	if gotPath != "/bottest-token/sendMessage" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotPayload.ChatID != "12345" {
		t.Errorf("unexpected chat_id %q", gotPayload.ChatID)
	}
	if gotPayload.ParseMode != "HTML" {
		t.Errorf("unexpected parse_mode %q", gotPayload.ParseMode)
	}
	if !strings.Contains(gotPayload.Text, "New appointment request") {
		t.Errorf("unexpected text %q", gotPayload.Text)
	}
}

func TestTelegramNotifierErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	n := NewTelegramNotifier(TelegramConfig{APIBase: srv.URL, Token: "bad", ChatID: "1"}, logging.Default())
	if err := n.Notify(context.Background(), "hello"); err == nil {
		t.Fatal("expected error for 401 response")
	}
}

func TestTelegramNotifierDisabled(t *testing.T) {
	if n := NewTelegramNotifier(TelegramConfig{ChatID: "1"}, nil); n != nil {
		t.Error("expected nil notifier without token")
	}
	if n := NewTelegramNotifier(TelegramConfig{Token: "t"}, nil); n != nil {
		t.Error("expected nil notifier without chat ID")
	}
}
