package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/lumident/clinic-platform/internal/appointments"
	"github.com/lumident/clinic-platform/internal/http/handlers"
	"github.com/lumident/clinic-platform/internal/localstore"
	"github.com/lumident/clinic-platform/internal/pipeline"
	"github.com/lumident/clinic-platform/internal/scene"
	"github.com/lumident/clinic-platform/internal/scene/timeline"
	"github.com/lumident/clinic-platform/pkg/logging"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := logging.Default()

	assembly, err := scene.Build(scene.DefaultParams())
	if err != nil {
		t.Fatalf("scene build failed: %v", err)
	}

	mr := miniredis.RunT(t)
	store := localstore.New(redis.NewClient(&redis.Options{Addr: mr.Addr()}), logger)
	p := pipeline.New("", store, nil, nil, logger)

	return New(&Config{
		Logger:              logger,
		SceneHandler:        handlers.NewSceneHandler(assembly, timeline.DefaultConfig(), logger),
		FormsHandler:        handlers.NewFormsHandler(p, store, logger),
		AppointmentsHandler: appointments.NewHandler(appointments.NewInMemoryRepository(), nil, nil, logger),
		AdminAuthSecret:     "secret",
	})
}

func TestHealthRoute(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestSceneRoute(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/scene", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Errorf("unexpected content type %q", ct)
	}
}

func TestBookingRoute(t *testing.T) {
	router := newTestRouter(t)

	body := "first_name=Lan&phone=%2B84900000000&preferred_date=2026-09-15"
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	var result pipeline.Result
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}
	if result.Message == "" {
		t.Error("expected a result message")
	}
}

func TestProcessBookingMethodGuard(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/process-booking", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status %d, got %d", http.StatusMethodNotAllowed, rec.Code)
	}
	var env struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	if env.Success || env.Message != "Invalid request method." {
		t.Errorf("unexpected envelope %+v", env)
	}
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/submissions", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// AdminHandler is nil in this config, so the route tree is absent.
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without admin handler, got %d", rec.Code)
	}
}
