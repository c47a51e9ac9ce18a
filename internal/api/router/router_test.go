package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"shiftboard/config"
	"shiftboard/internal/api/handler"
	"shiftboard/pkg/jwt"
	"shiftboard/pkg/metrics"
)

func testSetup(t *testing.T) (http.Handler, *jwt.Manager) {
	t.Helper()
	cfg := &config.Config{
		Server:  config.ServerConfig{BodyLimit: 1 << 20},
		Auth:    config.AuthConfig{JWTSecret: "0123456789abcdef-test", AccessTokenTTL: time.Minute},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
	mgr := jwt.NewManager(&cfg.Auth)
	h := &handler.Handler{
		Employee: handler.NewEmployeeHandler(nil),
		Shift:    handler.NewShiftHandler(nil),
		Holiday:  handler.NewHolidayHandler(nil),
		Calendar: handler.NewCalendarHandler(nil),
		Gantt:    handler.NewGanttHandler(nil),
		Export:   handler.NewExportHandler(nil),
	}
	return Setup(cfg, h, mgr, nil, metrics.New(), zap.NewNop()), mgr
}

func get(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSetup_PublicEndpoints(t *testing.T) {
	r, _ := testSetup(t)

	if w := get(r, "/health", ""); w.Code != http.StatusOK {
		t.Errorf("/health expected 200, got %d", w.Code)
	}
	w := get(r, "/metrics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("/metrics expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "shiftboard_http_requests_total") {
		t.Error("/metrics should expose request counter")
	}
}

func TestSetup_APIRequiresToken(t *testing.T) {
	r, _ := testSetup(t)

	for _, path := range []string{"/api/v1/calendar", "/api/v1/gantt", "/api/v1/shifts", "/api/v1/export/calendar"} {
		if w := get(r, path, ""); w.Code != http.StatusUnauthorized {
			t.Errorf("%s expected 401, got %d", path, w.Code)
		}
	}
}

func TestSetup_MutationsRequireSchedulerRole(t *testing.T) {
	r, mgr := testSetup(t)
	token, _ := mgr.GenerateAccessToken("u1", "staff", "org-1")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/shifts", strings.NewReader(`{}`))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("staff POST /shifts expected 403, got %d", w.Code)
	}
}
