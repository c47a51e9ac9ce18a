package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"shiftboard/internal/api/middleware"
	"shiftboard/internal/dto"
	"shiftboard/internal/service"
	"shiftboard/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := middleware.RegisterValidators(); err != nil {
		panic(err)
	}
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock EmployeeService ──

type mockEmployeeService struct {
	result []dto.EmployeeResponse
	err    error
}

func (m *mockEmployeeService) List(_ context.Context, _ service.Viewer) ([]dto.EmployeeResponse, error) {
	return m.result, m.err
}

// ── Mock AssignmentService ──

type mockAssignmentService struct {
	assignResult *dto.ShiftResponse
	assignErr    error
	removeErr    error
	removeAll    *dto.RemoveShiftsResponse
	removeAllErr error
	editResult   *dto.ShiftResponse
	editErr      error
	listResult   []dto.ShiftResponse
	listErr      error

	lastViewer service.Viewer
	lastRemove *dto.RemoveShiftsRequest
}

func (m *mockAssignmentService) Assign(_ context.Context, v service.Viewer, _ *dto.AssignShiftRequest) (*dto.ShiftResponse, error) {
	m.lastViewer = v
	return m.assignResult, m.assignErr
}
func (m *mockAssignmentService) AssignOn(_ context.Context, v service.Viewer, _ string, _ time.Time, _, _ string) (*dto.ShiftResponse, error) {
	m.lastViewer = v
	return m.assignResult, m.assignErr
}
func (m *mockAssignmentService) Remove(_ context.Context, _ service.Viewer, _ string) error {
	return m.removeErr
}
func (m *mockAssignmentService) RemoveAllForEmployeeOnDate(_ context.Context, _ service.Viewer, req *dto.RemoveShiftsRequest) (*dto.RemoveShiftsResponse, error) {
	m.lastRemove = req
	return m.removeAll, m.removeAllErr
}
func (m *mockAssignmentService) Edit(_ context.Context, _ service.Viewer, _ string, _ *dto.EditShiftRequest) (*dto.ShiftResponse, error) {
	return m.editResult, m.editErr
}
func (m *mockAssignmentService) List(_ context.Context, _ service.Viewer) ([]dto.ShiftResponse, error) {
	return m.listResult, m.listErr
}

// ── Mock HolidayService ──

type mockHolidayService struct {
	importResult *dto.ImportHolidaysResponse
	importErr    error
	fromFile     bool
	fromURL      string
	updateResult *dto.HolidayResponse
	updateErr    error
}

func (m *mockHolidayService) List(_ context.Context, _ service.Viewer) ([]dto.HolidayResponse, error) {
	return nil, nil
}
func (m *mockHolidayService) ImportICS(_ context.Context, _ service.Viewer, r io.Reader) (*dto.ImportHolidaysResponse, error) {
	m.fromFile = true
	_, _ = io.ReadAll(r)
	return m.importResult, m.importErr
}
func (m *mockHolidayService) ImportFromURL(_ context.Context, _ service.Viewer, req *dto.ImportHolidaysRequest) (*dto.ImportHolidaysResponse, error) {
	m.fromURL = req.URL
	return m.importResult, m.importErr
}

func (m *mockHolidayService) Update(_ context.Context, _ service.Viewer, _ string, _ *dto.UpdateHolidayRequest) (*dto.HolidayResponse, error) {
	return m.updateResult, m.updateErr
}
func (m *mockHolidayService) Delete(_ context.Context, _ service.Viewer, _ string) error {
	return nil
}

// ── Mock CalendarService ──

type mockCalendarService struct {
	result  *dto.CalendarResponse
	err     error
	dropped *dto.ShiftResponse
	lastQ   *dto.CalendarQuery
	lastNav *dto.NavigateRequest
}

func (m *mockCalendarService) Get(_ context.Context, _ service.Viewer, q *dto.CalendarQuery) (*dto.CalendarResponse, error) {
	m.lastQ = q
	return m.result, m.err
}
func (m *mockCalendarService) SetMode(_ context.Context, _ service.Viewer, _ *dto.SetViewModeRequest) (*dto.CalendarResponse, error) {
	return m.result, m.err
}
func (m *mockCalendarService) Navigate(_ context.Context, _ service.Viewer, req *dto.NavigateRequest) (*dto.CalendarResponse, error) {
	m.lastNav = req
	return m.result, m.err
}
func (m *mockCalendarService) Drop(_ context.Context, _ service.Viewer, _ *dto.DropRequest) (*dto.ShiftResponse, error) {
	return m.dropped, m.err
}

// ── Mock GanttService ──

type mockGanttService struct {
	result *dto.GanttResponse
	detail *dto.GanttDetailResponse
	err    error
}

func (m *mockGanttService) Get(_ context.Context, _ service.Viewer, _ *dto.GanttQuery) (*dto.GanttResponse, error) {
	return m.result, m.err
}
func (m *mockGanttService) SetMode(_ context.Context, _ service.Viewer, _ *dto.SetGanttModeRequest) (*dto.GanttResponse, error) {
	return m.result, m.err
}
func (m *mockGanttService) Navigate(_ context.Context, _ service.Viewer, _ *dto.NavigateRequest) (*dto.GanttResponse, error) {
	return m.result, m.err
}
func (m *mockGanttService) Detail(_ context.Context, _ service.Viewer, _ *dto.GanttDetailQuery) (*dto.GanttDetailResponse, error) {
	return m.detail, m.err
}

// ── Mock ExportService ──

type mockExportService struct {
	buf      *bytes.Buffer
	ics      []byte
	filename string
	err      error
}

func (m *mockExportService) ExportCalendar(_ context.Context, _ service.Viewer, _ *dto.ExportCalendarQuery) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}
func (m *mockExportService) ExportShiftsICS(_ context.Context, _ service.Viewer, _ string) ([]byte, string, error) {
	return m.ics, m.filename, m.err
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

// newRouter 创建注入了认证上下文的路由
func newRouter() *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", "test-user-id")
		c.Set("role", "admin")
		c.Set("organization_id", "test-org")
		c.Next()
	})
	return r
}

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func jsonRequest(method, path string, v interface{}) *http.Request {
	req := httptest.NewRequest(method, path, jsonBody(v))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// ═══════════════════════════════════════════════════════════
// Context Helper Tests
// ═══════════════════════════════════════════════════════════

func TestMustGetViewer_Unauthenticated(t *testing.T) {
	h := NewEmployeeHandler(&mockEmployeeService{})

	r := gin.New()
	r.GET("/employees", h.ListEmployees)
	w := serve(r, httptest.NewRequest("GET", "/employees", nil))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 10002 {
		t.Errorf("expected code 10002, got %d", resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// EmployeeHandler Tests
// ═══════════════════════════════════════════════════════════

func TestEmployeeHandler_List(t *testing.T) {
	mock := &mockEmployeeService{result: []dto.EmployeeResponse{{ID: "e1", Name: "Ann"}}}
	h := NewEmployeeHandler(mock)

	r := newRouter()
	r.GET("/employees", h.ListEmployees)
	w := serve(r, httptest.NewRequest("GET", "/employees", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	data := parseResponse(w).Data.(map[string]interface{})
	if data["total"].(float64) != 1 {
		t.Errorf("expected total 1, got %v", data["total"])
	}
}

func TestEmployeeHandler_DirectoryDown(t *testing.T) {
	h := NewEmployeeHandler(&mockEmployeeService{err: errors.New("down")})

	r := newRouter()
	r.GET("/employees", h.ListEmployees)
	w := serve(r, httptest.NewRequest("GET", "/employees", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ShiftHandler Tests
// ═══════════════════════════════════════════════════════════

func TestShiftHandler_Assign_Success(t *testing.T) {
	mock := &mockAssignmentService{assignResult: &dto.ShiftResponse{ID: "s1", EmployeeID: "e1", Date: "2024-07-04"}}
	h := NewShiftHandler(mock)

	r := newRouter()
	r.POST("/shifts", h.AssignShift)
	w := serve(r, jsonRequest("POST", "/shifts", dto.AssignShiftRequest{EmployeeID: "e1", Date: "2024-07-04"}))

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
	if mock.lastViewer.OrganizationID != "test-org" || mock.lastViewer.UserID != "test-user-id" {
		t.Errorf("viewer not propagated: %+v", mock.lastViewer)
	}
}

func TestShiftHandler_Assign_Validation(t *testing.T) {
	h := NewShiftHandler(&mockAssignmentService{})

	tests := []struct {
		name string
		body interface{}
	}{
		{"MissingEmployee", map[string]string{"date": "2024-07-04"}},
		{"BadClock", map[string]string{"employee_id": "e1", "date": "2024-07-04", "start_time": "9am"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter()
			r.POST("/shifts", h.AssignShift)
			w := serve(r, jsonRequest("POST", "/shifts", tt.body))
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
			if resp := parseResponse(w); resp.Code != 12001 {
				t.Errorf("expected code 12001, got %d", resp.Code)
			}
		})
	}
}

func TestShiftHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{"InvalidDate", service.ErrInvalidDate, 400, 12002},
		{"EmptyEmployee", service.ErrEmptyEmployee, 400, 12003},
		{"InvalidClock", service.ErrInvalidShiftClock, 400, 12004},
		{"NotFound", service.ErrShiftNotFound, 404, 12101},
		{"InternalError", errors.New("unknown"), 500, 50000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewShiftHandler(&mockAssignmentService{editErr: tt.err})

			r := newRouter()
			r.PUT("/shifts/:id", h.EditShift)
			w := serve(r, jsonRequest("PUT", "/shifts/s1", map[string]string{"start_time": "10:00"}))

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if resp := parseResponse(w); resp.Code != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, resp.Code)
			}
		})
	}
}

func TestShiftHandler_Remove_Idempotent(t *testing.T) {
	h := NewShiftHandler(&mockAssignmentService{})

	r := newRouter()
	r.DELETE("/shifts/:id", h.RemoveShift)
	w := serve(r, httptest.NewRequest("DELETE", "/shifts/missing", nil))

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestShiftHandler_RemoveAllForEmployeeOnDate(t *testing.T) {
	mock := &mockAssignmentService{removeAll: &dto.RemoveShiftsResponse{Removed: 2}}
	h := NewShiftHandler(mock)

	r := newRouter()
	r.DELETE("/shifts", h.RemoveShiftsForEmployeeOnDate)

	w := serve(r, httptest.NewRequest("DELETE", "/shifts?employee_id=e1&date=2024-07-04", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if mock.lastRemove == nil || mock.lastRemove.EmployeeID != "e1" || mock.lastRemove.Date != "2024-07-04" {
		t.Errorf("query not bound: %+v", mock.lastRemove)
	}

	w = serve(r, httptest.NewRequest("DELETE", "/shifts?employee_id=e1", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing date: expected 400, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// HolidayHandler Tests
// ═══════════════════════════════════════════════════════════

func TestHolidayHandler_Import_File(t *testing.T) {
	mock := &mockHolidayService{importResult: &dto.ImportHolidaysResponse{Imported: 1}}
	h := NewHolidayHandler(mock)

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, _ := mw.CreateFormFile("file", "holidays.ics")
	part.Write([]byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"))
	mw.Close()

	req := httptest.NewRequest("POST", "/holidays/import", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	r := newRouter()
	r.POST("/holidays/import", h.ImportHolidays)
	w := serve(r, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
	if !mock.fromFile {
		t.Error("expected file import path")
	}
}

func TestHolidayHandler_Import_URL(t *testing.T) {
	mock := &mockHolidayService{importResult: &dto.ImportHolidaysResponse{Imported: 3}}
	h := NewHolidayHandler(mock)

	r := newRouter()
	r.POST("/holidays/import", h.ImportHolidays)
	w := serve(r, jsonRequest("POST", "/holidays/import", dto.ImportHolidaysRequest{URL: "https://example.com/h.ics"}))

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
	if mock.fromURL != "https://example.com/h.ics" {
		t.Errorf("expected url import, got %q", mock.fromURL)
	}
}

func TestHolidayHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{"ImportFailed", service.ErrHolidayImportFailed, 400, 14002},
		{"FetchFailed", service.ErrHolidayFetchFailed, 502, 14003},
		{"InternalError", errors.New("unknown"), 500, 50000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHolidayHandler(&mockHolidayService{importErr: tt.err})

			r := newRouter()
			r.POST("/holidays/import", h.ImportHolidays)
			w := serve(r, jsonRequest("POST", "/holidays/import", dto.ImportHolidaysRequest{URL: "https://example.com/h.ics"}))

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if resp := parseResponse(w); resp.Code != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, resp.Code)
			}
		})
	}
}

func TestHolidayHandler_Update(t *testing.T) {
	tests := []struct {
		name       string
		body       interface{}
		err        error
		wantStatus int
		wantCode   int
	}{
		{"Success", map[string]interface{}{"name": "Fourth of July", "version": 1}, nil, 200, 0},
		{"MissingVersion", map[string]interface{}{"name": "x"}, nil, 400, 14001},
		{"NotFound", map[string]interface{}{"version": 1}, service.ErrHolidayNotFound, 404, 14101},
		{"Conflict", map[string]interface{}{"version": 1}, service.ErrHolidayConflict, 409, 14102},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHolidayHandler(&mockHolidayService{updateResult: &dto.HolidayResponse{ID: "h1", Version: 2}, updateErr: tt.err})

			r := newRouter()
			r.PUT("/holidays/:id", h.UpdateHoliday)
			w := serve(r, jsonRequest("PUT", "/holidays/h1", tt.body))

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if resp := parseResponse(w); resp.Code != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, resp.Code)
			}
		})
	}
}

func TestHolidayHandler_Import_NothingProvided(t *testing.T) {
	h := NewHolidayHandler(&mockHolidayService{})

	r := newRouter()
	r.POST("/holidays/import", h.ImportHolidays)
	w := serve(r, jsonRequest("POST", "/holidays/import", map[string]string{"url": "not a url"}))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// CalendarHandler Tests
// ═══════════════════════════════════════════════════════════

func TestCalendarHandler_Get(t *testing.T) {
	mock := &mockCalendarService{result: &dto.CalendarResponse{Mode: "month", Reference: "2024-07-04"}}
	h := NewCalendarHandler(mock)

	r := newRouter()
	r.GET("/calendar", h.GetCalendar)
	w := serve(r, httptest.NewRequest("GET", "/calendar?mode=Month&date=2024-07-04", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if mock.lastQ == nil || mock.lastQ.Date != "2024-07-04" {
		t.Errorf("query not bound: %+v", mock.lastQ)
	}

	w = serve(r, httptest.NewRequest("GET", "/calendar?mode=year", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown mode: expected 400, got %d", w.Code)
	}
}

func TestCalendarHandler_Navigate(t *testing.T) {
	mock := &mockCalendarService{result: &dto.CalendarResponse{Mode: "week"}}
	h := NewCalendarHandler(mock)

	r := newRouter()
	r.POST("/calendar/navigate", h.Navigate)

	w := serve(r, jsonRequest("POST", "/calendar/navigate", dto.NavigateRequest{Action: "next"}))
	if w.Code != http.StatusOK || mock.lastNav.Action != "next" {
		t.Errorf("expected 200 next, got %d %+v", w.Code, mock.lastNav)
	}

	w = serve(r, jsonRequest("POST", "/calendar/navigate", dto.NavigateRequest{Action: "sideways"}))
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCalendarHandler_Drop(t *testing.T) {
	mock := &mockCalendarService{dropped: &dto.ShiftResponse{ID: "s1", EmployeeID: "e1", Date: "2024-07-04"}}
	h := NewCalendarHandler(mock)

	r := newRouter()
	r.POST("/calendar/drop", h.Drop)
	w := serve(r, jsonRequest("POST", "/calendar/drop", dto.DropRequest{EmployeeID: "e1", Date: "2024-07-04"}))

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
}

func TestCalendarHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{"InvalidMode", service.ErrInvalidViewMode, 400, 15002},
		{"InvalidAction", service.ErrInvalidAction, 400, 15003},
		{"InvalidDate", service.ErrInvalidDate, 400, 15004},
		{"EmptyEmployee", service.ErrEmptyEmployee, 400, 15005},
		{"InternalError", errors.New("unknown"), 500, 50000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewCalendarHandler(&mockCalendarService{err: tt.err})

			r := newRouter()
			r.GET("/calendar", h.GetCalendar)
			w := serve(r, httptest.NewRequest("GET", "/calendar", nil))

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if resp := parseResponse(w); resp.Code != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, resp.Code)
			}
		})
	}
}

// ═══════════════════════════════════════════════════════════
// GanttHandler Tests
// ═══════════════════════════════════════════════════════════

func TestGanttHandler_SetMode_RejectsMonth(t *testing.T) {
	h := NewGanttHandler(&mockGanttService{result: &dto.GanttResponse{Mode: "day"}})

	r := newRouter()
	r.PUT("/gantt/mode", h.SetMode)

	if w := serve(r, jsonRequest("PUT", "/gantt/mode", dto.SetGanttModeRequest{Mode: "month"})); w.Code != http.StatusBadRequest {
		t.Errorf("month: expected 400, got %d", w.Code)
	}
	if w := serve(r, jsonRequest("PUT", "/gantt/mode", dto.SetGanttModeRequest{Mode: "day"})); w.Code != http.StatusOK {
		t.Errorf("day: expected 200, got %d", w.Code)
	}
}

func TestGanttHandler_Detail(t *testing.T) {
	mock := &mockGanttService{detail: &dto.GanttDetailResponse{EmployeeID: "e1", Date: "2024-07-04", NoShifts: true}}
	h := NewGanttHandler(mock)

	r := newRouter()
	r.GET("/gantt/detail", h.Detail)

	w := serve(r, httptest.NewRequest("GET", "/gantt/detail?employee_id=e1&date=2024-07-04", nil))
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	w = serve(r, httptest.NewRequest("GET", "/gantt/detail?date=2024-07-04", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing employee_id: expected 400, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ExportHandler Tests
// ═══════════════════════════════════════════════════════════

func TestExportHandler_Calendar_Success(t *testing.T) {
	mock := &mockExportService{
		buf:      bytes.NewBufferString("excel content"),
		filename: "排班日历_month_2024-07-04.xlsx",
	}
	h := NewExportHandler(mock)

	r := newRouter()
	r.GET("/export/calendar", h.ExportCalendar)
	w := serve(r, httptest.NewRequest("GET", "/export/calendar?mode=month&date=2024-07-04", nil))

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != contentTypeXLSX {
		t.Errorf("unexpected content type: %s", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.HasPrefix(cd, "attachment;") {
		t.Errorf("unexpected Content-Disposition: %q", cd)
	}
}

func TestExportHandler_Calendar_RejectsAgenda(t *testing.T) {
	h := NewExportHandler(&mockExportService{})

	r := newRouter()
	r.GET("/export/calendar", h.ExportCalendar)
	w := serve(r, httptest.NewRequest("GET", "/export/calendar?mode=agenda", nil))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestExportHandler_ShiftsICS(t *testing.T) {
	mock := &mockExportService{ics: []byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"), filename: "shifts_e1.ics"}
	h := NewExportHandler(mock)

	r := newRouter()
	r.GET("/export/shifts.ics", h.ExportShiftsICS)

	w := serve(r, httptest.NewRequest("GET", "/export/shifts.ics?employee_id=e1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/calendar") {
		t.Errorf("unexpected content type: %s", w.Header().Get("Content-Type"))
	}

	w = serve(r, httptest.NewRequest("GET", "/export/shifts.ics", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing employee_id: expected 400, got %d", w.Code)
	}
}

func TestExportHandler_GenerateFail(t *testing.T) {
	h := NewExportHandler(&mockExportService{err: service.ErrExportGenerateFail})

	r := newRouter()
	r.GET("/export/calendar", h.ExportCalendar)
	w := serve(r, httptest.NewRequest("GET", "/export/calendar", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}
