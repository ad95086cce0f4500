package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/subplan/notification-dispatch/internal/domain"
)

func setupTimetableRouter(t *testing.T) (*gin.Engine, *domain.MockTimetableRepository, *domain.MockUserRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	timetables := domain.NewMockTimetableRepository(ctrl)
	users := domain.NewMockUserRepository(ctrl)

	r := gin.New()
	h := NewTimetableHandler(timetables, users)
	r.PUT("/api/v1/users/:id/timetable", h.HandleReplace)
	return r, timetables, users
}

func TestHandleReplace_OK(t *testing.T) {
	r, timetables, users := setupTimetableRouter(t)

	users.EXPECT().GetUser(gomock.Any(), "user-1").Return(&domain.User{ID: "user-1"}, nil)
	timetables.EXPECT().ReplaceEntries(gomock.Any(), "user-1", gomock.Any()).DoAndReturn(
		func(_ any, _ string, entries []domain.TimetableEntry) error {
			if len(entries) != 1 {
				t.Errorf("entries = %d, want 1", len(entries))
			}
			if entries[0].SubjectCode != "MATH" {
				t.Errorf("subject = %q, want MATH", entries[0].SubjectCode)
			}
			return nil
		})

	body := `{"entries":[{"weekday":"mon","start_period":1,"duration":1,"subject_code":"math","teacher_code":"smi"}]}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/users/user-1/timetable", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
}

func TestHandleReplace_ValidationErrorIncludesIndex(t *testing.T) {
	r, _, users := setupTimetableRouter(t)

	users.EXPECT().GetUser(gomock.Any(), "user-1").Return(&domain.User{ID: "user-1"}, nil)

	body := `{"entries":[
		{"weekday":"MON","start_period":1,"duration":1,"subject_code":"MATH","teacher_code":"SMI"},
		{"weekday":"XYZ","start_period":1,"duration":1,"subject_code":"BIO","teacher_code":"JON"}
	]}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/users/user-1/timetable", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp validationErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Index != 1 {
		t.Errorf("index = %d, want 1", resp.Index)
	}
	if resp.Field != "weekday" {
		t.Errorf("field = %q, want weekday", resp.Field)
	}
}

func TestHandleReplace_ConflictAndOverride(t *testing.T) {
	body := `{"entries":[
		{"weekday":"MON","start_period":3,"duration":2,"subject_code":"MATH","teacher_code":"SMI"},
		{"weekday":"MON","start_period":4,"duration":1,"subject_code":"BIO","teacher_code":"JON"}
	]}`

	t.Run("conflict rejected", func(t *testing.T) {
		r, _, users := setupTimetableRouter(t)
		users.EXPECT().GetUser(gomock.Any(), "user-1").Return(&domain.User{ID: "user-1"}, nil)

		req := httptest.NewRequest(http.MethodPut, "/api/v1/users/user-1/timetable", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("allow_overlaps accepts", func(t *testing.T) {
		r, timetables, users := setupTimetableRouter(t)
		users.EXPECT().GetUser(gomock.Any(), "user-1").Return(&domain.User{ID: "user-1"}, nil)
		timetables.EXPECT().ReplaceEntries(gomock.Any(), "user-1", gomock.Any()).Return(nil)

		req := httptest.NewRequest(http.MethodPut, "/api/v1/users/user-1/timetable?allow_overlaps=true", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
		}
	})
}

func TestHandleReplace_UnknownUser(t *testing.T) {
	r, _, users := setupTimetableRouter(t)

	users.EXPECT().GetUser(gomock.Any(), "ghost").Return(nil, domain.ErrUserNotFound)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/users/ghost/timetable", strings.NewReader(`{"entries":[]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
