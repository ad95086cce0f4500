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

func setupDeviceRouter(t *testing.T) (*gin.Engine, *domain.MockDeviceRepository, *domain.MockUserRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	devices := domain.NewMockDeviceRepository(ctrl)
	users := domain.NewMockUserRepository(ctrl)

	r := gin.New()
	h := NewDeviceHandler(devices, users)
	r.POST("/api/v1/devices", h.HandleRegister)
	r.DELETE("/api/v1/devices/:id", h.HandleDelete)
	return r, devices, users
}

func TestHandleRegister_OK(t *testing.T) {
	r, devices, users := setupDeviceRouter(t)

	users.EXPECT().GetUser(gomock.Any(), "user-1").Return(&domain.User{ID: "user-1"}, nil)
	devices.EXPECT().RegisterDevice(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, device *domain.Device) error {
			device.ID = "dev-1"
			return nil
		})

	body := `{"user_id":"user-1","endpoint":"https://web.push.apple.com/xyz","p256dh":"key","auth":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/devices", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", w.Code, w.Body.String())
	}

	var resp registerDeviceResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "dev-1" {
		t.Errorf("id = %q, want dev-1", resp.ID)
	}
	if resp.Platform != "ios" {
		t.Errorf("platform = %q, want ios", resp.Platform)
	}
}

func TestHandleRegister_RejectsNonHTTPSEndpoint(t *testing.T) {
	r, _, _ := setupDeviceRouter(t)

	body := `{"user_id":"user-1","endpoint":"http://example.com/push","p256dh":"key","auth":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/devices", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestHandleRegister_MissingFields(t *testing.T) {
	r, _, _ := setupDeviceRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/devices", strings.NewReader(`{"user_id":"user-1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestHandleDelete(t *testing.T) {
	r, devices, _ := setupDeviceRouter(t)

	devices.EXPECT().DeleteDevice(gomock.Any(), "dev-1").Return(nil)
	devices.EXPECT().DeleteDevice(gomock.Any(), "ghost").Return(domain.ErrDeviceNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/devices/dev-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/devices/ghost", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
