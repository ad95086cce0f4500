package push

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/subplan/notification-dispatch/internal/domain"
)

func testDevice() domain.Device {
	return domain.Device{
		ID:        "dev-1",
		UserID:    "user-1",
		Endpoint:  "https://fcm.googleapis.com/fcm/send/abc",
		P256dhKey: "p256dh",
		AuthKey:   "auth",
	}
}

func TestClient_Send_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req sendRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if req.Endpoint != "https://fcm.googleapis.com/fcm/send/abc" {
			t.Errorf("endpoint = %q", req.Endpoint)
		}
		if req.Message.Count != 2 {
			t.Errorf("count = %d, want 2", req.Message.Count)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	result, err := client.Send(context.Background(), testDevice(), Message{
		Title:   "Timetable changes",
		Body:    "2 change(s)",
		DateKey: "2026-01-07",
		Count:   2,
	})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if !result.OK {
		t.Errorf("OK = false, want true")
	}
	if result.Remove {
		t.Errorf("Remove = true, want false")
	}
}

func TestClient_Send_GoneMarksRemove(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusGone} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		client := NewClient(srv.URL, 5*time.Second)
		result, err := client.Send(context.Background(), testDevice(), Message{})
		srv.Close()

		if err != nil {
			t.Fatalf("Send() error = %v", err)
		}
		if !result.Remove {
			t.Errorf("status %d: Remove = false, want true", status)
		}
		if result.OK {
			t.Errorf("status %d: OK = true, want false", status)
		}
	}
}

func TestClient_Send_ServerErrorIsNotRemove(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	result, err := client.Send(context.Background(), testDevice(), Message{})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if result.OK || result.Remove {
		t.Errorf("result = %+v, want transient failure", result)
	}
}
