package feed

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

var testDate = time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC)

func TestClient_FetchDay(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("date"); got != "2026-01-07" {
			t.Errorf("date query = %q, want 2026-01-07", got)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"date": "2026-01-07",
			"rows": []map[string]string{
				{"hours": "3", "subject": "MATH", "teacher": "SMI", "type": "cancelled"},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 3, 5*time.Second)
	rows, err := client.FetchDay(context.Background(), testDate)
	if err != nil {
		t.Fatalf("FetchDay() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].Subject != "MATH" {
		t.Errorf("subject = %q, want MATH", rows[0].Subject)
	}
}

func TestClient_FetchDay_EmptyDay(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"date": "2026-01-07", "rows": []any{}})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 3, 5*time.Second)
	rows, err := client.FetchDay(context.Background(), testDate)
	if err != nil {
		t.Fatalf("FetchDay() error = %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("rows = %d, want 0", len(rows))
	}
}

func TestClient_FetchDay_RetriesTransientFailure(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"date": "2026-01-07", "rows": []any{}})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 3, 5*time.Second)
	if _, err := client.FetchDay(context.Background(), testDate); err != nil {
		t.Fatalf("FetchDay() error = %v", err)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("upstream calls = %d, want 3", got)
	}
}

func TestClient_FetchDay_ExhaustedRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 2, 5*time.Second)
	_, err := client.FetchDay(context.Background(), testDate)

	var ue *UnavailableError
	if !errors.As(err, &ue) {
		t.Fatalf("FetchDay() error = %v, want UnavailableError", err)
	}
	if ue.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", ue.StatusCode)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("upstream calls = %d, want 2", got)
	}
}

func TestClient_FetchDay_NoRetryOnClientError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 3, 5*time.Second)
	_, err := client.FetchDay(context.Background(), testDate)

	var ue *UnavailableError
	if !errors.As(err, &ue) {
		t.Fatalf("FetchDay() error = %v, want UnavailableError", err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("upstream calls = %d, want 1 (no retry on 4xx)", got)
	}
}
