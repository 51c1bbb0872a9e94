package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"bookify/models"
)

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func TestErrorTaxonomy(t *testing.T) {
	var status int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(int(atomic.LoadInt32(&status)))
		w.Write([]byte(`{"message":"nope","details":"context"}`))
	}))
	defer srv.Close()
	c := New(srv.URL)

	cases := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrValidation},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusTooManyRequests, ErrRateLimited},
		{http.StatusInternalServerError, ErrServer},
		{http.StatusServiceUnavailable, ErrServer},
	}
	for _, tc := range cases {
		atomic.StoreInt32(&status, int32(tc.status))
		_, err := c.BookingByRef(context.Background(), "A1B2C3")
		if !errors.Is(err, tc.want) {
			t.Errorf("status %d: errors.Is(%v, %v) = false", tc.status, err, tc.want)
		}
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("status %d: expected *APIError, got %v", tc.status, err)
		}
		if apiErr.Status != tc.status || apiErr.Message != "nope" || apiErr.Details != "context" {
			t.Errorf("status %d: decoded %+v", tc.status, apiErr)
		}
	}
}

func TestErrorBodyShapes(t *testing.T) {
	// Middleware aborts use {"error": ...} rather than {"message": ...}.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"Rate limit exceeded"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).BookingByRef(context.Background(), "A1B2C3")
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "Rate limit exceeded" {
		t.Errorf("middleware shape not decoded: %v", err)
	}

	// A non-JSON body falls back to the status text.
	srv2 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv2.Close()

	_, err = New(srv2.URL).BookingByRef(context.Background(), "A1B2C3")
	if !errors.As(err, &apiErr) || apiErr.Message != "Not Found" {
		t.Errorf("fallback message not applied: %v", err)
	}
}

func TestTransportError(t *testing.T) {
	c := New("http://127.0.0.1:1")
	c.HTTPClient.Timeout = 200 * time.Millisecond

	_, err := c.BookingByRef(context.Background(), "A1B2C3")
	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("expected *TransportError, got %v", err)
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Error("a connection failure must not look like an API response")
	}
}

func TestServerTime(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/server-time" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"server_time":"2026-09-04T10:30:00.000Z"}`))
	}))
	defer srv.Close()

	got, err := New(srv.URL).ServerTime(context.Background())
	if err != nil {
		t.Fatalf("ServerTime: %v", err)
	}
	want := time.Date(2026, 9, 4, 10, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("server time = %v, want %v", got, want)
	}
}

func TestAvailabilityRangeRequest(t *testing.T) {
	var gotStart, gotEnd string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/availability/profiles/p1" {
			t.Errorf("path = %s", r.URL.Path)
		}
		gotStart = r.URL.Query().Get("start_date")
		gotEnd = r.URL.Query().Get("end_date")
		writeJSON(w, []models.DateAvailability{
			{Date: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)},
			{Date: time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)},
		})
	}))
	defer srv.Close()

	days, err := New(srv.URL).AvailabilityRange(context.Background(), "p1",
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("AvailabilityRange: %v", err)
	}
	if gotStart != "2026-09-01" || gotEnd != "2026-09-30" {
		t.Errorf("range params = %q..%q", gotStart, gotEnd)
	}
	if len(days) != 2 {
		t.Errorf("got %d days, want 2", len(days))
	}
}

func authMux(t *testing.T) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req models.UserLogin
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message":"Invalid request payload"}`))
			return
		}
		writeJSON(w, models.TokenResponse{AccessToken: "tok-1", TokenType: "bearer"})
	})
	mux.HandleFunc("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"Authorization header missing or malformed"}`))
			return
		}
		writeJSON(w, models.UserResponse{ID: "u1", Username: "joe", Role: models.RoleOwner})
	})
	return mux
}

func TestSessionLoginAndClose(t *testing.T) {
	mux := authMux(t)
	srv := httptest.NewServer(mux)
	defer srv.Close()

	sess, err := New(srv.URL).Login(context.Background(), "joe", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got := sess.User(); got.ID != "u1" || got.Username != "joe" {
		t.Errorf("session user = %+v", got)
	}
	if !sess.Active() {
		t.Error("fresh session must be active")
	}

	sess.Close()
	if sess.Active() {
		t.Error("closed session still active")
	}
	_, err = sess.AdminBookings(context.Background(), AdminBookingsQuery{})
	if !errors.Is(err, ErrSessionClosed) {
		t.Errorf("call on closed session = %v, want ErrSessionClosed", err)
	}
}

func TestSessionInvalidatedOn401(t *testing.T) {
	mux := authMux(t)
	mux.HandleFunc("/api/admin/bookings", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid or expired token"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	sess, err := New(srv.URL).Login(context.Background(), "joe", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	_, err = sess.AdminBookings(context.Background(), AdminBookingsQuery{})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if sess.Active() {
		t.Error("a 401 must invalidate the session")
	}
}

func TestAdminBookingsQueryEncoding(t *testing.T) {
	var got map[string]string
	mux := authMux(t)
	mux.HandleFunc("/api/admin/bookings", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		got = map[string]string{
			"page": q.Get("page"), "page_size": q.Get("page_size"),
			"status": q.Get("status"), "search": q.Get("search"),
			"start_date": q.Get("start_date"), "end_date": q.Get("end_date"),
		}
		writeJSON(w, models.PaginatedBookings{Total: 1, Page: 2, PageSize: 50})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	sess, err := New(srv.URL).Login(context.Background(), "joe", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
	out, err := sess.AdminBookings(context.Background(), AdminBookingsQuery{
		Page: 2, PageSize: 50, Status: "PENDING", Search: "joe",
		StartDate: &start, EndDate: &end,
	})
	if err != nil {
		t.Fatalf("AdminBookings: %v", err)
	}
	want := map[string]string{
		"page": "2", "page_size": "50", "status": "PENDING", "search": "joe",
		"start_date": "2026-09-01", "end_date": "2026-09-30",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("query %s = %q, want %q", k, got[k], v)
		}
	}
	if out.Total != 1 {
		t.Errorf("total = %d", out.Total)
	}
}

func TestRescheduleBookingPayload(t *testing.T) {
	var (
		gotMethod string
		gotPath   string
		gotBody   map[string]interface{}
	)
	mux := authMux(t)
	mux.HandleFunc("/api/admin/bookings/b1/reschedule", func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotBody)
		writeJSON(w, models.Booking{ID: "b1", Status: models.BookingStatusConfirmed})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	sess, err := New(srv.URL).Login(context.Background(), "joe", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	booking, err := sess.RescheduleBooking(context.Background(), "b1", "2026-09-04T00:00:00.000Z", "10:00-10:30")
	if err != nil {
		t.Fatalf("RescheduleBooking: %v", err)
	}
	if booking.ID != "b1" {
		t.Errorf("booking ID = %q", booking.ID)
	}
	if gotMethod != http.MethodPut || gotPath != "/api/admin/bookings/b1/reschedule" {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
	if gotBody["new_date"] != "2026-09-04T00:00:00.000Z" {
		t.Errorf("new_date = %v", gotBody["new_date"])
	}
	if gotBody["new_time_slot"] != "10:00-10:30" {
		t.Errorf("new_time_slot = %v", gotBody["new_time_slot"])
	}
	if _, present := gotBody["notes"]; present {
		t.Error("empty notes must be omitted from the payload")
	}
}
