package scheduleservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type testLogger struct{}

func (testLogger) Info(format string, v ...interface{})  {}
func (testLogger) Warn(format string, v ...interface{})  {}
func (testLogger) Error(format string, v ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, testLogger{})
}

func TestListOpenSlots(t *testing.T) {
	from := time.Date(2025, 1, 9, 12, 0, 0, 0, time.UTC)
	start := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/internal/mentors/m1/slots", r.URL.Path)
		require.Equal(t, "false", r.URL.Query().Get("booked"))
		require.Equal(t, "2025-01-09T12:00:00Z", r.URL.Query().Get("from"))

		json.NewEncoder(w).Encode([]Slot{
			{ID: "s1", MentorID: "m1", StartTime: start, EndTime: start.Add(time.Hour)},
		})
	})

	slots, err := client.ListOpenSlots(context.Background(), "m1", from)

	require.NoError(t, err)
	require.Len(t, slots, 1)
	require.Equal(t, "s1", slots[0].ID)
	require.True(t, slots[0].StartTime.Equal(start))
}

func TestListOpenSlots_MentorNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.ListOpenSlots(context.Background(), "missing", time.Now())

	require.ErrorIs(t, err, ErrMentorNotFound)
}

func TestListOpenSlots_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.ListOpenSlots(context.Background(), "m1", time.Now())

	require.ErrorIs(t, err, ErrInvalidResponse)
}

func TestBookSlot(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/internal/slots/s1/book", r.URL.Path)

		var req BookSlotRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "student-1", req.StudentID)
		require.Equal(t, "m1", req.MentorID)

		json.NewEncoder(w).Encode(BookSlotResponse{Success: true})
	})

	success, err := client.BookSlot(context.Background(), "s1", "student-1", "m1")

	require.NoError(t, err)
	require.True(t, success)
}

func TestBookSlot_Conflict(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})

	success, err := client.BookSlot(context.Background(), "s1", "student-1", "m1")

	require.ErrorIs(t, err, ErrSlotTaken)
	require.False(t, success)
}

func TestBookSlot_FalsySuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(BookSlotResponse{Success: false})
	})

	success, err := client.BookSlot(context.Background(), "s1", "student-1", "m1")

	require.NoError(t, err)
	require.False(t, success)
}

func TestGetSlot(t *testing.T) {
	start := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/internal/slots/s1", r.URL.Path)
		json.NewEncoder(w).Encode(Slot{ID: "s1", MentorID: "m1", StartTime: start, EndTime: start.Add(time.Hour)})
	})

	slot, err := client.GetSlot(context.Background(), "s1")

	require.NoError(t, err)
	require.Equal(t, "m1", slot.MentorID)
	require.True(t, slot.EndTime.Equal(start.Add(time.Hour)))
}

func TestGetSlot_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetSlot(context.Background(), "missing")

	require.ErrorIs(t, err, ErrSlotNotFound)
}
