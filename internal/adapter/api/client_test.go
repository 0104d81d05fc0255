package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/flight-search/travel-booking-client/internal/domain"
	"github.com/flight-search/travel-booking-client/internal/notify"
)

type staticToken struct {
	mu      sync.Mutex
	token   string
	cleared int
}

func (s *staticToken) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *staticToken) ClearToken() {
	s.mu.Lock()
	s.token = ""
	s.cleared++
	s.mu.Unlock()
}

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) (*Client, *notify.Recorder) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	rec := notify.NewRecorder()
	cfg := DefaultConfig()
	cfg.BaseURL = srv.URL + "/api"
	cfg.Timeout = 2 * time.Second

	c, err := New(cfg, append([]Option{WithNotifier(rec)}, opts...)...)
	require.NoError(t, err)
	return c, rec
}

// rejected is the success=false body the API sends for refused operations.
func rejected(msg string) domain.Envelope[json.RawMessage] {
	return domain.Envelope[json.RawMessage]{Success: false, Error: msg}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNew_InvalidBaseURL(t *testing.T) {
	_, err := New(Config{BaseURL: "localhost:8080"})
	assert.Error(t, err)

	_, err = New(Config{BaseURL: "://"})
	assert.Error(t, err)
}

func TestClient_SearchFlights(t *testing.T) {
	tokens := &staticToken{token: "abc123"}
	var gotBody map[string]interface{}

	c, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/flights/search", r.URL.Path)
		assert.Equal(t, "Bearer abc123", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "travelctl", r.Header.Get("User-Agent"))
		_, err := uuid.Parse(r.Header.Get(RequestIDHeader))
		assert.NoError(t, err, "request id is a uuid")

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "Found 1 flights",
			"data": map[string]interface{}{
				"outboundFlights": []map[string]interface{}{{
					"flightNumber":  "AV204",
					"origin":        "BOG",
					"destination":   "MIA",
					"departureTime": "2025-06-01T08:30:00",
					"arrivalTime":   "2025-06-01T12:45:00",
					"price":         420.5,
					"cabinClass":    "Economy",
				}},
				"returnFlights": []interface{}{},
				"metadata":      map[string]interface{}{"searchId": "s-1", "totalResults": 1, "currency": "USD"},
			},
		})
	}, WithTokenSource(tokens))

	dep := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	ret := dep.AddDate(0, 0, 7)
	criteria := domain.SearchCriteria{
		Origin: "BOG", Destination: "MIA", DepartureDate: dep, ReturnDate: &ret,
		TripType: domain.TripOneWay, Passengers: 2,
	}

	env, err := c.SearchFlights(context.Background(), criteria.ToRequest())
	require.NoError(t, err)

	assert.Equal(t, "Found 1 flights", env.Message)
	require.Len(t, env.Data.OutboundFlights, 1)
	assert.Equal(t, "AV204", env.Data.OutboundFlights[0].FlightNumber)
	assert.Equal(t, time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC), env.Data.OutboundFlights[0].DepartureTime.Time)
	assert.Equal(t, "USD", env.Data.Metadata.Currency)

	assert.Equal(t, "2025-06-01", gotBody["departureDate"])
	assert.Contains(t, gotBody, "returnDate")
	assert.Nil(t, gotBody["returnDate"], "one-way search sends a null return date")
	assert.Empty(t, rec.All())
}

func TestClient_NoTokenNoAuthorizationHeader(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, domain.OK([]domain.Location{{Name: "Bogota", Code: "BOG"}}, ""))
	}, WithTokenSource(&staticToken{}))

	env, err := c.Locations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Location{{Name: "Bogota", Code: "BOG"}}, env.Data)
}

func TestClient_StatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind domain.ErrorKind
		wantMsg  string
	}{
		{"unauthorized", 401, `{"success":false,"error":"token expired"}`, domain.KindUnauthorized, "Session expired - please log in again"},
		{"forbidden", 403, `{}`, domain.KindForbidden, "Access denied - insufficient permissions"},
		{"not found", 404, `{"success":false,"error":"Flight not found"}`, domain.KindNotFound, "Resource not found"},
		{"validation with message", 422, `{"success":false,"message":"Price must be positive"}`, domain.KindValidation, "Price must be positive"},
		{"validation falls back to error field", 422, `{"success":false,"error":"arrival before departure"}`, domain.KindValidation, "arrival before departure"},
		{"validation without message", 422, `not json`, domain.KindValidation, "Validation failed"},
		{"server error", 500, `{"success":false,"message":"boom"}`, domain.KindServer, "Server error - please try again later"},
		{"other status with message", 409, `{"success":false,"message":"Flight number already exists"}`, domain.KindStatus, "Flight number already exists"},
		{"other status without message", 502, ``, domain.KindStatus, "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := c.GetFlight(context.Background(), 7)
			require.Error(t, err)

			var apiErr *domain.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.wantKind, apiErr.Kind)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantMsg, apiErr.Error())
			assert.Equal(t, []string{tt.wantMsg}, rec.Messages(notify.LevelError), "notified exactly once")
		})
	}
}

func TestClient_UnauthorizedClearsToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokens := domain.NewMockTokenSource(ctrl)
	tokens.EXPECT().Token().Return("stale")
	tokens.EXPECT().ClearToken()

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, rejected("Invalid token"))
	}, WithTokenSource(tokens))

	_, err := c.Me(context.Background())
	assert.True(t, domain.IsUnauthorized(err))

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid token", apiErr.Detail)
}

func TestClient_ApplicationFailureIsNotNotified(t *testing.T) {
	c, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/flights/admin/42", r.URL.Path)
		writeJSON(w, http.StatusOK, rejected("Flight not found"))
	})

	_, err := c.DeleteFlight(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, domain.KindApplication, domain.KindOf(err))
	assert.Equal(t, "Flight not found", err.Error())
	assert.ErrorIs(t, err, domain.ErrApplication)
	assert.Empty(t, rec.All())
}

func TestClient_ApplicationFailureFallback(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": false, "error": "  "})
	})

	_, err := c.CreateFlight(context.Background(), domain.NewFlightInput())
	assert.Equal(t, "Failed to create flight", err.Error())

	_, err = c.SearchFlights(context.Background(), domain.SearchRequest{})
	assert.Equal(t, "Search failed", err.Error())
}

func TestClient_DecodeFailure(t *testing.T) {
	c, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, `{"success":true,"data":[`)
	})

	_, err := c.Locations(context.Background())
	assert.Equal(t, domain.KindDecode, domain.KindOf(err))
	assert.ErrorIs(t, err, domain.ErrDecode)
	assert.Equal(t, "An unexpected error occurred", err.Error())
	assert.Empty(t, rec.All())
}

func TestClient_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	rec := notify.NewRecorder()
	c, err := New(Config{BaseURL: baseURL, Timeout: time.Second}, WithNotifier(rec))
	require.NoError(t, err)

	_, err = c.Destinations(context.Background())
	assert.Equal(t, domain.KindNetwork, domain.KindOf(err))
	assert.ErrorIs(t, err, domain.ErrNetwork)
	assert.Equal(t, []string{"Network error - please check your connection"}, rec.Messages(notify.LevelError))
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	c, err := New(Config{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})
	require.NoError(t, err)

	_, err = c.Locations(context.Background())
	assert.Equal(t, domain.KindNetwork, domain.KindOf(err))
}

func TestClient_ListParams(t *testing.T) {
	var queries []string
	var paths []string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		queries = append(queries, r.URL.Query().Encode())
		writeJSON(w, http.StatusOK, domain.OK(domain.FlightPage{Pageable: domain.Pageable{PageNumber: 1, PageSize: 10}}, ""))
	})

	env, err := c.ListAdminFlights(context.Background(), domain.ListQuery{Page: 1, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, env.Data.Pageable.PageNumber)

	_, err = c.SearchAdminFlights(context.Background(), domain.ListQuery{SearchTerm: " avianca ", SortDir: domain.SortDesc})
	require.NoError(t, err)

	assert.Equal(t, []string{"/api/flights/admin", "/api/flights/search/admin"}, paths)
	assert.Equal(t, "page=1&size=10&sortBy=departureTime&sortDir=asc", queries[0])
	assert.Equal(t, "page=0&searchTerm=avianca&size=20&sortBy=departureTime&sortDir=desc", queries[1])
}

func TestClient_FlightBody(t *testing.T) {
	var body map[string]interface{}
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/flights/admin/9", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeJSON(w, http.StatusOK, domain.OK(domain.AdminFlight{ID: 9}, "Flight updated successfully"))
	})

	in := domain.NewFlightInput()
	in.FlightNumber = "AV204"
	in.DepartureTime = time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)
	in.ArrivalTime = time.Date(2025, 6, 1, 12, 45, 0, 0, time.UTC)

	env, err := c.UpdateFlight(context.Background(), 9, in)
	require.NoError(t, err)
	assert.Equal(t, int64(9), env.Data.ID)

	assert.Equal(t, "2025-06-01T08:30:00", body["departureTime"])
	assert.Equal(t, "2025-06-01T12:45:00", body["arrivalTime"])
	assert.Equal(t, "Economy", body["cabinClass"])
	assert.Equal(t, true, body["active"])
}

func TestClient_Logout(t *testing.T) {
	c, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/logout", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, c.Logout(context.Background()))
	assert.Empty(t, rec.All())
}

func TestClient_RateLimitHonoursContext(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusOK, domain.OK(domain.LoginResult{Token: "t"}, ""))
	}))
	t.Cleanup(srv.Close)

	c, err := New(Config{BaseURL: srv.URL, Timeout: time.Second, RequestsPerSecond: 0.001, Burst: 1})
	require.NoError(t, err)

	_, err = c.Refresh(context.Background())
	require.NoError(t, err, "first request uses the burst")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = c.Refresh(ctx)
	assert.Equal(t, domain.KindNetwork, domain.KindOf(err))
	assert.Equal(t, int32(1), calls.Load())
}

func TestClassify(t *testing.T) {
	kind, msg := classify(http.StatusTeapot, "")
	assert.Equal(t, domain.KindStatus, kind)
	assert.Equal(t, msgUnexpected, msg)

	assert.Equal(t, "", bodyMessage([]byte("<html>")))
	assert.Equal(t, "bad", bodyMessage([]byte(`{"message":" bad "}`)))
}
