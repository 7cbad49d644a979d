package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/farellandr/hostspot/config"
	"github.com/farellandr/hostspot/internal/handlers"
	"github.com/farellandr/hostspot/internal/repository"
	"github.com/farellandr/hostspot/internal/service"
	"github.com/farellandr/hostspot/internal/testutil"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type testServer struct {
	db      *gorm.DB
	handler http.Handler
	logs    *test.Hook
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db := testutil.NewDB(t)
	logger, hook := test.NewNullLogger()
	h := handlers.New(repository.NewStore(db), service.NewPasswordHasher(bcrypt.MinCost), nil, logger)
	srv := New(&config.Config{GinMode: "test", Port: "0"}, h, logger)

	return &testServer{db: db, handler: srv.Handler(), logs: hook}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

type errorBody struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func TestSignupHostThenDuplicate(t *testing.T) {
	s := newTestServer(t)
	body := map[string]interface{}{"email": "c@x.io", "password": "pw", "category": "nonexistent"}

	w := s.do(t, http.MethodPost, "/signup/host/", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	profile := decode[map[string]interface{}](t, w)
	assert.Equal(t, "HOST", profile["role"])
	assert.Equal(t, "c", profile["name"])
	assert.NotEmpty(t, profile["host_profile_id"])
	assert.NotContains(t, profile, "category")

	w = s.do(t, http.MethodPost, "/signup/host/", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "DUPLICATE_EMAIL", decode[errorBody](t, w).Code)
}

func TestSignupUserAndLogin(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/signup/user/", map[string]interface{}{
		"name": "Ana", "email": "ana@x.io", "password": "secret", "address": "Jl. Braga", "lat": -6.9, "lng": 107.6,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	profile := decode[map[string]interface{}](t, w)
	assert.Equal(t, "USER", profile["role"])
	assert.Nil(t, profile["host_profile_id"])

	w = s.do(t, http.MethodPost, "/login/", map[string]string{"email": "ana@x.io", "password": "secret"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ana", decode[map[string]interface{}](t, w)["name"])

	unknown := s.do(t, http.MethodPost, "/login/", map[string]string{"email": "who@x.io", "password": "secret"})
	wrong := s.do(t, http.MethodPost, "/login/", map[string]string{"email": "ana@x.io", "password": "bad"})
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, unknown.Code, wrong.Code)
	assert.Equal(t, unknown.Body.String(), wrong.Body.String())

	w = s.do(t, http.MethodPost, "/login/", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "MISSING_FIELD", decode[errorBody](t, w).Code)

	w = s.do(t, http.MethodPost, "/signup/user/", map[string]string{"email": "x@x.io"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "MISSING_FIELD", decode[errorBody](t, w).Code)
}

func TestListingRoundTrip(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/signup/host/", map[string]string{"email": "h@x.io", "password": "pw", "category": "musical"})
	require.Equal(t, http.StatusCreated, w.Code)
	hostID := decode[map[string]interface{}](t, w)["host_profile_id"].(string)

	listing := map[string]interface{}{
		"host":         hostID,
		"category":     "musical",
		"title":        "Jazz Night",
		"description":  "Live jazz",
		"listing_type": "event",
		"latitude":     -6.2,
		"longitude":    106.8,
		"address":      "Jl. Sudirman 1",
		"event_date":   "2026-12-01T19:00:00Z",
		"booking_link": "https://example.com/jazz",
		"image":        "https://example.com/jazz.png",
	}
	w = s.do(t, http.MethodPost, "/listings/", listing)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[map[string]interface{}](t, w)
	id := created["id"].(string)
	assert.Equal(t, hostID, created["host"])
	assert.NotEmpty(t, created["created_at"])

	w = s.do(t, http.MethodGet, "/listings/"+id+"/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	fetched := decode[map[string]interface{}](t, w)
	require.Len(t, fetched, len(created))
	for key, want := range created {
		switch key {
		case "created_at", "event_date":
			assertSameInstant(t, want, fetched[key], key)
		default:
			assert.Equal(t, want, fetched[key], key)
		}
	}

	w = s.do(t, http.MethodGet, "/listings/?cat=musical", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]interface{}](t, w), 1)

	w = s.do(t, http.MethodGet, "/listings/?cat=art", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = s.do(t, http.MethodPatch, "/listings/"+id+"/", map[string]string{"title": "Blues Night"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	patched := decode[map[string]interface{}](t, w)
	assert.Equal(t, "Blues Night", patched["title"])
	assert.Equal(t, id, patched["id"])
	assert.NotNil(t, patched["event_date"])

	w = s.do(t, http.MethodPatch, "/listings/"+id+"/", map[string]interface{}{"event_date": nil, "image": nil})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	cleared := decode[map[string]interface{}](t, w)
	assert.Nil(t, cleared["event_date"])
	assert.Nil(t, cleared["image"])
	assert.Equal(t, "Blues Night", cleared["title"])

	w = s.do(t, http.MethodGet, "/listings/"+id+"/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	fetched = decode[map[string]interface{}](t, w)
	assert.Nil(t, fetched["event_date"])
	assert.Nil(t, fetched["image"])

	listing["listing_type"] = "service"
	w = s.do(t, http.MethodPut, "/listings/"+id+"/", listing)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Jazz Night", decode[map[string]interface{}](t, w)["title"])

	w = s.do(t, http.MethodGet, "/export/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	export := decode[map[string][]map[string]interface{}](t, w)
	require.Len(t, export["listings"], 1)
	assert.Equal(t, "h", export["listings"][0]["host_name"])
	assert.Len(t, export["hosts"], 1)

	w = s.do(t, http.MethodDelete, "/listings/"+id+"/", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(t, http.MethodGet, "/listings/"+id+"/", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decode[errorBody](t, w).Code)
}

func assertSameInstant(t *testing.T, want, got interface{}, field string) {
	t.Helper()
	wantTime, err := time.Parse(time.RFC3339Nano, want.(string))
	require.NoError(t, err, field)
	gotTime, err := time.Parse(time.RFC3339Nano, got.(string))
	require.NoError(t, err, field)
	assert.True(t, wantTime.Equal(gotTime), "%s: %s != %s", field, want, got)
}

func TestCreateListingValidation(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/listings/", map[string]string{"title": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode[errorBody](t, w)
	assert.Equal(t, "MISSING_FIELD", body.Code)
	assert.Contains(t, body.Message, "booking_link")
	assert.NotContains(t, body.Message, "BookingLink")

	w = s.do(t, http.MethodPost, "/listings/", map[string]interface{}{
		"host": "00000000-0000-4000-8000-000000000001", "category": "musical", "title": "x", "description": "y",
		"listing_type": "party", "latitude": 1, "longitude": 1, "address": "a", "booking_link": "https://e.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode[errorBody](t, w).Code)

	w = s.do(t, http.MethodGet, "/listings/not-a-uuid/", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategoriesAndHosts(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/categories/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]interface{}](t, w), 5)

	w = s.do(t, http.MethodGet, "/categories/shop/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "shop", decode[map[string]interface{}](t, w)["name"])

	w = s.do(t, http.MethodPost, "/signup/host/", map[string]string{"email": "h@x.io", "password": "pw", "category": "shop"})
	require.Equal(t, http.StatusCreated, w.Code)
	hostID := decode[map[string]interface{}](t, w)["host_profile_id"].(string)

	w = s.do(t, http.MethodPatch, "/hosts/"+hostID+"/", map[string]interface{}{"bio": "Vintage goods", "is_verified": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	host := decode[map[string]interface{}](t, w)
	assert.Equal(t, "Vintage goods", host["bio"])
	assert.Equal(t, true, host["is_verified"])

	w = s.do(t, http.MethodDelete, "/categories/shop/", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(t, http.MethodGet, "/hosts/"+hostID+"/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decode[map[string]interface{}](t, w)["category"])

	w = s.do(t, http.MethodDelete, "/hosts/"+hostID+"/", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(t, http.MethodGet, "/hosts/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestInternalErrorsAreSanitized(t *testing.T) {
	s := newTestServer(t)
	err := s.db.Callback().Create().Before("gorm:create").Register("test:fail_host_insert", func(tx *gorm.DB) {
		if tx.Statement.Table == "host_profiles" {
			_ = tx.AddError(errors.New("relation host_profiles is on fire"))
		}
	})
	require.NoError(t, err)

	w := s.do(t, http.MethodPost, "/signup/host/", map[string]string{"email": "f@x.io", "password": "pw"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	body := decode[errorBody](t, w)
	assert.Equal(t, "Internal Server Error", body.Error)
	assert.Equal(t, "INTERNAL_ERROR", body.Code)
	assert.Equal(t, "Internal server error.", body.Message)
	assert.NotContains(t, w.Body.String(), "on fire")

	var logged int
	for _, entry := range s.logs.AllEntries() {
		if e, ok := entry.Data["error"].(error); ok && bytes.Contains([]byte(e.Error()), []byte("on fire")) {
			logged++
			assert.NotEmpty(t, entry.Data["request_id"])
		}
	}
	assert.Equal(t, 1, logged, "cause should reach the server log exactly once")
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = s.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "hostspot_http_request_duration_seconds")
}
