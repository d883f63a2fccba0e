package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/qdm12/dyndns-scheduler/internal/data"
	"github.com/qdm12/dyndns-scheduler/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopPersister struct{}

func (noopPersister) Load() ([]models.EntryRecord, error) { return nil, nil }
func (noopPersister) Save([]models.EntryRecord) error     { return nil }

type noopLogger struct{}

func (noopLogger) Debug(string) {}
func (noopLogger) Info(string)  {}
func (noopLogger) Warn(string)  {}
func (noopLogger) Error(string) {}

type fakeForcer struct {
	db *data.Database
}

func (f *fakeForcer) ForceUpdate(_ context.Context, index int) error {
	e, err := f.db.Select(index)
	if err != nil {
		return err
	}
	e.RecordResult("good 1.2.3.4", nil, time.Unix(1000, 0))
	return nil
}

type fakeDisplayer struct{}

func (fakeDisplayer) Snapshots() []models.DisplaySnapshot {
	return []models.DisplaySnapshot{{Index: 0, Status: "not yet updated"}}
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	timeNow := func() time.Time { return time.Unix(1010, 0) }
	db := data.NewDatabase(2, noopPersister{}, noopLogger{}, timeNow)
	handler := newHandler("/dyndns/", db, &fakeForcer{db: db},
		fakeDisplayer{}, noopLogger{})
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func doRequest(t *testing.T, server *httptest.Server, method, path, body string) (
	status int, responseBody string) {
	t.Helper()
	var bodyReader io.Reader
	if body != "" {
		bodyReader = strings.NewReader(body)
	}
	request, err := http.NewRequestWithContext(context.Background(), method,
		server.URL+path, bodyReader)
	require.NoError(t, err)

	response, err := server.Client().Do(request)
	require.NoError(t, err)
	defer response.Body.Close()

	b, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	return response.StatusCode, string(b)
}

func Test_handlers(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	type step struct {
		method string
		path   string
		body   string
		status int
		// response is the expected JSON response body, or a substring
		// of it if contains is true.
		response string
		contains bool
	}

	steps := []step{
		{
			method: http.MethodGet,
			path:   "/dyndns/api/v1/entries",
			status: http.StatusOK,
			response: `[{"index":0,"hostname":"","username":"","password_set":false,` +
				`"use_current_ip":true,"manual_ip":"","interval":30,"auto":false,` +
				`"active":false,"status":"not yet updated"},` +
				`{"index":1,"hostname":"","username":"","password_set":false,` +
				`"use_current_ip":true,"manual_ip":"","interval":30,"auto":false,` +
				`"active":false,"status":"not yet updated"}]` + "\n",
		},
		{
			method:   http.MethodPatch,
			path:     "/dyndns/api/v1/entries/0",
			body:     `{"field":"hostname","value":"a.example.com"}`,
			status:   http.StatusOK,
			response: `"hostname":"a.example.com"`,
			contains: true,
		},
		{
			method:   http.MethodPatch,
			path:     "/dyndns/api/v1/entries/0",
			body:     `{"field":"password","value":"secret"}`,
			status:   http.StatusOK,
			response: `"password_set":true`,
			contains: true,
		},
		{
			method:   http.MethodPatch,
			path:     "/dyndns/api/v1/entries/0",
			body:     `{"field":"interval","value":60}`,
			status:   http.StatusOK,
			response: `"interval":60`,
			contains: true,
		},
		{
			method:   http.MethodPatch,
			path:     "/dyndns/api/v1/entries/0",
			body:     `{"field":"use_current_ip","value":false}`,
			status:   http.StatusOK,
			response: `"use_current_ip":false`,
			contains: true,
		},
		{
			method:   http.MethodPatch,
			path:     "/dyndns/api/v1/entries/0",
			body:     `{"field":"manual_ip","value":"12a.3.4.5.6"}`,
			status:   http.StatusOK,
			response: `"manual_ip":"12.3.4.5"`,
			contains: true,
		},
		{
			method:   http.MethodPatch,
			path:     "/dyndns/api/v1/entries/0",
			body:     `{"field":"interval","value":0.5}`,
			status:   http.StatusBadRequest,
			response: `{"error":"field value is not valid: interval: ` +
				`strconv.Atoi: parsing \"0.5\": invalid syntax"}` + "\n",
		},
		{
			method:   http.MethodPatch,
			path:     "/dyndns/api/v1/entries/0",
			body:     `{"field":"status","value":"x"}`,
			status:   http.StatusBadRequest,
			response: `{"error":"field is unknown: \"status\""}` + "\n",
		},
		{
			method:   http.MethodPatch,
			path:     "/dyndns/api/v1/entries/0",
			body:     `{"field":"hostname","value":null}`,
			status:   http.StatusBadRequest,
			response: `{"error":"value type is not supported: \u003cnil\u003e"}` + "\n",
		},
		{
			method:   http.MethodPatch,
			path:     "/dyndns/api/v1/entries/5",
			body:     `{"field":"hostname","value":"x"}`,
			status:   http.StatusNotFound,
			response: `{"error":"entry not found: index 5 is not in [0..1]"}` + "\n",
		},
		{
			method:   http.MethodPost,
			path:     "/dyndns/api/v1/entries/abc/active/toggle",
			status:   http.StatusBadRequest,
			response: `{"error":"index \"abc\" is not a valid integer"}` + "\n",
		},
		{
			method: http.MethodPost,
			path:   "/dyndns/api/v1/entries/0/active/toggle",
			status: http.StatusBadRequest,
			response: `{"error":"entry is not in automatic mode: ` +
				`cannot activate it"}` + "\n",
		},
		{
			method:   http.MethodPost,
			path:     "/dyndns/api/v1/entries/0/automatic/toggle",
			status:   http.StatusOK,
			response: `"auto":true,"active":false`,
			contains: true,
		},
		{
			method:   http.MethodPost,
			path:     "/dyndns/api/v1/entries/0/active/toggle",
			status:   http.StatusOK,
			response: `"auto":true,"active":true`,
			contains: true,
		},
		{
			method:   http.MethodGet,
			path:     "/dyndns/api/v1/entries/0/display",
			status:   http.StatusOK,
			response: `{"index":0,"hostname":"a.example.com","status":"not yet updated",` +
				`"seconds_since_update":null}` + "\n",
		},
		{
			method: http.MethodPost,
			path:   "/dyndns/api/v1/entries/0/update",
			status: http.StatusOK,
			response: `{"index":0,"hostname":"a.example.com","status":"good 1.2.3.4",` +
				`"seconds_since_update":10}` + "\n",
		},
		{
			method:   http.MethodGet,
			path:     "/dyndns/api/v1/display",
			status:   http.StatusOK,
			response: `[{"index":0,"hostname":"","status":"not yet updated",` +
				`"seconds_since_update":null}]` + "\n",
		},
	}

	for _, step := range steps {
		status, response := doRequest(t, server, step.method, step.path, step.body)
		assert.Equal(t, step.status, status, "%s %s", step.method, step.path)
		if step.contains {
			assert.Contains(t, response, step.response, "%s %s", step.method, step.path)
		} else {
			assert.Equal(t, step.response, response, "%s %s", step.method, step.path)
		}
	}
}

func Test_valueToString(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		value      any
		s          string
		errMessage string
	}{
		"string":  {value: "abc", s: "abc"},
		"bool":    {value: true, s: "true"},
		"integer": {value: float64(30), s: "30"},
		"float":   {value: 1.5, s: "1.5"},
		"object": {
			value:      map[string]any{},
			errMessage: "value type is not supported: map[string]interface {}",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s, err := valueToString(testCase.value)

			if testCase.errMessage != "" {
				assert.EqualError(t, err, testCase.errMessage)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, testCase.s, s)
		})
	}
}
