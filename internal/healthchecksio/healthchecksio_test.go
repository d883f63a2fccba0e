package healthchecksio

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Client_Ping(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		uuid       string
		state      State
		message    string
		statusCode int
		method     string
		path       string
		body       string
		errMessage string
	}{
		"no_uuid": {},
		"ok": {
			uuid:       "abc",
			state:      Ok,
			statusCode: http.StatusOK,
			method:     http.MethodGet,
			path:       "/abc",
		},
		"fail_with_message": {
			uuid:       "abc",
			state:      Fail,
			message:    "entries failed",
			statusCode: http.StatusOK,
			method:     http.MethodPost,
			path:       "/abc/fail",
			body:       "entries failed",
		},
		"bad_status": {
			uuid:       "abc",
			state:      Exit1,
			statusCode: http.StatusNotFound,
			method:     http.MethodGet,
			path:       "/abc/1",
			errMessage: "bad status code: 404 Not Found",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(
				func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, testCase.method, r.Method)
					assert.Equal(t, testCase.path, r.URL.Path)
					body, err := io.ReadAll(r.Body)
					assert.NoError(t, err)
					assert.Equal(t, testCase.body, string(body))
					w.WriteHeader(testCase.statusCode)
				}))
			t.Cleanup(server.Close)

			client := New(server.Client(), server.URL, testCase.uuid)

			err := client.Ping(context.Background(), testCase.state, testCase.message)

			if testCase.errMessage != "" {
				assert.EqualError(t, err, testCase.errMessage)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

type ping struct {
	state   State
	message string
}

type fakePinger struct {
	mutex sync.Mutex
	pings []ping
}

func (f *fakePinger) Ping(_ context.Context, state State, message string) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.pings = append(f.pings, ping{state: state, message: message})
	return nil
}

type fakeLogger struct{}

func (fakeLogger) Error(string) {}

func Test_Service(t *testing.T) {
	t.Parallel()

	pinger := &fakePinger{}
	healthErr := errors.New("entry 0 failed")
	isHealthy := func() error { return healthErr }
	service := NewService(pinger, time.Hour, isHealthy, fakeLogger{})

	_, err := service.Start(context.Background())
	require.NoError(t, err)
	service.check()
	err = service.Stop()
	require.NoError(t, err)

	expected := []ping{
		{state: Start},
		{state: Fail, message: "entry 0 failed"},
		{state: Exit0},
	}
	assert.Equal(t, expected, pinger.pings)
}
