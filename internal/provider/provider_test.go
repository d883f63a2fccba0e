package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Client_Update(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		hostname   string
		ip         string
		status     int
		body       string
		noRequest  bool
		message    string
		errWrapped error
		errMessage string
	}{
		"success": {
			hostname: "home.example.com",
			ip:       "1.2.3.4",
			status:   http.StatusOK,
			body:     "good 1.2.3.4\n",
			message:  "good 1.2.3.4",
		},
		"body_stored_verbatim": {
			hostname: "home.example.com",
			ip:       "1.2.3.4",
			status:   http.StatusOK,
			body:     " nohost ",
			message:  "nohost",
		},
		"unauthorized": {
			hostname:   "home.example.com",
			ip:         "1.2.3.4",
			status:     http.StatusUnauthorized,
			body:       "badauth",
			errWrapped: ErrBadHTTPStatus,
			errMessage: "bad HTTP status: 401: badauth",
		},
		"empty_hostname": {
			ip:         "1.2.3.4",
			noRequest:  true,
			errWrapped: ErrHostnameEmpty,
			errMessage: "hostname is empty",
		},
		"empty_ip": {
			hostname:   "home.example.com",
			noRequest:  true,
			errWrapped: ErrIPEmpty,
			errMessage: "IP address is empty",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(
				func(w http.ResponseWriter, r *http.Request) {
					if testCase.noRequest {
						t.Error("unexpected request")
					}
					assert.Equal(t, http.MethodGet, r.Method)
					assert.Equal(t, "/nic/update", r.URL.Path)
					assert.Equal(t, testCase.hostname, r.URL.Query().Get("hostname"))
					assert.Equal(t, testCase.ip, r.URL.Query().Get("myip"))
					assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
					username, password, ok := r.BasicAuth()
					assert.True(t, ok)
					assert.Equal(t, "user", username)
					assert.Equal(t, "pass", password)
					w.WriteHeader(testCase.status)
					_, _ = w.Write([]byte(testCase.body))
				}))
			t.Cleanup(server.Close)

			client := New(server.Client(), server.URL+"/nic/update")

			message, err := client.Update(context.Background(),
				testCase.hostname, "user", "pass", testCase.ip)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
			assert.Equal(t, testCase.message, message)
		})
	}
}

func Test_Client_Update_transportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := New(&http.Client{}, url)

	message, err := client.Update(context.Background(),
		"home.example.com", "user", "pass", "1.2.3.4")

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrBadHTTPStatus))
	assert.Empty(t, message)
}
