// Package healthchecksio reports the health of the program
// to healthchecks.io.
package healthchecksio

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// New creates a new healthchecks.io client.
// If passed an empty uuid string, it acts as no-op implementation.
func New(httpClient *http.Client, baseURL, uuid string) *Client {
	return &Client{
		client:  resty.NewWithClient(httpClient),
		baseURL: baseURL,
		uuid:    uuid,
	}
}

type Client struct {
	client  *resty.Client
	baseURL string
	uuid    string
}

var ErrStatusCode = errors.New("bad status code")

type State string

const (
	Ok    State = "ok"
	Start State = "start"
	Fail  State = "fail"
	Exit0 State = "0"
	Exit1 State = "1"
)

// Ping sends the state to healthchecks.io, with an optional
// message shown in the healthchecks.io event log.
func (c *Client) Ping(ctx context.Context, state State, message string) (err error) {
	if c.uuid == "" {
		return nil
	}

	url := c.baseURL + "/" + c.uuid
	if state != Ok {
		url += "/" + string(state)
	}

	request := c.client.R().SetContext(ctx)
	var response *resty.Response
	if message == "" {
		response, err = request.Get(url)
	} else {
		response, err = request.SetBody(message).Post(url)
	}
	if err != nil {
		return fmt.Errorf("doing http request: %w", err)
	}

	if response.StatusCode() != http.StatusOK {
		return fmt.Errorf("%w: %s", ErrStatusCode, response.Status())
	}

	return nil
}
