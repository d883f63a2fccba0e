// Package provider implements the dyndns2 update protocol client.
package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

const userAgent = "dyndns-scheduler"

// Client sends dyndns2 update requests to the provider update URL.
type Client struct {
	client    *resty.Client
	updateURL string
}

// New creates a dyndns2 client sending its requests to updateURL,
// for example https://dyndns.strato.com/nic/update, using the
// HTTP client given.
func New(httpClient *http.Client, updateURL string) *Client {
	client := resty.NewWithClient(httpClient).
		SetHeader("User-Agent", userAgent)
	return &Client{
		client:    client,
		updateURL: updateURL,
	}
}

var (
	ErrHostnameEmpty = errors.New("hostname is empty")
	ErrIPEmpty       = errors.New("IP address is empty")
	ErrBadHTTPStatus = errors.New("bad HTTP status")
)

// Update publishes ip for hostname. It returns the trimmed response
// body of the provider, for example "good 1.2.3.4" or "nochg 1.2.3.4".
func (c *Client) Update(ctx context.Context, hostname, username, password, ip string) (
	message string, err error) {
	switch {
	case hostname == "":
		return "", fmt.Errorf("%w", ErrHostnameEmpty)
	case ip == "":
		return "", fmt.Errorf("%w", ErrIPEmpty)
	}

	response, err := c.client.R().
		SetContext(ctx).
		SetBasicAuth(username, password).
		SetQueryParam("hostname", hostname).
		SetQueryParam("myip", ip).
		Get(c.updateURL)
	if err != nil {
		return "", err
	}

	message = strings.TrimSpace(response.String())
	if !response.IsSuccess() {
		return "", fmt.Errorf("%w: %d: %s", ErrBadHTTPStatus,
			response.StatusCode(), message)
	}

	return message, nil
}
