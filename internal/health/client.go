package health

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

type Client struct {
	*http.Client
}

func NewClient() *Client {
	const timeout = 5 * time.Second
	return &Client{
		Client: &http.Client{Timeout: timeout},
	}
}

var ErrUnhealthy = errors.New("program is unhealthy")

// Query sends an HTTP request to the other instance of
// the program, and to its internal healthcheck server.
func (c *Client) Query(ctx context.Context, listeningAddress string) error {
	_, port, err := net.SplitHostPort(listeningAddress)
	if err != nil {
		return fmt.Errorf("splitting host and port from address: %w", err)
	}

	url := "http://127.0.0.1:" + port
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	response, err := c.Do(request)
	if err != nil {
		return fmt.Errorf("querying health server: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusOK {
		return nil
	}

	b, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}
	return fmt.Errorf("%w: %s", ErrUnhealthy, strings.TrimSpace(string(b)))
}
