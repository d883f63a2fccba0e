package publicip

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/netip"
	"strings"
)

type httpFetcher struct {
	client *http.Client
	url    string
}

func newHTTPFetcher(client *http.Client, url string) *httpFetcher {
	return &httpFetcher{
		client: client,
		url:    url,
	}
}

var (
	ErrBadHTTPStatus = errors.New("bad HTTP status")
	ErrIPMalformed   = errors.New("IP address malformed")
)

func (f *httpFetcher) IP(ctx context.Context) (publicIP netip.Addr, err error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return publicIP, fmt.Errorf("creating request: %w", err)
	}

	response, err := f.client.Do(request)
	if err != nil {
		return publicIP, err
	}
	defer response.Body.Close()

	b, err := io.ReadAll(response.Body)
	if err != nil {
		return publicIP, fmt.Errorf("reading response body: %w", err)
	}

	s := strings.TrimSpace(string(b))
	if response.StatusCode != http.StatusOK {
		return publicIP, fmt.Errorf("%w: %d %s: %s",
			ErrBadHTTPStatus, response.StatusCode,
			http.StatusText(response.StatusCode), s)
	}

	publicIP, err = netip.ParseAddr(s)
	if err != nil {
		return publicIP, fmt.Errorf("%w: from %q: %w", ErrIPMalformed, f.url, err)
	}

	return publicIP.Unmap(), nil
}
