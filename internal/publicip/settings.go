package publicip

import (
	"net/http"
)

type HTTPSettings struct {
	Enabled bool
	Client  *http.Client
	// URL is the address of the echo service returning
	// the public IP address as plain text.
	URL string
}

type DNSSettings struct {
	Enabled   bool
	Client    DNSClient
	Providers []DNSProvider
}
