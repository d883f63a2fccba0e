package config

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/qdm12/dyndns-scheduler/internal/publicip"
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type PubIP struct {
	HTTPURL      string
	DNSEnabled   *bool
	DNSProviders []publicip.DNSProvider
}

func (p *PubIP) setDefaults() {
	p.HTTPURL = gosettings.DefaultComparable(p.HTTPURL, "https://api.ipify.org")
	p.DNSEnabled = gosettings.DefaultPointer(p.DNSEnabled, false)
	p.DNSProviders = gosettings.DefaultSlice(p.DNSProviders, publicip.ListDNSProviders())
}

var ErrURLSchemeNotValid = errors.New("URL scheme is not valid")

func (p PubIP) Validate() (err error) {
	err = validateHTTPURL(p.HTTPURL)
	if err != nil {
		return fmt.Errorf("HTTP URL: %w", err)
	}

	for _, provider := range p.DNSProviders {
		err = publicip.ValidateDNSProvider(provider)
		if err != nil {
			return err
		}
	}

	return nil
}

func validateHTTPURL(s string) (err error) {
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: %q in %s", ErrURLSchemeNotValid, u.Scheme, s)
	}
	return nil
}

func (p PubIP) String() string {
	return p.toLinesNode().String()
}

func (p PubIP) toLinesNode() *gotree.Node {
	node := gotree.New("Public IP fetching")
	node.Appendf("HTTP URL: %s", p.HTTPURL)
	if !*p.DNSEnabled {
		node.Appendf("DNS: disabled")
		return node
	}
	dnsNode := node.Appendf("DNS providers")
	for _, provider := range p.DNSProviders {
		dnsNode.Appendf(string(provider))
	}
	return node
}

func (p *PubIP) read(r *reader.Reader) (err error) {
	p.HTTPURL = r.String("PUBLICIP_HTTP_URL", reader.ForceLowercase(false))

	p.DNSEnabled, err = r.BoolPtr("PUBLICIP_DNS_ENABLED")
	if err != nil {
		return err
	}

	providers := r.CSV("PUBLICIP_DNS_PROVIDERS")
	if len(providers) > 0 {
		p.DNSProviders = make([]publicip.DNSProvider, len(providers))
		for i, provider := range providers {
			p.DNSProviders[i] = publicip.DNSProvider(strings.TrimSpace(provider))
		}
	}

	return nil
}

// HTTPSettings returns the HTTP fetcher settings for the given client.
func (p PubIP) HTTPSettings(client *http.Client) publicip.HTTPSettings {
	return publicip.HTTPSettings{
		Enabled: true,
		Client:  client,
		URL:     p.HTTPURL,
	}
}

// DNSSettings returns the DNS fetcher settings for the given client.
func (p PubIP) DNSSettings(client publicip.DNSClient) publicip.DNSSettings {
	return publicip.DNSSettings{
		Enabled:   *p.DNSEnabled,
		Client:    client,
		Providers: p.DNSProviders,
	}
}
