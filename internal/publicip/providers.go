package publicip

import (
	"errors"
	"fmt"

	"github.com/miekg/dns"
)

type DNSProvider string

const (
	Cloudflare DNSProvider = "cloudflare"
	OpenDNS    DNSProvider = "opendns"
)

func ListDNSProviders() []DNSProvider {
	return []DNSProvider{
		Cloudflare,
		OpenDNS,
	}
}

var ErrUnknownDNSProvider = errors.New("unknown public IP echo DNS provider")

func ValidateDNSProvider(provider DNSProvider) error {
	for _, possible := range ListDNSProviders() {
		if provider == possible {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownDNSProvider, provider)
}

type dnsProviderData struct {
	address string
	fqdn    string
	class   dns.Class
	qType   dns.Type
}

func (p DNSProvider) data() dnsProviderData {
	switch p {
	case Cloudflare:
		return dnsProviderData{
			address: "1.1.1.1:53",
			fqdn:    "whoami.cloudflare.",
			class:   dns.ClassCHAOS,
			qType:   dns.Type(dns.TypeTXT),
		}
	case OpenDNS:
		return dnsProviderData{
			address: "208.67.222.222:53",
			fqdn:    "myip.opendns.com.",
			class:   dns.ClassINET,
			qType:   dns.Type(dns.TypeA),
		}
	}
	panic(`provider unknown: "` + string(p) + `"`)
}
