package publicip

import (
	"context"
	"errors"
	"net/netip"
)

// Fetcher fetches the public IP address of the host,
// cycling through its enabled sub-fetchers.
type Fetcher struct {
	fetchers []IPFetcher
	// Cycling effect if both are enabled
	counter *uint32 // 32 bit for 32 bit systems
}

var ErrNoFetchTypeSpecified = errors.New("at least one fetcher type must be specified")

func NewFetcher(httpSettings HTTPSettings, dnsSettings DNSSettings) (
	fetcher *Fetcher, err error) {
	fetcher = &Fetcher{
		counter: new(uint32),
	}

	if httpSettings.Enabled {
		fetcher.fetchers = append(fetcher.fetchers,
			newHTTPFetcher(httpSettings.Client, httpSettings.URL))
	}

	if dnsSettings.Enabled {
		subFetcher, err := newDNSFetcher(dnsSettings.Client, dnsSettings.Providers)
		if err != nil {
			return nil, err
		}
		fetcher.fetchers = append(fetcher.fetchers, subFetcher)
	}

	if len(fetcher.fetchers) == 0 {
		return nil, ErrNoFetchTypeSpecified
	}

	return fetcher, nil
}

func (f *Fetcher) IP(ctx context.Context) (ip netip.Addr, err error) {
	return f.getSubFetcher().IP(ctx)
}
