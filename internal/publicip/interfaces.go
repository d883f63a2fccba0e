package publicip

import (
	"context"
	"net/netip"
	"time"

	"github.com/miekg/dns"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . DNSClient,IPFetcher

// DNSClient is the DNS client interface used by the DNS fetcher,
// implemented by *dns.Client.
type DNSClient interface {
	ExchangeContext(ctx context.Context, m *dns.Msg, address string) (
		r *dns.Msg, rtt time.Duration, err error)
}

type IPFetcher interface {
	IP(ctx context.Context) (ip netip.Addr, err error)
}
