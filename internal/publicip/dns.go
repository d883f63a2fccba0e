package publicip

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"sync/atomic"

	"github.com/miekg/dns"
)

type dnsFetcher struct {
	client    DNSClient
	providers []DNSProvider
	counter   *uint32
}

func newDNSFetcher(client DNSClient, providers []DNSProvider) (
	fetcher *dnsFetcher, err error) {
	if len(providers) == 0 {
		providers = ListDNSProviders()
	}
	for _, provider := range providers {
		err = ValidateDNSProvider(provider)
		if err != nil {
			return nil, err
		}
	}
	return &dnsFetcher{
		client:    client,
		providers: providers,
		counter:   new(uint32),
	}, nil
}

func (f *dnsFetcher) IP(ctx context.Context) (publicIP netip.Addr, err error) {
	index := int(atomic.AddUint32(f.counter, 1)-1) % len(f.providers)
	provider := f.providers[index]
	publicIP, err = fetchDNS(ctx, f.client, provider.data())
	if err != nil {
		return publicIP, fmt.Errorf("querying %s: %w", provider, err)
	}
	return publicIP, nil
}

var (
	ErrDNSResponseCode    = errors.New("DNS response code is not success")
	ErrAnswerNotReceived  = errors.New("response answer not received")
	ErrAnswerTypeNotValid = errors.New("answer type is not expected")
	ErrRecordEmpty        = errors.New("record is empty")
	ErrTooManyTXTRecords  = errors.New("too many TXT records")
)

func fetchDNS(ctx context.Context, client DNSClient, providerData dnsProviderData) (
	publicIP netip.Addr, err error) {
	message := &dns.Msg{
		MsgHdr: dns.MsgHdr{
			Opcode:           dns.OpcodeQuery,
			RecursionDesired: true,
		},
		Question: []dns.Question{
			{
				Name:   providerData.fqdn,
				Qtype:  uint16(providerData.qType),
				Qclass: uint16(providerData.class),
			},
		},
	}

	response, _, err := client.ExchangeContext(ctx, message, providerData.address)
	if err != nil {
		return publicIP, err
	}

	if response.Rcode != dns.RcodeSuccess {
		return publicIP, fmt.Errorf("%w: %s", ErrDNSResponseCode,
			dns.RcodeToString[response.Rcode])
	}

	if len(response.Answer) == 0 {
		return publicIP, fmt.Errorf("%w", ErrAnswerNotReceived)
	}
	answer := response.Answer[0]

	switch providerData.qType {
	case dns.Type(dns.TypeTXT):
		publicIP, err = handleTXTAnswer(answer)
		if err != nil {
			return publicIP, fmt.Errorf("handling TXT answer: %w", err)
		}
	default:
		publicIP, err = handleAAnswer(answer)
		if err != nil {
			return publicIP, fmt.Errorf("handling A answer: %w", err)
		}
	}
	return publicIP, nil
}

func handleTXTAnswer(answer dns.RR) (publicIP netip.Addr, err error) {
	answerTXT, ok := answer.(*dns.TXT)
	if !ok {
		return publicIP, fmt.Errorf("%w: %T instead of *dns.TXT",
			ErrAnswerTypeNotValid, answer)
	}

	switch len(answerTXT.Txt) {
	case 0:
		return publicIP, fmt.Errorf("%w", ErrRecordEmpty)
	case 1:
	default:
		return publicIP, fmt.Errorf("%w: %d instead of 1",
			ErrTooManyTXTRecords, len(answerTXT.Txt))
	}

	publicIP, err = netip.ParseAddr(answerTXT.Txt[0])
	if err != nil {
		return publicIP, fmt.Errorf("%w: %w", ErrIPMalformed, err)
	}
	return publicIP.Unmap(), nil
}

func handleAAnswer(answer dns.RR) (publicIP netip.Addr, err error) {
	answerA, ok := answer.(*dns.A)
	if !ok {
		return publicIP, fmt.Errorf("%w: %T instead of *dns.A",
			ErrAnswerTypeNotValid, answer)
	}

	publicIP, ok = netip.AddrFromSlice(answerA.A)
	if !ok {
		return publicIP, fmt.Errorf("%w", ErrRecordEmpty)
	}
	return publicIP.Unmap(), nil
}
