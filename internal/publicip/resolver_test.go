package publicip

import (
	"context"
	"errors"
	"net/netip"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/qdm12/dyndns-scheduler/internal/models"
	"github.com/qdm12/dyndns-scheduler/internal/publicip/mock_publicip"
	"github.com/stretchr/testify/assert"
)

func Test_Resolver_Resolve(t *testing.T) {
	t.Parallel()

	errTest := errors.New("test error")

	testCases := map[string]struct {
		request    models.IPRequest
		fetchCall  bool
		fetchIP    netip.Addr
		fetchErr   error
		ip         string
		errWrapped error
		errMessage string
	}{
		"manual": {
			request: models.IPRequest{Mode: models.Manual, ManualIP: "1.2.3.4"},
			ip:      "1.2.3.4",
		},
		"manual_verbatim": {
			request: models.IPRequest{Mode: models.Manual, ManualIP: "999.1"},
			ip:      "999.1",
		},
		"manual_empty": {
			request:    models.IPRequest{Mode: models.Manual},
			errWrapped: ErrManualIPEmpty,
			errMessage: "manual IP address is empty",
		},
		"manual_ignores_fetcher": {
			request: models.IPRequest{Mode: models.Manual, ManualIP: "10.0.0.1"},
			ip:      "10.0.0.1",
		},
		"auto_detect": {
			request:   models.IPRequest{Mode: models.AutoDetect, ManualIP: "10.0.0.1"},
			fetchCall: true,
			fetchIP:   netip.AddrFrom4([4]byte{5, 6, 7, 8}),
			ip:        "5.6.7.8",
		},
		"auto_detect_error": {
			request:    models.IPRequest{Mode: models.AutoDetect},
			fetchCall:  true,
			fetchErr:   errTest,
			errWrapped: errTest,
			errMessage: "fetching public IP address: test error",
		},
		"unknown_mode": {
			request:    models.IPRequest{Mode: 9},
			errWrapped: ErrIPModeUnknown,
			errMessage: "IP mode is unknown: unknown",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			ctx := context.Background()
			fetcher := mock_publicip.NewMockIPFetcher(ctrl)
			if testCase.fetchCall {
				fetcher.EXPECT().IP(ctx).Return(testCase.fetchIP, testCase.fetchErr)
			}
			resolver := NewResolver(fetcher)

			ip, err := resolver.Resolve(ctx, testCase.request)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
			assert.Equal(t, testCase.ip, ip)
		})
	}
}

func Test_NewFetcher(t *testing.T) {
	t.Parallel()

	_, err := NewFetcher(HTTPSettings{}, DNSSettings{})
	assert.ErrorIs(t, err, ErrNoFetchTypeSpecified)

	fetcher, err := NewFetcher(HTTPSettings{Enabled: true, URL: "https://api.ipify.org"},
		DNSSettings{Enabled: true})
	assert.NoError(t, err)
	assert.Len(t, fetcher.fetchers, 2)
}
