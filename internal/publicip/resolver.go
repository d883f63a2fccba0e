package publicip

import (
	"context"
	"errors"
	"fmt"

	"github.com/qdm12/dyndns-scheduler/internal/models"
)

// Resolver determines the IP address to publish for an entry.
type Resolver struct {
	fetcher IPFetcher
}

func NewResolver(fetcher IPFetcher) *Resolver {
	return &Resolver{
		fetcher: fetcher,
	}
}

var (
	ErrManualIPEmpty = errors.New("manual IP address is empty")
	ErrIPModeUnknown = errors.New("IP mode is unknown")
)

// Resolve returns the manual IP address verbatim in manual mode,
// and the public IP address of the host in auto detect mode.
func (r *Resolver) Resolve(ctx context.Context, request models.IPRequest) (
	ip string, err error) {
	switch request.Mode {
	case models.Manual:
		if request.ManualIP == "" {
			return "", fmt.Errorf("%w", ErrManualIPEmpty)
		}
		return request.ManualIP, nil
	case models.AutoDetect:
		publicIP, err := r.fetcher.IP(ctx)
		if err != nil {
			return "", fmt.Errorf("fetching public IP address: %w", err)
		}
		return publicIP.String(), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrIPModeUnknown, request.Mode)
	}
}
