package config

import (
	"fmt"
	"os"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosettings/validate"
	"github.com/qdm12/gotree"
)

type Health struct {
	// ServerAddress is the listening address of the health server.
	// An empty string, set with the value "off", disables the server.
	ServerAddress         *string
	HealthchecksioBaseURL string
	// HealthchecksioUUID is the healthchecks.io check identifier.
	// An empty string disables pinging healthchecks.io.
	HealthchecksioUUID   *string
	HealthchecksioPeriod time.Duration
}

func (h *Health) SetDefaults() {
	h.ServerAddress = gosettings.DefaultPointer(h.ServerAddress, "127.0.0.1:9999")
	h.HealthchecksioBaseURL = gosettings.DefaultComparable(h.HealthchecksioBaseURL,
		"https://hc-ping.com")
	h.HealthchecksioUUID = gosettings.DefaultPointer(h.HealthchecksioUUID, "")
	const defaultPeriod = time.Minute
	h.HealthchecksioPeriod = gosettings.DefaultComparable(h.HealthchecksioPeriod, defaultPeriod)
}

func (h Health) Validate() (err error) {
	if *h.ServerAddress != "" {
		err = validate.ListeningAddress(*h.ServerAddress, os.Getuid())
		if err != nil {
			return fmt.Errorf("server listening address: %w", err)
		}
	}

	err = validateHTTPURL(h.HealthchecksioBaseURL)
	if err != nil {
		return fmt.Errorf("healthchecks.io base URL: %w", err)
	}

	const minPeriod = time.Second
	if h.HealthchecksioPeriod < minPeriod {
		return fmt.Errorf("%w: healthchecks.io period %s must be at least %s",
			ErrPeriodTooLow, h.HealthchecksioPeriod, minPeriod)
	}

	return nil
}

func (h Health) String() string {
	return h.toLinesNode().String()
}

func (h Health) toLinesNode() *gotree.Node {
	node := gotree.New("Health")
	if *h.ServerAddress == "" {
		node.Appendf("Server: disabled")
	} else {
		node.Appendf("Server listening address: %s", *h.ServerAddress)
	}

	if *h.HealthchecksioUUID == "" {
		node.Appendf("Healthchecks.io: disabled")
		return node
	}
	hioNode := node.Appendf("Healthchecks.io")
	hioNode.Appendf("Base URL: %s", h.HealthchecksioBaseURL)
	hioNode.Appendf("UUID: [set]")
	hioNode.Appendf("Period: %s", h.HealthchecksioPeriod)
	return node
}

// Read reads the health settings from the reader. It is
// also used by the healthcheck sub-command.
func (h *Health) Read(r *reader.Reader) (err error) {
	h.ServerAddress = r.Get("HEALTH_SERVER_ADDRESS")
	if h.ServerAddress != nil && *h.ServerAddress == "off" {
		h.ServerAddress = new(string)
	}

	h.HealthchecksioBaseURL = r.String("HEALTHCHECKSIO_BASE_URL", reader.ForceLowercase(false))
	h.HealthchecksioUUID = r.Get("HEALTHCHECKSIO_UUID")
	h.HealthchecksioPeriod, err = r.Duration("HEALTHCHECKSIO_PERIOD")
	return err
}
