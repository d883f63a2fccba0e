package shoutrrr

import (
	"fmt"
	"net/url"

	"github.com/containrrr/shoutrrr"
	"github.com/containrrr/shoutrrr/pkg/router"
)

// Client sends notifications to all the configured Shoutrrr
// addresses. With no address, it does nothing.
type Client struct {
	serviceRouter *router.ServiceRouter
	serviceNames  []string
	defaultTitle  string
	logger        Erroer
}

func New(settings Settings) (client *Client, err error) {
	settings.setDefaults()
	err = settings.validate()
	if err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	addresses := make([]string, len(settings.Addresses))
	serviceNames := make([]string, len(settings.Addresses))
	for i, address := range settings.Addresses {
		u, err := url.Parse(address)
		if err != nil {
			return nil, fmt.Errorf("parsing address %d: %w", i+1, err)
		}
		serviceNames[i] = u.Scheme
		addresses[i] = addDefaultTitle(u, settings.DefaultTitle)
	}

	serviceRouter, err := shoutrrr.CreateSender(addresses...)
	if err != nil {
		return nil, fmt.Errorf("creating service router: %w", err)
	}

	return &Client{
		serviceRouter: serviceRouter,
		serviceNames:  serviceNames,
		defaultTitle:  settings.DefaultTitle,
		logger:        settings.Logger,
	}, nil
}

func (c *Client) Notify(message string) {
	if len(c.serviceNames) == 0 {
		return
	}

	errs := c.serviceRouter.Send(message, nil)
	for i, err := range errs {
		if err != nil {
			c.logger.Error("notifying with " + c.serviceNames[i] + ": " + err.Error())
		}
	}
}

// addDefaultTitle sets the title query parameter of the
// address URL if it is not already present.
func addDefaultTitle(u *url.URL, defaultTitle string) (updatedAddress string) {
	urlValues := u.Query()
	if urlValues.Has("title") {
		return u.String()
	}

	urlValues.Set("title", defaultTitle)
	u.RawQuery = urlValues.Encode()
	return u.String()
}
