package config

import (
	"fmt"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Provider struct {
	UpdateURL string
}

func (p *Provider) setDefaults() {
	p.UpdateURL = gosettings.DefaultComparable(p.UpdateURL,
		"https://dyndns.strato.com/nic/update")
}

func (p Provider) Validate() (err error) {
	err = validateHTTPURL(p.UpdateURL)
	if err != nil {
		return fmt.Errorf("update URL: %w", err)
	}
	return nil
}

func (p Provider) String() string {
	return p.toLinesNode().String()
}

func (p Provider) toLinesNode() *gotree.Node {
	node := gotree.New("DNS provider")
	node.Appendf("Update URL: %s", p.UpdateURL)
	return node
}

func (p *Provider) read(r *reader.Reader) {
	p.UpdateURL = r.String("PROVIDER_URL", reader.ForceLowercase(false))
}
