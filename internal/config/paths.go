package config

import (
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Paths struct {
	StateFile      *string
	WatchStateFile *bool
}

func (p *Paths) setDefaults() {
	p.StateFile = gosettings.DefaultPointer(p.StateFile, "./data/dyndns_config.json")
	p.WatchStateFile = gosettings.DefaultPointer(p.WatchStateFile, true)
}

func (p Paths) Validate() (err error) {
	return nil
}

func (p Paths) String() string {
	return p.toLinesNode().String()
}

func (p Paths) toLinesNode() *gotree.Node {
	node := gotree.New("Paths")
	node.Appendf("State file: %s", *p.StateFile)
	node.Appendf("Watch state file: %s", boolToYesNo(*p.WatchStateFile))
	return node
}

func (p *Paths) read(r *reader.Reader, warner Warner) (err error) {
	// Retro-compatibility
	if r.Get("CONFIG_FILE") != nil {
		handleDeprecated(warner, "CONFIG_FILE", "STATE_FILE")
		p.StateFile = r.Get("CONFIG_FILE", reader.ForceLowercase(false))
	}
	stateFile := r.Get("STATE_FILE", reader.ForceLowercase(false))
	if stateFile != nil {
		p.StateFile = stateFile
	}

	p.WatchStateFile, err = r.BoolPtr("WATCH_STATE_FILE")
	return err
}
