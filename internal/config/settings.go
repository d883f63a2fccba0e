package config

import (
	"fmt"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Config struct {
	Client   Client
	Update   Update
	PubIP    PubIP
	Provider Provider
	Paths    Paths
	Server   Server
	Health   Health
	Backup   Backup
	Logger   Logger
	Shoutrrr Shoutrrr
}

func (c *Config) SetDefaults() {
	c.Client.setDefaults()
	c.Update.setDefaults()
	c.PubIP.setDefaults()
	c.Provider.setDefaults()
	c.Paths.setDefaults()
	c.Server.setDefaults()
	c.Health.SetDefaults()
	c.Backup.setDefaults()
	c.Logger.setDefaults()
	c.Shoutrrr.setDefaults()
}

func (c Config) Validate() (err error) {
	type validator interface {
		Validate() (err error)
	}
	toValidate := []struct {
		name      string
		validator validator
	}{
		{"client", &c.Client},
		{"update", &c.Update},
		{"public ip", &c.PubIP},
		{"provider", &c.Provider},
		{"paths", &c.Paths},
		{"server", &c.Server},
		{"health", &c.Health},
		{"backup", &c.Backup},
		{"logger", &c.Logger},
		{"shoutrrr", &c.Shoutrrr},
	}

	for _, v := range toValidate {
		err = v.validator.Validate()
		if err != nil {
			return fmt.Errorf("%s settings: %w", v.name, err)
		}
	}

	return nil
}

func (c Config) String() string {
	return c.toLinesNode().String()
}

func (c Config) toLinesNode() *gotree.Node {
	node := gotree.New("Settings summary:")
	node.AppendNode(c.Client.toLinesNode())
	node.AppendNode(c.Update.toLinesNode())
	node.AppendNode(c.PubIP.toLinesNode())
	node.AppendNode(c.Provider.toLinesNode())
	node.AppendNode(c.Paths.toLinesNode())
	node.AppendNode(c.Server.toLinesNode())
	node.AppendNode(c.Health.toLinesNode())
	node.AppendNode(c.Backup.toLinesNode())
	node.AppendNode(c.Logger.toLinesNode())
	node.AppendNode(c.Shoutrrr.ToLinesNode())
	return node
}

func (c *Config) Read(reader *reader.Reader,
	warner Warner) (err error) {
	err = c.Client.read(reader)
	if err != nil {
		return fmt.Errorf("reading client settings: %w", err)
	}

	err = c.Update.read(reader, warner)
	if err != nil {
		return fmt.Errorf("reading update settings: %w", err)
	}

	err = c.PubIP.read(reader)
	if err != nil {
		return fmt.Errorf("reading public IP settings: %w", err)
	}

	c.Provider.read(reader)

	err = c.Paths.read(reader, warner)
	if err != nil {
		return fmt.Errorf("reading paths settings: %w", err)
	}

	err = c.Server.read(reader)
	if err != nil {
		return fmt.Errorf("reading server settings: %w", err)
	}

	err = c.Health.Read(reader)
	if err != nil {
		return fmt.Errorf("reading health settings: %w", err)
	}

	err = c.Backup.read(reader)
	if err != nil {
		return fmt.Errorf("reading backup settings: %w", err)
	}

	err = c.Logger.read(reader)
	if err != nil {
		return fmt.Errorf("reading logger settings: %w", err)
	}

	c.Shoutrrr.read(reader)

	return nil
}
