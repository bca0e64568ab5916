package config

import (
	"github.com/kbukum/utilkit/logger"
	"github.com/kbukum/utilkit/util"
	"github.com/kbukum/utilkit/validation"
)

// ServiceConfig contains the configuration shared by utilkit commands.
//
// Example config.yml:
//
//	name: utilkit
//	environment: production
//	logging:
//	  level: warn
//	  prefix: "[APP]"
//	format:
//	  trim: true
type ServiceConfig struct {
	Name        string             `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string             `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Debug       bool               `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config      `yaml:"logging" mapstructure:"logging"`
	Format      util.FormatOptions `yaml:"format" mapstructure:"format"`
}

// ApplyDefaults applies default values to the configuration.
func (c *ServiceConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Debug && c.Logging.Level == "" {
		c.Logging.Level = "debug"
	}
	c.Logging.ApplyDefaults()
}

// Validate validates the configuration. Call ApplyDefaults first.
func (c *ServiceConfig) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	return c.Logging.Validate()
}

// Load fills cfg from files and environment, applies defaults and validates.
func Load(serviceName string, cfg *ServiceConfig, opts ...LoaderOption) error {
	if err := LoadConfig(serviceName, cfg, opts...); err != nil {
		return err
	}
	cfg.Name = util.Coalesce(cfg.Name, serviceName)
	cfg.ApplyDefaults()
	return cfg.Validate()
}
