package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	coreconfig "github.com/selfil/selfilbot/core/config"
	"github.com/selfil/selfilbot/core/ops"
	"github.com/selfil/selfilbot/internal/flows"
)

// FlowsConfig selects between the two auto-order dialogues.
type FlowsConfig struct {
	// AutoOrder is "wizard" (multi-field draft) or "quick" (single product).
	AutoOrder string `yaml:"auto_order" envconfig:"FLOWS_AUTO_ORDER"`
}

// Config is the full bot configuration: the reusable core settings plus
// SelFil-specific sections.
type Config struct {
	coreconfig.Config `yaml:",inline"`

	Flows FlowsConfig `yaml:"flows"`
	Ops   ops.Config  `yaml:"ops"`
}

// CoreConfig returns the embedded core section for packages that only
// understand it.
func (c *Config) CoreConfig() *coreconfig.Config {
	return &c.Config
}

// Load reads YAML configuration from path, overlays environment variables and
// validates the result.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := Normalize(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize validates required fields and adjusts defaults.
func Normalize(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}
	if err := coreconfig.Normalize(&cfg.Config); err != nil {
		return err
	}

	v := strings.ToLower(strings.TrimSpace(cfg.Flows.AutoOrder))
	if v == "" {
		v = string(flows.VariantWizard)
	}
	switch flows.Variant(v) {
	case flows.VariantWizard, flows.VariantQuick:
	default:
		return fmt.Errorf("invalid flows.auto_order %q; allowed: wizard, quick", cfg.Flows.AutoOrder)
	}
	cfg.Flows.AutoOrder = v

	cfg.Ops.Normalize()
	return nil
}
