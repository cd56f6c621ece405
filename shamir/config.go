package shamir

import (
	"fmt"
	"math/big"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/izouxv/gosss/field"
)

// RationalField is the Config.Field value that selects exact rational
// arithmetic instead of a registered prime.
const RationalField = "rational"

// Config describes a scheme declaratively:
//
//	field: secp256k1
//	num_keyholders: 6
//	min_group: 3
type Config struct {
	Params `yaml:",inline"`

	// Field is a registered prime name or "rational". Empty selects field.DefaultPrime.
	Field string `json:"field" yaml:"field"`
	// CoefficientCeiling bounds random coefficients of the rational field.
	CoefficientCeiling int64 `json:"coefficient_ceiling,omitempty" yaml:"coefficient_ceiling,omitempty"`
	// Signed allows negative secrets in a prime field.
	Signed bool `json:"signed,omitempty" yaml:"signed,omitempty"`
}

// ParseConfig parses and validates a YAML scheme description.
func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the YAML file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// Validate fills in the default field and checks the configuration.
func (c *Config) Validate() error {
	if c.Field == "" {
		c.Field = field.DefaultPrime
	}
	if err := c.Params.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if c.Field == RationalField {
		if c.Signed {
			return fmt.Errorf("%w: signed secrets need a prime field", ErrInvalidConfig)
		}
		if c.CoefficientCeiling < 0 {
			return fmt.Errorf("%w: coefficient_ceiling must not be negative", ErrInvalidConfig)
		}
		return nil
	}

	if _, err := field.Lookup(c.Field); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.CoefficientCeiling != 0 {
		return fmt.Errorf("%w: coefficient_ceiling only applies to the rational field", ErrInvalidConfig)
	}
	return nil
}

// Options translates the config into scheme options.
func (c *Config) Options() []Option {
	var opts []Option
	if c.Signed {
		opts = append(opts, WithSigned())
	}
	return opts
}

// NewFromConfig builds a scheme from cfg. opts are applied after the
// config's own options. secret may be nil for a reconstruction-only scheme.
func NewFromConfig(cfg *Config, secret *big.Int, opts ...Option) (Dealer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	all := append(cfg.Options(), opts...)

	if cfg.Field == RationalField {
		s, err := New[*big.Rat](field.NewRational(cfg.CoefficientCeiling), secret, cfg.NumKeyholders, cfg.MinGroup, all...)
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	f, err := field.Lookup(cfg.Field)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	s, err := New[*big.Int](f, secret, cfg.NumKeyholders, cfg.MinGroup, all...)
	if err != nil {
		return nil, err
	}
	return s, nil
}
