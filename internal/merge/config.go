package merge

import (
	"fmt"
	"runtime"
)

// Policy selects which source's purpose wins when sources disagree.
type Policy string

const (
	PolicyFirst Policy = "FIRST"
	PolicyLast  Policy = "LAST"
)

// IsValid returns true if the policy is a recognized value.
func (p Policy) IsValid() bool {
	return p == PolicyFirst || p == PolicyLast
}

// Config holds merge settings.
type Config struct {
	// PurposePolicy resolves disagreeing purposes.
	PurposePolicy Policy `yaml:"purpose_policy"`
	// TimeFormat is the output format of merged reference dates. When empty,
	// the first source's format is used.
	TimeFormat string `yaml:"time_format"`
	// Workers bounds concurrent field merges; <= 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
}

// DefaultConfig returns the default merge configuration.
func DefaultConfig() Config {
	return Config{
		PurposePolicy: PolicyFirst,
		TimeFormat:    "",
		Workers:       runtime.GOMAXPROCS(0),
	}
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	if !c.PurposePolicy.IsValid() {
		return fmt.Errorf("invalid purpose policy %q (expected FIRST or LAST)", c.PurposePolicy)
	}

	return nil
}
