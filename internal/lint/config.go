package lint

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"

	"sglint/internal/diag"
)

// RuleConfig is the per-rule section of the configuration file.
type RuleConfig struct {
	// Enabled turns the rule on or off; nil keeps the default (on).
	Enabled *bool `toml:"enabled"`
	// Severity overrides the rule's default level ("warn" or "deny").
	Severity string `toml:"severity"`
}

// Config is the recognized lint configuration.
//
//	[rules.panic_usage]
//	severity = "deny"
//
//	[rules.missing_type]
//	enabled = false
type Config struct {
	Rules map[string]RuleConfig `toml:"rules"`
}

// LoadConfig parses a TOML configuration file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return &cfg, nil
}

// FromConfig builds the enabled rule set from the available rules and a
// configuration. Unknown rule ids and unparsable severities produce
// non-fatal ConfigErrors; the remaining valid rules stay active. A nil
// config enables every available rule at its default severity.
func FromConfig(available []Rule, cfg *Config) (*Registry, []ConfigError) {
	var errs []ConfigError
	reg := NewRegistry()

	known := make(map[string]bool, len(available))
	for _, r := range available {
		known[r.ID()] = true
	}

	if cfg != nil {
		// Report unknown ids deterministically.
		unknown := make([]string, 0)
		for id := range cfg.Rules {
			if !known[id] {
				unknown = append(unknown, id)
			}
		}
		sort.Strings(unknown)
		for _, id := range unknown {
			errs = append(errs, ConfigError{RuleID: id, Reason: "unknown rule id"})
		}
	}

	for _, r := range available {
		rule := r
		if cfg != nil {
			rc, ok := cfg.Rules[rule.ID()]
			if ok {
				if rc.Enabled != nil && !*rc.Enabled {
					continue
				}
				if rc.Severity != "" {
					sev, err := diag.ParseSeverity(rc.Severity)
					if err != nil {
						errs = append(errs, ConfigError{RuleID: rule.ID(), Reason: err.Error()})
					} else {
						rule = WithSeverity(rule, sev)
					}
				}
			}
		}
		if err := reg.Register(rule); err != nil {
			if ce, ok := err.(ConfigError); ok {
				errs = append(errs, ce)
			} else {
				errs = append(errs, ConfigError{RuleID: rule.ID(), Reason: err.Error()})
			}
		}
	}

	return reg, errs
}
