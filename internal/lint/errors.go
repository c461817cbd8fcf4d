package lint

import (
	"fmt"
)

// ConfigError reports a problem with the rule configuration: an unknown rule
// id, a duplicate registration, or an unparsable severity. Config errors are
// non-fatal; the engine proceeds with the remaining valid rules and the host
// reports the errors as warnings.
type ConfigError struct {
	RuleID string
	Reason string
}

func (e ConfigError) Error() string {
	if e.RuleID == "" {
		return fmt.Sprintf("lint config: %s", e.Reason)
	}
	return fmt.Sprintf("lint config: rule %q: %s", e.RuleID, e.Reason)
}
