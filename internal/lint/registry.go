package lint

// Registry holds the ordered, deduplicated-by-id set of rules enabled for a
// session. Registration order is match order: the walker offers every node
// to the rules in the order they were registered.
//
// A Registry is an explicit value passed through the session; there is no
// process-wide rule store.
type Registry struct {
	rules []Rule
	byID  map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]int)}
}

// Register appends a rule. Registering a second rule with the same id is a
// ConfigError and leaves the registry unchanged.
func (r *Registry) Register(rule Rule) error {
	id := rule.ID()
	if _, dup := r.byID[id]; dup {
		return ConfigError{RuleID: id, Reason: "registered twice"}
	}
	r.byID[id] = len(r.rules)
	r.rules = append(r.rules, rule)
	return nil
}

// Rules returns the registered rules in registration order.
// Callers must not modify the returned slice.
func (r *Registry) Rules() []Rule {
	return r.rules
}

// Get returns the registered rule with the given id.
func (r *Registry) Get(id string) (Rule, bool) {
	i, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	return r.rules[i], true
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	return len(r.rules)
}
