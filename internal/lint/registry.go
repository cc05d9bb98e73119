package lint

import (
	"fmt"
	"sync"
)

var (
	mu       sync.RWMutex
	registry []Rule
	names    = make(map[string]struct{})
)

// Register adds a rule to the process-wide registry. It panics on an empty
// or duplicate name or a malformed check shape, so a bad registration fails
// at startup rather than mid-run. Rules register themselves from init
// functions in the checks package.
func Register(r Rule) {
	mu.Lock()
	defer mu.Unlock()
	if r.Name == "" {
		panic("lint: rule with empty name")
	}
	if (r.Check == nil) == (r.CheckEntry == nil) {
		panic(fmt.Sprintf("lint: rule %s must set exactly one of Check and CheckEntry", r.Name))
	}
	if _, exists := names[r.Name]; exists {
		panic(fmt.Sprintf("rule %s already registered", r.Name))
	}
	names[r.Name] = struct{}{}
	registry = append(registry, r)
}

// All returns every registered rule in registration order.
func All() []Rule {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Rule, len(registry))
	copy(out, registry)
	return out
}
