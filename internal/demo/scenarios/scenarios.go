package scenarios

import "github.com/zhubert/planboard/internal/demo"

// All returns the built-in scenarios in display order.
func All() []*demo.Scenario {
	return []*demo.Scenario{
		Overview,
		Dismiss,
	}
}

// Get returns a copy of the scenario with the given name, or nil. Callers
// may change its size without affecting the built-in.
func Get(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			c := *s
			return &c
		}
	}
	return nil
}
