// Package metrics provides a counter plugin that satisfies the registry
// contract without embedding BasePlugin. It also declares plain constants,
// variables, and functions, so predicate walks see every declaration kind.
package metrics

import (
	"errors"
	"sync"

	"pluginscan/plugins/shared"
)

// FlushInterval is the default seconds between counter flushes.
const FlushInterval = 30

// Enabled toggles metric collection globally.
var Enabled = true

// Counter counts named events. It implements registry.Plugin through its own
// methods rather than by embedding.
type Counter struct {
	mu   sync.Mutex
	name string
	hits map[string]int
}

// Name returns the plugin name.
func (c *Counter) Name() string { return c.name }

// Init requires a "name" setting.
func (c *Counter) Init(cfg map[string]string) error {
	merged := shared.MergeConfig(shared.DefaultConfig, cfg)
	if merged["name"] == "" {
		return errors.New("counter requires a name")
	}

	c.name = merged["name"]
	c.hits = make(map[string]int)

	return nil
}

// Inc increments the named event counter.
func (c *Counter) Inc(event string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hits[event]++
}

// Total returns the sum of all event counts.
func Total(c *Counter) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	sum := 0
	for _, n := range c.hits {
		sum += n
	}

	return sum
}
