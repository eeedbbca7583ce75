// Package registry defines the plugin contract the sample tree implements.
// It doubles as the live fixture for pluginscan's own tests.
package registry

// Plugin is the contract every plugin implements.
type Plugin interface {
	// Name returns the unique plugin name.
	Name() string
	// Init configures the plugin before first use.
	Init(cfg map[string]string) error
}

// BasePlugin provides the wiring shared by concrete plugins. Plugins embed it
// and override what they need.
type BasePlugin struct {
	PluginName string
}

// Name returns the configured plugin name.
func (b *BasePlugin) Name() string { return b.PluginName }

// Init accepts any configuration. Concrete plugins override it when they have
// required settings.
func (b *BasePlugin) Init(cfg map[string]string) error { return nil }

// DefaultNamespace is the registry namespace plugins register under when no
// explicit namespace is configured.
const DefaultNamespace = "default"
