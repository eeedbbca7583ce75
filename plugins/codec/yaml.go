package codec

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"pluginscan/plugins/shared"
	"pluginscan/registry"
)

// YAMLCodec encodes payloads as YAML.
type YAMLCodec struct {
	registry.BasePlugin
}

// Init rejects configurations that override the charset; YAML output is
// always UTF-8.
func (c *YAMLCodec) Init(cfg map[string]string) error {
	merged := shared.MergeConfig(shared.DefaultConfig, cfg)
	if merged["charset"] != "utf-8" {
		return fmt.Errorf("yaml codec supports only utf-8, got %q", merged["charset"])
	}

	return nil
}

// Encode marshals v as YAML.
func (c *YAMLCodec) Encode(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("yaml encode: %w", err)
	}

	return data, nil
}

// Decode unmarshals data into v.
func (c *YAMLCodec) Decode(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
