// Package codec provides payload codec plugins.
package codec

import (
	"encoding/json"
	"fmt"

	"pluginscan/plugins/shared"
	"pluginscan/registry"
)

// JSONCodec encodes payloads as JSON.
type JSONCodec struct {
	registry.BasePlugin
	Indent bool
}

// Encode marshals v, honoring the Indent setting.
func (c *JSONCodec) Encode(v any) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	if c.Indent {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return nil, fmt.Errorf("json encode: %w", err)
	}

	if len(data) > shared.MaxPayloadBytes {
		return nil, fmt.Errorf("json payload exceeds %d bytes", shared.MaxPayloadBytes)
	}

	return data, nil
}

// Decode unmarshals data into v.
func (c *JSONCodec) Decode(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
