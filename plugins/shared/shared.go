// Package shared holds configuration helpers used by several plugin
// packages. Both codec and auth import it, making it the diamond point of
// the sample tree.
package shared

// MaxPayloadBytes caps the payload size any plugin accepts.
const MaxPayloadBytes = 1 << 20

// DefaultConfig is the configuration applied when a plugin is initialized
// with no settings.
var DefaultConfig = map[string]string{
	"charset": "utf-8",
}

// MergeConfig overlays src onto dst without mutating either.
func MergeConfig(dst, src map[string]string) map[string]string {
	out := make(map[string]string, len(dst)+len(src))
	for k, v := range dst {
		out[k] = v
	}
	for k, v := range src {
		out[k] = v
	}

	return out
}
