// Package auth provides authentication plugins. It imports codec, so a walk
// rooted at the plugins tree reaches codec through auth as well as directly.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"pluginscan/plugins/codec"
	"pluginscan/plugins/shared"
	"pluginscan/registry"
)

// BasicAuth checks a static username/password pair.
type BasicAuth struct {
	registry.BasePlugin
	username string
	password string
}

// Init requires "username" and "password" settings.
func (a *BasicAuth) Init(cfg map[string]string) error {
	merged := shared.MergeConfig(shared.DefaultConfig, cfg)

	a.username = merged["username"]
	a.password = merged["password"]
	if a.username == "" || a.password == "" {
		return errors.New("basic auth requires username and password")
	}

	return nil
}

// Check reports whether the pair matches the configured credentials.
func (a *BasicAuth) Check(username, password string) bool {
	return username == a.username && password == a.password
}

// SignedJSONCodec is a JSON codec that appends an HMAC signature to every
// payload. It descends from JSONCodec, and through it from BasePlugin.
type SignedJSONCodec struct {
	codec.JSONCodec
	Key []byte
}

// Sign returns the hex HMAC-SHA256 signature of data.
func (c *SignedJSONCodec) Sign(data []byte) string {
	mac := hmac.New(sha256.New, c.Key)
	mac.Write(data)

	return hex.EncodeToString(mac.Sum(nil))
}

// EncodeSigned encodes v and returns the payload with its signature.
func (c *SignedJSONCodec) EncodeSigned(v any) ([]byte, string, error) {
	data, err := c.Encode(v)
	if err != nil {
		return nil, "", err
	}

	return data, c.Sign(data), nil
}
