package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicAuth_Check(t *testing.T) {
	a := &BasicAuth{}
	require.Error(t, a.Init(nil), "credentials are required")

	require.NoError(t, a.Init(map[string]string{"username": "svc", "password": "s3cret"}))
	assert.True(t, a.Check("svc", "s3cret"))
	assert.False(t, a.Check("svc", "wrong"))
}

func TestSignedJSONCodec_Sign(t *testing.T) {
	c := &SignedJSONCodec{Key: []byte("k")}

	data, sig, err := c.EncodeSigned(map[string]string{"a": "b"})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, c.Sign(data), sig)
}
