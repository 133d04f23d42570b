package testutil

import (
	"encoding/hex"
	"testing"

	"github.com/stellar/go/keypair"
	"github.com/stretchr/testify/require"
)

// RandomKeypair returns a fresh ed25519 keypair.
func RandomKeypair(t *testing.T) *keypair.Full {
	t.Helper()
	kp, err := keypair.Random()
	require.NoError(t, err)
	return kp
}

// SignHex signs message with kp and returns the hex encoded signature.
func SignHex(t *testing.T, kp *keypair.Full, message string) string {
	t.Helper()
	sig, err := kp.Sign([]byte(message))
	require.NoError(t, err)
	return hex.EncodeToString(sig)
}
