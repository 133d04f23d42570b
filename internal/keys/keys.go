// Package keys validates Stellar key material, verifies ed25519 signatures
// over challenge text and generates challenge tokens.
package keys

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/stellar/go/keypair"
	"github.com/stellar/go/strkey"

	"github.com/dtroode/stellar-wallet-server/internal/model"
)

// PublicKeyLength is the length of a strkey-encoded account id.
const PublicKeyLength = 56

// TokenEntropy is the number of random bytes behind every challenge token.
const TokenEntropy = 32

// ValidatePublicKey reports model.ErrInvalidKeyFormat unless publicKey is a
// well-formed G... account id with a valid checksum.
func ValidatePublicKey(publicKey string) error {
	if len(publicKey) != PublicKeyLength || !strings.HasPrefix(publicKey, "G") {
		return model.ErrInvalidKeyFormat
	}
	if !strkey.IsValidEd25519PublicKey(publicKey) {
		return model.ErrInvalidKeyFormat
	}
	return nil
}

// ParseSigner parses a secret seed (S...) into a signing keypair.
func ParseSigner(seed string) (*keypair.Full, error) {
	if !strkey.IsValidEd25519SecretSeed(seed) {
		return nil, fmt.Errorf("secret seed: %w", model.ErrInvalidKeyFormat)
	}
	kp, err := keypair.ParseFull(seed)
	if err != nil {
		return nil, fmt.Errorf("secret seed: %w", model.ErrInvalidKeyFormat)
	}
	return kp, nil
}

// NewToken returns a URL-safe token carrying TokenEntropy random bytes.
func NewToken() (string, error) {
	b := make([]byte, TokenEntropy)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base58.Encode(b), nil
}

var _ model.SignatureVerifier = (*Ed25519Verifier)(nil)

// Ed25519Verifier checks signatures made by the key behind a G... address.
type Ed25519Verifier struct{}

// NewEd25519Verifier creates a verifier.
func NewEd25519Verifier() *Ed25519Verifier {
	return &Ed25519Verifier{}
}

// Verify reports whether signature is a valid signature of message by
// publicKey. A malformed signature encoding is a failed check, not an error;
// an unusable public key is an error.
func (v *Ed25519Verifier) Verify(publicKey string, message []byte, signature string) (bool, error) {
	kp, err := keypair.ParseAddress(publicKey)
	if err != nil {
		return false, fmt.Errorf("failed to parse public key: %w", err)
	}

	sig, ok := DecodeSignature(signature)
	if !ok {
		return false, nil
	}

	if err := kp.Verify(message, sig); err != nil {
		if errors.Is(err, keypair.ErrInvalidSignature) {
			return false, nil
		}
		return false, fmt.Errorf("failed to verify signature: %w", err)
	}

	return true, nil
}

// DecodeSignature accepts hex, standard base64 or URL-safe base64.
func DecodeSignature(s string) ([]byte, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	if b, err := hex.DecodeString(s); err == nil {
		return b, true
	}
	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return b, true
	}
	if b, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "=")); err == nil {
		return b, true
	}
	return nil, false
}

// Signature encodings Sign can produce. DecodeSignature accepts both.
const (
	EncodingHex    = "hex"
	EncodingBase64 = "base64"
)

// ErrUnknownEncoding is returned by Sign for an unsupported encoding.
var ErrUnknownEncoding = errors.New("unknown encoding")

// Sign signs message with seed and returns the signature in encoding.
func Sign(seed string, message []byte, encoding string) (string, error) {
	if encoding != EncodingHex && encoding != EncodingBase64 {
		return "", fmt.Errorf("%w %q", ErrUnknownEncoding, encoding)
	}

	kp, err := ParseSigner(seed)
	if err != nil {
		return "", err
	}
	sig, err := kp.Sign(message)
	if err != nil {
		return "", fmt.Errorf("failed to sign message: %w", err)
	}

	if encoding == EncodingBase64 {
		return base64.StdEncoding.EncodeToString(sig), nil
	}
	return hex.EncodeToString(sig), nil
}
