package model

// SignatureVerifier checks a signature produced by the private half of publicKey.
// A false result with nil error means the signature is simply wrong.
type SignatureVerifier interface {
	Verify(publicKey string, message []byte, signature string) (bool, error)
}
