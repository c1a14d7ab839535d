package crypto

import (
	"crypto/sha256"
	"encoding/asn1"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// pemBlockType is the PEM block label this package reads and writes.
// secp256k1 has no assigned X.509 curve OID, so the public key travels as a
// raw compressed point under a private block type rather than through
// crypto/x509.
const pemBlockType = "EC PUBLIC KEY"

// Signature is the (r, s) pair of an ECDSA signature over secp256k1.
type Signature struct {
	R *big.Int
	S *big.Int
}

// derSignature mirrors the ASN.1 SEQUENCE { r INTEGER, s INTEGER } that both
// this package and Python's cryptography library serialize ECDSA signatures
// as, so an (R, S) pair survives a JSON round trip through either side.
type derSignature struct {
	R *big.Int
	S *big.Int
}

// PrivateKey wraps a secp256k1 private key used for transaction signing.
type PrivateKey struct {
	key *secp256k1.PrivateKey
}

// GenerateKey creates a new random secp256k1 private key.
func GenerateKey() (*PrivateKey, error) {
	key, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	return &PrivateKey{key: key}, nil
}

// PrivateKeyFromBytes creates a PrivateKey from a 32-byte secret.
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != 32 {
		return nil, fmt.Errorf("private key must be 32 bytes, got %d", len(b))
	}
	return &PrivateKey{key: secp256k1.PrivKeyFromBytes(b)}, nil
}

// Sign produces an ECDSA signature over a 32-byte hash.
func (pk *PrivateKey) Sign(hash []byte) (Signature, error) {
	if len(hash) != 32 {
		return Signature{}, fmt.Errorf("hash must be 32 bytes, got %d", len(hash))
	}
	sig := ecdsa.Sign(pk.key, hash)

	var der derSignature
	if _, err := asn1.Unmarshal(sig.Serialize(), &der); err != nil {
		return Signature{}, fmt.Errorf("decode signature: %w", err)
	}
	return Signature{R: der.R, S: der.S}, nil
}

// Serialize returns the 32-byte private key scalar.
func (pk *PrivateKey) Serialize() []byte {
	return pk.key.Serialize()
}

// Zero securely zeroes the private key memory.
func (pk *PrivateKey) Zero() {
	pk.key.Zero()
}

// PublicKeyPEM PEM-encodes the 33-byte compressed public key.
func (pk *PrivateKey) PublicKeyPEM() string {
	return EncodePublicKeyPEM(pk.key.PubKey().SerializeCompressed())
}

// EncodePublicKeyPEM wraps a compressed public key's raw bytes in PEM.
func EncodePublicKeyPEM(compressed []byte) string {
	block := &pem.Block{Type: pemBlockType, Bytes: compressed}
	return string(pem.EncodeToMemory(block))
}

// decodePublicKeyPEM recovers the compressed public key bytes from PEM.
func decodePublicKeyPEM(pemStr string) ([]byte, error) {
	block, _ := pem.Decode([]byte(pemStr))
	if block == nil {
		return nil, fmt.Errorf("invalid PEM public key")
	}
	return block.Bytes, nil
}

// SignData JSON-encodes data, hashes it with SHA-256, and signs the digest.
// This is the entry point transactions use to sign their output map: the
// signer never has to pre-hash its payload by hand.
func SignData(pk *PrivateKey, data any) (Signature, error) {
	digest, err := sha256Of(data)
	if err != nil {
		return Signature{}, err
	}
	return pk.Sign(digest)
}

// VerifyData re-derives SignData's digest and checks sig against it.
func VerifyData(pemPubKey string, data any, sig Signature) (bool, error) {
	digest, err := sha256Of(data)
	if err != nil {
		return false, err
	}
	return Verify(pemPubKey, sig, digest)
}

func sha256Of(data any) ([]byte, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode signed data: %w", err)
	}
	sum := sha256.Sum256(b)
	return sum[:], nil
}

// Verify checks a signature against a PEM-encoded public key and the
// 32-byte digest it was produced over. A malformed or invalid signature
// returns (false, nil); any other failure to decode the key or signature
// (malformed PEM, malformed integers) propagates as a non-nil error.
func Verify(pemPubKey string, sig Signature, hash []byte) (bool, error) {
	if sig.R == nil || sig.S == nil {
		return false, nil
	}

	rawKey, err := decodePublicKeyPEM(pemPubKey)
	if err != nil {
		return false, fmt.Errorf("decode public key: %w", err)
	}
	pubKey, err := secp256k1.ParsePubKey(rawKey)
	if err != nil {
		return false, fmt.Errorf("parse public key: %w", err)
	}

	der, err := asn1.Marshal(derSignature{R: sig.R, S: sig.S})
	if err != nil {
		return false, fmt.Errorf("encode signature: %w", err)
	}
	parsed, err := ecdsa.ParseDERSignature(der)
	if err != nil {
		return false, nil
	}

	return parsed.Verify(hash, pubKey), nil
}
