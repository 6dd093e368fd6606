// SPDX-FileCopyrightText: © 2025 The hybridkem authors
// SPDX-License-Identifier: AGPL-3.0-only

// Package x25519 implements the NIKE interface over curve25519.
package x25519

import (
	"errors"
	"io"

	"golang.org/x/crypto/curve25519"

	"github.com/oqs-go/hybridkem/nike"
	"github.com/oqs-go/hybridkem/rand"
	"github.com/oqs-go/hybridkem/util"
)

const (
	// GroupElementLength is the length of an ECDH group element in bytes.
	GroupElementLength = 32

	// PublicKeySize is the size of a serialized PublicKey in bytes.
	PublicKeySize = GroupElementLength

	// PrivateKeySize is the size of a serialized PrivateKey in bytes.
	PrivateKeySize = GroupElementLength

	// SharedSecretSize is the size of the derived shared secret in bytes.
	SharedSecretSize = GroupElementLength
)

var errInvalidKey = errors.New("x25519: invalid key")

var _ nike.PrivateKey = (*PrivateKey)(nil)
var _ nike.PublicKey = (*PublicKey)(nil)
var _ nike.Scheme = (*scheme)(nil)

type scheme struct {
	rng io.Reader
}

// Scheme instantiates a new X25519 scheme given a CSPRNG.
func Scheme(rng io.Reader) nike.Scheme {
	return &scheme{
		rng: rng,
	}
}

// PrivateKey is an X25519 private key.
type PrivateKey [GroupElementLength]byte

func (p *PrivateKey) Public() nike.PublicKey {
	return Scheme(rand.Reader).DerivePublicKey(p)
}

func (p *PrivateKey) Reset() {
	util.ExplicitBzero(p[:])
}

func (p *PrivateKey) Bytes() []byte {
	b := make([]byte, PrivateKeySize)
	copy(b, p[:])
	return b
}

func (p *PrivateKey) FromBytes(data []byte) error {
	if len(data) != PrivateKeySize {
		return errInvalidKey
	}
	copy(p[:], data)
	return nil
}

func (p *PrivateKey) MarshalBinary() ([]byte, error) {
	return p.Bytes(), nil
}

// Exp calculates the shared secret with the provided public key.
func (p *PrivateKey) Exp(publicKey *PublicKey) []byte {
	return Exp(publicKey[:], p[:])
}

// PublicKey is an X25519 public key.
type PublicKey [GroupElementLength]byte

func (p *PublicKey) Reset() {
	util.ExplicitBzero(p[:])
}

func (p *PublicKey) Bytes() []byte {
	b := make([]byte, PublicKeySize)
	copy(b, p[:])
	return b
}

func (p *PublicKey) FromBytes(data []byte) error {
	if len(data) != PublicKeySize {
		return errInvalidKey
	}
	copy(p[:], data)
	return nil
}

func (p *PublicKey) MarshalBinary() ([]byte, error) {
	return p.Bytes(), nil
}

func (e *scheme) Name() string {
	return "x25519"
}

func (e *scheme) PublicKeySize() int {
	return PublicKeySize
}

func (e *scheme) PrivateKeySize() int {
	return PrivateKeySize
}

func (e *scheme) SharedSecretSize() int {
	return SharedSecretSize
}

func (e *scheme) GenerateKeyPair() (nike.PublicKey, nike.PrivateKey, error) {
	return e.GenerateKeyPairFromEntropy(e.rng)
}

func (e *scheme) GenerateKeyPairFromEntropy(rng io.Reader) (nike.PublicKey, nike.PrivateKey, error) {
	privKey, err := NewKeypair(rng)
	if err != nil {
		return nil, nil, err
	}
	return privKey.Public(), privKey, nil
}

// DeriveSecret derives a shared secret given a private key
// from one party and a public key from another.
func (e *scheme) DeriveSecret(privKey nike.PrivateKey, pubKey nike.PublicKey) []byte {
	return privKey.(*PrivateKey).Exp(pubKey.(*PublicKey))
}

// DerivePublicKey derives a public key given a private key.
func (e *scheme) DerivePublicKey(privKey nike.PrivateKey) nike.PublicKey {
	pubKey := new(PublicKey)
	expG((*[GroupElementLength]byte)(pubKey), (*[GroupElementLength]byte)(privKey.(*PrivateKey)))
	return pubKey
}

func (e *scheme) UnmarshalBinaryPublicKey(b []byte) (nike.PublicKey, error) {
	pubKey := new(PublicKey)
	if err := pubKey.FromBytes(b); err != nil {
		return nil, err
	}
	return pubKey, nil
}

func (e *scheme) UnmarshalBinaryPrivateKey(b []byte) (nike.PrivateKey, error) {
	privKey := new(PrivateKey)
	if err := privKey.FromBytes(b); err != nil {
		return nil, err
	}
	return privKey, nil
}

// Exp returns the group element, the result of x^y, over the ECDH group.
// The result is deterministic for every input: a low-order x yields the
// all-zero group element instead of an error.
func Exp(x, y []byte) []byte {
	if len(x) != GroupElementLength {
		panic(errInvalidKey)
	}
	if len(y) != GroupElementLength {
		panic(errInvalidKey)
	}
	var sharedSecret, pub, priv [GroupElementLength]byte
	copy(pub[:], x)
	copy(priv[:], y)
	//nolint:staticcheck // X25519 errors on low-order points, ScalarMult does not.
	curve25519.ScalarMult(&sharedSecret, &priv, &pub)
	util.ExplicitBzero(priv[:])
	return sharedSecret[:]
}

func expG(dst, y *[GroupElementLength]byte) {
	curve25519.ScalarBaseMult(dst, y)
}

// NewKeypair generates a new PrivateKey sampled from the provided entropy
// source.
func NewKeypair(r io.Reader) (*PrivateKey, error) {
	k := new(PrivateKey)
	if _, err := io.ReadFull(r, k[:]); err != nil {
		return nil, err
	}
	return k, nil
}
