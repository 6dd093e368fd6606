// SPDX-FileCopyrightText: © 2025 The hybridkem authors
// SPDX-License-Identifier: AGPL-3.0-only

// Package x448 implements the NIKE interface over curve448.
package x448

import (
	"errors"
	"io"

	"github.com/katzenpost/circl/dh/x448"

	"github.com/oqs-go/hybridkem/nike"
	"github.com/oqs-go/hybridkem/util"
)

const (
	// GroupElementLength is the length of an ECDH group element in bytes.
	GroupElementLength = 56

	// PublicKeySize is the size of a serialized PublicKey in bytes.
	PublicKeySize = GroupElementLength

	// PrivateKeySize is the size of a serialized PrivateKey in bytes.
	PrivateKeySize = GroupElementLength

	// SharedSecretSize is the size of the derived shared secret in bytes.
	SharedSecretSize = GroupElementLength
)

var errInvalidKey = errors.New("x448: invalid key")

var _ nike.PrivateKey = (*PrivateKey)(nil)
var _ nike.PublicKey = (*PublicKey)(nil)
var _ nike.Scheme = (*scheme)(nil)

type scheme struct {
	rng io.Reader
}

// Scheme instantiates a new X448 scheme given a CSPRNG.
func Scheme(rng io.Reader) nike.Scheme {
	return &scheme{
		rng: rng,
	}
}

func (e *scheme) Name() string {
	return "x448"
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

func (e *scheme) DeriveSecret(privKey nike.PrivateKey, pubKey nike.PublicKey) []byte {
	return Exp(privKey.(*PrivateKey).privBytes, pubKey.(*PublicKey).pubBytes)
}

func (e *scheme) DerivePublicKey(privKey nike.PrivateKey) nike.PublicKey {
	return privKey.Public()
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

// PrivateKey is an X448 private key.
type PrivateKey struct {
	privBytes *x448.Key
}

// NewKeypair generates a new PrivateKey sampled from the provided entropy
// source.
func NewKeypair(rng io.Reader) (*PrivateKey, error) {
	privKey := new(x448.Key)
	if _, err := io.ReadFull(rng, privKey[:]); err != nil {
		return nil, err
	}
	return &PrivateKey{
		privBytes: privKey,
	}, nil
}

func (p *PrivateKey) Public() nike.PublicKey {
	pubKey := &PublicKey{
		pubBytes: new(x448.Key),
	}
	expG(pubKey.pubBytes, p.privBytes)
	return pubKey
}

func (p *PrivateKey) Reset() {
	util.ExplicitBzero(p.privBytes[:])
}

func (p *PrivateKey) Bytes() []byte {
	b := make([]byte, PrivateKeySize)
	copy(b, p.privBytes[:])
	return b
}

func (p *PrivateKey) FromBytes(data []byte) error {
	if len(data) != PrivateKeySize {
		return errInvalidKey
	}
	p.privBytes = new(x448.Key)
	copy(p.privBytes[:], data)
	return nil
}

func (p *PrivateKey) MarshalBinary() ([]byte, error) {
	return p.Bytes(), nil
}

// PublicKey is an X448 public key.
type PublicKey struct {
	pubBytes *x448.Key
}

func (p *PublicKey) Reset() {
	util.ExplicitBzero(p.pubBytes[:])
}

func (p *PublicKey) Bytes() []byte {
	b := make([]byte, PublicKeySize)
	copy(b, p.pubBytes[:])
	return b
}

func (p *PublicKey) FromBytes(data []byte) error {
	if len(data) != PublicKeySize {
		return errInvalidKey
	}
	p.pubBytes = new(x448.Key)
	copy(p.pubBytes[:], data)
	return nil
}

func (p *PublicKey) MarshalBinary() ([]byte, error) {
	return p.Bytes(), nil
}

// Exp returns the group element, the result of x^y, over the X448 group.
// The result is deterministic for every input: a low-order x yields the
// all-zero group element instead of an error.
func Exp(y, x *x448.Key) []byte {
	sharedSecret := new(x448.Key)
	x448.Shared(sharedSecret, y, x)
	return sharedSecret[:]
}

func expG(dst, y *x448.Key) {
	x448.KeyGen(dst, y)
}
