// SPDX-FileCopyrightText: © 2025 The hybridkem authors
// SPDX-License-Identifier: AGPL-3.0-only

// Package nike contains the generic interfaces for the classical
// non-interactive key exchange half of a hybrid KEM.
package nike

import (
	"encoding"
	"io"
)

// Key is an interface for types encapsulating key material.
type Key interface {
	encoding.BinaryMarshaler

	// Reset resets the key material to all zeros.
	Reset()

	// Bytes serializes key material into a byte slice.
	Bytes() []byte

	// FromBytes loads key material from the given byte slice.
	FromBytes(data []byte) error
}

// PrivateKey is an interface for types encapsulating
// private key material.
type PrivateKey interface {
	Key

	// Public returns the public key corresponding to this private key.
	Public() PublicKey
}

// PublicKey is an interface for types encapsulating
// public key material.
type PublicKey interface {
	Key
}

// Scheme is an interface encapsulating a non-interactive key exchange.
type Scheme interface {

	// Name returns the name of the NIKE scheme implementation.
	Name() string

	// PublicKeySize returns the size in bytes of the public key.
	PublicKeySize() int

	// PrivateKeySize returns the size in bytes of the private key.
	PrivateKeySize() int

	// SharedSecretSize returns the size in bytes of the secret
	// computed by DeriveSecret.
	SharedSecretSize() int

	// GenerateKeyPair creates a new key pair.
	GenerateKeyPair() (PublicKey, PrivateKey, error)

	// GenerateKeyPairFromEntropy creates a new key pair from the given
	// entropy source. This can be used to deterministically generate
	// key pairs if the entropy source is deterministic, for example an
	// HKDF.
	GenerateKeyPairFromEntropy(rng io.Reader) (PublicKey, PrivateKey, error)

	// DeriveSecret derives a shared secret given a private key
	// from one party and a public key from another.
	DeriveSecret(PrivateKey, PublicKey) []byte

	// DerivePublicKey derives a public key given a private key.
	DerivePublicKey(PrivateKey) PublicKey

	// UnmarshalBinaryPublicKey loads a public key from byte slice.
	UnmarshalBinaryPublicKey([]byte) (PublicKey, error)

	// UnmarshalBinaryPrivateKey loads a private key from byte slice.
	UnmarshalBinaryPrivateKey([]byte) (PrivateKey, error)
}
