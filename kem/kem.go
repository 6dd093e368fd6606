// SPDX-FileCopyrightText: © 2025 The hybridkem authors
// SPDX-License-Identifier: AGPL-3.0-only

// Package kem provides a unified interface for KEM schemes.
package kem

import (
	"encoding"
	"errors"
)

// A KEM public key.
type PublicKey interface {
	encoding.BinaryMarshaler

	// Scheme returns the scheme for this public key.
	Scheme() Scheme

	// Equal returns true if the two keys are equal.
	Equal(PublicKey) bool
}

// A KEM private key.
type PrivateKey interface {
	encoding.BinaryMarshaler

	// Scheme returns the scheme for this private key.
	Scheme() Scheme

	// Equal returns true if the two keys are equal.
	Equal(PrivateKey) bool

	// Public returns the public key related to this private key.
	Public() PublicKey
}

// A Scheme represents a specific instance of a KEM.
type Scheme interface {
	// Name of the scheme.
	Name() string

	// GenerateKeyPair creates a new key pair.
	GenerateKeyPair() (PublicKey, PrivateKey, error)

	// Encapsulate generates a shared key ss for the public key and
	// encapsulates it into a ciphertext ct.
	Encapsulate(pk PublicKey) (ct, ss []byte, err error)

	// Decapsulate returns the shared key encapsulated in ciphertext ct
	// for the private key sk.
	Decapsulate(sk PrivateKey, ct []byte) ([]byte, error)

	// UnmarshalBinaryPublicKey unmarshals a PublicKey from the provided buffer.
	UnmarshalBinaryPublicKey([]byte) (PublicKey, error)

	// UnmarshalBinaryPrivateKey unmarshals a PrivateKey from the provided buffer.
	UnmarshalBinaryPrivateKey([]byte) (PrivateKey, error)

	// CiphertextSize returns the size of encapsulated keys.
	CiphertextSize() int

	// SharedKeySize returns the size of established shared keys.
	SharedKeySize() int

	// PrivateKeySize returns the size of packed private keys.
	PrivateKeySize() int

	// PublicKeySize returns the size of packed public keys.
	PublicKeySize() int

	// DeriveKeyPair deterministically derives a pair of keys from a seed.
	// Panics if the length of seed is not equal to the value returned by
	// SeedSize.
	DeriveKeyPair(seed []byte) (PublicKey, PrivateKey)

	// SeedSize returns the size of the seed used in DeriveKeyPair.
	SeedSize() int
}

var (
	// ErrTypeMismatch is the error used if types of, for instance, private
	// and public keys don't match.
	ErrTypeMismatch = errors.New("types mismatch")

	// ErrSeedSize is the error used if the provided seed is of the wrong
	// size.
	ErrSeedSize = errors.New("wrong seed size")

	// ErrPubKeySize is the error used if the provided public key is of
	// the wrong size.
	ErrPubKeySize = errors.New("wrong size for public key")

	// ErrCiphertextSize is the error used if the provided ciphertext
	// is of the wrong size.
	ErrCiphertextSize = errors.New("wrong size for ciphertext")

	// ErrPrivKeySize is the error used if the provided private key is of
	// the wrong size.
	ErrPrivKeySize = errors.New("wrong size for private key")
)
