// SPDX-FileCopyrightText: © 2025 The hybridkem authors
// SPDX-License-Identifier: AGPL-3.0-only

// Package mlkem768 wraps ML-KEM-768 in the module's KEM interfaces.
package mlkem768

import (
	"crypto/hmac"

	"filippo.io/mlkem768"

	"github.com/oqs-go/hybridkem/kem"
)

const (
	SeedSize       = 64
	SharedKeySize  = mlkem768.SharedKeySize
	CiphertextSize = mlkem768.CiphertextSize
	PublicKeySize  = mlkem768.EncapsulationKeySize
	PrivateKeySize = PublicKeySize + mlkem768.DecapsulationKeySize
)

var _ kem.Scheme = (*scheme)(nil)
var _ kem.PublicKey = (*PublicKey)(nil)
var _ kem.PrivateKey = (*PrivateKey)(nil)

var sch kem.Scheme = &scheme{}

// Scheme returns the ML-KEM-768 KEM scheme.
func Scheme() kem.Scheme { return sch }

// PublicKey is an ML-KEM-768 encapsulation key.
type PublicKey struct {
	scheme   *scheme
	encapKey []byte
}

func (p *PublicKey) Scheme() kem.Scheme {
	return p.scheme
}

func (p *PublicKey) MarshalBinary() ([]byte, error) {
	return append([]byte{}, p.encapKey...), nil
}

func (p *PublicKey) Equal(pubkey kem.PublicKey) bool {
	other, ok := pubkey.(*PublicKey)
	if !ok {
		return false
	}
	return hmac.Equal(other.encapKey, p.encapKey)
}

// PrivateKey is an ML-KEM-768 decapsulation key. The packed form is the
// decapsulation key followed by the encapsulation key.
type PrivateKey struct {
	scheme   *scheme
	decapKey []byte
	encapKey []byte
}

func (p *PrivateKey) Scheme() kem.Scheme {
	return p.scheme
}

func (p *PrivateKey) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, PrivateKeySize)
	out = append(out, p.decapKey...)
	out = append(out, p.encapKey...)
	return out, nil
}

func (p *PrivateKey) Equal(privkey kem.PrivateKey) bool {
	other, ok := privkey.(*PrivateKey)
	if !ok {
		return false
	}
	return hmac.Equal(other.decapKey, p.decapKey)
}

func (p *PrivateKey) Public() kem.PublicKey {
	return &PublicKey{
		scheme:   p.scheme,
		encapKey: p.encapKey,
	}
}

type scheme struct{}

func (s *scheme) Name() string {
	return "MLKEM768"
}

func (s *scheme) GenerateKeyPair() (kem.PublicKey, kem.PrivateKey, error) {
	encapKey, decapKey, err := mlkem768.GenerateKey()
	if err != nil {
		return nil, nil, err
	}
	return &PublicKey{
			scheme:   s,
			encapKey: encapKey,
		}, &PrivateKey{
			scheme:   s,
			decapKey: decapKey,
			encapKey: encapKey,
		}, nil
}

func (s *scheme) Encapsulate(pk kem.PublicKey) (ct, ss []byte, err error) {
	pub, ok := pk.(*PublicKey)
	if !ok {
		return nil, nil, kem.ErrTypeMismatch
	}
	return mlkem768.Encapsulate(pub.encapKey)
}

func (s *scheme) Decapsulate(sk kem.PrivateKey, ct []byte) ([]byte, error) {
	priv, ok := sk.(*PrivateKey)
	if !ok {
		return nil, kem.ErrTypeMismatch
	}
	return mlkem768.Decapsulate(priv.decapKey, ct)
}

func (s *scheme) UnmarshalBinaryPublicKey(b []byte) (kem.PublicKey, error) {
	if len(b) != PublicKeySize {
		return nil, kem.ErrPubKeySize
	}
	return &PublicKey{
		scheme:   s,
		encapKey: append([]byte{}, b...),
	}, nil
}

func (s *scheme) UnmarshalBinaryPrivateKey(b []byte) (kem.PrivateKey, error) {
	if len(b) != PrivateKeySize {
		return nil, kem.ErrPrivKeySize
	}
	b = append([]byte{}, b...)
	return &PrivateKey{
		scheme:   s,
		decapKey: b[:mlkem768.DecapsulationKeySize],
		encapKey: b[mlkem768.DecapsulationKeySize:],
	}, nil
}

func (s *scheme) CiphertextSize() int {
	return CiphertextSize
}

func (s *scheme) SharedKeySize() int {
	return SharedKeySize
}

func (s *scheme) PrivateKeySize() int {
	return PrivateKeySize
}

func (s *scheme) PublicKeySize() int {
	return PublicKeySize
}

func (s *scheme) DeriveKeyPair(seed []byte) (kem.PublicKey, kem.PrivateKey) {
	if len(seed) != SeedSize {
		panic(kem.ErrSeedSize)
	}
	encapKey, decapKey, err := mlkem768.NewKeyFromSeed(seed)
	if err != nil {
		panic(err)
	}
	return &PublicKey{
			scheme:   s,
			encapKey: encapKey,
		}, &PrivateKey{
			scheme:   s,
			decapKey: decapKey,
			encapKey: encapKey,
		}
}

func (s *scheme) SeedSize() int {
	return SeedSize
}
