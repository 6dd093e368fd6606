// SPDX-FileCopyrightText: © 2025 The hybridkem authors
// SPDX-License-Identifier: AGPL-3.0-only

// Package kyber768 wraps circl's Kyber768 in the module's KEM interfaces.
package kyber768

import (
	"crypto/hmac"
	"io"

	ckyber "github.com/katzenpost/circl/kem/kyber/kyber768"

	"github.com/oqs-go/hybridkem/kem"
	"github.com/oqs-go/hybridkem/rand"
)

const (
	SeedSize       = ckyber.KeySeedSize
	SharedKeySize  = ckyber.SharedKeySize
	CiphertextSize = ckyber.CiphertextSize
	PublicKeySize  = ckyber.PublicKeySize
	PrivateKeySize = ckyber.PrivateKeySize
)

// Offset of the packed public key inside a packed private key. The
// packed form is sk || pk || H(pk) || z.
const packedPublicKeyOffset = PrivateKeySize - 64 - PublicKeySize

var _ kem.Scheme = (*scheme)(nil)
var _ kem.PublicKey = (*PublicKey)(nil)
var _ kem.PrivateKey = (*PrivateKey)(nil)

var sch kem.Scheme = &scheme{}

// Scheme returns the Kyber768 KEM scheme.
func Scheme() kem.Scheme { return sch }

// PublicKey is a Kyber768 public key.
type PublicKey struct {
	scheme *scheme
	inner  *ckyber.PublicKey
}

func (p *PublicKey) Scheme() kem.Scheme {
	return p.scheme
}

func (p *PublicKey) MarshalBinary() ([]byte, error) {
	out := make([]byte, PublicKeySize)
	p.inner.Pack(out)
	return out, nil
}

func (p *PublicKey) Equal(pubkey kem.PublicKey) bool {
	other, ok := pubkey.(*PublicKey)
	if !ok {
		return false
	}
	a, _ := p.MarshalBinary()
	b, _ := other.MarshalBinary()
	return hmac.Equal(a, b)
}

// PrivateKey is a Kyber768 private key.
type PrivateKey struct {
	scheme *scheme
	inner  *ckyber.PrivateKey
	pub    *ckyber.PublicKey
}

func (p *PrivateKey) Scheme() kem.Scheme {
	return p.scheme
}

func (p *PrivateKey) MarshalBinary() ([]byte, error) {
	out := make([]byte, PrivateKeySize)
	p.inner.Pack(out)
	return out, nil
}

func (p *PrivateKey) Equal(privkey kem.PrivateKey) bool {
	other, ok := privkey.(*PrivateKey)
	if !ok {
		return false
	}
	a, _ := p.MarshalBinary()
	b, _ := other.MarshalBinary()
	return hmac.Equal(a, b)
}

func (p *PrivateKey) Public() kem.PublicKey {
	return &PublicKey{
		scheme: p.scheme,
		inner:  p.pub,
	}
}

type scheme struct{}

func (s *scheme) Name() string {
	return "Kyber768"
}

func (s *scheme) GenerateKeyPair() (kem.PublicKey, kem.PrivateKey, error) {
	pk, sk, err := ckyber.GenerateKeyPair(rand.Reader)
	if err != nil {
		return nil, nil, err
	}
	return &PublicKey{
			scheme: s,
			inner:  pk,
		}, &PrivateKey{
			scheme: s,
			inner:  sk,
			pub:    pk,
		}, nil
}

func (s *scheme) Encapsulate(pk kem.PublicKey) (ct, ss []byte, err error) {
	pub, ok := pk.(*PublicKey)
	if !ok {
		return nil, nil, kem.ErrTypeMismatch
	}
	seed := make([]byte, ckyber.EncapsulationSeedSize)
	if _, err := io.ReadFull(rand.Reader, seed); err != nil {
		return nil, nil, err
	}
	ct = make([]byte, CiphertextSize)
	ss = make([]byte, SharedKeySize)
	pub.inner.EncapsulateTo(ct, ss, seed)
	return ct, ss, nil
}

func (s *scheme) Decapsulate(sk kem.PrivateKey, ct []byte) ([]byte, error) {
	priv, ok := sk.(*PrivateKey)
	if !ok {
		return nil, kem.ErrTypeMismatch
	}
	if len(ct) != CiphertextSize {
		return nil, kem.ErrCiphertextSize
	}
	ss := make([]byte, SharedKeySize)
	priv.inner.DecapsulateTo(ss, ct)
	return ss, nil
}

func (s *scheme) UnmarshalBinaryPublicKey(b []byte) (kem.PublicKey, error) {
	if len(b) != PublicKeySize {
		return nil, kem.ErrPubKeySize
	}
	pk := new(ckyber.PublicKey)
	pk.Unpack(b)
	return &PublicKey{
		scheme: s,
		inner:  pk,
	}, nil
}

func (s *scheme) UnmarshalBinaryPrivateKey(b []byte) (kem.PrivateKey, error) {
	if len(b) != PrivateKeySize {
		return nil, kem.ErrPrivKeySize
	}
	sk := new(ckyber.PrivateKey)
	sk.Unpack(b)
	pk := new(ckyber.PublicKey)
	pk.Unpack(b[packedPublicKeyOffset : packedPublicKeyOffset+PublicKeySize])
	return &PrivateKey{
		scheme: s,
		inner:  sk,
		pub:    pk,
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
	pk, sk := ckyber.NewKeyFromSeed(seed)
	return &PublicKey{
			scheme: s,
			inner:  pk,
		}, &PrivateKey{
			scheme: s,
			inner:  sk,
			pub:    pk,
		}
}

func (s *scheme) SeedSize() int {
	return SeedSize
}
