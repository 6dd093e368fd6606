// SPDX-FileCopyrightText: © 2025 The hybridkem authors
// SPDX-License-Identifier: AGPL-3.0-only

// Package hybrid implements a hybrid KEM binding a classical NIKE to a
// post-quantum KEM.
//
// One encapsulation produces one ciphertext and one shared secret from a
// composite public key holding both a post-quantum and a classical
// fragment. The classical share is a fresh ephemeral exchange per
// encapsulation; the post-quantum share is a plain KEM encapsulation. The
// two secrets are combined by concatenation, post-quantum first:
//
//	secret     = ss_pq || ss_classical
//	ciphertext = ct_pq || ephemeral_classical_public
//
// The pq-first ordering is a wire contract shared with interoperating
// peers, as is the length-prefixed composite key encoding described in
// codec.go. Neither may change.
package hybrid

import (
	"bytes"
	"crypto/hmac"
	"fmt"

	"github.com/oqs-go/hybridkem/kem"
	"github.com/oqs-go/hybridkem/nike"
	"github.com/oqs-go/hybridkem/rand"
	"github.com/oqs-go/hybridkem/util"
)

var _ kem.Scheme = (*Scheme)(nil)
var _ kem.PublicKey = (*PublicKey)(nil)
var _ kem.PrivateKey = (*PrivateKey)(nil)

// Scheme is a hybrid KEM built from one post-quantum KEM and one
// classical NIKE.
type Scheme struct {
	name      string
	pq        kem.Scheme
	classical nike.Scheme
}

// New creates a hybrid KEM scheme from the given post-quantum KEM and
// classical NIKE.
func New(name string, pq kem.Scheme, classical nike.Scheme) *Scheme {
	if pq == nil || classical == nil {
		panic("hybrid: component scheme cannot be nil")
	}
	return &Scheme{
		name:      name,
		pq:        pq,
		classical: classical,
	}
}

// Name returns the name of the scheme.
func (s *Scheme) Name() string { return s.name }

// PQ returns the post-quantum component scheme.
func (s *Scheme) PQ() kem.Scheme { return s.pq }

// Classical returns the classical component scheme.
func (s *Scheme) Classical() nike.Scheme { return s.classical }

// PublicKeySize returns the size of an encoded composite public key,
// including the two length prefixes.
func (s *Scheme) PublicKeySize() int {
	return encodedOverhead + s.pq.PublicKeySize() + s.classical.PublicKeySize()
}

// PrivateKeySize returns the size of an encoded composite private key,
// including the two length prefixes.
func (s *Scheme) PrivateKeySize() int {
	return encodedOverhead + s.pq.PrivateKeySize() + s.classical.PrivateKeySize()
}

// CiphertextSize returns the size of a hybrid ciphertext.
func (s *Scheme) CiphertextSize() int {
	return s.pq.CiphertextSize() + s.classical.PublicKeySize()
}

// SharedKeySize returns the size of the combined shared secret.
func (s *Scheme) SharedKeySize() int {
	return s.pq.SharedKeySize() + s.classical.SharedSecretSize()
}

// SeedSize returns the seed size for DeriveKeyPair.
func (s *Scheme) SeedSize() int {
	return s.pq.SeedSize() + s.classical.PrivateKeySize()
}

// GenerateKeyPair creates a new composite key pair.
func (s *Scheme) GenerateKeyPair() (kem.PublicKey, kem.PrivateKey, error) {
	pqPub, pqPriv, err := s.pq.GenerateKeyPair()
	if err != nil {
		return nil, nil, err
	}
	clPub, clPriv, err := s.classical.GenerateKeyPair()
	if err != nil {
		return nil, nil, err
	}
	return &PublicKey{
			scheme:    s,
			pq:        pqPub,
			classical: clPub,
		}, &PrivateKey{
			scheme:    s,
			pq:        pqPriv,
			classical: clPriv,
		}, nil
}

// DeriveKeyPair deterministically derives a composite key pair from seed.
// Panics if len(seed) != SeedSize().
func (s *Scheme) DeriveKeyPair(seed []byte) (kem.PublicKey, kem.PrivateKey) {
	if len(seed) != s.SeedSize() {
		panic(kem.ErrSeedSize)
	}
	pqSeedSize := s.pq.SeedSize()
	pqPub, pqPriv := s.pq.DeriveKeyPair(seed[:pqSeedSize])
	clPub, clPriv, err := s.classical.GenerateKeyPairFromEntropy(bytes.NewReader(seed[pqSeedSize:]))
	if err != nil {
		panic(err)
	}
	return &PublicKey{
			scheme:    s,
			pq:        pqPub,
			classical: clPub,
		}, &PrivateKey{
			scheme:    s,
			pq:        pqPriv,
			classical: clPriv,
		}
}

// Encapsulate generates a combined shared secret for the composite public
// key and encapsulates it into a hybrid ciphertext. A fresh classical
// ephemeral key pair is generated per call.
func (s *Scheme) Encapsulate(pk kem.PublicKey) (ct, ss []byte, err error) {
	pub, ok := pk.(*PublicKey)
	if !ok || pub.scheme != s {
		return nil, nil, kem.ErrTypeMismatch
	}

	ephPub, ephPriv, err := s.classical.GenerateKeyPairFromEntropy(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrEncapsulationFailed, err)
	}
	defer ephPriv.Reset()

	ssClassical := s.classical.DeriveSecret(ephPriv, pub.classical)
	defer util.ExplicitBzero(ssClassical)
	if len(ssClassical) != s.classical.SharedSecretSize() {
		return nil, nil, ErrDeriveFailed
	}

	ctPQ, ssPQ, err := s.pq.Encapsulate(pub.pq)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrEncapsulationFailed, err)
	}
	defer util.ExplicitBzero(ssPQ)
	if len(ctPQ) != s.pq.CiphertextSize() || len(ssPQ) != s.pq.SharedKeySize() {
		return nil, nil, ErrEncapsulationFailed
	}

	ct = make([]byte, 0, s.CiphertextSize())
	ct = append(ct, ctPQ...)
	ct = append(ct, ephPub.Bytes()...)

	ss = make([]byte, 0, s.SharedKeySize())
	ss = append(ss, ssPQ...)
	ss = append(ss, ssClassical...)

	return ct, ss, nil
}

// Decapsulate recovers the combined shared secret from a hybrid
// ciphertext. Failure is reserved for structural malformation detected
// before any cryptographic work; a well-sized but corrupted ciphertext
// still yields a deterministic secret (implicit rejection).
func (s *Scheme) Decapsulate(sk kem.PrivateKey, ct []byte) ([]byte, error) {
	priv, ok := sk.(*PrivateKey)
	if !ok || priv.scheme != s {
		return nil, kem.ErrTypeMismatch
	}
	if len(ct) != s.CiphertextSize() {
		return nil, ErrInvalidCiphertextLength
	}

	ctPQ, ctClassical, err := SplitCiphertext(ct, s.pq.CiphertextSize(), s.classical.PublicKeySize())
	if err != nil {
		return nil, ErrInvalidCiphertextLength
	}

	peerPub, err := s.classical.UnmarshalBinaryPublicKey(ctClassical)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyEncoding, err)
	}

	ssClassical := s.classical.DeriveSecret(priv.classical, peerPub)
	defer util.ExplicitBzero(ssClassical)
	if len(ssClassical) != s.classical.SharedSecretSize() {
		return nil, ErrDeriveFailed
	}

	ssPQ, err := s.pq.Decapsulate(priv.pq, ctPQ)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecapsulationFailed, err)
	}
	defer util.ExplicitBzero(ssPQ)

	ss := make([]byte, 0, s.SharedKeySize())
	ss = append(ss, ssPQ...)
	ss = append(ss, ssClassical...)
	return ss, nil
}

// UnmarshalBinaryPublicKey parses an encoded composite public key.
func (s *Scheme) UnmarshalBinaryPublicKey(buf []byte) (kem.PublicKey, error) {
	pqBytes, clBytes, err := SplitPublicKey(buf)
	if err != nil {
		return nil, err
	}
	return s.publicKeyFromFragments(pqBytes, clBytes)
}

// UnmarshalBinaryPrivateKey parses an encoded composite private key.
func (s *Scheme) UnmarshalBinaryPrivateKey(buf []byte) (kem.PrivateKey, error) {
	pqBytes, clBytes, err := SplitPrivateKey(buf)
	if err != nil {
		return nil, err
	}
	return s.privateKeyFromFragments(pqBytes, clBytes)
}

func (s *Scheme) publicKeyFromFragments(pqBytes, clBytes []byte) (*PublicKey, error) {
	if len(pqBytes) != s.pq.PublicKeySize() || len(clBytes) != s.classical.PublicKeySize() {
		return nil, ErrMalformedEncoding
	}
	pqPub, err := s.pq.UnmarshalBinaryPublicKey(pqBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyEncoding, err)
	}
	clPub, err := s.classical.UnmarshalBinaryPublicKey(clBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyEncoding, err)
	}
	return &PublicKey{
		scheme:    s,
		pq:        pqPub,
		classical: clPub,
	}, nil
}

func (s *Scheme) privateKeyFromFragments(pqBytes, clBytes []byte) (*PrivateKey, error) {
	if len(pqBytes) != s.pq.PrivateKeySize() || len(clBytes) != s.classical.PrivateKeySize() {
		return nil, ErrMalformedEncoding
	}
	pqPriv, err := s.pq.UnmarshalBinaryPrivateKey(pqBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyEncoding, err)
	}
	clPriv, err := s.classical.UnmarshalBinaryPrivateKey(clBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyEncoding, err)
	}
	return &PrivateKey{
		scheme:    s,
		pq:        pqPriv,
		classical: clPriv,
	}, nil
}

// PublicKey is a composite public key.
type PublicKey struct {
	scheme    *Scheme
	pq        kem.PublicKey
	classical nike.PublicKey
}

// Scheme returns the hybrid scheme this key belongs to.
func (p *PublicKey) Scheme() kem.Scheme { return p.scheme }

// MarshalBinary returns the length-prefixed composite encoding,
// post-quantum fragment first.
func (p *PublicKey) MarshalBinary() ([]byte, error) {
	pqBytes, err := p.pq.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return EncodePublicKey(pqBytes, p.classical.Bytes()), nil
}

// Equal returns true if the two keys are equal.
func (p *PublicKey) Equal(pubkey kem.PublicKey) bool {
	other, ok := pubkey.(*PublicKey)
	if !ok || other.scheme != p.scheme {
		return false
	}
	return p.pq.Equal(other.pq) &&
		hmac.Equal(p.classical.Bytes(), other.classical.Bytes())
}

// PrivateKey is a composite private key.
type PrivateKey struct {
	scheme    *Scheme
	pq        kem.PrivateKey
	classical nike.PrivateKey
}

// Scheme returns the hybrid scheme this key belongs to.
func (p *PrivateKey) Scheme() kem.Scheme { return p.scheme }

// MarshalBinary returns the length-prefixed composite encoding,
// post-quantum fragment first.
func (p *PrivateKey) MarshalBinary() ([]byte, error) {
	pqBytes, err := p.pq.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return EncodePrivateKey(pqBytes, p.classical.Bytes()), nil
}

// Equal returns true if the two keys are equal.
func (p *PrivateKey) Equal(privkey kem.PrivateKey) bool {
	other, ok := privkey.(*PrivateKey)
	if !ok || other.scheme != p.scheme {
		return false
	}
	return p.pq.Equal(other.pq) &&
		hmac.Equal(p.classical.Bytes(), other.classical.Bytes())
}

// Public returns the composite public key for this private key.
func (p *PrivateKey) Public() kem.PublicKey {
	return &PublicKey{
		scheme:    p.scheme,
		pq:        p.pq.Public(),
		classical: p.classical.Public(),
	}
}
