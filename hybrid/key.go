// SPDX-FileCopyrightText: © 2025 The hybridkem authors
// SPDX-License-Identifier: AGPL-3.0-only

package hybrid

import (
	"sync/atomic"

	"github.com/oqs-go/hybridkem/util"
)

// CompositeKey holds the encoded fragments of a hybrid key pair. Either
// half may be absent: a key used for encapsulation needs only the public
// half, one used for decapsulation needs the private half.
//
// A CompositeKey is immutable after construction and shared by reference:
// contexts holding it take a reference with Ref and release it with
// Deref. When the last reference is released the private material is
// zeroized. Multiple contexts may drive operations on the same key
// concurrently.
type CompositeKey struct {
	scheme  *Scheme
	public  []byte
	private []byte

	refCount int32
}

// NewCompositeKey constructs a CompositeKey from encoded composite key
// halves. Either half may be omitted, but not both. The
// buffers are copied; both are validated against the scheme's declared
// fragment lengths. The returned key holds one reference.
func NewCompositeKey(scheme *Scheme, public, private []byte) (*CompositeKey, error) {
	if scheme == nil {
		return nil, ErrInvalidKeyForOperation
	}
	if public == nil && private == nil {
		return nil, ErrInvalidKeyForOperation
	}

	k := &CompositeKey{
		scheme:   scheme,
		refCount: 1,
	}

	if public != nil {
		pqPub, clPub, err := SplitPublicKey(public)
		if err != nil {
			return nil, err
		}
		if len(pqPub) != scheme.pq.PublicKeySize() || len(clPub) != scheme.classical.PublicKeySize() {
			return nil, ErrMalformedEncoding
		}
		k.public = append([]byte{}, public...)
	}
	if private != nil {
		pqPriv, clPriv, err := SplitPrivateKey(private)
		if err != nil {
			return nil, err
		}
		if len(pqPriv) != scheme.pq.PrivateKeySize() || len(clPriv) != scheme.classical.PrivateKeySize() {
			return nil, ErrMalformedEncoding
		}
		k.private = append([]byte{}, private...)
	}

	return k, nil
}

// NewCompositeKeyFromKeys constructs a CompositeKey from in-memory key
// objects. Either key may be omitted, but not both.
func NewCompositeKeyFromKeys(scheme *Scheme, pub *PublicKey, priv *PrivateKey) (*CompositeKey, error) {
	var publicBlob, privateBlob []byte
	var err error

	if pub != nil {
		if publicBlob, err = pub.MarshalBinary(); err != nil {
			return nil, err
		}
	}
	if priv != nil {
		if privateBlob, err = priv.MarshalBinary(); err != nil {
			return nil, err
		}
	}
	return NewCompositeKey(scheme, publicBlob, privateBlob)
}

// Scheme returns the hybrid scheme this key belongs to.
func (k *CompositeKey) Scheme() *Scheme { return k.scheme }

// HasPublic returns true if the key holds a public half.
func (k *CompositeKey) HasPublic() bool { return k.public != nil }

// HasPrivate returns true if the key holds a private half.
func (k *CompositeKey) HasPrivate() bool { return k.private != nil }

// PublicBytes returns a copy of the encoded composite public key, or nil
// if the public half is absent.
func (k *CompositeKey) PublicBytes() []byte {
	if k.public == nil {
		return nil
	}
	return append([]byte{}, k.public...)
}

// Ref increases the refcount by one.
func (k *CompositeKey) Ref() {
	i := atomic.AddInt32(&k.refCount, 1)
	if i <= 1 {
		panic("BUG: hybrid: CompositeKey refcount was 0 or negative")
	}
}

// Deref reduces the refcount by one, and zeroizes the private material
// when the refcount hits 0.
func (k *CompositeKey) Deref() {
	i := atomic.AddInt32(&k.refCount, -1)
	if i == 0 {
		util.ExplicitBzero(k.private)
	} else if i < 0 {
		panic("BUG: hybrid: CompositeKey refcount is negative")
	}
}
