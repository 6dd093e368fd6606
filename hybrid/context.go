// SPDX-FileCopyrightText: © 2025 The hybridkem authors
// SPDX-License-Identifier: AGPL-3.0-only

package hybrid

import (
	"gopkg.in/op/go-logging.v1"

	"github.com/oqs-go/hybridkem/log"
	"github.com/oqs-go/hybridkem/util"
)

type operation int

const (
	opNone operation = iota
	opEncapsulate
	opDecapsulate
)

// Context drives hybrid KEM operations over one composite key reference.
//
// The lifecycle is InitEncapsulate or InitDecapsulate, one or more
// operations, then Free. A Context is not safe for concurrent use;
// independent Contexts sharing a CompositeKey are.
type Context struct {
	scheme *Scheme
	log    *logging.Logger

	key *CompositeKey
	op  operation
}

// NewContext creates a Context for the given scheme. A nil logBackend
// disables logging.
func NewContext(scheme *Scheme, logBackend *log.Backend) *Context {
	if logBackend == nil {
		var err error
		logBackend, err = log.New("", "NOTICE", true)
		if err != nil {
			panic(err)
		}
	}
	return &Context{
		scheme: scheme,
		log:    logBackend.GetLogger("hybrid/" + scheme.Name()),
	}
}

// Scheme returns the scheme this context operates with.
func (c *Context) Scheme() *Scheme { return c.scheme }

// InitEncapsulate stores a reference to the composite key for subsequent
// Encapsulate calls, releasing any previously held key. The key must
// contain the public half.
func (c *Context) InitEncapsulate(key *CompositeKey) error {
	return c.init(key, opEncapsulate)
}

// InitDecapsulate stores a reference to the composite key for subsequent
// Decapsulate calls, releasing any previously held key. The key must
// contain the private half.
func (c *Context) InitDecapsulate(key *CompositeKey) error {
	return c.init(key, opDecapsulate)
}

func (c *Context) init(key *CompositeKey, op operation) error {
	if key == nil || key.Scheme() != c.scheme {
		return ErrInvalidKeyForOperation
	}
	switch op {
	case opEncapsulate:
		if !key.HasPublic() {
			return ErrInvalidKeyForOperation
		}
	case opDecapsulate:
		if !key.HasPrivate() {
			return ErrInvalidKeyForOperation
		}
	}

	key.Ref()
	if c.key != nil {
		c.key.Deref()
	}
	c.key = key
	c.op = op
	c.log.Debugf("init: %s", c.scheme.Name())
	return nil
}

// Encapsulate writes a hybrid ciphertext and combined shared secret for
// the stored composite public key. It returns the exact required buffer
// lengths; if either buffer is nil only the lengths are reported and no
// cryptographic work is done. Non-nil buffers must match the reported
// lengths exactly. On error no output is written.
func (c *Context) Encapsulate(ciphertext, secret []byte) (ciphertextLen, secretLen int, err error) {
	if c.key == nil || c.op != opEncapsulate {
		return 0, 0, ErrInvalidKeyForOperation
	}

	ciphertextLen = c.scheme.CiphertextSize()
	secretLen = c.scheme.SharedKeySize()
	if ciphertext == nil || secret == nil {
		return ciphertextLen, secretLen, nil
	}
	if len(ciphertext) != ciphertextLen || len(secret) != secretLen {
		return ciphertextLen, secretLen, ErrLengthMismatch
	}

	pqPub, clPub, err := SplitPublicKey(c.key.public)
	if err != nil {
		return ciphertextLen, secretLen, err
	}
	pub, err := c.scheme.publicKeyFromFragments(pqPub, clPub)
	if err != nil {
		return ciphertextLen, secretLen, err
	}

	ct, ss, err := c.scheme.Encapsulate(pub)
	if err != nil {
		return ciphertextLen, secretLen, err
	}
	defer util.ExplicitBzero(ss)

	copy(ciphertext, ct)
	copy(secret, ss)
	c.log.Debugf("encapsulate: %d byte ciphertext, %d byte secret", ciphertextLen, secretLen)
	return ciphertextLen, secretLen, nil
}

// Decapsulate writes the combined shared secret recovered from
// ciphertext using the stored composite private key. It returns the
// exact required secret length; if secret is nil only the length is
// reported and the ciphertext is not examined. A well-sized but
// corrupted ciphertext yields a deterministic secret rather than an
// error (implicit rejection). On error no output is written.
func (c *Context) Decapsulate(secret, ciphertext []byte) (secretLen int, err error) {
	if c.key == nil || c.op != opDecapsulate {
		return 0, ErrInvalidKeyForOperation
	}

	secretLen = c.scheme.SharedKeySize()
	if secret == nil {
		return secretLen, nil
	}
	if len(secret) != secretLen {
		return secretLen, ErrLengthMismatch
	}
	if len(ciphertext) != c.scheme.CiphertextSize() {
		return secretLen, ErrInvalidCiphertextLength
	}

	pqPriv, clPriv, err := SplitPrivateKey(c.key.private)
	if err != nil {
		return secretLen, err
	}
	priv, err := c.scheme.privateKeyFromFragments(pqPriv, clPriv)
	if err != nil {
		return secretLen, err
	}
	defer priv.classical.Reset()

	ss, err := c.scheme.Decapsulate(priv, ciphertext)
	if err != nil {
		return secretLen, err
	}
	defer util.ExplicitBzero(ss)

	copy(secret, ss)
	c.log.Debugf("decapsulate: %d byte secret", secretLen)
	return secretLen, nil
}

// Free releases the held composite key reference. It is idempotent and
// safe to call on a context that never held a key.
func (c *Context) Free() {
	if c.key != nil {
		c.key.Deref()
		c.key = nil
	}
	c.op = opNone
}
