// SPDX-FileCopyrightText: © 2025 The hybridkem authors
// SPDX-License-Identifier: AGPL-3.0-only

package hybrid

import (
	"encoding/binary"
)

// Composite keys are encoded as two length-prefixed fragments, the
// post-quantum fragment always first:
//
//	u32(len_pq) || pq || u32(len_classical) || classical
//
// Length prefixes are big-endian. Ciphertexts carry no prefixes at all;
// both sub-lengths are algorithm constants known from the scheme.

const lengthPrefixSize = 4

// encodedOverhead is the number of framing bytes in an encoded composite
// key.
const encodedOverhead = 2 * lengthPrefixSize

func encodeComposite(pq, classical []byte) []byte {
	out := make([]byte, encodedOverhead+len(pq)+len(classical))
	binary.BigEndian.PutUint32(out, uint32(len(pq)))
	copy(out[lengthPrefixSize:], pq)
	off := lengthPrefixSize + len(pq)
	binary.BigEndian.PutUint32(out[off:], uint32(len(classical)))
	copy(out[off+lengthPrefixSize:], classical)
	return out
}

// splitComposite parses an encoded composite key into its two fragments.
// The returned slices are views into buf, not copies. The declared lengths
// must account for the buffer exactly.
func splitComposite(buf []byte) (pq, classical []byte, err error) {
	if len(buf) < lengthPrefixSize {
		return nil, nil, ErrMalformedEncoding
	}
	pqLen := binary.BigEndian.Uint32(buf)
	rest := buf[lengthPrefixSize:]
	if uint64(pqLen)+lengthPrefixSize > uint64(len(rest)) {
		return nil, nil, ErrMalformedEncoding
	}
	pq = rest[:pqLen]
	rest = rest[pqLen:]

	classicalLen := binary.BigEndian.Uint32(rest)
	rest = rest[lengthPrefixSize:]
	if uint64(classicalLen) != uint64(len(rest)) {
		return nil, nil, ErrMalformedEncoding
	}
	classical = rest
	return pq, classical, nil
}

// EncodePublicKey encodes the two public key fragments into the composite
// wire form.
func EncodePublicKey(pqPub, classicalPub []byte) []byte {
	return encodeComposite(pqPub, classicalPub)
}

// EncodePrivateKey encodes the two private key fragments into the
// composite wire form.
func EncodePrivateKey(pqPriv, classicalPriv []byte) []byte {
	return encodeComposite(pqPriv, classicalPriv)
}

// SplitPublicKey parses an encoded composite public key into its
// post-quantum and classical fragments.
func SplitPublicKey(buf []byte) (pqPub, classicalPub []byte, err error) {
	return splitComposite(buf)
}

// SplitPrivateKey parses an encoded composite private key into its
// post-quantum and classical fragments.
func SplitPrivateKey(buf []byte) (pqPriv, classicalPriv []byte, err error) {
	return splitComposite(buf)
}

// SplitCiphertext splits a hybrid ciphertext into its post-quantum and
// classical parts. Both sub-lengths are fixed by the algorithm pair and
// must account for the buffer exactly.
func SplitCiphertext(ct []byte, pqLen, classicalLen int) (ctPQ, ctClassical []byte, err error) {
	if pqLen < 0 || classicalLen < 0 {
		return nil, nil, ErrLengthMismatch
	}
	if len(ct) != pqLen+classicalLen {
		return nil, nil, ErrLengthMismatch
	}
	return ct[:pqLen], ct[pqLen:], nil
}
