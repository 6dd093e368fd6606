// SPDX-FileCopyrightText: © 2025 The hybridkem authors
// SPDX-License-Identifier: AGPL-3.0-only

// Package rand provides the CSPRNG used for all ephemeral key material.
// The output of the system entropy source is whitened with BLAKE2Xb so a
// misbehaving entropy source degrades to a PRF rather than structured
// output.
package rand

import (
	cryptoRand "crypto/rand"
	"io"
	"sync"

	"golang.org/x/crypto/blake2b"
)

const seedSize = 32

// Reader is a replacement for crypto/rand.Reader.
var Reader io.Reader = &whitenedReader{}

type whitenedReader struct {
	sync.Mutex
}

func (r *whitenedReader) Read(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}

	r.Lock()
	defer r.Unlock()

	var seed [seedSize]byte
	if _, err := io.ReadFull(cryptoRand.Reader, seed[:]); err != nil {
		return 0, err
	}

	xof, err := blake2b.NewXOF(uint32(len(b)), seed[:])
	if err != nil {
		return 0, err
	}
	return io.ReadFull(xof, b)
}
