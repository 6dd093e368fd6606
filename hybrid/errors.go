// SPDX-FileCopyrightText: © 2025 The hybridkem authors
// SPDX-License-Identifier: AGPL-3.0-only

package hybrid

import "errors"

var (
	// ErrInvalidKeyForOperation is returned when a composite key lacks
	// the fragments required for the requested operation direction.
	ErrInvalidKeyForOperation = errors.New("hybrid: key lacks required fragments for operation")

	// ErrMalformedEncoding is returned when a length-prefixed buffer is
	// inconsistent with its own declared lengths.
	ErrMalformedEncoding = errors.New("hybrid: encoding inconsistent with declared lengths")

	// ErrLengthMismatch is returned when a caller-supplied buffer does
	// not match the algorithm-derived length.
	ErrLengthMismatch = errors.New("hybrid: buffer length mismatch")

	// ErrInvalidKeyEncoding is returned when classical key bytes cannot
	// be parsed into a valid key object.
	ErrInvalidKeyEncoding = errors.New("hybrid: invalid classical key encoding")

	// ErrDeriveFailed is returned when the classical exchange reports an
	// internal failure.
	ErrDeriveFailed = errors.New("hybrid: classical key agreement failed")

	// ErrEncapsulationFailed is returned when a primitive fails during
	// encapsulation.
	ErrEncapsulationFailed = errors.New("hybrid: encapsulation failed")

	// ErrDecapsulationFailed is returned when a primitive fails during
	// decapsulation.
	ErrDecapsulationFailed = errors.New("hybrid: decapsulation failed")

	// ErrInvalidCiphertextLength is returned when a decapsulation input
	// does not match the expected total length.
	ErrInvalidCiphertextLength = errors.New("hybrid: invalid ciphertext length")
)
