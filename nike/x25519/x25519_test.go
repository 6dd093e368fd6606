// SPDX-FileCopyrightText: © 2025 The hybridkem authors
// SPDX-License-Identifier: AGPL-3.0-only

package x25519

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oqs-go/hybridkem/rand"
)

func TestKeyExchange(t *testing.T) {
	t.Parallel()

	s := Scheme(rand.Reader)

	alicePub, alicePriv, err := s.GenerateKeyPair()
	require.NoError(t, err)
	bobPub, bobPriv, err := s.GenerateKeyPair()
	require.NoError(t, err)

	aliceS := s.DeriveSecret(alicePriv, bobPub)
	bobS := s.DeriveSecret(bobPriv, alicePub)
	require.Equal(t, aliceS, bobS)
	require.Len(t, aliceS, SharedSecretSize)
}

func TestSerialization(t *testing.T) {
	t.Parallel()

	s := Scheme(rand.Reader)

	pub, priv, err := s.GenerateKeyPair()
	require.NoError(t, err)

	pubBlob, err := pub.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, pubBlob, PublicKeySize)
	pub2, err := s.UnmarshalBinaryPublicKey(pubBlob)
	require.NoError(t, err)
	require.Equal(t, pub.Bytes(), pub2.Bytes())

	privBlob, err := priv.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, privBlob, PrivateKeySize)
	priv2, err := s.UnmarshalBinaryPrivateKey(privBlob)
	require.NoError(t, err)
	require.Equal(t, priv.Bytes(), priv2.Bytes())

	require.Equal(t, pub.Bytes(), s.DerivePublicKey(priv2).Bytes())

	_, err = s.UnmarshalBinaryPublicKey(pubBlob[:PublicKeySize-1])
	require.Error(t, err)
	_, err = s.UnmarshalBinaryPrivateKey(append(privBlob, 0))
	require.Error(t, err)
}

func TestExpLowOrderPoint(t *testing.T) {
	t.Parallel()

	priv, err := NewKeypair(rand.Reader)
	require.NoError(t, err)

	// The identity element exponentiates to all zeros, not an error.
	zeroPub := make([]byte, GroupElementLength)
	ss := Exp(zeroPub, priv.Bytes())
	require.Equal(t, make([]byte, GroupElementLength), ss)

	// And it does so consistently across calls.
	require.Equal(t, ss, Exp(zeroPub, priv.Bytes()))
}

func TestPrivateKeyReset(t *testing.T) {
	t.Parallel()

	priv, err := NewKeypair(rand.Reader)
	require.NoError(t, err)
	require.NotEqual(t, make([]byte, PrivateKeySize), priv.Bytes())

	priv.Reset()
	require.Equal(t, make([]byte, PrivateKeySize), priv.Bytes())
}
