// SPDX-FileCopyrightText: © 2025 The hybridkem authors
// SPDX-License-Identifier: AGPL-3.0-only

package kyber768

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oqs-go/hybridkem/kem"
)

func TestSchemeSizes(t *testing.T) {
	t.Parallel()

	s := Scheme()
	require.Equal(t, SharedKeySize, s.SharedKeySize())
	require.Equal(t, CiphertextSize, s.CiphertextSize())
	require.Equal(t, PublicKeySize, s.PublicKeySize())
	require.Equal(t, PrivateKeySize, s.PrivateKeySize())
	require.Equal(t, SeedSize, s.SeedSize())
}

func TestEncapDecap(t *testing.T) {
	t.Parallel()

	s := Scheme()

	pubkey, privkey, err := s.GenerateKeyPair()
	require.NoError(t, err)

	ct, ss, err := s.Encapsulate(pubkey)
	require.NoError(t, err)
	require.Len(t, ct, s.CiphertextSize())
	require.Len(t, ss, s.SharedKeySize())

	ss2, err := s.Decapsulate(privkey, ct)
	require.NoError(t, err)
	require.Equal(t, ss, ss2)
}

func TestSerialization(t *testing.T) {
	t.Parallel()

	s := Scheme()

	pubkey, privkey, err := s.GenerateKeyPair()
	require.NoError(t, err)

	pubBlob, err := pubkey.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, pubBlob, s.PublicKeySize())
	pubkey2, err := s.UnmarshalBinaryPublicKey(pubBlob)
	require.NoError(t, err)
	require.True(t, pubkey.Equal(pubkey2))

	privBlob, err := privkey.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, privBlob, s.PrivateKeySize())
	privkey2, err := s.UnmarshalBinaryPrivateKey(privBlob)
	require.NoError(t, err)
	require.True(t, privkey.Equal(privkey2))
	require.True(t, pubkey.Equal(privkey2.Public()))

	// A reconstituted private key decapsulates what its embedded public
	// key encapsulated.
	ct, ss, err := s.Encapsulate(privkey2.Public())
	require.NoError(t, err)
	ss2, err := s.Decapsulate(privkey2, ct)
	require.NoError(t, err)
	require.Equal(t, ss, ss2)

	_, err = s.UnmarshalBinaryPublicKey(pubBlob[:len(pubBlob)-1])
	require.ErrorIs(t, err, kem.ErrPubKeySize)
	_, err = s.UnmarshalBinaryPrivateKey(privBlob[:len(privBlob)-1])
	require.ErrorIs(t, err, kem.ErrPrivKeySize)
}

func TestImplicitRejection(t *testing.T) {
	t.Parallel()

	s := Scheme()

	pubkey, privkey, err := s.GenerateKeyPair()
	require.NoError(t, err)

	ct, ss, err := s.Encapsulate(pubkey)
	require.NoError(t, err)

	forged := append([]byte{}, ct...)
	forged[0] ^= 0x01

	ssForged, err := s.Decapsulate(privkey, forged)
	require.NoError(t, err)
	require.NotEqual(t, ss, ssForged)

	ssForged2, err := s.Decapsulate(privkey, forged)
	require.NoError(t, err)
	require.Equal(t, ssForged, ssForged2)

	_, err = s.Decapsulate(privkey, ct[:len(ct)-1])
	require.ErrorIs(t, err, kem.ErrCiphertextSize)
}

func TestDeriveKeyPair(t *testing.T) {
	t.Parallel()

	s := Scheme()

	seed := make([]byte, s.SeedSize())
	_, err := rand.Read(seed)
	require.NoError(t, err)

	pub1, priv1 := s.DeriveKeyPair(seed)
	pub2, priv2 := s.DeriveKeyPair(seed)
	require.True(t, pub1.Equal(pub2))
	require.True(t, priv1.Equal(priv2))

	require.Panics(t, func() {
		s.DeriveKeyPair(seed[:s.SeedSize()-1])
	})
}
