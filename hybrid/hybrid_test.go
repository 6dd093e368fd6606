// SPDX-FileCopyrightText: © 2025 The hybridkem authors
// SPDX-License-Identifier: AGPL-3.0-only

package hybrid

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oqs-go/hybridkem/kem/mlkem768"
	"github.com/oqs-go/hybridkem/nike/x25519"
	"github.com/oqs-go/hybridkem/rand"
)

func testHybridScheme() *Scheme {
	return New("x25519_mlkem768", mlkem768.Scheme(), x25519.Scheme(rand.Reader))
}

func TestHybridRoundTrip(t *testing.T) {
	t.Parallel()

	s := testHybridScheme()
	t.Logf("ciphertext size %d", s.CiphertextSize())
	t.Logf("shared key size %d", s.SharedKeySize())
	t.Logf("public key size %d", s.PublicKeySize())
	t.Logf("private key size %d", s.PrivateKeySize())

	pubkey, privkey, err := s.GenerateKeyPair()
	require.NoError(t, err)

	ct, ssA, err := s.Encapsulate(pubkey)
	require.NoError(t, err)
	require.Len(t, ct, s.CiphertextSize())
	require.Len(t, ssA, s.SharedKeySize())

	ssB, err := s.Decapsulate(privkey, ct)
	require.NoError(t, err)
	require.Equal(t, ssA, ssB)

	// Fresh classical ephemerals per call.
	ct2, ss2, err := s.Encapsulate(pubkey)
	require.NoError(t, err)
	require.NotEqual(t, ct, ct2)
	require.NotEqual(t, ssA, ss2)
}

func TestHybridKeyMarshaling(t *testing.T) {
	t.Parallel()

	s := testHybridScheme()
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

	require.True(t, privkey2.Public().Equal(pubkey))

	_, err = s.UnmarshalBinaryPublicKey(pubBlob[:len(pubBlob)-1])
	require.ErrorIs(t, err, ErrMalformedEncoding)
	_, err = s.UnmarshalBinaryPrivateKey(privBlob[:len(privBlob)-1])
	require.ErrorIs(t, err, ErrMalformedEncoding)
}

// The combined secret is ss_pq || ss_classical and the ciphertext is
// ct_pq || ephemeral_classical_public. Both orderings are wire contracts;
// recompute each half with the component schemes to pin them.
func TestHybridOrderingContract(t *testing.T) {
	t.Parallel()

	s := testHybridScheme()
	pubkey, privkey, err := s.GenerateKeyPair()
	require.NoError(t, err)

	ct, ss, err := s.Encapsulate(pubkey)
	require.NoError(t, err)

	pqCtLen := s.PQ().CiphertextSize()
	priv := privkey.(*PrivateKey)

	ssPQ, err := s.PQ().Decapsulate(priv.pq, ct[:pqCtLen])
	require.NoError(t, err)
	require.Equal(t, ssPQ, ss[:s.PQ().SharedKeySize()])

	ephPub, err := s.Classical().UnmarshalBinaryPublicKey(ct[pqCtLen:])
	require.NoError(t, err)
	ssClassical := s.Classical().DeriveSecret(priv.classical, ephPub)
	require.Equal(t, ssClassical, ss[s.PQ().SharedKeySize():])
}

func TestHybridImplicitRejection(t *testing.T) {
	t.Parallel()

	s := testHybridScheme()
	pubkey, privkey, err := s.GenerateKeyPair()
	require.NoError(t, err)

	ct, ss, err := s.Encapsulate(pubkey)
	require.NoError(t, err)

	// Flip one random bit in the PQ part of the ciphertext.
	var idx [2]byte
	_, err = rand.Reader.Read(idx[:])
	require.NoError(t, err)
	bit := int(idx[0]) | int(idx[1])<<8
	bit %= s.PQ().CiphertextSize() * 8
	forged := append([]byte{}, ct...)
	forged[bit/8] ^= 1 << (bit % 8)

	ssForged, err := s.Decapsulate(privkey, forged)
	require.NoError(t, err)
	require.Len(t, ssForged, s.SharedKeySize())
	require.NotEqual(t, ss, ssForged)

	// Rejection is deterministic.
	ssForged2, err := s.Decapsulate(privkey, forged)
	require.NoError(t, err)
	require.Equal(t, ssForged, ssForged2)

	// Wrong total lengths are structural and fail before any
	// cryptographic work.
	_, err = s.Decapsulate(privkey, ct[:len(ct)-1])
	require.ErrorIs(t, err, ErrInvalidCiphertextLength)
	_, err = s.Decapsulate(privkey, append(append([]byte{}, ct...), 0x00))
	require.ErrorIs(t, err, ErrInvalidCiphertextLength)
}

func TestHybridCrossPeerAgreement(t *testing.T) {
	t.Parallel()

	s := testHybridScheme()
	for i := 0; i < 100; i++ {
		pubkey, privkey, err := s.GenerateKeyPair()
		require.NoError(t, err)

		ct, ssA, err := s.Encapsulate(pubkey)
		require.NoError(t, err)
		ssB, err := s.Decapsulate(privkey, ct)
		require.NoError(t, err)

		require.Len(t, ssA, 64)
		require.Equal(t, ssA, ssB, "trial %d", i)
	}
}

func TestHybridDeriveKeyPair(t *testing.T) {
	t.Parallel()

	s := testHybridScheme()
	seed := make([]byte, s.SeedSize())
	_, err := rand.Reader.Read(seed)
	require.NoError(t, err)

	pub1, priv1 := s.DeriveKeyPair(seed)
	pub2, priv2 := s.DeriveKeyPair(seed)
	require.True(t, pub1.Equal(pub2))
	require.True(t, priv1.Equal(priv2))

	require.Panics(t, func() { s.DeriveKeyPair(seed[:len(seed)-1]) })
}
