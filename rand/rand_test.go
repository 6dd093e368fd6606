// SPDX-FileCopyrightText: © 2025 The hybridkem authors
// SPDX-License-Identifier: AGPL-3.0-only

package rand

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oqs-go/hybridkem/util"
)

func TestReader(t *testing.T) {
	t.Parallel()

	a := make([]byte, 64)
	n, err := Reader.Read(a)
	require.NoError(t, err)
	require.Equal(t, len(a), n)
	require.False(t, util.CtIsZero(a))

	b := make([]byte, 64)
	_, err = Reader.Read(b)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}
