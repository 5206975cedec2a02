// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package gridtable

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func styledSheet() *memSheet {
	ms := newMemSheet("s", [][]any{{"a", "b"}, {int64(1), int64(2)}, {nil, 3.5}})
	for _, c := range ms.cells {
		c.border, c.font = true, "Arial"
	}
	return ms
}

func TestClearDataOnly(t *testing.T) {
	ms := styledSheet()
	ws, err := Clear(OnSheet(ms), true)
	require.NoError(t, err)
	assert.Same(t, ms, ws)
	require.Len(t, ms.cells, 6)
	for k, c := range ms.cells {
		assert.Equal(t, "", c.value, "%v", k)
		assert.False(t, c.border, "%v", k)
		assert.Equal(t, "Arial", c.font, "%v", k)
	}
}

func TestClearAll(t *testing.T) {
	ms := styledSheet()
	_, err := Clear(InDocument(newMemDoc(ms), "s"), false)
	require.NoError(t, err)
	for k, c := range ms.cells {
		assert.Equal(t, "", c.value, "%v", k)
		assert.False(t, c.border, "%v", k)
		assert.Equal(t, ResetFontFamily, c.font, "%v", k)
	}
}

func TestClearAddressError(t *testing.T) {
	_, err := Clear(InDocument(newMemDoc(roSheet{name: "ro"}), "ro"), true)
	var ae *AddressError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, KindReadOnly, ae.Kind)
	assert.ErrorIs(t, err, ErrReadOnly)
}
