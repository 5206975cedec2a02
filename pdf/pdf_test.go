// Copyright 2026 Tamas Gulacsi. All rights reserved.

package pdf

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/UNO-SOFT/gridtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *gridtable.Table {
	return &gridtable.Table{
		Columns: []any{"name", "qty", "when"},
		Index:   []any{0, 1},
		Data: [][]any{
			{"apple", int64(3), time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
			{"pear", 1.5, nil},
		},
	}
}

func TestStrings(t *testing.T) {
	headers, contents := Strings(sample(), true)
	assert.Equal(t, []string{"", "name", "qty", "when"}, headers)
	assert.Equal(t, [][]string{
		{"0", "apple", "3", "2024-01-02"},
		{"1", "pear", "1.5", ""},
	}, contents)
}

func TestGridSizes(t *testing.T) {
	assert.Empty(t, GridSizes(nil, nil))
	sizes := GridSizes([]string{"a", "bbbbbbbbbbbbbbbbbbbb"}, [][]string{{"", "cccccccccccccccccccc"}})
	require.Len(t, sizes, 2)
	for _, s := range sizes {
		assert.GreaterOrEqual(t, s, uint(1))
	}
}

func TestColor(t *testing.T) {
	var c Color
	require.NoError(t, c.Set("0a0b0c"))
	assert.Equal(t, "0a0b0c", c.String())
	assert.Error(t, c.Parse("zz"))
	assert.Error(t, c.Parse("0a0b"))
}

func TestRender(t *testing.T) {
	opts := DefaultOptions()
	opts.PageNumbers = true
	buf, err := Render(sample(), opts)
	require.NoError(t, err)
	assert.True(t, len(buf.Bytes()) > 4)
	assert.Equal(t, "%PDF", string(buf.Bytes()[:4]))

	fn := filepath.Join(t.TempDir(), "a.pdf")
	require.NoError(t, WriteFile(fn, sample(), DefaultOptions()))
}
