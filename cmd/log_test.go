package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alantheprice/promptkit/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTailLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "promptkit.log")
	require.NoError(t, os.WriteFile(path, []byte("a\nb\nc\nd\n"), 0600))

	lines, err := tailLines(path, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, lines)

	lines, err = tailLines(path, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, lines)

	_, err = tailLines(filepath.Join(t.TempDir(), "absent.log"), 10)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPageLines(t *testing.T) {
	lines := []string{"1", "2", "3", "4", "5"}

	t.Run("all pages", func(t *testing.T) {
		var out bytes.Buffer
		asked := 0
		err := pageLines(&out, lines, 2, func() (bool, error) { asked++; return true, nil })
		require.NoError(t, err)
		assert.Equal(t, 2, asked)
		assert.True(t, strings.HasPrefix(out.String(), "1\n2\n3\n4\n5\n"))
	})

	t.Run("declined", func(t *testing.T) {
		var out bytes.Buffer
		err := pageLines(&out, lines, 2, func() (bool, error) { return false, nil })
		require.NoError(t, err)
		assert.Equal(t, "1\n2\n", out.String())
	})

	t.Run("cancelled", func(t *testing.T) {
		var out bytes.Buffer
		err := pageLines(&out, lines, 3, func() (bool, error) { return false, ui.ErrCancelled })
		require.NoError(t, err)
		assert.Equal(t, "1\n2\n3\n", out.String())
	})

	t.Run("fault", func(t *testing.T) {
		boom := errors.New("boom")
		err := pageLines(&bytes.Buffer{}, lines, 1, func() (bool, error) { return false, boom })
		assert.ErrorIs(t, err, boom)
	})
}
