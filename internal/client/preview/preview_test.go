package preview

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_WritesTempFile(t *testing.T) {
	h, err := New([]byte("PNGBYTES"), ".png")
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Release() })

	require.NotEmpty(t, h.ID)
	require.True(t, strings.HasSuffix(h.Path, ".png"))

	data, err := os.ReadFile(h.Path)
	require.NoError(t, err)
	require.Equal(t, "PNGBYTES", string(data))
}

func TestRelease_RemovesFileExactlyOnce(t *testing.T) {
	h, err := New([]byte("x"), "")
	require.NoError(t, err)

	require.NoError(t, h.Release())
	_, statErr := os.Stat(h.Path)
	require.True(t, os.IsNotExist(statErr))

	// Releasing again stays a no-op even though the file is gone.
	require.NoError(t, h.Release())
	require.NoError(t, h.Release())
}

func TestNew_DistinctHandles(t *testing.T) {
	a, err := New([]byte("a"), ".png")
	require.NoError(t, err)
	b, err := New([]byte("b"), ".png")
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Release(); _ = b.Release() })

	require.NotEqual(t, a.Path, b.Path)
}
