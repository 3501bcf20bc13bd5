package argyle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithList(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "args.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\n\n  two  \n"), 0o600))

	args, err := FromStrings([]string{"-l", path, "x"}, 0)
	require.NoError(t, err)
	require.Equal(t, bs("x", "one", "two"), args.WithList().Args())

	// A missing file changes nothing, except that the option lookup has
	// advanced the boundary either way.
	args, err = FromStrings([]string{"--list", "/definitely/not/here", "x"}, 0)
	require.NoError(t, err)
	require.Equal(t, bs("x"), args.WithList().Args())

	// No list option at all is a no-op too.
	args, err = FromStrings([]string{"x"}, 0)
	require.NoError(t, err)
	require.Equal(t, bs("x"), args.WithList().Args())
}
