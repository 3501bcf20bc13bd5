package argyle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEscapeArg(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		src      string
		expected string
	}{
		{"", "''"},
		{" ", "' '"},
		{"Hello", "Hello"},
		{"Hello World", "'Hello World'"},
		{`\path\to\file`, "/path/to/file"},
		{"Eat at Joe's", `'Eat at Joe\'s'`},
		{"Björk's Vespertine", `'Björk\'s Vespertine'`},
	} {
		require.Equal(t, tc.expected, string(escapeArg([]byte(tc.src))), "src: %q", tc.src)
	}
}
