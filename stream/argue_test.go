package stream

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testWords(t *testing.T) *KeyWords {
	t.Helper()
	kw := NewKeyWords()
	require.NoError(t, kw.AddCommand("subcommand"))
	require.NoError(t, kw.AddKeys("--long", "-s"))
	require.NoError(t, kw.AddKeysWithValue("--m", "--n", "-t", "-u"))
	return kw
}

func collect(a *Argue) []Argument {
	var out []Argument
	for {
		arg, ok := a.Next()
		if !ok {
			return out
		}
		out = append(out, arg)
	}
}

func TestStream(t *testing.T) {
	t.Parallel()

	tokens := []string{
		"subcommand",
		"",
		"-s",
		"--long",
		"-t2",
		"--m=yar",
		"--n",
		"yar",
		"-u",
		"2",
		"/foo/bar",
		"--",
	}

	// The trailing marker with nothing after it ends the stream quietly.
	require.Equal(
		t,
		[]Argument{
			{Kind: ArgCommand, Name: "subcommand"},
			{Kind: ArgKey, Name: "-s"},
			{Kind: ArgKey, Name: "--long"},
			{Kind: ArgKeyWithValue, Name: "-t", Value: "2"},
			{Kind: ArgKeyWithValue, Name: "--m", Value: "yar"},
			{Kind: ArgKeyWithValue, Name: "--n", Value: "yar"},
			{Kind: ArgKeyWithValue, Name: "-u", Value: "2"},
			{Kind: ArgOther, Raw: "/foo/bar"},
		},
		collect(FromSlice(tokens, testWords(t))),
	)

	// With tokens after the marker they surface as a single ArgEnd,
	// untouched, keys and all.
	tokens = append(tokens, "--end", "--m=yar")
	require.Equal(
		t,
		Argument{Kind: ArgEnd, Rest: []string{"--end", "--m=yar"}},
		collect(FromSlice(tokens, testWords(t)))[8],
	)
}

func TestStreamEnded(t *testing.T) {
	t.Parallel()

	a := FromSlice([]string{"--", "x"}, testWords(t))
	arg, ok := a.Next()
	require.True(t, ok)
	require.Equal(t, ArgEnd, arg.Kind)

	// Once ended, always ended.
	_, ok = a.Next()
	require.False(t, ok)
	_, ok = a.Next()
	require.False(t, ok)
}

func TestStreamValuePull(t *testing.T) {
	t.Parallel()

	kw := NewKeyWords()
	require.NoError(t, kw.AddKeyWithValue("--threads"))

	require.Equal(
		t,
		[]Argument{
			{Kind: ArgKeyWithValue, Name: "--threads", Value: "4"},
			{Kind: ArgOther, Raw: "build"},
		},
		collect(FromSlice([]string{"--threads=4", "build"}, kw)),
	)

	// A glued empty value is still a value.
	require.Equal(
		t,
		[]Argument{{Kind: ArgKeyWithValue, Name: "--threads", Value: ""}},
		collect(FromSlice([]string{"--threads="}, kw)),
	)

	// The value may be anything, even something key-shaped.
	require.Equal(
		t,
		[]Argument{{Kind: ArgKeyWithValue, Name: "--threads", Value: "--verbose"}},
		collect(FromSlice([]string{"--threads", "--verbose"}, kw)),
	)

	// A dangling key at the end of the line yields nothing.
	require.Empty(t, collect(FromSlice([]string{"--threads"}, kw)))
}

func TestStreamInvalidUTF8(t *testing.T) {
	t.Parallel()

	kw := NewKeyWords()
	require.NoError(t, kw.AddKeyWithValue("-o"))

	bad := string([]byte{0xff, 0xfe})

	// Standalone garbage passes through with its bytes intact.
	require.Equal(
		t,
		[]Argument{{Kind: ArgInvalidUTF8, Raw: bad}},
		collect(FromSlice([]string{bad}, kw)),
	)

	// Garbage pulled as an option value gets merged with its key.
	require.Equal(
		t,
		[]Argument{{Kind: ArgInvalidUTF8, Raw: "-o=" + bad}},
		collect(FromSlice([]string{"-o", bad}, kw)),
	)
}

func TestStreamNilWords(t *testing.T) {
	t.Parallel()

	// Without a keyword set everything is just Other.
	require.Equal(
		t,
		[]Argument{
			{Kind: ArgOther, Raw: "subcommand"},
			{Kind: ArgOther, Raw: "--long"},
		},
		collect(FromSlice([]string{"subcommand", "", "--long"}, nil)),
	)
}
