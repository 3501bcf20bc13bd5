package argyle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testClassify(arg string, kind KeyKind, eq int) func(t *testing.T) {
	return func(t *testing.T) {
		t.Helper()
		gotKind, gotEq := Classify([]byte(arg))
		require.Equal(t, kind, gotKind)
		require.Equal(t, eq, gotEq)
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	t.Run("empty", testClassify("", KeyNone, 0))
	t.Run("plain text", testClassify("Your Mom", KeyNone, 0))
	t.Run("bare dash", testClassify("-", KeyNone, 0))
	t.Run("bare double dash", testClassify("--", KeyNone, 0))
	t.Run("short digit", testClassify("-0", KeyNone, 0))
	t.Run("short", testClassify("-y", KeyShort, 0))
	t.Run("short glued", testClassify("-yp", KeyShortVal, 0))
	t.Run("long digit", testClassify("--0", KeyNone, 0))
	t.Run("long", testClassify("--yes", KeyLong, 0))
	t.Run("long inner dash", testClassify("--y-p", KeyLong, 0))
	t.Run("long glued", testClassify("--yes=no", KeyLongVal, 5))
	t.Run("long glued empty", testClassify("--yes=", KeyLongVal, 5))
	t.Run("first equals wins", testClassify("--yes=no=maybe", KeyLongVal, 5))
	t.Run("long non-ascii payload", testClassify("--BjörkGuðmundsdóttir", KeyLong, 0))
	t.Run("long non-ascii glued", testClassify("--BjörkGuðmunds=dóttir", KeyLongVal, 17))
	t.Run("short non-ascii payload", testClassify("-yö", KeyShortVal, 0))
}

func testSplit(arg, key, value string, hasValue bool) func(t *testing.T) {
	return func(t *testing.T) {
		t.Helper()
		kind, eq := Classify([]byte(arg))
		k, v, hv := splitKeyValue(kind, eq, []byte(arg))
		require.Equal(t, key, string(k))
		require.Equal(t, value, string(v))
		require.Equal(t, hasValue, hv)
	}
}

func TestSplitKeyValue(t *testing.T) {
	t.Parallel()

	t.Run("positional untouched", testSplit("hey", "hey", "", false))
	t.Run("short untouched", testSplit("-k", "-k", "", false))
	t.Run("long untouched", testSplit("--key", "--key", "", false))
	t.Run("short glued", testSplit("-kVal", "-k", "Val", true))
	t.Run("long glued", testSplit("--key=Val", "--key", "Val", true))
	t.Run("long glued empty", testSplit("--empty=", "--empty", "", true))
	t.Run("long glued extra equals", testSplit("--key=a=b", "--key", "a=b", true))
}

func TestSplitRoundTrip(t *testing.T) {
	t.Parallel()

	for _, arg := range []string{"-kVal", "--key=Val", "--empty=", "--key=a=b"} {
		kind, eq := Classify([]byte(arg))
		k, v, hv := splitKeyValue(kind, eq, []byte(arg))
		require.True(t, hv, arg)

		joined := string(k)
		if kind == KeyLongVal {
			joined += "="
		}
		joined += string(v)
		require.Equal(t, arg, joined)
	}
}
