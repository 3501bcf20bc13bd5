package argyle

import "bytes"

// KeyKind classifies a single raw argument token by shape. Classification is
// purely syntactic and only inspects the first few bytes: anything past the
// checked prefix is opaque payload, so non-ASCII continuation bytes after a
// valid dash-letter prefix do not stop a token from being a key.
type KeyKind uint8

const (
	// KeyNone marks a token that is not key-shaped. Note that "-" and "--"
	// on their own classify as KeyNone; the end-of-options terminator is the
	// caller's business, not the classifier's.
	KeyNone KeyKind = iota

	// KeyShort is a dash followed by exactly one ASCII letter, e.g. "-v".
	KeyShort

	// KeyShortVal is a short key with a glued value, e.g. "-kVal".
	KeyShortVal

	// KeyLong is two dashes, an ASCII letter, and any further bytes without
	// an "=", e.g. "--verbose".
	KeyLong

	// KeyLongVal is a long key containing an "=", e.g. "--key=Val".
	KeyLongVal
)

// Classify returns the KeyKind of a raw token and, for KeyLongVal, the byte
// index of the first "=" (always greater than 2 and less than the token
// length). The offset is zero for every other kind.
func Classify(arg []byte) (KeyKind, int) {
	if len(arg) >= 2 && arg[0] == '-' {
		if arg[1] == '-' {
			if len(arg) > 2 && isASCIILetter(arg[2]) {
				if p := bytes.IndexByte(arg, '='); p >= 0 {
					return KeyLongVal, p
				}
				return KeyLong, 0
			}
		} else if isASCIILetter(arg[1]) {
			if len(arg) == 2 {
				return KeyShort, 0
			}
			return KeyShortVal, 0
		}
	}
	return KeyNone, 0
}

// splitKeyValue splits a classified token into its key and glued value, if
// any. The returned slices alias arg; no copies are made. A long key with a
// trailing "=" yields an explicit empty value rather than no value.
func splitKeyValue(kind KeyKind, eq int, arg []byte) (key, value []byte, hasValue bool) {
	switch kind {
	case KeyShortVal:
		return arg[:2], arg[2:], true
	case KeyLongVal:
		return arg[:eq], arg[eq+1:], true
	default:
		return arg, nil, false
	}
}

func isASCIILetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}
