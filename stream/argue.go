// Package stream provides a lazy, single-pass alternative to the eager
// collection in the parent package.
//
// Instead of draining the command line up front, a stream.Argue classifies
// one raw token per pull against a caller-declared keyword set, so the
// guesswork about which keys carry values disappears, at the price of having
// to declare reserved keywords upfront. Validation and handling of whatever
// comes out remain the caller's business.
package stream

import (
	"os"
	"strings"
	"unicode/utf8"
)

// terminator is the end-of-options marker.
const terminator = "--"

// ArgumentKind identifies the classification of a yielded Argument.
type ArgumentKind uint8

const (
	// ArgCommand matches a keyword registered with AddCommand.
	ArgCommand ArgumentKind = iota

	// ArgKey matches a boolean keyword registered with AddKey.
	ArgKey

	// ArgKeyWithValue matches a keyword registered with AddKeyWithValue,
	// with its combined or consecutive value.
	ArgKeyWithValue

	// ArgOther is anything that matched no keyword.
	ArgOther

	// ArgInvalidUTF8 is a token that is not well-formed UTF-8. The raw bytes
	// are preserved so the caller can still dig in.
	ArgInvalidUTF8

	// ArgEnd holds everything found after the end-of-options marker,
	// collected as-is.
	ArgEnd
)

// Argument is one classified token yielded by Argue. In practice you will
// want to switch on Kind and take the appropriate action.
type Argument struct {
	Kind ArgumentKind

	// Name is the registry's canonical spelling for ArgCommand, ArgKey, and
	// ArgKeyWithValue.
	Name string

	// Value accompanies ArgKeyWithValue. Values are simply "whatever
	// follows", so a mistyped command line can put the wrong thing here.
	Value string

	// Raw is the unclassified token for ArgOther, or the original bytes for
	// ArgInvalidUTF8. When a pulled option value is malformed, Raw holds the
	// merged "key=value" form.
	Raw string

	// Rest holds the tokens after the end-of-options marker for ArgEnd,
	// with the marker itself stripped out. They receive no normalization or
	// scrutiny of any kind; feed them to a new Argue if you want them
	// parsed.
	Rest []string
}

// Argue is a streaming argument classifier. It is a single-pass pull
// iterator: each Next call classifies (at most) one raw token, and once the
// source is exhausted or an end-of-options marker has been seen, the stream
// stays ended.
type Argue struct {
	next  func() (string, bool)
	words *KeyWords
	ended bool
}

// New wraps an arbitrary token source. The next func must yield each raw
// token exactly once, in original order. words may be nil, in which case
// nothing ever matches.
func New(next func() (string, bool), words *KeyWords) *Argue {
	return &Argue{next: next, words: words}
}

// FromSlice streams over a token slice.
func FromSlice(tokens []string, words *KeyWords) *Argue {
	pos := 0
	return New(func() (string, bool) {
		if pos >= len(tokens) {
			return "", false
		}
		tok := tokens[pos]
		pos++
		return tok, true
	}, words)
}

// Args streams over the process arguments, excluding the program path.
func Args(words *KeyWords) *Argue {
	return FromSlice(os.Args[1:], words)
}

// Next classifies and returns the next logical argument. The second return
// is false once the stream has ended; empty tokens are discarded rather than
// yielded.
func (a *Argue) Next() (Argument, bool) {
	if a.ended {
		return Argument{}, false
	}
	for {
		raw, ok := a.next()
		if !ok {
			a.ended = true
			return Argument{}, false
		}

		// Tokens that aren't well-formed strings get returned as-is; no
		// classification is attempted.
		if !utf8.ValidString(raw) {
			return Argument{Kind: ArgInvalidUTF8, Raw: raw}, true
		}

		// Empty values that aren't associated with a key are pointless.
		if raw == "" {
			continue
		}

		// Past the separator, gobble up the remaining tokens without
		// further effort.
		if raw == terminator {
			return a.drain()
		}

		kw, ok := a.words.find(raw)
		if !ok {
			return Argument{Kind: ArgOther, Raw: raw}, true
		}

		switch kw.kind {
		case KindCommand:
			return Argument{Kind: ArgCommand, Name: kw.word}, true
		case KindKey:
			return Argument{Kind: ArgKey, Name: kw.word}, true
		default:
			return a.keyValue(kw, raw)
		}
	}
}

// keyValue resolves the value for a matched value-requiring key, pulling one
// more token when nothing was glued on.
func (a *Argue) keyValue(kw keyWord, raw string) (Argument, bool) {
	if raw == kw.word {
		v, ok := a.next()
		if !ok {
			// Dangling key at the end of the line; nothing to yield.
			a.ended = true
			return Argument{}, false
		}
		if !utf8.ValidString(v) {
			return Argument{Kind: ArgInvalidUTF8, Raw: kw.word + "=" + v}, true
		}
		return Argument{Kind: ArgKeyWithValue, Name: kw.word, Value: v}, true
	}

	v := raw[len(kw.word):]
	v = strings.TrimPrefix(v, "=")
	return Argument{Kind: ArgKeyWithValue, Name: kw.word, Value: v}, true
}

// drain collects everything after the end-of-options marker into a single
// ArgEnd, or ends the stream directly if nothing follows.
func (a *Argue) drain() (Argument, bool) {
	var rest []string
	for {
		tok, ok := a.next()
		if !ok {
			break
		}
		rest = append(rest, tok)
	}
	a.ended = true
	if len(rest) == 0 {
		return Argument{}, false
	}
	return Argument{Kind: ArgEnd, Rest: rest}, true
}
