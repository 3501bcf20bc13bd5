package argyle

import (
	"bytes"
	"math"
)

// Argue is an agnostic CLI argument collection. It holds no information about
// which arguments an application expects or requires; it merely tokenizes the
// raw command line into a consistent state so the caller can query the pieces
// as needed.
//
// A "key" is an entry beginning with one or two dashes and an ASCII letter.
// Short keys ("-k") are exactly two bytes; anything glued past that is split
// off into its own value entry, so "-kVal" is equivalent to "-k Val". Long
// keys ("--key") split at the first "=", so "--key=Val" is equivalent to
// "--key Val".
//
// A key without a value is a switch; a key with one following value is an
// option. Multi-value options are not supported as a first-class concept
// (see OptionValues for the derived convenience).
//
// Restrictions: at most 15 keys; at most 65535 total entries; keys are not
// checked for uniqueness but only the first occurrence of a key ever matches;
// parsing stops at an end-of-options "--" (see FlagSeparator for the
// alternative to discarding the remainder).
type Argue struct {
	args [][]byte
	keys keyList

	// last is the index of the last entry known to be named: a key, or an
	// option value consumed via Option. It divides named entries from
	// trailing ones and only ever advances. The only way the set learns a
	// key was an option rather than a switch is an Option call, so callers
	// must query every option they care about before reading trailing
	// arguments.
	last uint16

	flags uint8
}

const maxEntries = math.MaxUint16

var (
	terminator = []byte("--")
	helpWord   = []byte("help")
	shortHelp  = []byte("-h")
	longHelp   = []byte("--help")
	shortVer   = []byte("-V")
	longVer    = []byte("--version")
	listShort  = []byte("-l")
	listLong   = []byte("--list")
)

// New parses the process arguments (excluding the program path) with the
// given parse flags.
//
// The returned error is either a construction failure (ErrTooManyKeys,
// ErrTooManyArgs, ErrEmpty) or a control-flow signal (ErrWantsHelp,
// ErrWantsVersion, WantsDynamicHelp) the caller should branch on and exit
// cleanly.
func New(flags uint8) (*Argue, error) {
	return FromSource(OSArgs(), flags)
}

// FromStrings parses a string token slice. See FromSource.
func FromStrings(tokens []string, flags uint8) (*Argue, error) {
	return FromSource(StringSource(tokens), flags)
}

// FromSource drains src into a new set. Leading empty or all-whitespace
// tokens are skipped outright; every subsequent token is classified and, if
// it glues a key to a value, split into two adjacent entries. Construction
// either succeeds completely or fails with no partial set.
func FromSource(src ArgumentSource, flags uint8) (*Argue, error) {
	a := &Argue{flags: flags}

	seen := false
	for {
		tok, ok := src.Next()
		if !ok {
			break
		}
		if !seen {
			if allASCIIWhitespace(tok) {
				continue
			}
			seen = true
		}
		if bytes.Equal(tok, terminator) {
			if err := a.finishSeparator(src); err != nil {
				return nil, err
			}
			break
		}
		if err := a.push(tok); err != nil {
			return nil, err
		}
	}

	return a.resolveFlags()
}

// push classifies and appends one token.
func (a *Argue) push(tok []byte) error {
	kind, eq := Classify(tok)
	key, value, hasValue := splitKeyValue(kind, eq, tok)

	inc := 1
	if hasValue {
		inc = 2
	}
	idx := len(a.args)
	if idx+inc > maxEntries {
		return ErrTooManyArgs
	}

	if kind == KeyNone {
		a.args = append(a.args, key)
		return nil
	}

	// Glued values disqualify the reserved help/version spellings.
	if !hasValue {
		switch {
		case bytes.Equal(key, shortVer), bytes.Equal(key, longVer):
			a.flags |= flagHasVersion
		case bytes.Equal(key, shortHelp), bytes.Equal(key, longHelp):
			a.flags |= flagHasHelp
		}
	}

	if !a.keys.push(uint16(idx)) {
		return ErrTooManyKeys
	}
	a.args = append(a.args, key)
	if hasValue {
		a.args = append(a.args, value)
	}
	a.last = uint16(idx + inc - 1)
	return nil
}

// finishSeparator handles everything after an end-of-options "--". In the
// default configuration the remainder is discarded; with FlagSeparator it is
// re-glued into a single shell-escaped trailing entry replacing the marker.
func (a *Argue) finishSeparator(src ArgumentSource) error {
	if a.flags&FlagSeparator == 0 {
		return nil
	}

	var glued []byte
	any := false
	for {
		tok, ok := src.Next()
		if !ok {
			break
		}
		if any {
			glued = append(glued, ' ')
		}
		glued = append(glued, escapeArg(tok)...)
		any = true
	}
	if !any {
		return nil
	}
	if len(a.args)+1 > maxEntries {
		return ErrTooManyArgs
	}
	a.args = append(a.args, glued)
	return nil
}

// resolveFlags turns the derived parse state into control-flow signals, in
// fixed priority order.
func (a *Argue) resolveFlags() (*Argue, error) {
	if len(a.args) == 0 {
		if a.flags&FlagRequired != 0 {
			return nil, ErrEmpty
		}
		return a, nil
	}
	if a.flags&flagDoVersion == flagDoVersion {
		return nil, ErrWantsVersion
	}
	if err := a.helpFlag(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Argue) helpFlag() error {
	if a.flags&flagAnyHelp == 0 {
		return nil
	}
	first := a.args[0]
	if a.flags&flagHasHelp == 0 && !bytes.Equal(first, helpWord) {
		return nil
	}
	if a.flags&FlagHelp != 0 {
		return ErrWantsHelp
	}
	if len(first) != 0 && first[0] != '-' && !bytes.Equal(first, helpWord) {
		return WantsDynamicHelp(first)
	}
	return WantsDynamicHelp(nil)
}

func allASCIIWhitespace(tok []byte) bool {
	for _, b := range tok {
		switch b {
		case ' ', '\t', '\n', '\f', '\r':
		default:
			return false
		}
	}
	return true
}
