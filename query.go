package argyle

import "bytes"

// Peek borrows the first entry of any kind, if one exists.
func (a *Argue) Peek() ([]byte, bool) {
	if len(a.args) == 0 {
		return nil, false
	}
	return a.args[0], true
}

// MustPeek borrows the first entry without checking for its existence. It
// panics if the set is empty; call sites that constructed with FlagRequired
// have already established the precondition.
func (a *Argue) MustPeek() []byte {
	return a.args[0]
}

// Len reports the total number of entries of any kind.
func (a *Argue) Len() int {
	return len(a.args)
}

// Take returns the parsed entries, in CLI order, with glued key/value pairs
// already expanded into adjacent entries.
func (a *Argue) Take() [][]byte {
	return a.args
}

// Switch reports whether key is present.
func (a *Argue) Switch(key []byte) bool {
	for _, ki := range a.keys.slice() {
		if bytes.Equal(a.args[ki], key) {
			return true
		}
	}
	return false
}

// Switch2 reports whether either spelling is present. Generally used for a
// flag with both a short and long form.
func (a *Argue) Switch2(short, long []byte) bool {
	for _, ki := range a.keys.slice() {
		if k := a.args[ki]; bytes.Equal(k, short) || bytes.Equal(k, long) {
			return true
		}
	}
	return false
}

// Bitflag pairs a switch with the flag value it contributes to Bitflags.
type Bitflag struct {
	Key  []byte
	Flag uint64
}

// Bitflags folds the present switches into a combined flag value. Mixing
// Bitflags with individual Switch calls is fine.
func (a *Argue) Bitflags(pairs []Bitflag) uint64 {
	var flags uint64
	for _, p := range pairs {
		if a.Switch(p.Key) {
			flags |= p.Flag
		}
	}
	return flags
}

// Option returns the value corresponding to key, meaning the entry
// immediately following it. Only the first occurrence of key ever matches.
//
// This method is the only way the set learns that a key is an option rather
// than a switch, so the named/trailing boundary advances here. Query every
// expected option before reading trailing arguments.
//
// Note that the "value" is simply the next entry: if the user passed the key
// as a bare switch, the entry that follows (possibly another key) is returned
// anyway. No rule reconciles Switch/Option confusion for the same key.
func (a *Argue) Option(key []byte) ([]byte, bool) {
	return a.option(func(k []byte) bool {
		return bytes.Equal(k, key)
	})
}

// Option2 is Option checking both spellings; the first match wins.
func (a *Argue) Option2(short, long []byte) ([]byte, bool) {
	return a.option(func(k []byte) bool {
		return bytes.Equal(k, short) || bytes.Equal(k, long)
	})
}

func (a *Argue) option(match func([]byte) bool) ([]byte, bool) {
	for _, ki := range a.keys.slice() {
		if !match(a.args[ki]) {
			continue
		}
		vi := int(ki) + 1
		if vi >= len(a.args) {
			return nil, false
		}
		if uint16(vi) > a.last {
			a.last = uint16(vi)
		}
		return a.args[vi], true
	}
	return nil, false
}

// OptionValues returns the values for every occurrence of key, a derived
// convenience for commands that accept the same option multiple times. If
// delim is nonzero each value is additionally split on it, so a comma would
// turn "one,two" into "one" and "two". The boundary advances past every
// matched value, as with Option.
func (a *Argue) OptionValues(key []byte, delim byte) [][]byte {
	return a.optionValues(func(k []byte) bool {
		return bytes.Equal(k, key)
	}, delim)
}

// Option2Values is OptionValues checking both spellings.
func (a *Argue) Option2Values(short, long []byte, delim byte) [][]byte {
	return a.optionValues(func(k []byte) bool {
		return bytes.Equal(k, short) || bytes.Equal(k, long)
	}, delim)
}

func (a *Argue) optionValues(match func([]byte) bool, delim byte) [][]byte {
	var out [][]byte
	for _, ki := range a.keys.slice() {
		if !match(a.args[ki]) {
			continue
		}
		vi := int(ki) + 1
		if vi >= len(a.args) {
			continue
		}
		if uint16(vi) > a.last {
			a.last = uint16(vi)
		}
		if delim != 0 {
			out = append(out, bytes.Split(a.args[vi], []byte{delim})...)
		} else {
			out = append(out, a.args[vi])
		}
	}
	return out
}

// Args returns the trailing arguments: every entry past the named/trailing
// boundary. Query expected options first, as those queries can still move the
// boundary.
func (a *Argue) Args() [][]byte {
	idx := a.argIdx()
	if idx < len(a.args) {
		return a.args[idx:]
	}
	return nil
}

// Arg plucks the nth trailing argument, counting from zero. This differs
// from indexing Take(), whose zero index is the first entry of any kind.
func (a *Argue) Arg(idx int) ([]byte, bool) {
	start := a.argIdx()
	if start+idx < len(a.args) {
		return a.args[start+idx], true
	}
	return nil, false
}

// FirstArg returns the first trailing argument, or ErrNoArg if there is
// none.
func (a *Argue) FirstArg() ([]byte, error) {
	idx := a.argIdx()
	if idx >= len(a.args) {
		return nil, ErrNoArg
	}
	return a.args[idx], nil
}

// argIdx is the index of the first trailing argument. With no keys at all
// (and no subcommand mode) everything is trailing. The result may be out of
// range; callers bounds-check.
func (a *Argue) argIdx() int {
	if a.keys.empty() && a.flags&FlagSubcommand == 0 {
		return 0
	}
	return int(a.last) + 1
}
