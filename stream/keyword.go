package stream

import "strings"

// Kind tags a registered keyword.
type Kind uint8

const (
	// KindCommand marks a (sub)command keyword.
	KindCommand Kind = iota

	// KindKey marks a boolean key.
	KindKey

	// KindKeyWithValue marks a key requiring a value.
	KindKeyWithValue
)

type keyWord struct {
	word string
	kind Kind
}

// KeyWords is the set of reserved keywords ((sub)commands, switches, and
// options) an Argue iterator matches tokens against. Keywords are validated
// and de-duplicated as they are added; build the set completely before
// iteration begins and do not modify it afterward.
//
// The shape rules are opinionated:
//
//   - commands must start with an ASCII alphanumeric and may only contain
//     alphanumerics, "-", and "_" thereafter;
//   - short keys are exactly a dash and one alphanumeric;
//   - long keys are two dashes, an alphanumeric, and any number of
//     alphanumerics, "-", or "_".
type KeyWords struct {
	m map[string]keyWord
}

// NewKeyWords returns an empty keyword set.
func NewKeyWords() *KeyWords {
	return &KeyWords{m: make(map[string]keyWord)}
}

// AddCommand registers a (sub)command. Leading/trailing whitespace is
// trimmed and empty strings are silently ignored.
func (k *KeyWords) AddCommand(word string) error {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil
	}
	if !validCommand(word) {
		return &InvalidKeyError{Word: word}
	}
	return k.insert(word, KindCommand)
}

// AddKey registers a boolean key.
func (k *KeyWords) AddKey(word string) error {
	return k.addKey(word, KindKey)
}

// AddKeyWithValue registers a key that requires a value.
func (k *KeyWords) AddKeyWithValue(word string) error {
	return k.addKey(word, KindKeyWithValue)
}

// AddCommands registers several (sub)commands, stopping at the first error.
func (k *KeyWords) AddCommands(words ...string) error {
	for _, w := range words {
		if err := k.AddCommand(w); err != nil {
			return err
		}
	}
	return nil
}

// AddKeys registers several boolean keys, stopping at the first error.
func (k *KeyWords) AddKeys(words ...string) error {
	for _, w := range words {
		if err := k.AddKey(w); err != nil {
			return err
		}
	}
	return nil
}

// AddKeysWithValue registers several value-requiring keys, stopping at the
// first error.
func (k *KeyWords) AddKeysWithValue(words ...string) error {
	for _, w := range words {
		if err := k.AddKeyWithValue(w); err != nil {
			return err
		}
	}
	return nil
}

func (k *KeyWords) addKey(word string, kind Kind) error {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil
	}
	if !validKey(word) {
		return &InvalidKeyError{Word: word}
	}
	return k.insert(word, kind)
}

func (k *KeyWords) insert(word string, kind Kind) error {
	if _, dup := k.m[word]; dup {
		return &DuplicateKeyError{Word: word}
	}
	k.m[word] = keyWord{word: word, kind: kind}
	return nil
}

// find matches raw against the set: first exactly, then, for key-shaped
// tokens long enough to be gluing a value, by the derived sub-key (the first
// two bytes of a short-looking token, or the text before the first "=" of a
// long-looking one). The returned keyWord carries the canonical spelling.
func (k *KeyWords) find(raw string) (keyWord, bool) {
	if k == nil || raw == "" || !(raw[0] == '-' || isAlnum(raw[0])) {
		return keyWord{}, false
	}
	if kw, ok := k.m[raw]; ok {
		return kw, true
	}
	if len(raw) < 3 || raw[0] != '-' {
		return keyWord{}, false
	}

	var needle string
	switch {
	case isAlnum(raw[1]):
		needle = raw[:2]
	case raw[1] == '-' && isAlnum(raw[2]):
		eq := strings.IndexByte(raw, '=')
		if eq < 0 {
			return keyWord{}, false
		}
		needle = raw[:eq]
	default:
		return keyWord{}, false
	}
	kw, ok := k.m[needle]
	return kw, ok
}

func validCommand(word string) bool {
	if !isAlnum(word[0]) {
		return false
	}
	for i := 1; i < len(word); i++ {
		if !validKeyByte(word[i]) {
			return false
		}
	}
	return true
}

func validKey(word string) bool {
	dashes := 0
	for dashes < len(word) && word[dashes] == '-' {
		dashes++
	}
	rest := word[dashes:]

	switch dashes {
	case 1:
		return len(rest) == 1 && isAlnum(rest[0])
	case 2:
		if len(rest) == 0 || !isAlnum(rest[0]) {
			return false
		}
		for i := 1; i < len(rest); i++ {
			if !validKeyByte(rest[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func validKeyByte(b byte) bool {
	return b == '-' || b == '_' || isAlnum(b)
}

func isAlnum(b byte) bool {
	return ('0' <= b && b <= '9') || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}
