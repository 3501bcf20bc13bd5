package argyle

import (
	"bufio"
	"bytes"
	"os"
)

// WithList appends arguments from a text file. If a "-l" or "--list" option
// names a readable file, each of its non-empty trimmed lines is appended to
// the set as an additional trailing argument, exactly as if provided
// directly. No judgments are passed on the contents; if a line has length,
// it is appended.
//
// If you use this to seed a command with file paths, make them absolute:
// their relativity will likely be lost in translation.
//
// WithList always transparently returns the receiver.
func (a *Argue) WithList() *Argue {
	path, ok := a.Option2(listShort, listLong)
	if !ok {
		return a
	}
	f, err := os.Open(string(path))
	if err != nil {
		return a
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		a.args = append(a.args, append([]byte(nil), line...))
	}
	return a
}
