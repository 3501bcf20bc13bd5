package argyle

import "os"

// ArgumentSource yields raw argument tokens one at a time. Implementations
// must yield each token exactly once, in original order.
type ArgumentSource interface {
	Next() (tok []byte, ok bool)
}

// OSArgs returns a source over the process arguments, excluding the program
// path.
func OSArgs() ArgumentSource {
	return &stringSource{args: os.Args[1:]}
}

// StringSource returns a source over a string slice.
func StringSource(args []string) ArgumentSource {
	return &stringSource{args: args}
}

// SliceSource returns a source over a byte-slice slice. Tokens are yielded
// as-is, without copying.
func SliceSource(args [][]byte) ArgumentSource {
	return &sliceSource{args: args}
}

type stringSource struct {
	args []string
	pos  int
}

func (s *stringSource) Next() ([]byte, bool) {
	if s.pos >= len(s.args) {
		return nil, false
	}
	tok := []byte(s.args[s.pos])
	s.pos++
	return tok, true
}

type sliceSource struct {
	args [][]byte
	pos  int
}

func (s *sliceSource) Next() ([]byte, bool) {
	if s.pos >= len(s.args) {
		return nil, false
	}
	tok := s.args[s.pos]
	s.pos++
	return tok, true
}
