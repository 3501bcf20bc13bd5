package argyle

// escapeArg crudely quotes v so the re-glued separator tail can survive a
// later shell-style split. It is tuned for speed over robustness:
//
//   - backslashes become forward slashes;
//   - single quotes are escaped with a backslash;
//   - the whole value is wrapped in single quotes if it is empty or contains
//     any byte outside [A-Za-z0-9._+/=,_-].
func escapeArg(v []byte) []byte {
	needsQuote := len(v) == 0
	out := make([]byte, 0, len(v)+2)
	for _, b := range v {
		switch b {
		case '\\':
			out = append(out, '/')
		case '\'':
			out = append(out, '\\', '\'')
			needsQuote = true
		default:
			if !needsQuote && !plainArgByte(b) {
				needsQuote = true
			}
			out = append(out, b)
		}
	}
	if needsQuote {
		quoted := make([]byte, 0, len(out)+2)
		quoted = append(quoted, '\'')
		quoted = append(quoted, out...)
		quoted = append(quoted, '\'')
		return quoted
	}
	return out
}

func plainArgByte(b byte) bool {
	switch {
	case '0' <= b && b <= '9', 'A' <= b && b <= 'Z', 'a' <= b && b <= 'z':
		return true
	}
	switch b {
	case '-', '_', '=', '/', ',', '.', '+':
		return true
	}
	return false
}
