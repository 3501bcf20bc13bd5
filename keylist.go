package argyle

// maxKeys caps how many keys a single set may record.
const maxKeys = 15

// keyList is a bounded list of indexes into Argue.args identifying which
// entries are keys, so queries never have to re-scan the full entry list.
type keyList struct {
	idx [maxKeys]uint16
	n   uint8
}

// push records another key index, or reports false once the list is full.
func (k *keyList) push(i uint16) bool {
	if k.n == maxKeys {
		return false
	}
	k.idx[k.n] = i
	k.n++
	return true
}

func (k *keyList) slice() []uint16 {
	return k.idx[:k.n]
}

func (k *keyList) empty() bool {
	return k.n == 0
}
