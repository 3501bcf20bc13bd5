package stream

import "fmt"

// InvalidKeyError reports a keyword whose shape failed validation.
type InvalidKeyError struct {
	Word string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid key: %q", e.Word)
}

// DuplicateKeyError reports a keyword whose literal string was already
// registered, regardless of kind.
type DuplicateKeyError struct {
	Word string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key: %q", e.Word)
}
