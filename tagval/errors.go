package tagval

import "fmt"

// ErrMalformed is returned when a word does not belong to any category.
type ErrMalformed struct {
	Word Value
}

func (e ErrMalformed) Error() string {
	return fmt.Sprintf("malformed tagged word %#x", uint64(e.Word))
}
