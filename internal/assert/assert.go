package assert

import (
	"fmt"
)

// IndexInRange panics if index is not within [0, length).
func IndexInRange(index, length int) {
	if index < 0 || index >= length {
		panic(fmt.Sprintf("index out of range [%d] with length %d", index, length))
	}
}

func NotNil[T any](value *T, what string) {
	if value == nil {
		panic(fmt.Sprintf("expected non nil %s", what))
	}
}
