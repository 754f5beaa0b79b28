package pipeline

import (
	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/x448/float16"
)

// Element constrains the storage type of Q/K/V tiles.
type Element interface {
	float16.Float16 | bfloat16.BFloat16 | float32
}

// Accum constrains the accumulator type. All mainloops accumulate in fp32.
type Accum interface {
	float32
}

// ElementSize returns the byte width of an element type.
func ElementSize[E Element]() int {
	var e E
	switch any(e).(type) {
	case float32:
		return 4
	default:
		return 2
	}
}
