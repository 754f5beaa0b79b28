package flash

import (
	"math"

	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/x448/float16"
)

// DType identifies the numeric element type of the attention inputs.
type DType int

const (
	FP16 DType = iota
	BF16
	FP32
)

func (d DType) String() string {
	switch d {
	case FP16:
		return "fp16"
	case BF16:
		return "bf16"
	case FP32:
		return "fp32"
	}
	return "unknown"
}

// Size returns the element width in bytes. The tile resolvers dispatch on
// this width, not on the type itself: fp16 and bf16 share tile tables.
func (d DType) Size() int {
	if d == FP32 {
		return 4
	}
	return 2
}

// EncodeSoftcapScale returns the raw bit pattern of the soft-cap scale in the
// element encoding the mainloop consumes. Half-precision kernels fold the
// scale into the element type before launch, so the rounding applied here
// must match the device-side operand exactly.
func EncodeSoftcapScale(d DType, scale float32) uint32 {
	switch d {
	case FP16:
		return uint32(float16.Fromfloat32(scale).Bits())
	case BF16:
		return uint32(bfloat16.FromFloat32(scale))
	default:
		return math.Float32bits(scale)
	}
}
