// Package binio provides sequential, byte-order-aware binary decoding.
//
// Values are read as raw host-order bytes and corrected afterwards through the
// ByteSwapper capability. Primitives implement it by reversing their bytes;
// records implement it by swapping each field in declaration order.
package binio

import (
	"math"
	"math/bits"
	"unsafe"
)

// ByteSwapper is implemented by values that can reverse their own byte order
// in place. Applying SwapBytes twice must restore the original value.
type ByteSwapper interface {
	SwapBytes()
}

// Unsigned is the set of unsigned integer kinds handled by SwapUint.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Signed is the set of signed integer kinds handled by SwapInt.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// SwapUint reverses the bytes of an unsigned integer. Single-byte values are
// returned unchanged.
func SwapUint[T Unsigned](v T) T {
	switch unsafe.Sizeof(v) {
	case 2:
		return T(bits.ReverseBytes16(uint16(v)))
	case 4:
		return T(bits.ReverseBytes32(uint32(v)))
	case 8:
		return T(bits.ReverseBytes64(uint64(v)))
	default:
		return v
	}
}

// SwapInt reverses the bytes of a signed integer, preserving its bit pattern.
func SwapInt[T Signed](v T) T {
	switch unsafe.Sizeof(v) {
	case 2:
		return T(int16(bits.ReverseBytes16(uint16(v))))
	case 4:
		return T(int32(bits.ReverseBytes32(uint32(v))))
	case 8:
		return T(int64(bits.ReverseBytes64(uint64(v))))
	default:
		return v
	}
}

// SwapFloat32 reverses the bytes of a float32 through its bit pattern.
func SwapFloat32(f float32) float32 {
	return math.Float32frombits(bits.ReverseBytes32(math.Float32bits(f)))
}

// SwapFloat64 reverses the bytes of a float64 through its bit pattern.
func SwapFloat64(f float64) float64 {
	return math.Float64frombits(bits.ReverseBytes64(math.Float64bits(f)))
}

// SwapEach applies SwapBytes to every element of s.
func SwapEach[T any, P interface {
	*T
	ByteSwapper
}](s []T) {
	for i := range s {
		P(&s[i]).SwapBytes()
	}
}

// Named primitives usable directly with Read and ReadSlice.
type (
	U8  uint8
	U16 uint16
	U32 uint32
	U64 uint64
	I8  int8
	I16 int16
	I32 int32
	I64 int64
	F32 float32
	F64 float64
)

func (*U8) SwapBytes()    {}
func (v *U16) SwapBytes() { *v = SwapUint(*v) }
func (v *U32) SwapBytes() { *v = SwapUint(*v) }
func (v *U64) SwapBytes() { *v = SwapUint(*v) }
func (*I8) SwapBytes()    {}
func (v *I16) SwapBytes() { *v = SwapInt(*v) }
func (v *I32) SwapBytes() { *v = SwapInt(*v) }
func (v *I64) SwapBytes() { *v = SwapInt(*v) }
func (v *F32) SwapBytes() { *v = F32(SwapFloat32(float32(*v))) }
func (v *F64) SwapBytes() { *v = F64(SwapFloat64(float64(*v))) }
