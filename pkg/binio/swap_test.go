package binio

import (
	"math"
	"testing"
)

type vec3 struct {
	X, Y, Z F32
}

func (v *vec3) SwapBytes() {
	v.X.SwapBytes()
	v.Y.SwapBytes()
	v.Z.SwapBytes()
}

type record struct {
	ID     U32
	Kind   U8
	Delta  I16
	Origin vec3
	Weight F64
	Ticks  [2]U64
}

func (r *record) SwapBytes() {
	r.ID.SwapBytes()
	r.Kind.SwapBytes()
	r.Delta.SwapBytes()
	r.Origin.SwapBytes()
	r.Weight.SwapBytes()
	for i := range r.Ticks {
		r.Ticks[i].SwapBytes()
	}
}

func TestSwapUint(t *testing.T) {
	if got := SwapUint(uint8(0xAB)); got != 0xAB {
		t.Errorf("uint8: got %#x, want 0xab", got)
	}
	if got := SwapUint(uint16(0x1234)); got != 0x3412 {
		t.Errorf("uint16: got %#x, want 0x3412", got)
	}
	if got := SwapUint(uint32(0x11223344)); got != 0x44332211 {
		t.Errorf("uint32: got %#x, want 0x44332211", got)
	}
	if got := SwapUint(uint64(0x0102030405060708)); got != 0x0807060504030201 {
		t.Errorf("uint64: got %#x, want 0x0807060504030201", got)
	}
}

func TestSwapInt(t *testing.T) {
	if got := SwapInt(int16(-2)); got != int16(-257) {
		t.Errorf("int16(-2): got %d, want -257", got)
	}
	if got := SwapInt(int32(1)); got != int32(0x01000000) {
		t.Errorf("int32(1): got %#x, want 0x01000000", got)
	}
	if got := SwapInt(int8(-5)); got != -5 {
		t.Errorf("int8 must be untouched, got %d", got)
	}
}

func TestSwapFloatBitPattern(t *testing.T) {
	f := float32(1.0) // 0x3F800000
	got := math.Float32bits(SwapFloat32(f))
	if got != 0x0000803F {
		t.Errorf("float32 bits: got %#08x, want 0x0000803f", got)
	}

	d := 1.0 // 0x3FF0000000000000
	gotD := math.Float64bits(SwapFloat64(d))
	if gotD != 0x000000000000F03F {
		t.Errorf("float64 bits: got %#016x, want 0xf03f", gotD)
	}
}

func TestSwapInvolutionPrimitives(t *testing.T) {
	u16s := []uint16{0, 1, 0x00FF, 0xFF00, 0xBEEF, math.MaxUint16}
	for _, v := range u16s {
		if got := SwapUint(SwapUint(v)); got != v {
			t.Errorf("uint16 %#x: round trip gave %#x", v, got)
		}
	}

	u32s := []uint32{0, 1, 0xDEADBEEF, math.MaxUint32}
	for _, v := range u32s {
		if got := SwapUint(SwapUint(v)); got != v {
			t.Errorf("uint32 %#x: round trip gave %#x", v, got)
		}
	}

	i64s := []int64{0, -1, math.MinInt64, math.MaxInt64, 42}
	for _, v := range i64s {
		if got := SwapInt(SwapInt(v)); got != v {
			t.Errorf("int64 %d: round trip gave %d", v, got)
		}
	}

	// Compare bit patterns so NaN payloads and signed zero are covered.
	f32bits := []uint32{0, 0x80000000, 0x3F800000, 0x7FC00001, 0x7F800000, 0x00000001}
	for _, b := range f32bits {
		f := math.Float32frombits(b)
		if got := math.Float32bits(SwapFloat32(SwapFloat32(f))); got != b {
			t.Errorf("float32 %#08x: round trip gave %#08x", b, got)
		}
	}

	f64bits := []uint64{0, 0x8000000000000000, 0x3FF0000000000000, 0x7FF8000000000001}
	for _, b := range f64bits {
		f := math.Float64frombits(b)
		if got := math.Float64bits(SwapFloat64(SwapFloat64(f))); got != b {
			t.Errorf("float64 %#016x: round trip gave %#016x", b, got)
		}
	}
}

func TestSwapInvolutionRecord(t *testing.T) {
	orig := record{
		ID:     0x01020304,
		Kind:   7,
		Delta:  -300,
		Origin: vec3{X: 1.5, Y: -2.25, Z: 1e-3},
		Weight: 3.14159,
		Ticks:  [2]U64{1, 0xFFEEDDCCBBAA9988},
	}

	v := orig
	v.SwapBytes()
	if v == orig {
		t.Fatal("swapping once should change a multi-byte record")
	}
	if v.Kind != orig.Kind {
		t.Errorf("single-byte field changed: %d -> %d", orig.Kind, v.Kind)
	}
	if v.ID != 0x04030201 {
		t.Errorf("ID: got %#x, want 0x04030201", v.ID)
	}

	v.SwapBytes()
	if v != orig {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", v, orig)
	}
}

func TestSwapEach(t *testing.T) {
	s := []U16{0x0102, 0x0304}
	SwapEach(s)
	if s[0] != 0x0201 || s[1] != 0x0403 {
		t.Errorf("got %#x", s)
	}
}
