// Package nxs decodes NXS binary mesh records.
//
// An NXS record is a fixed header followed by three arrays: vertex
// positions, triangles whose index width is chosen by the header flags, and
// one material tag per triangle.
package nxs

import (
	"errors"
	"fmt"

	"github.com/Faultbox/nxs-mesh/pkg/binio"
)

// NXS format errors.
var (
	ErrMalformed = errors.New("nxs: malformed mesh")
)

// Header layout.
const (
	headerLeadPadding = 0x0C
	headerMidPadding  = 0x0C

	// HeaderSize is the byte length of the header; the vertex array starts here.
	HeaderSize = 0x24
)

// Flags is the header bitmask. Only the index width bits are interpreted.
type Flags uint32

const (
	FlagIndex8  Flags = 0x08 // 8-bit triangle indices (ignored if FlagIndex16 is set)
	FlagIndex16 Flags = 0x10 // 16-bit triangle indices
)

// IndexWidth is the size of one triangle index field in the file.
type IndexWidth uint8

const (
	IndexWidth8  IndexWidth = 8
	IndexWidth16 IndexWidth = 16
	IndexWidth32 IndexWidth = 32
)

// String returns a human-readable width such as "16-bit".
func (w IndexWidth) String() string {
	switch w {
	case IndexWidth8, IndexWidth16, IndexWidth32:
		return fmt.Sprintf("%d-bit", uint8(w))
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(w))
	}
}

// Bytes returns the byte length of one index field.
func (w IndexWidth) Bytes() int {
	return int(w) / 8
}

// IndexWidth selects the triangle index width. FlagIndex16 takes precedence
// over FlagIndex8; with neither set indices are 32-bit.
func (f Flags) IndexWidth() IndexWidth {
	switch {
	case f&FlagIndex16 != 0:
		return IndexWidth16
	case f&FlagIndex8 != 0:
		return IndexWidth8
	default:
		return IndexWidth32
	}
}

// Ambiguous reports whether both index width bits are set.
func (f Flags) Ambiguous() bool {
	return f&FlagIndex16 != 0 && f&FlagIndex8 != 0
}

// Header holds the decoded header fields.
type Header struct {
	Flags         Flags
	VertexCount   uint32
	TriangleCount uint32
}

// PayloadSize returns the number of bytes the arrays following the header
// occupy.
func (h Header) PayloadSize() uint64 {
	vertices := uint64(h.VertexCount) * 12
	triangles := uint64(h.TriangleCount) * uint64(3*h.Flags.IndexWidth().Bytes())
	materials := uint64(h.TriangleCount) * 2
	return vertices + triangles + materials
}

// Position is a vertex position in file units.
type Position struct {
	X, Y, Z float32
}

// SwapBytes implements binio.ByteSwapper.
func (p *Position) SwapBytes() {
	p.X = binio.SwapFloat32(p.X)
	p.Y = binio.SwapFloat32(p.Y)
	p.Z = binio.SwapFloat32(p.Z)
}

// Triangle holds three vertex indices, widened to 32 bits regardless of the
// width stored in the file.
type Triangle struct {
	I, J, K uint32
}

// Material is the per-triangle material tag.
type Material uint16

// SwapBytes implements binio.ByteSwapper.
func (m *Material) SwapBytes() {
	*m = binio.SwapUint(*m)
}

// Mesh is a fully decoded NXS record. Triangles and Materials are index
// aligned.
type Mesh struct {
	Header    Header
	Positions []Position
	Triangles []Triangle
	Materials []Material
}
