package nxs

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/Faultbox/nxs-mesh/pkg/binio"
)

// Options controls decoding.
type Options struct {
	// ByteOrder of the input. Nil means little endian.
	ByteOrder binary.ByteOrder

	// Strict rejects malformed input with ErrMalformed: both index width
	// bits set, counts larger than the remaining input (when its size is
	// known), and triangle indices outside the vertex array.
	Strict bool
}

func (o Options) byteOrder() binary.ByteOrder {
	if o.ByteOrder == nil {
		return binary.LittleEndian
	}
	return o.ByteOrder
}

// Parse decodes an NXS record held in memory.
func Parse(data []byte, opts Options) (*Mesh, error) {
	cur := binio.NewCursorAt(bytes.NewReader(data), 0)
	r := binio.NewReader(cur,
		binio.WithByteOrder(opts.byteOrder()),
		binio.WithSize(int64(len(data))),
	)
	return DecodeFrom(r, opts)
}

// Decode decodes an NXS record starting at the current position of src.
// In strict mode a seekable src is measured once so counts can be checked
// against the bytes actually available.
func Decode(src io.Reader, opts Options) (*Mesh, error) {
	cur, err := binio.NewCursor(src)
	if err != nil {
		return nil, err
	}

	ropts := []binio.Option{
		binio.WithByteOrder(opts.byteOrder()),
		binio.WithOrigin(cur.Position()),
	}
	if opts.Strict {
		if size, ok := measure(src, cur.Position()); ok {
			ropts = append(ropts, binio.WithSize(size))
		}
	}
	return DecodeFrom(binio.NewReader(cur, ropts...), opts)
}

// measure returns the byte length from start to the end of src.
func measure(src io.Reader, start int64) (int64, bool) {
	s, ok := src.(io.Seeker)
	if !ok {
		return 0, false
	}
	end, err := s.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, false
	}
	if _, err := s.Seek(start, io.SeekStart); err != nil {
		return 0, false
	}
	return end - start, true
}

// DecodeFrom decodes an NXS record from r, whose logical position 0 must be
// the start of the record.
func DecodeFrom(r *binio.Reader, opts Options) (*Mesh, error) {
	hdr, err := readHeader(r)
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	if opts.Strict {
		if err := checkHeader(r, hdr); err != nil {
			return nil, err
		}
	}

	positions, err := binio.ReadSlice[Position](r, int(hdr.VertexCount))
	if err != nil {
		return nil, fmt.Errorf("reading vertices: %w", err)
	}

	triangles, err := readTriangles(r, hdr.Flags.IndexWidth(), int(hdr.TriangleCount))
	if err != nil {
		return nil, fmt.Errorf("reading triangles: %w", err)
	}

	materials, err := binio.ReadSlice[Material](r, int(hdr.TriangleCount))
	if err != nil {
		return nil, fmt.Errorf("reading materials: %w", err)
	}

	mesh := &Mesh{
		Header:    hdr,
		Positions: positions,
		Triangles: triangles,
		Materials: materials,
	}

	if opts.Strict {
		if err := mesh.Validate(); err != nil {
			return nil, err
		}
	}

	return mesh, nil
}

func readHeader(r *binio.Reader) (Header, error) {
	var hdr Header

	if err := r.SkipBytes(headerLeadPadding); err != nil {
		return hdr, err
	}
	flags, err := r.ReadUint32()
	if err != nil {
		return hdr, err
	}
	hdr.Flags = Flags(flags)

	if err := r.SkipBytes(headerMidPadding); err != nil {
		return hdr, err
	}
	if hdr.VertexCount, err = r.ReadUint32(); err != nil {
		return hdr, err
	}
	if hdr.TriangleCount, err = r.ReadUint32(); err != nil {
		return hdr, err
	}

	return hdr, nil
}

func checkHeader(r *binio.Reader, hdr Header) error {
	if hdr.Flags.Ambiguous() {
		return fmt.Errorf("%w: flags %#x set both 8-bit and 16-bit index bits", ErrMalformed, uint32(hdr.Flags))
	}
	remaining, ok := r.Remaining()
	if !ok {
		return nil
	}
	if need := hdr.PayloadSize(); need > uint64(remaining) {
		return fmt.Errorf("%w: %d vertices and %d triangles need %d bytes, %d available",
			ErrMalformed, hdr.VertexCount, hdr.TriangleCount, need, remaining)
	}
	return nil
}

// index is the set of integer types a triangle index can be stored as.
type index interface {
	~uint8 | ~uint16 | ~uint32
}

// indexTriple is a triangle as stored in the file.
type indexTriple[T index] struct {
	I, J, K T
}

func (t *indexTriple[T]) SwapBytes() {
	t.I = binio.SwapUint(t.I)
	t.J = binio.SwapUint(t.J)
	t.K = binio.SwapUint(t.K)
}

func (t indexTriple[T]) widen() Triangle {
	return Triangle{I: uint32(t.I), J: uint32(t.J), K: uint32(t.K)}
}

// readTriangles reads n triangles of the given width and widens them.
func readTriangles(r *binio.Reader, width IndexWidth, n int) ([]Triangle, error) {
	switch width {
	case IndexWidth16:
		return readWidened[uint16](r, n)
	case IndexWidth8:
		return readWidened[uint8](r, n)
	default:
		return readWidened[uint32](r, n)
	}
}

func readWidened[T index](r *binio.Reader, n int) ([]Triangle, error) {
	raw, err := binio.ReadSlice[indexTriple[T]](r, n)
	if err != nil {
		return nil, err
	}
	out := make([]Triangle, len(raw))
	for i, t := range raw {
		out[i] = t.widen()
	}
	return out, nil
}
