package binio

import (
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/text/encoding"
)

// Reader errors.
var (
	ErrNotFixedSize  = errors.New("binio: type has no fixed binary size")
	ErrBadAlignment  = errors.New("binio: alignment must be positive")
	ErrNegativeCount = errors.New("binio: negative count")
)

// sliceChunkBytes bounds how much ReadSlice allocates ahead of the data it
// has actually received.
const sliceChunkBytes = 1 << 20

var hostLittleEndian = isLittleEndian(binary.NativeEndian)

func isLittleEndian(order binary.ByteOrder) bool {
	return order.Uint16([]byte{1, 0}) == 1
}

// Reader reads fixed-size values from a Cursor in a configured byte order.
// Positions are logical: measured from an origin offset into the cursor.
type Reader struct {
	cur     *Cursor
	order   binary.ByteOrder
	swap    bool
	origin  int64
	size    int64
	text    encoding.Encoding
	scratch []byte
}

// Option configures a Reader.
type Option func(*Reader)

// WithByteOrder sets the byte order of the data. Defaults to the host order.
func WithByteOrder(order binary.ByteOrder) Option {
	return func(r *Reader) {
		r.order = order
	}
}

// WithOrigin makes logical position 0 correspond to absolute position origin.
func WithOrigin(origin int64) Option {
	return func(r *Reader) {
		r.origin = origin
	}
}

// WithSize declares the length of the logical region, enabling Remaining.
func WithSize(size int64) Option {
	return func(r *Reader) {
		r.size = size
	}
}

// WithTextEncoding transcodes strings from enc to UTF-8 in ReadString.
func WithTextEncoding(enc encoding.Encoding) Option {
	return func(r *Reader) {
		r.text = enc
	}
}

// NewReader creates a Reader over cur.
func NewReader(cur *Cursor, opts ...Option) *Reader {
	r := &Reader{
		cur:   cur,
		order: binary.NativeEndian,
		size:  -1,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.swap = isLittleEndian(r.order) != hostLittleEndian
	return r
}

// ByteOrder returns the configured byte order.
func (r *Reader) ByteOrder() binary.ByteOrder {
	return r.order
}

// Swaps reports whether values are byte-swapped after reading.
func (r *Reader) Swaps() bool {
	return r.swap
}

// Read reads one T and corrects its byte order.
func Read[T any, P interface {
	*T
	ByteSwapper
}](r *Reader) (T, error) {
	var v T
	if err := r.decode(&v); err != nil {
		return v, err
	}
	if r.swap {
		P(&v).SwapBytes()
	}
	return v, nil
}

// ReadRaw reads one T as raw host-order bytes with no byte-order correction.
func ReadRaw[T any](r *Reader) (T, error) {
	var v T
	err := r.decode(&v)
	return v, err
}

// ReadSlice reads n consecutive T values and corrects their byte order.
// A zero count reads nothing and returns an empty slice.
func ReadSlice[T any, P interface {
	*T
	ByteSwapper
}](r *Reader, n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	var zero T
	size := binary.Size(&zero)
	if size < 0 {
		return nil, fmt.Errorf("%w: %T", ErrNotFixedSize, zero)
	}
	perChunk := n
	if size > 0 {
		perChunk = max(1, sliceChunkBytes/size)
	}

	out := make([]T, 0, min(n, perChunk))
	for len(out) < n {
		start := len(out)
		k := min(n-start, perChunk)
		out = append(out, make([]T, k)...)
		if err := r.decode(out[start:]); err != nil {
			return nil, err
		}
	}
	if r.swap {
		SwapEach[T, P](out)
	}
	return out, nil
}

func (r *Reader) decode(v any) error {
	n := binary.Size(v)
	if n < 0 {
		return fmt.Errorf("%w: %T", ErrNotFixedSize, v)
	}
	if cap(r.scratch) < n {
		r.scratch = make([]byte, n)
	}
	buf := r.scratch[:n]
	if err := r.cur.Read(buf); err != nil {
		return err
	}
	_, err := binary.Decode(buf, binary.NativeEndian, v)
	return err
}

// ReadUint8 reads a single byte.
func (r *Reader) ReadUint8() (uint8, error) {
	v, err := Read[U8](r)
	return uint8(v), err
}

// ReadUint16 reads a byte-order corrected uint16.
func (r *Reader) ReadUint16() (uint16, error) {
	v, err := Read[U16](r)
	return uint16(v), err
}

// ReadUint32 reads a byte-order corrected uint32.
func (r *Reader) ReadUint32() (uint32, error) {
	v, err := Read[U32](r)
	return uint32(v), err
}

// ReadFloat32 reads a byte-order corrected float32.
func (r *Reader) ReadFloat32() (float32, error) {
	v, err := Read[F32](r)
	return float32(v), err
}

// ReadString reads a null-terminated string, transcoding it to UTF-8 when a
// text encoding is configured.
func (r *Reader) ReadString() (string, error) {
	b, err := r.cur.ReadCString()
	if err != nil {
		return "", err
	}
	if r.text == nil {
		return string(b), nil
	}
	out, err := r.text.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decoding string: %w", err)
	}
	return string(out), nil
}

// SkipPadding advances to the next logical position that is a multiple of
// alignment.
func (r *Reader) SkipPadding(alignment int64) error {
	if alignment <= 0 {
		return fmt.Errorf("%w: %d", ErrBadAlignment, alignment)
	}
	pos := r.Position()
	return r.SkipBytes((alignment - pos%alignment) % alignment)
}

// SkipBytes advances the logical position by exactly n bytes.
func (r *Reader) SkipBytes(n int64) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	return r.cur.Skip(n)
}

// Seek moves to a logical position.
func (r *Reader) Seek(pos int64) error {
	return r.cur.Seek(pos + r.origin)
}

// Position returns the logical position.
func (r *Reader) Position() int64 {
	return r.cur.Position() - r.origin
}

// Remaining returns the bytes left in the logical region. ok is false when
// the region size was not declared with WithSize.
func (r *Reader) Remaining() (n int64, ok bool) {
	if r.size < 0 {
		return 0, false
	}
	return max(0, r.size-r.Position()), true
}
