package binio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Cursor errors.
var (
	ErrNotSeekable  = errors.New("binio: source does not support seeking")
	ErrNegativeSeek = errors.New("binio: negative position")
)

// Cursor wraps a sequential byte source and keeps its own copy of the read
// position, so Position never has to query the source.
type Cursor struct {
	src io.Reader
	pos int64
}

// NewCursor wraps src. If src is an io.Seeker its current offset becomes the
// starting position; this is the only time the source is queried.
func NewCursor(src io.Reader) (*Cursor, error) {
	c := &Cursor{src: src}
	if s, ok := src.(io.Seeker); ok {
		pos, err := s.Seek(0, io.SeekCurrent)
		if err != nil {
			return nil, fmt.Errorf("querying start position: %w", err)
		}
		c.pos = pos
	}
	return c, nil
}

// NewCursorAt wraps src and declares its current absolute position without
// querying it.
func NewCursorAt(src io.Reader, pos int64) *Cursor {
	return &Cursor{src: src, pos: pos}
}

// Read fills p completely from the source. A short read returns
// io.ErrUnexpectedEOF. The position advances by the bytes actually consumed.
func (c *Cursor) Read(p []byte) error {
	n, err := io.ReadFull(c.src, p)
	c.pos += int64(n)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

// ReadCString reads up to and including a zero byte and returns the bytes
// before it. The position advances by len(result)+1.
func (c *Cursor) ReadCString() ([]byte, error) {
	var buf bytes.Buffer
	var one [1]byte
	br, hasByteReader := c.src.(io.ByteReader)
	for {
		var b byte
		if hasByteReader {
			var err error
			if b, err = br.ReadByte(); err != nil {
				return nil, unexpected(err)
			}
		} else {
			if _, err := io.ReadFull(c.src, one[:]); err != nil {
				return nil, unexpected(err)
			}
			b = one[0]
		}
		c.pos++
		if b == 0 {
			return buf.Bytes(), nil
		}
		buf.WriteByte(b)
	}
}

// Seek moves the source to an absolute position.
func (c *Cursor) Seek(pos int64) error {
	if pos < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeSeek, pos)
	}
	s, ok := c.src.(io.Seeker)
	if !ok {
		return ErrNotSeekable
	}
	if _, err := s.Seek(pos, io.SeekStart); err != nil {
		return err
	}
	c.pos = pos
	return nil
}

// Skip advances the position by n bytes. Seekable sources are seeked; other
// sources have the bytes read and discarded.
func (c *Cursor) Skip(n int64) error {
	if n == 0 {
		return nil
	}
	if _, ok := c.src.(io.Seeker); ok {
		return c.Seek(c.pos + n)
	}
	copied, err := io.CopyN(io.Discard, c.src, n)
	c.pos += copied
	return unexpected(err)
}

// Position returns the tracked absolute position.
func (c *Cursor) Position() int64 {
	return c.pos
}

func unexpected(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
