// Package cursor provides binary reading utilities for UE asset parsing.
package cursor

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// Errors returned by Reader
var (
	ErrBufferUnderrun      = errors.New("cursor: read past end of buffer")
	ErrStringNotTerminated = errors.New("cursor: string not null terminated")
	ErrNegativeOffset      = errors.New("cursor: negative offset")
	ErrInvalidString       = errors.New("cursor: invalid string encoding")
)

// Reader provides methods for reading binary data from a UE asset buffer.
// All multi-byte values are read in little-endian order. The buffer is
// never modified; only the read offset advances.
type Reader struct {
	data   []byte
	offset int
}

// NewReader creates a Reader from a byte slice.
func NewReader(data []byte) *Reader {
	return &Reader{data: data, offset: 0}
}

// Offset returns the current read position.
func (r *Reader) Offset() int {
	return r.offset
}

// SetOffset sets the read position absolutely.
func (r *Reader) SetOffset(offset int) error {
	if offset < 0 {
		return ErrNegativeOffset
	}
	if offset > len(r.data) {
		return ErrBufferUnderrun
	}
	r.offset = offset
	return nil
}

// Reset rewinds the read position to the start of the buffer.
func (r *Reader) Reset() {
	r.offset = 0
}

// Len returns the total buffer length.
func (r *Reader) Len() int {
	return len(r.data)
}

// Remaining returns the number of bytes remaining.
func (r *Reader) Remaining() int {
	if r.offset >= len(r.data) {
		return 0
	}
	return len(r.data) - r.offset
}

// Skip adjusts the read position by n bytes. Negative values rewind,
// which the header heuristic uses to un-read fields rejected by a
// layout branch.
func (r *Reader) Skip(n int) error {
	pos := r.offset + n
	if pos < 0 {
		return ErrNegativeOffset
	}
	if pos > len(r.data) {
		return ErrBufferUnderrun
	}
	r.offset = pos
	return nil
}

// ReadU32 reads an unsigned 32-bit integer.
func (r *Reader) ReadU32() (uint32, error) {
	if r.offset+4 > len(r.data) {
		return 0, ErrBufferUnderrun
	}
	v := binary.LittleEndian.Uint32(r.data[r.offset:])
	r.offset += 4
	return v, nil
}

// ReadI32 reads a signed 32-bit integer.
func (r *Reader) ReadI32() (int32, error) {
	v, err := r.ReadU32()
	return int32(v), err
}

// ReadString reads a UE length-prefixed string. The signed 32-bit
// prefix encodes the character count: a negative prefix -n means
// n UTF-16 code units (2n bytes), a non-negative prefix n means
// n single-byte characters. Both forms carry a trailing NUL, which is
// stripped from the result.
func (r *Reader) ReadString() (string, error) {
	prefix, err := r.ReadI32()
	if err != nil {
		return "", err
	}

	wide := prefix < 0
	count := int(prefix)
	if wide {
		count = -count * 2
	}
	if r.offset+count > len(r.data) {
		return "", ErrBufferUnderrun
	}
	raw := r.data[r.offset : r.offset+count]

	var value string
	if wide {
		// Decoders carry transform state, so one is built per call;
		// readers on separate buffers stay safe to use in parallel.
		dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
		decoded, err := dec.Bytes(raw)
		if err != nil {
			return "", ErrInvalidString
		}
		value = string(decoded)
	} else {
		value = string(raw)
	}

	if !strings.HasSuffix(value, "\x00") {
		return "", ErrStringNotTerminated
	}
	r.offset += count
	return strings.TrimSuffix(value, "\x00"), nil
}

// FindI32 searches forward from the current position for the
// little-endian encoding of value. Returns the absolute byte offset of
// the first match, or -1 if not found. The read position is unchanged.
func (r *Reader) FindI32(value int32) int {
	var pat [4]byte
	binary.LittleEndian.PutUint32(pat[:], uint32(value))
	return r.Find(pat[:])
}

// Find searches forward from the current position for the given byte
// pattern. Returns the absolute offset of the first match, or -1.
func (r *Reader) Find(pattern []byte) int {
	if r.offset >= len(r.data) {
		return -1
	}
	i := bytes.Index(r.data[r.offset:], pattern)
	if i < 0 {
		return -1
	}
	return r.offset + i
}

// FindLast searches from the current position through the end of the
// buffer for the given byte pattern. Returns the absolute offset of
// the last match, or -1.
func (r *Reader) FindLast(pattern []byte) int {
	if r.offset >= len(r.data) {
		return -1
	}
	i := bytes.LastIndex(r.data[r.offset:], pattern)
	if i < 0 {
		return -1
	}
	return r.offset + i
}
