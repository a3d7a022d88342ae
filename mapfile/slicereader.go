// This file contains a slice reader which aids reading data from a
// decompressed segment body. Unlike a raw index into the slice, every
// getter here is bounds-checked and reports a size_mismatch error instead
// of panicking, since segment bodies are untrusted decoder output and a
// short or malformed body must never crash the caller.

package mapfile

import (
	"encoding/binary"

	"github.com/s4reader/s4map/mapdecoder"
)

// sliceReader aids reading data from a decompressed segment body.
type sliceReader struct {
	// b is the byte slice to read from
	b []byte

	// pos is the index of the next byte to read
	pos uint32
}

func newSliceReader(b []byte) *sliceReader {
	return &sliceReader{b: b}
}

// remaining reports how many unread bytes are left.
func (sr *sliceReader) remaining() uint32 {
	return uint32(len(sr.b)) - sr.pos
}

func (sr *sliceReader) require(n uint32) error {
	if sr.remaining() < n {
		return mapdecoder.NewError(mapdecoder.ErrSizeMismatch, "segment body too short")
	}
	return nil
}

// getByte returns the next byte.
func (sr *sliceReader) getByte() (byte, error) {
	if err := sr.require(1); err != nil {
		return 0, err
	}
	r := sr.b[sr.pos]
	sr.pos++
	return r, nil
}

// getUint16 returns the next 2 bytes as an uint16 value.
func (sr *sliceReader) getUint16() (uint16, error) {
	if err := sr.require(2); err != nil {
		return 0, err
	}
	r := binary.LittleEndian.Uint16(sr.b[sr.pos:])
	sr.pos += 2
	return r, nil
}

// getUint32 returns the next 4 bytes as an uint32 value.
func (sr *sliceReader) getUint32() (uint32, error) {
	if err := sr.require(4); err != nil {
		return 0, err
	}
	r := binary.LittleEndian.Uint32(sr.b[sr.pos:])
	sr.pos += 4
	return r, nil
}

// readSlice returns the next size bytes as a slice.
func (sr *sliceReader) readSlice(size uint32) ([]byte, error) {
	if err := sr.require(size); err != nil {
		return nil, err
	}
	r := make([]byte, size)
	copy(r, sr.b[sr.pos:sr.pos+size])
	sr.pos += size
	return r, nil
}

// cString reads up to size bytes and returns the portion before the first
// NUL byte (or the whole run if there is none), still advancing by size.
func (sr *sliceReader) cString(size uint32) ([]byte, error) {
	raw, err := sr.readSlice(size)
	if err != nil {
		return nil, err
	}
	for i, b := range raw {
		if b == 0 {
			return raw[:i], nil
		}
	}
	return raw, nil
}
