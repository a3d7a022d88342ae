/*

This file implements the segment framer: it iterates the encrypted
header/body pairs of a map file, decrypting each 24-byte header with a
fresh keystream frame and handing each known segment's body to the
decompressor.

Information sources:

https://github.com/Skarmux/S4Reader/blob/main/s4reader/src/map/file.rs
https://github.com/Skarmux/S4Reader/blob/main/s4reader/src/map/segments.rs

*/

package mapdecoder

import (
	"bytes"
	"encoding/binary"
	"io"
)

const headerSize = 24

// Kind identifies a segment's category.
type Kind uint32

// Known segment kinds.
const (
	KindMapInfo       Kind = 1
	KindPlayerInfo    Kind = 2
	KindTeamInfo      Kind = 3
	KindPreview       Kind = 4
	KindObjects       Kind = 6
	KindSettlers      Kind = 7
	KindBuildings     Kind = 8
	KindStacks        Kind = 9
	KindVictoryCond   Kind = 10
	KindMissionInfoDE Kind = 11
	KindMissionHintDE Kind = 12
	KindGround        Kind = 13
	KindMissionInfoEN Kind = 14
	KindMissionHintEN Kind = 15
	KindLuaScript     Kind = 16
)

// knownKinds lists every segment kind the framer will decompress; any
// other kind is skipped without error.
var knownKinds = map[Kind]bool{
	KindMapInfo: true, KindPlayerInfo: true, KindTeamInfo: true,
	KindPreview: true, KindObjects: true, KindSettlers: true,
	KindBuildings: true, KindStacks: true, KindVictoryCond: true,
	KindMissionInfoDE: true, KindMissionHintDE: true, KindGround: true,
	KindMissionInfoEN: true, KindMissionHintEN: true, KindLuaScript: true,
}

// Segment describes one segment's header fields.
type Segment struct {
	Kind          Kind
	EncryptedLen  uint32
	DecryptedLen  uint32
	Checksum      uint32
	Unknown0      uint32
	Unknown1      uint32
}

// Framer iterates the segments of a map file's byte stream. The file
// checksum and version preceding the first segment header are consumed
// by NewFramer.
type Framer struct {
	r         io.Reader
	keystream *Keystream
	index     int

	// FileChecksum and FileVersion are the opaque 4-byte fields preceding
	// the first segment header.
	FileChecksum uint32
	FileVersion  uint32
}

// NewFramer reads the 8-byte file preamble (checksum, version) from r and
// returns a Framer ready to iterate segments.
func NewFramer(r io.Reader) (*Framer, error) {
	var preamble [8]byte
	if _, err := io.ReadFull(r, preamble[:]); err != nil {
		return nil, wrapErr(ErrTruncated, "reading file preamble", err)
	}

	return &Framer{
		r:            r,
		keystream:    NewKeystream(),
		FileChecksum: binary.LittleEndian.Uint32(preamble[0:4]),
		FileVersion:  binary.LittleEndian.Uint32(preamble[4:8]),
	}, nil
}

// Next reads the next segment header and, if its kind is known, its
// decompressed body. It returns io.EOF (wrapping nothing) once the header
// can no longer be read in full, whether the stream ended exactly on a
// header boundary or broke off partway through one.
//
// For an unknown kind, body is nil and err is nil; the caller should
// treat a nil body with a nil error as "skipped, nothing to process".
func (f *Framer) Next() (*Segment, []byte, error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(f.r, header[:]); err != nil {
		// Any failed header read, empty or partial, ends the stream cleanly:
		// a file can legitimately end mid-header (trailing garbage, or a
		// writer that stopped short), and the segments already framed
		// remain valid.
		return nil, nil, io.EOF
	}

	DecryptFrame(f.keystream, header[:])

	seg := &Segment{
		Kind:         Kind(binary.LittleEndian.Uint32(header[0:4])),
		EncryptedLen: binary.LittleEndian.Uint32(header[4:8]),
		DecryptedLen: binary.LittleEndian.Uint32(header[8:12]),
		Checksum:     binary.LittleEndian.Uint32(header[12:16]),
		Unknown0:     binary.LittleEndian.Uint32(header[16:20]),
		Unknown1:     binary.LittleEndian.Uint32(header[20:24]),
	}
	f.index++

	raw := make([]byte, seg.EncryptedLen)
	if _, err := io.ReadFull(f.r, raw); err != nil {
		return seg, nil, wrapErr(ErrTruncated, "reading segment body", err)
	}

	if !knownKinds[seg.Kind] {
		return seg, nil, nil
	}

	decoded, err := DecompressSize(bytes.NewReader(raw), int(seg.DecryptedLen))
	if err != nil {
		return seg, nil, err
	}
	if uint32(len(decoded)) != seg.DecryptedLen {
		return seg, nil, newErr(ErrSizeMismatch, "decompressed length does not match header")
	}

	return seg, decoded, nil
}
