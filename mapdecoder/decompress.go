/*

This file implements the adaptive Huffman + LZ77-style decompressor
driving a BitReader through Huffman code lookup, symbol execution and LZ
back-copy, operating on the 274-symbol SymbolTable.

Information sources:

https://github.com/Skarmux/S4Reader/blob/main/s4reader/src/decompress.rs

*/

package mapdecoder

import (
	"errors"
	"io"
)

// huffEntry is one entry of the 16-slot Huffman prefix table: the number
// of extra bits to read after the 4-bit prefix, and the symbol-table
// index those extra bits are added to.
type huffEntry struct {
	extraBits uint
	base      uint16
}

// initialHuffman is the Huffman table used until the first symbol 272 is
// decoded.
var initialHuffman = [16]huffEntry{
	{2, 0x00}, {3, 0x04}, {3, 0x0C}, {4, 0x14},
	{4, 0x24}, {4, 0x34}, {4, 0x44}, {4, 0x54},
	{4, 0x64}, {4, 0x74}, {4, 0x84}, {4, 0x94},
	{4, 0xA4}, {5, 0xB4}, {5, 0xD4}, {5, 0xF4},
}

// offsetLUT maps (symbol-264) to the base extra-length added for long
// back-references (symbols 264..271).
var offsetLUT = [8]uint32{0x8, 0xA, 0xE, 0x16, 0x26, 0x46, 0x86, 0x106}

// distEntry is one entry of the 8-slot distance table: the number of
// low-distance-bits to read, and the base value shifted into the high
// part of the offset.
type distEntry struct {
	bits uint
	base uint32
}

var distLUT = [8]distEntry{
	{1, 0}, {1, 1}, {2, 2}, {3, 4},
	{4, 8}, {5, 16}, {6, 32}, {7, 64},
}

// Decompressor drives a BitReader through the symbol table and Huffman
// table, producing decompressed output bytes. It owns exactly one
// BitReader, one SymbolTable and one Huffman table for the lifetime of a
// single segment body.
type Decompressor struct {
	br      *BitReader
	table   *SymbolTable
	huffman [16]huffEntry
}

// NewDecompressor returns a Decompressor reading from br.
func NewDecompressor(br *BitReader) *Decompressor {
	return &Decompressor{
		br:      br,
		table:   NewSymbolTable(),
		huffman: initialHuffman,
	}
}

// Decompress reads a compressed payload and returns the decompressed
// output.
//
// Normal termination is symbol 273. If the bit reader reaches
// end-of-input exactly at the start of a 4-bit prefix (no unread bits
// left over from the last byte), that is treated as a clean end of stream
// and the output produced so far is returned without error. Any other
// end-of-input, including one that breaks off partway through a prefix,
// is a hard truncated error.
func Decompress(r io.Reader) ([]byte, error) {
	d := NewDecompressor(NewBitReader(r))
	return d.Run(nil)
}

// DecompressSize behaves like Decompress but pre-reserves the output
// buffer to sizeHint bytes (typically a segment's decrypted_len), to
// avoid reallocation during decoding of a well-formed stream.
func DecompressSize(r io.Reader, sizeHint int) ([]byte, error) {
	d := NewDecompressor(NewBitReader(r))
	var buf []byte
	if sizeHint > 0 {
		buf = make([]byte, 0, sizeHint)
	}
	return d.Run(buf)
}

// Run executes the decompression loop, appending output to sizeHint[:0].
// Passing a buffer with spare capacity (as DecompressSize does) serves as
// the pre-reserved output buffer; nil starts from an empty one.
func (d *Decompressor) Run(sizeHint []byte) ([]byte, error) {
	out := sizeHint[:0]

	for {
		prefix, err := d.br.ReadBits(4)
		if err != nil {
			if errors.Is(err, io.EOF) {
				if d.br.count == 0 {
					return out, nil
				}
				return nil, newErr(ErrTruncated, "unexpected end of input mid-prefix")
			}
			return out, err
		}

		entry := d.huffman[prefix]
		var extra byte
		if entry.extraBits > 0 {
			extra, err = d.readBitsOrFail(entry.extraBits)
			if err != nil {
				return nil, err
			}
		}
		index := int(entry.base) + int(extra)
		if index >= NumSymbols {
			return nil, newErr(ErrBadIndex, "symbol-table index out of range")
		}

		symbol := d.table.SymbolAt(index)

		switch {
		case symbol <= 255:
			out = append(out, byte(symbol))
			continue

		case symbol == SymRebuild:
			if err := d.rebuildTables(); err != nil {
				return nil, err
			}
			continue

		case symbol == SymEnd:
			return out, nil

		case symbol >= SymShortRefBase && symbol <= 263:
			copyLen := uint32(4 + (symbol - SymShortRefBase))
			var err error
			out, err = d.backCopy(out, copyLen)
			if err != nil {
				return nil, err
			}
			continue

		case symbol >= SymLongRefBase && symbol <= 271:
			k := uint(symbol - 263) // 1..8
			e, err := d.readBitsOrFail(k)
			if err != nil {
				return nil, err
			}
			copyLen := 4 + uint32(e) + offsetLUT[k-1]
			out, err = d.backCopy(out, copyLen)
			if err != nil {
				return nil, err
			}
			continue

		default:
			return nil, newErr(ErrBadSymbol, "decoded symbol outside valid range")
		}
	}
}

// readBitsOrFail reads n bits (1 <= n <= 8, as for BitReader.ReadBits,
// which panics on anything wider) and converts a clean EOF into a
// hard truncated error, since any read past the initial 4-bit prefix is
// mid-symbol and therefore a corrupt/truncated stream, never a clean
// end.
func (d *Decompressor) readBitsOrFail(n uint) (byte, error) {
	v, err := d.br.ReadBits(n)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, newErr(ErrTruncated, "unexpected end of input mid-symbol")
		}
		return 0, err
	}
	return v, nil
}

// rebuildTables re-sorts the symbol alphabet and re-reads the 16-entry
// Huffman table in place, per the in-band rebuild protocol.
func (d *Decompressor) rebuildTables() error {
	d.table.Rebuild()

	var length int
	var base uint16
	for i := 0; i < 16; i++ {
		length--
		for {
			bit, err := d.readBitsOrFail(1)
			if err != nil {
				return err
			}
			length++
			if bit == 1 {
				break
			}
		}
		d.huffman[i] = huffEntry{extraBits: uint(length), base: base}
		base += 1 << uint(length)
	}
	return nil
}

// backCopy appends copyLen bytes to out, read from a back-reference
// whose distance is decoded from the bitstream, one byte at a time from
// the logical (growing) output view so that aliasing back-references
// (offset < copyLen) replicate freshly appended bytes correctly.
func (d *Decompressor) backCopy(out []byte, copyLen uint32) ([]byte, error) {
	dsel, err := d.readBitsOrFail(3)
	if err != nil {
		return nil, err
	}
	de := distLUT[dsel]

	hi, err := d.readBitsOrFail(8)
	if err != nil {
		return nil, err
	}
	lo, err := d.readBitsOrFail(de.bits)
	if err != nil {
		return nil, err
	}

	offset := (de.base << 9) | (uint32(hi) << de.bits) | uint32(lo)
	return copyBack(out, offset, copyLen)
}

// copyBack appends copyLen bytes to out, copied from offset bytes before
// the current end of out, one byte at a time from the logical (growing)
// output view so that aliasing back-references (offset < copyLen)
// replicate freshly appended bytes correctly.
func copyBack(out []byte, offset, copyLen uint32) ([]byte, error) {
	if offset < 1 || uint32(len(out)) < offset {
		return nil, newErr(ErrBadOffset, "back-reference points before start of output")
	}

	src := len(out) - int(offset)
	for i := uint32(0); i < copyLen; i++ {
		out = append(out, out[src+int(i)])
	}
	return out, nil
}
