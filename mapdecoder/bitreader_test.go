package mapdecoder

import (
	"bytes"
	"io"
	"testing"
)

func TestBitReaderMSBFirst(t *testing.T) {
	br := NewBitReader(bytes.NewReader([]byte{0b1110_0000}))

	got, err := br.ReadBits(3)
	if err != nil {
		t.Fatalf("ReadBits(3): %v", err)
	}
	if got != 0b111 {
		t.Errorf("got %#b, want 0b111", got)
	}
}

func TestBitReaderCrossesByteBoundary(t *testing.T) {
	br := NewBitReader(bytes.NewReader([]byte{0b1110_0000, 0b0101_0101}))

	if _, err := br.ReadBits(4); err != nil {
		t.Fatalf("leading ReadBits(4): %v", err)
	}

	got, err := br.ReadBits(8)
	if err != nil {
		t.Fatalf("ReadBits(8): %v", err)
	}
	if got != 0b0000_0101 {
		t.Errorf("got %#b, want 0b0000_0101", got)
	}
}

func TestBitReaderEOF(t *testing.T) {
	br := NewBitReader(bytes.NewReader([]byte{0xFF}))

	if _, err := br.ReadBits(8); err != nil {
		t.Fatalf("first ReadBits(8): %v", err)
	}

	_, err := br.ReadBits(1)
	if err != io.EOF {
		t.Fatalf("got %v, want io.EOF", err)
	}
}

func TestBitReaderReadBitsOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for ReadBits(0)")
		}
	}()

	br := NewBitReader(bytes.NewReader([]byte{0xFF}))
	br.ReadBits(0)
}

func TestBitReaderWriteReadRoundTripS4(t *testing.T) {
	// 4 bits 0b1111 written then flushed (zero-padded) is byte 0b1111_0000.
	br := NewBitReader(bytes.NewReader([]byte{0b1111_0000}))

	got, err := br.ReadBits(8)
	if err != nil {
		t.Fatalf("ReadBits(8): %v", err)
	}
	if got != 0b1111_0000 {
		t.Errorf("got %#b, want 0b1111_0000", got)
	}
}

func TestBitReaderReadBitsTooWidePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for ReadBits(9)")
		}
	}()

	br := NewBitReader(bytes.NewReader([]byte{0xFF}))
	br.ReadBits(9)
}
