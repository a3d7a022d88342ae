/*

This file implements the 274-symbol adaptive alphabet used by the
decompressor: a permutation of the symbol space plus per-symbol usage
counters, with an in-band rebuild operation that re-sorts the alphabet
by descending usage and halves every counter.

Information sources:

https://github.com/Skarmux/S4Reader/blob/main/s4reader/src/decompress.rs

*/

package mapdecoder

import "sort"

// NumSymbols is the size of the symbol alphabet.
const NumSymbols = 274

// Symbol kinds, see SymbolTable / Decompressor for how they're dispatched.
const (
	SymShortRefBase = 256 // .. 263
	SymLongRefBase  = 264 // .. 271
	SymRebuild      = 272
	SymEnd          = 273
)

// SymbolTable holds the 274-symbol alphabet and its usage counters. It is
// mutated by a single Decompressor for the lifetime of one segment body.
type SymbolTable struct {
	alphabet [NumSymbols]uint16
	usage    [NumSymbols]uint32
}

// NewSymbolTable returns a SymbolTable initialized to the fixed starting
// permutation: positions 0..19 hold the control/common symbols, positions
// 20..271 hold the remaining byte values in ascending order, and positions
// 272 and 273 hold symbols 272 and 273.
func NewSymbolTable() *SymbolTable {
	t := &SymbolTable{}

	head := [20]uint16{
		256, 257, 258, 259, 260, 261, 262, 263,
		264, 265, 266, 267, 268, 269, 270, 271,
		0, 32, 48, 255,
	}
	copy(t.alphabet[:20], head[:])

	placed := make(map[uint16]bool, 20)
	for _, v := range head {
		placed[v] = true
	}

	i := 20
	for v := uint16(1); v <= 254; v++ {
		if placed[v] {
			continue
		}
		t.alphabet[i] = v
		i++
	}
	t.alphabet[i] = 272
	i++
	t.alphabet[i] = 273

	return t
}

// SymbolAt returns alphabet[index] and increments that symbol's usage
// counter by one.
func (t *SymbolTable) SymbolAt(index int) uint16 {
	symbol := t.alphabet[index]
	t.usage[symbol]++
	return symbol
}

// Rebuild sorts the alphabet so entries with higher usage count come
// first, ties broken by larger symbol value first, then halves every
// usage counter (integer division by two). The permutation invariant is
// preserved: this is a stable re-sort of the same 274 values.
func (t *SymbolTable) Rebuild() {
	sort.SliceStable(t.alphabet[:], func(i, j int) bool {
		si, sj := t.alphabet[i], t.alphabet[j]
		ci, cj := t.usage[si], t.usage[sj]
		if ci != cj {
			return ci > cj
		}
		return si > sj
	})

	for s := range t.usage {
		t.usage[s] /= 2
	}
}
