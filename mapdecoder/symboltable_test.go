package mapdecoder

import "testing"

func TestNewSymbolTableIsPermutation(t *testing.T) {
	table := NewSymbolTable()
	assertPermutation(t, table)
}

func TestSymbolTableInitialLayout(t *testing.T) {
	table := NewSymbolTable()

	wantHead := []uint16{
		256, 257, 258, 259, 260, 261, 262, 263,
		264, 265, 266, 267, 268, 269, 270, 271,
		0, 32, 48, 255,
	}
	for i, w := range wantHead {
		if table.alphabet[i] != w {
			t.Errorf("alphabet[%d] = %d, want %d", i, table.alphabet[i], w)
		}
	}

	if table.alphabet[272] != 272 || table.alphabet[273] != 273 {
		t.Errorf("control symbols at tail: got %d, %d; want 272, 273",
			table.alphabet[272], table.alphabet[273])
	}

	// positions 20..271 ascend
	prev := int(table.alphabet[20])
	for i := 21; i < 272; i++ {
		if int(table.alphabet[i]) <= prev {
			t.Fatalf("alphabet not ascending at %d: %d after %d", i, table.alphabet[i], prev)
		}
		prev = int(table.alphabet[i])
	}
}

func TestSymbolTableRebuildPreservesPermutation(t *testing.T) {
	table := NewSymbolTable()
	for i := 0; i < 50; i++ {
		table.SymbolAt(i % NumSymbols)
	}
	table.Rebuild()
	assertPermutation(t, table)

	table.Rebuild()
	assertPermutation(t, table)
}

func TestSymbolTableRebuildSortOrder(t *testing.T) {
	table := NewSymbolTable()

	// Bump usage of a handful of indices unevenly.
	for i := 0; i < 5; i++ {
		table.SymbolAt(0) // highest usage
	}
	for i := 0; i < 2; i++ {
		table.SymbolAt(1)
	}
	table.SymbolAt(2)

	// Rebuild sorts by the counts it finds, then halves them, so the order
	// is checked against the counts as they were before the call.
	before := table.usage

	table.Rebuild()

	for i := 1; i < NumSymbols; i++ {
		a, b := table.alphabet[i-1], table.alphabet[i]
		ca, cb := before[a], before[b]
		if ca < cb {
			t.Fatalf("position %d: usage[%d]=%d < usage[%d]=%d, not descending", i, a, ca, b, cb)
		}
		if ca == cb && a < b {
			t.Fatalf("position %d: tie between %d and %d not broken by larger-first", i, a, b)
		}
	}
}

func TestSymbolTableCounterHalving(t *testing.T) {
	table := NewSymbolTable()

	// alphabet[3] is symbol 259 (short back-reference 256+3) in the
	// initial permutation; usage is indexed by symbol value.
	const symbol = 259

	for i := 0; i < 7; i++ {
		table.SymbolAt(3)
	}
	before := table.usage[symbol]

	table.Rebuild()

	if got, want := table.usage[symbol], before/2; got != want {
		t.Errorf("usage after rebuild: got %d, want %d", got, want)
	}
}

func TestSymbolTableFixedPointS5(t *testing.T) {
	table := NewSymbolTable()

	table.SymbolAt(0)
	table.Rebuild()
	table.Rebuild()

	for s, count := range table.usage {
		if count != 0 {
			t.Fatalf("usage[%d] = %d, want 0", s, count)
		}
	}

	for i := 1; i < NumSymbols; i++ {
		if table.alphabet[i-1] <= table.alphabet[i] {
			t.Fatalf("alphabet not descending at %d: %d then %d", i, table.alphabet[i-1], table.alphabet[i])
		}
	}
}

func assertPermutation(t *testing.T, table *SymbolTable) {
	t.Helper()

	seen := make([]bool, NumSymbols)
	for _, s := range table.alphabet {
		if int(s) >= NumSymbols {
			t.Fatalf("alphabet contains out-of-range value %d", s)
		}
		if seen[s] {
			t.Fatalf("alphabet contains duplicate value %d", s)
		}
		seen[s] = true
	}
	for s, ok := range seen {
		if !ok {
			t.Fatalf("alphabet missing value %d", s)
		}
	}
}
