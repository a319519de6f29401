package lexer

import (
	"sort"
	"testing"
)

func TestOpTableSorted(t *testing.T) {
	if !sort.SliceIsSorted(opTable, func(i, j int) bool {
		return opTable[i].str < opTable[j].str
	}) {
		t.Fatal("operator table is not sorted lexicographically")
	}
}

func TestLookupOpLongestMatch(t *testing.T) {
	tests := []struct {
		src string
		tok Token
		n   int
	}{
		{"+", '+', 1},
		{"++", Inc, 2},
		{"+=", AddAssign, 2},
		{"+x", '+', 1},
		{"<<=", ShlAssign, 3},
		{"<<", Shl, 2},
		{"<=", Le, 2},
		{"<", '<', 1},
		{"&&x", LAnd, 2},
		{"&x", '&', 1},
		{"===", Eq, 2},
		{"$", 0, 0},
	}

	for _, tt := range tests {
		def, n := lookupOp(tt.src)
		if n != tt.n {
			t.Errorf("%q: expected length %d, got %d", tt.src, tt.n, n)
			continue
		}
		if n > 0 && def.tok != tt.tok {
			t.Errorf("%q: expected token %q, got %q", tt.src, tt.tok, def.tok)
		}
	}
}

func TestLookupOpAll(t *testing.T) {
	for _, def := range opTable {
		got, n := lookupOp(def.str)
		if n != len(def.str) || got.tok != def.tok {
			t.Errorf("%q: lookup returned %q (len %d)", def.str, got.str, n)
		}
	}
}
