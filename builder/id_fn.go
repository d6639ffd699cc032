// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// id_fn.go - vertex ID schemes and per-constructor ID scoping.
//
// Contract:
//   • An IDFn is pure: the same idx always yields the same ID.
//   • Schemes panic on idx < 0 (programmer error, constructors never pass it).
//   • ScopedIDs(fn, c) runs c with fn in place of the configured scheme, so
//     constructors composed in one BuildGraph can live on disjoint IDs.

package builder

import (
	"fmt"
	"strconv"
)

// alphabet is the number of letters used by ExcelColumnIDFn.
const alphabet = 26

// IDFn maps a zero-based vertex index to its string ID.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal form of idx: 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	mustIndex("DefaultIDFn", idx)

	return strconv.Itoa(idx)
}

// SymbolNumberIDFn returns a scheme producing prefix+idx: "v0", "v1", ...
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		mustIndex("SymbolNumberIDFn", idx)

		return prefix + strconv.Itoa(idx)
	}
}

// ExcelColumnIDFn returns spreadsheet column names: 0→"A", 25→"Z", 26→"AA",
// 701→"ZZ", 702→"AAA".
func ExcelColumnIDFn(idx int) string {
	mustIndex("ExcelColumnIDFn", idx)

	// bijective base-26: each digit is 1..26, written as A..Z.
	var buf []byte
	for n := idx + 1; n > 0; n = (n - 1) / alphabet {
		buf = append(buf, byte('A'+(n-1)%alphabet))
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf)
}

// ScopedIDs returns a Constructor that runs c with fn as its ID scheme.
// Every other setting (RNG, weights, potentials) is shared with the build.
func ScopedIDs(fn IDFn, c Constructor) Constructor {
	if fn == nil || c == nil {
		panic("builder: ScopedIDs(nil)")
	}

	return func(g *Graph, cfg builderConfig) error {
		cfg.idFn = fn

		return c(g, cfg)
	}
}

func mustIndex(scheme string, idx int) {
	if idx < 0 {
		panic(fmt.Sprintf("%s: idx must be >= 0, got %d", scheme, idx))
	}
}
