package ucdblocks

import (
	"sort"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// NoBlock is the name returned for code-points not covered by any block.
// This is the standard UCD sentinel value; receiving it is a regular
// lookup result, not an error condition.
const NoBlock = "No_Block"

// Entry is a single parsed line of Blocks.txt: an inclusive range of
// code-points together with the name of the block they form.
type Entry struct {
	From, To rune   // inclusive bounds of the block
	Name     string // block name, trimmed
}

// BlockTable is an ordered sequence of block entries, in the order the lines
// appeared in the input. It is built once by parsing and never modified
// afterwards, which makes it safe for concurrent read-only use.
//
// Lookup relies on the entries being sorted ascending and mutually disjoint,
// which holds for genuine UCD data. The table does not verify this; feeding
// it ranges out of order yields undefined lookup results (not a crash).
type BlockTable struct {
	entries []Entry
}

// Len returns the number of block entries in the table.
func (t *BlockTable) Len() int {
	return len(t.entries)
}

// At returns entry #i of the table, in input order.
func (t *BlockTable) At(i int) Entry {
	return t.entries[i]
}

// BlockOf returns the name of the Unicode block containing r, or NoBlock if
// no entry covers r (unassigned planes, gaps between blocks, or values
// beyond the last block).
//
// Lookup is a binary search over the entries, comparing r against each
// entry's inclusive range: an entry orders before r iff its upper bound is
// below r, after r iff its lower bound is above r, and matches otherwise.
func (t *BlockTable) BlockOf(r rune) string {
	i := sort.Search(len(t.entries), func(i int) bool {
		return r <= t.entries[i].To
	})
	if i < len(t.entries) && t.entries[i].From <= r {
		return t.entries[i].Name
	}
	return NoBlock
}

// Names returns the distinct block names of the table, in input order.
func (t *BlockTable) Names() []string {
	seen := make(map[string]bool, len(t.entries))
	names := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		if !seen[e.Name] {
			seen[e.Name] = true
			names = append(names, e.Name)
		}
	}
	return names
}

// RangeTable returns the code-points of the named block as a
// unicode.RangeTable, suitable for unicode.Is. Entries sharing the name are
// merged into one table. If no entry carries the name, an empty table is
// returned.
func (t *BlockTable) RangeTable(name string) *unicode.RangeTable {
	var tables []*unicode.RangeTable
	for _, e := range t.entries {
		if e.Name != name {
			continue
		}
		tables = append(tables, &unicode.RangeTable{
			R32: []unicode.Range32{
				{Lo: uint32(e.From), Hi: uint32(e.To), Stride: 1},
			},
		})
	}
	return rangetable.Merge(tables...)
}
