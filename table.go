package uax31

import "sort"

// Artifact geometry. These are fixed for the encoding and must match any
// table compiled or emitted by this package; widening or narrowing a field
// width invalidates the capacity limits checked during compilation.
const (
	// Shift is the block size exponent: one block covers 1<<Shift codepoints.
	Shift = 10
	// AsciiLimit bounds the flat ASCII fast-path table.
	AsciiLimit = 0x80
	// MaxCodepoint is the highest codepoint carried by a table. Unicode
	// assigns no identifier properties above it, so everything beyond
	// classifies as Other. Revisit only if the Character Database changes.
	MaxCodepoint = 0x0fffff
	// BlockCount is the number of blocks covering [0, MaxCodepoint].
	BlockCount = (MaxCodepoint >> Shift) + 1
	// TopBits and LowerBits split a block number for the two-level index.
	TopBits   = 6
	LowerBits = 4
	// LowerSize is the entry count of one level-2 row.
	LowerSize = 1 << LowerBits
	// TopSize is the entry count of the level-1 table.
	TopSize = 1 << TopBits

	blockMask = 1<<Shift - 1
	lowerMask = 1<<LowerBits - 1
)

// Table is a compiled, immutable identifier-property artifact.
//
// A table contains:
//   - a flat classification table for the ASCII range
//   - shared run storage for all deduplicated leaves (LeafRunStarts and
//     LeafRunValues are parallel; LeafOffsets holds prefix sums delimiting
//     each leaf's slice of the storage, so its length is leafCount+1)
//   - the two-level block index (Level1 maps the high bits of a block
//     number to a row id; Level2 is the flattened row storage, LowerSize
//     leaf ids per row).
//
// Once compiled a table is never mutated and may be shared for concurrent
// reads without synchronization. Replacing a table at runtime means
// compiling a new one and swapping the pointer atomically; readers never
// see a partially built artifact.
type Table struct {
	Ascii         [AsciiLimit]IdentifierClass
	LeafOffsets   []uint16
	LeafRunStarts []uint16
	LeafRunValues []IdentifierClass
	Level2        []uint16
	Level1        []uint16
	Identifier    string // Identifies the table
}

type leaf struct {
	offset uint16
	len    uint16
}

func (t *Table) loadLeaf(idx uint16) leaf {
	start := t.LeafOffsets[idx]
	end := t.LeafOffsets[idx+1]
	return leaf{offset: start, len: end - start}
}

// leafValue resolves an in-block offset against one leaf's runs: find the
// greatest run start <= offset, return its value.
func (t *Table) leafValue(l leaf, offset uint16) IdentifierClass {
	start := int(l.offset)
	end := start + int(l.len)
	runs := t.LeafRunStarts[start:end]
	values := t.LeafRunValues[start:end]

	idx := sort.Search(len(runs), func(i int) bool {
		return runs[i] > offset
	})
	if idx == 0 {
		return values[0]
	}
	return values[idx-1]
}

// Classify returns the identifier class of a single codepoint. It is total
// over the full rune domain: negative runes and codepoints beyond
// MaxCodepoint classify as Other, everything else resolves through the
// ASCII table or the two-level index.
func (t *Table) Classify(cp rune) IdentifierClass {
	if cp < 0 {
		return Other
	}
	if cp < AsciiLimit {
		return t.Ascii[cp]
	}
	if cp > MaxCodepoint {
		return Other
	}
	block := uint32(cp) >> Shift
	top := block >> LowerBits
	bottom := block & lowerMask
	row := t.Level1[top]
	leafIdx := t.Level2[int(row)*LowerSize+int(bottom)]
	l := t.loadLeaf(leafIdx)
	return t.leafValue(l, uint16(uint32(cp)&blockMask))
}

// TableStats reports density metrics for a compiled table.
type TableStats struct {
	Leaves     int // deduplicated leaf count
	LeafRuns   int // entries in the shared run storage
	Level2Rows int // deduplicated level-2 rows
	Bytes      int // total artifact size
}

// Stats returns size and sharing metrics of the table.
func (t *Table) Stats() TableStats {
	stats := TableStats{
		LeafRuns: len(t.LeafRunStarts),
	}
	if len(t.LeafOffsets) > 0 {
		stats.Leaves = len(t.LeafOffsets) - 1
	}
	stats.Level2Rows = len(t.Level2) / LowerSize
	stats.Bytes = len(t.Ascii) +
		2*len(t.LeafOffsets) +
		2*len(t.LeafRunStarts) +
		len(t.LeafRunValues) +
		2*len(t.Level2) +
		2*len(t.Level1)
	return stats
}
