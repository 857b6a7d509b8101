package uax31

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/bits"
)

// Build-time safety limits. Leaf ids, row ids and run-storage offsets are
// 16-bit in the artifact, so the corresponding counts must stay below
// 1<<16; the global run list gets a generous fixed cap of its own.
const (
	maxRuns       = 8192
	maxTableIndex = 1<<16 - 1
)

// RangeReader yields identifier-property declarations one-by-one.
// It should return io.EOF when the stream is exhausted.
//
// A declaration covers the inclusive codepoint range [lo,hi] and
// contributes the given class bits. Declarations may overlap; bits
// accumulate. Ranges reaching beyond MaxCodepoint are clamped,
// ranges lying entirely outside the domain are dropped.
type RangeReader interface {
	Next() (lo, hi rune, class IdentifierClass, err error)
}

// Range is one materialized property declaration.
type Range struct {
	Lo, Hi rune
	Class  IdentifierClass
}

type rangeListReader struct {
	entries []Range
	index   int
}

func (r *rangeListReader) Next() (rune, rune, IdentifierClass, error) {
	if r.index >= len(r.entries) {
		return 0, 0, Other, io.EOF
	}
	entry := r.entries[r.index]
	r.index++
	return entry.Lo, entry.Hi, entry.Class, nil
}

// CompileRanges compiles a table from an in-memory declaration list.
func CompileRanges(name string, ranges []Range) (*Table, error) {
	return Compile(name, &rangeListReader{entries: ranges})
}

// Compile builds an immutable classification table from a streaming,
// format-agnostic source of property declarations.
//
// The build is all-or-nothing: any capacity violation aborts it with an
// error and no partial table. All scratch state is owned by the call, so
// compiling twice from identical input yields identical tables.
func Compile(name string, reader RangeReader) (*Table, error) {
	if w := bits.Len32(BlockCount - 1); w != TopBits+LowerBits {
		return nil, fmt.Errorf("index bit split %d+%d does not match block bit width %d", TopBits, LowerBits, w)
	}

	dense := make([]IdentifierClass, MaxCodepoint+1)
	for {
		lo, hi, class, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if class == Other || hi < lo || hi < 0 || lo > MaxCodepoint {
			continue // nothing to contribute
		}
		if lo < 0 {
			lo = 0
		}
		if hi > MaxCodepoint {
			hi = MaxCodepoint
		}
		for cp := lo; cp <= hi; cp++ {
			dense[cp] |= class
		}
	}

	table := &Table{
		Identifier: fmt.Sprintf("identifier properties: %s", name),
	}
	copy(table.Ascii[:], dense[:AsciiLimit])

	runs, err := encodeRuns(dense)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("encoded %d runs over the non-ASCII domain", len(runs))

	blockToLeaf, err := buildLeaves(runs, table)
	if err != nil {
		return nil, err
	}
	if err := buildLevelTables(blockToLeaf, table); err != nil {
		return nil, err
	}

	stats := table.Stats()
	tracer().Infof("identifier table stats leaves=%d leafruns=%d rows=%d bytes=%d",
		stats.Leaves, stats.LeafRuns, stats.Level2Rows, stats.Bytes)
	return table, nil
}

type run struct {
	start uint32
	value IdentifierClass
}

type leafRun struct {
	start uint16
	value IdentifierClass
}

// encodeRuns compresses the dense table into an ordered run list over
// [AsciiLimit, MaxCodepoint], closed by a zero-value sentinel run at the
// domain end boundary. A virtual zero element at MaxCodepoint+1 guarantees
// the scan terminates any trailing property run.
func encodeRuns(dense []IdentifierClass) ([]run, error) {
	runs := make([]run, 0, 1024)
	endCP := uint32(MaxCodepoint + 1)

	runStart := uint32(AsciiLimit)
	current := dense[AsciiLimit]
	for cp := uint32(AsciiLimit + 1); cp <= endCP; cp++ {
		value := Other
		if cp <= MaxCodepoint {
			value = dense[cp]
		}
		if value != current {
			if len(runs) >= maxRuns {
				return nil, fmt.Errorf("run table exceeds capacity of %d", maxRuns)
			}
			runs = append(runs, run{start: runStart, value: current})
			runStart = cp
			current = value
		}
	}
	if len(runs)+2 > maxRuns {
		return nil, fmt.Errorf("run table exceeds capacity of %d", maxRuns)
	}
	runs = append(runs, run{start: runStart, value: current})
	if runs[len(runs)-1].start != endCP {
		runs = append(runs, run{start: endCP, value: Other})
	}
	return runs, nil
}

// blockRunIndex maps every block to the index of the run covering its
// first codepoint. Blocks ascend and runs are sorted, so a single
// forward-only cursor suffices.
func blockRunIndex(runs []run) []int {
	index := make([]int, BlockCount)
	runIdx := 0
	for block := 0; block < BlockCount; block++ {
		blockStart := uint32(block << Shift)
		for runIdx+1 < len(runs) && runs[runIdx+1].start <= blockStart {
			runIdx++
		}
		index[block] = runIdx
	}
	return index
}

// buildLeaves walks every block, clips the overlapping global runs to the
// block's bounds and registers the resulting local run pattern as a leaf.
// Blocks with byte-identical patterns share one leaf id; the first
// registration wins. Returns the block number to leaf id map.
func buildLeaves(runs []run, table *Table) ([]uint16, error) {
	blockIndex := blockRunIndex(runs)
	blockToLeaf := make([]uint16, 0, BlockCount)
	leafIDs := make(map[string]uint16)
	local := make([]leafRun, 0, 16)

	for block := 0; block < BlockCount; block++ {
		blockStart := uint32(block << Shift)
		blockEnd := uint32((block + 1) << Shift)
		if blockEnd > MaxCodepoint+1 {
			blockEnd = MaxCodepoint + 1
		}

		local = local[:0]
		idx := blockIndex[block]
		for {
			start := runs[idx].start
			value := runs[idx].value
			nextStart := runs[idx+1].start
			if nextStart <= blockStart {
				idx++
				continue
			}
			runFrom := max(start, blockStart)
			if runFrom < blockEnd {
				local = append(local, leafRun{
					start: uint16(runFrom - blockStart),
					value: value,
				})
			}
			if nextStart >= blockEnd {
				break
			}
			idx++
		}
		// implicit trailing run closes the block
		local = append(local, leafRun{start: uint16(blockEnd - blockStart), value: Other})

		key := leafKey(local)
		leafID, ok := leafIDs[key]
		if !ok {
			if len(leafIDs) >= maxTableIndex {
				return nil, fmt.Errorf("leaf count exceeds uint16: %d", len(leafIDs))
			}
			if len(table.LeafRunStarts)+len(local) > maxTableIndex {
				return nil, fmt.Errorf("leaf run storage exceeds uint16: %d",
					len(table.LeafRunStarts)+len(local))
			}
			leafID = uint16(len(leafIDs))
			table.LeafOffsets = append(table.LeafOffsets, uint16(len(table.LeafRunStarts)))
			for _, lr := range local {
				table.LeafRunStarts = append(table.LeafRunStarts, lr.start)
				table.LeafRunValues = append(table.LeafRunValues, lr.value)
			}
			leafIDs[key] = leafID
		}
		blockToLeaf = append(blockToLeaf, leafID)
	}

	table.LeafOffsets = append(table.LeafOffsets, uint16(len(table.LeafRunStarts)))
	return blockToLeaf, nil
}

// buildLevelTables groups blocks by the top bits of their number and
// deduplicates the per-group leaf id vectors into shared level-2 rows.
func buildLevelTables(blockToLeaf []uint16, table *Table) error {
	assert(len(blockToLeaf) == TopSize*LowerSize, "block map does not cover the index space")

	rowIDs := make(map[string]uint16)
	table.Level1 = make([]uint16, 0, TopSize)
	row := make([]uint16, LowerSize)

	for top := 0; top < TopSize; top++ {
		for low := 0; low < LowerSize; low++ {
			row[low] = blockToLeaf[top*LowerSize+low]
		}
		key := rowKey(row)
		rowID, ok := rowIDs[key]
		if !ok {
			if len(rowIDs) >= maxTableIndex {
				return fmt.Errorf("level-2 row count exceeds uint16: %d", len(rowIDs))
			}
			rowID = uint16(len(rowIDs))
			rowIDs[key] = rowID
			table.Level2 = append(table.Level2, row...)
		}
		table.Level1 = append(table.Level1, rowID)
	}
	return nil
}

// leafKey serializes a local run pattern for content-keyed deduplication.
// Exact sequence equality is what matters: order and offsets included.
func leafKey(local []leafRun) string {
	buf := make([]byte, 0, len(local)*3)
	for _, lr := range local {
		buf = binary.LittleEndian.AppendUint16(buf, lr.start)
		buf = append(buf, byte(lr.value))
	}
	return string(buf)
}

func rowKey(row []uint16) string {
	buf := make([]byte, 0, len(row)*2)
	for _, id := range row {
		buf = binary.LittleEndian.AppendUint16(buf, id)
	}
	return string(buf)
}
