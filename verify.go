package uax31

import "fmt"

// Verify cross-checks the compiled artifact: first structurally (the leaf
// runs resolved through the two-level index must partition every block
// without gaps or overlaps), then exhaustively against an oracle giving
// the ground truth for every codepoint in the encoded domain.
//
// The oracle is typically a direct evaluation of the raw property ranges
// the table was compiled from.
func (t *Table) Verify(oracle func(rune) IdentifierClass) error {
	if err := t.checkPartition(); err != nil {
		return err
	}
	for cp := rune(0); cp <= MaxCodepoint; cp++ {
		if got, want := t.Classify(cp), oracle(cp); got != want {
			return fmt.Errorf("codepoint %#x classifies as %v, source data says %v", cp, got, want)
		}
	}
	return nil
}

func (t *Table) checkPartition() error {
	if len(t.LeafOffsets) < 2 {
		return fmt.Errorf("table has no leaves")
	}
	if t.LeafOffsets[0] != 0 || int(t.LeafOffsets[len(t.LeafOffsets)-1]) != len(t.LeafRunStarts) {
		return fmt.Errorf("leaf offsets do not cover the run storage")
	}
	for block := 0; block < BlockCount; block++ {
		top := block >> LowerBits
		bottom := block & lowerMask
		row := t.Level1[top]
		leafIdx := t.Level2[int(row)*LowerSize+bottom]
		l := t.loadLeaf(leafIdx)
		if l.len < 2 {
			return fmt.Errorf("leaf %d of block %d lacks a sentinel run", leafIdx, block)
		}
		runs := t.LeafRunStarts[l.offset : l.offset+l.len]
		// the encoded domain begins at AsciiLimit, so block 0's first
		// run sits at that offset; every later block is covered in full
		first := uint16(0)
		if block == 0 {
			first = AsciiLimit
		}
		if runs[0] != first {
			return fmt.Errorf("leaf %d of block %d does not start at offset %#x", leafIdx, block, first)
		}
		for i := 1; i < len(runs); i++ {
			if runs[i] <= runs[i-1] {
				return fmt.Errorf("leaf %d has non-ascending run starts at %d", leafIdx, i)
			}
		}
		if runs[len(runs)-1] != 1<<Shift {
			return fmt.Errorf("leaf %d sentinel is not at the block length", leafIdx)
		}
		if t.LeafRunValues[int(l.offset)+len(runs)-1] != Other {
			return fmt.Errorf("leaf %d sentinel run carries a value", leafIdx)
		}
	}
	return nil
}
