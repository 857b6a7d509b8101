package uax31

import (
	"bufio"
	"fmt"
	"io"
)

const (
	byteValuesPerLine  = 12
	indexValuesPerLine = 8
)

// WriteGoSource emits the table as a frozen Go source file declaring the
// geometry constants and the six artifact arrays. Output is deterministic:
// emitting the same table twice produces identical bytes.
//
// The emitted file is self-contained data; it carries no behavior and is
// meant to be regenerated, not edited.
func (t *Table) WriteGoSource(w io.Writer, pkg string) error {
	buf := bufio.NewWriter(w)

	fmt.Fprintf(buf, "// Code generated from %q; DO NOT EDIT.\n", t.Identifier)
	fmt.Fprintln(buf, "// This file is derived from the Unicode Character Database and is")
	fmt.Fprintln(buf, "// thus subject to the terms of the Unicode License V3.")
	fmt.Fprintf(buf, "package %s\n\n", pkg)

	fmt.Fprintln(buf, "const (")
	fmt.Fprintf(buf, "\tshift = %d\n", Shift)
	fmt.Fprintf(buf, "\tasciiLimit = %#x\n", AsciiLimit)
	fmt.Fprintf(buf, "\tblockCount = %d\n", BlockCount)
	fmt.Fprintf(buf, "\tlowerBits = %d\n", LowerBits)
	fmt.Fprintf(buf, "\tlowerSize = %d\n", LowerSize)
	fmt.Fprintln(buf, ")")
	fmt.Fprintln(buf)

	emitByteArray(buf, "asciiTable", t.Ascii[:])
	emitUint16Array(buf, "leafOffsets", t.LeafOffsets)
	emitUint16Array(buf, "leafRunStarts", t.LeafRunStarts)
	emitByteArray(buf, "leafRunValues", t.LeafRunValues)
	emitUint16Array(buf, "level2Tables", t.Level2)
	emitUint16Array(buf, "level1Table", t.Level1)

	return buf.Flush()
}

func emitUint16Array(w *bufio.Writer, name string, data []uint16) {
	fmt.Fprintf(w, "var %s = [...]uint16{\n", name)
	for i, v := range data {
		if i%indexValuesPerLine == 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprintf(w, "0x%04x,", v)
		if i%indexValuesPerLine == indexValuesPerLine-1 || i+1 == len(data) {
			fmt.Fprintln(w)
		} else {
			fmt.Fprint(w, " ")
		}
	}
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w)
}

func emitByteArray(w *bufio.Writer, name string, data []IdentifierClass) {
	fmt.Fprintf(w, "var %s = [...]uint8{\n", name)
	for i, v := range data {
		if i%byteValuesPerLine == 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprintf(w, "0x%02x,", uint8(v))
		if i%byteValuesPerLine == byteValuesPerLine-1 || i+1 == len(data) {
			fmt.Fprintln(w)
		} else {
			fmt.Fprint(w, " ")
		}
	}
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w)
}
