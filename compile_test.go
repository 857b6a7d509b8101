package uax31

import (
	"errors"
	"io"
	"reflect"
	"testing"
)

// testRanges is a small but representative property set: ASCII letters and
// digits, Latin-1 letters, combining marks, a large CJK run, supplementary
// plane entries and a range reaching past the encoded domain.
func testRanges() []Range {
	return []Range{
		{Lo: 'A', Hi: 'Z', Class: Start | Continue},
		{Lo: 'a', Hi: 'z', Class: Start | Continue},
		{Lo: '0', Hi: '9', Class: Continue},
		{Lo: '_', Hi: '_', Class: Continue},
		{Lo: 0x00C0, Hi: 0x00D6, Class: Start | Continue},
		{Lo: 0x00D8, Hi: 0x00F6, Class: Start | Continue},
		{Lo: 0x0300, Hi: 0x036F, Class: Continue},
		{Lo: 0x4E00, Hi: 0x9FFF, Class: Start | Continue},
		{Lo: 0x10000, Hi: 0x1000B, Class: Start | Continue},
		{Lo: 0xF0000, Hi: 0x10FFFD, Class: Start},
	}
}

func oracleFor(ranges []Range) func(rune) IdentifierClass {
	return func(cp rune) IdentifierClass {
		class := Other
		for _, rg := range ranges {
			hi := rg.Hi
			if hi > MaxCodepoint {
				hi = MaxCodepoint
			}
			if cp >= rg.Lo && cp <= hi {
				class |= rg.Class
			}
		}
		return class
	}
}

func mustCompile(t *testing.T, ranges []Range) *Table {
	t.Helper()
	table, err := CompileRanges("test-ranges", ranges)
	if err != nil {
		t.Fatal(err)
	}
	return table
}

func TestCompileAgainstOracle(t *testing.T) {
	ranges := testRanges()
	table := mustCompile(t, ranges)
	if err := table.Verify(oracleFor(ranges)); err != nil {
		t.Fatal(err)
	}
}

func TestCompileIsDeterministic(t *testing.T) {
	first := mustCompile(t, testRanges())
	second := mustCompile(t, testRanges())
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("two compilations of identical input differ")
	}
}

func TestCompileSharesLeavesAndRows(t *testing.T) {
	table := mustCompile(t, testRanges())
	stats := table.Stats()
	if stats.Leaves == 0 || stats.Level2Rows == 0 {
		t.Fatalf("expected populated table, got stats %+v", stats)
	}
	if stats.Leaves >= BlockCount {
		t.Fatalf("no leaf sharing happened: %d leaves for %d blocks", stats.Leaves, BlockCount)
	}
	if stats.Level2Rows > TopSize {
		t.Fatalf("more level-2 rows (%d) than top entries (%d)", stats.Level2Rows, TopSize)
	}
	// empty blocks everywhere must collapse onto one leaf
	if c := table.Classify(0x0800); c != Other {
		t.Fatalf("untouched block should classify as Other, got %v", c)
	}
}

func TestCompileClampsOutOfDomainRanges(t *testing.T) {
	table := mustCompile(t, testRanges())
	if c := table.Classify(MaxCodepoint); c != Start {
		t.Fatalf("domain edge should keep the clamped range, got %v", c)
	}
	if c := table.Classify(MaxCodepoint + 1); c != Other {
		t.Fatalf("beyond the domain must be Other, got %v", c)
	}
}

func TestCompileDropsUnusableRanges(t *testing.T) {
	table := mustCompile(t, []Range{
		{Lo: 'a', Hi: 'z', Class: Start | Continue},
		{Lo: 0x110000, Hi: 0x110010, Class: Start}, // entirely out of domain
		{Lo: 'z', Hi: 'a', Class: Start},           // inverted
		{Lo: 0x2000, Hi: 0x2010, Class: Other},     // contributes nothing
	})
	if c := table.Classify(0x2005); c != Other {
		t.Fatalf("zero-class range must not contribute, got %v", c)
	}
	if !table.Classify('q').IsStart() {
		t.Fatalf("valid range got lost")
	}
}

func TestCompileEmptyInput(t *testing.T) {
	table := mustCompile(t, nil)
	// block 0's runs begin at AsciiLimit, all later blocks at offset 0,
	// so even an all-Other domain keeps two distinct leaves and rows
	stats := table.Stats()
	if stats.Leaves != 2 || stats.Level2Rows != 2 {
		t.Fatalf("empty domain should collapse to two leaves and two rows, got %+v", stats)
	}
	if stats.LeafRuns != 4 {
		t.Fatalf("empty domain should store four leaf runs, got %+v", stats)
	}
	if err := table.Verify(func(rune) IdentifierClass { return Other }); err != nil {
		t.Fatal(err)
	}
}

type failingRangeReader struct{}

func (failingRangeReader) Next() (rune, rune, IdentifierClass, error) {
	return 0, 0, Other, errors.New("broken source")
}

func TestCompileSurfacesReaderErrors(t *testing.T) {
	if _, err := Compile("broken", failingRangeReader{}); err == nil {
		t.Fatalf("expected reader error to abort the build")
	}
}

type streamRangeReader struct {
	entries []Range
	index   int
}

func (r *streamRangeReader) Next() (rune, rune, IdentifierClass, error) {
	if r.index >= len(r.entries) {
		return 0, 0, Other, io.EOF
	}
	entry := r.entries[r.index]
	r.index++
	return entry.Lo, entry.Hi, entry.Class, nil
}

func TestRangeReaderAPI(t *testing.T) {
	table, err := Compile("stream-ranges", &streamRangeReader{entries: testRanges()})
	if err != nil {
		t.Fatal(err)
	}
	if !table.Classify(0x4E2D).IsStart() {
		t.Fatalf("CJK codepoint should have Start")
	}
}
