package ucd

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/uax31"
)

// Reader streams identifier-property declarations from files in the
// DerivedCoreProperties.txt format of the Unicode Character Database.
type Reader struct {
	scanner *bufio.Scanner
}

// LoadTable parses DerivedCoreProperties data and compiles it into a
// ready-to-use classification table.
//
// Property files look like
//
//	0041..005A    ; ID_Start # L&  [26] LATIN CAPITAL LETTER A..LATIN CAPITAL LETTER Z
//	005F          ; ID_Continue # Pc       LOW LINE
//
// One declaration per line: a codepoint or inclusive codepoint range, a
// semicolon, and a property name. '#' starts a comment. The loader parses
// the input into a streaming Reader and compiles declarations
// incrementally.
//
// Example usage:
//
//	f, _ := os.Open("path/to/DerivedCoreProperties.txt")
//	defer f.Close()
//
//	table, err := ucd.LoadTable("unicode-16", f)
func LoadTable(name string, reader io.Reader) (*uax31.Table, error) {
	return uax31.Compile(name, NewReader(reader))
}

func NewReader(reader io.Reader) *Reader {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	return &Reader{scanner: scanner}
}

// Next returns the next declaration as (lo, hi, class).
// It returns io.EOF when exhausted.
//
// Parsing is lenient: lines without a recognized identifier property and
// lines that do not parse are silently skipped. Property names match by
// substring, so both ID_Start and XID_Start contribute the Start bit.
func (r *Reader) Next() (rune, rune, uax31.IdentifierClass, error) {
	for r.scanner.Scan() {
		line := r.scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		field, prop, ok := strings.Cut(line, ";")
		if !ok {
			continue
		}
		class := classOf(prop)
		if class == uax31.Other {
			continue
		}
		lo, hi, err := parseRange(strings.TrimSpace(field))
		if err != nil {
			continue // simply skip malformed declarations
		}
		return lo, hi, class, nil
	}
	if err := r.scanner.Err(); err != nil {
		return 0, 0, uax31.Other, err
	}
	return 0, 0, uax31.Other, io.EOF
}

func classOf(prop string) uax31.IdentifierClass {
	class := uax31.Other
	if strings.Contains(prop, "ID_Start") {
		class |= uax31.Start
	}
	if strings.Contains(prop, "ID_Continue") {
		class |= uax31.Continue
	}
	return class
}

func parseRange(field string) (rune, rune, error) {
	lo, hi, isRange := strings.Cut(field, "..")
	start, err := strconv.ParseUint(strings.TrimSpace(lo), 16, 21)
	if err != nil {
		return 0, 0, err
	}
	if !isRange {
		return rune(start), rune(start), nil
	}
	end, err := strconv.ParseUint(strings.TrimSpace(hi), 16, 21)
	if err != nil {
		return 0, 0, err
	}
	return rune(start), rune(end), nil
}
