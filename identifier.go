package uax31

// IsIdentifier reports whether the codepoint sequence is a valid Unicode
// identifier per UAX #31 (default identifiers, UAX31-R1): the first
// codepoint needs the Start property, every following one the Continue
// property. ZWNJ and ZWJ are tolerated strictly inside the sequence,
// never at its end. The empty sequence is not an identifier.
func (t *Table) IsIdentifier(cps []rune) bool {
	if len(cps) == 0 {
		return false
	}
	if !t.Classify(cps[0]).IsStart() {
		return false
	}
	for i := 1; i < len(cps); i++ {
		c := cps[i]
		if t.Classify(c).IsContinue() {
			continue
		}
		// joiners pass only in the interior
		if (c != ZWNJ && c != ZWJ) || i+1 == len(cps) {
			return false
		}
	}
	return true
}

// IsIdentifierString is IsIdentifier over the codepoints of s.
func (t *Table) IsIdentifierString(s string) bool {
	return t.IsIdentifier([]rune(s))
}
