package uax31

// IdentifierClass is the identifier property set of a single codepoint,
// a bit set over Start and Continue. The zero value means the codepoint
// carries no identifier properties at all.
type IdentifierClass uint8

const (
	// Other marks codepoints without identifier properties.
	Other IdentifierClass = 0
	// Start marks codepoints with ID_Start (may begin an identifier).
	Start IdentifierClass = 1
	// Continue marks codepoints with ID_Continue (may continue one).
	Continue IdentifierClass = 2
)

// IsStart reports whether the codepoint may start an identifier.
func (c IdentifierClass) IsStart() bool {
	return c&Start != 0
}

// IsContinue reports whether the codepoint may continue an identifier.
func (c IdentifierClass) IsContinue() bool {
	return c&Continue != 0
}

func (c IdentifierClass) String() string {
	switch c {
	case Start:
		return "Start"
	case Continue:
		return "Continue"
	case Start | Continue:
		return "Start|Continue"
	}
	return "Other"
}

// U+200C ZERO WIDTH NON-JOINER and U+200D ZERO WIDTH JOINER are allowed
// *inside* an identifier (never first or last).
const (
	ZWNJ rune = 0x200c
	ZWJ  rune = 0x200d
)
