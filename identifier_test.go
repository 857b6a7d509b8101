package uax31

import "testing"

func TestIsIdentifier(t *testing.T) {
	table := mustCompile(t, testRanges())
	cases := []struct {
		name string
		cps  []rune
		want bool
	}{
		{"empty", nil, false},
		{"single letter", []rune{'a'}, true},
		{"digit first", []rune{'1', 'a'}, false},
		{"digit continues", []rune{'a', '1'}, true},
		{"underscore first", []rune{'_', 'a'}, false},
		{"interior joiner", []rune{'a', ZWJ, 'b'}, true},
		{"interior non-joiner", []rune{'a', ZWNJ, 'b'}, true},
		{"trailing joiner", []rune{'a', ZWJ}, false},
		{"trailing non-joiner", []rune{'a', 'b', ZWNJ}, false},
		{"leading joiner", []rune{ZWJ, 'a'}, false},
		{"space inside", []rune{'a', ' ', 'b'}, false},
	}
	for _, c := range cases {
		if got := table.IsIdentifier(c.cps); got != c.want {
			t.Errorf("%s: IsIdentifier(%q) = %v, want %v", c.name, string(c.cps), got, c.want)
		}
	}
}

func TestIsIdentifierString(t *testing.T) {
	table := mustCompile(t, testRanges())
	if !table.IsIdentifierString("größe") {
		t.Fatalf("größe should be a valid identifier")
	}
	if !table.IsIdentifierString("á") {
		t.Fatalf("a with combining acute should be a valid identifier")
	}
	if table.IsIdentifierString("") {
		t.Fatalf("the empty string is not an identifier")
	}
	if table.IsIdentifierString("2fast") {
		t.Fatalf("2fast must not start with a digit")
	}
}
