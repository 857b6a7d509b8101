/*
Package uax31 classifies Unicode codepoints by their identifier properties
(ID_Start / ID_Continue) and checks codepoint sequences for identifier
validity, as defined by Unicode Standard Annex #31.

The full codepoint domain is far too large to store densely, so property
data is compiled into a compact artifact: the non-ASCII domain is
run-length encoded, partitioned into fixed-size blocks, and blocks with
identical run patterns share a single deduplicated leaf. A two-level index
(itself deduplicated row-wise) maps a block number to its leaf. Lookups
walk the index and binary-search a handful of runs; ASCII takes a direct
table hit.

Property data is streamed in through the RangeReader interface. File format
parsing is intentionally outside the base package; package ucd parses the
DerivedCoreProperties.txt format of the Unicode Character Database and
feeds this API.

Further Reading

	https://www.unicode.org/reports/tr31/
	https://www.unicode.org/Public/UCD/latest/ucd/DerivedCoreProperties.txt

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package uax31

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'uax31'
func tracer() tracing.Trace {
	return tracing.Select("uax31")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
