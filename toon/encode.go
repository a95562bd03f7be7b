package toon

import "strings"

// Separator is the exact textual record separator. It appears strictly
// between two record blocks, never before the first or after the last.
const Separator = "\n\n--------\n\n"

// indentUnit is one nesting level of indentation.
const indentUnit = "  "

// Encode renders a dataset as TOON text. Fields are emitted in insertion
// order, nested objects as a "key:" header followed by a block indented one
// unit deeper. An empty dataset encodes to the empty string.
//
// Encode performs no validation and never mutates its input.
func Encode(ds Dataset) string {
	if len(ds) == 0 {
		return ""
	}

	blocks := make([]string, 0, len(ds))
	for _, rec := range ds {
		e := &encoder{}
		e.record(rec, 0)
		blocks = append(blocks, strings.Join(e.lines, "\n"))
	}
	return strings.Join(blocks, Separator)
}

type encoder struct {
	lines []string
}

func (e *encoder) record(rec Record, depth int) {
	indent := strings.Repeat(indentUnit, depth)
	for _, f := range rec {
		if f.Value.kind == KindObject {
			e.lines = append(e.lines, indent+f.Key+":")
			e.record(f.Value.objVal, depth+1)
			continue
		}
		e.lines = append(e.lines, indent+f.Key+": "+formatScalar(f.Value))
	}
}
