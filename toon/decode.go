package toon

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// DecodeOptions configures the decoder behavior.
type DecodeOptions struct {
	// Strict surfaces every line the decoder would otherwise silently skip
	// as a ParseError. The parsed dataset is still returned alongside the
	// error, so callers can inspect what survived.
	Strict bool
}

// ParseError reports a line the decoder could not place within its block.
type ParseError struct {
	Record int    // 0-based record chunk index
	Line   int    // 1-based line number within the chunk
	Text   string // offending line, stripped
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("toon: %s (record %d, line %d: %q)", e.Msg, e.Record, e.Line, e.Text)
}

// Decode parses TOON text into a dataset. It is deliberately lenient: lines
// at an unexpected indentation or that match neither the "key: value" nor
// the "key:" shape are skipped without error, and record chunks that yield
// no fields are dropped. Use DecodeStrict to surface skipped lines instead.
func Decode(text string) Dataset {
	ds, _ := DecodeWithOptions(text, DecodeOptions{})
	return ds
}

// DecodeStrict parses TOON text and reports every malformed line as an
// error. The dataset built from the well-formed lines is returned either
// way.
func DecodeStrict(text string) (Dataset, error) {
	return DecodeWithOptions(text, DecodeOptions{Strict: true})
}

// DecodeWithOptions parses TOON text with explicit options.
func DecodeWithOptions(text string, opts DecodeOptions) (Dataset, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Dataset{}, nil
	}

	ds := Dataset{}
	p := &parser{strict: opts.Strict}
	for n, chunk := range strings.Split(trimmed, Separator) {
		p.lines = strings.Split(strings.TrimSpace(chunk), "\n")
		p.chunk = n
		rec, _ := p.block(0)
		if len(rec) > 0 {
			ds = append(ds, rec)
		}
	}

	if len(p.errs) > 0 {
		return ds, errors.Join(p.errs...)
	}
	return ds, nil
}

// parser holds the line slice of the record chunk being decoded. Parse
// position is threaded through block as an explicit index, never stored.
type parser struct {
	lines  []string
	chunk  int
	strict bool
	errs   []error
}

// block parses one indentation block starting at lines[start] and returns
// the record plus the index of the first line it did not consume. The
// reference indent is fixed from lines[start] at entry: a shallower line
// belongs to an ancestor block and ends the loop unconsumed, a deeper line
// outside a nested recursion is malformed and skipped.
func (p *parser) block(start int) (Record, int) {
	var rec Record
	i := start
	ref := 0
	if i < len(p.lines) {
		ref = leadingSpaces(p.lines[i])
	}

	for i < len(p.lines) {
		line := p.lines[i]
		if strings.TrimSpace(line) == "" {
			i++
			continue
		}

		indent := leadingSpaces(line)
		if indent < ref {
			break
		}
		if indent > ref {
			p.skip(i, "unexpected indentation")
			i++
			continue
		}

		stripped := strings.TrimSpace(line)
		switch {
		case strings.Contains(stripped, ": "):
			// Key with value on the same line. Split on the first
			// occurrence; any further ": " stays in the value.
			idx := strings.Index(stripped, ": ")
			rec = append(rec, Field{Key: stripped[:idx], Value: inferValue(stripped[idx+2:])})
			i++

		case strings.HasSuffix(stripped, ":"):
			// Key only, a nested object block follows one unit deeper.
			nested, next := p.block(i + 1)
			rec = append(rec, Field{Key: strings.TrimSuffix(stripped, ":"), Value: Obj(nested...)})
			i = next

		default:
			p.skip(i, "line is neither key/value nor a nested key")
			i++
		}
	}

	return rec, i
}

func (p *parser) skip(i int, msg string) {
	if !p.strict {
		return
	}
	p.errs = append(p.errs, &ParseError{
		Record: p.chunk,
		Line:   i + 1,
		Text:   strings.TrimSpace(p.lines[i]),
		Msg:    msg,
	})
}

// leadingSpaces counts a line's leading whitespace characters.
func leadingSpaces(line string) int {
	return len(line) - len(strings.TrimLeftFunc(line, unicode.IsSpace))
}
