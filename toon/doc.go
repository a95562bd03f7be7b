// Package toon implements TOON, a human-readable, indentation-based text
// serialization for ordered records, used to compare token costs across LLM
// tokenizers.
//
// # Data Model
//
// A Dataset is an ordered sequence of Records; a Record is an ordered
// field-name-to-value mapping. A field Value is a closed tagged union over:
//
//	string   leaf text, no quoting
//	int      non-negative digit-only tokens
//	bool     true / false
//	list     ordered stringified scalars, [a, b, c]
//	object   nested record, the only recursive variant
//
// # Syntax
//
// One line per scalar field, one two-space indent unit per nesting level,
// records separated by a dashed line:
//
//	name: Jenil
//	role: Developer
//	skills: [C#, .NET, Angular]
//	active: true
//	address:
//	  city: Ahmedabad
//	  zip: 380001
//
//	--------
//
//	name: Sarah
//	...
//
// # Decoding
//
// Decode runs a recursive descent over indentation levels and is tolerant:
// lines that fit no expected shape are skipped silently. DecodeStrict turns
// every skipped line into a ParseError instead.
//
// Both operations are pure, synchronous text transformations; the package
// holds no state across calls.
package toon
