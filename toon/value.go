package toon

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindString Kind = iota
	KindInt
	KindBool
	KindList
	KindObject
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a closed tagged union over the variants a record field can hold.
// Lists hold already-stringified scalar elements and never nest; Object is
// the only variant that recurses.
type Value struct {
	kind Kind

	// Scalar values (only one valid based on kind)
	strVal  string
	intVal  int64
	boolVal bool

	// Container values
	listVal []string
	objVal  Record
}

// Field is one key/value pair of a record.
type Field struct {
	Key   string
	Value Value
}

// Record is an ordered field-name-to-value mapping. Keys are unique within
// one record and insertion order is the canonical render order.
type Record []Field

// Dataset is an ordered sequence of records.
type Dataset []Record

// ============================================================
// Constructors
// ============================================================

// Str creates a string value.
func Str(v string) Value {
	return Value{kind: KindString, strVal: v}
}

// Int creates an integer value.
func Int(v int64) Value {
	return Value{kind: KindInt, intVal: v}
}

// Bool creates a boolean value.
func Bool(v bool) Value {
	return Value{kind: KindBool, boolVal: v}
}

// List creates a list value from stringified elements.
func List(elems ...string) Value {
	return Value{kind: KindList, listVal: elems}
}

// Obj creates a nested object value.
func Obj(fields ...Field) Value {
	return Value{kind: KindObject, objVal: fields}
}

// ============================================================
// Accessors
// ============================================================

// Kind returns the variant tag.
func (v Value) Kind() Kind {
	return v.kind
}

// AsStr returns the string value.
func (v Value) AsStr() (string, error) {
	if v.kind != KindString {
		return "", fmt.Errorf("toon: expected string, got %s", v.kind)
	}
	return v.strVal, nil
}

// AsInt returns the integer value.
func (v Value) AsInt() (int64, error) {
	if v.kind != KindInt {
		return 0, fmt.Errorf("toon: expected int, got %s", v.kind)
	}
	return v.intVal, nil
}

// AsBool returns the boolean value.
func (v Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, fmt.Errorf("toon: expected bool, got %s", v.kind)
	}
	return v.boolVal, nil
}

// AsList returns the list elements.
func (v Value) AsList() ([]string, error) {
	if v.kind != KindList {
		return nil, fmt.Errorf("toon: expected list, got %s", v.kind)
	}
	return v.listVal, nil
}

// AsObj returns the nested record.
func (v Value) AsObj() (Record, error) {
	if v.kind != KindObject {
		return nil, fmt.Errorf("toon: expected object, got %s", v.kind)
	}
	return v.objVal, nil
}

// Format returns the single-line scalar rendering of a value. For Object
// values, which have no single-line form, it returns the value's indented
// block text.
func (v Value) Format() string {
	if v.kind == KindObject {
		e := &encoder{}
		e.record(v.objVal, 0)
		return strings.Join(e.lines, "\n")
	}
	return formatScalar(v)
}

// Get returns the value stored under key, if present.
func (r Record) Get(key string) (Value, bool) {
	for _, f := range r {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Keys returns the field names in insertion order.
func (r Record) Keys() []string {
	keys := make([]string, len(r))
	for i, f := range r {
		keys[i] = f.Key
	}
	return keys
}

// ============================================================
// Type inference and formatting
// ============================================================

// inferValue classifies a raw value token, already stripped of surrounding
// whitespace by the caller's line handling. Priority: bracketed list, then
// boolean, then digit-only integer, then verbatim string. List elements stay
// strings and are never re-inferred.
func inferValue(token string) Value {
	token = strings.TrimSpace(token)

	if strings.HasPrefix(token, "[") && strings.HasSuffix(token, "]") {
		var elems []string
		for _, part := range strings.Split(token[1:len(token)-1], ", ") {
			part = strings.TrimSpace(part)
			if part != "" {
				elems = append(elems, part)
			}
		}
		return Value{kind: KindList, listVal: elems}
	}

	switch strings.ToLower(token) {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}

	// Digit-only tokens become integers. No sign, no decimal point: "-5"
	// and "3.5" stay strings. That keeps round trips stable for string
	// fields that merely look numeric.
	if isDigits(token) {
		if n, err := strconv.ParseInt(token, 10, 64); err == nil {
			return Int(n)
		}
		// Overflows int64, keep the literal text.
	}

	return Str(token)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// formatScalar renders a non-object value as its single-line form.
func formatScalar(v Value) string {
	switch v.kind {
	case KindList:
		return "[" + strings.Join(v.listVal, ", ") + "]"
	case KindBool:
		if v.boolVal {
			return "true"
		}
		return "false"
	case KindInt:
		return strconv.FormatInt(v.intVal, 10)
	default:
		return v.strVal
	}
}
