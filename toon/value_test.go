package toon

import (
	"reflect"
	"testing"
)

// ============================================================
// Type Inference Tests
// ============================================================

func TestInferValue_Scalars(t *testing.T) {
	tests := []struct {
		token    string
		expected Value
	}{
		{"hello", Str("hello")},
		{"  hello  ", Str("hello")},
		{"true", Bool(true)},
		{"false", Bool(false)},
		{"TRUE", Bool(true)},
		{"False", Bool(false)},
		{"42", Int(42)},
		{"0", Int(0)},
		{"", Str("")},
		{"Developer", Str("Developer")},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got := inferValue(tt.token)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("inferValue(%q) = %#v, want %#v", tt.token, got, tt.expected)
			}
		})
	}
}

// Digit-only detection accepts no sign and no decimal point: tokens that
// merely look numeric stay strings and round-trip unchanged.
func TestInferValue_DigitOnlyRule(t *testing.T) {
	tests := []struct {
		token    string
		expected Value
	}{
		{"-5", Str("-5")},
		{"3.5", Str("3.5")},
		{"+7", Str("+7")},
		{"1e3", Str("1e3")},
		{"007", Int(7)},
		{"00", Int(0)},
		{"12a", Str("12a")},
		// 20 digits overflows int64 and stays a string.
		{"99999999999999999999", Str("99999999999999999999")},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got := inferValue(tt.token)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("inferValue(%q) = %#v, want %#v", tt.token, got, tt.expected)
			}
		})
	}
}

func TestInferValue_Lists(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected []string
	}{
		{"simple", "[C#, .NET, Angular]", []string{"C#", ".NET", "Angular"}},
		{"single", "[solo]", []string{"solo"}},
		{"empty", "[]", nil},
		{"blank elements dropped", "[a, , b]", []string{"a", "b"}},
		// Elements are not re-inferred: digits and booleans stay strings.
		{"no element inference", "[1, true, x]", []string{"1", "true", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := inferValue(tt.token)
			if v.Kind() != KindList {
				t.Fatalf("inferValue(%q) kind = %s, want list", tt.token, v.Kind())
			}
			elems, err := v.AsList()
			if err != nil {
				t.Fatalf("AsList failed: %v", err)
			}
			if !reflect.DeepEqual(elems, tt.expected) {
				t.Errorf("elements = %#v, want %#v", elems, tt.expected)
			}
		})
	}
}

// ============================================================
// Formatting Tests
// ============================================================

func TestFormatScalar(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected string
	}{
		{"string", Str("hello"), "hello"},
		{"int", Int(42), "42"},
		{"bool true", Bool(true), "true"},
		{"bool false", Bool(false), "false"},
		{"list", List("C#", ".NET", "Angular"), "[C#, .NET, Angular]"},
		{"empty list", List(), "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatScalar(tt.value); got != tt.expected {
				t.Errorf("formatScalar = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestValue_FormatObject(t *testing.T) {
	v := Obj(
		Field{"city", Str("Ahmedabad")},
		Field{"zip", Int(380001)},
	)
	expected := "city: Ahmedabad\nzip: 380001"
	if got := v.Format(); got != expected {
		t.Errorf("Format = %q, want %q", got, expected)
	}
}

// ============================================================
// Accessor Tests
// ============================================================

func TestValue_AccessorMismatch(t *testing.T) {
	if _, err := Str("x").AsInt(); err == nil {
		t.Error("AsInt on string should fail")
	}
	if _, err := Int(1).AsBool(); err == nil {
		t.Error("AsBool on int should fail")
	}
	if _, err := Bool(true).AsObj(); err == nil {
		t.Error("AsObj on bool should fail")
	}
	if _, err := List("a").AsStr(); err == nil {
		t.Error("AsStr on list should fail")
	}
}

func TestRecord_Get(t *testing.T) {
	rec := Record{
		{"name", Str("Jenil")},
		{"experience", Int(4)},
	}

	v, ok := rec.Get("experience")
	if !ok {
		t.Fatal("Get(experience) not found")
	}
	n, err := v.AsInt()
	if err != nil || n != 4 {
		t.Errorf("AsInt = %d, %v, want 4", n, err)
	}

	if _, ok := rec.Get("missing"); ok {
		t.Error("Get(missing) should not be found")
	}

	if keys := rec.Keys(); !reflect.DeepEqual(keys, []string{"name", "experience"}) {
		t.Errorf("Keys = %v", keys)
	}
}
