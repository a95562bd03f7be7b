package toon

import (
	"strings"
	"testing"
)

func TestEncode_Empty(t *testing.T) {
	if got := Encode(Dataset{}); got != "" {
		t.Errorf("Encode(empty) = %q, want empty string", got)
	}
	if got := Encode(nil); got != "" {
		t.Errorf("Encode(nil) = %q, want empty string", got)
	}
}

func TestEncode_SingleRecord(t *testing.T) {
	ds := Dataset{{
		{"name", Str("Jenil")},
		{"role", Str("Developer")},
		{"skills", List("C#", ".NET", "Angular")},
		{"active", Bool(true)},
		{"experience", Int(4)},
	}}

	expected := strings.Join([]string{
		"name: Jenil",
		"role: Developer",
		"skills: [C#, .NET, Angular]",
		"active: true",
		"experience: 4",
	}, "\n")

	if got := Encode(ds); got != expected {
		t.Errorf("Encode =\n%q\nwant\n%q", got, expected)
	}
}

func TestEncode_SeparatorExactness(t *testing.T) {
	one := Dataset{{{"a", Int(1)}}}
	two := Dataset{{{"a", Int(1)}}, {{"b", Int(2)}}}

	if out := Encode(one); strings.Contains(out, Separator) {
		t.Errorf("single record output contains separator: %q", out)
	}

	out := Encode(two)
	if strings.Count(out, Separator) != 1 {
		t.Fatalf("expected exactly one separator, got %d in %q", strings.Count(out, Separator), out)
	}
	if out != "a: 1"+Separator+"b: 2" {
		t.Errorf("unexpected output %q", out)
	}
	if strings.HasPrefix(out, "\n") || strings.HasSuffix(out, "\n") {
		t.Errorf("output has leading/trailing separator text: %q", out)
	}
}

func TestEncode_NestedObjects(t *testing.T) {
	ds := Dataset{{
		{"name", Str("Jenil")},
		{"address", Obj(
			Field{"city", Str("Ahmedabad")},
			Field{"geo", Obj(
				Field{"lat", Str("23.03")},
				Field{"lon", Str("72.58")},
			)},
			Field{"zip", Int(380001)},
		)},
		{"active", Bool(true)},
	}}

	expected := strings.Join([]string{
		"name: Jenil",
		"address:",
		"  city: Ahmedabad",
		"  geo:",
		"    lat: 23.03",
		"    lon: 72.58",
		"  zip: 380001",
		"active: true",
	}, "\n")

	if got := Encode(ds); got != expected {
		t.Errorf("Encode =\n%s\nwant\n%s", got, expected)
	}
}

func TestEncode_FieldOrderPreserved(t *testing.T) {
	ds := Dataset{{
		{"zulu", Int(1)},
		{"alpha", Int(2)},
		{"mike", Int(3)},
	}}

	expected := "zulu: 1\nalpha: 2\nmike: 3"
	if got := Encode(ds); got != expected {
		t.Errorf("field order not preserved: %q", got)
	}
}

// Lists render their elements verbatim: no quoting, no escaping of commas
// or brackets inside an element.
func TestEncode_ListVerbatim(t *testing.T) {
	ds := Dataset{{
		{"skills", List("a[0]", "b")},
	}}
	if got := Encode(ds); got != "skills: [a[0], b]" {
		t.Errorf("Encode = %q", got)
	}
}
