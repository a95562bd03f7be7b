// Package comparison runs the token count comparison: render one dataset
// in every format under test, ask each provider what the rendering costs in
// tokens, and report the savings relative to JSON.
package comparison
