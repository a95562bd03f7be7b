// Command toonbench compares how many tokens the same dataset costs across
// LLM tokenizers when rendered as JSON, CSV, or TOON, and converts between
// the three formats.
package main
