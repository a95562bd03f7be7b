// Package formats renders a dataset in each serialization under comparison:
// TOON, CSV, and JSON in its four layout strategies (pretty, compact,
// stringified, minimal). The inverse loaders exist so datasets can be read
// back from any of the three formats.
package formats
