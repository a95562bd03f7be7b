package formats

import (
	"fmt"
	"strings"

	"toonbench/toon"
)

// Format identifies a supported serialization of a dataset.
type Format string

const (
	JSON Format = "json"
	CSV  Format = "csv"
	TOON Format = "toon"
)

// All returns every supported format.
func All() []Format {
	return []Format{JSON, CSV, TOON}
}

// Parse resolves a format name, case-insensitively.
func Parse(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case JSON:
		return JSON, nil
	case CSV:
		return CSV, nil
	case TOON:
		return TOON, nil
	}
	return "", fmt.Errorf("formats: invalid format %q, must be one of %v", value, All())
}

func (f Format) String() string {
	return string(f)
}

// Render serializes a dataset in the given format. The strategy only
// applies to JSON; CSV and TOON ignore it.
func Render(ds toon.Dataset, format Format, strategy JSONStrategy) (string, error) {
	switch format {
	case JSON:
		return MarshalDataset(ds, strategy)
	case CSV:
		return MarshalCSV(ds)
	case TOON:
		return toon.Encode(ds), nil
	}
	return "", fmt.Errorf("formats: invalid format %q", format)
}

// Load parses serialized text in the given format back into a dataset.
func Load(text string, format Format) (toon.Dataset, error) {
	switch format {
	case JSON:
		return UnmarshalDataset(text)
	case CSV:
		return UnmarshalCSV(text)
	case TOON:
		return toon.Decode(text), nil
	}
	return nil, fmt.Errorf("formats: invalid format %q", format)
}
