package testdata

import (
	"fmt"
	"os"
	"path/filepath"

	"toonbench/internal/formats"
)

// inputFiles maps each format to its override file name.
var inputFiles = map[formats.Format]string{
	formats.JSON: "data.json",
	formats.CSV:  "data.csv",
	formats.TOON: "data.toon",
}

// LoadInputs reads override files from an input directory. Formats whose
// file is absent simply miss from the result; a missing directory yields an
// empty map. The raw text is returned untouched so token counts reflect the
// file exactly as written.
func LoadInputs(dir string) (map[formats.Format]string, error) {
	loaded := make(map[formats.Format]string)
	if dir == "" {
		return loaded, nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return loaded, nil
	}

	for format, name := range inputFiles {
		path := filepath.Join(dir, name)
		content, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("testdata: load %s: %w", path, err)
		}
		loaded[format] = string(content)
	}
	return loaded, nil
}
