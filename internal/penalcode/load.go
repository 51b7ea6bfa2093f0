package penalcode

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Parse decodes a penal-code file. Both layouts found in the wild are
// accepted: a wrapper object with "revision" + "kategoriak", or a bare
// top-level category array (older exports, revision empty).
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err == nil && len(doc.Categories) > 0 {
		return &doc, nil
	}

	var categories []Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("invalid penal code file: %w", err)
	}
	if len(categories) == 0 {
		return nil, errors.New("penal code file contains no categories")
	}

	return &Document{Categories: categories}, nil
}

// LoadFile reads and parses the penal-code dataset from disk.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read penal code file: %w", err)
	}
	return Parse(data)
}
