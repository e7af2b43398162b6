// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jot

import (
	"fmt"
	"os"
	"path/filepath"
)

// ParseFile parses the contents of the file at path as a single JSON
// document with the default settings.
func ParseFile(path string) (*Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return Parse(data)
}

// WriteFile writes the serialized text of v to the file at path in the
// given format, creating missing parent directories.
func (v *Value) WriteFile(path string, f Format) error {
	if dir := filepath.Dir(path); dir != "." {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0700); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
		}
	}
	return os.WriteFile(path, v.Encode(f), 0600)
}
