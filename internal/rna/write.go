package rna

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v2"
)

// Formats that Write can encode to.
const (
	JSON = "json"
	YAML = "yaml"
)

// Write encodes v to w as indented JSON or as YAML.
func Write(w io.Writer, v interface{}, format string) error {
	switch format {
	case JSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAML:
		out, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	}
	return fmt.Errorf("unknown output format %q, expected %q or %q", format, JSON, YAML)
}

// WriteFile writes v to the file at filename, see Write.
func WriteFile(filename string, v interface{}, format string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}

	if err := Write(f, v, format); err != nil {
		f.Close()
		return fmt.Errorf("failed to write the results to %s: %w", filename, err)
	}
	return f.Close()
}
