// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatYAML = "yaml"
	formatJSON = "json"
)

// parseFormat validates an output format name.
func parseFormat(s string) (string, error) {
	switch s {
	case formatText, formatYAML, formatJSON:
		return s, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, yaml or json): %w", s, errUsage)
	}
}

// writeValue renders v in format. For text, v must implement fmt.Stringer
// or be printable with %v.
func writeValue(w io.Writer, format string, v any) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("yaml encode: %w", err)
		}

		return enc.Close()
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("json encode: %w", err)
		}

		return nil
	default:
		s := fmt.Sprint(v)
		if len(s) == 0 || s[len(s)-1] != '\n' {
			s += "\n"
		}
		_, err := io.WriteString(w, s)

		return err
	}
}
