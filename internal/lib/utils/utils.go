// Package utils contains small helper functions used across the project.
package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CompactJSON returns the canonical compact text of a JSON document:
// insignificant whitespace removed, member order and number text preserved.
func CompactJSON(raw []byte) (string, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, bytes.TrimSpace(raw)); err != nil {
		return "", fmt.Errorf("compacting json document: %w", err)
	}
	return buf.String(), nil
}

// StringValue dereferences s, returning "" for nil.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
