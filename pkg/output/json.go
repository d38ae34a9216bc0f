package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// RenderJSON writes v as indented JSON followed by a newline
func RenderJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return writeString(w, string(data)+"\n")
}
