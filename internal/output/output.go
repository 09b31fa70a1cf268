package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteJSON overwrites path with v pretty-printed at 4-space indentation.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Dump pretty-prints v to w in the same format the output file uses.
func Dump(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal dump: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
