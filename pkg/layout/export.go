package layout

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// MarshalResult serializes a Result to pretty-printed JSON bytes.
// Nodes are already sorted by name, so output is deterministic.
func MarshalResult(r Result) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// UnmarshalResult deserializes JSON bytes into a Result.
func UnmarshalResult(data []byte) (Result, error) {
	var r Result
	if err := json.Unmarshal(data, &r); err != nil {
		return Result{}, fmt.Errorf("unmarshal layout: %w", err)
	}
	return r, nil
}

// WriteResult writes a Result as indented JSON to an io.Writer.
func WriteResult(r Result, w io.Writer) error {
	data, err := MarshalResult(r)
	if err != nil {
		return err
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write layout: %w", err)
	}
	return nil
}

// WriteResultFile writes a Result to a JSON file.
// The file is created with 0644 permissions.
func WriteResultFile(r Result, path string) error {
	data, err := MarshalResult(r)
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// ReadResultFile reads a Result from a JSON file.
func ReadResultFile(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalResult(data)
}
