package main

import (
	"fmt"
	"io"
	"os"

	"github.com/tensorwire-ml/tensorwire/tensor"
)

// elementTypes maps CLI type names to element types.
var elementTypes = map[string]tensor.DataType{
	"float16":    tensor.Float16,
	"float32":    tensor.Float32,
	"float64":    tensor.Float64,
	"int8":       tensor.Int8,
	"int16":      tensor.Int16,
	"int32":      tensor.Int32,
	"int64":      tensor.Int64,
	"uint8":      tensor.Uint8,
	"uint16":     tensor.Uint16,
	"uint32":     tensor.Uint32,
	"uint64":     tensor.Uint64,
	"bool":       tensor.Bool,
	"complex64":  tensor.Complex64,
	"complex128": tensor.Complex128,
	"string":     tensor.String,
}

func parseElementType(name string) (tensor.DataType, error) {
	dt, ok := elementTypes[name]
	if !ok {
		return 0, fmt.Errorf("unknown element type %q", name)
	}
	return dt, nil
}

// readInput reads a file, or stdin when path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// writeOutput writes a file, or stdout when path is "-".
func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
