package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tensorwire-ml/tensorwire/tensor"
	"github.com/tensorwire-ml/tensorwire/wire"
)

var decodeStrict bool

var decodeCmd = &cobra.Command{
	Use:   "decode <tensor.bin>",
	Short: "Decode a wire tensor into JSON values",
	Long: `Decode reads a protobuf-encoded wire tensor and prints its element type,
shape and row-major values as JSON. Pass - to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

func init() {
	decodeCmd.Flags().BoolVar(&decodeStrict, "strict", false, "reject value lists shorter than the shape")
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	logger := setupLogger()

	raw, err := readInput(args[0])
	if err != nil {
		return fmt.Errorf("reading tensor: %w", err)
	}

	wt, err := wire.Unmarshal(raw)
	if err != nil {
		return fmt.Errorf("parsing tensor: %w", err)
	}
	logger.Debug("parsed wire tensor",
		zap.String("dtype", wt.DType.String()),
		zap.Int("content_bytes", len(wt.Content)))

	var opts []wire.DecodeOption
	if decodeStrict {
		opts = append(opts, wire.WithStrictLength())
	}

	d, err := wire.Decode(wt, opts...)
	if err != nil {
		return fmt.Errorf("decoding: %w", err)
	}

	out, err := json.MarshalIndent(struct {
		DType  string `json:"dtype"`
		Shape  []int  `json:"shape"`
		Values []any  `json:"values"`
	}{
		DType:  d.DType().String(),
		Shape:  d.Shape(),
		Values: elementValues(d),
	}, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

// elementValues flattens tensor elements into JSON-friendly values in
// row-major order. Complex elements format as strings, JSON has no
// complex number type.
func elementValues(d *tensor.Dense) []any {
	out := make([]any, d.NumElements())
	switch d.DType() {
	case tensor.Float16:
		for i, v := range d.AsFloat16() {
			out[i] = v.Float32()
		}
	case tensor.Float32:
		for i, v := range d.AsFloat32() {
			out[i] = v
		}
	case tensor.Float64:
		for i, v := range d.AsFloat64() {
			out[i] = v
		}
	case tensor.Int8:
		for i, v := range d.AsInt8() {
			out[i] = v
		}
	case tensor.Int16:
		for i, v := range d.AsInt16() {
			out[i] = v
		}
	case tensor.Int32:
		for i, v := range d.AsInt32() {
			out[i] = v
		}
	case tensor.Int64:
		for i, v := range d.AsInt64() {
			out[i] = v
		}
	case tensor.Uint8:
		for i, v := range d.AsUint8() {
			out[i] = v
		}
	case tensor.Uint16:
		for i, v := range d.AsUint16() {
			out[i] = v
		}
	case tensor.Uint32:
		for i, v := range d.AsUint32() {
			out[i] = v
		}
	case tensor.Uint64:
		for i, v := range d.AsUint64() {
			out[i] = v
		}
	case tensor.Bool:
		for i, v := range d.AsBool() {
			out[i] = v
		}
	case tensor.Complex64:
		for i, v := range d.AsComplex64() {
			out[i] = strconv.FormatComplex(complex128(v), 'g', -1, 64)
		}
	case tensor.Complex128:
		for i, v := range d.AsComplex128() {
			out[i] = strconv.FormatComplex(v, 'g', -1, 128)
		}
	case tensor.String:
		for i, v := range d.AsBytesList() {
			out[i] = string(v)
		}
	}
	return out
}
