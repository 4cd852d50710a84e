package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tensorwire-ml/tensorwire/wire"
)

var inspectValues bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <tensor.bin>",
	Short: "Show the wire-level layout of a tensor",
	Long: `Inspect reads a protobuf-encoded wire tensor and prints its type code,
shape and payload layout without decoding the elements. Pass - to read
from stdin, --values to decode and print the elements as well.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectValues, "values", false, "decode and print the element values")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	raw, err := readInput(args[0])
	if err != nil {
		return fmt.Errorf("reading tensor: %w", err)
	}

	wt, err := wire.Unmarshal(raw)
	if err != nil {
		return fmt.Errorf("parsing tensor: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "DType:   %s (%d)\n", wt.DType, int32(wt.DType))
	fmt.Fprintf(out, "Shape:   %s\n", formatShape(wt.Shape))
	if wt.VersionNumber != 0 {
		fmt.Fprintf(out, "Version: %d\n", wt.VersionNumber)
	}

	fmt.Fprintf(out, "Payload: %s\n", formatPayload(wt))
	fmt.Fprintf(out, "Size:    %d bytes on the wire\n", len(raw))

	if inspectValues {
		d, err := wire.Decode(wt)
		if err != nil {
			return fmt.Errorf("decoding values: %w", err)
		}
		fmt.Fprintf(out, "Values:  %v\n", elementValues(d))
	}
	return nil
}

// formatShape renders dims as (2, 3), with names when the message carries
// them.
func formatShape(s *wire.TensorShape) string {
	if s == nil {
		return "(none)"
	}
	if s.UnknownRank {
		return "unknown rank"
	}
	parts := make([]string, len(s.Dims))
	for i, d := range s.Dims {
		if d.Name != "" {
			parts[i] = fmt.Sprintf("%s=%d", d.Name, d.Size)
		} else {
			parts[i] = fmt.Sprintf("%d", d.Size)
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// formatPayload summarizes which payload fields the message carries.
func formatPayload(wt *wire.Tensor) string {
	var parts []string
	if len(wt.Content) > 0 {
		parts = append(parts, fmt.Sprintf("content %d bytes", len(wt.Content)))
	}
	lists := []struct {
		name  string
		count int
	}{
		{"half_val", len(wt.HalfVal)},
		{"float_val", len(wt.FloatVal)},
		{"double_val", len(wt.DoubleVal)},
		{"int_val", len(wt.IntVal)},
		{"int64_val", len(wt.Int64Val)},
		{"uint32_val", len(wt.Uint32Val)},
		{"uint64_val", len(wt.Uint64Val)},
		{"bool_val", len(wt.BoolVal)},
		{"string_val", len(wt.StringVal)},
		{"scomplex_val", len(wt.ScomplexVal)},
		{"dcomplex_val", len(wt.DcomplexVal)},
	}
	for _, l := range lists {
		if l.count > 0 {
			parts = append(parts, fmt.Sprintf("%s ×%d", l.name, l.count))
		}
	}
	if len(parts) == 0 {
		return "empty"
	}
	return strings.Join(parts, ", ")
}
