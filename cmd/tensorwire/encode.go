package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tensorwire-ml/tensorwire/samples"
	"github.com/tensorwire-ml/tensorwire/wire"
)

var (
	encodeType   string
	encodeCSV    string
	encodeOutput string
)

var encodeCmd = &cobra.Command{
	Use:   "encode <values.json | records.csv>",
	Short: "Encode values into a wire tensor",
	Long: `Encode reads a JSON value, scalar or nested array, and writes the
protobuf-encoded wire tensor. JSON numbers encode as floats unless --type
selects another element type.

With --csv name:type the input is a CSV file with a header row instead;
the named column is parsed with the schema field converter for that type
(int, str or bool) and encoded as a single-column feature tensor.

Pass - to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runEncode,
}

func init() {
	encodeCmd.Flags().StringVarP(&encodeType, "type", "t", "", "target element type (float32, int64, string, ...)")
	encodeCmd.Flags().StringVar(&encodeCSV, "csv", "", "treat input as CSV and encode one column, as name:type")
	encodeCmd.Flags().StringVarP(&encodeOutput, "output", "o", "-", "output file, - for stdout")
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	logger := setupLogger()

	input, err := readInput(args[0])
	if err != nil {
		return fmt.Errorf("reading values: %w", err)
	}

	var values any
	if encodeCSV != "" {
		values, err = csvColumn(input, encodeCSV)
	} else {
		err = json.Unmarshal(input, &values)
	}
	if err != nil {
		return fmt.Errorf("parsing values: %w", err)
	}

	var opts []wire.EncodeOption
	if encodeType != "" {
		dt, err := parseElementType(encodeType)
		if err != nil {
			return err
		}
		opts = append(opts, wire.WithDataType(dt))
	}

	wt, err := wire.Encode(values, opts...)
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	raw := wt.Marshal()
	logger.Debug("encoded tensor",
		zap.String("dtype", wt.DType.String()),
		zap.Int("bytes", len(raw)))

	return writeOutput(encodeOutput, raw)
}

// csvColumn parses one column of a CSV file into single-element rows, the
// (n, 1) layout feature tensors travel in.
func csvColumn(input []byte, spec string) (any, error) {
	name, typ, ok := strings.Cut(spec, ":")
	if !ok {
		return nil, fmt.Errorf("invalid column spec %q, want name:type", spec)
	}

	convs, err := samples.FieldConverters(map[string]string{name: typ})
	if err != nil {
		return nil, err
	}
	conv := convs[name]

	rows, err := csv.NewReader(strings.NewReader(string(input))).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty CSV input")
	}

	col := -1
	for i, field := range rows[0] {
		if field == name {
			col = i
			break
		}
	}
	if col == -1 {
		return nil, fmt.Errorf("column %q not in header %v", name, rows[0])
	}

	out := make([]any, 0, len(rows)-1)
	for _, row := range rows[1:] {
		v, err := conv(row[col])
		if err != nil {
			return nil, err
		}
		out = append(out, []any{v})
	}
	return out, nil
}
