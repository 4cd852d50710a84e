// Package samples assembles named wire tensors into dense sample matrices
// for model serving.
package samples

import (
	"fmt"
	"strings"

	"github.com/tensorwire-ml/tensorwire/internal/tensor"
	"github.com/tensorwire-ml/tensorwire/internal/wire"
)

// Option configures Assemble.
type Option func(*config)

type config struct {
	dtype tensor.DataType
}

// WithElementType sets the element type of the assembled matrix.
// The default is tensor.Float64.
func WithElementType(dt tensor.DataType) Option {
	return func(c *config) {
		c.dtype = dt
	}
}

// Assemble decodes one wire tensor per named feature and packs them into a
// dense (nbSamples, nbFeatures) matrix, one feature per column in the order
// of featureNames.
//
// Every name must be present in inputs, nbFeatures must match the number of
// names, and every feature must be a single column: its decoded shape is
// (nbSamples, 1), where nbSamples comes from the first feature. Feature
// elements are converted to the matrix element type with Cast semantics.
// The matrix is built whole or not at all.
func Assemble(inputs map[string]*wire.Tensor, featureNames []string, nbFeatures int, opts ...Option) (*tensor.Dense, error) {
	cfg := config{dtype: tensor.Float64}
	for _, opt := range opts {
		opt(&cfg)
	}

	var missing []string
	for _, name := range featureNames {
		if _, ok := inputs[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingFeature, strings.Join(missing, ", "))
	}
	if len(featureNames) == 0 {
		return nil, fmt.Errorf("no features to assemble")
	}
	if len(featureNames) != nbFeatures {
		return nil, fmt.Errorf("%w: %d feature names for %d columns",
			ErrInvalidLength, len(featureNames), nbFeatures)
	}

	nbSamples, err := sampleCount(inputs[featureNames[0]])
	if err != nil {
		return nil, fmt.Errorf("feature %s: %w", featureNames[0], err)
	}

	matrix, err := tensor.NewDense(tensor.Shape{nbSamples, nbFeatures}, cfg.dtype)
	if err != nil {
		return nil, err
	}

	for i, name := range featureNames {
		wt := inputs[name]
		count, err := sampleCount(wt)
		if err != nil {
			return nil, fmt.Errorf("feature %s: %w", name, err)
		}
		if count != nbSamples {
			return nil, fmt.Errorf("%w: feature %s has %d samples, want %d",
				ErrInvalidLength, name, count, nbSamples)
		}

		col, err := wire.Decode(wt)
		if err != nil {
			return nil, fmt.Errorf("decode feature %s: %w", name, err)
		}
		shape := col.Shape()
		if len(shape) != 2 || shape[1] != 1 {
			return nil, fmt.Errorf("%w: feature %s has shape %v, want (%d, 1)",
				ErrInvalidShape, name, shape, nbSamples)
		}

		if col.DType() != cfg.dtype {
			col, err = col.Cast(cfg.dtype)
			if err != nil {
				return nil, fmt.Errorf("feature %s: %w", name, err)
			}
		}
		writeColumn(matrix, i, col)
	}
	return matrix, nil
}

// sampleCount reads the leading dimension of a wire tensor.
func sampleCount(t *wire.Tensor) (int, error) {
	if t.Shape == nil || len(t.Shape.Dims) == 0 {
		return 0, fmt.Errorf("%w: no leading sample dimension", ErrInvalidShape)
	}
	return int(t.Shape.Dims[0].Size), nil
}

// writeColumn copies a single-column tensor into column col of the matrix.
// Both tensors share one element type.
func writeColumn(m *tensor.Dense, col int, src *tensor.Dense) {
	width := m.Shape()[1]
	if m.DType() == tensor.String {
		dst := m.AsBytesList()
		for r, s := range src.AsBytesList() {
			dst[r*width+col] = append([]byte(nil), s...)
		}
		return
	}
	size := m.DType().Size()
	mData, sData := m.Data(), src.Data()
	for r := 0; r < src.NumElements(); r++ {
		copy(mData[(r*width+col)*size:(r*width+col+1)*size], sData[r*size:(r+1)*size])
	}
}
