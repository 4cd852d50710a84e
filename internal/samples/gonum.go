package samples

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/tensorwire-ml/tensorwire/internal/tensor"
)

// ToMat converts a rank-2 numeric tensor into a gonum dense matrix, copying
// the elements as float64. String tensors have no matrix form and report
// tensor.ErrCast; gonum cannot represent empty matrices, so zero-sized
// dimensions report ErrInvalidShape.
func ToMat(d *tensor.Dense) (*mat.Dense, error) {
	shape := d.Shape()
	if len(shape) != 2 {
		return nil, fmt.Errorf("%w: shape %v, want rank 2", ErrInvalidShape, shape)
	}
	rows, cols := shape[0], shape[1]
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("%w: empty matrix %v", ErrInvalidShape, shape)
	}

	f64, err := d.Cast(tensor.Float64)
	if err != nil {
		return nil, err
	}
	return mat.NewDense(rows, cols, f64.AsFloat64()), nil
}
