package wire

import (
	"fmt"

	"github.com/tensorwire-ml/tensorwire/internal/tensor"
)

// EncodeOption configures Encode.
type EncodeOption func(*encodeConfig)

type encodeConfig struct {
	dtype    tensor.DataType
	hasDType bool
}

// WithDataType targets the encoded tensor at an explicit element type
// instead of the one inferred from the values. Targeting tensor.String at
// numeric values reports ErrInvalidStringElement.
func WithDataType(dt tensor.DataType) EncodeOption {
	return func(c *encodeConfig) {
		c.dtype = dt
		c.hasDType = true
	}
}

// Encode builds a wire tensor from a scalar, a nested slice literal, or a
// *tensor.Dense.
//
// Values are first materialized as a dense tensor (see tensor.FromNested for
// the accepted forms), then encoded with EncodeDense. The narrowing rules of
// EncodeDense apply even when WithDataType requested the wider type.
func Encode(values any, opts ...EncodeOption) (*Tensor, error) {
	cfg := encodeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		d   *tensor.Dense
		err error
	)
	if dense, ok := values.(*tensor.Dense); ok {
		d = dense
		if cfg.hasDType && dense.DType() != cfg.dtype {
			if cfg.dtype == tensor.String {
				return nil, fmt.Errorf("%w: got %s elements", ErrInvalidStringElement, dense.DType())
			}
			d, err = dense.Cast(cfg.dtype)
		}
	} else if cfg.hasDType {
		d, err = tensor.FromNestedAs(values, cfg.dtype)
	} else {
		d, err = tensor.FromNested(values)
	}
	if err != nil {
		return nil, err
	}
	return EncodeDense(d)
}

// EncodeDense builds a wire tensor from a dense tensor.
//
// Float64 elements always narrow to float32 on the wire. Int64 elements
// narrow to int32 only when every value survives the round trip; otherwise
// they stay 64-bit. Byte-string tensors encode as a typed value list, all
// other types as raw content bytes in row-major order.
func EncodeDense(d *tensor.Dense) (*Tensor, error) {
	switch d.DType() {
	case tensor.Float64:
		narrowed, err := d.Cast(tensor.Float32)
		if err != nil {
			return nil, err
		}
		d = narrowed
	case tensor.Int64:
		narrowed, err := d.Cast(tensor.Int32)
		if err != nil {
			return nil, err
		}
		widened, err := narrowed.Cast(tensor.Int64)
		if err != nil {
			return nil, err
		}
		if widened.Equal(d) {
			d = narrowed
		}
	}

	dt, err := DataTypeOf(d.DType())
	if err != nil {
		return nil, err
	}

	t := &Tensor{
		DType: dt,
		Shape: ShapeOf(d.Shape()),
	}
	if d.DType() == tensor.String {
		t.StringVal = make([][]byte, d.NumElements())
		for i, s := range d.AsBytesList() {
			t.StringVal[i] = append([]byte(nil), s...)
		}
		return t, nil
	}
	t.Content = append([]byte(nil), d.Data()...)
	return t, nil
}
