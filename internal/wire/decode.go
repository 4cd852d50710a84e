package wire

import (
	"fmt"

	"github.com/tensorwire-ml/tensorwire/internal/tensor"
)

// DecodeOption configures Decode.
type DecodeOption func(*decodeConfig)

type decodeConfig struct {
	strictLength bool
}

// WithStrictLength disables edge replication for short value lists. A value
// list shorter than the shape then reports ErrShortValues instead of
// repeating its last element.
func WithStrictLength() DecodeOption {
	return func(c *decodeConfig) {
		c.strictLength = true
	}
}

// Decode materializes a wire tensor as a dense in-memory tensor.
//
// Raw content bytes are copied, never aliased, and must match the byte size
// of the element type and shape exactly. Without raw content the payload
// comes from the value list for the element type: float, double, int32,
// int64, bool and string tensors have one, and int64 tensors read the shared
// 32-bit integer list. Any other element type without raw content reports
// ErrUnsupportedEncoding.
//
// An empty value list decodes to a zero-valued tensor. A shorter list than
// the shape requires is padded by repeating its final element unless
// WithStrictLength is set; a longer list always reports ErrExcessValues.
func Decode(t *Tensor, opts ...DecodeOption) (*tensor.Dense, error) {
	cfg := decodeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	nt, err := NativeOf(t.DType)
	if err != nil {
		return nil, err
	}
	d, err := tensor.NewDense(t.Shape.ToShape(), nt)
	if err != nil {
		return nil, err
	}
	n := d.NumElements()

	if len(t.Content) > 0 {
		if nt == tensor.String {
			return nil, fmt.Errorf("%w: raw content for string tensor", ErrUnsupportedEncoding)
		}
		if len(t.Content) != n*nt.Size() {
			return nil, fmt.Errorf("%w: %d bytes for %d %s elements, want %d",
				ErrContentSize, len(t.Content), n, nt, n*nt.Size())
		}
		copy(d.Data(), t.Content)
		return d, nil
	}

	var count int
	switch t.DType {
	case TypeFloat:
		count = len(t.FloatVal)
	case TypeDouble:
		count = len(t.DoubleVal)
	case TypeInt32, TypeInt64:
		count = len(t.IntVal)
	case TypeBool:
		count = len(t.BoolVal)
	case TypeString:
		count = len(t.StringVal)
	default:
		return nil, fmt.Errorf("%w: no value list for %s tensors", ErrUnsupportedEncoding, t.DType)
	}

	if count == 0 {
		return d, nil // Zero-valued tensor.
	}
	if count > n {
		return nil, fmt.Errorf("%w: %d values for %d elements", ErrExcessValues, count, n)
	}
	if count < n && cfg.strictLength {
		return nil, fmt.Errorf("%w: %d values for %d elements", ErrShortValues, count, n)
	}

	switch t.DType {
	case TypeFloat:
		replicateEdge(d.AsFloat32(), t.FloatVal)
	case TypeDouble:
		replicateEdge(d.AsFloat64(), t.DoubleVal)
	case TypeInt32:
		replicateEdge(d.AsInt32(), t.IntVal)
	case TypeInt64:
		dst := d.AsInt64()
		for i := range dst {
			dst[i] = int64(t.IntVal[min(i, count-1)])
		}
	case TypeBool:
		replicateEdge(d.AsBool(), t.BoolVal)
	case TypeString:
		elems := d.AsBytesList()
		for i := range elems {
			elems[i] = append([]byte(nil), t.StringVal[min(i, count-1)]...)
		}
	}
	return d, nil
}

// replicateEdge fills dst from src, repeating the final source element when
// src is shorter than dst.
func replicateEdge[T any](dst, src []T) {
	for i := range dst {
		dst[i] = src[min(i, len(src)-1)]
	}
}
