package tensor

import (
	"fmt"

	"github.com/x448/float16"

	"github.com/tensorwire-ml/tensorwire/internal/parallel"
)

// castConfig chunks elementwise conversions across CPUs.
var castConfig = parallel.DefaultConfig()

// Cast returns a copy of the tensor converted to the given element type.
//
// Conversions between numeric, bool and complex types follow Go conversion
// semantics: float to integer truncates, narrowing wraps, bool maps to 0 and
// 1, and the imaginary part is dropped when leaving complex types. Casting
// between String and any other type reports ErrCast.
func (d *Dense) Cast(dtype DataType) (*Dense, error) {
	if dtype == d.dtype {
		return d.Clone(), nil
	}
	if dtype == String || d.dtype == String {
		return nil, fmt.Errorf("%w: %s to %s", ErrCast, d.dtype, dtype)
	}

	out, err := NewDense(d.shape, dtype)
	if err != nil {
		return nil, err
	}
	get := d.elemGetter()
	set := out.convSetter()
	parallel.For(d.NumElements(), func(i int) {
		set(i, get(i))
	}, castConfig)
	return out, nil
}

// elemGetter returns a reader that boxes element i as one of the canonical
// carrier types int64, uint64, float64, complex128 or bool.
func (d *Dense) elemGetter() func(i int) any {
	switch d.dtype {
	case Float16:
		src := d.AsFloat16()
		return func(i int) any { return float64(src[i].Float32()) }
	case Float32:
		src := d.AsFloat32()
		return func(i int) any { return float64(src[i]) }
	case Float64:
		src := d.AsFloat64()
		return func(i int) any { return src[i] }
	case Int8:
		src := d.AsInt8()
		return func(i int) any { return int64(src[i]) }
	case Int16:
		src := d.AsInt16()
		return func(i int) any { return int64(src[i]) }
	case Int32:
		src := d.AsInt32()
		return func(i int) any { return int64(src[i]) }
	case Int64:
		src := d.AsInt64()
		return func(i int) any { return src[i] }
	case Uint8:
		src := d.AsUint8()
		return func(i int) any { return uint64(src[i]) }
	case Uint16:
		src := d.AsUint16()
		return func(i int) any { return uint64(src[i]) }
	case Uint32:
		src := d.AsUint32()
		return func(i int) any { return uint64(src[i]) }
	case Uint64:
		src := d.AsUint64()
		return func(i int) any { return src[i] }
	case Bool:
		src := d.AsBool()
		return func(i int) any { return src[i] }
	case Complex64:
		src := d.AsComplex64()
		return func(i int) any { return complex128(src[i]) }
	case Complex128:
		src := d.AsComplex128()
		return func(i int) any { return src[i] }
	default:
		panic("unknown data type")
	}
}

// convSetter returns a writer for element i taking any canonical carrier
// value and converting it to the tensor's dtype.
func (d *Dense) convSetter() func(i int, v any) {
	switch d.dtype {
	case Float16:
		dst := d.AsFloat16()
		return func(i int, v any) { dst[i] = float16.Fromfloat32(float32(carrierFloat64(v))) }
	case Float32:
		dst := d.AsFloat32()
		return func(i int, v any) { dst[i] = float32(carrierFloat64(v)) }
	case Float64:
		dst := d.AsFloat64()
		return func(i int, v any) { dst[i] = carrierFloat64(v) }
	case Int8:
		dst := d.AsInt8()
		return func(i int, v any) { dst[i] = int8(carrierInt64(v)) }
	case Int16:
		dst := d.AsInt16()
		return func(i int, v any) { dst[i] = int16(carrierInt64(v)) }
	case Int32:
		dst := d.AsInt32()
		return func(i int, v any) { dst[i] = int32(carrierInt64(v)) }
	case Int64:
		dst := d.AsInt64()
		return func(i int, v any) { dst[i] = carrierInt64(v) }
	case Uint8:
		dst := d.AsUint8()
		return func(i int, v any) { dst[i] = uint8(carrierUint64(v)) }
	case Uint16:
		dst := d.AsUint16()
		return func(i int, v any) { dst[i] = uint16(carrierUint64(v)) }
	case Uint32:
		dst := d.AsUint32()
		return func(i int, v any) { dst[i] = uint32(carrierUint64(v)) }
	case Uint64:
		dst := d.AsUint64()
		return func(i int, v any) { dst[i] = carrierUint64(v) }
	case Bool:
		dst := d.AsBool()
		return func(i int, v any) { dst[i] = carrierBool(v) }
	case Complex64:
		dst := d.AsComplex64()
		return func(i int, v any) { dst[i] = complex64(carrierComplex128(v)) }
	case Complex128:
		dst := d.AsComplex128()
		return func(i int, v any) { dst[i] = carrierComplex128(v) }
	default:
		panic("unknown data type")
	}
}

func carrierFloat64(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int64:
		return float64(t)
	case uint64:
		return float64(t)
	case complex128:
		return real(t)
	case bool:
		if t {
			return 1
		}
		return 0
	default:
		panic(fmt.Sprintf("unexpected carrier value %T", v))
	}
}

func carrierInt64(v any) int64 {
	switch t := v.(type) {
	case float64:
		return int64(t)
	case int64:
		return t
	case uint64:
		return int64(t) //nolint:gosec // G115: wrapping is the defined narrowing behavior
	case complex128:
		return int64(real(t))
	case bool:
		if t {
			return 1
		}
		return 0
	default:
		panic(fmt.Sprintf("unexpected carrier value %T", v))
	}
}

func carrierUint64(v any) uint64 {
	switch t := v.(type) {
	case float64:
		return uint64(t) //nolint:gosec // G115: wrapping is the defined narrowing behavior
	case int64:
		return uint64(t) //nolint:gosec // G115: wrapping is the defined narrowing behavior
	case uint64:
		return t
	case complex128:
		return uint64(real(t)) //nolint:gosec // G115: wrapping is the defined narrowing behavior
	case bool:
		if t {
			return 1
		}
		return 0
	default:
		panic(fmt.Sprintf("unexpected carrier value %T", v))
	}
}

func carrierComplex128(v any) complex128 {
	switch t := v.(type) {
	case float64:
		return complex(t, 0)
	case int64:
		return complex(float64(t), 0)
	case uint64:
		return complex(float64(t), 0)
	case complex128:
		return t
	case bool:
		if t {
			return 1
		}
		return 0
	default:
		panic(fmt.Sprintf("unexpected carrier value %T", v))
	}
}

func carrierBool(v any) bool {
	switch t := v.(type) {
	case float64:
		return t != 0
	case int64:
		return t != 0
	case uint64:
		return t != 0
	case complex128:
		return t != 0
	case bool:
		return t
	default:
		panic(fmt.Sprintf("unexpected carrier value %T", v))
	}
}
