package tensor

import (
	"fmt"
	"reflect"

	"github.com/x448/float16"
)

// FromNested builds a tensor from a scalar or a (possibly nested) slice,
// inferring both shape and element type.
//
// Nesting depth determines rank and every level must be rectangular. All
// leaves must agree on one element type: int and int64 leaves both build an
// Int64 tensor, string and []byte leaves both build a String tensor, and any
// other mix is an error rather than a silent widening. An empty literal with
// no element type information builds an empty Float64 tensor.
func FromNested(values any) (*Dense, error) {
	return fromNested(values, DataType(-1))
}

// FromNestedAs builds a tensor like FromNested but with an explicit element
// type target instead of an inferred one.
//
// Numeric, bool and complex leaves are converted to the target with Cast
// semantics. A String target requires string or []byte leaves and reports
// ErrStringElement for anything else; a numeric target given string leaves
// reports ErrCast.
func FromNestedAs(values any, dtype DataType) (*Dense, error) {
	return fromNested(values, dtype)
}

// fromNested is the shared builder. want == -1 means no target type.
func fromNested(values any, want DataType) (*Dense, error) {
	shape, dtype, err := nestedLayout(values)
	if err != nil {
		return nil, err
	}
	if dtype == -1 {
		// No leaves and no static element type. Default mirrors the
		// float64 convention for untyped empty literals.
		if want != -1 {
			dtype = want
		} else {
			dtype = Float64
		}
	}

	d, err := NewDense(shape, dtype)
	if err != nil {
		return nil, err
	}
	fillNested(d, values)

	if want == -1 || want == dtype {
		return d, nil
	}
	if want == String {
		return nil, fmt.Errorf("%w: got %s elements", ErrStringElement, dtype)
	}
	return d.Cast(want)
}

// nestedLayout walks a nested slice value and returns its shape along with
// the element type shared by all leaves. The element type is -1 when the
// value holds no leaves and its static type names none.
func nestedLayout(values any) (Shape, DataType, error) {
	var (
		dims      Shape
		dtype     = DataType(-1)
		leafDepth = -1
	)

	var walk func(v any, depth int) error
	walk = func(v any, depth int) error {
		if dt, ok := leafType(v); ok {
			if leafDepth == -1 {
				leafDepth = depth
			}
			if depth != leafDepth {
				return fmt.Errorf("%w: ragged nesting: element at depth %d, want %d",
					ErrShape, depth, leafDepth)
			}
			return mergeLeafType(&dtype, dt)
		}

		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice {
			return fmt.Errorf("%w: %T", ErrElementType, v)
		}
		if leafDepth != -1 && depth >= leafDepth {
			return fmt.Errorf("%w: ragged nesting: list at depth %d below elements at depth %d",
				ErrShape, depth, leafDepth)
		}
		if depth == len(dims) {
			dims = append(dims, rv.Len())
		} else if rv.Len() != dims[depth] {
			return fmt.Errorf("%w: ragged nesting: length %d at depth %d, want %d",
				ErrShape, rv.Len(), depth, dims[depth])
		}
		for i := 0; i < rv.Len(); i++ {
			if err := walk(rv.Index(i).Interface(), depth+1); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(values, 0); err != nil {
		return nil, -1, err
	}
	if dtype == -1 {
		dtype = staticLeafType(reflect.TypeOf(values))
	}
	return dims, dtype, nil
}

// mergeLeafType folds one leaf's type into the running element type.
func mergeLeafType(dtype *DataType, dt DataType) error {
	switch {
	case *dtype == -1:
		*dtype = dt
	case *dtype == dt:
	case *dtype == String || dt == String:
		return fmt.Errorf("%w: mixed %s and %s elements", ErrStringElement, *dtype, dt)
	default:
		return fmt.Errorf("%w: mixed %s and %s elements", ErrElementType, *dtype, dt)
	}
	return nil
}

// leafType classifies a single element value. A []byte value is always one
// byte-string element, never a vector of uint8.
func leafType(v any) (DataType, bool) {
	switch v.(type) {
	case float16.Float16:
		return Float16, true
	case float32:
		return Float32, true
	case float64:
		return Float64, true
	case int8:
		return Int8, true
	case int16:
		return Int16, true
	case int32:
		return Int32, true
	case int, int64:
		return Int64, true
	case uint8:
		return Uint8, true
	case uint16:
		return Uint16, true
	case uint32:
		return Uint32, true
	case uint, uint64:
		return Uint64, true
	case bool:
		return Bool, true
	case complex64:
		return Complex64, true
	case complex128:
		return Complex128, true
	case string, []byte:
		return String, true
	default:
		return 0, false
	}
}

// staticLeafType resolves the element type of an empty slice from its static
// Go type, descending through nested slice types. Returns -1 for types that
// carry no element information, such as []any.
func staticLeafType(t reflect.Type) DataType {
	for t != nil && t.Kind() == reflect.Slice {
		if t == reflect.TypeOf([]byte(nil)) {
			return String
		}
		t = t.Elem()
	}
	if t == nil || t.Kind() == reflect.Interface {
		return -1
	}
	if dt, ok := leafType(reflect.Zero(t).Interface()); ok {
		return dt
	}
	return -1
}

// fillNested writes leaves into d in row-major order. Layout and type errors
// were already reported by nestedLayout.
func fillNested(d *Dense, values any) {
	set := d.elemSetter()
	i := 0
	var walk func(v any)
	walk = func(v any) {
		if _, ok := leafType(v); ok {
			set(i, v)
			i++
			return
		}
		rv := reflect.ValueOf(v)
		for j := 0; j < rv.Len(); j++ {
			walk(rv.Index(j).Interface())
		}
	}
	walk(values)
}

// elemSetter returns a writer for element i taking the leaf values accepted
// by leafType for the tensor's dtype.
func (d *Dense) elemSetter() func(i int, v any) {
	switch d.dtype {
	case Float16:
		dst := d.AsFloat16()
		return func(i int, v any) { dst[i] = v.(float16.Float16) }
	case Float32:
		dst := d.AsFloat32()
		return func(i int, v any) { dst[i] = v.(float32) }
	case Float64:
		dst := d.AsFloat64()
		return func(i int, v any) { dst[i] = v.(float64) }
	case Int8:
		dst := d.AsInt8()
		return func(i int, v any) { dst[i] = v.(int8) }
	case Int16:
		dst := d.AsInt16()
		return func(i int, v any) { dst[i] = v.(int16) }
	case Int32:
		dst := d.AsInt32()
		return func(i int, v any) { dst[i] = v.(int32) }
	case Int64:
		dst := d.AsInt64()
		return func(i int, v any) {
			if t, ok := v.(int); ok {
				dst[i] = int64(t)
				return
			}
			dst[i] = v.(int64)
		}
	case Uint8:
		dst := d.AsUint8()
		return func(i int, v any) { dst[i] = v.(uint8) }
	case Uint16:
		dst := d.AsUint16()
		return func(i int, v any) { dst[i] = v.(uint16) }
	case Uint32:
		dst := d.AsUint32()
		return func(i int, v any) { dst[i] = v.(uint32) }
	case Uint64:
		dst := d.AsUint64()
		return func(i int, v any) {
			if t, ok := v.(uint); ok {
				dst[i] = uint64(t)
				return
			}
			dst[i] = v.(uint64)
		}
	case Bool:
		dst := d.AsBool()
		return func(i int, v any) { dst[i] = v.(bool) }
	case Complex64:
		dst := d.AsComplex64()
		return func(i int, v any) { dst[i] = v.(complex64) }
	case Complex128:
		dst := d.AsComplex128()
		return func(i int, v any) { dst[i] = v.(complex128) }
	case String:
		return func(i int, v any) {
			if t, ok := v.(string); ok {
				d.strs[i] = []byte(t)
				return
			}
			d.strs[i] = append([]byte(nil), v.([]byte)...)
		}
	default:
		panic("unknown data type")
	}
}
