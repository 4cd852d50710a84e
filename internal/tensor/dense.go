package tensor

import (
	"bytes"
	"fmt"
	"unsafe"

	"github.com/x448/float16"
)

// Dense is the in-memory tensor representation.
//
// Fixed-width elements (numeric, bool, complex) live in a single row-major
// byte buffer that the As* accessors reinterpret in place. Byte-string
// elements have no fixed width and are stored out of line, one []byte per
// element, in row-major order.
type Dense struct {
	shape Shape    // Tensor dimensions
	dtype DataType // Runtime type information
	data  []byte   // Fixed-width element storage, row-major
	strs  [][]byte // Element storage when dtype == String
}

// NewDense creates a zero-valued tensor with the given shape and type.
// Numeric storage is zero-filled; String elements start as empty
// byte-strings.
func NewDense(shape Shape, dtype DataType) (*Dense, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	d := &Dense{
		shape: shape.Clone(),
		dtype: dtype,
	}
	if dtype == String {
		d.strs = make([][]byte, shape.NumElements())
	} else {
		d.data = make([]byte, shape.NumElements()*dtype.Size())
	}
	return d, nil
}

// FromSlice creates a tensor holding a copy of data in row-major order.
// The element type is inferred from T and the length of data must match
// the number of elements described by shape.
func FromSlice[T DType](data []T, shape Shape) (*Dense, error) {
	var dummy T
	d, err := NewDense(shape, inferDataType(dummy))
	if err != nil {
		return nil, err
	}
	if len(data) != d.NumElements() {
		return nil, fmt.Errorf("%w: %d elements for shape %v, want %d",
			ErrShape, len(data), shape, d.NumElements())
	}
	if len(data) == 0 {
		return d, nil
	}

	switch src := any(data).(type) {
	case []string:
		for i, s := range src {
			d.strs[i] = []byte(s)
		}
	case [][]byte:
		for i, b := range src {
			d.strs[i] = append([]byte(nil), b...)
		}
	case []int:
		// Platform-width int is stored as int64; copy element-wise.
		dst := d.AsInt64()
		for i, v := range src {
			dst[i] = int64(v)
		}
	case []uint:
		dst := d.AsUint64()
		for i, v := range src {
			dst[i] = uint64(v)
		}
	default:
		//nolint:gosec // unsafe.Slice for zero-copy reinterpretation, length checked above
		copy(unsafe.Slice((*T)(unsafe.Pointer(&d.data[0])), len(data)), data)
	}
	return d, nil
}

// Shape returns the tensor's shape.
func (d *Dense) Shape() Shape {
	return d.shape
}

// DType returns the tensor's element type.
func (d *Dense) DType() DataType {
	return d.dtype
}

// NumElements returns the total number of elements.
func (d *Dense) NumElements() int {
	return d.shape.NumElements()
}

// ByteSize returns the total size of element storage in bytes.
// For String tensors this is the sum of the element lengths.
func (d *Dense) ByteSize() int {
	if d.dtype == String {
		n := 0
		for _, s := range d.strs {
			n += len(s)
		}
		return n
	}
	return len(d.data)
}

// Data returns the raw byte slice backing fixed-width elements, or nil for
// String tensors.
// WARNING: Direct access to underlying memory. Use with caution.
func (d *Dense) Data() []byte {
	return d.data
}

// view reinterprets the byte buffer as []T without copying.
func view[T any](d *Dense, want DataType) []T {
	if d.dtype != want {
		panic(fmt.Sprintf("tensor dtype is %s, not %s", d.dtype, want))
	}
	if len(d.data) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*T)(unsafe.Pointer(&d.data[0])), d.NumElements())
}

// AsFloat16 interprets the data as []float16.Float16.
// Panics if the tensor's dtype is not Float16.
func (d *Dense) AsFloat16() []float16.Float16 {
	return view[float16.Float16](d, Float16)
}

// AsFloat32 interprets the data as []float32.
// Panics if the tensor's dtype is not Float32.
func (d *Dense) AsFloat32() []float32 {
	return view[float32](d, Float32)
}

// AsFloat64 interprets the data as []float64.
// Panics if the tensor's dtype is not Float64.
func (d *Dense) AsFloat64() []float64 {
	return view[float64](d, Float64)
}

// AsInt8 interprets the data as []int8.
// Panics if the tensor's dtype is not Int8.
func (d *Dense) AsInt8() []int8 {
	return view[int8](d, Int8)
}

// AsInt16 interprets the data as []int16.
// Panics if the tensor's dtype is not Int16.
func (d *Dense) AsInt16() []int16 {
	return view[int16](d, Int16)
}

// AsInt32 interprets the data as []int32.
// Panics if the tensor's dtype is not Int32.
func (d *Dense) AsInt32() []int32 {
	return view[int32](d, Int32)
}

// AsInt64 interprets the data as []int64.
// Panics if the tensor's dtype is not Int64.
func (d *Dense) AsInt64() []int64 {
	return view[int64](d, Int64)
}

// AsUint8 interprets the data as []uint8.
// Panics if the tensor's dtype is not Uint8.
func (d *Dense) AsUint8() []uint8 {
	if d.dtype != Uint8 {
		panic(fmt.Sprintf("tensor dtype is %s, not uint8", d.dtype))
	}
	return d.data // Already []byte = []uint8
}

// AsUint16 interprets the data as []uint16.
// Panics if the tensor's dtype is not Uint16.
func (d *Dense) AsUint16() []uint16 {
	return view[uint16](d, Uint16)
}

// AsUint32 interprets the data as []uint32.
// Panics if the tensor's dtype is not Uint32.
func (d *Dense) AsUint32() []uint32 {
	return view[uint32](d, Uint32)
}

// AsUint64 interprets the data as []uint64.
// Panics if the tensor's dtype is not Uint64.
func (d *Dense) AsUint64() []uint64 {
	return view[uint64](d, Uint64)
}

// AsBool interprets the data as []bool.
// Panics if the tensor's dtype is not Bool.
func (d *Dense) AsBool() []bool {
	return view[bool](d, Bool)
}

// AsComplex64 interprets the data as []complex64.
// Panics if the tensor's dtype is not Complex64.
func (d *Dense) AsComplex64() []complex64 {
	return view[complex64](d, Complex64)
}

// AsComplex128 interprets the data as []complex128.
// Panics if the tensor's dtype is not Complex128.
func (d *Dense) AsComplex128() []complex128 {
	return view[complex128](d, Complex128)
}

// AsBytesList returns the element storage of a byte-string tensor in
// row-major order. The returned slice is shared with the tensor, not copied;
// a nil entry is an empty byte-string.
// Panics if the tensor's dtype is not String.
func (d *Dense) AsBytesList() [][]byte {
	if d.dtype != String {
		panic(fmt.Sprintf("tensor dtype is %s, not string", d.dtype))
	}
	return d.strs
}

// Clone returns a deep copy that shares no storage with the receiver.
func (d *Dense) Clone() *Dense {
	c := &Dense{
		shape: d.shape.Clone(),
		dtype: d.dtype,
	}
	if d.dtype == String {
		c.strs = make([][]byte, len(d.strs))
		for i, s := range d.strs {
			c.strs[i] = append([]byte(nil), s...)
		}
		return c
	}
	c.data = append([]byte(nil), d.data...)
	return c
}

// Equal reports whether two tensors have the same element type, shape and
// element content. Float elements compare by bit pattern.
func (d *Dense) Equal(other *Dense) bool {
	if d.dtype != other.dtype || !d.shape.Equal(other.shape) {
		return false
	}
	if d.dtype == String {
		for i := range d.strs {
			if !bytes.Equal(d.strs[i], other.strs[i]) {
				return false
			}
		}
		return true
	}
	return bytes.Equal(d.data, other.data)
}
