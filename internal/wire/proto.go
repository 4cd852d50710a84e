// Package wire implements the tensor wire schema: a self-describing
// protobuf message that carries an element type code, a shape, and one of
// several payload encodings, together with the codec between wire tensors
// and in-memory dense tensors.
package wire

import (
	"github.com/tensorwire-ml/tensorwire/internal/tensor"
)

// DataType is the wire-level element type code of a tensor.
type DataType int32

// Wire element type codes. The numeric values are part of the wire format
// and never change; unlisted codes are reserved for quantized and packed
// types.
const (
	TypeInvalid    DataType = 0
	TypeFloat      DataType = 1 // float32
	TypeDouble     DataType = 2 // float64
	TypeInt32      DataType = 3
	TypeUint8      DataType = 4
	TypeInt16      DataType = 5
	TypeInt8       DataType = 6
	TypeString     DataType = 7 // variable-length byte-strings
	TypeComplex64  DataType = 8
	TypeInt64      DataType = 9
	TypeBool       DataType = 10
	TypeUint16     DataType = 17
	TypeComplex128 DataType = 18
	TypeHalf       DataType = 19 // float16
	TypeUint32     DataType = 22
	TypeUint64     DataType = 23
)

// String returns a human-readable name for the wire type code.
func (dt DataType) String() string {
	switch dt {
	case TypeInvalid:
		return "invalid"
	case TypeFloat:
		return "float"
	case TypeDouble:
		return "double"
	case TypeInt32:
		return "int32"
	case TypeUint8:
		return "uint8"
	case TypeInt16:
		return "int16"
	case TypeInt8:
		return "int8"
	case TypeString:
		return "string"
	case TypeComplex64:
		return "complex64"
	case TypeInt64:
		return "int64"
	case TypeBool:
		return "bool"
	case TypeUint16:
		return "uint16"
	case TypeComplex128:
		return "complex128"
	case TypeHalf:
		return "half"
	case TypeUint32:
		return "uint32"
	case TypeUint64:
		return "uint64"
	default:
		return "unknown"
	}
}

// Dim is one dimension of a wire tensor shape.
type Dim struct {
	Size int64  // Field 1
	Name string // Field 2
}

// TensorShape describes the dimensionality of a wire tensor.
type TensorShape struct {
	Dims        []Dim // Field 2
	UnknownRank bool  // Field 3
}

// Tensor is the wire message for one dense tensor.
//
// The payload lives either in Content, raw little-endian element bytes in
// row-major order, or in the typed value list matching the element type.
// int32 and int64 tensors share IntVal; Int64Val exists in the schema but
// is not a decode source.
type Tensor struct {
	DType         DataType     // Field 1
	Shape         *TensorShape // Field 2
	VersionNumber int32        // Field 3
	Content       []byte       // Field 4: raw element bytes
	FloatVal      []float32    // Field 5
	DoubleVal     []float64    // Field 6
	IntVal        []int32      // Field 7: int8 through int32, and int64
	StringVal     [][]byte     // Field 8
	ScomplexVal   []float32    // Field 9: interleaved real, imag pairs
	Int64Val      []int64      // Field 10
	BoolVal       []bool       // Field 11
	DcomplexVal   []float64    // Field 12: interleaved real, imag pairs
	HalfVal       []int32      // Field 13: float16 bit patterns
	Uint32Val     []uint32     // Field 16
	Uint64Val     []uint64     // Field 17
}

// ShapeOf converts an in-memory shape to its wire form.
func ShapeOf(s tensor.Shape) *TensorShape {
	ws := &TensorShape{Dims: make([]Dim, len(s))}
	for i, d := range s {
		ws.Dims[i] = Dim{Size: int64(d)}
	}
	return ws
}

// ToShape converts the wire shape to an in-memory shape. A nil or empty
// shape describes a scalar; dimension names and the unknown-rank marker do
// not survive the conversion.
func (s *TensorShape) ToShape() tensor.Shape {
	if s == nil {
		return tensor.Shape{}
	}
	out := make(tensor.Shape, len(s.Dims))
	for i, d := range s.Dims {
		out[i] = int(d.Size)
	}
	return out
}

// NumElements returns the element count described by the shape.
func (s *TensorShape) NumElements() int {
	return s.ToShape().NumElements()
}
