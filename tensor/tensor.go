// Copyright 2025 TensorWire Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/tensorwire-ml/tensorwire/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor element types.
// Supported types: float32, float64, signed and unsigned integers up to
// 64 bits, bool, complex64, complex128, string and []byte.
type DType = tensor.DType

// DataType identifies the element type of a tensor.
type DataType = tensor.DataType

// Element type constants.
const (
	Float16    DataType = tensor.Float16
	Float32    DataType = tensor.Float32
	Float64    DataType = tensor.Float64
	Int8       DataType = tensor.Int8
	Int16      DataType = tensor.Int16
	Int32      DataType = tensor.Int32
	Int64      DataType = tensor.Int64
	Uint8      DataType = tensor.Uint8
	Uint16     DataType = tensor.Uint16
	Uint32     DataType = tensor.Uint32
	Uint64     DataType = tensor.Uint64
	Bool       DataType = tensor.Bool
	Complex64  DataType = tensor.Complex64
	Complex128 DataType = tensor.Complex128
	String     DataType = tensor.String
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Dense is a row-major tensor with flat storage.
//
// Dense provides:
//   - Shape and type information via Shape(), DType(), NumElements()
//   - Type-safe data access via AsFloat32(), AsInt64(), etc.
//   - Element type conversion via Cast()
//   - Deep copies via Clone()
//
// Example:
//
//	d, _ := tensor.NewDense(tensor.Shape{2, 3}, tensor.Float32)
//	data := d.AsFloat32()  // Type-safe access
type Dense = tensor.Dense

// Sentinel errors reported by tensor construction and conversion.
var (
	ErrShape         = tensor.ErrShape
	ErrElementType   = tensor.ErrElementType
	ErrStringElement = tensor.ErrStringElement
	ErrCast          = tensor.ErrCast
)

// Creation functions

// NewDense creates a zero-valued tensor with the given shape and element
// type.
//
// Example:
//
//	d, _ := tensor.NewDense(tensor.Shape{2, 3}, tensor.Float64)
func NewDense(shape Shape, dtype DataType) (*Dense, error) {
	return tensor.NewDense(shape, dtype)
}

// FromSlice creates a tensor from a flat slice and a shape. The slice
// length must match the shape's element count; the elements are copied.
//
// Example:
//
//	d, _ := tensor.FromSlice([]int32{1, 2, 3, 4}, tensor.Shape{2, 2})
func FromSlice[T DType](data []T, shape Shape) (*Dense, error) {
	return tensor.FromSlice(data, shape)
}

// FromNested creates a tensor from a nested slice literal, inferring shape
// and element type from the leaves. Integer leaves infer Int64, float
// leaves Float64, string and []byte leaves String.
//
// Example:
//
//	d, _ := tensor.FromNested([][]float64{{1, 2}, {3, 4}})
func FromNested(values any) (*Dense, error) {
	return tensor.FromNested(values)
}

// FromNestedAs creates a tensor from a nested slice literal with an
// explicit element type, converting the leaves as they are placed.
// Numeric leaves targeted at String report ErrStringElement.
//
// Example:
//
//	d, _ := tensor.FromNestedAs([]int{1, 2, 3}, tensor.Float32)
func FromNestedAs(values any, dtype DataType) (*Dense, error) {
	return tensor.FromNestedAs(values, dtype)
}
