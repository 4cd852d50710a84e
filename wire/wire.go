// Copyright 2025 TensorWire Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package wire

import (
	"github.com/tensorwire-ml/tensorwire/internal/wire"
	"github.com/tensorwire-ml/tensorwire/tensor"
)

// Type aliases for public API

// DataType is a wire element type code.
type DataType = wire.DataType

// Wire element type codes.
const (
	TypeInvalid    DataType = wire.TypeInvalid
	TypeHalf       DataType = wire.TypeHalf
	TypeFloat      DataType = wire.TypeFloat
	TypeDouble     DataType = wire.TypeDouble
	TypeInt8       DataType = wire.TypeInt8
	TypeInt16      DataType = wire.TypeInt16
	TypeInt32      DataType = wire.TypeInt32
	TypeInt64      DataType = wire.TypeInt64
	TypeUint8      DataType = wire.TypeUint8
	TypeUint16     DataType = wire.TypeUint16
	TypeUint32     DataType = wire.TypeUint32
	TypeUint64     DataType = wire.TypeUint64
	TypeBool       DataType = wire.TypeBool
	TypeComplex64  DataType = wire.TypeComplex64
	TypeComplex128 DataType = wire.TypeComplex128
	TypeString     DataType = wire.TypeString
)

// Tensor is a wire tensor message.
type Tensor = wire.Tensor

// TensorShape is the shape of a wire tensor.
type TensorShape = wire.TensorShape

// Dim is one dimension of a wire tensor shape.
type Dim = wire.Dim

// EncodeOption configures Encode.
type EncodeOption = wire.EncodeOption

// DecodeOption configures Decode.
type DecodeOption = wire.DecodeOption

// Sentinel errors reported by the codec. Callers match them with errors.Is.
var (
	ErrUnknownNativeType    = wire.ErrUnknownNativeType
	ErrUnknownDataType      = wire.ErrUnknownDataType
	ErrUnsupportedEncoding  = wire.ErrUnsupportedEncoding
	ErrInvalidStringElement = wire.ErrInvalidStringElement
	ErrContentSize          = wire.ErrContentSize
	ErrShortValues          = wire.ErrShortValues
	ErrExcessValues         = wire.ErrExcessValues
)

// Codec functions

// Encode builds a wire tensor from a Go value: a *tensor.Dense, a flat
// slice, or a nested slice literal.
//
// Example:
//
//	wt, _ := wire.Encode([][]float64{{1, 2}, {3, 4}})
func Encode(values any, opts ...EncodeOption) (*Tensor, error) {
	return wire.Encode(values, opts...)
}

// EncodeDense builds a wire tensor from an in-memory tensor.
func EncodeDense(d *tensor.Dense) (*Tensor, error) {
	return wire.EncodeDense(d)
}

// Decode builds an in-memory tensor from a wire tensor.
//
// Example:
//
//	d, _ := wire.Decode(wt)
func Decode(t *Tensor, opts ...DecodeOption) (*tensor.Dense, error) {
	return wire.Decode(t, opts...)
}

// WithDataType makes Encode target an explicit element type instead of
// inferring one from the values.
func WithDataType(dt tensor.DataType) EncodeOption {
	return wire.WithDataType(dt)
}

// WithStrictLength makes Decode reject value lists shorter than the shape
// instead of padding them by edge replication.
func WithStrictLength() DecodeOption {
	return wire.WithStrictLength()
}

// Unmarshal parses a protobuf-encoded wire tensor.
func Unmarshal(data []byte) (*Tensor, error) {
	return wire.Unmarshal(data)
}

// Registry functions

// DataTypeOf returns the wire type code for a native element type.
// Unregistered element types report ErrUnknownNativeType.
func DataTypeOf(nt tensor.DataType) (DataType, error) {
	return wire.DataTypeOf(nt)
}

// NativeOf returns the native element type for a wire type code.
// Unregistered codes report ErrUnknownDataType.
func NativeOf(dt DataType) (tensor.DataType, error) {
	return wire.NativeOf(dt)
}
