package wire

import (
	"fmt"

	"github.com/tensorwire-ml/tensorwire/internal/tensor"
)

// typeTable is the single source for the wire to native element type
// correspondence. Both lookup directions derive from it.
var typeTable = []struct {
	wire   DataType
	native tensor.DataType
}{
	{TypeHalf, tensor.Float16},
	{TypeFloat, tensor.Float32},
	{TypeDouble, tensor.Float64},
	{TypeInt32, tensor.Int32},
	{TypeUint8, tensor.Uint8},
	{TypeUint16, tensor.Uint16},
	{TypeUint32, tensor.Uint32},
	{TypeUint64, tensor.Uint64},
	{TypeInt16, tensor.Int16},
	{TypeInt8, tensor.Int8},
	{TypeString, tensor.String},
	{TypeComplex64, tensor.Complex64},
	{TypeComplex128, tensor.Complex128},
	{TypeInt64, tensor.Int64},
	{TypeBool, tensor.Bool},
}

var (
	wireToNative = make(map[DataType]tensor.DataType, len(typeTable))
	nativeToWire = make(map[tensor.DataType]DataType, len(typeTable))
)

func init() {
	for _, e := range typeTable {
		wireToNative[e.wire] = e.native
		nativeToWire[e.native] = e.wire
	}
}

// DataTypeOf returns the wire type code for an in-memory element type.
func DataTypeOf(nt tensor.DataType) (DataType, error) {
	dt, ok := nativeToWire[nt]
	if !ok {
		return TypeInvalid, fmt.Errorf("%w: %v", ErrUnknownNativeType, nt)
	}
	return dt, nil
}

// NativeOf returns the in-memory element type for a wire type code.
func NativeOf(dt DataType) (tensor.DataType, error) {
	nt, ok := wireToNative[dt]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownDataType, dt)
	}
	return nt, nil
}
