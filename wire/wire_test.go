// Copyright 2025 TensorWire Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package wire_test

import (
	"errors"
	"testing"

	"github.com/tensorwire-ml/tensorwire/tensor"
	"github.com/tensorwire-ml/tensorwire/wire"
)

// TestCodecRoundTrip verifies the public encode, marshal, unmarshal and
// decode path end to end.
func TestCodecRoundTrip(t *testing.T) {
	wt, err := wire.Encode([][]float64{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if wt.DType != wire.TypeFloat {
		t.Errorf("DType = %v, want TypeFloat", wt.DType)
	}

	back, err := wire.Unmarshal(wt.Marshal())
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	d, err := wire.Decode(back)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !d.Shape().Equal(tensor.Shape{2, 2}) {
		t.Errorf("Shape() = %v, want [2 2]", d.Shape())
	}
	got := d.AsFloat32()
	want := []float32{1, 2, 3, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d = %v, want %v", i, got[i], want[i])
		}
	}
}

// TestRegistry verifies the re-exported type mappings.
func TestRegistry(t *testing.T) {
	dt, err := wire.DataTypeOf(tensor.Float32)
	if err != nil {
		t.Fatalf("DataTypeOf failed: %v", err)
	}
	if dt != wire.TypeFloat {
		t.Errorf("DataTypeOf(Float32) = %v, want TypeFloat", dt)
	}

	nt, err := wire.NativeOf(wire.TypeInt64)
	if err != nil {
		t.Fatalf("NativeOf failed: %v", err)
	}
	if nt != tensor.Int64 {
		t.Errorf("NativeOf(TypeInt64) = %v, want Int64", nt)
	}

	if _, err := wire.NativeOf(wire.TypeInvalid); !errors.Is(err, wire.ErrUnknownDataType) {
		t.Errorf("NativeOf(TypeInvalid) error = %v, want ErrUnknownDataType", err)
	}
}

// TestOptions verifies the option constructors pass through.
func TestOptions(t *testing.T) {
	if _, err := wire.Encode([][]int{{1}, {2}}, wire.WithDataType(tensor.String)); !errors.Is(err, wire.ErrInvalidStringElement) {
		t.Errorf("string target error = %v, want ErrInvalidStringElement", err)
	}

	wt := &wire.Tensor{
		DType:  wire.TypeInt32,
		Shape:  &wire.TensorShape{Dims: []wire.Dim{{Size: 3}}},
		IntVal: []int32{1},
	}
	if _, err := wire.Decode(wt, wire.WithStrictLength()); !errors.Is(err, wire.ErrShortValues) {
		t.Errorf("short list error = %v, want ErrShortValues", err)
	}
}
