// Copyright 2025 TensorWire Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"errors"
	"testing"

	"github.com/tensorwire-ml/tensorwire/tensor"
)

// TestDenseAPI verifies the Dense type alias exposes the expected API.
func TestDenseAPI(t *testing.T) {
	d, err := tensor.NewDense(tensor.Shape{2, 3}, tensor.Float32)
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}

	// Test Shape() method.
	shape := d.Shape()
	if !shape.Equal(tensor.Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", shape)
	}

	// Test DType() method.
	if d.DType() != tensor.Float32 {
		t.Errorf("DType() = %v, want Float32", d.DType())
	}

	// Test NumElements() method.
	if n := d.NumElements(); n != 6 {
		t.Errorf("NumElements() = %d, want 6", n)
	}

	// Test ByteSize() method.
	expected := 6 * 4 // 6 elements * 4 bytes (float32)
	if byteSize := d.ByteSize(); byteSize != expected {
		t.Errorf("ByteSize() = %d, want %d", byteSize, expected)
	}

	// Test typed access.
	data := d.AsFloat32()
	if len(data) != 6 {
		t.Fatalf("AsFloat32() length = %d, want 6", len(data))
	}
	data[0] = 1.5

	// Test Clone() independence.
	clone := d.Clone()
	clone.AsFloat32()[0] = 9
	if d.AsFloat32()[0] != 1.5 {
		t.Errorf("Clone() shares storage with the original")
	}
}

// TestCreationFunctions verifies the package-level constructors.
func TestCreationFunctions(t *testing.T) {
	fromSlice, err := tensor.FromSlice([]int64{1, 2, 3, 4}, tensor.Shape{2, 2})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	if fromSlice.DType() != tensor.Int64 {
		t.Errorf("FromSlice DType() = %v, want Int64", fromSlice.DType())
	}

	nested, err := tensor.FromNested([][]float64{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatalf("FromNested failed: %v", err)
	}
	if !nested.Shape().Equal(tensor.Shape{2, 2}) {
		t.Errorf("FromNested Shape() = %v, want [2 2]", nested.Shape())
	}

	typed, err := tensor.FromNestedAs([]int{1, 2, 3}, tensor.Float32)
	if err != nil {
		t.Fatalf("FromNestedAs failed: %v", err)
	}
	if typed.DType() != tensor.Float32 {
		t.Errorf("FromNestedAs DType() = %v, want Float32", typed.DType())
	}
}

// TestSentinelErrors verifies the re-exported sentinels match errors.Is.
func TestSentinelErrors(t *testing.T) {
	_, err := tensor.NewDense(tensor.Shape{-1}, tensor.Float32)
	if !errors.Is(err, tensor.ErrShape) {
		t.Errorf("negative dimension error = %v, want ErrShape", err)
	}

	_, err = tensor.FromNestedAs([]int{1}, tensor.String)
	if !errors.Is(err, tensor.ErrStringElement) {
		t.Errorf("string target error = %v, want ErrStringElement", err)
	}
}
