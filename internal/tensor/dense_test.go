package tensor

import (
	"errors"
	"testing"
)

// Dense construction tests

func TestNewDenseAllTypes(t *testing.T) {
	types := []struct {
		dtype       DataType
		elementSize int
	}{
		{Float16, 2},
		{Float32, 4},
		{Float64, 8},
		{Int8, 1},
		{Int16, 2},
		{Int32, 4},
		{Int64, 8},
		{Uint8, 1},
		{Uint16, 2},
		{Uint32, 4},
		{Uint64, 8},
		{Bool, 1},
		{Complex64, 8},
		{Complex128, 16},
	}

	shape := Shape{2, 3}
	for _, tt := range types {
		d, err := NewDense(shape, tt.dtype)
		if err != nil {
			t.Fatalf("NewDense(%v, %v) failed: %v", shape, tt.dtype, err)
		}

		if d.DType() != tt.dtype {
			t.Errorf("DType = %v, want %v", d.DType(), tt.dtype)
		}

		expectedByteSize := 6 * tt.elementSize // 2*3 elements
		if d.ByteSize() != expectedByteSize {
			t.Errorf("ByteSize = %d, want %d for type %v", d.ByteSize(), expectedByteSize, tt.dtype)
		}
	}
}

func TestNewDenseString(t *testing.T) {
	d, err := NewDense(Shape{3}, String)
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}

	elems := d.AsBytesList()
	if len(elems) != 3 {
		t.Fatalf("AsBytesList length = %d, want 3", len(elems))
	}
	for i, s := range elems {
		if len(s) != 0 {
			t.Errorf("element %d = %q, want empty byte-string", i, s)
		}
	}
	if d.ByteSize() != 0 {
		t.Errorf("ByteSize = %d, want 0 for empty byte-strings", d.ByteSize())
	}
}

func TestNewDenseNegativeDim(t *testing.T) {
	invalidShapes := []Shape{
		{-1},
		{2, -3},
	}

	for _, shape := range invalidShapes {
		_, err := NewDense(shape, Float32)
		if !errors.Is(err, ErrShape) {
			t.Errorf("NewDense(%v) error = %v, want ErrShape", shape, err)
		}
	}
}

func TestNewDenseZeroDim(t *testing.T) {
	d, err := NewDense(Shape{0, 3}, Float32)
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}

	if d.NumElements() != 0 {
		t.Errorf("NumElements = %d, want 0", d.NumElements())
	}
	if got := d.AsFloat32(); len(got) != 0 {
		t.Errorf("AsFloat32 length = %d, want 0", len(got))
	}
}

func TestDenseScalar(t *testing.T) {
	d, err := NewDense(Shape{}, Float32)
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}

	if d.NumElements() != 1 {
		t.Errorf("Scalar tensor NumElements = %d, want 1", d.NumElements())
	}
	if d.ByteSize() != 4 {
		t.Errorf("Scalar tensor ByteSize = %d, want 4", d.ByteSize())
	}
	if len(d.AsFloat32()) != 1 {
		t.Errorf("Scalar tensor data length = %d, want 1", len(d.AsFloat32()))
	}
}

// FromSlice tests

func TestFromSliceFloat32(t *testing.T) {
	d, err := FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	if d.DType() != Float32 {
		t.Errorf("DType = %v, want Float32", d.DType())
	}
	got := d.AsFloat32()
	for i, want := range []float32{1, 2, 3, 4, 5, 6} {
		if got[i] != want {
			t.Errorf("element %d = %v, want %v", i, got[i], want)
		}
	}
}

func TestFromSliceInt(t *testing.T) {
	d, err := FromSlice([]int{1, 2, 3}, Shape{3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	if d.DType() != Int64 {
		t.Errorf("DType = %v, want Int64", d.DType())
	}
	got := d.AsInt64()
	if got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("AsInt64 = %v, want [1 2 3]", got)
	}
}

func TestFromSliceStrings(t *testing.T) {
	d, err := FromSlice([]string{"a", "bc"}, Shape{2})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	if d.DType() != String {
		t.Errorf("DType = %v, want String", d.DType())
	}
	elems := d.AsBytesList()
	if string(elems[0]) != "a" || string(elems[1]) != "bc" {
		t.Errorf("AsBytesList = %q, want [a bc]", elems)
	}
}

func TestFromSliceBytesCopies(t *testing.T) {
	src := [][]byte{[]byte("ab"), []byte("cd")}
	d, err := FromSlice(src, Shape{2})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	src[0][0] = 'X'
	if string(d.AsBytesList()[0]) != "ab" {
		t.Error("FromSlice should copy byte-string elements")
	}
}

func TestFromSliceLengthMismatch(t *testing.T) {
	_, err := FromSlice([]float32{1, 2, 3}, Shape{2, 2})
	if !errors.Is(err, ErrShape) {
		t.Errorf("FromSlice error = %v, want ErrShape", err)
	}
}

// Accessor tests

func TestDenseAsInt64(t *testing.T) {
	d, _ := NewDense(Shape{3, 2}, Int64)
	data := d.AsInt64()

	if len(data) != 6 {
		t.Errorf("AsInt64 length = %d, want 6", len(data))
	}

	// Modify and verify zero-copy
	data[0] = 42
	if d.AsInt64()[0] != 42 {
		t.Error("AsInt64 should return zero-copy slice")
	}
}

func TestDenseAsUint8(t *testing.T) {
	d, _ := NewDense(Shape{4, 4}, Uint8)
	data := d.AsUint8()

	if len(data) != 16 {
		t.Errorf("AsUint8 length = %d, want 16", len(data))
	}

	data[0] = 255
	if d.AsUint8()[0] != 255 {
		t.Error("AsUint8 should return zero-copy slice")
	}
}

func TestDenseAsFloat16(t *testing.T) {
	d, _ := NewDense(Shape{2}, Float16)
	data := d.AsFloat16()

	if len(data) != 2 {
		t.Errorf("AsFloat16 length = %d, want 2", len(data))
	}
	if d.ByteSize() != 4 {
		t.Errorf("ByteSize = %d, want 4", d.ByteSize())
	}
}

func TestDenseAsWrongTypePanics(t *testing.T) {
	d, _ := NewDense(Shape{2}, Float32)

	// AsFloat32 should work
	_ = d.AsFloat32()

	// AsFloat64 should panic
	defer func() {
		if r := recover(); r == nil {
			t.Error("AsFloat64 on Float32 tensor should panic")
		}
	}()
	_ = d.AsFloat64()
}

func TestDenseAsBytesListWrongTypePanics(t *testing.T) {
	d, _ := NewDense(Shape{2}, Float32)

	defer func() {
		if r := recover(); r == nil {
			t.Error("AsBytesList on Float32 tensor should panic")
		}
	}()
	_ = d.AsBytesList()
}

// Clone and Equal tests

func TestDenseCloneIndependent(t *testing.T) {
	d, _ := FromSlice([]float32{1, 2}, Shape{2})
	c := d.Clone()

	d.AsFloat32()[0] = 99
	if c.AsFloat32()[0] != 1 {
		t.Error("Clone should not share storage")
	}
}

func TestDenseCloneStringIndependent(t *testing.T) {
	d, _ := FromSlice([]string{"ab"}, Shape{1})
	c := d.Clone()

	d.AsBytesList()[0][0] = 'X'
	if string(c.AsBytesList()[0]) != "ab" {
		t.Error("Clone should not share byte-string storage")
	}
}

func TestDenseEqual(t *testing.T) {
	a, _ := FromSlice([]int32{1, 2, 3, 4}, Shape{2, 2})
	b, _ := FromSlice([]int32{1, 2, 3, 4}, Shape{2, 2})
	c, _ := FromSlice([]int32{1, 2, 3, 4}, Shape{4})
	e, _ := FromSlice([]int64{1, 2, 3, 4}, Shape{2, 2})

	if !a.Equal(b) {
		t.Error("tensors with same dtype, shape and data should be equal")
	}
	if a.Equal(c) {
		t.Error("tensors with different shapes should not be equal")
	}
	if a.Equal(e) {
		t.Error("tensors with different dtypes should not be equal")
	}
}
