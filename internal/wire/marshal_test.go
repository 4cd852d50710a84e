package wire

import (
	"bytes"
	"reflect"
	"testing"
)

// Wire format golden tests

func TestMarshalGoldenFloatContent(t *testing.T) {
	msg := &Tensor{
		DType: TypeFloat,
		Shape: &TensorShape{Dims: []Dim{{Size: 3}}},
		Content: []byte{
			0x00, 0x00, 0x80, 0x3f, // 1.0
			0x00, 0x00, 0x00, 0x40, // 2.0
			0x00, 0x00, 0x40, 0x40, // 3.0
		},
	}

	want := []byte{
		0x08, 0x01, // dtype = 1 (float)
		0x12, 0x04, 0x12, 0x02, 0x08, 0x03, // shape { dim { size: 3 } }
		0x22, 0x0c, // content, 12 bytes
		0x00, 0x00, 0x80, 0x3f,
		0x00, 0x00, 0x00, 0x40,
		0x00, 0x00, 0x40, 0x40,
	}

	got := msg.Marshal()
	if !bytes.Equal(got, want) {
		t.Errorf("Marshal = %x, want %x", got, want)
	}
}

func TestMarshalGoldenStringVal(t *testing.T) {
	msg := &Tensor{
		DType:     TypeString,
		Shape:     &TensorShape{Dims: []Dim{{Size: 2}}},
		StringVal: [][]byte{[]byte("ab"), {}},
	}

	want := []byte{
		0x08, 0x07, // dtype = 7 (string)
		0x12, 0x04, 0x12, 0x02, 0x08, 0x02, // shape { dim { size: 2 } }
		0x42, 0x02, 'a', 'b', // string_val "ab"
		0x42, 0x00, // string_val "" (empty element still emitted)
	}

	got := msg.Marshal()
	if !bytes.Equal(got, want) {
		t.Errorf("Marshal = %x, want %x", got, want)
	}
}

// Round-trip tests

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	msg := &Tensor{
		DType:         TypeDouble,
		Shape:         &TensorShape{Dims: []Dim{{Size: 2, Name: "batch"}, {Size: 3}}},
		VersionNumber: 1,
		DoubleVal:     []float64{1.5, -2.25, 3, 4, 5, 6},
	}

	got, err := Unmarshal(msg.Marshal())
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !reflect.DeepEqual(got, msg) {
		t.Errorf("round trip = %+v, want %+v", got, msg)
	}
}

func TestMarshalUnmarshalAllValueLists(t *testing.T) {
	msg := &Tensor{
		DType:       TypeFloat,
		Shape:       &TensorShape{},
		FloatVal:    []float32{1.5},
		DoubleVal:   []float64{2.5},
		IntVal:      []int32{-3, 4},
		StringVal:   [][]byte{[]byte("x")},
		ScomplexVal: []float32{1, 2},
		Int64Val:    []int64{-5},
		BoolVal:     []bool{true, false},
		DcomplexVal: []float64{3, 4},
		HalfVal:     []int32{0x3c00},
		Uint32Val:   []uint32{7},
		Uint64Val:   []uint64{8},
		Content:     []byte{0xde, 0xad},
	}

	got, err := Unmarshal(msg.Marshal())
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !reflect.DeepEqual(got, msg) {
		t.Errorf("round trip = %+v, want %+v", got, msg)
	}
}

func TestMarshalNegativeDimRoundTrip(t *testing.T) {
	msg := &Tensor{
		DType: TypeFloat,
		Shape: &TensorShape{Dims: []Dim{{Size: -1}}},
	}

	got, err := Unmarshal(msg.Marshal())
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if got.Shape.Dims[0].Size != -1 {
		t.Errorf("dim size = %d, want -1", got.Shape.Dims[0].Size)
	}
}

func TestMarshalUnknownRankRoundTrip(t *testing.T) {
	msg := &Tensor{
		DType: TypeInt32,
		Shape: &TensorShape{UnknownRank: true},
	}

	got, err := Unmarshal(msg.Marshal())
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !got.Shape.UnknownRank {
		t.Error("UnknownRank should survive the round trip")
	}
}

// Compatibility tests

func TestUnmarshalUnpackedInts(t *testing.T) {
	// int_val written one tag per element instead of packed.
	data := []byte{
		0x08, 0x03, // dtype = 3 (int32)
		0x38, 0x05, // int_val 5
		0x38, 0x07, // int_val 7
	}

	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !reflect.DeepEqual(got.IntVal, []int32{5, 7}) {
		t.Errorf("IntVal = %v, want [5 7]", got.IntVal)
	}
}

func TestUnmarshalUnpackedFloats(t *testing.T) {
	// float_val written one fixed32 per element.
	data := []byte{
		0x2d, 0x00, 0x00, 0x80, 0x3f, // float_val 1.0
		0x2d, 0x00, 0x00, 0x00, 0x40, // float_val 2.0
	}

	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !reflect.DeepEqual(got.FloatVal, []float32{1, 2}) {
		t.Errorf("FloatVal = %v, want [1 2]", got.FloatVal)
	}
}

func TestUnmarshalSkipsUnknownFields(t *testing.T) {
	data := []byte{
		0x08, 0x01, // dtype = 1
		0x98, 0x06, 0x2a, // field 99, varint 42
		0xa2, 0x01, 0x02, 0xab, 0xcd, // field 20, 2 bytes
		0x38, 0x09, // int_val 9
	}

	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if got.DType != TypeFloat {
		t.Errorf("DType = %v, want TypeFloat", got.DType)
	}
	if !reflect.DeepEqual(got.IntVal, []int32{9}) {
		t.Errorf("IntVal = %v, want [9]", got.IntVal)
	}
}

func TestUnmarshalTruncated(t *testing.T) {
	data := []byte{0x22, 0x0c, 0x00} // content claims 12 bytes, has 1
	if _, err := Unmarshal(data); err == nil {
		t.Error("Unmarshal of truncated data should fail")
	}
}

func TestUnmarshalDoesNotAliasInput(t *testing.T) {
	msg := &Tensor{DType: TypeUint8, Content: []byte{1, 2, 3}}
	data := msg.Marshal()

	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	for i := range data {
		data[i] = 0xff
	}
	if !bytes.Equal(got.Content, []byte{1, 2, 3}) {
		t.Error("Content should be copied out of the input buffer")
	}
}
