package wire

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of the Tensor message.
const (
	fieldDType         protowire.Number = 1
	fieldShape         protowire.Number = 2
	fieldVersionNumber protowire.Number = 3
	fieldContent       protowire.Number = 4
	fieldFloatVal      protowire.Number = 5
	fieldDoubleVal     protowire.Number = 6
	fieldIntVal        protowire.Number = 7
	fieldStringVal     protowire.Number = 8
	fieldScomplexVal   protowire.Number = 9
	fieldInt64Val      protowire.Number = 10
	fieldBoolVal       protowire.Number = 11
	fieldDcomplexVal   protowire.Number = 12
	fieldHalfVal       protowire.Number = 13
	fieldUint32Val     protowire.Number = 16
	fieldUint64Val     protowire.Number = 17
)

// Field numbers of the TensorShape message.
const (
	fieldShapeDim         protowire.Number = 2
	fieldShapeUnknownRank protowire.Number = 3
)

// Field numbers of the Dim message.
const (
	fieldDimSize protowire.Number = 1
	fieldDimName protowire.Number = 2
)

// Marshal encodes the tensor in protobuf wire format. Zero-valued fields
// are omitted and repeated numeric fields use packed encoding.
func (t *Tensor) Marshal() []byte {
	return appendTensor(nil, t)
}

func appendTensor(b []byte, t *Tensor) []byte {
	if t.DType != TypeInvalid {
		b = protowire.AppendTag(b, fieldDType, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(t.DType)) //nolint:gosec // G115: type codes are non-negative.
	}
	if t.Shape != nil {
		b = protowire.AppendTag(b, fieldShape, protowire.BytesType)
		b = protowire.AppendBytes(b, appendShape(nil, t.Shape))
	}
	if t.VersionNumber != 0 {
		b = protowire.AppendTag(b, fieldVersionNumber, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(int64(t.VersionNumber))) //nolint:gosec // G115: two's complement varint.
	}
	if len(t.Content) > 0 {
		b = protowire.AppendTag(b, fieldContent, protowire.BytesType)
		b = protowire.AppendBytes(b, t.Content)
	}
	b = appendPackedFloats(b, fieldFloatVal, t.FloatVal)
	b = appendPackedDoubles(b, fieldDoubleVal, t.DoubleVal)
	b = appendPackedInt32s(b, fieldIntVal, t.IntVal)
	for _, s := range t.StringVal {
		b = protowire.AppendTag(b, fieldStringVal, protowire.BytesType)
		b = protowire.AppendBytes(b, s)
	}
	b = appendPackedFloats(b, fieldScomplexVal, t.ScomplexVal)
	b = appendPackedInt64s(b, fieldInt64Val, t.Int64Val)
	b = appendPackedBools(b, fieldBoolVal, t.BoolVal)
	b = appendPackedDoubles(b, fieldDcomplexVal, t.DcomplexVal)
	b = appendPackedInt32s(b, fieldHalfVal, t.HalfVal)
	b = appendPackedUint32s(b, fieldUint32Val, t.Uint32Val)
	b = appendPackedUint64s(b, fieldUint64Val, t.Uint64Val)
	return b
}

func appendShape(b []byte, s *TensorShape) []byte {
	for _, d := range s.Dims {
		b = protowire.AppendTag(b, fieldShapeDim, protowire.BytesType)
		b = protowire.AppendBytes(b, appendDim(nil, d))
	}
	if s.UnknownRank {
		b = protowire.AppendTag(b, fieldShapeUnknownRank, protowire.VarintType)
		b = protowire.AppendVarint(b, protowire.EncodeBool(true))
	}
	return b
}

func appendDim(b []byte, d Dim) []byte {
	if d.Size != 0 {
		b = protowire.AppendTag(b, fieldDimSize, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(d.Size)) //nolint:gosec // G115: two's complement varint.
	}
	if d.Name != "" {
		b = protowire.AppendTag(b, fieldDimName, protowire.BytesType)
		b = protowire.AppendString(b, d.Name)
	}
	return b
}

func appendPackedFloats(b []byte, num protowire.Number, vals []float32) []byte {
	if len(vals) == 0 {
		return b
	}
	packed := make([]byte, 0, 4*len(vals))
	for _, v := range vals {
		packed = protowire.AppendFixed32(packed, math.Float32bits(v))
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, packed)
}

func appendPackedDoubles(b []byte, num protowire.Number, vals []float64) []byte {
	if len(vals) == 0 {
		return b
	}
	packed := make([]byte, 0, 8*len(vals))
	for _, v := range vals {
		packed = protowire.AppendFixed64(packed, math.Float64bits(v))
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, packed)
}

func appendPackedInt32s(b []byte, num protowire.Number, vals []int32) []byte {
	if len(vals) == 0 {
		return b
	}
	packed := make([]byte, 0, len(vals))
	for _, v := range vals {
		packed = protowire.AppendVarint(packed, uint64(int64(v))) //nolint:gosec // G115: two's complement varint.
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, packed)
}

func appendPackedInt64s(b []byte, num protowire.Number, vals []int64) []byte {
	if len(vals) == 0 {
		return b
	}
	packed := make([]byte, 0, len(vals))
	for _, v := range vals {
		packed = protowire.AppendVarint(packed, uint64(v)) //nolint:gosec // G115: two's complement varint.
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, packed)
}

func appendPackedUint32s(b []byte, num protowire.Number, vals []uint32) []byte {
	if len(vals) == 0 {
		return b
	}
	packed := make([]byte, 0, len(vals))
	for _, v := range vals {
		packed = protowire.AppendVarint(packed, uint64(v))
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, packed)
}

func appendPackedUint64s(b []byte, num protowire.Number, vals []uint64) []byte {
	if len(vals) == 0 {
		return b
	}
	packed := make([]byte, 0, len(vals))
	for _, v := range vals {
		packed = protowire.AppendVarint(packed, v)
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, packed)
}

func appendPackedBools(b []byte, num protowire.Number, vals []bool) []byte {
	if len(vals) == 0 {
		return b
	}
	packed := make([]byte, 0, len(vals))
	for _, v := range vals {
		packed = protowire.AppendVarint(packed, protowire.EncodeBool(v))
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, packed)
}

// Unmarshal decodes a tensor message from protobuf wire format. Repeated
// numeric fields accept both packed and unpacked encodings; unknown fields
// are skipped.
func Unmarshal(data []byte) (*Tensor, error) {
	t := &Tensor{}
	if err := t.unmarshal(data); err != nil {
		return nil, fmt.Errorf("unmarshal tensor: %w", err)
	}
	return t, nil
}

//nolint:gocognit,gocyclo,cyclop,funlen // Wire parsing requires field-by-field switch logic.
func (t *Tensor) unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]

		var (
			m   int
			err error
		)
		switch num {
		case fieldDType:
			var v uint64
			v, m = protowire.ConsumeVarint(data)
			if m < 0 {
				return protowire.ParseError(m)
			}
			t.DType = DataType(v) //nolint:gosec // G115: type codes are small.
		case fieldShape:
			var raw []byte
			raw, m = protowire.ConsumeBytes(data)
			if m < 0 {
				return protowire.ParseError(m)
			}
			if t.Shape == nil {
				t.Shape = &TensorShape{}
			}
			err = t.Shape.unmarshal(raw)
		case fieldVersionNumber:
			var v uint64
			v, m = protowire.ConsumeVarint(data)
			if m < 0 {
				return protowire.ParseError(m)
			}
			t.VersionNumber = int32(v) //nolint:gosec // G115: two's complement varint.
		case fieldContent:
			var raw []byte
			raw, m = protowire.ConsumeBytes(data)
			if m < 0 {
				return protowire.ParseError(m)
			}
			t.Content = append([]byte(nil), raw...)
		case fieldFloatVal:
			m, err = consumeRepeatedFixed32(data, typ, func(v uint32) {
				t.FloatVal = append(t.FloatVal, math.Float32frombits(v))
			})
		case fieldDoubleVal:
			m, err = consumeRepeatedFixed64(data, typ, func(v uint64) {
				t.DoubleVal = append(t.DoubleVal, math.Float64frombits(v))
			})
		case fieldIntVal:
			m, err = consumeRepeatedVarint(data, typ, func(v uint64) {
				t.IntVal = append(t.IntVal, int32(v)) //nolint:gosec // G115: two's complement varint.
			})
		case fieldStringVal:
			var raw []byte
			raw, m = protowire.ConsumeBytes(data)
			if m < 0 {
				return protowire.ParseError(m)
			}
			t.StringVal = append(t.StringVal, append([]byte(nil), raw...))
		case fieldScomplexVal:
			m, err = consumeRepeatedFixed32(data, typ, func(v uint32) {
				t.ScomplexVal = append(t.ScomplexVal, math.Float32frombits(v))
			})
		case fieldInt64Val:
			m, err = consumeRepeatedVarint(data, typ, func(v uint64) {
				t.Int64Val = append(t.Int64Val, int64(v)) //nolint:gosec // G115: two's complement varint.
			})
		case fieldBoolVal:
			m, err = consumeRepeatedVarint(data, typ, func(v uint64) {
				t.BoolVal = append(t.BoolVal, protowire.DecodeBool(v))
			})
		case fieldDcomplexVal:
			m, err = consumeRepeatedFixed64(data, typ, func(v uint64) {
				t.DcomplexVal = append(t.DcomplexVal, math.Float64frombits(v))
			})
		case fieldHalfVal:
			m, err = consumeRepeatedVarint(data, typ, func(v uint64) {
				t.HalfVal = append(t.HalfVal, int32(v)) //nolint:gosec // G115: two's complement varint.
			})
		case fieldUint32Val:
			m, err = consumeRepeatedVarint(data, typ, func(v uint64) {
				t.Uint32Val = append(t.Uint32Val, uint32(v)) //nolint:gosec // G115: values fit in uint32.
			})
		case fieldUint64Val:
			m, err = consumeRepeatedVarint(data, typ, func(v uint64) {
				t.Uint64Val = append(t.Uint64Val, v)
			})
		default:
			m = protowire.ConsumeFieldValue(num, typ, data)
			if m < 0 {
				return protowire.ParseError(m)
			}
		}
		if err != nil {
			return err
		}
		data = data[m:]
	}
	return nil
}

func (s *TensorShape) unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]

		var m int
		switch num {
		case fieldShapeDim:
			var raw []byte
			raw, m = protowire.ConsumeBytes(data)
			if m < 0 {
				return protowire.ParseError(m)
			}
			var d Dim
			if err := d.unmarshal(raw); err != nil {
				return err
			}
			s.Dims = append(s.Dims, d)
		case fieldShapeUnknownRank:
			var v uint64
			v, m = protowire.ConsumeVarint(data)
			if m < 0 {
				return protowire.ParseError(m)
			}
			s.UnknownRank = protowire.DecodeBool(v)
		default:
			m = protowire.ConsumeFieldValue(num, typ, data)
			if m < 0 {
				return protowire.ParseError(m)
			}
		}
		data = data[m:]
	}
	return nil
}

func (d *Dim) unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]

		var m int
		switch num {
		case fieldDimSize:
			var v uint64
			v, m = protowire.ConsumeVarint(data)
			if m < 0 {
				return protowire.ParseError(m)
			}
			d.Size = int64(v) //nolint:gosec // G115: two's complement varint.
		case fieldDimName:
			var raw []byte
			raw, m = protowire.ConsumeBytes(data)
			if m < 0 {
				return protowire.ParseError(m)
			}
			d.Name = string(raw)
		default:
			m = protowire.ConsumeFieldValue(num, typ, data)
			if m < 0 {
				return protowire.ParseError(m)
			}
		}
		data = data[m:]
	}
	return nil
}

// consumeRepeatedVarint decodes one occurrence of a repeated varint field,
// packed or not.
func consumeRepeatedVarint(data []byte, typ protowire.Type, emit func(uint64)) (int, error) {
	switch typ {
	case protowire.BytesType:
		packed, n := protowire.ConsumeBytes(data)
		if n < 0 {
			return 0, protowire.ParseError(n)
		}
		for len(packed) > 0 {
			v, m := protowire.ConsumeVarint(packed)
			if m < 0 {
				return 0, protowire.ParseError(m)
			}
			emit(v)
			packed = packed[m:]
		}
		return n, nil
	case protowire.VarintType:
		v, n := protowire.ConsumeVarint(data)
		if n < 0 {
			return 0, protowire.ParseError(n)
		}
		emit(v)
		return n, nil
	default:
		return 0, fmt.Errorf("unexpected wire type %d for varint field", typ)
	}
}

// consumeRepeatedFixed32 decodes one occurrence of a repeated fixed32 field,
// packed or not.
func consumeRepeatedFixed32(data []byte, typ protowire.Type, emit func(uint32)) (int, error) {
	switch typ {
	case protowire.BytesType:
		packed, n := protowire.ConsumeBytes(data)
		if n < 0 {
			return 0, protowire.ParseError(n)
		}
		for len(packed) > 0 {
			v, m := protowire.ConsumeFixed32(packed)
			if m < 0 {
				return 0, protowire.ParseError(m)
			}
			emit(v)
			packed = packed[m:]
		}
		return n, nil
	case protowire.Fixed32Type:
		v, n := protowire.ConsumeFixed32(data)
		if n < 0 {
			return 0, protowire.ParseError(n)
		}
		emit(v)
		return n, nil
	default:
		return 0, fmt.Errorf("unexpected wire type %d for fixed32 field", typ)
	}
}

// consumeRepeatedFixed64 decodes one occurrence of a repeated fixed64 field,
// packed or not.
func consumeRepeatedFixed64(data []byte, typ protowire.Type, emit func(uint64)) (int, error) {
	switch typ {
	case protowire.BytesType:
		packed, n := protowire.ConsumeBytes(data)
		if n < 0 {
			return 0, protowire.ParseError(n)
		}
		for len(packed) > 0 {
			v, m := protowire.ConsumeFixed64(packed)
			if m < 0 {
				return 0, protowire.ParseError(m)
			}
			emit(v)
			packed = packed[m:]
		}
		return n, nil
	case protowire.Fixed64Type:
		v, n := protowire.ConsumeFixed64(data)
		if n < 0 {
			return 0, protowire.ParseError(n)
		}
		emit(v)
		return n, nil
	default:
		return 0, fmt.Errorf("unexpected wire type %d for fixed64 field", typ)
	}
}
