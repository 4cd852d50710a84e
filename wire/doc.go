// Copyright 2025 TensorWire Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package wire implements the TensorWire codec: a compact protobuf tensor
// format exchanged with model serving systems.
//
// # Overview
//
// A wire Tensor carries an element type code, a shape, and either a raw
// little-endian byte buffer or per-type value lists. The codec converts
// between wire tensors and in-memory tensor.Dense values:
//
//	wt, _ := wire.Encode([]float64{1, 2, 3})
//	raw := wt.Marshal()                      // protobuf bytes
//
//	back, _ := wire.Unmarshal(raw)
//	d, _ := wire.Decode(back)               // *tensor.Dense, Float32
//
// # Encoding
//
// Encode shrinks payloads before they cross the wire. Float64 elements
// always narrow to float32; int64 elements narrow to int32 only when every
// value survives the round trip. Numeric tensors travel as raw bytes in
// row-major order, byte-string tensors as one value list entry per
// element.
//
// # Decoding
//
// Decode prefers the raw byte buffer and falls back to the value list for
// the tensor's element type. int32 and int64 tensors share one integer
// list. A short value list is padded by repeating its last value, which
// WithStrictLength turns into an error; an empty list yields a zero-valued
// tensor.
//
// # Type Registry
//
// DataTypeOf and NativeOf map between wire type codes and native element
// types. Both directions come from one table, so the mappings cannot
// drift apart.
package wire
