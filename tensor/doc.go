// Copyright 2025 TensorWire Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense in-memory tensors that TensorWire
// encodes, decodes and assembles.
//
// # Overview
//
// A Dense tensor is a row-major array with a shape, an element type and a
// flat storage buffer. Tensors are built from Go slices or nested slice
// literals and accessed through typed zero-copy views:
//
//	d, _ := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	rows := d.Shape()[0]       // 2
//	data := d.AsFloat32()      // typed view over the storage
//
// # Element Types
//
// The DataType enum covers the element types that cross the wire:
//   - float16, float32, float64 (floating-point)
//   - int8, int16, int32, int64 (signed integers)
//   - uint8, uint16, uint32, uint64 (unsigned integers)
//   - bool (boolean masks)
//   - complex64, complex128 (complex pairs)
//   - byte-strings (String)
//
// Numeric tensors convert between element types with Cast, which follows
// Go conversion semantics: narrowing wraps, float to int truncates.
//
// # Byte-String Tensors
//
// String tensors hold one byte-string per element instead of fixed-width
// values. They have no flat byte buffer and no Cast to or from numeric
// types; AsBytesList exposes the elements.
//
// # Nested Literals
//
// FromNested builds a tensor from a nested slice literal, inferring both
// the shape and the element type from the leaves:
//
//	d, _ := tensor.FromNested([][]int{{1, 2}, {3, 4}})  // Int64, Shape{2, 2}
//
// FromNestedAs targets an explicit element type instead, converting the
// leaves as they are placed.
package tensor
