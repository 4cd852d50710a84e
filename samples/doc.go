// Copyright 2025 TensorWire Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package samples assembles named wire tensors into the dense sample
// matrices that models consume.
//
// # Overview
//
// A serving request carries one wire tensor per feature, each a single
// column of nbSamples values. Assemble decodes them and packs one matrix
// with a column per feature, ordered by the feature name list:
//
//	m, _ := samples.Assemble(inputs, []string{"age", "weight"}, 2)
//	// m has shape (nbSamples, 2): column 0 is age, column 1 is weight.
//
// Assembly is whole or not at all: a missing feature, a sample count
// mismatch, or a feature that is not a single column fails the entire
// request before any partial matrix escapes.
//
// # Matrices
//
// The assembled matrix defaults to float64 elements; WithElementType
// selects another element type, including byte-strings for categorical
// models. ToMat bridges a numeric matrix into gonum for downstream linear
// algebra.
//
// # Record Fields
//
// FieldConverters builds per-field parsers for textual records, mapping
// the schema type names "int", "str" and "bool" to native element values.
package samples
