// Copyright 2025 TensorWire Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package samples

import (
	"gonum.org/v1/gonum/mat"

	"github.com/tensorwire-ml/tensorwire/internal/samples"
	"github.com/tensorwire-ml/tensorwire/tensor"
	"github.com/tensorwire-ml/tensorwire/wire"
)

// Type aliases for public API

// Option configures Assemble.
type Option = samples.Option

// FieldConverter parses one textual record field into its native element
// value.
type FieldConverter = samples.FieldConverter

// Sentinel errors reported by sample assembly. Callers match them with
// errors.Is.
var (
	ErrMissingFeature   = samples.ErrMissingFeature
	ErrInvalidLength    = samples.ErrInvalidLength
	ErrInvalidShape     = samples.ErrInvalidShape
	ErrUnknownFieldType = samples.ErrUnknownFieldType
)

// Assemble decodes one wire tensor per named feature and packs them into
// a dense (nbSamples, nbFeatures) matrix, one feature per column in the
// order of featureNames.
//
// Example:
//
//	m, _ := samples.Assemble(inputs, []string{"age", "weight"}, 2)
func Assemble(inputs map[string]*wire.Tensor, featureNames []string, nbFeatures int, opts ...Option) (*tensor.Dense, error) {
	return samples.Assemble(inputs, featureNames, nbFeatures, opts...)
}

// WithElementType sets the element type of the assembled matrix.
// The default is tensor.Float64.
func WithElementType(dt tensor.DataType) Option {
	return samples.WithElementType(dt)
}

// ToMat converts a rank-2 numeric tensor into a gonum dense matrix.
func ToMat(d *tensor.Dense) (*mat.Dense, error) {
	return samples.ToMat(d)
}

// FieldConverters builds one converter per field from a field name to
// type name mapping. Supported type names are "int", "str" and "bool".
func FieldConverters(types map[string]string) (map[string]FieldConverter, error) {
	return samples.FieldConverters(types)
}
