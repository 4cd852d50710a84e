package wire

import (
	"errors"

	"github.com/tensorwire-ml/tensorwire/internal/tensor"
)

// Sentinel errors for codec failures. Callers match them with errors.Is;
// messages add context per call site.
var (
	// ErrUnknownNativeType reports an element type with no wire type code.
	ErrUnknownNativeType = errors.New("no wire type for native element type")

	// ErrUnknownDataType reports a wire type code with no native element type.
	ErrUnknownDataType = errors.New("unknown wire type code")

	// ErrUnsupportedEncoding reports a wire tensor whose payload has no
	// decode source for its element type.
	ErrUnsupportedEncoding = errors.New("unsupported tensor encoding")

	// ErrContentSize reports raw content whose byte length does not match
	// the tensor's element type and shape.
	ErrContentSize = errors.New("content size mismatch")

	// ErrShortValues reports a value list shorter than the shape requires
	// when padding is disabled.
	ErrShortValues = errors.New("value list shorter than tensor")

	// ErrExcessValues reports a value list longer than the shape allows.
	ErrExcessValues = errors.New("value list longer than tensor")
)

// ErrInvalidStringElement reports a value that is not a byte-string where a
// byte-string tensor requires one. It aliases the tensor builder's sentinel,
// so errors.Is matches either name.
var ErrInvalidStringElement = tensor.ErrStringElement
