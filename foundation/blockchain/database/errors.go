package database

import (
	"errors"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/rlp"
)

// Set of decode error kinds. A DecodeError always carries exactly one of them.
var (
	ErrTruncated     = errors.New("truncated input")
	ErrMalformed     = errors.New("malformed encoding")
	ErrTrailingBytes = errors.New("trailing bytes after value")
)

// ErrInvalidSignature is returned when the sender of a transaction can't be
// recovered from its signature.
var ErrInvalidSignature = errors.New("invalid signature")

// DecodeError is returned when raw bytes can't be decoded into a transaction.
type DecodeError struct {
	Kind error
	Err  error
}

func (de *DecodeError) Error() string {
	return fmt.Sprintf("decode: %s: %s", de.Kind, de.Err)
}

// Unwrap allows errors.Is to match both the kind and the underlying error.
func (de *DecodeError) Unwrap() []error {
	return []error{de.Kind, de.Err}
}

// IsDecodeError checks if an error of type DecodeError exists.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

// =============================================================================

// toDecodeError classifies an error returned by the rlp package.
func toDecodeError(err error) error {
	var kind error
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, rlp.ErrValueTooLarge):
		kind = ErrTruncated
	case errors.Is(err, rlp.ErrMoreThanOneValue):
		kind = ErrTrailingBytes
	default:
		kind = ErrMalformed
	}

	return &DecodeError{Kind: kind, Err: err}
}
