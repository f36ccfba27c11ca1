package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown format or reader type.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrNoConvertibleFile indicates a directory contains no file in any
	// recognised format. The directory is skipped, not fatal.
	ErrNoConvertibleFile = errors.New("no convertible file in directory")

	// ErrArchiveFormat indicates a malformed archive export: not a zip
	// container, or a container without story entries.
	ErrArchiveFormat = errors.New("invalid archive export")

	// ErrEncoding indicates a legacy text file that cannot be decoded
	// under CP862 even with lenient substitution.
	ErrEncoding = errors.New("cannot decode legacy text")

	// ErrLegacyConversion indicates the external word-processor
	// conversion of a legacy .doc file failed.
	ErrLegacyConversion = errors.New("legacy document conversion failed")

	// ErrRangeExceeded indicates a numeral outside the supported
	// gematria range. Callers fall back to the raw filename.
	ErrRangeExceeded = errors.New("numeral out of range")
)
