package rdf

import "errors"

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeMalformedDataset indicates a quad violating term position constraints.
	ErrCodeMalformedDataset ErrorCode = "MALFORMED_DATASET"
	// ErrCodeComplexityExceeded indicates a tied blank node group larger than the configured ceiling.
	ErrCodeComplexityExceeded ErrorCode = "COMPLEXITY_EXCEEDED"
	// ErrCodeUnsupportedHashAlgorithm indicates an unrecognized hash algorithm option.
	ErrCodeUnsupportedHashAlgorithm ErrorCode = "UNSUPPORTED_HASH_ALGORITHM"
	// ErrCodeUnknown indicates an error outside the canonicalization error kinds.
	ErrCodeUnknown ErrorCode = "UNKNOWN"
)

var (
	// ErrMalformedDataset indicates a quad violating term position constraints,
	// such as a literal in subject position or a literal graph name.
	ErrMalformedDataset = errors.New("rdf: quad violates term position constraints")
	// ErrComplexityExceeded indicates that a tied blank node group exceeded the
	// configured ceiling during N-degree resolution. The whole canonicalization
	// call aborts; no partial output is produced. Callers may retry with a
	// larger ceiling via OptMaxTiedGroupSize under resource limits they control.
	ErrComplexityExceeded = errors.New("rdf: tied blank node group exceeds complexity ceiling")
	// ErrUnsupportedHashAlgorithm indicates an unrecognized hash algorithm option.
	// It is raised before any canonicalization work begins.
	ErrUnsupportedHashAlgorithm = errors.New("rdf: unsupported hash algorithm")
)

// Code returns the error code for an error, or ErrCodeUnknown if the error
// does not wrap one of the canonicalization sentinels. Returns empty string
// for nil errors.
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}
	switch {
	case errors.Is(err, ErrMalformedDataset):
		return ErrCodeMalformedDataset
	case errors.Is(err, ErrComplexityExceeded):
		return ErrCodeComplexityExceeded
	case errors.Is(err, ErrUnsupportedHashAlgorithm):
		return ErrCodeUnsupportedHashAlgorithm
	}
	return ErrCodeUnknown
}
