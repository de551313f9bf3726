package rdf

import "strings"

// HashAlgorithm identifies the hash function used for blank node fingerprints.
type HashAlgorithm string

const (
	// HashSHA256 selects SHA-256, the default and conformance-tested algorithm.
	HashSHA256 HashAlgorithm = "sha-256"
	// HashSHA384 selects SHA-384.
	HashSHA384 HashAlgorithm = "sha-384"
)

// ParseHashAlgorithm normalizes a hash algorithm name.
func ParseHashAlgorithm(value string) (HashAlgorithm, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "sha-256", "sha256":
		return HashSHA256, true
	case "sha-384", "sha384":
		return HashSHA384, true
	default:
		return "", false
	}
}

const (
	// DefaultLabelPrefix is the canonical blank node label prefix.
	DefaultLabelPrefix = "c14n"
	// DefaultMaxTiedGroupSize bounds permutation search to 6! orderings per
	// tied group. Groups that large only arise in highly automorphic inputs;
	// raise the ceiling explicitly for trusted data.
	DefaultMaxTiedGroupSize = 6
)

// Options configures canonicalization behavior.
type Options struct {
	// HashAlgorithm selects the blank node fingerprint hash.
	HashAlgorithm HashAlgorithm

	// LabelPrefix is prepended to issued canonical labels. Only the default
	// "c14n" prefix produces conformance-tested output; see Conformant.
	LabelPrefix string

	// MaxTiedGroupSize is the complexity ceiling: the largest group of
	// blank nodes sharing a hash that N-degree resolution will permute.
	// Larger groups abort with ErrComplexityExceeded before enumeration.
	MaxTiedGroupSize int
}

// Conformant reports whether the options stay on the conformance-tested
// path. A custom label prefix yields output that is internally consistent
// but not comparable against independent canonicalizers, which expect the
// literal "c14n" prefix.
func (o Options) Conformant() bool {
	return o.LabelPrefix == DefaultLabelPrefix
}

// Option configures canonicalization behavior.
type Option func(*Options)

// OptHashAlgorithm selects the blank node fingerprint hash algorithm.
func OptHashAlgorithm(alg HashAlgorithm) Option {
	return func(opts *Options) {
		opts.HashAlgorithm = alg
	}
}

// OptLabelPrefix overrides the canonical label prefix. Non-default prefixes
// are explicitly non-conformant; see Options.Conformant.
func OptLabelPrefix(prefix string) Option {
	return func(opts *Options) {
		opts.LabelPrefix = prefix
	}
}

// OptMaxTiedGroupSize sets the complexity ceiling on tied group size.
// There is no way to disable the ceiling: values below 1 are ignored and
// leave the current ceiling (DefaultMaxTiedGroupSize unless another option
// already changed it) in place.
func OptMaxTiedGroupSize(n int) Option {
	return func(opts *Options) {
		if n >= 1 {
			opts.MaxTiedGroupSize = n
		}
	}
}

func defaultOptions() Options {
	return Options{
		HashAlgorithm:    HashSHA256,
		LabelPrefix:      DefaultLabelPrefix,
		MaxTiedGroupSize: DefaultMaxTiedGroupSize,
	}
}

func applyOptions(opts []Option) Options {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
