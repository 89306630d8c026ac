// SPDX-License-Identifier: MIT

// Package lincomb: functional options for the constructors New and FromTerms.
//
// Defaults are strict: zero coefficients and repeated tensors are rejected.
// Each WithX only relaxes one rule; options are idempotent.
package lincomb

const (
	// DefaultPruneZeros keeps construction strict about zero coefficients.
	DefaultPruneZeros = false

	// DefaultMergeDuplicates keeps FromTerms strict about repeated tensors.
	DefaultMergeDuplicates = false
)

// Option mutates construction options.
type Option func(*options)

type options struct {
	pruneZeros      bool // drop zero coefficients instead of failing
	mergeDuplicates bool // sum repeated tensors in FromTerms
}

// WithPruneZeros silently drops zero coefficients. With WithMergeDuplicates
// it also drops tensors whose merged coefficient is zero.
func WithPruneZeros() Option {
	return func(o *options) { o.pruneZeros = true }
}

// WithMergeDuplicates makes FromTerms add up coefficients of repeated
// tensors instead of failing.
func WithMergeDuplicates() Option {
	return func(o *options) { o.mergeDuplicates = true }
}

// gatherOptions resolves opts over the defaults.
func gatherOptions(opts ...Option) options {
	o := options{
		pruneZeros:      DefaultPruneZeros,
		mergeDuplicates: DefaultMergeDuplicates,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
