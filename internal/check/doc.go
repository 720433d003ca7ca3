// Package check type-checks a generated stub file in the context of its
// target package before it is written.
//
// The package is loaded with golang.org/x/tools/go/packages, overlaying the
// generated content. Each type error is attributed to the method, and thus
// the tag, whose lines contain it.
package check
