// Package plan resolves a validated stub file into the list of methods to
// generate.
//
// Resolution pipeline:
//  1. Validate the stub file structure (spec.Validate)
//  2. For each serializer, expand every stub group into one Method per tag,
//     preserving declaration order
//  3. Reject unknown tags (with suggestions) and methods defined twice for
//     the same receiver base type
//  4. Derive the zero value of the Ok type used by the error body form
//  5. Report incomplete method sets for asserted serializers
//
// Resolution is pure: the same stub file always yields the same plan.
package plan
