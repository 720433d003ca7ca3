// Package tag defines the closed set of method tags understood by the
// generator.
//
// Each tag names exactly one method of ser.Serializer and carries the fixed
// description of that method: Go name, parameters, which parameter (if any)
// is exposed to templates and whether the method returns Ok or a compound
// state. The set cannot be extended at run time.
package tag
