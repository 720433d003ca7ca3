// Package gen provides deterministic Go code generation for serializer stubs.
//
// Generation approach uses text/template + golang.org/x/tools/imports for
// readable, gofmt-clean Go code.
//
// Every generated method:
//   - has the exact signature of its ser.Serializer method
//   - names the exposed payload v or value and every other parameter _
//   - binds the constant valueType to the tag name
//   - evaluates the stub's body template (return, error, body or call form)
package gen
