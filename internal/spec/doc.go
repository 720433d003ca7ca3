// Package spec provides the stub file schema, parsing and structural
// validation.
//
// A stub file is the declarative input of stub-generator. It names the
// receiver types to implement ser.Serializer for and, per receiver, groups of
// method tags that share one body template.
//
// # Schema Overview
//
//	version: "1"
//	package: example
//	output: serializer_stubs.go
//	imports: [fmt]
//	serializers:
//	  - receiver: MySerializer
//	    ok: int64
//	    assert: true
//	    stubs:
//	      # one template, many tags
//	      - error: ErrCannotSerialize
//	        tags: [bool, i8, i16]
//	      # a single tag, echoing the exposed value
//	      - return: "0, fmt.Errorf(\"%s %q\", valueType, v)"
//	        tags: char
//
// The same schema is accepted in TOML when the file ends in ".toml".
//
// # Body Forms
//
// Every stub sets exactly one of:
//   - return: an expression list rendered verbatim after "return"
//   - error: an error expression returned with the zero result
//   - body: statements that must return
//   - call: a function called as fn(valueType) or fn(valueType, v)
//
// # Bindings
//
// Inside every generated method the constant valueType holds the tag name.
// Methods with a payload expose it as v (primitives, str, bytes) or value
// (some, newtype_struct, newtype_variant). All other parameters are blank.
package spec
