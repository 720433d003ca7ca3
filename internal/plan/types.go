package plan

import (
	"stub-generator/internal/spec"
	"stub-generator/internal/tag"
)

// Plan is the final output of the resolution pipeline.
// It contains everything needed for code generation.
type Plan struct {
	// Package is the package clause of the generated file.
	Package string
	// Output is the path of the generated file.
	Output string
	// SerPath is the import path of the serializer contract package.
	SerPath string
	// Imports are the extra imports requested by the stub file.
	Imports []Import
	// Serializers holds one entry per receiver type, in file order.
	Serializers []SerializerPlan
}

// Import is a single import of the generated file.
type Import struct {
	Name string
	Path string
}

// SerializerPlan lists the methods generated for one receiver.
type SerializerPlan struct {
	// Receiver is the receiver type as written, "T" or "*T".
	Receiver string
	// ReceiverName is the receiver identifier, empty for an anonymous receiver.
	ReceiverName string
	// BaseType is the receiver type without pointer.
	BaseType string
	// Ok is the success type.
	Ok string
	// Zero is the zero value expression of Ok.
	Zero string
	// Assert requests a compile-time interface assertion.
	Assert bool
	// Methods in generation order.
	Methods []Method
	// Missing are the tags with no generated method.
	Missing []tag.Tag
}

// Method is a single generated stub.
type Method struct {
	Tag  tag.Tag
	Info tag.Info
	// Form is the body form of the originating stub group.
	Form spec.BodyForm
	// Template is the body template text.
	Template string
	// Stub is the index of the originating stub group.
	Stub int
	// Binds is set when the template uses the exposed payload, which is then
	// named in the signature instead of "_".
	Binds bool
}

// IsPointer reports whether the receiver is a pointer.
func (s *SerializerPlan) IsPointer() bool {
	return s.Receiver != s.BaseType
}

// MethodCount returns the number of methods across all serializers.
func (p *Plan) MethodCount() int {
	n := 0
	for i := range p.Serializers {
		n += len(p.Serializers[i].Methods)
	}

	return n
}
