package plan

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"stub-generator/internal/diagnostic"
	"stub-generator/internal/spec"
	"stub-generator/internal/tag"
)

// methodKey identifies a method in the method set of a receiver base type.
// T and *T share the key, so defining a tag on both is a conflict.
type methodKey struct {
	base string
	tag  tag.Tag
}

// definition records where a method was first defined.
type definition struct {
	receiver string
	stub     int
}

// Resolver performs the resolution pipeline.
type Resolver struct {
	file    *spec.File
	defined map[methodKey]definition
}

// NewResolver creates a new Resolver.
func NewResolver(f *spec.File) *Resolver {
	return &Resolver{
		file:    f,
		defined: make(map[methodKey]definition),
	}
}

// Resolve validates and resolves a stub file. The plan is nil whenever the
// diagnostics contain errors.
func Resolve(f *spec.File) (*Plan, *diagnostic.Diagnostics) {
	return NewResolver(f).Resolve()
}

// Resolve runs the full resolution pipeline.
func (r *Resolver) Resolve() (*Plan, *diagnostic.Diagnostics) {
	diags := spec.Validate(r.file)
	if diags.HasErrors() {
		return nil, diags
	}

	p := &Plan{
		Package: r.file.Package,
		Output:  r.file.OutputPath(),
		SerPath: r.file.SerPath,
	}

	for _, entry := range r.file.Imports {
		name, path, _ := spec.ParseImport(entry)
		p.Imports = append(p.Imports, Import{Name: name, Path: path})
	}

	for i := range r.file.Serializers {
		p.Serializers = append(p.Serializers, r.resolveSerializer(&r.file.Serializers[i], diags))
	}

	if diags.HasErrors() {
		return nil, diags
	}

	return p, diags
}

func (r *Resolver) resolveSerializer(s *spec.Serializer, diags *diagnostic.Diagnostics) SerializerPlan {
	sp := SerializerPlan{
		Receiver:     strings.TrimSpace(s.Receiver),
		ReceiverName: s.ReceiverName,
		BaseType:     s.BaseType(),
		Ok:           strings.TrimSpace(s.Ok),
		Zero:         strings.TrimSpace(s.Zero),
		Assert:       s.Assert,
	}

	if sp.Zero == "" {
		sp.Zero = ZeroValue(sp.Ok)
	}

	for i := range s.Stubs {
		st := &s.Stubs[i]

		for _, name := range st.Tags {
			t, ok := tag.Lookup(name)
			if !ok {
				diags.AddError(diagnostic.CodeUnknownTag,
					fmt.Sprintf("stubs[%d]: unknown tag %q", i, name),
					sp.Receiver, name, tag.Suggest(name)...)

				continue
			}

			if !r.define(sp, t, i, diags) {
				continue
			}

			sp.Methods = append(sp.Methods, Method{
				Tag:      t,
				Info:     t.Info(),
				Form:     st.Form(),
				Template: st.Template(),
				Stub:     i,
				Binds:    binds(t.Info(), st),
			})
		}
	}

	generated := lo.Map(sp.Methods, func(m Method, _ int) tag.Tag { return m.Tag })
	sp.Missing = lo.Without(tag.All(), generated...)

	if sp.Assert && len(sp.Missing) > 0 {
		missing := lo.Map(sp.Missing, func(t tag.Tag, _ int) string { return t.String() })
		diags.AddInfo(diagnostic.CodeIncompleteMethod,
			fmt.Sprintf("%d of %d methods generated; the assertion needs hand-written %s",
				len(sp.Methods), tag.Total, strings.Join(missing, ", ")),
			sp.Receiver, "")
	}

	return sp
}

// define records a method definition and reports a conflict when the method
// already exists for the receiver base type.
func (r *Resolver) define(sp SerializerPlan, t tag.Tag, stub int, diags *diagnostic.Diagnostics) bool {
	key := methodKey{base: sp.BaseType, tag: t}

	prev, exists := r.defined[key]
	if !exists {
		r.defined[key] = definition{receiver: sp.Receiver, stub: stub}
		return true
	}

	diags.AddError(diagnostic.CodeDuplicateMethod,
		fmt.Sprintf("stubs[%d]: %s.%s already defined by %s stubs[%d]",
			stub, sp.BaseType, t.Method(), prev.receiver, prev.stub),
		sp.Receiver, t.String())

	return false
}

// binds reports whether the stub's template reaches the exposed payload.
func binds(info tag.Info, st *spec.Stub) bool {
	p, ok := info.ExposedParam()
	if !ok {
		return false
	}

	return spec.References(st.Form(), st.Template(), p.Name)
}
