package spec

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// DefaultSerPath is the import path of the serializer contract package.
const DefaultSerPath = "stub-generator/ser"

// File represents the root of a stub definition file.
// It is the declarative input of one generator run and produces one Go file.
type File struct {
	// Version of the stub file schema (for future compatibility).
	Version string `yaml:"version,omitempty" toml:"version,omitempty"`

	// Package is the package clause of the generated file.
	Package string `yaml:"package" toml:"package"`

	// Output is the generated file path, relative to the stub file.
	Output string `yaml:"output,omitempty" toml:"output,omitempty"`

	// Imports lists packages referenced by the templates.
	// Entries are an import path, optionally preceded by a name: "errs errors".
	Imports []string `yaml:"imports,omitempty" toml:"imports,omitempty"`

	// SerPath overrides the import path of the ser package.
	SerPath string `yaml:"ser,omitempty" toml:"ser,omitempty"`

	// Serializers lists the receiver types to generate stubs for.
	Serializers []Serializer `yaml:"serializers" toml:"serializers"`

	// Dir is the directory of the loaded file. Empty for parsed data.
	Dir string `yaml:"-" toml:"-"`
}

// Serializer describes the stubs of one receiver type.
type Serializer struct {
	// Receiver is the receiver type, "T" or "*T".
	Receiver string `yaml:"receiver" toml:"receiver"`

	// ReceiverName names the receiver in generated methods so templates can
	// use it. The receiver is anonymous when empty.
	ReceiverName string `yaml:"receiver_name,omitempty" toml:"receiver_name,omitempty"`

	// Ok is the success type of the serializer. Defaults to struct{}.
	Ok string `yaml:"ok,omitempty" toml:"ok,omitempty"`

	// Zero is the zero value of Ok used by the error body form.
	// Derived from Ok when empty.
	Zero string `yaml:"zero,omitempty" toml:"zero,omitempty"`

	// Assert emits a compile-time assertion that the receiver implements
	// ser.Serializer[Ok].
	Assert bool `yaml:"assert,omitempty" toml:"assert,omitempty"`

	// Stubs are the stub groups, each sharing one body template.
	Stubs []Stub `yaml:"stubs" toml:"stubs"`
}

// BaseType returns the receiver type name without pointer.
func (s *Serializer) BaseType() string {
	return strings.TrimPrefix(strings.TrimSpace(s.Receiver), "*")
}

// Stub is one invocation of the generator: a body template applied to an
// ordered list of tags. Exactly one body form must be set.
type Stub struct {
	// Return is an expression list rendered verbatim after "return".
	Return string `yaml:"return,omitempty" toml:"return,omitempty"`

	// Error is an error expression; the generated method returns the zero
	// result together with it.
	Error string `yaml:"error,omitempty" toml:"error,omitempty"`

	// Body is a statement list that must return.
	Body string `yaml:"body,omitempty" toml:"body,omitempty"`

	// Call names a function receiving the label and, when exposed, the value
	// explicitly: return fn(valueType, v).
	Call string `yaml:"call,omitempty" toml:"call,omitempty"`

	// Tags names the methods to generate: a single tag or a list.
	Tags TagList `yaml:"tags" toml:"tags"`
}

// BodyForm identifies how a stub body is rendered.
type BodyForm string

const (
	FormNone   BodyForm = ""
	FormReturn BodyForm = "return"
	FormError  BodyForm = "error"
	FormBody   BodyForm = "body"
	FormCall   BodyForm = "call"
)

// Forms returns the body forms set on the stub, in a fixed order.
func (s *Stub) Forms() []BodyForm {
	var forms []BodyForm

	for _, f := range []struct {
		form BodyForm
		text string
	}{
		{FormReturn, s.Return},
		{FormError, s.Error},
		{FormBody, s.Body},
		{FormCall, s.Call},
	} {
		if strings.TrimSpace(f.text) != "" {
			forms = append(forms, f.form)
		}
	}

	return forms
}

// Form returns the single body form of the stub, or FormNone when zero or
// several forms are set.
func (s *Stub) Form() BodyForm {
	forms := s.Forms()
	if len(forms) != 1 {
		return FormNone
	}

	return forms[0]
}

// Template returns the text of the stub's body form.
func (s *Stub) Template() string {
	switch s.Form() {
	case FormReturn:
		return s.Return
	case FormError:
		return s.Error
	case FormBody:
		return s.Body
	case FormCall:
		return s.Call
	default:
		return ""
	}
}

// TagList is a list of tag names that can be unmarshaled from a single string
// or a list of strings.
type TagList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *TagList) UnmarshalYAML(unmarshal func(any) error) error {
	var single string
	if err := unmarshal(&single); err == nil {
		*l = []string{single}
		return nil
	}

	var multi []string
	if err := unmarshal(&multi); err == nil {
		*l = multi
		return nil
	}

	return errors.New("expected tag or list of tags")
}

// UnmarshalTOML implements toml.Unmarshaler.
func (l *TagList) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		*l = []string{v}
		return nil
	case []any:
		out := make([]string, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return errors.Newf("tags[%d]: expected string, got %T", i, item)
			}

			out = append(out, s)
		}

		*l = out

		return nil
	default:
		return errors.Newf("expected tag or list of tags, got %T", data)
	}
}
