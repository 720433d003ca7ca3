package spec

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"stub-generator/internal/diagnostic"
)

// LabelIdent is the name of the descriptive label constant bound in every
// generated method.
const LabelIdent = "valueType"

// reserved are identifiers bound by generated methods; a named receiver may
// not shadow them.
var reserved = []string{LabelIdent, "v", "value"}

// Validate checks the structure of a stub file. Tag names are resolved later
// by the planner; this step only checks that every field is well-formed Go.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("file_is_nil", "stub file is nil", "", "")
		return res
	}

	if f.Package == "" {
		res.AddError(diagnostic.CodeMissingField, "package is required", "", "")
	} else if !token.IsIdentifier(f.Package) {
		res.AddError(diagnostic.CodeInvalidIdent, fmt.Sprintf("package %q is not an identifier", f.Package), "", "")
	}

	if !strings.HasSuffix(f.Output, ".go") {
		res.AddError(diagnostic.CodeMissingField, fmt.Sprintf("output %q must be a .go file", f.Output), "", "")
	}

	for _, imp := range f.Imports {
		if _, _, err := ParseImport(imp); err != nil {
			res.AddError(diagnostic.CodeInvalidIdent, err.Error(), "", "")
		}
	}

	if len(f.Serializers) == 0 {
		res.AddError(diagnostic.CodeMissingField, "at least one serializer is required", "", "")
	}

	for i := range f.Serializers {
		validateSerializer(res, &f.Serializers[i])
	}

	return res
}

func validateSerializer(res *diagnostic.Diagnostics, s *Serializer) {
	name := s.Receiver

	if !token.IsIdentifier(s.BaseType()) {
		res.AddError(diagnostic.CodeInvalidIdent,
			fmt.Sprintf("receiver %q must be T or *T", s.Receiver), name, "")
	}

	if s.ReceiverName != "" {
		switch {
		case !token.IsIdentifier(s.ReceiverName):
			res.AddError(diagnostic.CodeInvalidIdent,
				fmt.Sprintf("receiver_name %q is not an identifier", s.ReceiverName), name, "")
		case lo.Contains(reserved, s.ReceiverName):
			res.AddError(diagnostic.CodeInvalidIdent,
				fmt.Sprintf("receiver_name %q collides with a generated binding", s.ReceiverName), name, "")
		}
	}

	if _, err := parser.ParseExpr(s.Ok); err != nil {
		res.AddError(diagnostic.CodeInvalidExpr, fmt.Sprintf("ok type %q: %v", s.Ok, err), name, "")
	}

	if s.Zero != "" {
		if _, err := parser.ParseExpr(s.Zero); err != nil {
			res.AddError(diagnostic.CodeInvalidExpr, fmt.Sprintf("zero %q: %v", s.Zero, err), name, "")
		}
	}

	if len(s.Stubs) == 0 {
		res.AddError(diagnostic.CodeMissingField, "at least one stub is required", name, "")
	}

	for i := range s.Stubs {
		validateStub(res, name, i, &s.Stubs[i])
	}
}

func validateStub(res *diagnostic.Diagnostics, serializer string, index int, st *Stub) {
	where := fmt.Sprintf("stubs[%d]", index)

	if len(st.Tags) == 0 {
		res.AddError(diagnostic.CodeEmptyTags, where+": tags must name at least one method", serializer, "")
	}

	forms := st.Forms()
	switch len(forms) {
	case 0:
		res.AddError(diagnostic.CodeBodyForm,
			where+": one of return, error, body or call is required", serializer, "")
		return
	case 1:
	default:
		res.AddError(diagnostic.CodeBodyForm,
			fmt.Sprintf("%s: only one body form allowed, got %v", where, forms), serializer, "")
		return
	}

	if err := ParseTemplate(forms[0], st.Template()); err != nil {
		res.AddError(diagnostic.CodeInvalidExpr, fmt.Sprintf("%s: %v", where, err), serializer, "")
	}
}

// ParseTemplate checks that a body template is syntactically valid Go for
// its form.
func ParseTemplate(form BodyForm, text string) error {
	switch form {
	case FormError:
		_, err := parser.ParseExpr(text)
		return wrapSyntax(form, err)
	case FormCall:
		expr, err := parser.ParseExpr(text)
		if err != nil {
			return wrapSyntax(form, err)
		}

		switch expr.(type) {
		case *ast.Ident, *ast.SelectorExpr, *ast.IndexExpr, *ast.IndexListExpr:
			return nil
		default:
			return errors.Newf("call %q must name a function", text)
		}
	case FormReturn:
		return wrapSyntax(form, parseFuncBody("return "+text))
	case FormBody:
		return wrapSyntax(form, parseFuncBody(text))
	default:
		return errors.Newf("unknown body form %q", form)
	}
}

func parseFuncBody(stmts string) error {
	_, err := funcBody(stmts)
	return err
}

func funcBody(stmts string) (ast.Node, error) {
	src := "package p\nfunc _() {\n" + stmts + "\n}\n"
	f, err := parser.ParseFile(token.NewFileSet(), "", src, parser.SkipObjectResolution)
	if err != nil {
		return nil, err
	}

	if len(f.Decls) != 1 {
		return nil, errors.New("template escapes the method body")
	}

	return f.Decls[0], nil
}

// References reports whether a template mentions the identifier name.
// The call form always passes the exposed payload. Field and method
// selectors (x.name) do not count. Templates that fail to parse are
// reported as referencing name.
func References(form BodyForm, text, name string) bool {
	var (
		node ast.Node
		err  error
	)

	switch form {
	case FormCall:
		return true
	case FormError:
		node, err = parser.ParseExpr(text)
	case FormReturn:
		node, err = funcBody("return " + text)
	default:
		node, err = funcBody(text)
	}

	if err != nil {
		return true
	}

	found := false
	ast.Inspect(node, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.SelectorExpr:
			ast.Inspect(n.X, func(x ast.Node) bool {
				if id, ok := x.(*ast.Ident); ok && id.Name == name {
					found = true
				}

				return !found
			})

			return false
		case *ast.Ident:
			if n.Name == name {
				found = true
			}
		}

		return !found
	})

	return found
}

func wrapSyntax(form BodyForm, err error) error {
	if err == nil {
		return nil
	}

	return errors.Wrapf(err, "%s template", form)
}

// ParseImport splits an import entry into its optional name and path.
func ParseImport(entry string) (name, path string, err error) {
	fields := strings.Fields(entry)

	switch len(fields) {
	case 1:
		path = fields[0]
	case 2:
		name, path = fields[0], fields[1]
		if name != "_" && name != "." && !token.IsIdentifier(name) {
			return "", "", errors.Newf("import %q: invalid name %q", entry, name)
		}
	default:
		return "", "", errors.Newf("import %q: expected \"path\" or \"name path\"", entry)
	}

	path = strings.Trim(path, `"`)
	if path == "" {
		return "", "", errors.Newf("import %q: empty path", entry)
	}

	return name, path, nil
}
