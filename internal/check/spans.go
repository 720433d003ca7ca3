package check

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"

	"github.com/cockroachdb/errors"

	"stub-generator/internal/tag"
)

// Span is the line range of one generated declaration.
type Span struct {
	// Serializer is the receiver type, "T" or "*T".
	Serializer string
	// Tag is zero for the interface assertion.
	Tag   tag.Tag
	Start int
	End   int
}

// Contains reports whether line falls inside the span.
func (s Span) Contains(line int) bool {
	return line >= s.Start && line <= s.End
}

// Spans parses generated source and returns the span of every stub method
// and interface assertion, in source order.
func Spans(filename string, src []byte) ([]Span, error) {
	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, filename, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, errors.Wrap(err, "parsing generated file")
	}

	var spans []Span

	for _, decl := range file.Decls {
		start := fset.Position(decl.Pos()).Line
		end := fset.Position(decl.End()).Line

		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Recv == nil || len(d.Recv.List) != 1 {
				continue
			}

			t, ok := tag.ByMethod(d.Name.Name)
			if !ok {
				continue
			}

			spans = append(spans, Span{
				Serializer: types.ExprString(d.Recv.List[0].Type),
				Tag:        t,
				Start:      start,
				End:        end,
			})
		case *ast.GenDecl:
			if d.Tok != token.VAR {
				continue
			}

			for _, s := range d.Specs {
				vs, ok := s.(*ast.ValueSpec)
				if !ok || len(vs.Values) != 1 {
					continue
				}

				if recv := assertedType(vs.Values[0]); recv != "" {
					spans = append(spans, Span{Serializer: recv, Start: start, End: end})
				}
			}
		}
	}

	return spans, nil
}

// assertedType extracts the receiver from (*T)(nil) or *new(T).
func assertedType(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.CallExpr:
		if paren, ok := e.Fun.(*ast.ParenExpr); ok {
			return types.ExprString(paren.X)
		}
	case *ast.StarExpr:
		if call, ok := e.X.(*ast.CallExpr); ok && len(call.Args) == 1 {
			if fn, ok := call.Fun.(*ast.Ident); ok && fn.Name == "new" {
				return types.ExprString(call.Args[0])
			}
		}
	}

	return ""
}
