package plan

import (
	"go/ast"
	"go/parser"
)

// ZeroValue returns a zero value expression for a Go type expression.
// Types that have no literal zero fall back to *new(T).
func ZeroValue(typ string) string {
	expr, err := parser.ParseExpr(typ)
	if err != nil {
		return "*new(" + typ + ")"
	}

	switch t := expr.(type) {
	case *ast.Ident:
		return zeroValueForBasicType(t.Name)
	case *ast.StarExpr, *ast.MapType, *ast.ChanType, *ast.FuncType, *ast.InterfaceType:
		return "nil"
	case *ast.ArrayType:
		if t.Len == nil {
			return "nil"
		}

		return typ + "{}"
	case *ast.StructType:
		return typ + "{}"
	case *ast.ParenExpr:
		return ZeroValue(typ[1 : len(typ)-1])
	default:
		return "*new(" + typ + ")"
	}
}

// zeroValueForBasicType returns the zero value for a predeclared type name.
func zeroValueForBasicType(name string) string {
	switch name {
	case "string":
		return `""`
	case "int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
		"float32", "float64", "complex64", "complex128",
		"byte", "rune":
		return "0"
	case "bool":
		return "false"
	case "any", "error":
		return "nil"
	default:
		return "*new(" + name + ")"
	}
}
