package gen

import (
	"strings"

	"stub-generator/internal/plan"
	"stub-generator/internal/spec"
	"stub-generator/internal/tag"
)

// receiver renders the receiver clause, "*T" or "s *T".
func receiver(sp *plan.SerializerPlan) string {
	if sp.ReceiverName == "" {
		return sp.Receiver
	}

	return sp.ReceiverName + " " + sp.Receiver
}

// params renders the parameter list. Only the exposed payload is named, and
// only when the template uses it.
func params(m plan.Method) string {
	info := m.Info
	parts := make([]string, len(info.Params))
	for i, p := range info.Params {
		name := "_"
		if m.Binds && i == info.Exposed {
			name = p.Name
		}

		parts[i] = name + " " + p.Type
	}

	return strings.Join(parts, ", ")
}

// result renders the first result type: Ok, or the compound state interface.
func result(ser, ok string, info tag.Info) string {
	if info.State == "" {
		return ok
	}

	return ser + "." + info.State + "[" + ok + "]"
}

// zero is the zero value of the first result.
func zero(sp *plan.SerializerPlan, info tag.Info) string {
	if info.State != "" {
		return "nil"
	}

	return sp.Zero
}

// assertion renders the compile-time check that the receiver implements
// ser.Serializer.
func assertion(ser string, sp *plan.SerializerPlan) string {
	iface := ser + ".Serializer[" + sp.Ok + "]"
	if sp.IsPointer() {
		return "var _ " + iface + " = (" + sp.Receiver + ")(nil)"
	}

	return "var _ " + iface + " = *new(" + sp.BaseType + ")"
}

// body renders the statements following the label constant.
func body(sp *plan.SerializerPlan, m plan.Method) []string {
	text := strings.TrimSpace(m.Template)

	switch m.Form {
	case spec.FormReturn:
		return lines("return " + text)
	case spec.FormError:
		return lines("return " + zero(sp, m.Info) + ", " + text)
	case spec.FormCall:
		args := spec.LabelIdent
		if p, ok := m.Info.ExposedParam(); ok {
			args += ", " + p.Name
		}

		return []string{"return " + text + "(" + args + ")"}
	default:
		return lines(text)
	}
}

func lines(text string) []string {
	return strings.Split(strings.TrimRight(text, "\n"), "\n")
}
