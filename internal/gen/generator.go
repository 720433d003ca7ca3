package gen

import (
	"bytes"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"golang.org/x/tools/imports"

	"stub-generator/internal/common"
	"stub-generator/internal/plan"
)

// Header is the first line of every generated file.
const Header = "// Code generated by stub-generator. DO NOT EDIT."

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// WriteDebug writes unformattable output next to the target as
	// *.unformatted.go.
	WriteDebug bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{WriteDebug: true}
}

// Generator generates Go code from a resolved plan.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Path is where the file is written.
	Path string
	// Content is the formatted Go source code.
	Content []byte
}

// templateData holds all data needed for the stubs template.
type templateData struct {
	Header      string
	Package     string
	Imports     [][]importSpec
	Serializers []serializerData
}

type importSpec struct {
	Name string
	Path string
}

type serializerData struct {
	// Assert is the interface assertion statement, empty when disabled.
	Assert  string
	Methods []methodData
}

type methodData struct {
	Receiver string
	Name     string
	Params   string
	Result   string
	Label    string
	Body     []string
}

// Generate renders the plan into a single formatted Go file.
func (g *Generator) Generate(p *plan.Plan) (*GeneratedFile, error) {
	if p == nil {
		return nil, errors.New("plan is nil")
	}

	data := g.buildTemplateData(p)

	var buf bytes.Buffer
	if err := stubsTemplate.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(err, "executing template")
	}

	formatted, err := imports.Process(p.Output, buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		if g.config.WriteDebug {
			_ = writeDebugUnformatted(filepath.Dir(p.Output), filepath.Base(p.Output), buf.Bytes())
		}

		return &GeneratedFile{
			Path:    p.Output,
			Content: buf.Bytes(),
		}, errors.Wrap(err, "formatting code (unformatted code returned)")
	}

	return &GeneratedFile{
		Path:    p.Output,
		Content: formatted,
	}, nil
}

func (g *Generator) buildTemplateData(p *plan.Plan) *templateData {
	ser := common.PkgAlias(p.SerPath)

	data := &templateData{
		Header:  Header,
		Package: p.Package,
	}

	usesSer := false

	for i := range p.Serializers {
		sp := &p.Serializers[i]
		sd := serializerData{}

		if sp.Assert {
			sd.Assert = assertion(ser, sp)
			usesSer = true
		}

		for _, m := range sp.Methods {
			if m.Info.State != "" {
				usesSer = true
			}

			sd.Methods = append(sd.Methods, methodData{
				Receiver: receiver(sp),
				Name:     m.Info.Method,
				Params:   params(m),
				Result:   result(ser, sp.Ok, m.Info),
				Label:    m.Tag.String(),
				Body:     body(sp, m),
			})
		}

		data.Serializers = append(data.Serializers, sd)
	}

	specs := lo.Map(p.Imports, func(imp plan.Import, _ int) importSpec {
		return importSpec(imp)
	})

	if usesSer {
		specs = append(specs, importSpec{Path: p.SerPath})
	}

	local, _, _ := strings.Cut(p.SerPath, "/")
	data.Imports = groupImports(specs, local)

	return data
}

// groupImports dedupes and sorts imports into three groups: the standard
// library, third-party paths (first element contains a dot) and paths under
// the local module root. goimports keeps existing groups, so the local group
// stays apart even when the module path has no dot.
func groupImports(specs []importSpec, local string) [][]importSpec {
	specs = lo.UniqBy(specs, func(s importSpec) string { return s.Name + " " + s.Path })
	slices.SortStableFunc(specs, func(a, b importSpec) int {
		return strings.Compare(a.Path, b.Path)
	})

	own, rest := lo.FilterReject(specs, func(s importSpec, _ int) bool {
		first, _, _ := strings.Cut(s.Path, "/")
		return local != "" && first == local
	})

	std, other := lo.FilterReject(rest, func(s importSpec, _ int) bool {
		first, _, _ := strings.Cut(s.Path, "/")
		return !strings.Contains(first, ".")
	})

	return lo.Filter([][]importSpec{std, other, own}, func(g []importSpec, _ int) bool {
		return len(g) > 0
	})
}

var stubsTemplate = template.Must(template.New("stubs").Parse(`{{.Header}}

package {{.Package}}
{{if .Imports}}
import (
{{- range $i, $group := .Imports}}{{if $i}}
{{end}}
{{- range $group}}
	{{if .Name}}{{.Name}} {{end}}"{{.Path}}"
{{- end}}{{end}}
)
{{end}}
{{- range .Serializers}}{{if .Assert}}
{{.Assert}}
{{end}}
{{- range .Methods}}
func ({{.Receiver}}) {{.Name}}({{.Params}}) ({{.Result}}, error) {
	const valueType = "{{.Label}}"
{{- range .Body}}
	{{.}}
{{- end}}
}
{{end}}{{end}}`))
