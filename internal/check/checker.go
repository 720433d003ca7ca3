package check

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"golang.org/x/tools/go/packages"

	"stub-generator/internal/diagnostic"
	"stub-generator/internal/gen"
)

// LoadMode specifies what information to load from the target package.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Check type-checks the package in dir as if file were written to disk.
// Type errors inside a generated method are reported as type_mismatch for
// its tag; any other error in the package is reported unattributed.
// The returned error is set only when the package cannot be loaded at all.
func Check(ctx context.Context, dir string, file *gen.GeneratedFile) (*diagnostic.Diagnostics, error) {
	if file == nil {
		return nil, errors.New("generated file is nil")
	}

	target, err := filepath.Abs(file.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "resolving %s", file.Path)
	}

	spans, err := Spans(target, file.Content)
	if err != nil {
		return nil, err
	}

	cfg := &packages.Config{
		Context: ctx,
		Mode:    LoadMode,
		Dir:     dir,
		Overlay: map[string][]byte{target: file.Content},
	}

	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, errors.Wrap(err, "failed to load packages")
	}

	diags := &diagnostic.Diagnostics{}

	for _, pkg := range pkgs {
		for _, e := range typeErrors(pkg.Errors) {
			attribute(diags, target, spans, e)
		}
	}

	return diags, nil
}

// typeErrors drops the go command's compile output when the type checker
// reported the same failures itself. The compiler echo points at the
// overlay's temporary copy and would never attribute to a tag.
func typeErrors(errs []packages.Error) []packages.Error {
	typed := lo.Filter(errs, func(e packages.Error, _ int) bool {
		return e.Kind == packages.TypeError
	})
	if len(typed) == 0 {
		return errs
	}

	return typed
}

// attribute converts a package error into a diagnostic.
func attribute(diags *diagnostic.Diagnostics, target string, spans []Span, e packages.Error) {
	file, line := position(e.Pos)
	if file != "" && sameFile(file, target) {
		for _, s := range spans {
			if !s.Contains(line) {
				continue
			}

			if !s.Tag.IsValid() {
				diags.AddError(diagnostic.CodeUnattributed, e.Msg, s.Serializer, "")
				return
			}

			diags.AddError(diagnostic.CodeTypeMismatch,
				fmt.Sprintf("%s: %s", s.Tag.Method(), e.Msg), s.Serializer, s.Tag.String())

			return
		}
	}

	msg := e.Msg
	if e.Pos != "" && e.Pos != "-" {
		msg = e.Pos + ": " + msg
	}

	diags.AddError(diagnostic.CodeUnattributed, msg, "", "")
}

// position splits "file:line:col" or "file:line".
func position(pos string) (string, int) {
	rest, last, ok := cutLast(pos)
	if !ok {
		return "", 0
	}

	n, err := strconv.Atoi(last)
	if err != nil {
		return "", 0
	}

	if file, mid, ok := cutLast(rest); ok {
		if line, err := strconv.Atoi(mid); err == nil {
			return file, line
		}
	}

	return rest, n
}

func cutLast(s string) (before, after string, ok bool) {
	i := strings.LastIndexByte(s, ':')
	if i < 0 {
		return s, "", false
	}

	return s[:i], s[i+1:], true
}

// sameFile compares paths reported by the go command, which may resolve
// symlinks (macOS /var -> /private/var).
func sameFile(a, b string) bool {
	if filepath.Clean(a) == filepath.Clean(b) {
		return true
	}

	return filepath.Base(a) == filepath.Base(b) && samePath(a, b)
}

func samePath(a, b string) bool {
	ea, err := filepath.EvalSymlinks(filepath.Dir(a))
	if err != nil {
		return false
	}

	eb, err := filepath.EvalSymlinks(filepath.Dir(b))
	if err != nil {
		return false
	}

	return ea == eb
}
