package main

import (
	"context"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"stub-generator/internal/check"
	"stub-generator/internal/gen"
	"stub-generator/internal/plan"
	"stub-generator/internal/spec"
)

type genOptions struct {
	file     string
	output   string
	check    bool
	dryRun   bool
	dumpPlan bool
}

func newGenCmd(a *app) *cobra.Command {
	opts := &genOptions{}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate the stub file's methods",
		Example: `  //go:generate go run stub-generator/cmd/stub-generator gen -f stubs.yaml
  stub-generator gen -f stubs.toml --check`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, err := a.build(cmd.Context(), opts)
			if err != nil {
				return err
			}

			if opts.dryRun {
				_, err := cmd.OutOrStdout().Write(file.Content)
				return err
			}

			changed, err := gen.WriteFile(file)
			if err != nil {
				return err
			}

			a.logger.Info("generated", zap.String("output", file.Path), zap.Bool("changed", changed))

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.file, "file", "f", "", "stub file (.yaml, .yml or .toml)")
	flags.StringVarP(&opts.output, "output", "o", "", "override the output path")
	flags.BoolVar(&opts.check, "check", false, "type-check the generated file against its package")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "print the generated file instead of writing it")
	flags.BoolVar(&opts.dumpPlan, "dump-plan", false, "dump the resolved plan before rendering")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newCheckCmd(a *app) *cobra.Command {
	opts := &genOptions{check: true, dryRun: true}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate, render and type-check without writing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, err := a.build(cmd.Context(), opts)
			if err != nil {
				return err
			}

			a.logger.Info("ok", zap.String("output", file.Path))

			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "stub file (.yaml, .yml or .toml)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// build runs load, resolve, render and the optional type check.
func (a *app) build(ctx context.Context, opts *genOptions) (*gen.GeneratedFile, error) {
	f, err := spec.LoadFile(opts.file)
	if err != nil {
		return nil, err
	}

	if opts.output != "" {
		out, err := filepath.Abs(opts.output)
		if err != nil {
			return nil, errors.Wrap(err, "resolving output")
		}

		f.Output = out
	}

	p, diags := plan.Resolve(f)
	a.report(diags)

	if diags.HasErrors() {
		return nil, diags.Error()
	}

	a.logger.Debug("resolved", zap.Int("serializers", len(p.Serializers)), zap.Int("methods", p.MethodCount()))

	if opts.dumpPlan {
		_, _ = a.out.Write([]byte(spew.Sdump(p)))
	}

	generator := gen.NewGenerator(gen.GeneratorConfig{WriteDebug: !opts.dryRun})

	file, err := generator.Generate(p)
	if err != nil {
		if !opts.dryRun {
			a.logger.Error("unformatted output written", zap.String("path", gen.DebugPath(p.Output)))
		}

		return nil, err
	}

	if !opts.check {
		return file, nil
	}

	checked, err := check.Check(ctx, filepath.Dir(file.Path), file)
	if err != nil {
		return nil, err
	}

	a.report(checked)

	if checked.HasErrors() {
		return nil, checked.Error()
	}

	return file, nil
}
