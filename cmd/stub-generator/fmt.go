package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"stub-generator/internal/spec"
)

func newFmtCmd(_ *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:     "fmt",
		Short:   "Print the stub file as YAML with defaults applied",
		Example: `  stub-generator fmt -f stubs.toml > stubs.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := spec.LoadFile(file)
			if err != nil {
				return err
			}

			data, err := spec.Marshal(f)
			if err != nil {
				return errors.Wrap(err, "encoding stub file")
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "stub file (.yaml, .yml or .toml)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
