// Package main provides the CLI entrypoint for stub-generator.
//
// stub-generator is a go:generate tool that:
//   - Reads a declarative stub file (YAML or TOML)
//   - Expands tag lists into ser.Serializer method stubs
//   - Type-checks the result against the target package (optional)
//   - Writes a gofmt-clean generated file
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
