package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"stub-generator/internal/tag"
)

// tagRow is one line of the tags listing.
type tagRow struct {
	Tag       string `json:"tag"`
	Method    string `json:"method"`
	Signature string `json:"signature"`
	Exposed   string `json:"exposed,omitempty"`
	Kind      string `json:"kind"`
}

// kind classifies a tag by its result and whether it carries an enum variant.
func kind(t tag.Tag) string {
	k := lo.Ternary(t.IsCompound(), "compound", "value")
	if t.IsVariant() {
		k += "-variant"
	}

	return k
}

func tagRows() []tagRow {
	return lo.Map(tag.All(), func(t tag.Tag, _ int) tagRow {
		info := t.Info()

		params := lo.Map(info.Params, func(p tag.Param, _ int) string { return p.Name + " " + p.Type })

		result := "Ok"
		if info.State != "" {
			result = "ser." + info.State + "[Ok]"
		}

		row := tagRow{
			Tag:       t.String(),
			Method:    info.Method,
			Signature: fmt.Sprintf("%s(%s) (%s, error)", info.Method, strings.Join(params, ", "), result),
			Kind:      kind(t),
		}

		if p, ok := info.ExposedParam(); ok {
			row.Exposed = p.Name
		}

		return row
	})
}

func newTagsCmd(_ *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List the method tags and their signatures",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows := tagRows()
			out := cmd.OutOrStdout()

			switch format {
			case "json":
				data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(rows, "", "  ")
				if err != nil {
					return errors.Wrap(err, "encoding tags")
				}

				_, err = fmt.Fprintln(out, string(data))

				return err
			case "table":
				w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "TAG\tKIND\tEXPOSED\tSIGNATURE")

				for _, r := range rows {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Tag, r.Kind, lo.Ternary(r.Exposed == "", "-", r.Exposed), r.Signature)
				}

				return w.Flush()
			default:
				return errors.Newf("unknown format %q (table or json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "output format: table or json")

	return cmd
}
