package main

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"stub-generator/internal/diagnostic"
	"stub-generator/internal/log"
)

// app holds state shared by all commands.
type app struct {
	logCfg *log.Config
	logger *zap.Logger
	out    io.Writer
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{
		logCfg: log.DefaultConfig(),
		logger: zap.NewNop(),
		out:    out,
	}

	root := &cobra.Command{
		Use:   "stub-generator",
		Short: "Generate ser.Serializer method stubs from a stub file",
		PersistentPreRunE: func(*cobra.Command, []string) error {
			logger, err := log.InitLogger(a.logCfg)
			if err != nil {
				return err
			}

			a.logger = logger

			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
		SilenceUsage: true,
	}

	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVar(&a.logCfg.Level, "log-level", a.logCfg.Level, "log level: trace, debug, info, warn, error")
	flags.StringVar(&a.logCfg.File.Filename, "log-file", "", "also write JSON logs to this rotating file")

	root.AddCommand(
		newGenCmd(a),
		newCheckCmd(a),
		newTagsCmd(a),
		newFmtCmd(a),
	)

	return root
}

// report logs every diagnostic at its severity.
func (a *app) report(diags *diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		fields := []zap.Field{zap.String("code", d.Code)}
		if d.Serializer != "" {
			fields = append(fields, zap.String("serializer", d.Serializer))
		}

		if d.Tag != "" {
			fields = append(fields, zap.String("tag", d.Tag))
		}

		if len(d.Suggestions) > 0 {
			fields = append(fields, zap.Strings("suggestions", d.Suggestions))
		}

		switch d.Severity {
		case diagnostic.SeverityError:
			a.logger.Error(d.Message, fields...)
		case diagnostic.SeverityWarning:
			a.logger.Warn(d.Message, fields...)
		default:
			a.logger.Info(d.Message, fields...)
		}
	}
}
