package root

import (
	configcmd "github.com/schmitthub/semanticlogger/internal/cmd/config"
	"github.com/schmitthub/semanticlogger/internal/cmd/emit"
	"github.com/schmitthub/semanticlogger/internal/cmd/pipe"
	"github.com/schmitthub/semanticlogger/internal/cmd/remind"
	versioncmd "github.com/schmitthub/semanticlogger/internal/cmd/version"
	"github.com/schmitthub/semanticlogger/internal/cmdutil"
	"github.com/schmitthub/semanticlogger/pkg/logger"
	"github.com/schmitthub/semanticlogger/pkg/semanticlogger"
	"github.com/spf13/cobra"
)

// NewCmdRoot creates the root command for the semlog CLI.
func NewCmdRoot(f *cmdutil.Factory, version, buildDate string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "semlog",
		Short: "Log from the shell with severities that say what they mean",
		Long: `semlog writes structured log entries using semantic severities:

  for-test-purpose          only useful while testing           (debug)
  as-expected-by-default    normal operation                    (info)
  to-investigate-tomorrow   look at it during working hours     (warn)
  wake-me-up                page a human now                    (error)

Entries go to stderr, to a rotated file when logs_dir is configured, and to
an OTLP collector when otlp.enabled is set in semlog.yaml.`,
		SilenceUsage: true,
		Annotations: map[string]string{
			"versionInfo": versioncmd.Format(version, buildDate),
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch f.Format {
			case "", logger.FormatConsole, logger.FormatJSON:
			default:
				return cmdutil.FlagErrorf("invalid --format %q: want %s or %s", f.Format, logger.FormatConsole, logger.FormatJSON)
			}

			backend := f.Backend()
			semanticlogger.UseZerolog(backend)

			semanticlogger.FromName(emit.DefaultName).ForTestPurposef("semlog %s starting (log file %q)", f.Version, backend.LogFilePath())
			return nil
		},
		Version: version,
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return cmdutil.FlagErrorWrap(err)
	})

	// Global flags
	cmd.PersistentFlags().StringVarP(&f.ConfigPath, "config", "c", "", "Path to semlog.yaml")
	cmd.PersistentFlags().BoolVarP(&f.Debug, "debug", "D", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&f.Format, "format", "", "Console format: console or json (default from config)")

	cmd.SetVersionTemplate(versioncmd.Format(version, buildDate))

	for _, s := range emit.Severities {
		cmd.AddCommand(emit.NewCmdEmit(f, s, nil))
	}
	registerAliases(cmd, f)

	cmd.AddCommand(remind.NewCmdRemind(f, nil))
	cmd.AddCommand(pipe.NewCmdPipe(f, nil))
	cmd.AddCommand(configcmd.NewCmdConfig(f))
	cmd.AddCommand(versioncmd.NewCmdVersion(f, version, buildDate))

	return cmd
}
