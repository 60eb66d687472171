// Package config implements "semlog config".
package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/schmitthub/semanticlogger/internal/cmdutil"
	internalconfig "github.com/schmitthub/semanticlogger/internal/config"
	"github.com/schmitthub/semanticlogger/internal/iostreams"
	"github.com/spf13/cobra"
)

// NewCmdConfig creates the config command.
func NewCmdConfig(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management commands",
		Long:  `Commands for creating, editing and locating the semlog configuration file.`,
	}

	cmd.AddCommand(NewCmdInit(f, nil))
	cmd.AddCommand(NewCmdPath(f, nil))
	cmd.AddCommand(NewCmdSet(f, nil))

	return cmd
}

// InitOptions holds options for the config init command.
type InitOptions struct {
	IOStreams    *iostreams.IOStreams
	ConfigLoader func() (*internalconfig.Loader, error)
	Force        bool
}

// NewCmdInit creates the config init command.
func NewCmdInit(f *cmdutil.Factory, runF func(context.Context, *InitOptions) error) *cobra.Command {
	opts := &InitOptions{
		IOStreams:    f.IOStreams,
		ConfigLoader: f.ConfigLoader,
	}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Writes a commented default semlog.yaml to the resolved configuration path.
An existing file is left untouched unless --force is given.`,
		Example: `  semlog config init
  semlog --config ./semlog.yaml config init --force`,
		Args: cmdutil.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return initRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Overwrite an existing configuration file")

	return cmd
}

func initRun(_ context.Context, opts *InitOptions) error {
	ios := opts.IOStreams

	loader, err := opts.ConfigLoader()
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}

	written, err := internalconfig.WriteDefault(loader.Path(), opts.Force)
	if err != nil {
		_ = ios.PrintFailure("Could not write %s: %s", loader.Path(), err)
		return cmdutil.SilentError
	}
	if !written {
		return ios.PrintWarning("%s already exists (use --force to overwrite)", loader.Path())
	}
	return ios.PrintSuccess("Wrote %s", loader.Path())
}

// PathOptions holds options for the config path command.
type PathOptions struct {
	IOStreams    *iostreams.IOStreams
	ConfigLoader func() (*internalconfig.Loader, error)
}

// NewCmdPath creates the config path command.
func NewCmdPath(f *cmdutil.Factory, runF func(context.Context, *PathOptions) error) *cobra.Command {
	opts := &PathOptions{
		IOStreams:    f.IOStreams,
		ConfigLoader: f.ConfigLoader,
	}

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Long: `Prints the configuration file semlog reads, whether or not it exists.
Resolution order: --config, $SEMLOG_CONFIG, $SEMLOG_HOME/semlog.yaml, then
semlog/semlog.yaml under the user config directory.`,
		Args: cmdutil.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return pathRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func pathRun(_ context.Context, opts *PathOptions) error {
	loader, err := opts.ConfigLoader()
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}
	_, err = fmt.Fprintln(opts.IOStreams.Out, loader.Path())
	return err
}

// SetOptions holds options for the config set command.
type SetOptions struct {
	IOStreams    *iostreams.IOStreams
	ConfigLoader func() (*internalconfig.Loader, error)

	Key   string
	Value string
}

// NewCmdSet creates the config set command.
func NewCmdSet(f *cmdutil.Factory, runF func(context.Context, *SetOptions) error) *cobra.Command {
	opts := &SetOptions{
		IOStreams:    f.IOStreams,
		ConfigLoader: f.ConfigLoader,
	}

	cmd := &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set one configuration value",
		Long: `Validates VALUE for KEY and saves it to the configuration file, creating
the file when needed. Nested keys use dots, e.g. otlp.endpoint.

The file is rewritten from the parsed configuration, so comments written by
"config init" are not kept.

Valid keys: ` + strings.Join(internalconfig.Keys(), ", "),
		Example: `  semlog config set level debug
  semlog config set otlp.endpoint collector:4318`,
		Args: cmdutil.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Key = args[0]
			opts.Value = args[1]
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return setRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func setRun(_ context.Context, opts *SetOptions) error {
	ios := opts.IOStreams

	loader, err := opts.ConfigLoader()
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}

	key := strings.ToLower(opts.Key)
	if _, err := internalconfig.SetValue(loader.Path(), key, opts.Value); err != nil {
		_ = ios.PrintFailure("Could not set %s: %s", key, err)
		return cmdutil.SilentError
	}

	if err := ios.PrintSuccess("Set %s to %s in %s", key, opts.Value, loader.Path()); err != nil {
		return err
	}
	if env := internalconfig.EnvVar(key); os.Getenv(env) != "" {
		return ios.PrintInfo("$%s is set and takes precedence over the file", env)
	}
	return nil
}
