// Package docs generates man pages and Markdown reference pages for the
// semlog command tree.
package docs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// walk calls write for cmd and every visible descendant, children first.
// write receives the open file for the page named by filename(cmd).
func walk(cmd *cobra.Command, dir string, filename func(*cobra.Command) string, write func(*cobra.Command, *os.File) error) error {
	for _, c := range visibleCommands(cmd) {
		if err := walk(c, dir, filename, write); err != nil {
			return err
		}
	}

	path := filepath.Join(dir, filename(cmd))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	defer f.Close()

	if err := write(cmd, f); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// visibleCommands returns the non-hidden subcommands sorted by name, without
// cobra's generated help command.
func visibleCommands(cmd *cobra.Command) []*cobra.Command {
	var commands []*cobra.Command
	for _, c := range cmd.Commands() {
		if !c.Hidden && c.Name() != "help" {
			commands = append(commands, c)
		}
	}
	sort.Slice(commands, func(i, j int) bool {
		return commands[i].Name() < commands[j].Name()
	})
	return commands
}

// pageName joins the command path with sep, e.g. "semlog-config-init".
func pageName(cmd *cobra.Command, sep string) string {
	return strings.ReplaceAll(cmd.CommandPath(), " ", sep)
}
