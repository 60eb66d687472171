package docs

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/cpuguy83/go-md2man/v2/md2man"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ManHeader contains man page metadata.
type ManHeader struct {
	Section string
	Date    *time.Time
	Source  string
	Manual  string
}

// DefaultManHeader is used by GenManTree.
func DefaultManHeader() *ManHeader {
	return &ManHeader{
		Section: "1",
		Source:  "semlog",
		Manual:  "semlog Manual",
	}
}

// GenManTree writes one man page per visible command into dir.
func GenManTree(cmd *cobra.Command, dir string, header *ManHeader) error {
	if header == nil {
		header = DefaultManHeader()
	}
	if header.Section == "" {
		header.Section = "1"
	}
	filename := func(c *cobra.Command) string {
		return pageName(c, "-") + "." + header.Section
	}
	return walk(cmd, dir, filename, func(c *cobra.Command, f *os.File) error {
		return GenMan(c, header, f)
	})
}

// GenMan renders the man page for a single command.
func GenMan(cmd *cobra.Command, header *ManHeader, w io.Writer) error {
	if header == nil {
		header = DefaultManHeader()
	}
	_, err := w.Write(md2man.Render(manSource(cmd, header)))
	return err
}

// manSource builds the md2man Markdown for cmd.
func manSource(cmd *cobra.Command, header *ManHeader) []byte {
	cmd.InitDefaultHelpFlag()

	buf := new(bytes.Buffer)
	name := cmd.CommandPath()

	date := ""
	if header.Date != nil {
		date = header.Date.Format("Jan 2006")
	}
	fmt.Fprintf(buf, "%% %s(%s) %s | %s\n\n", strings.ToUpper(pageName(cmd, "-")), header.Section, date, header.Manual)

	buf.WriteString("# NAME\n")
	short := cmd.Short
	if short == "" {
		short = "manual page for " + name
	}
	fmt.Fprintf(buf, "%s \\- %s\n\n", name, short)

	buf.WriteString("# SYNOPSIS\n")
	if cmd.Runnable() {
		fmt.Fprintf(buf, "**%s**\n\n", cmd.UseLine())
	} else {
		fmt.Fprintf(buf, "**%s** COMMAND\n\n", name)
	}

	if cmd.Long != "" {
		buf.WriteString("# DESCRIPTION\n")
		buf.WriteString(cmd.Long + "\n\n")
	}

	if subs := visibleCommands(cmd); len(subs) > 0 {
		buf.WriteString("# COMMANDS\n")
		for _, c := range subs {
			fmt.Fprintf(buf, "**%s**\n: %s\n\n", c.Name(), c.Short)
		}
	}

	local, inherited := cmd.NonInheritedFlags(), cmd.InheritedFlags()
	if local.HasAvailableFlags() || inherited.HasAvailableFlags() {
		buf.WriteString("# OPTIONS\n")
		manFlags(buf, local)
		manFlags(buf, inherited)
	}

	if cmd.Example != "" {
		buf.WriteString("# EXAMPLES\n")
		buf.WriteString("```\n" + cmd.Example + "\n```\n\n")
	}

	manSeeAlso(buf, cmd, header.Section)

	if header.Source != "" {
		buf.WriteString("# SOURCE\n")
		buf.WriteString(header.Source + "\n")
	}

	return buf.Bytes()
}

func manFlags(buf *bytes.Buffer, flags *pflag.FlagSet) {
	var list []*pflag.Flag
	flags.VisitAll(func(f *pflag.Flag) {
		if !f.Hidden {
			list = append(list, f)
		}
	})
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })

	for _, f := range list {
		term := fmt.Sprintf("**--%s**", f.Name)
		if f.Shorthand != "" {
			term = fmt.Sprintf("**-%s**, %s", f.Shorthand, term)
		}
		if t := f.Value.Type(); t != "bool" {
			term += fmt.Sprintf(" <%s>", t)
		}

		buf.WriteString(term + "\n: " + f.Usage)
		switch f.DefValue {
		case "", "false", "0", "[]":
		default:
			fmt.Fprintf(buf, " (default: %s)", f.DefValue)
		}
		buf.WriteString("\n\n")
	}
}

func manSeeAlso(buf *bytes.Buffer, cmd *cobra.Command, section string) {
	var refs []string
	if cmd.HasParent() {
		parent := cmd.Parent()
		refs = append(refs, pageName(parent, "-"))
		for _, s := range visibleCommands(parent) {
			if s != cmd {
				refs = append(refs, pageName(s, "-"))
			}
		}
	}
	for _, c := range visibleCommands(cmd) {
		refs = append(refs, pageName(c, "-"))
	}
	if len(refs) == 0 {
		return
	}

	buf.WriteString("# SEE ALSO\n")
	for i, r := range refs {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(buf, "**%s(%s)**", r, section)
	}
	buf.WriteString("\n\n")
}
