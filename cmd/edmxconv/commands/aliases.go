package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/edmxconv/alias"
	"github.com/erraggy/edmxconv/converter"
	"github.com/erraggy/edmxconv/internal/cliutil"
	"github.com/erraggy/edmxconv/internal/maputil"
)

// AliasesFlags contains flags for the aliases command
type AliasesFlags struct {
	Format  string
	Verbose bool
}

// AliasEntry is one row of the alias table in structured output.
type AliasEntry struct {
	Alias     string `json:"alias" yaml:"alias"`
	Namespace string `json:"namespace" yaml:"namespace"`
}

// ResolvedName is a name given on the command line and its resolved form.
type ResolvedName struct {
	Name     string `json:"name" yaml:"name"`
	Resolved string `json:"resolved" yaml:"resolved"`
}

// SetupAliasesFlags creates and configures a FlagSet for the aliases command.
func SetupAliasesFlags() (*flag.FlagSet, *AliasesFlags) {
	fs := flag.NewFlagSet("aliases", flag.ContinueOnError)
	flags := &AliasesFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "f", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Verbose, "v", false, "log conversion progress at debug level to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: edmxconv aliases [flags] <file|-> [name...]\n\n")
		cliutil.Writef(fs.Output(), "List the aliases declared in a metadata document, or resolve the given\n")
		cliutil.Writef(fs.Output(), "alias-qualified names and paths against them.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  edmxconv aliases metadata.xml\n")
		cliutil.Writef(fs.Output(), "  edmxconv aliases -format json metadata.xml\n")
		cliutil.Writef(fs.Output(), "  edmxconv aliases metadata.xml self.Container/Products@Core.Description\n")
	}

	return fs, flags
}

// HandleAliases executes the aliases command
func HandleAliases(args []string) error {
	return runAliases(args, os.Stdin, os.Stdout)
}

func runAliases(args []string, stdin io.Reader, stdout io.Writer) error {
	fs, flags := SetupAliasesFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("aliases command requires a file path or '-' for stdin")
	}
	if err := ValidateOutputFormat(flags.Format, FormatText, FormatJSON, FormatYAML); err != nil {
		return err
	}

	inputPath := fs.Arg(0)
	source := converter.WithFilePath(inputPath)
	if inputPath == StdinFilePath {
		source = converter.WithReader(stdin)
	}

	result, err := converter.ConvertWithOptions(
		source,
		converter.WithIncludeInfo(false),
		converter.WithLogger(NewLogger(flags.Verbose)),
	)
	if err != nil {
		return fmt.Errorf("reading aliases from %s: %w", FormatInputPath(inputPath), err)
	}

	if names := fs.Args()[1:]; len(names) > 0 {
		resolved := make([]ResolvedName, 0, len(names))
		for _, name := range names {
			resolved = append(resolved, ResolvedName{Name: name, Resolved: alias.ResolveInPath(name, result.Aliases)})
		}
		if flags.Format != FormatText {
			return OutputStructured(stdout, resolved, flags.Format)
		}
		for _, r := range resolved {
			cliutil.Writef(stdout, "%s\t%s\n", r.Name, r.Resolved)
		}
		return nil
	}

	entries := aliasEntries(result.Aliases)
	if flags.Format != FormatText {
		return OutputStructured(stdout, entries, flags.Format)
	}
	if len(entries) == 0 {
		cliutil.Writef(stdout, "No aliases declared.\n")
		return nil
	}
	for _, e := range entries {
		cliutil.Writef(stdout, "%s\t%s\n", e.Alias, e.Namespace)
	}
	return nil
}

// aliasEntries returns the alias table sorted by alias.
func aliasEntries(table alias.Table) []AliasEntry {
	entries := make([]AliasEntry, 0, len(table))
	for _, a := range maputil.SortedKeys(table) {
		entries = append(entries, AliasEntry{Alias: a, Namespace: table[a]})
	}
	return entries
}
