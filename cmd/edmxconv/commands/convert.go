package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/erraggy/edmxconv/converter"
	"github.com/erraggy/edmxconv/internal/cliutil"
	"github.com/erraggy/edmxconv/internal/fileutil"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	Format      string
	Output      string
	IncludeInfo bool
	Strict      bool
	Quiet       bool
	Verbose     bool
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
// Defaults for -format and -info come from EDMXCONV_FORMAT and EDMXCONV_INCLUDE_INFO.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	defaultFormat := cliutil.EnvChoice(EnvFormat, FormatJSON, FormatJSON, FormatYAML)
	defaultInfo := cliutil.EnvBool(EnvIncludeInfo, false)

	fs.StringVar(&flags.Format, "format", defaultFormat, "output format: json or yaml")
	fs.StringVar(&flags.Format, "f", defaultFormat, "output format: json or yaml")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.BoolVar(&flags.IncludeInfo, "info", defaultInfo, "report info messages such as skipped elements")
	fs.BoolVar(&flags.Strict, "strict", false, "fail when the conversion records warnings")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Verbose, "v", false, "log conversion progress at debug level to stderr")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log conversion progress at debug level to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: edmxconv convert [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Convert OData CSDL XML metadata (EDMX) to CSDL JSON.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  edmxconv convert -o metadata.json metadata.xml\n")
		cliutil.Writef(fs.Output(), "  edmxconv convert -format yaml -info metadata.xml\n")
		cliutil.Writef(fs.Output(), "  curl -s 'https://host/service/$metadata' | edmxconv convert -q - > metadata.json\n")
		cliutil.Writef(fs.Output(), "\nEnvironment:\n")
		cliutil.Writef(fs.Output(), "  %s          default for -format\n", EnvFormat)
		cliutil.Writef(fs.Output(), "  %s    default for -info\n", EnvIncludeInfo)
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Warnings mark values that were kept as strings to stay lossless\n")
		cliutil.Writef(fs.Output(), "  - Info messages list elements that were not recognized and skipped\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Conversion successful\n")
		cliutil.Writef(fs.Output(), "  1    Conversion failed, or warnings were recorded in --strict mode\n")
	}

	return fs, flags
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	return runConvert(args, os.Stdin, os.Stdout)
}

func runConvert(args []string, stdin io.Reader, stdout io.Writer) error {
	fs, flags := SetupConvertFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("convert command requires exactly one file path or '-' for stdin")
	}
	if err := ValidateOutputFormat(flags.Format, FormatJSON, FormatYAML); err != nil {
		return err
	}

	inputPath := fs.Arg(0)
	if flags.Output != "" {
		if err := ValidateOutputPath(flags.Output, inputPath); err != nil {
			return err
		}
	}

	source := converter.WithFilePath(inputPath)
	if inputPath == StdinFilePath {
		source = converter.WithReader(stdin)
	}

	startTime := time.Now()
	result, err := converter.ConvertWithOptions(
		source,
		converter.WithIncludeInfo(flags.IncludeInfo),
		converter.WithStrictMode(flags.Strict),
		converter.WithLogger(NewLogger(flags.Verbose)),
	)
	totalTime := time.Since(startTime)

	// In strict mode the result is returned alongside the error so the
	// offending warnings can still be listed.
	if result != nil && !flags.Quiet {
		OutputHeader(inputPath, result.Version)
		cliutil.Writef(os.Stderr, "Aliases: %d\n", len(result.Aliases))
		cliutil.Writef(os.Stderr, "Total Time: %v\n\n", totalTime)
		outputIssues(os.Stderr, result, err == nil)
	}
	if err != nil {
		return fmt.Errorf("converting %s: %w", FormatInputPath(inputPath), err)
	}

	data, err := result.Marshal(flags.Format)
	if err != nil {
		return err
	}

	if flags.Output != "" {
		if err := os.WriteFile(flags.Output, data, fileutil.OwnerReadWrite); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		if !flags.Quiet {
			cliutil.Writef(os.Stderr, "Output written to: %s\n", flags.Output)
		}
		return nil
	}

	if _, err := stdout.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing converted document to stdout: %w", err)
	}
	return nil
}

// outputIssues lists the conversion issues and a one-line summary.
func outputIssues(w io.Writer, result *converter.ConversionResult, succeeded bool) {
	if len(result.Issues) > 0 {
		cliutil.Writef(w, "Conversion Issues (%d):\n", len(result.Issues))
		for _, issue := range result.Issues {
			cliutil.Writef(w, "  %s\n", issue.String())
		}
		cliutil.Writef(w, "\n")
	}

	if !succeeded {
		cliutil.Writef(w, "✗ Conversion failed with %d warning(s) in strict mode\n", result.WarningCount)
		return
	}
	cliutil.Writef(w, "✓ Conversion successful")
	if result.InfoCount > 0 || result.WarningCount > 0 {
		cliutil.Writef(w, " (%d info, %d warnings)", result.InfoCount, result.WarningCount)
	}
	cliutil.Writef(w, "\n")
}
