package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/edmxconv/internal/cliutil"
	"github.com/erraggy/edmxconv/internal/mcpserver"
)

// HandleMCP runs the MCP server over stdio until the client disconnects or
// the process receives SIGINT or SIGTERM.
func HandleMCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: edmxconv mcp\n\n")
		cliutil.Writef(fs.Output(), "Serve the convert_metadata, resolve_alias and walk_metadata tools\n")
		cliutil.Writef(fs.Output(), "over the Model Context Protocol on stdin/stdout.\n\n")
		cliutil.Writef(fs.Output(), "Configuration is read from EDMXCONV_* environment variables.\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mcpserver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
