package main

import (
	"fmt"
	"os"

	"github.com/erraggy/edmxconv"
	"github.com/erraggy/edmxconv/cmd/edmxconv/commands"
)

// commandNames lists the subcommands, in the order shown by printUsage.
var commandNames = []string{"convert", "aliases", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("edmxconv v%s\n", edmxconv.Version())
	case "help", "-h", "--help":
		printUsage()
	case "convert":
		err = commands.HandleConvert(args)
	case "aliases":
		err = commands.HandleAliases(args)
	case "mcp":
		err = commands.HandleMCP(args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the subcommand closest to input when it is within
// an edit distance of 2, or "" when none is.
func suggestCommand(input string) string {
	best, bestDistance := "", 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDistance {
			best, bestDistance = name, d
		}
	}
	return best
}

// editDistance is the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`edmxconv - OData CSDL metadata converter

Usage:
  edmxconv <command> [options]

Commands:
  convert     Convert CSDL XML metadata (EDMX) to CSDL JSON
  aliases     List or resolve the aliases declared in a metadata document
  mcp         Serve the converter as MCP tools over stdio
  version     Show version information
  help        Show this help message

Examples:
  edmxconv convert -o metadata.json metadata.xml
  edmxconv convert -format yaml -info metadata.xml
  edmxconv aliases metadata.xml
  cat metadata.xml | edmxconv convert -q -

Run 'edmxconv <command> --help' for more information on a command.`)
}
