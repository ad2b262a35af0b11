package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/googlemap"
	"github.com/erraggy/googlemap/cmd/gmaps/commands"
	"github.com/erraggy/googlemap/internal/mcpserver"
)

var commandNames = []string{"aggregate", "viewport", "mcp", "version", "help"}

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
		fmt.Printf("gmaps %s\n", googlemap.Version())
		if len(args) > 0 && args[0] == "--long" {
			fmt.Println(googlemap.BuildInfo())
		}
	case "help", "-h", "--help":
		printUsage()
	case "aggregate":
		err = commands.HandleAggregate(args)
	case "viewport":
		err = commands.HandleViewport(args)
	case "mcp":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		err = mcpserver.Run(ctx)
		stop()
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

// suggestCommand returns the known command closest to input, or "" when
// none is within an edit distance of 2.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := levenshtein(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Println(`gmaps - Google Maps document tools

Usage:
  gmaps <command> [options]

Commands:
  aggregate   List the objects a renderer must declare for a map document
  viewport    Print the rectangle covering every coordinate of a map document
  mcp         Serve the aggregation tools over MCP on stdio
  version     Show version information
  help        Show this help message

Examples:
  gmaps aggregate city.yaml
  gmaps aggregate -kind marker-images -format json city.yaml
  gmaps viewport -q - < city.json
  gmaps mcp

Run 'gmaps <command> --help' for more information on a command.`)
}
