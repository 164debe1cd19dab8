package main

import (
	"fmt"
	"os"
)

const cliToolVersion = "langc 0.0.0-dev"

const (
	exitOK          = 0
	exitDiagnostics = 1
	exitUsage       = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return exitUsage
	}

	opts, remaining, err := parseGlobalOptions(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}
	if len(remaining) == 0 {
		printUsage()
		return exitUsage
	}

	switch remaining[0] {
	case "--help", "-h", "help":
		printUsage()
		return exitOK
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return exitOK
	case "check":
		return runCheck(remaining[1:], opts)
	case "layout":
		return runLayout(remaining[1:], opts)
	case "fixtures":
		return runFixtures(remaining[1:], opts)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", remaining[0])
		printUsage()
		return exitUsage
	}
}
