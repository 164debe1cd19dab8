package main

import (
	"fmt"
	"os"
)

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  langc [global options] check [--report] <program.yml> [program.yml ...]")
	fmt.Fprintln(os.Stderr, "  langc [global options] layout <program.yml>")
	fmt.Fprintln(os.Stderr, "  langc [global options] fixtures <dir>")
	fmt.Fprintln(os.Stderr, "  langc version")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Global options:")
	fmt.Fprintln(os.Stderr, "  --config <path>                  configuration file (default ./langc.yml when present)")
	fmt.Fprintln(os.Stderr, "  --mode=fail-fast|accumulate      override the configured checking mode")
	fmt.Fprintln(os.Stderr, "  --hoist                          register top-level functions before checking bodies")
	fmt.Fprintln(os.Stderr, "  --debug                          verbose development logging")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Exit status is 0 when every program checks, 1 on diagnostics and 2 on usage or I/O errors.")
}
