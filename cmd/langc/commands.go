package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/avaunit02/lang/pkg/driver"
	"github.com/avaunit02/lang/pkg/layout"
	"github.com/avaunit02/lang/pkg/typechecker"
	"github.com/avaunit02/lang/pkg/types"
)

func runCheck(args []string, opts globalOptions) int {
	report := false
	var paths []string
	for _, arg := range args {
		switch arg {
		case "--report", "-report":
			report = true
		default:
			if strings.HasPrefix(arg, "-") {
				fmt.Fprintf(os.Stderr, "langc check: unknown option %s\n", arg)
				return exitUsage
			}
			paths = append(paths, arg)
		}
	}
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "langc check: expected at least one program")
		return exitUsage
	}

	sess, err := newSession(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "langc check: %v\n", err)
		return exitUsage
	}
	defer sess.close()

	code := exitOK
	var reports []*driver.Report
	for _, path := range paths {
		result, err := sess.check(path, sess.checker)
		if err != nil {
			fmt.Fprintf(os.Stderr, "langc check: %v\n", err)
			code = exitUsage
			continue
		}
		if report {
			reports = append(reports, driver.BuildReport(result))
		}
		if !result.OK() {
			for _, diag := range result.Diagnostics {
				fmt.Fprintln(os.Stderr, driver.DescribeDiagnostic(path, diag))
			}
			if code == exitOK {
				code = exitDiagnostics
			}
			continue
		}
		if !report {
			fmt.Fprintf(os.Stdout, "%s: ok\n", path)
		}
	}
	if len(reports) > 0 {
		if err := driver.WriteReport(os.Stdout, reports...); err != nil {
			fmt.Fprintf(os.Stderr, "langc check: %v\n", err)
			return exitUsage
		}
	}
	return code
}

func runLayout(args []string, opts globalOptions) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "langc layout: expected exactly one program")
		return exitUsage
	}
	path := args[0]

	sess, err := newSession(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "langc layout: %v\n", err)
		return exitUsage
	}
	defer sess.close()

	result, err := sess.check(path, sess.checker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "langc layout: %v\n", err)
		return exitUsage
	}
	if !result.OK() {
		for _, diag := range result.Diagnostics {
			fmt.Fprintln(os.Stderr, driver.DescribeDiagnostic(path, diag))
		}
		return exitDiagnostics
	}

	names := result.Program.Symbols
	for _, named := range result.Result.NamedTypes {
		l, err := layout.Of(named.Type)
		if err != nil {
			fmt.Fprintf(os.Stderr, "langc layout: %s: %v\n", names.Name(named.Name), err)
			return exitDiagnostics
		}
		fmt.Fprintf(os.Stdout, "%s = %s\n  %s\n", names.Name(named.Name), types.Render(named.Type, names), l.Format(names))
	}
	return exitOK
}

// runFixtures checks every program under a directory in accumulating mode
// and compares the diagnostics with each fixture's expect list.
func runFixtures(args []string, opts globalOptions) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "langc fixtures: expected a directory")
		return exitUsage
	}

	sess, err := newSession(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "langc fixtures: %v\n", err)
		return exitUsage
	}
	defer sess.close()

	paths, err := collectFixtures(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "langc fixtures: %v\n", err)
		return exitUsage
	}
	if len(paths) == 0 {
		fmt.Fprintln(os.Stdout, "langc fixtures: no fixtures found")
		return exitOK
	}

	checkerOpts := sess.checker
	checkerOpts.Mode = typechecker.ModeAccumulate
	checkerOpts.MaxDiagnostics = 0

	passed, failed := 0, 0
	for _, path := range paths {
		result, err := sess.check(path, checkerOpts)
		if err == nil {
			err = result.Verify()
		}
		if err != nil {
			failed++
			fmt.Fprintf(os.Stdout, "FAIL %s\n  %v\n", path, err)
			continue
		}
		passed++
		fmt.Fprintf(os.Stdout, "ok   %s\n", path)
	}
	fmt.Fprintf(os.Stdout, "%d passed, %d failed\n", passed, failed)
	if failed > 0 {
		return exitDiagnostics
	}
	return exitOK
}

func collectFixtures(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}
	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() == driver.ConfigFileName {
			return nil
		}
		switch filepath.Ext(path) {
		case ".yml", ".yaml", ".json":
			paths = append(paths, path)
		}
		return nil
	})
	return paths, err
}
