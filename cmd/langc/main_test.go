package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func captureCLI(t *testing.T, args []string) (int, string, string) {
	t.Helper()

	stdout := os.Stdout
	stderr := os.Stderr

	rOut, wOut, err := os.Pipe()
	if err != nil {
		t.Fatalf("stdout pipe: %v", err)
	}
	rErr, wErr, err := os.Pipe()
	if err != nil {
		t.Fatalf("stderr pipe: %v", err)
	}

	os.Stdout = wOut
	os.Stderr = wErr

	code := run(args)

	if err := wOut.Close(); err != nil {
		t.Fatalf("stdout close: %v", err)
	}
	if err := wErr.Close(); err != nil {
		t.Fatalf("stderr close: %v", err)
	}

	os.Stdout = stdout
	os.Stderr = stderr

	outBytes, err := io.ReadAll(rOut)
	if err != nil {
		t.Fatalf("stdout read: %v", err)
	}
	errBytes, err := io.ReadAll(rErr)
	if err != nil {
		t.Fatalf("stderr read: %v", err)
	}
	_ = rOut.Close()
	_ = rErr.Close()

	return code, string(outBytes), string(errBytes)
}

func fixture(name string) string {
	return filepath.Join("testdata", "fixtures", name)
}

func TestVersionAndHelp(t *testing.T) {
	code, stdout, _ := captureCLI(t, []string{"version"})
	if code != exitOK || strings.TrimSpace(stdout) != cliToolVersion {
		t.Fatalf("version: code=%d stdout=%q", code, stdout)
	}
	code, _, stderr := captureCLI(t, []string{"--help"})
	if code != exitOK || !strings.Contains(stderr, "Usage:") {
		t.Fatalf("help: code=%d stderr=%q", code, stderr)
	}
	code, _, stderr = captureCLI(t, nil)
	if code != exitUsage || !strings.Contains(stderr, "Usage:") {
		t.Fatalf("no args: code=%d stderr=%q", code, stderr)
	}
	code, _, stderr = captureCLI(t, []string{"compile"})
	if code != exitUsage || !strings.Contains(stderr, `unknown command "compile"`) {
		t.Fatalf("unknown command: code=%d stderr=%q", code, stderr)
	}
}

func TestCheckCleanProgram(t *testing.T) {
	path := fixture("point.yml")
	code, stdout, stderr := captureCLI(t, []string{"check", path})
	if code != exitOK {
		t.Fatalf("check exited %d, stderr: %s", code, stderr)
	}
	if strings.TrimSpace(stdout) != path+": ok" {
		t.Fatalf("unexpected stdout %q", stdout)
	}
}

func TestCheckReportsDiagnostics(t *testing.T) {
	path := fixture("mismatch.yml")
	code, _, stderr := captureCLI(t, []string{"check", path})
	if code != exitDiagnostics {
		t.Fatalf("expected exit %d, got %d", exitDiagnostics, code)
	}
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	if len(lines) != 1 || lines[0] != "typechecker: "+path+":9:12 T0301 type-mismatch: cannot initialize x of type u8 with bool" {
		t.Fatalf("unexpected fail-fast output:\n%s", stderr)
	}

	code, _, stderr = captureCLI(t, []string{"--mode=accumulate", "check", path})
	if code != exitDiagnostics {
		t.Fatalf("expected exit %d, got %d", exitDiagnostics, code)
	}
	if !strings.Contains(stderr, "T0301 type-mismatch") || !strings.Contains(stderr, "T0602 break-outside-loop") {
		t.Fatalf("accumulating check should report both diagnostics:\n%s", stderr)
	}
}

func TestCheckUsesConfigFile(t *testing.T) {
	config := filepath.Join("testdata", "accumulate.yml")
	code, _, stderr := captureCLI(t, []string{"--config", config, "check", fixture("mismatch.yml")})
	if code != exitDiagnostics || strings.Count(stderr, "typechecker: ") != 2 {
		t.Fatalf("config mode not applied: code=%d stderr=%s", code, stderr)
	}

	code, _, stderr = captureCLI(t, []string{"--config", filepath.Join("testdata", "missing.yml"), "check", fixture("point.yml")})
	if code != exitUsage || !strings.Contains(stderr, "langc check:") {
		t.Fatalf("missing config: code=%d stderr=%s", code, stderr)
	}
}

func TestCheckHoistOption(t *testing.T) {
	path := fixture("hoisted.yml")
	code, _, stderr := captureCLI(t, []string{"check", path})
	if code != exitDiagnostics || !strings.Contains(stderr, "undefined-function") {
		t.Fatalf("forward call should fail without hoisting: code=%d stderr=%s", code, stderr)
	}
	code, _, stderr = captureCLI(t, []string{"--hoist", "check", path})
	if code != exitOK {
		t.Fatalf("forward call should pass with hoisting: code=%d stderr=%s", code, stderr)
	}
}

func TestCheckReport(t *testing.T) {
	for _, flag := range []string{"--report", "-report"} {
		code, stdout, stderr := captureCLI(t, []string{"check", flag, fixture("point.yml")})
		if code != exitOK {
			t.Fatalf("check %s exited %d: %s", flag, code, stderr)
		}
		for _, want := range []string{"ok: true", "name: scale", "params: [u32, u32]", "layout: '{ u8 tag @0; u32 x @4; u16 y @8 } size 12 align 4'"} {
			if !strings.Contains(stdout, want) {
				t.Fatalf("%s report missing %q:\n%s", flag, want, stdout)
			}
		}
	}
}

func TestCheckLoadErrors(t *testing.T) {
	code, _, stderr := captureCLI(t, []string{"check", filepath.Join("testdata", "broken.yml")})
	if code != exitUsage || !strings.Contains(stderr, "missing varType") {
		t.Fatalf("broken program: code=%d stderr=%s", code, stderr)
	}
	code, _, _ = captureCLI(t, []string{"check"})
	if code != exitUsage {
		t.Fatalf("check without programs should be a usage error, got %d", code)
	}
	code, _, stderr = captureCLI(t, []string{"check", "--verbose", fixture("point.yml")})
	if code != exitUsage || !strings.Contains(stderr, "unknown option --verbose") {
		t.Fatalf("unknown option: code=%d stderr=%s", code, stderr)
	}
}

func TestLayoutCommand(t *testing.T) {
	code, stdout, stderr := captureCLI(t, []string{"layout", fixture("point.yml")})
	if code != exitOK {
		t.Fatalf("layout exited %d: %s", code, stderr)
	}
	want := "point = struct { u8 tag; u32 x; u16 y; }\n  { u8 tag @0; u32 x @4; u16 y @8 } size 12 align 4\n"
	if stdout != want {
		t.Fatalf("layout output = %q, want %q", stdout, want)
	}

	code, _, _ = captureCLI(t, []string{"layout", fixture("mismatch.yml")})
	if code != exitDiagnostics {
		t.Fatalf("layout of an invalid program should exit %d, got %d", exitDiagnostics, code)
	}
}

func TestFixturesCommand(t *testing.T) {
	dir := filepath.Join("testdata", "fixtures")
	code, stdout, _ := captureCLI(t, []string{"fixtures", dir})
	if code != exitDiagnostics {
		t.Fatalf("expected the failing fixture to fail the run, got %d:\n%s", code, stdout)
	}
	if !strings.Contains(stdout, "FAIL "+filepath.Join(dir, "failing", "wrong_expectation.yml")) {
		t.Fatalf("failing fixture not reported:\n%s", stdout)
	}
	if !strings.Contains(stdout, "got [break-outside-loop]") {
		t.Fatalf("mismatch detail missing:\n%s", stdout)
	}
	if !strings.HasSuffix(stdout, "3 passed, 1 failed\n") {
		t.Fatalf("unexpected summary:\n%s", stdout)
	}

	code, stdout, _ = captureCLI(t, []string{"fixtures", t.TempDir()})
	if code != exitOK || !strings.Contains(stdout, "no fixtures found") {
		t.Fatalf("empty dir: code=%d stdout=%s", code, stdout)
	}
	code, _, _ = captureCLI(t, []string{"fixtures", fixture("point.yml")})
	if code != exitUsage {
		t.Fatalf("file argument should be a usage error, got %d", code)
	}
}

func TestParseGlobalOptions(t *testing.T) {
	opts, rest, err := parseGlobalOptions([]string{"--config=x.yml", "--mode", "Accumulate", "--debug", "check", "--hoist"})
	if err != nil {
		t.Fatalf("parseGlobalOptions returned error: %v", err)
	}
	if opts.ConfigPath != "x.yml" || opts.Mode != "accumulate" || !opts.Debug || opts.Hoist {
		t.Fatalf("options unexpected: %#v", opts)
	}
	if strings.Join(rest, " ") != "check --hoist" {
		t.Fatalf("remaining args unexpected: %v", rest)
	}
	for _, args := range [][]string{{"--config"}, {"--mode=lenient"}, {"--mode"}} {
		if _, _, err := parseGlobalOptions(args); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}
