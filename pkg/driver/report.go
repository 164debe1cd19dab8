package driver

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/avaunit02/lang/pkg/layout"
	"github.com/avaunit02/lang/pkg/types"
)

// Report is the YAML summary written by `langc check --report`.
type Report struct {
	Path        string             `yaml:"path"`
	OK          bool               `yaml:"ok"`
	Functions   []FunctionReport   `yaml:"functions,omitempty"`
	Types       []TypeReport       `yaml:"types,omitempty"`
	Diagnostics []DiagnosticReport `yaml:"diagnostics,omitempty"`
}

type FunctionReport struct {
	Name    string   `yaml:"name"`
	Params  []string `yaml:"params,flow"`
	Returns string   `yaml:"returns"`
}

type TypeReport struct {
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	Layout string `yaml:"layout,omitempty"`
}

type DiagnosticReport struct {
	Code     string `yaml:"code"`
	Kind     string `yaml:"kind"`
	Location string `yaml:"location,omitempty"`
	Message  string `yaml:"message"`
}

// BuildReport summarises a check result. Named types whose layout cannot be
// computed are reported without one.
func BuildReport(r *CheckResult) *Report {
	report := &Report{Path: r.Program.Path, OK: r.OK()}
	names := r.Program.Symbols
	if res := r.Result; res != nil && res.Functions != nil {
		for _, id := range res.Functions.Keys() {
			sig, _ := res.Functions.Lookup(id)
			fn := FunctionReport{
				Name:    names.Name(id),
				Params:  make([]string, len(sig.Params)),
				Returns: types.Render(sig.Return, names),
			}
			for i, param := range sig.Params {
				fn.Params[i] = types.Render(param, names)
			}
			report.Functions = append(report.Functions, fn)
		}
	}
	if res := r.Result; res != nil {
		for _, named := range res.NamedTypes {
			entry := TypeReport{
				Name: names.Name(named.Name),
				Type: types.Render(named.Type, names),
			}
			if l, err := layout.Of(named.Type); err == nil {
				entry.Layout = l.Format(names)
			}
			report.Types = append(report.Types, entry)
		}
	}
	for _, diag := range r.Diagnostics {
		report.Diagnostics = append(report.Diagnostics, DiagnosticReport{
			Code:     diag.Kind.Code(),
			Kind:     diag.Kind.Slug(),
			Location: formatDiagnosticLocation(diagnosticLocation("", diag)),
			Message:  diagnosticMessage(diag),
		})
	}
	return report
}

// WriteReport encodes reports as a YAML document stream.
func WriteReport(w io.Writer, reports ...*Report) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	for _, report := range reports {
		if report == nil {
			return fmt.Errorf("report: nil report")
		}
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("report: marshal %s: %w", report.Path, err)
		}
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("report: encoder close: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}
