package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/template"

	"gopkg.in/yaml.v3"
)

// Output formats understood by Render
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatText = "text"
)

// ErrUnknownFormat is returned by Render for an unsupported output format
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the supported output formats
func Formats() []string {
	return []string{FormatJSON, FormatYAML, FormatText}
}

const textReport = `Token Audit Report
--------------------------------------------------
File:        {{.File}}
Fingerprint: {{.Fingerprint.Hex}}
Risk Score:  {{.RiskScore}}/100
Risk Level:  {{.RiskLevel}} ({{.Label}})

Features:
{{range .Features}}  {{printf "%-18s" .Name}} {{value .Value}}
{{end}}
Score Breakdown:
{{if .Contributions}}{{range .Contributions}}  +{{printf "%-3d" .Points}} {{.Rule}}
{{end}}{{else}}  no rules fired
{{end}}
Evidence:
{{if .Findings}}{{range .Findings}}  [{{.Rule}}] line {{.Line}}: {{.Evidence}}
{{end}}{{else}}  none
{{end}}`

var textTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"value": func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
}).Parse(textReport))

// Render writes result to w in the given format
func Render(w io.Writer, format string, result *Result) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, result)
	case FormatYAML:
		return WriteYAML(w, result)
	case FormatText:
		return WriteText(w, result)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WriteJSON writes result as indented JSON followed by a newline
func WriteJSON(w io.Writer, result *Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// WriteYAML writes result as a YAML document
func WriteYAML(w io.Writer, result *Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return enc.Close()
}

// WriteText writes a human readable report
func WriteText(w io.Writer, result *Result) error {
	if err := textTemplate.Execute(w, result); err != nil {
		return fmt.Errorf("failed to execute template report: %w", err)
	}
	return nil
}
