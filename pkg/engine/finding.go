package engine

import "strings"

const maxEvidenceRunes = 120

// Finding points at where a risk pattern first matched in the source
type Finding struct {
	Rule        string `json:"rule" yaml:"rule"`
	Description string `json:"description" yaml:"description"`
	Line        int    `json:"line" yaml:"line"` // 1-based
	Evidence    string `json:"evidence" yaml:"evidence"`
}

// LocateFindings returns one finding per pattern that matches, in pattern table order
func LocateFindings(source string) []Finding {
	var findings []Finding
	var spans []lineSpan

	for _, p := range patternTable {
		loc := p.Expr.FindStringIndex(source)
		if loc == nil {
			continue
		}
		if spans == nil {
			spans = lineSpans(source)
		}

		line := lineOf(spans, loc[0])
		evidence := ""
		if line <= len(spans) {
			span := spans[line-1]
			evidence = truncate(strings.TrimSpace(source[span.start:span.end]), maxEvidenceRunes)
		}

		findings = append(findings, Finding{
			Rule:        p.Name,
			Description: p.Description,
			Line:        line,
			Evidence:    evidence,
		})
	}
	return findings
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
