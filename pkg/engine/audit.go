package engine

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Result is the outcome of auditing one contract file.
// Only the first five fields are serialized, in this order.
type Result struct {
	File      string    `json:"file" yaml:"file"`
	Features  Features  `json:"features" yaml:"features"`
	RiskScore int       `json:"risk_score" yaml:"risk_score"`
	RiskLevel RiskLevel `json:"risk_level" yaml:"risk_level"`
	Label     Label     `json:"label" yaml:"label"`

	Contributions []Contribution `json:"-" yaml:"-"`
	Findings      []Finding      `json:"-" yaml:"-"`
	Fingerprint   common.Hash    `json:"-" yaml:"-"` // Keccak-256 of the source bytes
}

// AuditToken reads, extracts and scores a contract file.
// Errors from reading the file are returned unmodified and no result is produced.
func AuditToken(path string) (*Result, error) {
	source, err := ReadSource(path)
	if err != nil {
		return nil, err
	}
	return AuditSource(path, source), nil
}

// AuditSource scores already loaded source text, labelling the result with file
func AuditSource(file, source string) *Result {
	features := ExtractFeatures(source)
	assessment := ScoreToken(features)

	return &Result{
		File:          file,
		Features:      features,
		RiskScore:     assessment.Score,
		RiskLevel:     assessment.Level,
		Label:         assessment.Label,
		Contributions: assessment.Contributions,
		Findings:      LocateFindings(source),
		Fingerprint:   crypto.Keccak256Hash([]byte(source)),
	}
}
