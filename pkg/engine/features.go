package engine

import (
	"bytes"
	"encoding/json"
	"regexp"
	"sort"
	"strconv"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Feature names produced by ExtractFeatures, in output order
const (
	FeatureLines          = "n_lines"
	FeaturePublic         = "n_public"
	FeatureExternal       = "n_external"
	FeatureMint           = "has_mint"
	FeatureOwnerMint      = "has_owner_mint"
	FeatureSetFee         = "has_set_fee"
	FeatureBlacklist      = "has_blacklist"
	FeatureTradingLock    = "has_trading_lock"
	FeatureMaxTransaction = "has_max_tx"
)

// Pattern is a named detection rule for a risky token construct
type Pattern struct {
	Name        string
	Expr        *regexp.Regexp
	Description string
}

// patternTable is evaluated in order; every entry becomes a 0/1 feature.
var patternTable = []Pattern{
	{FeatureMint, regexp.MustCompile(`(?i)\bmint\s*\(`), "mint call or declaration"},
	{FeatureOwnerMint, regexp.MustCompile(`(?i)onlyOwner[\s\S]*function\s+mint`), "onlyOwner guard appearing before a mint declaration"},
	{FeatureSetFee, regexp.MustCompile(`(?i)setFee|setTax|setBuyFee|setSellFee`), "owner-adjustable fee or tax"},
	{FeatureBlacklist, regexp.MustCompile(`(?i)blacklist|isBlacklisted`), "address blacklist"},
	{FeatureTradingLock, regexp.MustCompile(`(?i)tradingOpen|enableTrading|disableTrading|lockTrading`), "trading on/off switch"},
	{FeatureMaxTransaction, regexp.MustCompile(`(?i)maxTxAmount|maxTransactionAmount|maxTx`), "max transaction limit"},
}

var (
	publicKeyword   = regexp.MustCompile(`\bpublic\b`)
	externalKeyword = regexp.MustCompile(`\bexternal\b`)
)

// Patterns returns a copy of the pattern table in evaluation order
func Patterns() []Pattern {
	out := make([]Pattern, len(patternTable))
	copy(out, patternTable)
	return out
}

// Feature is a single named signal derived from contract source
type Feature struct {
	Name  string
	Value float64
}

// Features is an ordered feature mapping
type Features []Feature

// Get returns the value for name, or 0 if the feature is absent
func (f Features) Get(name string) float64 {
	for _, feat := range f {
		if feat.Name == name {
			return feat.Value
		}
	}
	return 0
}

// Names returns the feature names in order
func (f Features) Names() []string {
	names := make([]string, len(f))
	for i, feat := range f {
		names[i] = feat.Name
	}
	return names
}

// MarshalJSON encodes the features as an object, keeping declaration order
func (f Features) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, feat := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(feat.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(feat.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the features as a mapping, keeping declaration order
func (f Features) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, feat := range f {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: feat.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Value: strconv.FormatFloat(feat.Value, 'f', -1, 64)},
		)
	}
	return node, nil
}

// ExtractFeatures derives the lexical feature mapping from contract source.
// It is total: any string, including the empty one, yields a complete mapping.
func ExtractFeatures(source string) Features {
	features := make(Features, 0, 3+len(patternTable))
	features = append(features,
		Feature{FeatureLines, float64(CountLines(source))},
		Feature{FeaturePublic, float64(len(publicKeyword.FindAllStringIndex(source, -1)))},
		Feature{FeatureExternal, float64(len(externalKeyword.FindAllStringIndex(source, -1)))},
	)

	for _, p := range patternTable {
		hit := 0.0
		if p.Expr.MatchString(source) {
			hit = 1.0
		}
		features = append(features, Feature{p.Name, hit})
	}
	return features
}

// lineSpan is a byte range of one line, excluding its terminator
type lineSpan struct {
	start, end int
}

// lineSpans splits source on \n, \r\n, \r, \v, \f, \x1c-\x1e, U+0085, U+2028 and U+2029.
// A trailing terminator does not open an extra empty line.
func lineSpans(source string) []lineSpan {
	var spans []lineSpan
	start := 0
	for i := 0; i < len(source); {
		r, size := utf8.DecodeRuneInString(source[i:])
		if !isLineTerminator(r) {
			i += size
			continue
		}
		spans = append(spans, lineSpan{start, i})
		i += size
		if r == '\r' && i < len(source) && source[i] == '\n' {
			i++
		}
		start = i
	}
	if start < len(source) {
		spans = append(spans, lineSpan{start, len(source)})
	}
	return spans
}

func isLineTerminator(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// CountLines returns the number of lines in source; the empty string has zero lines
func CountLines(source string) int {
	return len(lineSpans(source))
}

// lineOf returns the 1-based line number containing byte offset off
func lineOf(spans []lineSpan, off int) int {
	i := sort.Search(len(spans), func(i int) bool { return spans[i].start > off })
	if i == 0 {
		return 1
	}
	return i
}
