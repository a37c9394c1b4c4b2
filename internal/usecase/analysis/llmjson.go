package analysis

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"tosraider/internal/domain/entity"
)

// ClauseAnalysis is the object the model is instructed to return for one
// chunk. Enforceable stays nil when the model answered null or omitted it.
type ClauseAnalysis struct {
	Category        string  `json:"category"`
	RiskLevel       string  `json:"risk_level"`
	Enforceable     *bool   `json:"enforceable"`
	LoopholeSummary *string `json:"loophole_summary"`
}

var (
	ErrNoJSON       = errors.New("no JSON object found in model output")
	ErrBadRiskLevel = errors.New("risk_level outside low/medium/high")

	fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")
)

// ExtractJSON locates a JSON object inside free-form model output. Grammar,
// in order: a fenced code block containing an object, then the first
// balanced-brace span in the raw text. Anything else is ErrNoJSON.
func ExtractJSON(raw string) (string, error) {
	if m := fencedBlock.FindStringSubmatch(raw); m != nil {
		return m[1], nil
	}
	if span, ok := firstBraceSpan(raw); ok {
		return span, nil
	}
	return "", ErrNoJSON
}

// firstBraceSpan returns the first balanced {...} span, tracking string
// literals so braces inside values do not break the count.
func firstBraceSpan(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

// ParseClauseAnalysis extracts and decodes the model's reply into a typed
// result, applying defaults for missing fields: category "uncategorized",
// risk level low, loophole summary nil. A risk level outside the closed set
// is a parse failure, not a default.
func ParseClauseAnalysis(raw string) (*ClauseAnalysis, error) {
	jsonStr, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}

	var analysis ClauseAnalysis
	if err := json.Unmarshal([]byte(jsonStr), &analysis); err != nil {
		return nil, err
	}

	if analysis.Category == "" {
		analysis.Category = "uncategorized"
	}

	analysis.RiskLevel = strings.ToLower(strings.TrimSpace(analysis.RiskLevel))
	if analysis.RiskLevel == "" {
		analysis.RiskLevel = string(entity.RiskLow)
	}
	if !entity.RiskLevel(analysis.RiskLevel).Valid() {
		return nil, ErrBadRiskLevel
	}

	if analysis.LoopholeSummary != nil && *analysis.LoopholeSummary == "" {
		analysis.LoopholeSummary = nil
	}

	return &analysis, nil
}
