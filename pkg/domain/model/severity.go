package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/quill/pkg/domain/types"
)

// SeverityScheme represents an ordered severity classification loaded
// from a YAML scheme file. The order defines both bucket order and file
// output order.
type SeverityScheme struct {
	Severities []types.Severity `yaml:"severities"`
}

// Validate validates the severity scheme
func (x *SeverityScheme) Validate() error {
	if len(x.Severities) == 0 {
		return goerr.New("at least one severity is required")
	}

	seen := make(map[types.Severity]bool)
	for i, sev := range x.Severities {
		if sev == "" {
			return goerr.New("empty severity label", goerr.V("index", i))
		}
		if seen[sev] {
			return goerr.New("duplicate severity label",
				goerr.V("label", sev))
		}
		seen[sev] = true
	}

	return nil
}

// DefaultSeverityScheme returns the standard five-level scheme in
// priority order.
func DefaultSeverityScheme() *SeverityScheme {
	return &SeverityScheme{Severities: types.KnownSeverities()}
}
