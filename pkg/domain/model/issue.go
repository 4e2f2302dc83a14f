package model

import (
	"strings"

	"github.com/secmon-lab/quill/pkg/domain/types"
)

// Issue represents a single unresolved finding reported by the remote
// analysis service. It is decoded from the wire format as-is and never
// mutated after fetch.
type Issue struct {
	Key          types.IssueKey `json:"key"`
	Component    string         `json:"component"`
	Project      string         `json:"project"`
	Type         string         `json:"type"`
	Rule         string         `json:"rule"`
	Severity     types.Severity `json:"severity"`
	Status       string         `json:"status"`
	Line         int            `json:"line,omitempty"`
	Message      string         `json:"message"`
	CreationDate string         `json:"creationDate"`
}

// FilePath returns the file path portion of the component identifier,
// i.e. everything after the first colon of "project:path". It returns
// an empty string when the component has no colon.
func (x *Issue) FilePath() string {
	_, path, found := strings.Cut(x.Component, ":")
	if !found {
		return ""
	}
	return path
}

// LineOrZero returns the line number, treating an absent line as 0
func (x *Issue) LineOrZero() int {
	if x.Line < 0 {
		return 0
	}
	return x.Line
}

// CreationDay returns the calendar-day portion (YYYY-MM-DD) of the
// creation timestamp, or an empty string when the timestamp is absent.
func (x *Issue) CreationDay() string {
	if len(x.CreationDate) < 10 {
		return ""
	}
	return x.CreationDate[:10]
}

// Less reports whether x sorts before other under the
// (file path, line, key) comparator. With unique keys this is a strict
// total order, so sorting is deterministic and idempotent.
func (x *Issue) Less(other *Issue) bool {
	if xp, op := x.FilePath(), other.FilePath(); xp != op {
		return xp < op
	}
	if xl, ol := x.LineOrZero(), other.LineOrZero(); xl != ol {
		return xl < ol
	}
	return x.Key < other.Key
}
