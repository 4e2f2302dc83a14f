package types

import (
	"fmt"

	"github.com/google/uuid"
)

// IssueKey represents the unique key of a remote issue
type IssueKey string

// String returns the string representation
func (k IssueKey) String() string {
	return string(k)
}

// Severity represents an issue severity label
type Severity string

// String returns the string representation
func (s Severity) String() string {
	return string(s)
}

// Known severity labels in priority order
const (
	SeverityBlocker  Severity = "BLOCKER"
	SeverityCritical Severity = "CRITICAL"
	SeverityMajor    Severity = "MAJOR"
	SeverityMinor    Severity = "MINOR"
	SeverityInfo     Severity = "INFO"
)

// KnownSeverities returns the known severity labels in priority order.
// The slice is a copy and safe to modify.
func KnownSeverities() []Severity {
	return []Severity{
		SeverityBlocker,
		SeverityCritical,
		SeverityMajor,
		SeverityMinor,
		SeverityInfo,
	}
}

// Organization represents a remote organization identifier
type Organization string

// String returns the string representation
func (o Organization) String() string {
	return string(o)
}

// ProjectKey represents a remote project identifier
type ProjectKey string

// String returns the string representation
func (k ProjectKey) String() string {
	return string(k)
}

// BranchName represents an optional branch filter
type BranchName string

// String returns the string representation
func (b BranchName) String() string {
	return string(b)
}

// ExportID identifies one export run
type ExportID string

// String returns the string representation
func (id ExportID) String() string {
	return string(id)
}

// NewExportID creates a new ExportID
func NewExportID() ExportID {
	return ExportID(fmt.Sprintf("export-%s", uuid.New().String()))
}
