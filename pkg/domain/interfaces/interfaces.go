package interfaces

//go:generate moq -out mocks/source_mock.go -pkg mocks . IssueSource
//go:generate moq -out mocks/store_mock.go -pkg mocks . ReportStore

import (
	"context"

	"github.com/secmon-lab/quill/pkg/domain/model"
)

// IssueSource provides the complete unresolved-issue set of the
// configured project.
type IssueSource interface {
	// SearchUnresolved fetches every unresolved issue, paginating until
	// the declared total is covered. It returns no partial results: any
	// page failure fails the whole fetch.
	SearchUnresolved(ctx context.Context) ([]*model.Issue, error)
}

// ReportStore persists rendered report files by name, overwriting any
// previous file with the same name.
type ReportStore interface {
	WriteReport(ctx context.Context, name string, content string) error
}
