package usecase_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/quill/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/quill/pkg/domain/model"
	"github.com/secmon-lab/quill/pkg/domain/types"
	"github.com/secmon-lab/quill/pkg/repository"
	"github.com/secmon-lab/quill/pkg/service/markdown"
	"github.com/secmon-lab/quill/pkg/usecase"
)

// majorIssues builds n MAJOR issues whose global (file, line, key) order
// matches ascending key order, returned in reverse so the pipeline has
// to sort them.
func majorIssues(n int) []*model.Issue {
	issues := make([]*model.Issue, 0, n)
	for i := n - 1; i >= 0; i-- {
		issues = append(issues, &model.Issue{
			Key:       types.IssueKey(fmt.Sprintf("K%02d", i)),
			Component: fmt.Sprintf("my-org_my-project:pkg/f%02d.go", i/10),
			Line:      i % 10,
			Severity:  types.SeverityMajor,
			Message:   "synthetic finding",
		})
	}
	return issues
}

func newExport(source *mocks.IssueSourceMock, store *repository.Memory, opts ...usecase.ExportOption) *usecase.Export {
	renderer := markdown.NewRenderer("https://sonar.test", "my-org_my-project")
	return usecase.NewExport(source, store, renderer, "my-org", "my-org_my-project", opts...)
}

func TestExportChunkedMajorBucket(t *testing.T) {
	ctx := context.Background()
	source := &mocks.IssueSourceMock{
		SearchUnresolvedFunc: func(ctx context.Context) ([]*model.Issue, error) {
			return majorIssues(45), nil
		},
	}
	store := repository.NewMemory()

	gt.NoError(t, newExport(source, store).Run(ctx))

	gt.Equal(t, store.ReportNames(), []string{
		"BLOCKER.md", "CRITICAL.md", "INFO.md",
		"MAJOR1.md", "MAJOR2.md", "MAJOR3.md",
		"MINOR.md",
	})

	countRows := func(name string) int {
		content, ok := store.GetReport(name)
		gt.True(t, ok)
		return strings.Count(content, "[K")
	}
	gt.Equal(t, countRows("MAJOR1.md"), 20)
	gt.Equal(t, countRows("MAJOR2.md"), 20)
	gt.Equal(t, countRows("MAJOR3.md"), 5)

	t.Run("order is file then line then key across chunk boundaries", func(t *testing.T) {
		var joined string
		for _, name := range []string{"MAJOR1.md", "MAJOR2.md", "MAJOR3.md"} {
			content, _ := store.GetReport(name)
			joined += content
		}

		prev := -1
		for i := 0; i < 45; i++ {
			pos := strings.Index(joined, fmt.Sprintf("[K%02d]", i))
			gt.True(t, pos > prev)
			prev = pos
		}
	})

	t.Run("chunked files carry part markers", func(t *testing.T) {
		content, _ := store.GetReport("MAJOR2.md")
		gt.S(t, content).Contains("# MAJOR issues: my-org/my-org_my-project, part 2 of 3")
	})

	t.Run("empty severities get one placeholder file each", func(t *testing.T) {
		for _, name := range []string{"BLOCKER.md", "CRITICAL.md", "MINOR.md", "INFO.md"} {
			content, ok := store.GetReport(name)
			gt.True(t, ok)
			gt.S(t, content).Contains(markdown.EmptyPlaceholder)
			gt.False(t, strings.Contains(content, "part"))
		}
	})
}

func TestExportHeader(t *testing.T) {
	ctx := context.Background()
	source := &mocks.IssueSourceMock{
		SearchUnresolvedFunc: func(ctx context.Context) ([]*model.Issue, error) {
			return majorIssues(3), nil
		},
	}
	store := repository.NewMemory()

	uc := newExport(source, store, usecase.WithBranch("release-1.4"))
	gt.NoError(t, uc.Run(ctx))

	content, ok := store.GetReport("MAJOR1.md")
	gt.True(t, ok)

	// single chunk: branch named, no part marker
	gt.S(t, content).Contains("# MAJOR issues: my-org/my-org_my-project (branch release-1.4)")
	gt.False(t, strings.Contains(content, "part 1 of"))
}

func TestExportUnknownSeverity(t *testing.T) {
	ctx := context.Background()
	source := &mocks.IssueSourceMock{
		SearchUnresolvedFunc: func(ctx context.Context) ([]*model.Issue, error) {
			return []*model.Issue{
				{Key: "W1", Component: "p:a.go", Severity: "WHISPER"},
			}, nil
		},
	}
	store := repository.NewMemory()

	gt.NoError(t, newExport(source, store).Run(ctx))

	content, ok := store.GetReport("WHISPER1.md")
	gt.True(t, ok)
	gt.S(t, content).Contains("[W1]")
}

func TestExportCustomScheme(t *testing.T) {
	ctx := context.Background()
	source := &mocks.IssueSourceMock{
		SearchUnresolvedFunc: func(ctx context.Context) ([]*model.Issue, error) {
			return []*model.Issue{
				{Key: "H1", Component: "p:a.go", Severity: "HIGH"},
			}, nil
		},
	}
	store := repository.NewMemory()

	scheme := &model.SeverityScheme{Severities: []types.Severity{"HIGH", "LOW"}}
	uc := newExport(source, store, usecase.WithSeverityScheme(scheme))
	gt.NoError(t, uc.Run(ctx))

	gt.Equal(t, store.ReportNames(), []string{"HIGH1.md", "LOW.md"})
}

func TestExportAbortsBeforeWriteOnFetchFailure(t *testing.T) {
	ctx := context.Background()
	source := &mocks.IssueSourceMock{
		SearchUnresolvedFunc: func(ctx context.Context) ([]*model.Issue, error) {
			return nil, goerr.New("issue search returned non-success status",
				goerr.V("status", 502))
		},
	}
	store := repository.NewMemory()

	err := newExport(source, store).Run(ctx)
	gt.Error(t, err)
	gt.Equal(t, len(store.ReportNames()), 0)
}

func TestExportStoreFailureStopsRun(t *testing.T) {
	ctx := context.Background()
	source := &mocks.IssueSourceMock{
		SearchUnresolvedFunc: func(ctx context.Context) ([]*model.Issue, error) {
			return nil, nil
		},
	}

	var writes int
	store := &mocks.ReportStoreMock{
		WriteReportFunc: func(ctx context.Context, name string, content string) error {
			writes++
			return goerr.New("disk full")
		},
	}

	renderer := markdown.NewRenderer("https://sonar.test", "p")
	uc := usecase.NewExport(source, store, renderer, "my-org", "p")

	gt.Error(t, uc.Run(ctx))
	gt.Equal(t, writes, 1)
}
