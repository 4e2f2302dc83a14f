package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/quill/pkg/domain/interfaces"
	"github.com/secmon-lab/quill/pkg/domain/model"
	"github.com/secmon-lab/quill/pkg/domain/types"
	"github.com/secmon-lab/quill/pkg/service/markdown"
)

// DefaultChunkSize is the maximum number of issues per report file
const DefaultChunkSize = 20

// Export runs the whole pipeline: fetch every unresolved issue, group
// by severity, sort, split into chunks and persist one Markdown file
// per chunk.
type Export struct {
	source    interfaces.IssueSource
	store     interfaces.ReportStore
	renderer  *markdown.Renderer
	scheme    *model.SeverityScheme
	org       types.Organization
	project   types.ProjectKey
	branch    types.BranchName
	chunkSize int
}

// ExportOption configures an Export use case
type ExportOption func(*Export)

// WithBranch records the branch filter for report headers
func WithBranch(branch types.BranchName) ExportOption {
	return func(x *Export) {
		x.branch = branch
	}
}

// WithChunkSize sets the maximum number of issues per file
func WithChunkSize(size int) ExportOption {
	return func(x *Export) {
		x.chunkSize = size
	}
}

// WithSeverityScheme replaces the default severity scheme
func WithSeverityScheme(scheme *model.SeverityScheme) ExportOption {
	return func(x *Export) {
		x.scheme = scheme
	}
}

// NewExport creates a new Export use case
func NewExport(source interfaces.IssueSource, store interfaces.ReportStore, renderer *markdown.Renderer, org types.Organization, project types.ProjectKey, opts ...ExportOption) *Export {
	x := &Export{
		source:    source,
		store:     store,
		renderer:  renderer,
		scheme:    model.DefaultSeverityScheme(),
		org:       org,
		project:   project,
		chunkSize: DefaultChunkSize,
	}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// Run executes one export. Any fetch failure aborts before any file is
// written; write failures abort the remaining files.
func (x *Export) Run(ctx context.Context) error {
	exportID := types.NewExportID()
	logger := ctxlog.From(ctx).With(slog.String("export_id", exportID.String()))
	ctx = ctxlog.With(ctx, logger)

	logger.Info("Starting export",
		slog.String("organization", x.org.String()),
		slog.String("project", x.project.String()),
		slog.String("branch", x.branch.String()),
	)

	issues, err := x.source.SearchUnresolved(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to fetch unresolved issues",
			goerr.V("project", x.project))
	}

	report := model.NewReport(x.scheme.Severities, issues)

	var files int
	for _, bucket := range report.Buckets {
		chunks := bucket.Chunks(x.chunkSize)

		// An empty bucket still produces one file, without a chunk
		// index, holding the empty-table placeholder.
		if len(chunks) == 0 {
			name := fmt.Sprintf("%s.md", bucket.Severity)
			if err := x.writeFile(ctx, name, bucket.Severity, nil, 1, 1, exportID); err != nil {
				return err
			}
			files++
			continue
		}

		for i, chunk := range chunks {
			name := fmt.Sprintf("%s%d.md", bucket.Severity, i+1)
			if err := x.writeFile(ctx, name, bucket.Severity, chunk, i+1, len(chunks), exportID); err != nil {
				return err
			}
			files++
		}
	}

	logger.Info("Export complete",
		slog.Int("issues", report.TotalIssues()),
		slog.Int("files", files),
	)

	return nil
}

func (x *Export) writeFile(ctx context.Context, name string, severity types.Severity, issues []*model.Issue, part, parts int, exportID types.ExportID) error {
	content := x.header(severity, part, parts) + "\n\n" +
		x.renderer.Render(issues) + "\n" +
		x.footer(exportID)

	if err := x.store.WriteReport(ctx, name, content); err != nil {
		return goerr.Wrap(err, "failed to write report",
			goerr.V("file", name))
	}

	ctxlog.From(ctx).Info("Wrote report file",
		slog.String("file", name),
		slog.Int("issues", len(issues)),
	)

	return nil
}

// header builds the first line of a report file, naming organization,
// project, the optional branch and the chunk position when the bucket
// spans more than one file.
func (x *Export) header(severity types.Severity, part, parts int) string {
	h := fmt.Sprintf("# %s issues: %s/%s", severity, x.org, x.project)
	if x.branch != "" {
		h += fmt.Sprintf(" (branch %s)", x.branch)
	}
	if parts > 1 {
		h += fmt.Sprintf(", part %d of %d", part, parts)
	}
	return h
}

func (x *Export) footer(exportID types.ExportID) string {
	return fmt.Sprintf("_Generated %s by %s_\n", time.Now().Format("2006-01-02"), exportID)
}
