package markdown

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/secmon-lab/quill/pkg/domain/model"
	"github.com/secmon-lab/quill/pkg/domain/types"
)

// EmptyPlaceholder is rendered instead of a table when a severity has
// no issues.
const EmptyPlaceholder = "No unresolved issues."

var tableHeader = []string{"Key", "File", "Line", "Type", "Rule", "Message", "Status", "Created"}

// Renderer converts ordered issue sequences into Markdown tables. Each
// key cell links back to the issue page of the remote service.
type Renderer struct {
	baseURL string
	project types.ProjectKey
}

// NewRenderer creates a new Renderer. baseURL is the service root used
// for issue deep links, e.g. "https://sonarcloud.io".
func NewRenderer(baseURL string, project types.ProjectKey) *Renderer {
	return &Renderer{
		baseURL: strings.TrimRight(baseURL, "/"),
		project: project,
	}
}

// Render produces a Markdown table for the given issues, one row per
// issue in input order. An empty input yields EmptyPlaceholder instead
// of an empty table shell.
func (x *Renderer) Render(issues []*model.Issue) string {
	if len(issues) == 0 {
		return EmptyPlaceholder + "\n"
	}

	var sb strings.Builder
	sb.WriteString("| " + strings.Join(tableHeader, " | ") + " |\n")
	sb.WriteString("|" + strings.Repeat(" --- |", len(tableHeader)) + "\n")

	for _, issue := range issues {
		line := ""
		if issue.LineOrZero() > 0 {
			line = strconv.Itoa(issue.LineOrZero())
		}

		cells := []string{
			"[" + escapeCell(issue.Key.String()) + "](" + x.issueURL(issue.Key) + ")",
			escapeCell(issue.FilePath()),
			line,
			escapeCell(issue.Type),
			escapeCell(issue.Rule),
			escapeCell(issue.Message),
			escapeCell(issue.Status),
			issue.CreationDay(),
		}
		sb.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}

	return sb.String()
}

// issueURL builds the deep link to one issue on the remote service
func (x *Renderer) issueURL(key types.IssueKey) string {
	query := url.Values{}
	query.Set("id", x.project.String())
	query.Set("open", key.String())
	return x.baseURL + "/project/issues?" + query.Encode()
}

// escapeCell keeps a value on one visual table row: pipes cannot break
// column boundaries and embedded newlines of either convention become
// explicit line breaks.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "<br>")
	s = strings.ReplaceAll(s, "\n", "<br>")
	s = strings.ReplaceAll(s, "\r", "<br>")
	s = strings.ReplaceAll(s, "|", "\\|")
	return s
}
