package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/quill/pkg/domain/types"
	"github.com/secmon-lab/quill/pkg/service/sonar"
	"github.com/urfave/cli/v3"
)

// Compiled-in scope of the exporter. Both can still be overridden by
// flag for one-off runs against another project.
const (
	DefaultOrganization = "secmon-lab"
	DefaultProject      = "secmon-lab_quill"
)

// Sonar holds configuration for the remote code-quality API
type Sonar struct {
	Token        string
	Organization string
	Project      string
	Branch       string
	PageSize     int
	BaseURL      string
}

// Flags returns CLI flags for Sonar configuration
func (x *Sonar) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "token",
			Usage:       "API token for the code-quality service",
			Category:    "Sonar",
			Sources:     cli.EnvVars("SONAR_TOKEN"),
			Destination: &x.Token,
		},
		&cli.StringFlag{
			Name:        "organization",
			Usage:       "Organization identifier",
			Category:    "Sonar",
			Value:       DefaultOrganization,
			Sources:     cli.EnvVars("QUILL_ORGANIZATION"),
			Destination: &x.Organization,
		},
		&cli.StringFlag{
			Name:        "project",
			Usage:       "Project key to export issues from",
			Category:    "Sonar",
			Value:       DefaultProject,
			Sources:     cli.EnvVars("QUILL_PROJECT"),
			Destination: &x.Project,
		},
		&cli.StringFlag{
			Name:        "branch",
			Usage:       "Restrict the export to one branch",
			Category:    "Sonar",
			Sources:     cli.EnvVars("QUILL_BRANCH"),
			Destination: &x.Branch,
		},
		&cli.IntFlag{
			Name:        "page-size",
			Usage:       "Search page size",
			Category:    "Sonar",
			Value:       sonar.DefaultPageSize,
			Sources:     cli.EnvVars("QUILL_PAGE_SIZE"),
			Destination: &x.PageSize,
		},
		&cli.StringFlag{
			Name:        "base-url",
			Usage:       "Base URL of the code-quality service",
			Category:    "Sonar",
			Value:       sonar.DefaultBaseURL,
			Sources:     cli.EnvVars("QUILL_BASE_URL"),
			Destination: &x.BaseURL,
		},
	}
}

// Validate validates the Sonar configuration. It runs before any
// network activity so a missing token never issues a request.
func (x *Sonar) Validate() error {
	if x.Token == "" {
		return goerr.New("API token is required. Set SONAR_TOKEN or --token")
	}
	if x.Organization == "" {
		return goerr.New("organization is required")
	}
	if x.Project == "" {
		return goerr.New("project is required")
	}
	if x.PageSize <= 0 {
		return goerr.New("page size must be positive",
			goerr.V("pageSize", x.PageSize))
	}
	return nil
}

// Configure creates the API client
func (x *Sonar) Configure() *sonar.Client {
	opts := []sonar.Option{
		sonar.WithBaseURL(x.BaseURL),
		sonar.WithPageSize(x.PageSize),
	}
	if x.Branch != "" {
		opts = append(opts, sonar.WithBranch(types.BranchName(x.Branch)))
	}

	return sonar.New(x.Token,
		types.Organization(x.Organization),
		types.ProjectKey(x.Project),
		opts...,
	)
}

// LogValue returns structured log value. The token itself never reaches
// the log output.
func (x Sonar) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_token", x.Token != ""),
		slog.String("organization", x.Organization),
		slog.String("project", x.Project),
		slog.String("branch", x.Branch),
		slog.Int("page_size", x.PageSize),
		slog.String("base_url", x.BaseURL),
	)
}
