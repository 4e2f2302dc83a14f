package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/quill/pkg/cli/config"
	"github.com/secmon-lab/quill/pkg/domain/types"
	"github.com/secmon-lab/quill/pkg/service/markdown"
	"github.com/secmon-lab/quill/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdExport() *cli.Command {
	var (
		sonarCfg  config.Sonar
		reportCfg config.Report
	)

	flags := joinFlags(
		sonarCfg.Flags(),
		reportCfg.Flags(),
	)

	return &cli.Command{
		Name:  "export",
		Usage: "Fetch unresolved issues and write chunked Markdown reports",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if err := sonarCfg.Validate(); err != nil {
				return err
			}
			if err := reportCfg.Validate(); err != nil {
				return err
			}

			logger.Info("Starting quill export",
				slog.Any("sonar", sonarCfg),
				slog.Any("report", reportCfg),
			)

			scheme, err := reportCfg.ConfigureScheme()
			if err != nil {
				return err
			}

			client := sonarCfg.Configure()
			store := reportCfg.ConfigureStore()
			renderer := markdown.NewRenderer(sonarCfg.BaseURL, types.ProjectKey(sonarCfg.Project))

			exportUC := usecase.NewExport(client, store, renderer,
				types.Organization(sonarCfg.Organization),
				types.ProjectKey(sonarCfg.Project),
				usecase.WithBranch(types.BranchName(sonarCfg.Branch)),
				usecase.WithChunkSize(reportCfg.ChunkSize),
				usecase.WithSeverityScheme(scheme),
			)

			return exportUC.Run(ctx)
		},
	}
}
