package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/quill/pkg/domain/interfaces"
	"github.com/secmon-lab/quill/pkg/domain/model"
	"github.com/secmon-lab/quill/pkg/repository"
	"github.com/secmon-lab/quill/pkg/usecase"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Report holds configuration of the report output
type Report struct {
	ChunkSize  int
	OutputDir  string
	SchemePath string
}

// Flags returns CLI flags for Report configuration
func (x *Report) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "chunk-size",
			Usage:       "Maximum number of issues per report file",
			Category:    "Report",
			Value:       usecase.DefaultChunkSize,
			Sources:     cli.EnvVars("QUILL_CHUNK_SIZE"),
			Destination: &x.ChunkSize,
		},
		&cli.StringFlag{
			Name:        "output-dir",
			Usage:       "Directory to write report files into",
			Category:    "Report",
			Value:       ".",
			Sources:     cli.EnvVars("QUILL_OUTPUT_DIR"),
			Destination: &x.OutputDir,
		},
		&cli.StringFlag{
			Name:        "severity-scheme",
			Usage:       "YAML file replacing the built-in severity order",
			Category:    "Report",
			Sources:     cli.EnvVars("QUILL_SEVERITY_SCHEME"),
			Destination: &x.SchemePath,
		},
	}
}

// Validate validates the Report configuration
func (x *Report) Validate() error {
	if x.ChunkSize <= 0 {
		return goerr.New("chunk size must be positive",
			goerr.V("chunkSize", x.ChunkSize))
	}
	return nil
}

// ConfigureStore creates the report store
func (x *Report) ConfigureStore() interfaces.ReportStore {
	return repository.NewLocal(x.OutputDir)
}

// ConfigureScheme loads the severity scheme, falling back to the
// built-in five-level scheme when no file is given.
func (x *Report) ConfigureScheme() (*model.SeverityScheme, error) {
	if x.SchemePath == "" {
		return model.DefaultSeverityScheme(), nil
	}

	data, err := os.ReadFile(x.SchemePath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read severity scheme file",
			goerr.V("path", x.SchemePath))
	}

	var scheme model.SeverityScheme
	if err := yaml.Unmarshal(data, &scheme); err != nil {
		return nil, goerr.Wrap(err, "failed to parse severity scheme file",
			goerr.V("path", x.SchemePath))
	}

	if err := scheme.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid severity scheme",
			goerr.V("path", x.SchemePath))
	}

	return &scheme, nil
}

// LogValue returns structured log value
func (x Report) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("chunk_size", x.ChunkSize),
		slog.String("output_dir", x.OutputDir),
		slog.String("severity_scheme", x.SchemePath),
	)
}
