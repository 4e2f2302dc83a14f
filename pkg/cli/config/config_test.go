package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/quill/pkg/cli/config"
	"github.com/secmon-lab/quill/pkg/domain/types"
)

func TestSonarValidate(t *testing.T) {
	valid := config.Sonar{
		Token:        "secret",
		Organization: "my-org",
		Project:      "my-project",
		PageSize:     500,
		BaseURL:      "https://sonarcloud.io",
	}

	t.Run("valid configuration", func(t *testing.T) {
		cfg := valid
		gt.NoError(t, cfg.Validate())
	})

	t.Run("missing token is fatal before any request", func(t *testing.T) {
		cfg := valid
		cfg.Token = ""
		gt.Error(t, cfg.Validate())
	})

	t.Run("missing project", func(t *testing.T) {
		cfg := valid
		cfg.Project = ""
		gt.Error(t, cfg.Validate())
	})

	t.Run("non-positive page size", func(t *testing.T) {
		cfg := valid
		cfg.PageSize = 0
		gt.Error(t, cfg.Validate())
	})
}

func TestReportValidate(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		cfg := config.Report{ChunkSize: 20, OutputDir: "."}
		gt.NoError(t, cfg.Validate())
	})

	t.Run("non-positive chunk size", func(t *testing.T) {
		cfg := config.Report{ChunkSize: 0}
		gt.Error(t, cfg.Validate())
	})
}

func TestReportConfigureScheme(t *testing.T) {
	t.Run("defaults to built-in scheme", func(t *testing.T) {
		cfg := config.Report{ChunkSize: 20}
		scheme, err := cfg.ConfigureScheme()
		gt.NoError(t, err)
		gt.Equal(t, scheme.Severities, types.KnownSeverities())
	})

	t.Run("loads scheme from YAML file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scheme.yml")
		gt.NoError(t, os.WriteFile(path, []byte("severities:\n  - HIGH\n  - LOW\n"), 0644))

		cfg := config.Report{ChunkSize: 20, SchemePath: path}
		scheme, err := cfg.ConfigureScheme()
		gt.NoError(t, err)
		gt.Equal(t, scheme.Severities, []types.Severity{"HIGH", "LOW"})
	})

	t.Run("missing file is an error", func(t *testing.T) {
		cfg := config.Report{ChunkSize: 20, SchemePath: "/does/not/exist.yml"}
		_, err := cfg.ConfigureScheme()
		gt.Error(t, err)
	})

	t.Run("invalid scheme is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scheme.yml")
		gt.NoError(t, os.WriteFile(path, []byte("severities: []\n"), 0644))

		cfg := config.Report{ChunkSize: 20, SchemePath: path}
		_, err := cfg.ConfigureScheme()
		gt.Error(t, err)
	})
}
