package repository

import (
	"context"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/quill/pkg/domain/interfaces"
)

// Local implements ReportStore on the local filesystem. Files are
// written into one directory and overwrite any previous file with the
// same name.
type Local struct {
	dir string
}

// NewLocal creates a Local store rooted at dir. An empty dir means the
// current working directory.
func NewLocal(dir string) interfaces.ReportStore {
	if dir == "" {
		dir = "."
	}
	return &Local{dir: dir}
}

// WriteReport writes one report file
func (x *Local) WriteReport(ctx context.Context, name string, content string) error {
	if name == "" {
		return goerr.New("report name is empty")
	}

	path := filepath.Join(x.dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return goerr.Wrap(err, "failed to write report file",
			goerr.V("path", path))
	}

	return nil
}
