package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"
)

// Handle reports a fatal application error through the context logger.
// Callers still decide the process exit code themselves.
func Handle(ctx context.Context, err error) {
	ctxlog.From(ctx).Error("export failed", "error", err)
}
