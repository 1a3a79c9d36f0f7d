//go:build !nogpu

package gpu

import (
	"log/slog"

	"github.com/gogpu/oge"
)

// slogger returns the logger used by the package.
// It follows oge.SetLogger.
func slogger() *slog.Logger { return oge.Logger() }
