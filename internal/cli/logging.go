package cli

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tychoish/chain/ft"
)

const defaultLogLevel = "info"

// newLogger builds a JSON logger writing to w. An empty level means
// the default level.
func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(ft.Default(level, defaultLogLevel))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q, %w", level, err)
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		lvl,
	)

	return zap.New(core), nil
}
