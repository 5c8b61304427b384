package tapigo

import (
	"sync"

	"go.uber.org/zap"
)

// diag is the package's diagnostic channel: single
// human-readable lines describing errors and warnings from the
// disassembly, patch and capture subsystems. It is distinct from the
// stable, user-facing per-test and summary lines the runner prints,
// which always go through fmt.Fprintf directly so their wire format
// cannot drift with a logging library upgrade.
var (
	diag     *zap.SugaredLogger
	diagOnce sync.Once
)

func diagnostic() *zap.SugaredLogger {
	diagOnce.Do(func() {
		diag = newDiagLogger(activeConfig().logPath)
	})
	return diag
}

// resetDiagnostic rebuilds the diagnostic logger. Setup calls it on every
// call, so a log path supplied after the logger has already been lazily
// created takes effect.
func resetDiagnostic(logPath string) {
	diag = newDiagLogger(logPath)
}

func newDiagLogger(logPath string) *zap.SugaredLogger {
	var cfg zap.Config
	if logPath != "" {
		cfg = zap.NewDevelopmentConfig()
		cfg.OutputPaths = []string{logPath}
		cfg.ErrorOutputPaths = []string{logPath}
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		cfg.OutputPaths = []string{"stderr"}
		cfg.ErrorOutputPaths = []string{"stderr"}
	}
	cfg.Encoding = "console"
	cfg.EncoderConfig.TimeKey = ""
	cfg.EncoderConfig.CallerKey = ""

	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		logger = zap.NewNop()
	}
	return logger.Sugar()
}
