package tapigo

import "sync/atomic"

// config is the single opaque handle backing tapigo's process-wide state
// (Design Notes ): the probed-architecture override and the diagnostic
// log path. It is replaced, never mutated in place, behind an atomic
// pointer so Setup can be called again to change configuration without a
// lock.
type config struct {
	archOverride *Arch
	logPath      string
}

var globalConfig atomic.Pointer[config]

func init() {
	globalConfig.Store(&config{})
}

func activeConfig() *config {
	return globalConfig.Load()
}

// Option configures the package via Setup. The shape mirrors
// go.uber.org/zap's own zap.Option pattern, already in use for this
// module's diagnostic channel.
type Option func(*config)

// WithArch overrides the architecture probe
// with a fixed value instead of deriving it from runtime.GOARCH. Useful
// for tests that exercise a specific backend regardless of the host.
func WithArch(a Arch) Option {
	return func(c *config) { c.archOverride = &a }
}

// WithLogPath binds the diagnostic channel to a file instead of stderr.
func WithLogPath(path string) Option {
	return func(c *config) { c.logPath = path }
}

// Setup applies the given options as the new process-wide configuration.
// It is safe to call more than once; the most recent call wins. Matches
// the external interface's setup(arch, log_path?) operation.
func Setup(opts ...Option) {
	next := &config{}
	prev := activeConfig()
	*next = *prev
	for _, opt := range opts {
		opt(next)
	}
	globalConfig.Store(next)
	resetDiagnostic(next.logPath)
}
