package app

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/maven3/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/maven3/internal/adapters/host"   //nolint:depguard // Wired in app layer
	"go.trai.ch/maven3/internal/adapters/shell"  //nolint:depguard // Wired in app layer
	"go.trai.ch/maven3/internal/core/domain"
	"go.trai.ch/maven3/internal/core/ports"
	"go.trai.ch/maven3/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// RunOptions configure one invocation from the command line.
type RunOptions struct {
	// StepFile is the step configuration. When empty, maven3.yaml is used if it exists.
	StepFile string
	// SettingsFile is the host settings file. When empty, only defaults and environment apply.
	SettingsFile string
	// Overrides replace step file values when non-empty.
	Overrides domain.BuilderConfig
	// Host describes the build.
	Host host.Options
	// PTY runs Maven in a pseudo-terminal.
	PTY bool
	// Output receives the Maven output.
	Output io.Writer
}

// formatSetter is implemented by loggers that can switch their output format.
type formatSetter interface {
	SetFormat(format string)
}

// ptySetter is implemented by runners that can attach a pseudo-terminal.
type ptySetter interface {
	SetPTY(enabled bool)
}

// Run loads the configuration, builds the local host and performs the build step.
func (a *App) Run(ctx context.Context, opts RunOptions) (domain.Outcome, error) {
	h, cfg, settings, err := a.prepare(opts)
	if err != nil {
		return domain.NewOutcome(-1), err
	}

	if r, ok := a.runner.(ptySetter); ok {
		r.SetPTY(opts.PTY)
	}

	sink := opts.Output
	if sink == nil {
		sink = os.Stdout
	}
	if settings.Log.Format == "json" {
		lw := shell.NewLogWriter(a.logger)
		defer lw.Close() //nolint:errcheck // flushes a partial line only
		sink = lw
	}

	return a.Perform(ctx, h, cfg, sink)
}

// Cmdline returns the command line Run would execute, without running it.
func (a *App) Cmdline(ctx context.Context, opts RunOptions) (*domain.CommandLine, error) {
	h, cfg, _, err := a.prepare(opts)
	if err != nil {
		return nil, err
	}

	bc, err := h.BuildContext(ctx)
	if err != nil {
		return nil, err
	}

	inst := resolver.Resolve(cfg.MavenName, h.Installations())
	return a.cmds.Build(ctx, cfg, inst, bc, h)
}

// Init writes a step file holding cfg.
func (a *App) Init(path string, cfg domain.BuilderConfig) error {
	if path == "" {
		path = config.DefaultStepFile
	}
	if err := a.loader.SaveStep(path, cfg); err != nil {
		return err
	}
	a.logger.Info("wrote " + path)
	return nil
}

// History returns the recorded invocations, newest first.
func (a *App) History() ([]domain.Invocation, error) {
	return a.store.List()
}

func (a *App) prepare(opts RunOptions) (ports.Host, domain.BuilderConfig, domain.Settings, error) {
	settings, err := a.loader.LoadSettings(opts.SettingsFile)
	if err != nil {
		return nil, domain.BuilderConfig{}, domain.Settings{}, zerr.Wrap(err, "failed to load settings")
	}
	if l, ok := a.logger.(formatSetter); ok {
		l.SetFormat(settings.Log.Format)
	}

	cfg, err := a.loadStep(opts.StepFile)
	if err != nil {
		return nil, domain.BuilderConfig{}, domain.Settings{}, zerr.Wrap(err, "failed to load step configuration")
	}
	cfg = cfg.WithOverrides(opts.Overrides)

	h, err := host.New(settings, opts.Host)
	if err != nil {
		return nil, domain.BuilderConfig{}, domain.Settings{}, err
	}

	return h, cfg, settings, nil
}

func (a *App) loadStep(path string) (domain.BuilderConfig, error) {
	if path != "" {
		return a.loader.LoadStep(path)
	}
	if _, err := os.Stat(config.DefaultStepFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.BuilderConfig{}, nil
		}
		return domain.BuilderConfig{}, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", config.DefaultStepFile)
	}
	return a.loader.LoadStep(config.DefaultStepFile)
}

// DefaultSettingsPath returns the user's settings file when one exists, or "".
func DefaultSettingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	for _, name := range []string{"settings.yaml", "settings.yml", "settings.toml"} {
		path := filepath.Join(dir, "maven3", name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
