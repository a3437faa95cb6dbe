// Package app implements the application layer for maven3.
package app

import (
	"context"
	"errors"
	"io"
	"time"

	"go.trai.ch/maven3/internal/core/domain"
	"go.trai.ch/maven3/internal/core/ports"
	"go.trai.ch/maven3/internal/engine/cmdline"
	"go.trai.ch/maven3/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader ports.ConfigLoader
	runner ports.ProcessRunner
	store  ports.InvocationStore
	hasher ports.Hasher
	logger ports.Logger
	tracer ports.Tracer
	cmds   *cmdline.Builder
	now    func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	runner ports.ProcessRunner,
	store ports.InvocationStore,
	hasher ports.Hasher,
	logger ports.Logger,
	tracer ports.Tracer,
	cmds *cmdline.Builder,
) *App {
	return &App{
		loader: loader,
		runner: runner,
		store:  store,
		hasher: hasher,
		logger: logger,
		tracer: tracer,
		cmds:   cmds,
		now:    time.Now,
	}
}

// WithClock replaces the clock used to time invocations.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// Perform runs the build step: it resolves the installation, assembles the command line,
// runs Maven and maps its exit code to the build result.
//
// Configuration errors are logged and returned wrapped in domain.ErrBuildAborted; no process
// is started. Launch and output failures are logged and reported as a FAILURE outcome with a
// nil error, as is a non-zero exit code. A cancelled context yields FAILURE and the context error.
func (a *App) Perform(
	ctx context.Context,
	host ports.Host,
	cfg domain.BuilderConfig,
	sink io.Writer,
) (outcome domain.Outcome, err error) {
	ctx, span := a.tracer.Start(ctx, "maven3.perform")
	defer span.End()
	defer func() {
		span.SetAttribute("build.result", string(outcome.Result))
		span.RecordError(err)
	}()

	failure := domain.NewOutcome(-1)

	bc, err := host.BuildContext(ctx)
	if err != nil {
		return failure, err
	}
	span.SetAttribute("build.name", bc.DisplayName)
	span.SetAttribute("build.number", bc.Number)

	inst := resolver.Resolve(cfg.MavenName, host.Installations())
	if inst != nil {
		span.SetAttribute("maven.installation", inst.Name)
	}

	cl, err := a.cmds.Build(ctx, cfg, inst, bc, host)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return failure, ctxErr
		}
		a.logger.Error(err)
		if domain.IsConfigurationError(err) {
			return failure, zerr.Wrap(domain.ErrBuildAborted, err.Error())
		}
		return failure, nil
	}

	inv := domain.Invocation{
		BuildName:   bc.DisplayName,
		BuildNumber: bc.Number,
		StartedAt:   a.now(),
	}
	if inst != nil {
		inv.Installation = inst.Name
	}
	if fp, fpErr := a.hasher.Fingerprint(cl); fpErr != nil {
		a.logger.Warn("could not fingerprint command line: " + fpErr.Error())
	} else {
		inv.Fingerprint = fp
	}

	outcome, err = a.runner.Run(ctx, cl, sink)
	span.SetAttribute("process.exit_code", outcome.ExitCode)

	if err != nil {
		outcome = outcome.Failed()
		if ctxErr := ctx.Err(); ctxErr == nil || !errors.Is(err, ctxErr) {
			a.logger.Error(err)
			err = nil
		}
	}

	inv.ExitCode = outcome.ExitCode
	inv.Result = outcome.Result
	inv.Duration = a.now().Sub(inv.StartedAt)
	if putErr := a.store.Put(inv); putErr != nil {
		a.logger.Warn("could not record invocation: " + putErr.Error())
	}

	return outcome, err
}
