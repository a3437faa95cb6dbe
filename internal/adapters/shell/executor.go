// Package shell provides the process runner adapter.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/creack/pty"
	"go.trai.ch/maven3/internal/core/domain"
	"go.trai.ch/maven3/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// DefaultGracePeriod is how long an interrupted process may take to exit before it is killed.
const DefaultGracePeriod = 10 * time.Second

var _ ports.ProcessRunner = (*Runner)(nil)

// Runner implements ports.ProcessRunner using os/exec and, optionally, a pseudo-terminal.
type Runner struct {
	logger      ports.Logger
	gracePeriod time.Duration
	pty         atomic.Bool
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger:      logger,
		gracePeriod: DefaultGracePeriod,
	}
}

// SetPTY switches between a pseudo-terminal with merged output and separate pipes.
// A pseudo-terminal is only used on POSIX hosts.
func (r *Runner) SetPTY(enabled bool) {
	r.pty.Store(enabled)
}

// SetGracePeriod sets how long an interrupted process may take to exit before it is killed.
func (r *Runner) SetGracePeriod(d time.Duration) {
	r.gracePeriod = d
}

// Run starts cl, streams its output into sink and waits for it to exit.
// A non-zero exit code is not an error; it is reported as a FAILURE outcome.
func (r *Runner) Run(ctx context.Context, cl *domain.CommandLine, sink io.Writer) (domain.Outcome, error) {
	failure := domain.NewOutcome(-1)

	if len(cl.Args) == 0 {
		return failure, domain.ErrEmptyCommandLine
	}

	cmd := r.command(ctx, cl)
	out := &lockedWriter{w: sink}

	r.logger.Info("Executing: " + cl.String())

	var (
		waitErr error
		copyErr error
	)
	if r.pty.Load() && isPOSIX() {
		var err error
		waitErr, copyErr, err = runPTY(cmd, out)
		if err != nil {
			return failure, err
		}
	} else {
		var err error
		waitErr, copyErr, err = runPipes(ctx, cmd, out)
		if err != nil {
			return failure, err
		}
	}

	exitCode := 0
	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return failure, zerr.With(zerr.Wrap(domain.ErrOutputFailed, waitErr.Error()), "command", cl.Args[0])
		}
		exitCode = exitErr.ExitCode()
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		r.logger.Warn("Maven was interrupted")
		return domain.NewOutcome(exitCode), zerr.With(zerr.Wrap(ctxErr, "build interrupted"), "exit_code", exitCode)
	}

	if copyErr != nil {
		return domain.NewOutcome(exitCode), zerr.With(zerr.Wrap(domain.ErrOutputFailed, copyErr.Error()), "exit_code", exitCode)
	}

	r.logger.Info("Maven exited with code " + strconv.Itoa(exitCode))

	return domain.NewOutcome(exitCode), nil
}

func (r *Runner) command(ctx context.Context, cl *domain.CommandLine) *exec.Cmd {
	name := cl.Args[0]
	env := cl.Environ()

	// Resolve the executable path using the child's PATH
	executable := name
	if !filepath.IsAbs(name) && !strings.ContainsRune(name, filepath.Separator) {
		if lp, err := lookPath(name, env); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, cl.Args[1:]...) //nolint:gosec // assembled command line

	// Restore the original command name in Args[0]
	cmd.Args[0] = name

	if cl.Dir != "" {
		cmd.Dir = cl.Dir
	}
	cmd.Env = env

	// Interrupt first so Maven can shut down its reactor, then kill after the grace period.
	cmd.Cancel = func() error {
		if err := cmd.Process.Signal(os.Interrupt); err != nil {
			return cmd.Process.Kill()
		}
		return nil
	}
	cmd.WaitDelay = r.gracePeriod

	return cmd
}

// runPipes runs cmd with stdout and stderr copied concurrently into out.
func runPipes(ctx context.Context, cmd *exec.Cmd, out io.Writer) (waitErr, copyErr, err error) {
	stdoutR, stdoutW, err := os.Pipe()
	if err != nil {
		return nil, nil, zerr.Wrap(domain.ErrOutputFailed, err.Error())
	}
	stderrR, stderrW, err := os.Pipe()
	if err != nil {
		closeAll(stdoutR, stdoutW)
		return nil, nil, zerr.Wrap(domain.ErrOutputFailed, err.Error())
	}

	cmd.Stdout = stdoutW
	cmd.Stderr = stderrW

	if err := cmd.Start(); err != nil {
		closeAll(stdoutR, stdoutW, stderrR, stderrW)
		return nil, nil, zerr.With(zerr.Wrap(domain.ErrLaunchFailed, err.Error()), "command", cmd.Args[0])
	}

	// The child owns the write ends now.
	closeAll(stdoutW, stderrW)

	var g errgroup.Group
	g.Go(func() error { return pump(out, stdoutR) })
	g.Go(func() error { return pump(out, stderrR) })

	waitErr = cmd.Wait()

	// Descendants may keep the pipes open after an interrupted build.
	if ctx.Err() != nil {
		closeAll(stdoutR, stderrR)
		_ = g.Wait()
		return waitErr, nil, nil
	}

	copyErr = g.Wait()
	closeAll(stdoutR, stderrR)

	return waitErr, copyErr, nil
}

// runPTY runs cmd attached to a pseudo-terminal whose output is copied into out.
func runPTY(cmd *exec.Cmd, out io.Writer) (waitErr, copyErr, err error) {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(domain.ErrLaunchFailed, err.Error()), "command", cmd.Args[0])
	}

	var g errgroup.Group
	g.Go(func() error {
		err := pump(out, ptmx)
		// Reading the master fails with EIO once the child side is closed.
		if errors.Is(err, syscall.EIO) {
			return nil
		}
		return err
	})

	waitErr = cmd.Wait()
	copyErr = g.Wait()
	_ = ptmx.Close()

	return waitErr, copyErr, nil
}

// pump copies r into w with a 32 KiB buffer until EOF.
func pump(w io.Writer, r io.Reader) error {
	buf := make([]byte, 32*1024)
	_, err := io.CopyBuffer(w, r, buf)
	return err
}

func closeAll(files ...*os.File) {
	for _, f := range files {
		_ = f.Close()
	}
}

// lockedWriter serializes writes from concurrent output pumps.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

// lookPath searches for an executable in the directories named by the PATH environment variable.
func lookPath(file string, env []string) (string, error) {
	// Find PATH in env
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
