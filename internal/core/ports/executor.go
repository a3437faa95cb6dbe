package ports

import (
	"context"
	"io"

	"go.trai.ch/maven3/internal/core/domain"
)

// ProcessRunner runs an assembled command line as a child process.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type ProcessRunner interface {
	// Run starts the process, streams its output into sink and blocks until it exits.
	//
	// A non-zero exit status is not an error: it is reported through the Outcome.
	// Errors are returned when the process cannot be started, when its output cannot be
	// streamed, and when ctx is canceled.
	Run(ctx context.Context, cmd *domain.CommandLine, sink io.Writer) (domain.Outcome, error)
}
