// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/maven3/internal/core/domain"
)

// Host is the CI runtime the build step runs in.
//
// The step consumes the host; it never implements any part of it.
//
//go:generate go run go.uber.org/mock/mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks
type Host interface {
	// BuildContext returns the facts about the build being executed.
	BuildContext(ctx context.Context) (*domain.BuildContext, error)

	// Installations returns the registered Maven installations in registration order.
	Installations() []domain.Installation

	// PluginLayout locates the files shipped with the build step.
	PluginLayout() domain.PluginLayout

	// RecorderEnabled reports whether the build-info recorder is loaded into the Maven JVM.
	RecorderEnabled() bool

	// ReplaceMacro substitutes build variables referenced as $NAME or ${NAME} in s.
	// Unknown variables are left in place.
	ReplaceMacro(s string) (string, error)

	// IsUnix reports whether processes are launched on a POSIX system.
	IsUnix() bool
}
