package ports

import "go.trai.ch/maven3/internal/core/domain"

// InvocationStore records the invocations of the build step.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type InvocationStore interface {
	// Put stores the invocation.
	Put(inv domain.Invocation) error

	// List returns the stored invocations, newest first.
	List() ([]domain.Invocation, error)
}
