package ports

import "go.trai.ch/maven3/internal/core/domain"

// Hasher fingerprints command lines.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Fingerprint returns a stable digest of everything that determines what cl runs.
	Fingerprint(cl *domain.CommandLine) (string, error)
}
