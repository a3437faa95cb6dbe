package ports

import "go.trai.ch/maven3/internal/core/domain"

// ConfigLoader loads and saves the step configuration and the host settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// LoadStep reads the step file at path.
	LoadStep(path string) (domain.BuilderConfig, error)

	// SaveStep writes cfg to path, choosing the format from the extension.
	SaveStep(path string, cfg domain.BuilderConfig) error

	// LoadSettings reads the host settings. An empty path loads defaults and environment overrides only.
	LoadSettings(path string) (domain.Settings, error)
}
