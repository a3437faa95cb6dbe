// Package config provides the step file and host settings loaders for maven3.
package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"go.trai.ch/maven3/internal/core/domain"
	"go.trai.ch/maven3/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

type format int

const (
	formatYAML format = iota
	formatTOML
)

// Loader implements ports.ConfigLoader on YAML and TOML files.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// LoadStep reads the step file at path. Unknown keys are ignored with a warning.
func (l *Loader) LoadStep(path string) (domain.BuilderConfig, error) {
	f, err := formatOf(path)
	if err != nil {
		return domain.BuilderConfig{}, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return domain.BuilderConfig{}, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	values := make(map[string]string)
	switch f {
	case formatTOML:
		err = toml.Unmarshal(data, &values)
	default:
		err = yaml.Unmarshal(data, &values)
	}
	if err != nil {
		return domain.BuilderConfig{}, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}

	var unknown []string
	for key := range values {
		if !knownStepKeys[key] {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		l.logger.Warn("ignoring unknown keys in " + path + ": " + strings.Join(unknown, ", "))
	}

	return domain.BuilderConfigFromMap(values), nil
}

// SaveStep writes cfg to path, leaving out empty fields.
func (l *Loader) SaveStep(path string, cfg domain.BuilderConfig) error {
	f, err := formatOf(path)
	if err != nil {
		return err
	}

	values := cfg.ToMap()
	for key, value := range values {
		if value == "" {
			delete(values, key)
		}
	}

	var data []byte
	switch f {
	case formatTOML:
		data, err = toml.Marshal(values)
	default:
		data, err = yaml.Marshal(values)
	}
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrConfigWriteFailed, err.Error()), "path", path)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return zerr.With(zerr.Wrap(domain.ErrConfigWriteFailed, err.Error()), "path", path)
		}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrConfigWriteFailed, err.Error()), "path", path)
	}

	return nil
}

// LoadSettings reads the host settings from path, applying defaults and MAVEN3_ environment overrides.
// An empty path loads defaults and environment overrides only.
func (l *Loader) LoadSettings(path string) (domain.Settings, error) {
	v := viper.New()

	v.SetDefault(keyInstallations, []map[string]any{})
	v.SetDefault(keyJDKHome, "")
	v.SetDefault(keyClassesDir, "")
	v.SetDefault(keyLibDir, "")
	v.SetDefault(keyRecorder, true)
	v.SetDefault(keyRootURL, "")
	v.SetDefault(keyAgentName, DefaultAgentName)
	v.SetDefault(keyLogFormat, "text")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		f, err := formatOf(path)
		if err != nil {
			return domain.Settings{}, err
		}
		v.SetConfigFile(path)
		if f == formatTOML {
			v.SetConfigType("toml")
		} else {
			v.SetConfigType("yaml")
		}
		if err := v.ReadInConfig(); err != nil {
			return domain.Settings{}, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
		}
	}

	var settings domain.Settings
	if err := v.Unmarshal(&settings); err != nil {
		return domain.Settings{}, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}

	// Viper folds map keys to lower case; environment variable names are case sensitive.
	if path != "" {
		env, err := readEnvSection(path)
		if err != nil {
			return domain.Settings{}, err
		}
		settings.Env = env
	}

	return settings, nil
}

func readEnvSection(path string) (map[string]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	f, err := formatOf(path)
	if err != nil {
		return nil, err
	}

	var raw rawSettingsEnv
	switch f {
	case formatTOML:
		err = toml.Unmarshal(data, &raw)
	default:
		err = yaml.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}

	return raw.Env, nil
}

func formatOf(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML, nil
	case ".toml":
		return formatTOML, nil
	default:
		return 0, zerr.With(zerr.Wrap(domain.ErrUnsupportedConfigFormat, "config file"), "path", path)
	}
}
