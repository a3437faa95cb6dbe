package config

import "go.trai.ch/maven3/internal/core/domain"

// DefaultStepFile is the step file looked up when none is named.
const DefaultStepFile = "maven3.yaml"

// Settings keys, as spelled in settings files and after the MAVEN3_ environment prefix.
const (
	keyInstallations = "installations"
	keyJDKHome       = "jdk_home"
	keyClassesDir    = "plugin.classes_dir"
	keyLibDir        = "plugin.lib_dir"
	keyRecorder      = "recorder"
	keyRootURL       = "root_url"
	keyAgentName     = "agent_name"
	keyEnv           = "env"
	keyLogFormat     = "log.format"

	// EnvPrefix prefixes environment variables overriding settings.
	EnvPrefix = "MAVEN3"

	// DefaultAgentName is reported to the recorder when settings name no agent.
	DefaultAgentName = "maven3"
)

// knownStepKeys are the keys a step file may hold.
var knownStepKeys = map[string]bool{
	domain.ConfigKeyMavenName: true,
	domain.ConfigKeyRootPom:   true,
	domain.ConfigKeyGoals:     true,
	domain.ConfigKeyMavenOpts: true,
}

// rawSettingsEnv reads the env section of a settings file with its key case preserved.
type rawSettingsEnv struct {
	Env map[string]string `toml:"env" yaml:"env"`
}
