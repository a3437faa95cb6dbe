package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrNoInstallation is returned when no Maven installation matches and none is available as a fallback.
	ErrNoInstallation = zerr.New("Maven version is not configured for this project. Can't determine which Maven to run")

	// ErrInstallationHomeUnset is returned when the selected installation has no home directory.
	ErrInstallationHomeUnset = zerr.New("Maven installation doesn't have its home set")

	// ErrClassworldsJarNotFound is returned when the boot directory holds no plexus-classworlds jar.
	ErrClassworldsJarNotFound = zerr.New("couldn't find classworlds jar")

	// ErrClassworldsConfMissing is returned when the classworlds configuration file does not exist.
	ErrClassworldsConfMissing = zerr.New("unable to locate classworlds configuration file")

	// ErrExtractorNotFound is returned when the extractor library directory contains no jars.
	ErrExtractorNotFound = zerr.New("couldn't find maven3 extractor jar")

	// ErrInvalidArguments is returned when JVM options or goals cannot be split into arguments.
	ErrInvalidArguments = zerr.New("invalid argument string")

	// ErrBuildRootUnset is returned when the build has no root directory for its metadata output.
	ErrBuildRootUnset = zerr.New("build root directory is not set")

	// ErrBuildAborted is returned by the build step when a configuration error stopped it.
	ErrBuildAborted = zerr.New("build aborted")

	// ErrBuildFailed is returned by the CLI when the build finished with a FAILURE result.
	ErrBuildFailed = zerr.New("build failed")

	// ErrLaunchFailed is returned when the child process cannot be started.
	ErrLaunchFailed = zerr.New("command execution failed")

	// ErrOutputFailed is returned when the child output cannot be piped to the build log.
	ErrOutputFailed = zerr.New("failed to stream process output")

	// ErrEmptyCommandLine is returned when the runner is handed a command line without arguments.
	ErrEmptyCommandLine = zerr.New("empty command line")

	// ErrConfigReadFailed is returned when a step or settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when a step or settings file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigWriteFailed is returned when a step file cannot be written.
	ErrConfigWriteFailed = zerr.New("failed to write config file")

	// ErrUnsupportedConfigFormat is returned for step files that are neither YAML nor TOML.
	ErrUnsupportedConfigFormat = zerr.New("unsupported config file format, expected .yaml, .yml or .toml")

	// ErrStoreReadFailed is returned when the invocation history cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read invocation history")

	// ErrStoreWriteFailed is returned when the invocation history cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write invocation history")

	// ErrInvalidUpstream is returned when an upstream build reference is not of the form project#number.
	ErrInvalidUpstream = zerr.New("invalid upstream build reference, expected project#number")
)

// configurationErrors abort the build before any process is launched.
var configurationErrors = []error{
	ErrNoInstallation,
	ErrInstallationHomeUnset,
	ErrClassworldsJarNotFound,
	ErrClassworldsConfMissing,
	ErrExtractorNotFound,
	ErrInvalidArguments,
	ErrBuildRootUnset,
}

// IsConfigurationError reports whether err is one of the configuration errors of the build step.
func IsConfigurationError(err error) bool {
	for _, target := range configurationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
