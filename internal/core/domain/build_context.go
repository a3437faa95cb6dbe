package domain

import (
	"strings"
	"time"
)

// CauseKind classifies why a build was triggered.
type CauseKind string

const (
	// CauseUser marks a build started by a person.
	CauseUser CauseKind = "user"
	// CauseUpstream marks a build triggered by the completion of another build.
	CauseUpstream CauseKind = "upstream"
	// CauseTimer marks a scheduled build.
	CauseTimer CauseKind = "timer"
)

// Cause is one entry of the cause chain of a build.
type Cause struct {
	Kind CauseKind
	// UserName is set for CauseUser.
	UserName string
	// UpstreamProject and UpstreamBuild are set for CauseUpstream.
	UpstreamProject string
	UpstreamBuild   int
}

// VCSRevisionEnvVars are the environment variables consulted for the VCS revision, in order.
var VCSRevisionEnvVars = []string{"SVN_REVISION", "GIT_COMMIT"}

// BuildContext holds the read-only facts about the build that triggered the step.
// It is valid for the duration of one build execution.
type BuildContext struct {
	DisplayName string
	Number      int
	Started     time.Time
	// Env is the environment variable snapshot of the build.
	Env map[string]string
	// URL is the absolute URL of the build.
	URL    string
	Causes []Cause
	// ModuleRoot is the working directory of the launched process.
	ModuleRoot string
	// BuildRoot is the directory holding the build's own records.
	BuildRoot string
	// JDKBinDir is the bin directory of the JDK configured for the build, empty when none is.
	JDKBinDir    string
	AgentName    string
	AgentVersion string
}

// VCSRevision returns the revision exposed by the environment and whether one is defined.
func (b *BuildContext) VCSRevision() (string, bool) {
	for _, key := range VCSRevisionEnvVars {
		if v := strings.TrimSpace(b.Env[key]); v != "" {
			return v, true
		}
	}
	return "", false
}

// UpstreamCause returns the first upstream cause of the chain, or nil.
func (b *BuildContext) UpstreamCause() *Cause {
	for i := range b.Causes {
		if b.Causes[i].Kind == CauseUpstream {
			return &b.Causes[i]
		}
	}
	return nil
}

// TriggeringUser returns the user name of the last user cause of the chain.
func (b *BuildContext) TriggeringUser() (string, bool) {
	var (
		name  string
		found bool
	)
	for _, c := range b.Causes {
		if c.Kind == CauseUser {
			name, found = c.UserName, true
		}
	}
	return name, found
}
