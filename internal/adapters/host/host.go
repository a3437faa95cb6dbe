// Package host implements the local host: the build step's view of a CI runtime,
// assembled from settings, the process environment and command flags.
package host

import (
	"context"
	"maps"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/maven3/internal/build"
	"go.trai.ch/maven3/internal/core/domain"
	"go.trai.ch/maven3/internal/core/ports"
	"go.trai.ch/zerr"
	"mvdan.cc/sh/v3/syntax"
)

// Build variables exported to the child environment and available to macro substitution.
const (
	EnvBuildNumber = "BUILD_NUMBER"
	EnvBuildID     = "BUILD_ID"
	EnvJobName     = "JOB_NAME"
	EnvBuildURL    = "BUILD_URL"
	EnvWorkspace   = "WORKSPACE"
	EnvJavaHome    = "JAVA_HOME"
	EnvPath        = "PATH"
)

// Options describe the build being run.
type Options struct {
	// BuildName defaults to the base name of the module root.
	BuildName string
	// BuildNumber defaults to 1.
	BuildNumber int
	// ModuleRoot defaults to the working directory.
	ModuleRoot string
	// BuildRoot defaults to .maven3/builds/<number> under the module root.
	BuildRoot string
	// Upstream names the triggering build as project#number.
	Upstream string
	// User names the person who started the build.
	User string
	// Started defaults to the time the host is created.
	Started time.Time
	// BaseEnv is the environment the build starts from, os.Environ() when nil.
	BaseEnv []string
}

var _ ports.Host = (*LocalHost)(nil)

// LocalHost implements ports.Host for builds started from the command line.
type LocalHost struct {
	settings domain.Settings
	bc       domain.BuildContext
	goos     string
}

// New assembles a LocalHost. The build context is fixed at creation.
func New(settings domain.Settings, opts Options) (*LocalHost, error) {
	moduleRoot := opts.ModuleRoot
	if moduleRoot == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to determine working directory")
		}
		moduleRoot = wd
	}
	moduleRoot, err := filepath.Abs(moduleRoot)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve module root"), "path", opts.ModuleRoot)
	}

	name := opts.BuildName
	if name == "" {
		name = filepath.Base(moduleRoot)
	}

	number := opts.BuildNumber
	if number <= 0 {
		number = 1
	}

	buildRoot := opts.BuildRoot
	if buildRoot == "" {
		buildRoot = filepath.Join(moduleRoot, ".maven3", "builds", strconv.Itoa(number))
	}

	started := opts.Started
	if started.IsZero() {
		started = time.Now()
	}

	var causes []domain.Cause
	if opts.Upstream != "" {
		cause, err := ParseUpstream(opts.Upstream)
		if err != nil {
			return nil, err
		}
		causes = append(causes, cause)
	}
	if opts.User != "" {
		causes = append(causes, domain.Cause{Kind: domain.CauseUser, UserName: opts.User})
	}

	var jdkBin string
	if settings.JDKHome != "" {
		jdkBin = filepath.Join(settings.JDKHome, "bin")
	}

	agentName := settings.AgentName
	if agentName == "" {
		agentName = "maven3"
	}

	url := buildURL(settings.RootURL, name, number)

	base := opts.BaseEnv
	if base == nil {
		base = os.Environ()
	}
	env := environment(base, settings, map[string]string{
		EnvBuildNumber: strconv.Itoa(number),
		EnvBuildID:     strconv.Itoa(number),
		EnvJobName:     name,
		EnvBuildURL:    url,
		EnvWorkspace:   moduleRoot,
	})

	return &LocalHost{
		settings: settings,
		goos:     runtime.GOOS,
		bc: domain.BuildContext{
			DisplayName:  name,
			Number:       number,
			Started:      started,
			Env:          env,
			URL:          url,
			Causes:       causes,
			ModuleRoot:   moduleRoot,
			BuildRoot:    buildRoot,
			JDKBinDir:    jdkBin,
			AgentName:    agentName,
			AgentVersion: build.Version,
		},
	}, nil
}

// BuildContext returns a copy of the build context.
func (h *LocalHost) BuildContext(ctx context.Context) (*domain.BuildContext, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	bc := h.bc
	bc.Env = maps.Clone(h.bc.Env)
	bc.Causes = append([]domain.Cause(nil), h.bc.Causes...)
	return &bc, nil
}

// Installations returns the installations registered in the settings.
func (h *LocalHost) Installations() []domain.Installation {
	return h.settings.Installations
}

// PluginLayout returns the plugin layout configured in the settings.
func (h *LocalHost) PluginLayout() domain.PluginLayout {
	return h.settings.Plugin
}

// RecorderEnabled reports whether the settings enable the build-info recorder.
func (h *LocalHost) RecorderEnabled() bool {
	return h.settings.Recorder
}

// IsUnix reports whether the host is a POSIX system.
func (h *LocalHost) IsUnix() bool {
	return h.goos != "windows"
}

// ReplaceMacro substitutes plain $NAME and ${NAME} references known to the build
// environment. Unknown references, operator forms such as ${NAME:-x}, arithmetic and
// quotes are left exactly as written.
func (h *LocalHost) ReplaceMacro(s string) (string, error) {
	if !strings.Contains(s, "$") {
		return s, nil
	}
	var b strings.Builder
	for i := 0; i < len(s); {
		name, n := reference(s[i:])
		v, ok := h.bc.Env[name]
		if n == 0 || !ok {
			b.WriteByte(s[i])
			i++
			continue
		}
		b.WriteString(v)
		i += n
	}
	return b.String(), nil
}

// reference returns the variable named by a reference at the start of s and the
// reference's length, or a zero length when s does not start with one.
func reference(s string) (string, int) {
	if len(s) < 2 || s[0] != '$' {
		return "", 0
	}
	if s[1] == '{' {
		end := strings.IndexByte(s, '}')
		if end < 0 || !syntax.ValidName(s[2:end]) {
			return "", 0
		}
		return s[2:end], end + 1
	}
	end := 1
	for end < len(s) && isNameByte(s[end]) {
		end++
	}
	if end == 1 {
		return "", 0
	}
	return s[1:end], end
}

func isNameByte(c byte) bool {
	return c == '_' || ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// ParseUpstream parses a project#number reference to a triggering build.
func ParseUpstream(ref string) (domain.Cause, error) {
	project, num, ok := strings.Cut(ref, "#")
	n, err := strconv.Atoi(num)
	if !ok || project == "" || err != nil || n <= 0 {
		return domain.Cause{}, zerr.With(zerr.Wrap(domain.ErrInvalidUpstream, "upstream"), "upstream", ref)
	}
	return domain.Cause{Kind: domain.CauseUpstream, UpstreamProject: project, UpstreamBuild: n}, nil
}

func buildURL(root, name string, number int) string {
	if root == "" {
		return ""
	}
	if !strings.HasSuffix(root, "/") {
		root += "/"
	}
	return root + "job/" + name + "/" + strconv.Itoa(number) + "/"
}

// environment layers base, the settings env, the JDK and vars, in increasing priority.
func environment(base []string, settings domain.Settings, vars map[string]string) map[string]string {
	env := make(map[string]string, len(base)+len(settings.Env)+len(vars)+2)
	for _, entry := range base {
		if k, v, ok := strings.Cut(entry, "="); ok {
			env[k] = v
		}
	}
	maps.Copy(env, settings.Env)

	if settings.JDKHome != "" {
		env[EnvJavaHome] = settings.JDKHome
		jdkBin := filepath.Join(settings.JDKHome, "bin")
		if path := env[EnvPath]; path != "" {
			env[EnvPath] = jdkBin + string(os.PathListSeparator) + path
		} else {
			env[EnvPath] = jdkBin
		}
	}

	maps.Copy(env, vars)
	return env
}
