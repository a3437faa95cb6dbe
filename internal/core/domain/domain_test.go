package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/maven3/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestBuilderConfig_RoundTripsThroughMap(t *testing.T) {
	cfg := domain.BuilderConfig{MavenName: "M3", RootPom: "api/pom.xml", Goals: "clean install", MavenOpts: "-Xmx1g"}

	m := cfg.ToMap()
	assert.Equal(t, "M3", m[domain.ConfigKeyMavenName])
	assert.Equal(t, cfg, domain.BuilderConfigFromMap(m))
}

func TestBuilderConfig_FromMapIgnoresUnknownKeys(t *testing.T) {
	cfg := domain.BuilderConfigFromMap(map[string]string{"goals": "test", "deployer": "artifactory"})
	assert.Equal(t, domain.BuilderConfig{Goals: "test"}, cfg)
}

func TestBuilderConfig_WithOverrides(t *testing.T) {
	base := domain.BuilderConfig{MavenName: "M3", Goals: "install", MavenOpts: "-Xmx1g"}

	got := base.WithOverrides(domain.BuilderConfig{Goals: "verify", RootPom: "sub/pom.xml"})

	assert.Equal(t, domain.BuilderConfig{MavenName: "M3", RootPom: "sub/pom.xml", Goals: "verify", MavenOpts: "-Xmx1g"}, got)
	assert.Equal(t, "install", base.Goals, "receiver must not change")
}

func TestBuilderConfig_Pom(t *testing.T) {
	assert.Equal(t, "pom.xml", domain.BuilderConfig{}.Pom())
	assert.Equal(t, "api/pom.xml", domain.BuilderConfig{RootPom: "api/pom.xml"}.Pom())
}

func TestCommandLine_String(t *testing.T) {
	cl := &domain.CommandLine{Args: []string{"java", "-Dname=my job", "", "-Dx=it's", "-f", "pom.xml"}}
	assert.Equal(t, `java '-Dname=my job' '' '-Dx=it'\''s' -f pom.xml`, cl.String())
}

func TestCommandLine_Environ(t *testing.T) {
	cl := &domain.CommandLine{Env: map[string]string{"PATH": "/usr/bin", "BUILD_NUMBER": "3"}}
	assert.Equal(t, []string{"BUILD_NUMBER=3", "PATH=/usr/bin"}, cl.Environ())
}

func TestProperties(t *testing.T) {
	props := domain.Properties{
		{Key: domain.PropBuildName, Value: "my-job"},
		{Key: domain.PropBuildNumber, Value: "3"},
	}

	v, ok := props.Get(domain.PropBuildNumber)
	assert.True(t, ok)
	assert.Equal(t, "3", v)
	assert.False(t, props.Has(domain.PropVCSRevision))
	assert.Equal(t, []string{"-DbuildInfo.build.name=my-job", "-DbuildInfo.build.number=3"}, props.Args())
}

func TestResultFromExitCode(t *testing.T) {
	assert.Equal(t, domain.ResultSuccess, domain.ResultFromExitCode(0))
	for _, code := range []int{1, 127, 255, -1} {
		assert.Equal(t, domain.ResultFailure, domain.ResultFromExitCode(code), "code %d", code)
	}

	failed := domain.NewOutcome(0).Failed()
	assert.Equal(t, 0, failed.ExitCode)
	assert.Equal(t, domain.ResultFailure, failed.Result)
}

func TestBuildContext_VCSRevision(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
		ok   bool
	}{
		{name: "none", env: map[string]string{}, ok: false},
		{name: "git", env: map[string]string{"GIT_COMMIT": "abc123"}, want: "abc123", ok: true},
		{name: "svn first", env: map[string]string{"GIT_COMMIT": "abc123", "SVN_REVISION": "42"}, want: "42", ok: true},
		{name: "blank ignored", env: map[string]string{"SVN_REVISION": " ", "GIT_COMMIT": "abc123"}, want: "abc123", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bc := &domain.BuildContext{Env: tt.env}
			got, ok := bc.VCSRevision()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildContext_Causes(t *testing.T) {
	bc := &domain.BuildContext{Causes: []domain.Cause{
		{Kind: domain.CauseUser, UserName: "alice"},
		{Kind: domain.CauseUpstream, UpstreamProject: "core", UpstreamBuild: 9},
		{Kind: domain.CauseUpstream, UpstreamProject: "other", UpstreamBuild: 1},
		{Kind: domain.CauseUser, UserName: "bob"},
	}}

	up := bc.UpstreamCause()
	if assert.NotNil(t, up) {
		assert.Equal(t, "core", up.UpstreamProject)
		assert.Equal(t, 9, up.UpstreamBuild)
	}

	user, ok := bc.TriggeringUser()
	assert.True(t, ok)
	assert.Equal(t, "bob", user)

	empty := &domain.BuildContext{Causes: []domain.Cause{{Kind: domain.CauseTimer}}}
	assert.Nil(t, empty.UpstreamCause())
	_, ok = empty.TriggeringUser()
	assert.False(t, ok)
}

func TestInstallation_Paths(t *testing.T) {
	inst := domain.Installation{Name: "M3", Home: "/opt/maven3"}
	assert.Equal(t, "/opt/maven3/boot", inst.BootDir())
	assert.Equal(t, "/opt/maven3/bin/m2.conf", inst.DefaultClassworldsConf())
}

func TestIsConfigurationError(t *testing.T) {
	wrapped := zerr.With(zerr.Wrap(domain.ErrClassworldsJarNotFound, "boot dir is empty"), "boot_dir", "/opt/maven3/boot")
	assert.True(t, domain.IsConfigurationError(wrapped))
	assert.True(t, domain.IsConfigurationError(domain.ErrNoInstallation))
	assert.False(t, domain.IsConfigurationError(zerr.Wrap(domain.ErrLaunchFailed, "exec failed")))
	assert.False(t, domain.IsConfigurationError(errors.New("other")))
	assert.False(t, domain.IsConfigurationError(nil))
}
