package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/maven3/internal/adapters/config"
	"go.trai.ch/maven3/internal/core/domain"
	"go.trai.ch/maven3/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	return config.NewLoader(log), log
}

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_LoadStep_YAML(t *testing.T) {
	loader, _ := newLoader(t)
	path := write(t, t.TempDir(), "maven3.yaml", `
mavenName: M3
rootPom: module/pom.xml
goals: clean install
mavenOpts: -Xmx1g -Dbuild=${BUILD_NUMBER}
`)

	cfg, err := loader.LoadStep(path)
	require.NoError(t, err)
	assert.Equal(t, domain.BuilderConfig{
		MavenName: "M3",
		RootPom:   "module/pom.xml",
		Goals:     "clean install",
		MavenOpts: "-Xmx1g -Dbuild=${BUILD_NUMBER}",
	}, cfg)
}

func TestLoader_LoadStep_TOML(t *testing.T) {
	loader, _ := newLoader(t)
	path := write(t, t.TempDir(), "maven3.toml", `
mavenName = "M3"
goals = "verify"
`)

	cfg, err := loader.LoadStep(path)
	require.NoError(t, err)
	assert.Equal(t, "M3", cfg.MavenName)
	assert.Equal(t, "verify", cfg.Goals)
	assert.Equal(t, "pom.xml", cfg.Pom())
}

func TestLoader_LoadStep_UnknownKeysWarn(t *testing.T) {
	loader, log := newLoader(t)
	log.EXPECT().Warn(gomock.Cond(func(msg string) bool {
		return strings.Contains(msg, "deployer, usePrivate")
	})).Times(1)

	path := write(t, t.TempDir(), "maven3.yml", "goals: package\ndeployer: x\nusePrivate: y\n")

	cfg, err := loader.LoadStep(path)
	require.NoError(t, err)
	assert.Equal(t, "package", cfg.Goals)
}

func TestLoader_LoadStep_Errors(t *testing.T) {
	dir := t.TempDir()
	loader, _ := newLoader(t)

	_, err := loader.LoadStep(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, domain.ErrConfigReadFailed)

	_, err = loader.LoadStep(write(t, dir, "bad.yaml", "goals: [unclosed"))
	require.ErrorIs(t, err, domain.ErrConfigParseFailed)

	_, err = loader.LoadStep(write(t, dir, "step.json", "{}"))
	require.ErrorIs(t, err, domain.ErrUnsupportedConfigFormat)
}

func TestLoader_SaveStep_RoundTrip(t *testing.T) {
	for _, name := range []string{"maven3.yaml", "maven3.toml"} {
		t.Run(name, func(t *testing.T) {
			loader, _ := newLoader(t)
			path := filepath.Join(t.TempDir(), "nested", name)
			cfg := domain.BuilderConfig{MavenName: "M3", Goals: "clean install", MavenOpts: `-Dmsg="a b"`}

			require.NoError(t, loader.SaveStep(path, cfg))

			got, err := loader.LoadStep(path)
			require.NoError(t, err)
			assert.Equal(t, cfg, got)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.NotContains(t, string(data), domain.ConfigKeyRootPom, "empty fields are not written")
		})
	}
}

func TestLoader_SaveStep_UnsupportedFormat(t *testing.T) {
	loader, _ := newLoader(t)
	err := loader.SaveStep(filepath.Join(t.TempDir(), "step.ini"), domain.BuilderConfig{})
	require.ErrorIs(t, err, domain.ErrUnsupportedConfigFormat)
}

func TestLoader_LoadSettings_Defaults(t *testing.T) {
	loader, _ := newLoader(t)

	settings, err := loader.LoadSettings("")
	require.NoError(t, err)
	assert.True(t, settings.Recorder)
	assert.Equal(t, config.DefaultAgentName, settings.AgentName)
	assert.Equal(t, "text", settings.Log.Format)
	assert.Empty(t, settings.Installations)
}

func TestLoader_LoadSettings_File(t *testing.T) {
	loader, _ := newLoader(t)
	path := write(t, t.TempDir(), "settings.yaml", `
installations:
  - name: M2
    home: /opt/maven2
  - name: M3
    home: /opt/maven3
jdk_home: /opt/jdk
plugin:
  classes_dir: /plugins/maven3/classes
  lib_dir: /plugins/maven3/lib
recorder: false
root_url: http://ci.example.com/
env:
  JAVA_OPTS: -Xmx2g
  Mixed_Case: kept
log:
  format: json
`)

	settings, err := loader.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, []domain.Installation{
		{Name: "M2", Home: "/opt/maven2"},
		{Name: "M3", Home: "/opt/maven3"},
	}, settings.Installations)
	assert.Equal(t, "/opt/jdk", settings.JDKHome)
	assert.Equal(t, domain.PluginLayout{ClassesDir: "/plugins/maven3/classes", LibDir: "/plugins/maven3/lib"}, settings.Plugin)
	assert.False(t, settings.Recorder)
	assert.Equal(t, "http://ci.example.com/", settings.RootURL)
	assert.Equal(t, map[string]string{"JAVA_OPTS": "-Xmx2g", "Mixed_Case": "kept"}, settings.Env)
	assert.Equal(t, "json", settings.Log.Format)
}

func TestLoader_LoadSettings_EnvOverrides(t *testing.T) {
	t.Setenv("MAVEN3_JDK_HOME", "/env/jdk")
	t.Setenv("MAVEN3_RECORDER", "false")
	t.Setenv("MAVEN3_PLUGIN_LIB_DIR", "/env/lib")

	loader, _ := newLoader(t)
	path := write(t, t.TempDir(), "settings.toml", `
jdk_home = "/file/jdk"
agent_name = "ci"

[[installations]]
name = "M3"
home = "/opt/maven3"
`)

	settings, err := loader.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "/env/jdk", settings.JDKHome)
	assert.False(t, settings.Recorder)
	assert.Equal(t, "/env/lib", settings.Plugin.LibDir)
	assert.Equal(t, "ci", settings.AgentName)
	assert.Equal(t, []domain.Installation{{Name: "M3", Home: "/opt/maven3"}}, settings.Installations)
}

func TestLoader_LoadSettings_Errors(t *testing.T) {
	loader, _ := newLoader(t)

	_, err := loader.LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, domain.ErrConfigReadFailed)

	_, err = loader.LoadSettings(filepath.Join(t.TempDir(), "settings.conf"))
	require.ErrorIs(t, err, domain.ErrUnsupportedConfigFormat)
}
