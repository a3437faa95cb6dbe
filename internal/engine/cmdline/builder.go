// Package cmdline assembles the command line that boots Maven 3 through the
// classworlds launcher.
package cmdline

import (
	"context"
	"maps"
	"path/filepath"
	"slices"

	"go.trai.ch/maven3/internal/core/domain"
	"go.trai.ch/maven3/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// LauncherMainClass is the classworlds entry point that boots Maven.
	LauncherMainClass = "org.codehaus.plexus.classworlds.launcher.Launcher"
	// ClassworldsJarPrefix identifies the bootstrap jar in the installation's boot directory.
	ClassworldsJarPrefix = "plexus-classworlds"
	// ClassworldsConfName is the classworlds configuration shipped with the step.
	ClassworldsConfName = "classworlds.conf"

	javaCommand = "java"
)

// PropertySource contributes the recorder system properties of a build.
type PropertySource interface {
	Collect(ctx context.Context, bc *domain.BuildContext) (domain.Properties, error)
}

// Builder assembles Maven command lines.
type Builder struct {
	fs    ports.FileSystem
	props PropertySource
}

// NewBuilder creates a Builder probing installations through fs and adding recorder properties from props.
func NewBuilder(fs ports.FileSystem, props PropertySource) *Builder {
	return &Builder{fs: fs, props: props}
}

// Build returns the command line running cfg with inst for the build bc.
// Every configuration problem is reported before anything is launched.
func (b *Builder) Build(
	ctx context.Context,
	cfg domain.BuilderConfig,
	inst *domain.Installation,
	bc *domain.BuildContext,
	host ports.Host,
) (*domain.CommandLine, error) {
	if inst == nil {
		return nil, domain.ErrNoInstallation
	}
	if inst.Home == "" {
		return nil, zerr.With(
			zerr.Wrap(domain.ErrInstallationHomeUnset, "Maven '"+inst.Name+"'"),
			"installation", inst.Name,
		)
	}

	classworldsJar, err := b.classworldsJar(*inst)
	if err != nil {
		return nil, err
	}

	recorder := host.RecorderEnabled()
	layout := host.PluginLayout()

	conf := inst.DefaultClassworldsConf()
	if recorder {
		conf = filepath.Join(layout.ClassesDir, ClassworldsConfName)
	}
	if !b.fs.IsFile(conf) {
		return nil, zerr.With(zerr.Wrap(domain.ErrClassworldsConfMissing, "classworlds.conf"), "path", conf)
	}

	if recorder {
		if err := b.checkExtractor(layout.LibDir); err != nil {
			return nil, err
		}
	}

	rawOpts, err := Tokenize(cfg.MavenOpts)
	if err != nil {
		return nil, zerr.With(err, "field", domain.ConfigKeyMavenOpts)
	}

	macroOpts, err := substitute(host, rawOpts)
	if err != nil {
		return nil, zerr.With(err, "field", domain.ConfigKeyMavenOpts)
	}

	goals, err := Tokenize(cfg.Goals)
	if err != nil {
		return nil, zerr.With(err, "field", domain.ConfigKeyGoals)
	}

	var props domain.Properties
	if recorder {
		props, err = b.props.Collect(ctx, bc)
		if err != nil {
			return nil, err
		}
	}

	var args []string
	if !host.IsUnix() {
		args = append(args, "cmd.exe", "/C")
	}
	args = append(args, javaPath(bc))
	args = append(args, rawOpts...)
	args = append(args, "-cp", classworldsJar)
	args = append(args, "-Dmaven.home="+inst.Home)
	if recorder {
		args = append(args, "-Dm3plugin.lib="+layout.LibDir)
	}
	args = append(args, "-Dclassworlds.conf="+conf)
	args = append(args, props.Args()...)
	args = append(args, macroOpts...)
	args = append(args, LauncherMainClass)
	args = append(args, "-f", cfg.Pom())
	args = append(args, goals...)

	return &domain.CommandLine{
		Args: args,
		Env:  maps.Clone(bc.Env),
		Dir:  bc.ModuleRoot,
	}, nil
}

// classworldsJar returns the lexicographically first bootstrap jar of the installation.
func (b *Builder) classworldsJar(inst domain.Installation) (string, error) {
	bootDir := inst.BootDir()
	candidates, err := b.fs.FindByPrefix(bootDir, ClassworldsJarPrefix)
	if err != nil || len(candidates) == 0 {
		wrapped := zerr.Wrap(domain.ErrClassworldsJarNotFound, "boot directory")
		if err != nil {
			wrapped = zerr.With(wrapped, "cause", err.Error())
		}
		return "", zerr.With(wrapped, "boot_dir", bootDir)
	}
	candidates = slices.Clone(candidates)
	slices.Sort(candidates)
	return candidates[0], nil
}

func (b *Builder) checkExtractor(libDir string) error {
	jars, err := b.fs.ListJars(libDir)
	if err != nil || len(jars) == 0 {
		wrapped := zerr.Wrap(domain.ErrExtractorNotFound, "extractor library directory")
		if err != nil {
			wrapped = zerr.With(wrapped, "cause", err.Error())
		}
		return zerr.With(wrapped, "lib_dir", libDir)
	}
	return nil
}

// substitute applies build-variable substitution to each token. Substituted values
// are never split again, and tokens that substitute to nothing are dropped.
func substitute(host ports.Host, tokens []string) ([]string, error) {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		v, err := host.ReplaceMacro(tok)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidArguments, err.Error()), "token", tok)
		}
		if v != "" {
			out = append(out, v)
		}
	}
	return out, nil
}

func javaPath(bc *domain.BuildContext) string {
	if bc.JDKBinDir == "" {
		return javaCommand
	}
	return filepath.Join(bc.JDKBinDir, javaCommand)
}
