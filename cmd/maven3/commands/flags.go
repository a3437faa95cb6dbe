package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/maven3/internal/adapters/host"
	"go.trai.ch/maven3/internal/app"
	"go.trai.ch/maven3/internal/core/domain"
)

func addStepFlags(cmd *cobra.Command) {
	cmd.Flags().String("maven-name", "", "Name of the Maven installation to use")
	cmd.Flags().String("pom", "", "Path of the POM, relative to the module root (default pom.xml)")
	cmd.Flags().String("goals", "", "Goals and options passed to Maven")
	cmd.Flags().String("opts", "", "JVM options, build variables are substituted")
}

func addBuildFlags(cmd *cobra.Command) {
	cmd.Flags().String("build-name", "", "Display name of the build (default module root base name)")
	cmd.Flags().Int("build-number", 0, "Build number (default 1)")
	cmd.Flags().String("module-root", "", "Directory Maven runs in (default working directory)")
	cmd.Flags().String("build-root", "", "Directory for build records (default .maven3/builds/<number>)")
	cmd.Flags().String("upstream", "", "Triggering build as project#number")
	cmd.Flags().String("user", "", "User who started the build")
}

func stepConfig(cmd *cobra.Command) domain.BuilderConfig {
	mavenName, _ := cmd.Flags().GetString("maven-name")
	pom, _ := cmd.Flags().GetString("pom")
	goals, _ := cmd.Flags().GetString("goals")
	opts, _ := cmd.Flags().GetString("opts")
	return domain.BuilderConfig{
		MavenName: mavenName,
		RootPom:   pom,
		Goals:     goals,
		MavenOpts: opts,
	}
}

func runOptions(cmd *cobra.Command) app.RunOptions {
	stepFile, _ := cmd.Flags().GetString("config")
	settingsFile, _ := cmd.Flags().GetString("settings")
	if settingsFile == "" {
		settingsFile = app.DefaultSettingsPath()
	}

	buildName, _ := cmd.Flags().GetString("build-name")
	buildNumber, _ := cmd.Flags().GetInt("build-number")
	moduleRoot, _ := cmd.Flags().GetString("module-root")
	buildRoot, _ := cmd.Flags().GetString("build-root")
	upstream, _ := cmd.Flags().GetString("upstream")
	user, _ := cmd.Flags().GetString("user")

	return app.RunOptions{
		StepFile:     stepFile,
		SettingsFile: settingsFile,
		Overrides:    stepConfig(cmd),
		Host: host.Options{
			BuildName:   buildName,
			BuildNumber: buildNumber,
			ModuleRoot:  moduleRoot,
			BuildRoot:   buildRoot,
			Upstream:    upstream,
			User:        user,
		},
		Output: cmd.OutOrStdout(),
	}
}
