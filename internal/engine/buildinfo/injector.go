// Package buildinfo derives the system properties that activate the build-info
// recorder inside the Maven JVM.
package buildinfo

import (
	"context"
	"path/filepath"
	"strconv"

	"go.trai.ch/maven3/internal/core/domain"
	"go.trai.ch/maven3/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// OutputDirName is the directory under the build root the recorder writes to.
	OutputDirName = "maven3"
	// OutputFileName is the name of the build-info file written by the recorder.
	OutputFileName = "buildinfo.json"
)

// Injector collects build metadata as recorder properties.
type Injector struct {
	fs ports.FileSystem
}

// NewInjector creates an Injector that prepares the output directory through fs.
func NewInjector(fs ports.FileSystem) *Injector {
	return &Injector{fs: fs}
}

// OutputFile returns the path the recorder writes build-info to for buildRoot.
func OutputFile(buildRoot string) string {
	return filepath.Join(buildRoot, OutputDirName, OutputFileName)
}

// Collect returns the ordered recorder properties for bc.
// The output directory under bc.BuildRoot is created so the child process can write to it.
func (i *Injector) Collect(ctx context.Context, bc *domain.BuildContext) (domain.Properties, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if bc.BuildRoot == "" {
		return nil, zerr.Wrap(domain.ErrBuildRootUnset, "cannot place build-info output")
	}

	outputFile := OutputFile(bc.BuildRoot)
	if err := i.fs.EnsureDir(filepath.Dir(outputFile)); err != nil {
		return nil, err
	}

	number := strconv.Itoa(bc.Number)

	props := domain.Properties{
		{Key: domain.PropActivateRecorder, Value: "true"},
		{Key: domain.PropBuildName, Value: bc.DisplayName},
		{Key: domain.PropDeployBuildName, Value: bc.DisplayName},
		{Key: domain.PropBuildNumber, Value: number},
		{Key: domain.PropDeployBuildNumber, Value: number},
		{Key: domain.PropBuildStarted, Value: strconv.FormatInt(bc.Started.UnixMilli(), 10)},
	}

	if revision, ok := bc.VCSRevision(); ok {
		props = append(props,
			domain.Property{Key: domain.PropVCSRevision, Value: revision},
			domain.Property{Key: domain.PropDeployVCSRevision, Value: revision},
		)
	}

	props = append(props, domain.Property{Key: domain.PropBuildURL, Value: bc.URL})

	if upstream := bc.UpstreamCause(); upstream != nil {
		parentNumber := strconv.Itoa(upstream.UpstreamBuild)
		props = append(props,
			domain.Property{Key: domain.PropParentBuildName, Value: upstream.UpstreamProject},
			domain.Property{Key: domain.PropDeployParentBuildName, Value: upstream.UpstreamProject},
			domain.Property{Key: domain.PropParentBuildNumber, Value: parentNumber},
			domain.Property{Key: domain.PropDeployParentBuildNumber, Value: parentNumber},
		)
	}

	if user, ok := bc.TriggeringUser(); ok {
		props = append(props, domain.Property{Key: domain.PropPrincipal, Value: user})
	}

	props = append(props,
		domain.Property{Key: domain.PropAgentName, Value: bc.AgentName},
		domain.Property{Key: domain.PropAgentVersion, Value: bc.AgentVersion},
		domain.Property{Key: domain.PropPublishArtifacts, Value: "false"},
		domain.Property{Key: domain.PropPublishBuildInfo, Value: "false"},
		domain.Property{Key: domain.PropBuildInfoOutput, Value: outputFile},
	)

	return props, nil
}
