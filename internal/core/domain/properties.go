package domain

// Property names understood by the build-info recorder loaded into the Maven JVM.
const (
	PropActivateRecorder = "org.jfrog.build.extractor.maven.recorder.activate"

	PropBuildName         = "buildInfo.build.name"
	PropBuildNumber       = "buildInfo.build.number"
	PropBuildStarted      = "buildInfo.build.started"
	PropBuildURL          = "buildInfo.build.url"
	PropVCSRevision       = "buildInfo.vcs.revision"
	PropParentBuildName   = "buildInfo.build.parentName"
	PropParentBuildNumber = "buildInfo.build.parentNumber"
	PropPrincipal         = "buildInfo.principal"
	PropAgentName         = "buildInfo.agent.name"
	PropAgentVersion      = "buildInfo.agent.version"
	PropBuildInfoOutput   = "buildInfo.output.file"

	PropPublishArtifacts = "buildInfo.publish.artifacts"
	PropPublishBuildInfo = "buildInfo.publish.buildInfo"

	// PropDeployParamPrefix namespaces the values the extractor attaches to deployed artifacts.
	PropDeployParamPrefix = "buildInfo.deploy."
)

// Mirrored deploy-parameter keys.
const (
	PropDeployBuildName         = PropDeployParamPrefix + "build.name"
	PropDeployBuildNumber       = PropDeployParamPrefix + "build.number"
	PropDeployVCSRevision       = PropDeployParamPrefix + PropVCSRevision
	PropDeployParentBuildName   = PropDeployParamPrefix + PropParentBuildName
	PropDeployParentBuildNumber = PropDeployParamPrefix + PropParentBuildNumber
)

// Property is a single system property passed to the launched JVM.
type Property struct {
	Key   string
	Value string
}

// Properties is an ordered list of system properties.
type Properties []Property

// Get returns the value of key and whether it is present.
func (p Properties) Get(key string) (string, bool) {
	for _, prop := range p {
		if prop.Key == key {
			return prop.Value, true
		}
	}
	return "", false
}

// Has reports whether key is present.
func (p Properties) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Args renders each property as a -Dkey=value argument, keeping the order.
func (p Properties) Args() []string {
	args := make([]string, 0, len(p))
	for _, prop := range p {
		args = append(args, "-D"+prop.Key+"="+prop.Value)
	}
	return args
}
