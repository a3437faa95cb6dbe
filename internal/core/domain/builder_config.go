package domain

// Keys of the persisted form of BuilderConfig.
const (
	ConfigKeyMavenName = "mavenName"
	ConfigKeyRootPom   = "rootPom"
	ConfigKeyGoals     = "goals"
	ConfigKeyMavenOpts = "mavenOpts"
)

// DefaultRootPom is used when the step does not name a root POM.
const DefaultRootPom = "pom.xml"

// BuilderConfig is the configuration of one build step.
// It is a value type and is never modified after it has been bound.
type BuilderConfig struct {
	// MavenName selects the installation. Empty selects the first available one.
	MavenName string
	// RootPom is the POM passed to Maven with -f, relative to the module root.
	RootPom string
	// Goals is the whitespace separated list of goals and phases.
	Goals string
	// MavenOpts holds raw JVM options.
	MavenOpts string
}

// BuilderConfigFromMap binds a BuilderConfig from its persisted key/value form.
// Unknown keys are ignored.
func BuilderConfigFromMap(m map[string]string) BuilderConfig {
	return BuilderConfig{
		MavenName: m[ConfigKeyMavenName],
		RootPom:   m[ConfigKeyRootPom],
		Goals:     m[ConfigKeyGoals],
		MavenOpts: m[ConfigKeyMavenOpts],
	}
}

// ToMap returns the persisted key/value form of the configuration.
func (c BuilderConfig) ToMap() map[string]string {
	return map[string]string{
		ConfigKeyMavenName: c.MavenName,
		ConfigKeyRootPom:   c.RootPom,
		ConfigKeyGoals:     c.Goals,
		ConfigKeyMavenOpts: c.MavenOpts,
	}
}

// WithOverrides returns a copy of c where every non-empty field of o replaces the field of c.
func (c BuilderConfig) WithOverrides(o BuilderConfig) BuilderConfig {
	if o.MavenName != "" {
		c.MavenName = o.MavenName
	}
	if o.RootPom != "" {
		c.RootPom = o.RootPom
	}
	if o.Goals != "" {
		c.Goals = o.Goals
	}
	if o.MavenOpts != "" {
		c.MavenOpts = o.MavenOpts
	}
	return c
}

// Pom returns the root POM, falling back to DefaultRootPom.
func (c BuilderConfig) Pom() string {
	if c.RootPom == "" {
		return DefaultRootPom
	}
	return c.RootPom
}
