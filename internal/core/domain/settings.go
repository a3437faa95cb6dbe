package domain

// PluginLayout locates the files the build step ships alongside itself.
type PluginLayout struct {
	// ClassesDir contains the step's classworlds.conf.
	ClassesDir string `mapstructure:"classes_dir"`
	// LibDir contains the build-info extractor jars.
	LibDir string `mapstructure:"lib_dir"`
}

// LogSettings configures the logger.
type LogSettings struct {
	// Format is "text" or "json".
	Format string `mapstructure:"format"`
}

// Settings are the host-wide settings of the local host.
type Settings struct {
	Installations []Installation    `mapstructure:"installations"`
	JDKHome       string            `mapstructure:"jdk_home"`
	Plugin        PluginLayout      `mapstructure:"plugin"`
	Recorder      bool              `mapstructure:"recorder"`
	RootURL       string            `mapstructure:"root_url"`
	AgentName     string            `mapstructure:"agent_name"`
	Env           map[string]string `mapstructure:"env"`
	Log           LogSettings       `mapstructure:"log"`
}
