package config

const (
	// ProjectConfigName is the per-project config file looked up in the
	// working directory.
	ProjectConfigName     = "bowersync.toml"
	defaultUserConfigPath = "~/.config/bowersync/config.toml"
	defaultSource         = "package.json"
	defaultDestination    = "bower.json"
	defaultLogFormat      = "console"
	defaultLogLevel       = "warn"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			Source:      defaultSource,
			Destination: defaultDestination,
		},
		Sync: Sync{
			Contributors: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
