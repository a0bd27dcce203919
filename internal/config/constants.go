package config

// Application settings.
const (
	AppName    = "teamboard"
	DBFileName = "teamboard.db"
	ConfigFile = "config.yaml"
)

// Input limits.
const (
	MaxTitleLength = 100
	MaxNameLength  = 60
)

// Defaults applied when the config file is missing or partial.
const (
	DefaultCompletedStatus = "done"
	DefaultTheme           = "default"
)
