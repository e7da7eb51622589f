package config

const (
	defaultDataHome               = "~/mir_datasets"
	defaultReportDBPath           = "~/.local/share/mirkit/reports.db"
	defaultDownloadTimeoutSeconds = 600
	defaultLogFormat              = "console"
	defaultLogLevel               = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataHome:     defaultDataHome,
			ReportDBPath: defaultReportDBPath,
		},
		Download: Download{
			TimeoutSeconds: defaultDownloadTimeoutSeconds,
			Cleanup:        true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
