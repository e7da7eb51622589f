package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeDownload()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataHome) == "" {
		c.Paths.DataHome = defaultDataHome
	}
	if c.Paths.DataHome, err = expandPath(c.Paths.DataHome); err != nil {
		return fmt.Errorf("paths.data_home: %w", err)
	}
	if strings.TrimSpace(c.Paths.ReportDBPath) == "" {
		c.Paths.ReportDBPath = defaultReportDBPath
	}
	if c.Paths.ReportDBPath, err = expandPath(c.Paths.ReportDBPath); err != nil {
		return fmt.Errorf("paths.report_db_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeDownload() {
	if c.Download.TimeoutSeconds <= 0 {
		c.Download.TimeoutSeconds = defaultDownloadTimeoutSeconds
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
