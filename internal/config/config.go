package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "CORTE"

// Config is read from the environment (CORTE_*), after an optional .env file.
type Config struct {
	// Sheet selects a workbook sheet by name; empty means the first sheet.
	Sheet     string `envconfig:"SHEET"`
	TopN      int    `envconfig:"TOP_N" default:"5"`
	OutputDir string `envconfig:"OUTPUT_DIR"`
	// Author is printed as a credit line under the report title.
	Author      string `envconfig:"AUTHOR"`
	Format      string `envconfig:"FORMAT" default:"docx"`
	Port        string `envconfig:"PORT" default:"8080"`
	MaxUploadMB int64  `envconfig:"MAX_UPLOAD_MB" default:"32"`
}

// Load reads .env if present and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var c Config
	if err := envconfig.Process(envPrefix, &c); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	switch c.Format {
	case "docx", "md":
	default:
		return fmt.Errorf("invalid format %q (use docx or md)", c.Format)
	}
	if c.TopN <= 0 {
		return fmt.Errorf("invalid top_n %d: must be positive", c.TopN)
	}
	if c.MaxUploadMB <= 0 {
		return fmt.Errorf("invalid max_upload_mb %d: must be positive", c.MaxUploadMB)
	}
	return nil
}
