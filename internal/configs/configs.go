package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
)

const (
	DefaultTaskFile     = "System.json"
	DefaultTimeLayout   = "03:04:05 PM"
	DefaultExportFormat = "yaml"
)

type Config struct {
	TaskFile     string
	TimeLayout   string
	ExportFormat string
}

func Load() Config {
	cfg := Config{
		TaskFile:     getEnv("TASK_FILE", DefaultTaskFile),
		TimeLayout:   getEnv("TASK_TIME_LAYOUT", DefaultTimeLayout),
		ExportFormat: strings.ToLower(getEnv("TASK_EXPORT_FORMAT", DefaultExportFormat)),
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	return cfg
}

func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.TaskFile) == "" {
		return errors.New("TASK_FILE must not be empty")
	}
	if strings.TrimSpace(cfg.TimeLayout) == "" {
		return errors.New("TASK_TIME_LAYOUT must not be empty")
	}
	if strings.ContainsAny(cfg.TimeLayout, "\r\n") {
		return errors.New("TASK_TIME_LAYOUT must be a single line")
	}
	switch cfg.ExportFormat {
	case "yaml", "json":
	default:
		return fmt.Errorf("TASK_EXPORT_FORMAT must be yaml or json, got %q", cfg.ExportFormat)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
