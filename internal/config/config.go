package config

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

type LogConfig struct {
	File       string `json:"file"`
	Level      string `json:"level"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
	MaxAgeDays int    `json:"max_age_days"`
}

type Config struct {
	Mode      string    `json:"mode"`
	OutputDir string    `json:"output_dir"`
	Log       LogConfig `json:"log"`
}

func Default() *Config {
	return &Config{
		Mode:      "production",
		OutputDir: ".",
		Log: LogConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":             c.Mode,
		"output_dir":       c.OutputDir,
		"log_file":         c.Log.File,
		"log_level":        c.Log.Level,
		"log_max_size_mb":  c.Log.MaxSizeMB,
		"log_max_backups":  c.Log.MaxBackups,
		"log_max_age_days": c.Log.MaxAgeDays,
	}
}

// Development reports whether the DEVELOPMENT env variable forces
// development mode regardless of the config file.
func Development() bool {
	dev, err := strconv.ParseBool(os.Getenv("DEVELOPMENT"))
	return err == nil && dev
}

func (c Config) Production() bool {
	return !c.Development()
}

func (c Config) Development() bool {
	return c.Mode != "production" || Development()
}

// ReadConfig overlays the JSON file at path onto config; keys missing from
// the file keep their current values.
func ReadConfig(path string, config *Config) error {
	if b, err := os.ReadFile(path); err != nil {
		return err
	} else {
		return json.Unmarshal(b, config)
	}
}
