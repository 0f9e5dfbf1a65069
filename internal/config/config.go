package config

import (
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
)

// LogFile - Optional rotated log file, logging goes to stderr when Path is empty
type LogFile struct {
	Path       string `yaml:"path" env:"LOG_FILE_PATH"`
	MaxSizeMB  int    `yaml:"max_size_mb" env:"LOG_FILE_MAX_SIZE_MB" env-default:"10"`
	MaxBackups int    `yaml:"max_backups" env:"LOG_FILE_MAX_BACKUPS" env-default:"3"`
	MaxAgeDays int    `yaml:"max_age_days" env:"LOG_FILE_MAX_AGE_DAYS" env-default:"28"`
}

type Config struct {
	DictionaryPath string  `yaml:"dictionary_path" env:"DICTIONARY_PATH" env-default:"dictionary"`
	HashAlgorithm  string  `yaml:"hash_algorithm" env:"HASH_ALGORITHM" env-default:"polynomial"`
	LogLevel       string  `yaml:"log_level" env:"LOG_LEVEL" env-default:"INFO"`
	LogFile        LogFile `yaml:"log_file"`
	Dump           bool    `yaml:"dump" env:"DUMP" env-default:"false"`
	Stat           bool    `yaml:"stat" env:"STAT" env-default:"false"`
}

// Load - Reads configuration from the file at configPath, if given, and from the environment.
// Environment variables take precedence over the file.
func Load(configPath string) (cfg Config, err error) {
	if configPath != "" {
		if err = cleanenv.ReadConfig(configPath, &cfg); err != nil {
			err = fmt.Errorf("read config file: %w", err)
			return
		}
	} else if err = cleanenv.ReadEnv(&cfg); err != nil {
		err = fmt.Errorf("read env: %w", err)
		return
	}

	err = cfg.validate()
	return
}

func (c Config) validate() error {
	switch c.HashAlgorithm {
	case "polynomial", "crc32":
	default:
		return fmt.Errorf("unknown hash algorithm: %q", c.HashAlgorithm)
	}

	switch c.LogLevel {
	case "DEBUG", "INFO", "ERROR":
	default:
		return fmt.Errorf("unknown log level: %q", c.LogLevel)
	}

	if c.DictionaryPath == "" {
		return fmt.Errorf("dictionary path can not be empty")
	}

	return nil
}
