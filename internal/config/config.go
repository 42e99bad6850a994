package config

import (
	"fmt"
	"sync"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Address string `mapstructure:"address"`
	Port    int    `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	LogMode bool   `mapstructure:"log_mode"`
}

// StorageConfig selects the persistence backend: "sqlite" (default) or
// "memory" for ephemeral runs and demos.
type StorageConfig struct {
	Backend string `mapstructure:"backend"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// VoiceParserConfig points at the external transcript parser. An empty URL
// disables the feature.
type VoiceParserConfig struct {
	URL string `mapstructure:"url"`
}

type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Storage     StorageConfig     `mapstructure:"storage"`
	Log         LogConfig         `mapstructure:"log"`
	VoiceParser VoiceParserConfig `mapstructure:"voice_parser"`
}

var (
	appConfig *Config
	once      sync.Once
)

// Load loads configuration from given file path (e.g. "config.yaml").
// If path is empty, it defaults to "config.yaml" in current working directory.
func Load(path string) (*Config, error) {
	var err error
	once.Do(func() {
		v := viper.New()

		if path == "" {
			v.SetConfigName("config")
			v.SetConfigType("yaml")
			v.AddConfigPath(".")
		} else {
			v.SetConfigFile(path)
		}

		v.SetDefault("server.address", "0.0.0.0")
		v.SetDefault("server.port", 8080)
		v.SetDefault("database.path", "data/fitness.db")
		v.SetDefault("storage.backend", "sqlite")
		v.SetDefault("log.level", "info")

		// environment overrides, e.g. FIT_SERVER_PORT=9000
		v.SetEnvPrefix("FIT")
		v.AutomaticEnv()

		if err = v.ReadInConfig(); err != nil {
			// config file is optional; defaults plus env cover a bare start
			if _, notFound := err.(viper.ConfigFileNotFoundError); notFound {
				err = nil
			} else {
				err = fmt.Errorf("read config: %w", err)
				return
			}
		}

		var c Config
		if err = v.Unmarshal(&c); err != nil {
			err = fmt.Errorf("unmarshal config: %w", err)
			return
		}

		appConfig = &c
	})

	if err != nil {
		return nil, err
	}
	return appConfig, nil
}

// Get returns the loaded global configuration.
// Call Load() once at application startup.
func Get() *Config {
	return appConfig
}
