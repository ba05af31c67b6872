package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"casino-server/internal/util"
)

// Config provides configuration for the casino server
type Config struct {
	loaded bool
	Addr   string `yaml:"addr" envconfig:"addr"`
	Log    struct {
		Level             string `yaml:"level"`
		Format            string `yaml:"format"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
	}
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration. A missing config file is fine; the
// defaults plus environment variables are enough to run the server.
func Load() error {
	config = Config{
		Addr: ":5000",
	}
	config.Log.Level = "info"
	config.Log.Format = "text"

	configFile := util.Getenv("CASINO_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("casino", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
