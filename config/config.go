package config

import (
	"strings"

	"github.com/reviewlens/reviewlens/internal"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// We're bootstrapping so avoid any imports from other packages
var log = logrus.New()

// LoadConfig loads the config file and ENV variables into a Config struct
func LoadConfig(configFile string) (*Config, error) {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("REVIEWLENS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	// Environment variables take precedence over config file
	loadDotEnv()

	bindings := map[string]string{
		"llm.openai_api_key":         "REVIEWLENS_OPENAI_API_KEY",
		"embeddings.openai_api_key":  "REVIEWLENS_EMBEDDINGS_OPENAI_API_KEY",
		"warehouse.credentials_file": "GOOGLE_APPLICATION_CREDENTIALS",
	}
	for key, env := range bindings {
		if err := viper.BindEnv(key, env); err != nil {
			log.Fatalf("Error binding environment variable: %s", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults fills in config values we require but don't force users to set.
func applyDefaults(cfg *Config) {
	if cfg.Retrieval.TopK <= 0 {
		cfg.Retrieval.TopK = 4
	}
	if cfg.Retrieval.MaxContextTokens <= 0 {
		cfg.Retrieval.MaxContextTokens = 3000
	}
	if cfg.Memory.MessageWindow <= 0 {
		cfg.Memory.MessageWindow = 12
	}
	if cfg.Warehouse.TimeoutSeconds <= 0 {
		cfg.Warehouse.TimeoutSeconds = 30
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
}

// loadDotEnv loads environment variables from .env file
func loadDotEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Warn(".env file not found or unable to load")
	}
}

// SetLogLevel sets the log level based on the config file. Defaults to INFO if not set or invalid
func SetLogLevel(cfg *Config) {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	internal.SetLogLevel(level)
	log.Info("Log level set to: ", level)
}
