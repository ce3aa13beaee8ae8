package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds all client configuration.
type Config struct {
	// Remote endpoint settings
	APIURL         string
	TimeoutSeconds int

	// Session settings
	Token          string
	Username       string
	Email          string
	AvatarInitials string
}

// LoadConfig loads configuration from files and environment variables.
func LoadConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envMappings := map[string]string{
		"APIURL":         "CRYOGENA_API_URL",
		"TimeoutSeconds": "CRYOGENA_TIMEOUT_SECONDS",
		"Token":          "CRYOGENA_TOKEN",
		"Username":       "CRYOGENA_USERNAME",
		"Email":          "CRYOGENA_EMAIL",
		"AvatarInitials": "CRYOGENA_AVATAR_INITIALS",
	}

	for configKey, envVar := range envMappings {
		if err := v.BindEnv(configKey, envVar); err != nil {
			log.Warn().Err(err).Msgf("Failed to bind environment variable %s for %s", envVar, configKey)
		}
	}

	v.SetConfigName("cryogena_config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.cryogena")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		log.Debug().Msg("Config file not found, using environment variables and defaults")
	} else {
		log.Info().Msgf("Using config file: %s", v.ConfigFileUsed())
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APIURL", "https://cryogena-backend.onrender.com/graphql/")
	v.SetDefault("TimeoutSeconds", 30)
}

func validateConfig(config *Config) error {
	if config.APIURL == "" {
		return fmt.Errorf("CRYOGENA_API_URL must not be empty")
	}
	if config.TimeoutSeconds <= 0 {
		return fmt.Errorf("CRYOGENA_TIMEOUT_SECONDS must be positive, got %d", config.TimeoutSeconds)
	}
	return nil
}
