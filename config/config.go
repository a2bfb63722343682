package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server Server
	Sheets Sheets
	Chat   Chat
	Debug  Debug
}

// Server holds server-related configuration
type Server struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Sheets holds remote spreadsheet configuration. The service-account
// credential itself is loaded separately (CREDENTIALS_JSON env var first,
// then the credentials file).
type Sheets struct {
	SpreadsheetID   string `mapstructure:"spreadsheet_id"`
	CredentialsFile string `mapstructure:"credentials_file"`
}

// Chat holds configuration for the hosted chat-completion demo
type Chat struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
}

// Debug holds the shared secret guarding the schema-drift debug endpoint.
// An empty secret disables the endpoint.
type Debug struct {
	Secret string `mapstructure:"secret"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/areteselect/")

	// Environment variable settings
	v.SetEnvPrefix("ARETE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Spreadsheet defaults: the case library lives in one fixed document
	v.SetDefault("sheets.spreadsheet_id", "1PzrbtLu1e9vqfyvSPMOXKL2quMmmcQlpSD44be682ls")
	v.SetDefault("sheets.credentials_file", "credentials.json")

	// Chat defaults
	v.SetDefault("chat.base_url", "https://router.huggingface.co/v1")
	v.SetDefault("chat.model", "openai/gpt-oss-120b:cerebras")

	// Debug endpoint is disabled until a secret is configured
	v.SetDefault("debug.secret", "")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Sheets.SpreadsheetID == "" {
		return fmt.Errorf("spreadsheet ID is required (set ARETE_SHEETS_SPREADSHEET_ID)")
	}

	if config.Sheets.CredentialsFile == "" {
		return fmt.Errorf("credentials file path must not be empty")
	}

	if config.Chat.BaseURL == "" {
		return fmt.Errorf("chat base URL must not be empty")
	}

	return nil
}
