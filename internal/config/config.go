// Package config loads application settings from an optional YAML file
// and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/abhisek/hoehwa/internal/convgen"
	"github.com/abhisek/hoehwa/internal/llm"
	"github.com/abhisek/hoehwa/internal/logging"
)

// EnvPrefix prefixes every environment override, e.g. HOEHWA_LLM_PROVIDER.
const EnvPrefix = "HOEHWA"

// Config is the complete application configuration.
type Config struct {
	LLM        llm.Config     `mapstructure:"llm"`
	Generation convgen.Config `mapstructure:"generation"`
	Log        logging.Config `mapstructure:"log"`
	Store      StoreConfig    `mapstructure:"store"`
	Server     ServerConfig   `mapstructure:"server"`
	Export     ExportConfig   `mapstructure:"export"`
}

// StoreConfig locates the SQLite event database.
type StoreConfig struct {
	// Path is the database file. Empty selects the platform default.
	Path string `mapstructure:"path"`
}

// ServerConfig configures the web surface.
type ServerConfig struct {
	Addr string `mapstructure:"addr" validate:"required"`
}

// ExportConfig configures where the terminal UI saves the session log.
type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

// ConfigurationError reports settings the process cannot run with.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %v", e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// IsConfigurationError reports whether err is a ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// providerKeyEnv lists the conventional API key variables accepted in
// addition to the prefixed ones.
var providerKeyEnv = map[string]string{
	"llm.anthropic.api_key":  "ANTHROPIC_API_KEY",
	"llm.openai.api_key":     "OPENAI_API_KEY",
	"llm.gemini.api_key":     "GEMINI_API_KEY",
	"llm.openrouter.api_key": "OPENROUTER_API_KEY",
}

func setDefaults(v *viper.Viper) {
	l := llm.DefaultConfig()
	v.SetDefault("llm.provider", l.Provider)
	v.SetDefault("llm.anthropic.api_key", "")
	v.SetDefault("llm.anthropic.model", l.Anthropic.Model)
	v.SetDefault("llm.openai.api_key", "")
	v.SetDefault("llm.openai.model", l.OpenAI.Model)
	v.SetDefault("llm.openai.base_url", "")
	v.SetDefault("llm.gemini.api_key", "")
	v.SetDefault("llm.gemini.model", l.Gemini.Model)
	v.SetDefault("llm.openrouter.api_key", "")
	v.SetDefault("llm.openrouter.model", l.OpenRouter.Model)
	v.SetDefault("llm.openrouter.base_url", "")

	g := convgen.DefaultConfig()
	v.SetDefault("generation.max_tokens", g.MaxTokens)
	v.SetDefault("generation.temperature", g.Temperature)

	lg := logging.DefaultConfig()
	v.SetDefault("log.level", lg.Level)
	v.SetDefault("log.format", lg.Format)
	v.SetDefault("log.file", lg.File)

	v.SetDefault("store.path", "")
	v.SetDefault("server.addr", ":8501")
	v.SetDefault("export.dir", ".")
}

// DefaultFile returns $XDG_CONFIG_HOME/hoehwa/config.yaml, falling back
// to ~/.config when XDG_CONFIG_HOME is unset. It returns "" when no home
// directory can be resolved.
func DefaultFile() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "hoehwa", "config.yaml")
}

// Load reads configuration. When path is empty the default file is read
// if it exists; otherwise only defaults and the environment apply.
// Prefixed variables win over the conventional provider key variables.
func Load(path string) (*Config, error) {
	if path == "" {
		if def := DefaultFile(); def != "" {
			if _, err := os.Stat(def); err == nil {
				path = def
			}
		}
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range providerKeyEnv {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, env); err != nil {
			return nil, &ConfigurationError{Err: err}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, &ConfigurationError{Err: fmt.Errorf("read config file %s: %w", path, err)}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &ConfigurationError{Err: fmt.Errorf("decode config: %w", err)}
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, &ConfigurationError{Err: err}
	}
	return &cfg, nil
}

// RequireCredentials fails when the selected provider has no API key.
// Commands that call the model check this at startup.
func (c *Config) RequireCredentials() error {
	if err := c.LLM.Validate(); err != nil {
		return &ConfigurationError{Err: err}
	}
	return nil
}
