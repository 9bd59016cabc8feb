package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Environment names selecting which of the two fixed backend hosts to target.
const (
	EnvLocal    = "local"
	EnvDeployed = "deployed"
)

// Global configuration structure.
type Global struct {
	Environment     string `mapstructure:"environment" yaml:"environment"`
	LocalBaseURL    string `mapstructure:"local_base_url" yaml:"local_base_url"`
	DeployedBaseURL string `mapstructure:"deployed_base_url" yaml:"deployed_base_url"`
	DefaultModel    string `mapstructure:"default_model" yaml:"default_model"`
	QuizQuestions   int    `mapstructure:"quiz_questions" yaml:"quiz_questions"`

	// HTTP configuration
	HTTPTimeoutSec int `mapstructure:"http_timeout_sec" yaml:"http_timeout_sec"`

	// Logging
	LogFile string `mapstructure:"log_file" yaml:"log_file"`
}

// BaseURL resolves the backend host for the configured environment.
func (g *Global) BaseURL() string {
	if strings.EqualFold(g.Environment, EnvDeployed) {
		return strings.TrimRight(g.DeployedBaseURL, "/")
	}
	return strings.TrimRight(g.LocalBaseURL, "/")
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.studymind/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		dir, err := Dir()
		if err != nil {
			return err
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Dir returns ~/.studymind, creating it if necessary.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	dir := filepath.Join(home, ".studymind")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir config dir: %w", err)
	}
	return dir, nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("STUDYMIND")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("environment", EnvLocal)
	v.SetDefault("local_base_url", "http://localhost:8000")
	v.SetDefault("deployed_base_url", "https://studymind-ai-backend.onrender.com")
	v.SetDefault("default_model", "gemini-1.5-flash")
	v.SetDefault("quiz_questions", 5)
	v.SetDefault("http_timeout_sec", 60)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".studymind")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	// Resolve log file default: ~/.studymind/studymind.log
	if c.LogFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		c.LogFile = filepath.Join(home, ".studymind", "studymind.log")
	}
	return &c, nil
}
