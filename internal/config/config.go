// Package config loads the application configuration from a YAML file
// with environment-variable overrides on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all Finanzas configuration.
type Config struct {
	// LLM configures the Gemini boundary.
	LLM LLMConfig `yaml:"llm"`

	// Store configures account persistence.
	Store StoreConfig `yaml:"store"`

	// Chat configures prompt construction and flattening.
	Chat ChatConfig `yaml:"chat"`
}

// LLMConfig configures the model API boundary.
type LLMConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	Timeout string `yaml:"timeout"`
}

// StoreConfig selects and locates the account store backend.
type StoreConfig struct {
	Backend string `yaml:"backend"` // json, sqlite
	Path    string `yaml:"path"`
}

// ChatConfig configures the assistant's prompt surface.
type ChatConfig struct {
	Persona       string `yaml:"persona"`        // analista, smart_brevity
	FlattenMode   string `yaml:"flatten_mode"`   // compacto, detallado
	KnowledgePath string `yaml:"knowledge_path"` // optional YAML catalog override
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Model:   "gemini-1.5-flash",
			Timeout: "60s",
		},
		Store: StoreConfig{
			Backend: "json",
			Path:    "usuarios.json",
		},
		Chat: ChatConfig{
			Persona:     "analista",
			FlattenMode: "detallado",
		},
	}
}

// Load reads path and applies env overrides. A missing file yields the
// defaults (plus overrides); any other read or parse error is fatal.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("configuración inválida en %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("leyendo configuración: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the config as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o600)
}

// applyEnvOverrides lets the environment win over the file. The key
// honors both the original variable name and the SDK's conventional one.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("API_KEY_GEMINI"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("FINANZAS_STORE_PATH"); v != "" {
		c.Store.Path = v
	}
}

// Validate checks the fatal startup conditions. A missing API key is the
// only one; the message carries remediation instructions because it is
// shown directly to the user.
func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return fmt.Errorf("falta la API key de Gemini: define API_KEY_GEMINI en el " +
			"entorno o agrega llm.api_key al archivo de configuración " +
			"(obtén una clave en https://aistudio.google.com/apikey)")
	}
	if b := c.Store.Backend; b != "json" && b != "sqlite" {
		return fmt.Errorf("backend de almacenamiento desconocido: %q (usa json o sqlite)", b)
	}
	return nil
}

// LLMTimeout parses the configured timeout, defaulting to 60s on empty
// or malformed values.
func (c *Config) LLMTimeout() time.Duration {
	d, err := time.ParseDuration(c.LLM.Timeout)
	if err != nil || d <= 0 {
		return 60 * time.Second
	}
	return d
}
