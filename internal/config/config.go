package config

import (
	"fmt"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
)

// DefaultPath is the config file used when none is given.
const DefaultPath = "config.json"

var json = jsoniter.Config{IndentionStep: 2, EscapeHTML: true}.Froze()

// Provider holds one provider's credentials and defaults.
type Provider struct {
	Enabled      bool   `json:"enabled"`
	APIKey       string `json:"api_key,omitempty"`
	DefaultModel string `json:"default_model,omitempty"`
}

// Providers groups per-provider configuration.
type Providers struct {
	Gemini    Provider `json:"gemini"`
	OpenAI    Provider `json:"openai"`
	Anthropic Provider `json:"anthropic"`
	Estimate  Provider `json:"estimate"`
}

// TestData configures dataset rendering and result output.
type TestData struct {
	Formats   []string `json:"formats"`
	OutputDir string   `json:"output_dir"`
}

// Config is the tool configuration, stored as JSON.
type Config struct {
	Providers Providers `json:"providers"`
	TestData  TestData  `json:"test_data"`
}

// Default returns the default configuration with API keys pulled from the
// environment.
func Default() *Config {
	return &Config{
		Providers: Providers{
			Gemini: Provider{
				Enabled:      true,
				APIKey:       os.Getenv("GEMINI_API_KEY"),
				DefaultModel: "gemini-2.5-flash",
			},
			OpenAI: Provider{
				Enabled:      true,
				APIKey:       os.Getenv("OPENAI_API_KEY"),
				DefaultModel: "gpt-4o",
			},
			Anthropic: Provider{
				Enabled:      true,
				APIKey:       os.Getenv("ANTHROPIC_API_KEY"),
				DefaultModel: "claude-3-5-sonnet-20241022",
			},
			Estimate: Provider{
				Enabled:      true,
				DefaultModel: "chars-div-4",
			},
		},
		TestData: TestData{
			Formats:   []string{"json", "csv", "toon"},
			OutputDir: "results",
		},
	}
}

// Load reads the configuration from path. When the file does not exist, the
// default configuration is written there and returned, mirroring first-run
// behavior.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg := Default()
		if err := Save(cfg, path); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as indented JSON.
func Save(cfg *Config, path string) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: ensure directory: %w", err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// applyEnv fills in API keys from the environment when the file left them
// empty.
func (c *Config) applyEnv() {
	if c.Providers.Gemini.APIKey == "" {
		c.Providers.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.Providers.OpenAI.APIKey == "" {
		c.Providers.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if c.Providers.Anthropic.APIKey == "" {
		c.Providers.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}
}

// Validate checks structural fields. Missing API keys are not an error
// here: a provider without credentials is skipped at startup instead.
func (c *Config) Validate() error {
	if c.TestData.OutputDir == "" {
		return fmt.Errorf("config: test_data.output_dir must not be empty")
	}
	for _, name := range c.TestData.Formats {
		switch name {
		case "json", "csv", "toon":
		default:
			return fmt.Errorf("config: test_data.formats contains unknown format %q", name)
		}
	}
	return nil
}
