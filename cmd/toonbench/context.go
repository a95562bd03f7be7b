package main

import (
	"log/slog"

	"toonbench/internal/config"
	"toonbench/internal/logging"
	"toonbench/internal/providers"
)

// commandContext carries lazily initialized shared state between commands.
type commandContext struct {
	configFlag    *string
	logLevelFlag  *string
	logFormatFlag *string

	cfg *config.Config
	log *slog.Logger
}

func newCommandContext(configFlag, logLevelFlag, logFormatFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
	}
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	if c.log != nil {
		return c.log, nil
	}
	log, err := logging.New(logging.Options{
		Level:  *c.logLevelFlag,
		Format: *c.logFormatFlag,
	})
	if err != nil {
		return nil, err
	}
	c.log = log
	return log, nil
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, err := config.Load(*c.configFlag)
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	return cfg, nil
}

// buildProviders creates every enabled provider that has what it needs.
// Providers missing credentials are logged and skipped, never fatal.
func (c *commandContext) buildProviders() ([]providers.Provider, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	log, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}

	var provs []providers.Provider

	if cfg.Providers.Anthropic.Enabled {
		p, err := providers.NewAnthropic(cfg.Providers.Anthropic.APIKey)
		if err != nil {
			log.Warn("skipping anthropic", "error", err)
		} else {
			provs = append(provs, p)
		}
	}
	if cfg.Providers.Gemini.Enabled {
		p, err := providers.NewGemini(cfg.Providers.Gemini.APIKey)
		if err != nil {
			log.Warn("skipping gemini", "error", err)
		} else {
			provs = append(provs, p)
		}
	}
	if cfg.Providers.OpenAI.Enabled {
		provs = append(provs, providers.NewOpenAI())
	}
	if cfg.Providers.Estimate.Enabled {
		provs = append(provs, providers.NewEstimate())
	}

	return provs, nil
}

// defaultModels maps each configured provider to its configured default
// model, for providers where one was set.
func (c *commandContext) defaultModels() map[string]string {
	models := make(map[string]string)
	if c.cfg == nil {
		return models
	}
	for name, p := range map[string]config.Provider{
		"anthropic": c.cfg.Providers.Anthropic,
		"gemini":    c.cfg.Providers.Gemini,
		"openai":    c.cfg.Providers.OpenAI,
		"estimate":  c.cfg.Providers.Estimate,
	} {
		if p.DefaultModel != "" {
			models[name] = p.DefaultModel
		}
	}
	return models
}
