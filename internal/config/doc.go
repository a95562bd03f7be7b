// Package config loads and persists the tool configuration: which token
// counting providers are enabled, their credentials and default models, and
// where comparison results are written. The file is JSON; a default config
// is created on first run and API keys fall back to environment variables.
package config
