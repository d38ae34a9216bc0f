// Package config loads skillguard settings. Sources are layered with koanf:
// the embedded defaults, an optional TOML or YAML file, SKILLGUARD_*
// environment variables and finally explicit overrides such as CLI flags.
package config
