package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/skillguard/pkg/errors"
	"github.com/arthur-debert/skillguard/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "SKILLGUARD_"

// LoadOptions selects the optional layers of Load
type LoadOptions struct {
	// ConfigPath is an explicit config file that must exist. When empty the
	// default user config is used if present.
	ConfigPath string
	// Overrides are applied last, keyed by dotted path (e.g. "scan.workers")
	Overrides map[string]interface{}
}

// DefaultConfigPath returns the user config file location
func DefaultConfigPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = xdg.ConfigHome
	}
	return filepath.Join(base, "skillguard", "config.toml")
}

// Load resolves the configuration from every layer and validates it
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config file
	path := opts.ConfigPath
	required := path != ""
	if !required {
		path = DefaultConfigPath()
	}
	if _, err := os.Stat(path); err == nil {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	} else if required {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file not found: %s", path).
			WithDetail("path", path)
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Explicit overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps SKILLGUARD_SCAN_MAX_FILE_SIZE to scan.max_file_size. Only the
// first underscore separates the section from the key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigLoad, "unsupported config format: %s", path).
			WithDetail("path", path)
	}
}

// Validate checks value ranges and enumerations
func (c *Config) Validate() error {
	invalid := func(key string, value interface{}) error {
		return errors.Newf(errors.ErrConfigLoad, "invalid value for %s: %v", key, value).
			WithDetail("key", key)
	}

	if c.Scan.Workers < 0 {
		return invalid("scan.workers", c.Scan.Workers)
	}
	if c.Scan.MaxFileSize < 0 {
		return invalid("scan.max_file_size", c.Scan.MaxFileSize)
	}
	if !isFormat(c.Output.Format) {
		return invalid("output.format", c.Output.Format)
	}
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return invalid("output.color", c.Output.Color)
	}
	if c.Policy.FailUnder < 0 || c.Policy.FailUnder > 100 {
		return invalid("policy.fail_under", c.Policy.FailUnder)
	}
	return nil
}

func isFormat(name string) bool {
	for _, f := range Formats {
		if f == name {
			return true
		}
	}
	return false
}
