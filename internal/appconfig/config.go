// Package appconfig is the CLI-level configuration layer: which pattern
// packs to load, logging settings, and the overridable fields of the
// core sanitize.Config. It follows the teacher's pkg/config shape
// (YAML file via gopkg.in/yaml.v3, env override via spf13/viper,
// explicit Validate/applyDefaults) — the core pipeline itself never
// touches viper or a config file; only this outer layer does, per §3's
// "configurations are immutable once a pipeline is constructed."
package appconfig

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/MacAttak/pi-sanitizer/internal/obs"
	"github.com/MacAttak/pi-sanitizer/pkg/sanitize"
)

// Config is the on-disk / env-overridable shape consumed by the CLI.
// SanitizeDefaults becomes the base of every pipeline's sanitize.Config
// unless a per-call override is supplied.
type Config struct {
	Logging          obs.Config `yaml:"logging"`
	SanitizeDefaults struct {
		EnableRegex         bool     `yaml:"enable_regex"`
		EnableNER           bool     `yaml:"enable_ner"`
		ConfidenceThreshold float32  `yaml:"confidence_threshold"`
		PlaceholderPrefix   string   `yaml:"placeholder_prefix"`
		PlaceholderSuffix   string   `yaml:"placeholder_suffix"`
		MaxInputCharacters  int      `yaml:"max_input_characters"`
		Whitelist           []string `yaml:"whitelist"`
		PatternPacks        []string `yaml:"pattern_packs"`
		PatternPackFiles    []string `yaml:"pattern_pack_files"`
	} `yaml:"sanitize"`
	NER struct {
		ModelPath      string `yaml:"model_path"`
		TokenizerModel string `yaml:"tokenizer_model"`
	} `yaml:"ner"`
}

// Default mirrors the teacher's DefaultConfig()/applyDefaults() pairing:
// a single function returning a fully-populated, immediately-usable
// configuration.
func Default() Config {
	var c Config
	c.Logging = obs.DefaultConfig()
	c.SanitizeDefaults.EnableRegex = true
	c.SanitizeDefaults.EnableNER = false
	c.SanitizeDefaults.ConfidenceThreshold = 0.85
	c.SanitizeDefaults.PlaceholderPrefix = "<<"
	c.SanitizeDefaults.PlaceholderSuffix = ">>"
	c.SanitizeDefaults.MaxInputCharacters = 50000
	return c
}

// Load reads path (if non-empty) via viper with YAML unmarshaling
// (gopkg.in/yaml.v3, the teacher's library of choice), overlays
// PI_SANITIZER_-prefixed environment variables, and fills any
// unset field from Default(), the same "load, then applyDefaults"
// sequence as pkg/config.LoadConfig. When path is empty, Load returns
// Default() without consulting environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("PI_SANITIZER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	raw, err := yaml.Marshal(v.AllSettings())
	if err != nil {
		return Config{}, fmt.Errorf("normalize config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate enforces the same InvalidConfig-at-construction discipline the
// core pipeline does, before anything downstream ever sees this config.
func (c Config) Validate() error {
	if c.SanitizeDefaults.ConfidenceThreshold < 0 || c.SanitizeDefaults.ConfidenceThreshold > 1 {
		return sanitize.NewError(sanitize.InvalidConfig, "sanitize.confidence_threshold must be in [0,1]")
	}
	if c.SanitizeDefaults.MaxInputCharacters <= 0 {
		return sanitize.NewError(sanitize.InvalidConfig, "sanitize.max_input_characters must be positive")
	}
	return nil
}

// ToSanitizeConfig translates the CLI layer's Config into the immutable
// core sanitize.Config described in §3.
func (c Config) ToSanitizeConfig() sanitize.Config {
	return sanitize.Config{
		EnableRegex:         c.SanitizeDefaults.EnableRegex,
		EnableNER:           c.SanitizeDefaults.EnableNER,
		ConfidenceThreshold: c.SanitizeDefaults.ConfidenceThreshold,
		Whitelist:           c.SanitizeDefaults.Whitelist,
		PlaceholderPrefix:   c.SanitizeDefaults.PlaceholderPrefix,
		PlaceholderSuffix:   c.SanitizeDefaults.PlaceholderSuffix,
		MaxInputCharacters:  c.SanitizeDefaults.MaxInputCharacters,
		PatternPacks:        c.SanitizeDefaults.PatternPacks,
	}
}
