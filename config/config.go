package config

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/hearthdash/hearth/errors"
	"gopkg.in/yaml.v3"
)

const configFileName = "hearth.yml"

// Default endpoints mirror the hosted services the dashboard talks to.
const (
	DefaultAssistantEndpoint  = "https://api.perplexity.ai/chat/completions"
	DefaultAssistantModel     = "llama-3.1-sonar-small-128k-online"
	DefaultBackgroundEndpoint = "https://api.unsplash.com/photos/random?query=minimal,abstract&orientation=landscape&w=1920&h=1080"
)

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// Load reads and parses a hearth configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeConfigNotFound, "configuration file not found: "+path).
				WithDetail("path", path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	return LoadFromBytes(data)
}

// LoadDefault loads configuration from the first of ./hearth.yml and
// ~/.hearth/hearth.yml that exists. A missing file is not an error; the
// dashboard runs fine on defaults.
func LoadDefault() (*Config, error) {
	if path, err := FindConfigFile(); err == nil && path != "" {
		return Load(path)
	}
	return applyDefaults(&Config{}), nil
}

// FindConfigFile returns the path of the active hearth.yml, or "" when none exists.
func FindConfigFile() (string, error) {
	cwd, err := os.Getwd()
	if err == nil {
		local := filepath.Join(cwd, configFileName)
		if _, err := os.Stat(local); err == nil {
			return local, nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	global := filepath.Join(home, ".hearth", configFileName)
	if _, err := os.Stat(global); err == nil {
		return global, nil
	}
	return "", nil
}

// LoadFromBytes parses configuration from raw YAML, expanding ${ENV_VAR}
// references so secrets never have to live in the file itself.
func LoadFromBytes(data []byte) (*Config, error) {
	expanded := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse config file")
	}

	return applyDefaults(&cfg), nil
}

// applyDefaults fills in zero-valued fields.
func applyDefaults(cfg *Config) *Config {
	if cfg.Settings.Theme == "" {
		cfg.Settings.Theme = "dark"
	}
	if cfg.Settings.StorePath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.Settings.StorePath = filepath.Join(home, ".hearth", "store")
		}
	}
	if cfg.Assistant.Endpoint == "" {
		cfg.Assistant.Endpoint = DefaultAssistantEndpoint
	}
	if cfg.Assistant.Model == "" {
		cfg.Assistant.Model = DefaultAssistantModel
	}
	if cfg.Background.Endpoint == "" {
		cfg.Background.Endpoint = DefaultBackgroundEndpoint
	}
	return cfg
}

// expandEnvVars replaces ${VAR} references with their environment values.
// Unset variables expand to the empty string.
func expandEnvVars(content string) string {
	return envVarRegex.ReplaceAllStringFunc(content, func(match string) string {
		name := envVarRegex.FindStringSubmatch(match)[1]
		return os.Getenv(name)
	})
}
