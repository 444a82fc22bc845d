package config

import (
	"github.com/mitchellh/mapstructure"
)

// Config is the parsed representation of hearth.yml.
type Config struct {
	// Version of the configuration schema.
	Version string `yaml:"version"`

	// Settings holds general dashboard settings.
	Settings Settings `yaml:"settings"`

	// Assistant configures the AI assistant's chat-completion backend.
	Assistant AssistantConfig `yaml:"assistant"`

	// Background configures the daily background resource fetch.
	Background BackgroundConfig `yaml:"background"`

	// Extensions captures any unrecognized top-level sections so components
	// (logging, widgets) can carry their own configuration without the core
	// schema knowing about them.
	Extensions map[string]interface{} `yaml:",inline"`
}

// Settings holds general dashboard settings.
type Settings struct {
	// Theme is the default theme when no persisted preference exists ("light" or "dark").
	Theme string `yaml:"theme"`

	// StorePath overrides the persistent store location. Defaults to ~/.hearth/store.
	StorePath string `yaml:"store_path"`
}

// AssistantConfig configures the chat-completion backend.
type AssistantConfig struct {
	// Endpoint is the chat completions URL.
	Endpoint string `yaml:"endpoint"`

	// Model is the model identifier sent with every request.
	Model string `yaml:"model"`
}

// BackgroundConfig configures the daily background resource fetch.
type BackgroundConfig struct {
	// Endpoint is the random-photo URL, query parameters included.
	Endpoint string `yaml:"endpoint"`

	// AccessKey authorizes the fetch via the Client-ID header.
	AccessKey string `yaml:"access_key"`
}

// UnmarshalExtension decodes an extension section into a typed struct.
// The target's yaml tags are honored so extension structs look like any
// other config section.
func (c *Config) UnmarshalExtension(name string, out interface{}) error {
	if c.Extensions == nil {
		return nil
	}
	raw, ok := c.Extensions[name]
	if !ok {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "yaml",
		Result:  out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}
