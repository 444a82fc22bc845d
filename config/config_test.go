package config

import (
	"os"
	"testing"
)

// TestExtensions verifies that custom extensions in hearth.yml are properly loaded
func TestExtensions(t *testing.T) {
	yamlContent := []byte(`
version: "1.0"
settings:
  theme: light

# Extension fields consumed by the logging package
logging:
  level: debug
  report_caller: true

widgets:
  refresh_seconds: 30
`)

	cfg, err := LoadFromBytes(yamlContent)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Settings.Theme != "light" {
		t.Errorf("Settings.Theme = %q, want %q", cfg.Settings.Theme, "light")
	}

	// Verify extensions were captured
	if cfg.Extensions == nil {
		t.Fatal("Extensions map should not be nil")
	}

	if _, ok := cfg.Extensions["logging"]; !ok {
		t.Fatal("Expected 'logging' extension to be present")
	}

	type loggingExt struct {
		Level        string `yaml:"level"`
		ReportCaller bool   `yaml:"report_caller"`
	}

	var logCfg loggingExt
	if err := cfg.UnmarshalExtension("logging", &logCfg); err != nil {
		t.Fatalf("Failed to unmarshal logging extension: %v", err)
	}
	if logCfg.Level != "debug" {
		t.Errorf("logging.level = %q, want %q", logCfg.Level, "debug")
	}
	if !logCfg.ReportCaller {
		t.Error("logging.report_caller should be true")
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := LoadFromBytes([]byte("version: \"1.0\"\n"))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Settings.Theme != "dark" {
		t.Errorf("default theme = %q, want dark", cfg.Settings.Theme)
	}
	if cfg.Assistant.Endpoint != DefaultAssistantEndpoint {
		t.Errorf("default assistant endpoint = %q", cfg.Assistant.Endpoint)
	}
	if cfg.Assistant.Model != DefaultAssistantModel {
		t.Errorf("default assistant model = %q", cfg.Assistant.Model)
	}
	if cfg.Background.Endpoint != DefaultBackgroundEndpoint {
		t.Errorf("default background endpoint = %q", cfg.Background.Endpoint)
	}
}

func TestEnvVarExpansion(t *testing.T) {
	os.Setenv("HEARTH_TEST_ACCESS_KEY", "abc123")
	defer os.Unsetenv("HEARTH_TEST_ACCESS_KEY")

	yamlContent := []byte(`
background:
  access_key: ${HEARTH_TEST_ACCESS_KEY}
`)

	cfg, err := LoadFromBytes(yamlContent)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Background.AccessKey != "abc123" {
		t.Errorf("access_key = %q, want expanded env value", cfg.Background.AccessKey)
	}
}
