package config

import (
	"os"
	"path/filepath"
	"testing"
)

// envMap returns a lookup func backed by m.
func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bulletcheck.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// --- Default ---

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Validation.StrictMode {
		t.Error("StrictMode should default to false")
	}
	if !cfg.Validation.EnableResearchCitations {
		t.Error("EnableResearchCitations should default to true")
	}
	if !cfg.Display.ColorOutput {
		t.Error("ColorOutput should default to true")
	}
}

// --- mergeEnv ---

func TestMergeEnv_Overrides(t *testing.T) {
	cfg := Default()
	err := cfg.mergeEnv(envMap(map[string]string{
		EnvStrictMode:        "true",
		EnvResearchCitations: "0",
		EnvColorOutput:       "false",
	}))
	if err != nil {
		t.Fatalf("mergeEnv: %v", err)
	}
	if !cfg.Validation.StrictMode {
		t.Error("StrictMode should be true")
	}
	if cfg.Validation.EnableResearchCitations {
		t.Error("EnableResearchCitations should be false")
	}
	if cfg.Display.ColorOutput {
		t.Error("ColorOutput should be false")
	}
}

func TestMergeEnv_EmptyValuesIgnored(t *testing.T) {
	cfg := Default()
	if err := cfg.mergeEnv(envMap(map[string]string{EnvStrictMode: ""})); err != nil {
		t.Fatalf("mergeEnv: %v", err)
	}
	if cfg != Default() {
		t.Errorf("config changed on empty env: %+v", cfg)
	}
}

func TestMergeEnv_InvalidBool(t *testing.T) {
	cfg := Default()
	err := cfg.mergeEnv(envMap(map[string]string{EnvStrictMode: "sometimes"}))
	if err == nil {
		t.Fatal("expected error for non-boolean value")
	}
}

func TestMergeEnv_NoColor(t *testing.T) {
	cfg := Default()
	if err := cfg.mergeEnv(envMap(map[string]string{EnvNoColor: ""})); err != nil {
		t.Fatalf("mergeEnv: %v", err)
	}
	if cfg.Display.ColorOutput {
		t.Error("NO_COLOR should disable color even when empty")
	}
}

// --- Load ---

func TestLoad_FileOverlaysDefaults(t *testing.T) {
	path := writeConfigFile(t, "validation:\n  strictMode: true\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Validation.StrictMode {
		t.Error("StrictMode should come from file")
	}
	if !cfg.Validation.EnableResearchCitations {
		t.Error("unset file keys should keep defaults")
	}
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	path := writeConfigFile(t, "validation:\n  strictMode: true\n")
	t.Setenv(EnvStrictMode, "false")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Validation.StrictMode {
		t.Error("env should override file")
	}
}

func TestLoad_ExplicitMissingFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoad_StaleEnvPathIgnored(t *testing.T) {
	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := Load(""); err != nil {
		t.Fatalf("Load with stale %s: %v", EnvConfigPath, err)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "validation: [not, a, map\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}
