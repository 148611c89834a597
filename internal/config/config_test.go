// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfigFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := NewProvider().Load(context.Background(), LoadOptions{
		ConfigDirPath: t.TempDir(),
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ToolsDir != "" {
		t.Errorf("ToolsDir = %q, want empty default", cfg.ToolsDir)
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("UI.ColorScheme = %q, want %q", cfg.UI.ColorScheme, ColorSchemeAuto)
	}
	if cfg.UI.Verbose {
		t.Error("UI.Verbose = true, want false default")
	}
}

func TestLoad_FromConfigDir(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, `
tools_dir: "/opt/tools"
ui: {
	color_scheme: "dark"
	verbose: true
}
serve: {
	server_name: "my-shed"
	version: "1.2.3"
}
`)

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ToolsDir != "/opt/tools" {
		t.Errorf("ToolsDir = %q, want %q", cfg.ToolsDir, "/opt/tools")
	}
	if cfg.UI.ColorScheme != ColorSchemeDark {
		t.Errorf("UI.ColorScheme = %q, want dark", cfg.UI.ColorScheme)
	}
	if !cfg.UI.Verbose {
		t.Error("UI.Verbose = false, want true")
	}
	if cfg.Serve.ServerName != "my-shed" {
		t.Errorf("Serve.ServerName = %q, want my-shed", cfg.Serve.ServerName)
	}
	if cfg.Serve.Version != "1.2.3" {
		t.Errorf("Serve.Version = %q, want 1.2.3", cfg.Serve.Version)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, `ui: verbose: true`)

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !cfg.UI.Verbose {
		t.Error("UI.Verbose = false, want true from file")
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("UI.ColorScheme = %q, want auto default", cfg.UI.ColorScheme)
	}
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.cue")
	if err := os.WriteFile(path, []byte(`ui: color_scheme: "light"`), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.UI.ColorScheme != ColorSchemeLight {
		t.Errorf("UI.ColorScheme = %q, want light", cfg.UI.ColorScheme)
	}
}

func TestLoad_ExplicitConfigFileMissing(t *testing.T) {
	_, err := NewProvider().Load(context.Background(), LoadOptions{
		ConfigFilePath: filepath.Join(t.TempDir(), "nope.cue"),
	})
	if err == nil {
		t.Fatal("Load() with missing explicit config file should fail")
	}
	if !strings.Contains(err.Error(), "config file not found") {
		t.Errorf("error = %v, want mention of missing config file", err)
	}
}

func TestLoad_InvalidCUESyntax(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, `ui: { color_scheme: `)

	_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err == nil {
		t.Fatal("Load() with invalid CUE should fail")
	}
}

func TestLoad_SchemaViolation(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, `ui: color_scheme: "solarized"`)

	_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err == nil {
		t.Fatal("Load() with out-of-range color_scheme should fail schema validation")
	}
}

func TestLoad_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewProvider().Load(ctx, LoadOptions{ConfigDirPath: t.TempDir()})
	if err == nil {
		t.Fatal("Load() with canceled context should fail")
	}
}

func TestConfigDir_Override(t *testing.T) {
	t.Cleanup(Reset)

	want := t.TempDir()
	SetConfigDirOverride(want)

	got, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() error = %v", err)
	}
	if got != want {
		t.Errorf("ConfigDir() = %q, want override %q", got, want)
	}
}

func TestDefaultToolsDir(t *testing.T) {
	dir, err := DefaultToolsDir()
	if err != nil {
		t.Fatalf("DefaultToolsDir() error = %v", err)
	}
	if !strings.HasSuffix(dir, filepath.Join(".toolshed", "tools")) {
		t.Errorf("DefaultToolsDir() = %q, want .toolshed/tools suffix", dir)
	}
}

func TestLocalToolsDir(t *testing.T) {
	if got := LocalToolsDir(); got != filepath.Join(".toolshed", "tools") {
		t.Errorf("LocalToolsDir() = %q", got)
	}
}

func TestGenerateCUE_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	in := &Config{
		ToolsDir: "/opt/tools",
		UI:       UIConfig{ColorScheme: ColorSchemeDark, Verbose: true},
		Serve:    ServeConfig{ServerName: "shed", Version: "0.9.0"},
	}

	writeConfigFile(t, dir, GenerateCUE(in))

	out, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load() of generated config error = %v", err)
	}
	if *out != *in {
		t.Errorf("round-trip mismatch:\n got %+v\nwant %+v", out, in)
	}
}
