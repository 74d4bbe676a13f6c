package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.json", `{
		"scene": "spheregrid",
		"width": 640,
		"format": "webp",
		"publish": {"bucket": "renders-bucket"}
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Scene != "spheregrid" || cfg.Width != 640 || cfg.Format != "webp" {
		t.Errorf("Unexpected config: %+v", cfg)
	}
	if cfg.OutputDir != "output" || cfg.Scale != 1 {
		t.Errorf("Expected defaults for unset fields, got %+v", cfg)
	}
	if cfg.Publish.Bucket != "renders-bucket" || cfg.Publish.Region != "us-east-1" {
		t.Errorf("Unexpected publish config: %+v", cfg.Publish)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}

	broken := writeFile(t, dir, "broken.json", `{"scene": `)
	if _, err := Load(broken); err == nil {
		t.Error("Expected error for malformed file")
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"RAYCASTER_SCENE":   "nested",
		"RAYCASTER_WIDTH":   "320",
		"RAYCASTER_PUBLISH": "true",
		"S3_BUCKET":         "bucket",
		"CDN_URL":           "https://cdn.example.com",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg := Default()
	if err := cfg.ApplyEnv(lookup); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Scene != "nested" || cfg.Width != 320 {
		t.Errorf("Unexpected render settings: %+v", cfg)
	}
	if !cfg.Publish.Enabled || cfg.Publish.Bucket != "bucket" || cfg.Publish.CDNURL != "https://cdn.example.com" {
		t.Errorf("Unexpected publish settings: %+v", cfg.Publish)
	}
	if cfg.Format != "png" {
		t.Errorf("Expected unset variables to keep defaults, got format %q", cfg.Format)
	}
}

func TestApplyEnv_InvalidNumber(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(func(key string) (string, bool) {
		if key == "RAYCASTER_WIDTH" {
			return "wide", true
		}
		return "", false
	})
	if err == nil {
		t.Error("Expected error for non-numeric width")
	}
}

func TestLoadEnv_FileAndProcessPrecedence(t *testing.T) {
	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env", "RAYCASTER_SCENE=spheregrid\nRAYCASTER_FORMAT=tga\nS3_REGION=eu-west-1\n")

	t.Setenv("RAYCASTER_FORMAT", "bmp")

	cfg := Default()
	if err := cfg.LoadEnv(filepath.Join(dir, "missing.env"), envFile); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Scene != "spheregrid" {
		t.Errorf("Expected scene from env file, got %q", cfg.Scene)
	}
	if cfg.Format != "bmp" {
		t.Errorf("Expected process environment to win, got %q", cfg.Format)
	}
	if cfg.Publish.Region != "eu-west-1" {
		t.Errorf("Expected region from env file, got %q", cfg.Publish.Region)
	}
}

func TestResolve(t *testing.T) {
	cfg := Default()
	cfg.Width = 500

	cfg.Resolve(Flags{Scene: "nested", Format: "ppm", Scale: 2, Publish: true})

	if cfg.Scene != "nested" || cfg.Format != "ppm" || cfg.Scale != 2 {
		t.Errorf("Expected flags to override, got %+v", cfg)
	}
	if cfg.Width != 500 {
		t.Errorf("Expected unset width flag to keep 500, got %d", cfg.Width)
	}
	if !cfg.Publish.Enabled {
		t.Error("Expected publish flag to enable publishing")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"empty scene", func(c *Config) { c.Scene = "" }, true},
		{"negative width", func(c *Config) { c.Width = -1 }, true},
		{"zero scale", func(c *Config) { c.Scale = 0 }, true},
		{"negative thumbnail", func(c *Config) { c.ThumbnailSize = -5 }, true},
		{"unknown format", func(c *Config) { c.Format = "gif" }, true},
		{"publish without bucket", func(c *Config) { c.Publish.Enabled = true }, true},
		{"publish with bucket", func(c *Config) {
			c.Publish.Enabled = true
			c.Publish.Bucket = "b"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Expected error=%t, got %v", tt.wantErr, err)
			}
		})
	}
}
