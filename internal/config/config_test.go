package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Decode(DefaultYAML(), FormatYAML)
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Errorf("embedded YAML differs from DefaultFlappyConfig:\n%+v\n%+v", cfg, DefaultFlappyConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestSpawnInterval(t *testing.T) {
	cfg := DefaultFlappyConfig()
	if got := cfg.SpawnInterval(); got != 2500*time.Millisecond {
		t.Errorf("SpawnInterval() = %v, expected 2.5s", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
		valid  bool
	}{
		{"defaults", func(*FlappyConfig) {}, true},
		{"zero gravity", func(c *FlappyConfig) { c.Physics.Gravity = 0 }, false},
		{"negative jump", func(c *FlappyConfig) { c.Physics.JumpImpulseSpeed = -3 }, false},
		{"zero obstacle velocity", func(c *FlappyConfig) { c.Physics.ObstacleVelocity = 0 }, false},
		{"still background", func(c *FlappyConfig) { c.Physics.BackgroundVelocity = 0 }, true},
		{"negative background", func(c *FlappyConfig) { c.Physics.BackgroundVelocity = -1 }, false},
		{"zero interval", func(c *FlappyConfig) { c.Spawn.IntervalMs = 0 }, false},
		{"inverted gap range", func(c *FlappyConfig) { c.Spawn.GapHeightRange = GapRange{Min: 0.7, Max: 0.3} }, false},
		{"gap range reaches one", func(c *FlappyConfig) { c.Spawn.GapHeightRange.Max = 1 }, false},
		{"fixed gap", func(c *FlappyConfig) { c.Spawn.GapHeightRange = GapRange{Min: 0.5, Max: 0.5} }, true},
		{"zero obstacle width", func(c *FlappyConfig) { c.Obstacles.Width = 0 }, false},
		{"negative player x", func(c *FlappyConfig) { c.Player.X = -1 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadFlappyYAMLPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	data := []byte("physics:\n  gravity: 30\nassets:\n  sprite: \"@\"\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy: %v", err)
	}
	if cfg.Physics.Gravity != 30 {
		t.Errorf("gravity = %v, expected 30", cfg.Physics.Gravity)
	}
	if cfg.Assets.Sprite != "@" {
		t.Errorf("sprite = %q, expected @", cfg.Assets.Sprite)
	}
	if cfg.Physics.JumpImpulseSpeed != DefaultFlappyConfig().Physics.JumpImpulseSpeed {
		t.Errorf("missing fields should keep defaults, jump = %v", cfg.Physics.JumpImpulseSpeed)
	}
}

func TestLoadFlappyTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.toml")
	data := []byte("[spawn]\ninterval_ms = 2000\n\n[spawn.gap_height_range]\nmin = 0.25\nmax = 0.75\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy: %v", err)
	}
	if cfg.Spawn.IntervalMs != 2000 {
		t.Errorf("interval = %d, expected 2000", cfg.Spawn.IntervalMs)
	}
	if cfg.Spawn.GapHeightRange != (GapRange{Min: 0.25, Max: 0.75}) {
		t.Errorf("gap range = %+v", cfg.Spawn.GapHeightRange)
	}
}

func TestLoadFlappyErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFlappy(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file should wrap os.ErrNotExist, got %v", err)
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("physics: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFlappy(broken); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("physics:\n  gravity: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFlappy(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid values should wrap ErrInvalidConfig, got %v", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := DefaultFlappyConfig()
	cfg.Physics.Gravity = 42.5
	cfg.Assets.Background = "~ ~"

	for _, format := range []string{FormatYAML, FormatTOML} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, cfg, format); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := Decode(buf.Bytes(), format)
			if err != nil {
				t.Fatalf("Decode: %v\n%s", err, buf.String())
			}
			if got != cfg {
				t.Errorf("round trip mismatch:\n%+v\n%+v", got, cfg)
			}
		})
	}

	if err := Encode(&bytes.Buffer{}, cfg, "json"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestFormatForPath(t *testing.T) {
	tests := map[string]string{
		"flappy.toml":     FormatTOML,
		"FLAPPY.TOML":     FormatTOML,
		"flappy.yaml":     FormatYAML,
		"flappy.yml":      FormatYAML,
		"no-extension":    FormatYAML,
		"dir.toml/x.yaml": FormatYAML,
	}
	for path, want := range tests {
		if got := FormatForPath(path); got != want {
			t.Errorf("FormatForPath(%q) = %q, expected %q", path, got, want)
		}
	}
}
