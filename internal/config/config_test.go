package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultWordfallConfig()
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if cfg != DefaultWordfallConfig() {
		t.Errorf("embedded defaults differ from DefaultWordfallConfig():\n%+v\n%+v", cfg, DefaultWordfallConfig())
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultWordfallConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestDefaultTargetSpeeds(t *testing.T) {
	cfg := DefaultWordfallConfig()
	if cfg.Targets.MinSpeed != 4 || cfg.Targets.MaxSpeed != 5 {
		t.Errorf("default speeds = %d..%d, want 4..5", cfg.Targets.MinSpeed, cfg.Targets.MaxSpeed)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*WordfallConfig)
	}{
		{"zero field", func(c *WordfallConfig) { c.Field.Width = 0 }},
		{"negative target", func(c *WordfallConfig) { c.Targets.Height = -1 }},
		{"inverted speeds", func(c *WordfallConfig) { c.Targets.MinSpeed, c.Targets.MaxSpeed = 5, 4 }},
		{"zero boom frames", func(c *WordfallConfig) { c.Targets.BoomFrames = 0 }},
		{"inverted offsets", func(c *WordfallConfig) { c.Spawn.MinOffset, c.Spawn.MaxOffset = 50, 10 }},
		{"still projectile", func(c *WordfallConfig) { c.Projectile.Speed = 0 }},
		{"no actor frames", func(c *WordfallConfig) { c.Actor.Frames = 0 }},
		{"no lives", func(c *WordfallConfig) { c.Gameplay.Lives = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultWordfallConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadCustomYAMLPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "targets:\n  min_speed: 2\n  max_speed: 3\ngameplay:\n  lives: 3\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Targets.MinSpeed != 2 || cfg.Targets.MaxSpeed != 3 {
		t.Errorf("speeds = %d..%d, want 2..3", cfg.Targets.MinSpeed, cfg.Targets.MaxSpeed)
	}
	if cfg.Gameplay.Lives != 3 {
		t.Errorf("lives = %d, want 3", cfg.Gameplay.Lives)
	}
	// Unset values keep defaults
	if cfg.Field.Width != 1200 || cfg.Projectile.Speed != 1200 {
		t.Errorf("defaults not preserved: field %g, projectile %g", cfg.Field.Width, cfg.Projectile.Speed)
	}
}

func TestLoadTOMLMatchesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "wordfall.yaml")
	tomlPath := filepath.Join(dir, "wordfall.toml")

	yamlData := "field:\n  width: 1000\ntargets:\n  width: 250\ngameplay:\n  tier: hard\ndifficulty:\n  progression:\n    type: score\n    max_at: 5000\n"
	tomlData := "[field]\nwidth = 1000.0\n\n[targets]\nwidth = 250.0\n\n[gameplay]\ntier = \"hard\"\n\n[difficulty.progression]\ntype = \"score\"\nmax_at = 5000\n"

	if err := os.WriteFile(yamlPath, []byte(yamlData), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(tomlPath, []byte(tomlData), 0o644); err != nil {
		t.Fatal(err)
	}

	fromYAML, err := Load(yamlPath)
	if err != nil {
		t.Fatalf("Load(yaml) failed: %v", err)
	}
	fromTOML, err := Load(tomlPath)
	if err != nil {
		t.Fatalf("Load(toml) failed: %v", err)
	}
	if fromYAML != fromTOML {
		t.Errorf("yaml and toml configs differ:\n%+v\n%+v", fromYAML, fromTOML)
	}
	if fromTOML.Field.Width != 1000 || fromTOML.Gameplay.Tier != "hard" {
		t.Errorf("toml values not applied: %+v", fromTOML)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("field: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed yaml")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("gameplay:\n  lives: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("expected validation error")
	}
}

func TestLoadSearchOrderLocalDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir) // no ~/.wordfall/configs in the temp home
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "wordfall.toml"), []byte("[gameplay]\nlives = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Gameplay.Lives != 2 {
		t.Errorf("lives = %d, want 2 from ./configs/wordfall.toml", cfg.Gameplay.Lives)
	}

	// The home directory wins over ./configs
	home := filepath.Join(dir, ".wordfall", "configs")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(home, "wordfall.yaml"), []byte("gameplay:\n  lives: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Gameplay.Lives != 9 {
		t.Errorf("lives = %d, want 9 from home config", cfg.Gameplay.Lives)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultWordfallConfig() {
		t.Errorf("expected embedded defaults, got %+v", cfg)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		wantTier string
	}{
		{DifficultyEasy, "easy"},
		{DifficultyNormal, "medium"},
		{DifficultyHard, "hard"},
		{DifficultyFixed, "easy"},
		{"", "easy"},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultWordfallConfig()
			before := cfg.Difficulty
			ApplyPreset(&cfg, tt.preset)
			if cfg.Gameplay.Tier != tt.wantTier {
				t.Errorf("tier = %q, want %q", cfg.Gameplay.Tier, tt.wantTier)
			}
			if cfg.Difficulty != before {
				t.Errorf("difficulty config changed: %+v", cfg.Difficulty)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if got := ParsePreset("hard"); got != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q", got)
	}
	if got := ParsePreset("insane"); got != "" {
		t.Errorf("ParsePreset(insane) = %q, want empty", got)
	}
}
