package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTuningIsValid(t *testing.T) {
	tu := DefaultTuning()
	if err := tu.Validate(); err != nil {
		t.Fatalf("default tuning invalid: %v", err)
	}
	if tu.TrailCap != 30 {
		t.Errorf("TrailCap: got %d, want 30", tu.TrailCap)
	}
	if tu.BurstCount != 20 {
		t.Errorf("BurstCount: got %d, want 20", tu.BurstCount)
	}
}

func TestFrames(t *testing.T) {
	tests := []struct {
		millis int
		want   int
	}{
		{1000, 60},
		{500, 30},
		{300, 18},
		{0, 1},
		{5, 1},
	}
	for _, tt := range tests {
		if got := Frames(tt.millis); got != tt.want {
			t.Errorf("Frames(%d) = %d, want %d", tt.millis, got, tt.want)
		}
	}
}

func TestLoadTuning(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		tu, err := LoadTuning("")
		if err != nil {
			t.Fatalf("LoadTuning: %v", err)
		}
		if tu.MorphStep != 0.01 {
			t.Errorf("MorphStep: got %v", tu.MorphStep)
		}
	})

	t.Run("partial override", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tuning.yaml")
		if err := os.WriteFile(path, []byte("trailCap: 12\ngravity: 0.5\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		tu, err := LoadTuning(path)
		if err != nil {
			t.Fatalf("LoadTuning: %v", err)
		}
		if tu.TrailCap != 12 || tu.Gravity != 0.5 {
			t.Errorf("override not applied: %+v", tu)
		}
		if tu.BurstCount != 20 {
			t.Errorf("BurstCount should keep default, got %d", tu.BurstCount)
		}
	})

	t.Run("invalid values fall back", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tuning.yaml")
		if err := os.WriteFile(path, []byte("trailCap: 0\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		tu, err := LoadTuning(path)
		if err == nil {
			t.Fatal("expected validation error")
		}
		if tu.TrailCap != 30 {
			t.Errorf("expected defaults on error, got TrailCap %d", tu.TrailCap)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadTuning(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Fatal("expected error for missing file")
		}
	})
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	dotenv := filepath.Join(dir, ".env")
	content := "CRYMSON_REDUCED_MOTION=true\nCRYMSON_HOST_URL=ws://127.0.0.1:9000/bridge\n"
	if err := os.WriteFile(dotenv, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	// Variables loaded by godotenv leak into the process; register them with
	// t.Setenv first so they are restored afterwards.
	t.Setenv("CRYMSON_REDUCED_MOTION", "")
	t.Setenv("CRYMSON_HOST_URL", "")
	os.Unsetenv("CRYMSON_REDUCED_MOTION")
	os.Unsetenv("CRYMSON_HOST_URL")
	t.Setenv("CRYMSON_SOUND", "false")

	env, err := LoadEnv(dotenv, filepath.Join(dir, "missing.env"))
	if err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if !env.ReducedMotion {
		t.Error("ReducedMotion: got false, want true")
	}
	if env.HostURL != "ws://127.0.0.1:9000/bridge" {
		t.Errorf("HostURL: got %q", env.HostURL)
	}
	if env.Sound {
		t.Error("Sound: got true, want false")
	}
	if env.AppName != "crymson" {
		t.Errorf("AppName: got %q, want default", env.AppName)
	}
}
