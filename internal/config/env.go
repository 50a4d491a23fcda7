package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Env is the process environment the application reads at startup.
type Env struct {
	// ReducedMotion is the host's accessibility capability; it is never persisted.
	ReducedMotion bool
	HostURL       string
	TuningPath    string
	AppName       string
	Sound         bool
}

// LoadEnv seeds the environment from the given .env files (missing files are
// ignored, existing variables win) and reads the CRYMSON_* variables.
func LoadEnv(files ...string) (Env, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Env{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	env := Env{
		ReducedMotion: boolVar("CRYMSON_REDUCED_MOTION", false),
		HostURL:       strings.TrimSpace(os.Getenv("CRYMSON_HOST_URL")),
		TuningPath:    strings.TrimSpace(os.Getenv("CRYMSON_TUNING")),
		AppName:       os.Getenv("CRYMSON_APP_NAME"),
		Sound:         boolVar("CRYMSON_SOUND", true),
	}
	if env.AppName == "" {
		env.AppName = "crymson"
	}
	return env, nil
}

func boolVar(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return b
}
