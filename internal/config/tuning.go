package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning holds every animation constant. Values are per frame unless the
// field name says otherwise.
type Tuning struct {
	TrailCap        int     `yaml:"trailCap"`
	TrailJitter     float64 `yaml:"trailJitter"`
	LifeDecay       float64 `yaml:"lifeDecay"`
	SizeDecay       float64 `yaml:"sizeDecay"`
	BurstCount      int     `yaml:"burstCount"`
	BurstSpeedMin   float64 `yaml:"burstSpeedMin"`
	BurstSpeedRange float64 `yaml:"burstSpeedRange"`
	BurstCap        int     `yaml:"burstCap"`
	Gravity         float64 `yaml:"gravity"`

	FloatingCount int     `yaml:"floatingCount"`
	DepthMax      float64 `yaml:"depthMax"`
	FloatingAlpha float64 `yaml:"floatingAlpha"`

	MorphCount    int     `yaml:"morphCount"`
	MorphStep     float64 `yaml:"morphStep"`
	MorphSpin     float64 `yaml:"morphSpin"`
	MorphMinSides int     `yaml:"morphMinSides"`
	MorphMaxSides int     `yaml:"morphMaxSides"`

	ParallaxLayers    int `yaml:"parallaxLayers"`
	ParallaxShapes    int `yaml:"parallaxShapes"`
	DustCount         int `yaml:"dustCount"`
	DustCountNarrow   int `yaml:"dustCountNarrow"`
	DustStaggerMillis int `yaml:"dustStaggerMillis"`

	MagneticPull float64 `yaml:"magneticPull"`

	RippleMillis     int `yaml:"rippleMillis"`
	ExplosionMillis  int `yaml:"explosionMillis"`
	GlowMillis       int `yaml:"glowMillis"`
	SlideMillis      int `yaml:"slideMillis"`
	GlyphMillis      int `yaml:"glyphMillis"`
	EntranceMillis   int `yaml:"entranceMillis"`
	ShakeMillis      int `yaml:"shakeMillis"`
	LiquidMillis     int `yaml:"liquidMillis"`
	GlitchMillis     int `yaml:"glitchMillis"`
	BannerInMillis   int `yaml:"bannerInMillis"`
	BannerHoldMillis int `yaml:"bannerHoldMillis"`
	BannerOutMillis  int `yaml:"bannerOutMillis"`
	SweepMillis      int `yaml:"sweepMillis"`
	SweepHoldMillis  int `yaml:"sweepHoldMillis"`
}

// DefaultTuning returns the values the login screen ships with.
func DefaultTuning() *Tuning {
	return &Tuning{
		TrailCap:        30,
		TrailJitter:     1,
		LifeDecay:       0.02,
		SizeDecay:       0.98,
		BurstCount:      20,
		BurstSpeedMin:   2,
		BurstSpeedRange: 5,
		BurstCap:        400,
		Gravity:         0.2,

		FloatingCount: 15,
		DepthMax:      1000,
		FloatingAlpha: 0.3,

		MorphCount:    3,
		MorphStep:     0.01,
		MorphSpin:     0.005,
		MorphMinSides: 6,
		MorphMaxSides: 9,

		ParallaxLayers:    5,
		ParallaxShapes:    20,
		DustCount:         50,
		DustCountNarrow:   25,
		DustStaggerMillis: 100,

		MagneticPull: 0.1,

		RippleMillis:     600,
		ExplosionMillis:  1000,
		GlowMillis:       300,
		SlideMillis:      300,
		GlyphMillis:      1000,
		EntranceMillis:   1000,
		ShakeMillis:      500,
		LiquidMillis:     500,
		GlitchMillis:     500,
		BannerInMillis:   600,
		BannerHoldMillis: 2000,
		BannerOutMillis:  500,
		SweepMillis:      500,
		SweepHoldMillis:  200,
	}
}

// Frames converts a millisecond duration into a frame count, never below one.
func Frames(millis int) int {
	n := millis * FrameRate / 1000
	if n < 1 {
		return 1
	}
	return n
}

// LoadTuning reads a YAML file over the defaults. Fields missing from the
// file keep their default value.
func LoadTuning(path string) (*Tuning, error) {
	t := DefaultTuning()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("failed to read tuning file: %w", err)
	}
	if err := yaml.Unmarshal(data, t); err != nil {
		return DefaultTuning(), fmt.Errorf("failed to parse tuning file %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return DefaultTuning(), err
	}
	return t, nil
}

// Validate rejects values that would break the collection invariants.
func (t *Tuning) Validate() error {
	if t.TrailCap <= 0 {
		return fmt.Errorf("trailCap must be positive, got %d", t.TrailCap)
	}
	if t.BurstCap < t.BurstCount {
		return fmt.Errorf("burstCap %d is below burstCount %d", t.BurstCap, t.BurstCount)
	}
	if t.LifeDecay <= 0 || t.LifeDecay > 1 {
		return fmt.Errorf("lifeDecay must be in (0,1], got %v", t.LifeDecay)
	}
	if t.MorphStep <= 0 || t.MorphStep >= 1 {
		return fmt.Errorf("morphStep must be in (0,1), got %v", t.MorphStep)
	}
	if t.MorphMinSides < 3 || t.MorphMaxSides < t.MorphMinSides {
		return fmt.Errorf("invalid morph side range [%d,%d]", t.MorphMinSides, t.MorphMaxSides)
	}
	if t.DepthMax <= 0 {
		return fmt.Errorf("depthMax must be positive, got %v", t.DepthMax)
	}
	return nil
}
