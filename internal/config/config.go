// Package config loads runtime settings from defaults, a .env file and the
// environment, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"basic-image-editor/internal/transform"
)

const envPrefix = "IMAGE_EDITOR_"

// Config holds runtime configuration for the editor.
type Config struct {
	Debug     bool
	LogFormat string // "text" or "json"

	CameraDevice  int
	CascadePath   string
	FrameInterval time.Duration // pause between preview frames

	WindowWidth  float32
	WindowHeight float32

	RectangleColor     string
	RectangleLineWidth int
}

// Default returns a Config populated with standard defaults.
func Default() Config {
	return Config{
		Debug:              false,
		LogFormat:          "json",
		CameraDevice:       0,
		CascadePath:        "haarcascade_frontalface_default.xml",
		FrameInterval:      30 * time.Millisecond,
		WindowWidth:        1200,
		WindowHeight:       800,
		RectangleColor:     "red",
		RectangleLineWidth: 2,
	}
}

// Load applies envFile (if it exists) and then the process environment on
// top of the defaults. An empty envFile means ".env".
func Load(envFile string) (Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	// Variables already set in the environment win over the file.
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("reading %s: %w", envFile, err)
	}

	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	var err error
	if v, ok := lookup("DEBUG"); ok {
		if c.Debug, err = strconv.ParseBool(v); err != nil {
			return envError("DEBUG", v, err)
		}
	}
	if v, ok := lookup("LOG_FORMAT"); ok {
		c.LogFormat = strings.ToLower(v)
	}
	if v, ok := lookup("CAMERA_DEVICE"); ok {
		if c.CameraDevice, err = strconv.Atoi(v); err != nil {
			return envError("CAMERA_DEVICE", v, err)
		}
	}
	if v, ok := lookup("CASCADE_PATH"); ok {
		c.CascadePath = v
	}
	if v, ok := lookup("FRAME_INTERVAL"); ok {
		if c.FrameInterval, err = time.ParseDuration(v); err != nil {
			return envError("FRAME_INTERVAL", v, err)
		}
	}
	if v, ok := lookup("WINDOW_WIDTH"); ok {
		w, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return envError("WINDOW_WIDTH", v, err)
		}
		c.WindowWidth = float32(w)
	}
	if v, ok := lookup("WINDOW_HEIGHT"); ok {
		h, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return envError("WINDOW_HEIGHT", v, err)
		}
		c.WindowHeight = float32(h)
	}
	if v, ok := lookup("RECT_COLOR"); ok {
		c.RectangleColor = v
	}
	if v, ok := lookup("RECT_LINE_WIDTH"); ok {
		if c.RectangleLineWidth, err = strconv.Atoi(v); err != nil {
			return envError("RECT_LINE_WIDTH", v, err)
		}
	}
	return nil
}

// Validate rejects settings the application cannot run with.
func (c *Config) Validate() error {
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("log format must be text or json, got %q", c.LogFormat)
	}
	if c.CameraDevice < 0 {
		return fmt.Errorf("camera device must be >= 0, got %d", c.CameraDevice)
	}
	if c.FrameInterval < 0 {
		return fmt.Errorf("frame interval must be >= 0, got %s", c.FrameInterval)
	}
	if c.WindowWidth < 200 || c.WindowHeight < 200 {
		return fmt.Errorf("window must be at least 200x200, got %.0fx%.0f", c.WindowWidth, c.WindowHeight)
	}
	if c.RectangleLineWidth < 1 || c.RectangleLineWidth > transform.MaxLineWidth {
		return fmt.Errorf("rectangle line width must be between 1 and %d, got %d",
			transform.MaxLineWidth, c.RectangleLineWidth)
	}
	if _, err := transform.ParseColor(c.RectangleColor); err != nil {
		return fmt.Errorf("rectangle color: %w", err)
	}
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(envPrefix + key)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(v), true
}

func envError(key, value string, err error) error {
	return fmt.Errorf("%s%s=%q: %w", envPrefix, key, value, err)
}
