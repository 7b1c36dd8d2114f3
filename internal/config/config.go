// Package config handles configuration loading and management.
package config

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Controls ControlsConfig `yaml:"controls"`
	Sky      SkyConfig      `yaml:"sky"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	VSync    bool    `yaml:"vsync"`
	FPSLimit int     `yaml:"fps_limit"`
	FOV      float32 `yaml:"fov"`
}

// ControlsConfig holds input settings.
type ControlsConfig struct {
	// MouseSensitivity is degrees of look rotation per pixel of mouse travel.
	MouseSensitivity float64 `yaml:"mouse_sensitivity"`
}

// SkyConfig holds procedural sky settings.
type SkyConfig struct {
	// FaceSize is the cubemap face edge length in pixels.
	FaceSize int `yaml:"face_size"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:    1600,
			Height:   900,
			VSync:    true,
			FPSLimit: 0,
			FOV:      45,
		},
		Controls: ControlsConfig{
			MouseSensitivity: 0.1,
		},
		Sky: SkyConfig{
			FaceSize: 256,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
