// Package config handles client configuration loading and management.
package config

// Config holds all client settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	World    WorldConfig    `yaml:"world"`
	Input    InputConfig    `yaml:"input"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FOVDegrees float32 `yaml:"fov_degrees"`
}

// WorldConfig holds world bootstrap settings. At startup the client fills a
// square of chunk columns around the origin: (2*platform_radius+1)^2 columns,
// each fill_height voxels tall.
type WorldConfig struct {
	FillHeight     int        `yaml:"fill_height"`
	PlatformRadius int        `yaml:"platform_radius"`
	GroundColor    [4]float32 `yaml:"ground_color"`
}

// InputConfig holds camera and interaction settings.
type InputConfig struct {
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
	MoveSpeed        float32 `yaml:"move_speed"`
	Reach            float32 `yaml:"reach"` // max look-at distance in cells
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
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FOVDegrees: 45,
		},
		World: WorldConfig{
			FillHeight:     5,
			PlatformRadius: 1,
			GroundColor:    [4]float32{0.33, 0.62, 0.29, 1.0},
		},
		Input: InputConfig{
			MouseSensitivity: 0.002,
			MoveSpeed:        10,
			Reach:            8,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
