package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	VSync  bool   `yaml:"vsync"`
}

// GL is the requested context version. go-gl is built against 4.1 core so
// older versions lack functions the loader expects.
type GL struct {
	Major       int  `yaml:"major"`
	Minor       int  `yaml:"minor"`
	ErrorChecks bool `yaml:"error_checks"`
}

// Context versions the shaders and the go-gl loader both support. Shaders
// are written against #version 330 core.
const (
	minMajor, minMinor = 3, 3
	maxMajor, maxMinor = 4, 1
)

// glslVersion is the #version number matching a GL 3.3+ context version.
func glslVersion(major, minor int) int {
	return major*100 + minor*10
}

type Shaders struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

type Config struct {
	Window     Window     `yaml:"window"`
	GL         GL         `yaml:"gl"`
	Shaders    Shaders    `yaml:"shaders"`
	ClearColor [4]float32 `yaml:"clear_color"`
	LogLevel   string     `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Window: Window{
			Title:  "OpenGLProject",
			Width:  1000,
			Height: 1000,
			VSync:  true,
		},
		GL: GL{
			Major:       4,
			Minor:       1,
			ErrorChecks: true,
		},
		Shaders: Shaders{
			Vertex:   "assets/shaders/Uniform.shader.vert",
			Fragment: "assets/shaders/Uniform.shader.frag",
		},
		ClearColor: [4]float32{0, 0, 0, 1},
		LogLevel:   "info",
	}
}

// Load reads a YAML file on top of the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %v: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %v: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	version := glslVersion(c.GL.Major, c.GL.Minor)
	if version < glslVersion(minMajor, minMinor) {
		return fmt.Errorf("OpenGL %d.%d is older than the %d.%d core profile", c.GL.Major, c.GL.Minor, minMajor, minMinor)
	}
	if version > glslVersion(maxMajor, maxMinor) {
		return fmt.Errorf("OpenGL %d.%d is newer than the %d.%d bindings", c.GL.Major, c.GL.Minor, maxMajor, maxMinor)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func (c Config) Clear() mgl32.Vec4 {
	return mgl32.Vec4(c.ClearColor)
}

// Level is the slog level named by LogLevel, info if unset.
func (c Config) Level() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// NewLogger returns a text logger on stderr at the configured level.
func (c Config) NewLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: c.Level(),
	}))
}

func parseLevel(name string) (slog.Level, error) {
	if name == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}
