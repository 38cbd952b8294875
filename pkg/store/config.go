package store

import (
	"fmt"
	"os"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config describes where notes live and how the calendar behaves.
type Config interface {
	BasePath() string
	LogFile() string
	LogLevel() string
	Locale() string
	FlipFrames() int
	FlipFrameDelay() time.Duration
	Watch() bool
}

const (
	defaultPath       = "~/.flipcal"
	defaultFlipFrames = 8
	defaultFrameMS    = 30
)

// LoadConfig reads .flipcal.yaml from $FLIPCAL_CONFIG_PATH, the working
// directory or the home directory, then applies FLIPCAL_* env overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", defaultPath)
	viper.SetDefault("log-level", "info")
	viper.SetDefault("flip-frames", defaultFlipFrames)
	viper.SetDefault("flip-frame-ms", defaultFrameMS)
	viper.SetDefault("watch", false)
	viper.SetConfigName(".flipcal") // .yaml is implicit
	viper.SetEnvPrefix("FLIPCAL")
	viper.AutomaticEnv()

	if override := os.Getenv("FLIPCAL_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	logFile := viper.GetString("log-file")
	if logFile != "" {
		if logFile, err = homedir.Expand(logFile); err != nil {
			return nil, fmt.Errorf("store: expand log-file: %w", err)
		}
	}

	return &fileConfig{
		Path:        path,
		Log:         logFile,
		Level:       viper.GetString("log-level"),
		Lang:        viper.GetString("locale"),
		Frames:      viper.GetInt("flip-frames"),
		FrameMillis: viper.GetInt("flip-frame-ms"),
		WatchFiles:  viper.GetBool("watch"),
	}, nil
}

type fileConfig struct {
	Path        string `json:"path"`
	Log         string `json:"log-file"`
	Level       string `json:"log-level"`
	Lang        string `json:"locale"`
	Frames      int    `json:"flip-frames"`
	FrameMillis int    `json:"flip-frame-ms"`
	WatchFiles  bool   `json:"watch"`
}

func (f *fileConfig) BasePath() string { return f.Path }
func (f *fileConfig) LogFile() string  { return f.Log }
func (f *fileConfig) LogLevel() string { return f.Level }
func (f *fileConfig) Locale() string   { return f.Lang }
func (f *fileConfig) Watch() bool      { return f.WatchFiles }

func (f *fileConfig) FlipFrames() int {
	if f.Frames < 1 {
		return defaultFlipFrames
	}
	return f.Frames
}

func (f *fileConfig) FlipFrameDelay() time.Duration {
	if f.FrameMillis < 1 {
		return defaultFrameMS * time.Millisecond
	}
	return time.Duration(f.FrameMillis) * time.Millisecond
}

// StaticConfig is a Config with fixed values, used by tests and embedders.
type StaticConfig struct {
	Path   string
	Frames int
	Delay  time.Duration
}

func (s StaticConfig) BasePath() string { return s.Path }
func (s StaticConfig) LogFile() string  { return "" }
func (s StaticConfig) LogLevel() string { return "info" }
func (s StaticConfig) Locale() string   { return "en_US" }
func (s StaticConfig) Watch() bool      { return false }

func (s StaticConfig) FlipFrames() int {
	if s.Frames < 1 {
		return 1
	}
	return s.Frames
}

func (s StaticConfig) FlipFrameDelay() time.Duration { return s.Delay }
