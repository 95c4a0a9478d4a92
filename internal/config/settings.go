package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment keys.
const (
	EnvConfig         = "VALDEBT_CONFIG"
	EnvSSHHost        = "SSH_HOST"
	EnvSSHPort        = "SSH_PORT"
	EnvSSHHostKey     = "SSH_HOST_KEY"
	EnvSSHDisplayHost = "SSH_DISPLAY_HOST"
	EnvWebHost        = "WEB_HOST"
	EnvWebPort        = "WEB_PORT"
	EnvScores         = "VALDEBT_SCORES"
	EnvLocale         = "VALDEBT_LOCALE"
	EnvSeed           = "VALDEBT_SEED"
	EnvMute           = "VALDEBT_MUTE"
	EnvVolume         = "VALDEBT_VOLUME"
	EnvLogLevel       = "VALDEBT_LOG_LEVEL"
)

// Settings is the runtime configuration shared by every host.
type Settings struct {
	SSH struct {
		Host        string `yaml:"host"`
		Port        string `yaml:"port"`
		HostKey     string `yaml:"host_key"`
		DisplayHost string `yaml:"display_host"`
	} `yaml:"ssh"`
	Web struct {
		Host string `yaml:"host"`
		Port string `yaml:"port"`
	} `yaml:"web"`
	Audio struct {
		Mute   bool    `yaml:"mute"`
		Volume float64 `yaml:"volume"`
	} `yaml:"audio"`
	Scores   string `yaml:"scores"`
	Locale   string `yaml:"locale"`
	Seed     uint64 `yaml:"seed"` // 0 picks a time-based seed per game
	LogLevel string `yaml:"log_level"`
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	var s Settings
	s.SSH.Host = "::"
	s.SSH.Port = "2222"
	s.SSH.HostKey = "/app/keys/host_key"
	s.SSH.DisplayHost = "your-server.com"
	s.Web.Host = "0.0.0.0"
	s.Web.Port = "8080"
	s.Audio.Volume = 0.8
	s.Scores = "scores.yaml"
	s.Locale = "en"
	s.LogLevel = "info"
	return s
}

// Load builds settings from defaults, then the YAML file named by
// VALDEBT_CONFIG (if set), then individual environment variables.
func Load() (Settings, error) {
	return LoadWith(os.LookupEnv)
}

// LoadWith is Load with an injectable environment.
func LoadWith(lookup LookupFunc) (Settings, error) {
	s := Defaults()
	if path, ok := lookup(EnvConfig); ok && path != "" {
		if err := s.mergeFile(path); err != nil {
			return s, err
		}
	}
	if err := envOverrides(&s, lookup); err != nil {
		return s, err
	}
	return s, nil
}

// mergeFile overlays the fields present in a YAML file.
func (s *Settings) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// GameSeed returns the configured seed, or a fresh time-based one when unset.
func (s Settings) GameSeed() uint64 {
	if s.Seed != 0 {
		return s.Seed
	}
	return uint64(time.Now().UnixNano())
}
