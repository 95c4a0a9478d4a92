// Package config provides shared configuration utilities.
package config

import (
	"os"
	"strconv"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// envOverrides applies environment variables on top of s.
func envOverrides(s *Settings, lookup LookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}
	str(EnvSSHHost, &s.SSH.Host)
	str(EnvSSHPort, &s.SSH.Port)
	str(EnvSSHHostKey, &s.SSH.HostKey)
	str(EnvSSHDisplayHost, &s.SSH.DisplayHost)
	str(EnvWebHost, &s.Web.Host)
	str(EnvWebPort, &s.Web.Port)
	str(EnvScores, &s.Scores)
	str(EnvLocale, &s.Locale)
	str(EnvLogLevel, &s.LogLevel)

	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return &EnvError{Key: EnvSeed, Value: v, Err: err}
		}
		s.Seed = seed
	}
	if v, ok := lookup(EnvMute); ok && v != "" {
		mute, err := strconv.ParseBool(v)
		if err != nil {
			return &EnvError{Key: EnvMute, Value: v, Err: err}
		}
		s.Audio.Mute = mute
	}
	if v, ok := lookup(EnvVolume); ok && v != "" {
		vol, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return &EnvError{Key: EnvVolume, Value: v, Err: err}
		}
		s.Audio.Volume = vol
	}
	return nil
}

// EnvError reports an environment variable that could not be parsed.
type EnvError struct {
	Key   string
	Value string
	Err   error
}

func (e *EnvError) Error() string {
	return "invalid " + e.Key + "=" + strconv.Quote(e.Value) + ": " + e.Err.Error()
}

func (e *EnvError) Unwrap() error {
	return e.Err
}
