package config

import (
	"time"

	"github.com/BurntSushi/toml"
)

const (
	DefaultTranslateAPI    = "https://api.mymemory.translated.net/get"
	DefaultSourceLang      = "en-GB"
	DefaultTargetLang      = "uz-UZ"
	DefaultDictationSettle = time.Second
)

type Config struct {
	TranslateAPI string `toml:"TranslateAPI"`
	SourceLang   string `toml:"SourceLang"` // language selected at start in the left selector
	TargetLang   string `toml:"TargetLang"`
	HTTPTimeout  int    `toml:"HTTPTimeout"` // seconds
	//
	LogFile     string `toml:"LogFile"`
	LogLevel    string `toml:"LogLevel"`
	ColorScheme string `toml:"ColorScheme"`
	// TTS
	TTS_ENABLED   bool    `toml:"TTS_ENABLED"`
	TTS_SPEED     float32 `toml:"TTS_SPEED"`
	TTS_CACHE_DIR string  `toml:"TTS_CACHE_DIR"`
	// STT
	STT_TYPE          string `toml:"STT_TYPE"` // WHISPER_SERVER, WHISPER_BINARY
	STT_URL           string `toml:"STT_URL"`
	STT_SR            int    `toml:"STT_SR"`
	STT_ENABLED       bool   `toml:"STT_ENABLED"`
	STT_INTERVAL      int    `toml:"STT_INTERVAL"` // ms between live transcript refreshes
	WhisperBinaryPath string `toml:"WhisperBinaryPath"`
	WhisperModelPath  string `toml:"WhisperModelPath"`
	// dictation
	DictationSettle int  `toml:"DictationSettle"` // ms
	DictationParity bool `toml:"DictationParity"`
}

func LoadConfig(fn string) (*Config, error) {
	if fn == "" {
		fn = "config.toml"
	}
	config := &Config{}
	_, err := toml.DecodeFile(fn, &config)
	if err != nil {
		return nil, err
	}
	config.fillDefaults()
	return config, nil
}

// fillDefaults sets every empty value that has a sane default
func (c *Config) fillDefaults() {
	if c.TranslateAPI == "" {
		c.TranslateAPI = DefaultTranslateAPI
	}
	if c.SourceLang == "" {
		c.SourceLang = DefaultSourceLang
	}
	if c.TargetLang == "" {
		c.TargetLang = DefaultTargetLang
	}
	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = 30
	}
	if c.LogFile == "" {
		c.LogFile = "log.txt"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.ColorScheme == "" {
		c.ColorScheme = "default"
	}
	if c.TTS_SPEED <= 0 {
		c.TTS_SPEED = 1.0
	}
	if c.STT_TYPE == "" {
		c.STT_TYPE = "WHISPER_SERVER"
	}
	if c.STT_SR == 0 {
		c.STT_SR = 16000
	}
	if c.STT_INTERVAL <= 0 {
		c.STT_INTERVAL = 1500
	}
	if c.DictationSettle <= 0 {
		c.DictationSettle = int(DefaultDictationSettle / time.Millisecond)
	}
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

func (c *Config) SettleDelay() time.Duration {
	return time.Duration(c.DictationSettle) * time.Millisecond
}

func (c *Config) STTInterval() time.Duration {
	return time.Duration(c.STT_INTERVAL) * time.Millisecond
}
