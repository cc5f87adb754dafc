package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(fn, []byte(body), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return fn
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "TTS_ENABLED = true\n"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if !cfg.TTS_ENABLED {
		t.Errorf("expected TTS_ENABLED to be read from file")
	}
	cases := []struct {
		name string
		got  any
		want any
	}{
		{"TranslateAPI", cfg.TranslateAPI, DefaultTranslateAPI},
		{"SourceLang", cfg.SourceLang, "en-GB"},
		{"TargetLang", cfg.TargetLang, "uz-UZ"},
		{"LogFile", cfg.LogFile, "log.txt"},
		{"LogLevel", cfg.LogLevel, "info"},
		{"STT_TYPE", cfg.STT_TYPE, "WHISPER_SERVER"},
		{"STT_SR", cfg.STT_SR, 16000},
		{"TTS_SPEED", cfg.TTS_SPEED, float32(1.0)},
		{"SettleDelay", cfg.SettleDelay(), time.Second},
		{"Timeout", cfg.Timeout(), 30 * time.Second},
		{"DictationParity", cfg.DictationParity, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, tc.got)
			}
		})
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	body := `
TranslateAPI = "http://localhost:9000/get"
SourceLang = "fr-FR"
TargetLang = "de-DE"
DictationSettle = 250
DictationParity = true
STT_INTERVAL = 500
`
	cfg, err := LoadConfig(writeConfig(t, body))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.TranslateAPI != "http://localhost:9000/get" {
		t.Errorf("unexpected TranslateAPI: %s", cfg.TranslateAPI)
	}
	if cfg.SourceLang != "fr-FR" || cfg.TargetLang != "de-DE" {
		t.Errorf("unexpected langs: %s|%s", cfg.SourceLang, cfg.TargetLang)
	}
	if cfg.SettleDelay() != 250*time.Millisecond {
		t.Errorf("unexpected settle delay: %v", cfg.SettleDelay())
	}
	if cfg.STTInterval() != 500*time.Millisecond {
		t.Errorf("unexpected stt interval: %v", cfg.STTInterval())
	}
	if !cfg.DictationParity {
		t.Errorf("expected DictationParity to be true")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
