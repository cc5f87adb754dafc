package main

import (
	"errors"
	"log/slog"
)

var errSTTDisabled = errors.New("speech recognition is not available")

// muteOrator is used when tts is disabled or not compiled in
type muteOrator struct {
	logger *slog.Logger
}

func newMuteOrator(logger *slog.Logger) *muteOrator {
	return &muteOrator{logger: logger}
}

func (d *muteOrator) Speak(text, lang string) error {
	d.logger.Debug("TTS not available", "lang", lang)
	return nil
}

func (d *muteOrator) Stop() {}

func (d *muteOrator) GetLogger() *slog.Logger {
	return d.logger
}

type muteSTT struct {
	logger *slog.Logger
}

func newMuteSTT(logger *slog.Logger) *muteSTT {
	return &muteSTT{logger: logger}
}

func (d *muteSTT) StartRecording() error {
	d.logger.Debug("STT not available")
	return errSTTDisabled
}

func (d *muteSTT) StopRecording() (string, error) {
	return "", nil
}

func (d *muteSTT) IsRecording() bool {
	return false
}

func (d *muteSTT) OnTranscript(fn func(transcript string)) {}
