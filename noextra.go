//go:build !extra

package main

import (
	"gf-tr/config"
	"log/slog"
)

// Interfaces and implementations when extra modules are not included

type Orator interface {
	Speak(text, lang string) error
	Stop()
	GetLogger() *slog.Logger
}

type STT interface {
	StartRecording() error
	StopRecording() (string, error)
	IsRecording() bool
	OnTranscript(fn func(transcript string))
}

func NewOrator(logger *slog.Logger, cfg *config.Config) Orator {
	logger.Warn("tts enabled but built without extra tag")
	return newMuteOrator(logger)
}

func NewSTT(logger *slog.Logger, cfg *config.Config) STT {
	logger.Warn("stt enabled but built without extra tag")
	return newMuteSTT(logger)
}
