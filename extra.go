//go:build extra
// +build extra

package main

import (
	"gf-tr/config"
	"gf-tr/extra"
	"log/slog"
)

// Interfaces and implementations when extra modules are included

type Orator = extra.Orator
type STT = extra.STT

func NewOrator(logger *slog.Logger, cfg *config.Config) Orator {
	return extra.NewOrator(logger, cfg)
}

func NewSTT(logger *slog.Logger, cfg *config.Config) STT {
	return extra.NewSTT(logger, cfg)
}
