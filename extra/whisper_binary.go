//go:build extra
// +build extra

package extra

import (
	"bytes"
	"context"
	"fmt"
	"gf-tr/config"
	"log/slog"
	"os"
	"os/exec"
	"time"
)

// WhisperBinary runs a local whisper.cpp cli over a temporary wav file
type WhisperBinary struct {
	*recorder
	whisperPath string
	modelPath   string
	timeout     time.Duration
}

func NewWhisperBinary(logger *slog.Logger, cfg *config.Config) *WhisperBinary {
	wb := &WhisperBinary{
		whisperPath: cfg.WhisperBinaryPath,
		modelPath:   cfg.WhisperModelPath,
		timeout:     cfg.Timeout(),
	}
	wb.recorder = newRecorder(logger, cfg, wb.run)
	return wb
}

func (wb *WhisperBinary) args(fn, lang string) []string {
	if lang == "" {
		lang = "auto"
	}
	return []string{"-m", wb.modelPath, "-l", lang, "-f", fn, "-nt", "-np"}
}

func (wb *WhisperBinary) run(wav []byte, lang string) (string, error) {
	f, err := os.CreateTemp("", "gf-tr-*.wav")
	if err != nil {
		return "", fmt.Errorf("failed to create temp wav: %w", err)
	}
	defer os.Remove(f.Name())
	if _, err := f.Write(wav); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write temp wav: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	ctx, cancel := context.WithTimeout(context.Background(), wb.timeout)
	defer cancel()
	cmd := exec.CommandContext(ctx, wb.whisperPath, wb.args(f.Name(), lang)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		wb.logger.Debug("whisper binary failed", "stderr", stderr.String())
		return "", fmt.Errorf("whisper binary failed: %w", err)
	}
	return stdout.String(), nil
}
