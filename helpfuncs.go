package main

import (
	"fmt"
	"gf-tr/models"
	"log/slog"
	"os/exec"
	"strings"
	"sync"

	"github.com/atotto/clipboard"
)

var (
	statusLineFmt = "F12 help | from: [orange:-:b]%s[-:-:-] to: [orange:-:b]%s[-:-:-] | dictation: [%s:-:b]%s[-:-:-] | log: %s"
	lastErrMu     sync.Mutex
	lastErr       string
)

// setLastError is shown on the status line until the next translate
func setLastError(msg string) {
	lastErrMu.Lock()
	lastErr = msg
	lastErrMu.Unlock()
	if app != nil {
		app.QueueUpdateDraw(updateStatusLine)
	}
}

func makeStatusLine() string {
	st := store.State()
	dictColor, dictState := "gray", "idle"
	if dictation != nil && dictation.Listening() {
		dictColor, dictState = "green", "listening"
	}
	line := fmt.Sprintf(statusLineFmt, models.LanguageName(st.SourceLang),
		models.LanguageName(st.TargetLang), dictColor, dictState, GetLogLevel())
	lastErrMu.Lock()
	defer lastErrMu.Unlock()
	if lastErr != "" {
		line += fmt.Sprintf(" | [red:-:b]%s[-:-:-]", lastErr)
	}
	return line
}

func makeHelpText() string {
	return fmt.Sprintf(helpText, makeStatusLine())
}

func updateStatusLine() {
	position.SetText(makeStatusLine())
	if pages.HasPage("helpView") {
		helpView.SetText(makeHelpText())
	}
}

func parseLogLevel(sl string) slog.Level {
	switch strings.ToLower(sl) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// GetLogLevel returns the current log level as a string
func GetLogLevel() string {
	switch logLevel.Level() {
	case slog.LevelDebug:
		return "Debug"
	case slog.LevelWarn:
		return "Warn"
	case slog.LevelError:
		return "Error"
	}
	return "Info"
}

func notifyUser(topic, message string) error {
	cmd := exec.Command("notify-send", topic, message)
	return cmd.Run()
}

func copyTranslation() {
	text := store.State().TargetText
	if strings.TrimSpace(text) == "" {
		return
	}
	if err := clipboard.WriteAll(text); err != nil {
		logger.Error("failed to copy to clipboard", "error", err)
		setLastError("clipboard unavailable")
		return
	}
	preview := []rune(text)
	if len(preview) > 30 {
		preview = preview[:30]
	}
	if err := notifyUser("copied", fmt.Sprintf("'%s' was copied to the clipboard", string(preview))); err != nil {
		logger.Debug("failed to send notification", "error", err)
	}
}
