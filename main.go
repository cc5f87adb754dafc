package main

import (
	"context"
	"flag"
	"fmt"
	"gf-tr/config"
	"gf-tr/models"
	"gf-tr/session"
	"gf-tr/translator"
	"log/slog"
	"os"
)

var (
	cfg         *config.Config
	logger      *slog.Logger
	logLevel    = new(slog.LevelVar)
	ctx, cancel = context.WithCancel(context.Background())
	store       *session.Store
	translation *session.Translation
	speech      *session.Speech
	dictation   *session.Dictation
	orator      Orator
	asr         STT
	client      *translator.MyMemory
)

func initApp(configPath string) error {
	var err error
	cfg, err = config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", configPath, err)
	}
	logfile, err := os.OpenFile(cfg.LogFile,
		os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", cfg.LogFile, err)
	}
	logLevel.Set(parseLogLevel(cfg.LogLevel))
	logger = slog.New(slog.NewTextHandler(logfile, &slog.HandlerOptions{Level: logLevel}))
	if err := models.ValidateCatalog(models.Catalog); err != nil {
		return err
	}
	client = translator.NewMyMemory(logger, cfg.TranslateAPI, cfg.Timeout())
	store = session.NewStore(cfg.SourceLang, cfg.TargetLang)
	translation = session.NewTranslation(logger, store, client)
	orator = newMuteOrator(logger)
	if cfg.TTS_ENABLED {
		orator = NewOrator(logger, cfg)
	}
	speech = session.NewSpeech(logger, store, orator)
	asr = newMuteSTT(logger)
	if cfg.STT_ENABLED {
		asr = NewSTT(logger, cfg)
	}
	dictation = session.NewDictation(logger, store, asr, cfg.SettleDelay(), session.AfterFunc)
	dictation.Parity = cfg.DictationParity
	logger.Info("started", "source", cfg.SourceLang, "target", cfg.TargetLang,
		"tts", cfg.TTS_ENABLED, "stt", cfg.STT_ENABLED, "dictation_parity", cfg.DictationParity)
	return nil
}

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	apiPort := flag.Int("port", 0, "port to host api")
	flag.Parse()
	if err := initApp(*configPath); err != nil {
		fmt.Println(err)
		cancel()
		os.Exit(1)
	}
	defer cancel()
	if *apiPort > 3000 {
		// no tui
		srv := NewServer(logger, client)
		if err := srv.ListenToRequests(fmt.Sprintf("%d", *apiPort)); err != nil {
			logger.Error("api server stopped", "error", err)
			fmt.Println(err)
			os.Exit(1)
		}
		return
	}
	initTUI()
	pages.AddPage("main", flex, true, true)
	if err := app.SetRoot(pages,
		true).EnableMouse(true).EnablePaste(true).Run(); err != nil {
		logger.Error("failed to start tview app", "error", err)
		return
	}
	orator.Stop()
	if dictation.Listening() {
		if err := dictation.Stop(); err != nil {
			logger.Warn("failed to stop dictation on exit", "error", err)
		}
	}
}
