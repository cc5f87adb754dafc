package session

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
)

type Recognizer interface {
	StartRecording() error
	StopRecording() (string, error)
	IsRecording() bool
	// OnTranscript registers fn to receive the whole transcript each time it changes
	OnTranscript(fn func(transcript string))
}

// Scheduler runs fn after d; the returned func cancels it if it has not run yet.
type Scheduler func(d time.Duration, fn func()) (cancel func() bool)

func AfterFunc(d time.Duration, fn func()) func() bool {
	return time.AfterFunc(d, fn).Stop
}

// Dictation moves the live transcript into the source buffer once it has
// settled for SettleDelay.
//
// By default a new transcript cancels the pending commit and the commit reads
// the transcript current at fire time. With Parity set every update schedules
// its own commit of the value seen at scheduling time and none is cancelled,
// so late commits may overwrite newer ones. Stop never cancels a pending
// commit in either mode.
type Dictation struct {
	logger      *slog.Logger
	store       *Store
	rec         Recognizer
	schedule    Scheduler
	SettleDelay time.Duration
	Parity      bool
	mu          sync.Mutex
	listening   bool
	transcript  string
	cancel      func() bool
	// OnChange is called after every Idle/Listening transition; may be nil
	OnChange func(listening bool)
}

func NewDictation(logger *slog.Logger, store *Store, rec Recognizer, settle time.Duration, schedule Scheduler) *Dictation {
	if schedule == nil {
		schedule = AfterFunc
	}
	d := &Dictation{
		logger:      logger,
		store:       store,
		rec:         rec,
		schedule:    schedule,
		SettleDelay: settle,
	}
	rec.OnTranscript(d.onTranscript)
	return d
}

func (d *Dictation) Listening() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.listening
}

func (d *Dictation) Start() error {
	d.mu.Lock()
	if d.listening {
		d.mu.Unlock()
		return nil
	}
	d.mu.Unlock()
	if hinted, ok := d.rec.(interface{ SetLanguage(code string) }); ok {
		hinted.SetLanguage(d.store.State().SourceLang)
	}
	if err := d.rec.StartRecording(); err != nil {
		return fmt.Errorf("failed to start recording: %w", err)
	}
	d.mu.Lock()
	d.listening = true
	d.mu.Unlock()
	d.logger.Debug("dictation: listening")
	d.changed(true)
	return nil
}

func (d *Dictation) Stop() error {
	d.mu.Lock()
	if !d.listening {
		d.mu.Unlock()
		return nil
	}
	d.mu.Unlock()
	// the recognizer may publish a final transcript from StopRecording,
	// so listening stays true until it returns
	_, err := d.rec.StopRecording()
	d.mu.Lock()
	d.listening = false
	d.mu.Unlock()
	d.logger.Debug("dictation: idle")
	d.changed(false)
	if err != nil {
		return fmt.Errorf("failed to stop recording: %w", err)
	}
	return nil
}

func (d *Dictation) Toggle() error {
	if d.Listening() {
		return d.Stop()
	}
	return d.Start()
}

func (d *Dictation) changed(listening bool) {
	if d.OnChange != nil {
		d.OnChange(listening)
	}
}

func (d *Dictation) onTranscript(transcript string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.listening {
		return
	}
	d.transcript = transcript
	if d.Parity {
		captured := strings.TrimSpace(transcript)
		d.schedule(d.SettleDelay, func() {
			d.store.SetSourceText(captured)
		})
		return
	}
	if d.cancel != nil {
		d.cancel()
	}
	d.cancel = d.schedule(d.SettleDelay, d.commit)
}

func (d *Dictation) commit() {
	d.mu.Lock()
	text := strings.TrimSpace(d.transcript)
	d.cancel = nil
	d.mu.Unlock()
	d.logger.Debug("dictation: commit", "text-len", len(text))
	d.store.SetSourceText(text)
}
