//go:build extra
// +build extra

package extra

import (
	"fmt"
	"gf-tr/config"
	"gf-tr/models"
	"html"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	google_translate_tts "github.com/GrailFinder/google-translate-tts"
	"github.com/GrailFinder/google-translate-tts/handlers"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// google translate tts refuses longer inputs
const maxChunkLen = 200

var (
	htmlTagRE    = regexp.MustCompile(`<[^>]*>`)
	whitespaceRE = regexp.MustCompile(`\s+`)
)

// cleanText strips what a speech engine should not read out: html tags and
// entities as sometimes returned by translation memories, runs of whitespace.
func cleanText(text string) string {
	text = htmlTagRE.ReplaceAllString(text, "")
	text = html.UnescapeString(text)
	text = whitespaceRE.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// splitWords breaks a too long sentence on whitespace; a single word longer
// than limit is kept whole.
func splitWords(text string, limit int) []string {
	resp := []string{}
	var b strings.Builder
	for _, word := range strings.Fields(text) {
		if b.Len() > 0 && b.Len()+1+len(word) > limit {
			resp = append(resp, b.String())
			b.Reset()
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(word)
	}
	if b.Len() > 0 {
		resp = append(resp, b.String())
	}
	return resp
}

type sentenceTokenizer interface {
	Tokenize(text string) []*sentences.Sentence
}

// splitForSpeech cuts text into sentence sized chunks no longer than limit
func splitForSpeech(tokenizer sentenceTokenizer, text string, limit int) []string {
	text = cleanText(text)
	if text == "" {
		return nil
	}
	resp := []string{}
	for _, s := range tokenizer.Tokenize(text) {
		sent := strings.TrimSpace(s.Text)
		if sent == "" {
			continue
		}
		if len(sent) <= limit {
			resp = append(resp, sent)
			continue
		}
		resp = append(resp, splitWords(sent, limit)...)
	}
	return resp
}

type Orator interface {
	// Speak queues text; it returns before playback
	Speak(text, lang string) error
	Stop()
	GetLogger() *slog.Logger
}

type utterance struct {
	text  string
	lang  string
	epoch uint64
}

// Google Translate TTS implementation
type GoogleTranslateOrator struct {
	logger        *slog.Logger
	speech        *google_translate_tts.Speech
	tokenizer     sentenceTokenizer
	queue         chan utterance
	epoch         atomic.Uint64 // bumped by Stop; older utterances are skipped
	mu            sync.Mutex
	currentStream *beep.Ctrl
	currentStop   chan struct{}
	speakerReady  bool
}

func NewOrator(log *slog.Logger, cfg *config.Config) Orator {
	folder := cfg.TTS_CACHE_DIR
	if folder == "" {
		folder = filepath.Join(os.TempDir(), "gf-tr-tts")
	}
	speech := &google_translate_tts.Speech{
		Folder:   folder,
		Language: "en",
		Proxy:    "", // Proxy not supported
		Speed:    cfg.TTS_SPEED,
		Handler:  &handlers.Beep{},
	}
	orator := &GoogleTranslateOrator{
		logger: log,
		speech: speech,
		queue:  make(chan utterance, 64),
	}
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		log.Warn("failed to load sentence tokenizer; falling back to whitespace split", "error", err)
	} else {
		orator.tokenizer = tokenizer
	}
	go orator.readroutine()
	return orator
}

func (o *GoogleTranslateOrator) GetLogger() *slog.Logger {
	return o.logger
}

func (o *GoogleTranslateOrator) Speak(text, lang string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	select {
	case o.queue <- utterance{text: text, lang: lang, epoch: o.epoch.Load()}:
		return nil
	default:
		return fmt.Errorf("speech queue is full (%d)", cap(o.queue))
	}
}

func (o *GoogleTranslateOrator) chunks(text string) []string {
	if o.tokenizer == nil {
		return splitWords(cleanText(text), maxChunkLen)
	}
	return splitForSpeech(o.tokenizer, text, maxChunkLen)
}

func (o *GoogleTranslateOrator) readroutine() {
	for u := range o.queue {
		if u.epoch != o.epoch.Load() {
			continue
		}
		o.speech.Language = models.BaseLanguage(u.lang)
		for _, chunk := range o.chunks(u.text) {
			if u.epoch != o.epoch.Load() {
				o.logger.Debug("utterance interrupted", "lang", u.lang)
				break
			}
			o.logger.Debug("speaking chunk", "lang", o.speech.Language, "chunk-len", len(chunk))
			if err := o.play(chunk); err != nil {
				o.logger.Error("tts failed", "chunk", chunk, "error", err)
				break
			}
		}
	}
}

func (o *GoogleTranslateOrator) play(text string) error {
	reader, err := o.speech.GenerateSpeech(text)
	if err != nil {
		return fmt.Errorf("generate speech failed: %w", err)
	}
	streamer, format, err := mp3.Decode(io.NopCloser(reader))
	if err != nil {
		return fmt.Errorf("mp3 decode failed: %w", err)
	}
	defer streamer.Close()
	playbackStreamer := beep.Streamer(streamer)
	speed := o.speech.Speed
	if speed <= 0 {
		speed = 1.0
	}
	if speed != 1.0 {
		playbackStreamer = beep.ResampleRatio(3, float64(speed), streamer)
	}
	if !o.speakerReady {
		if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
			o.logger.Debug("failed to init speaker", "error", err)
		}
		o.speakerReady = true
	}
	done := make(chan struct{})
	stop := make(chan struct{})
	ctrl := &beep.Ctrl{Streamer: beep.Seq(playbackStreamer, beep.Callback(func() {
		close(done)
	}))}
	o.mu.Lock()
	o.currentStream = ctrl
	o.currentStop = stop
	o.mu.Unlock()
	speaker.Play(ctrl)
	select {
	case <-done:
	case <-stop:
	}
	o.mu.Lock()
	o.currentStream = nil
	o.currentStop = nil
	o.mu.Unlock()
	return nil
}

// Stop cuts the current chunk and drops everything queued before the call.
func (o *GoogleTranslateOrator) Stop() {
	o.logger.Debug("attempted to stop google translate orator")
	o.epoch.Add(1)
	o.mu.Lock()
	if o.currentStream != nil {
		speaker.Lock()
		o.currentStream.Streamer = nil
		speaker.Unlock()
		close(o.currentStop)
		o.currentStream = nil
		o.currentStop = nil
	}
	o.mu.Unlock()
	if err := o.speech.Stop(); err != nil {
		o.logger.Debug("speech handler stop", "error", err)
	}
}
