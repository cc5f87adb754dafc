//go:build extra
// +build extra

package extra

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"gf-tr/config"
	"gf-tr/models"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/gordonklaus/portaudio"
)

var specialRE = regexp.MustCompile(`\[.*?\]`)

type STT interface {
	StartRecording() error
	StopRecording() (string, error)
	IsRecording() bool
	OnTranscript(fn func(transcript string))
}

// transcribeFunc turns a complete wav file into text
type transcribeFunc func(wav []byte, lang string) (string, error)

func NewSTT(logger *slog.Logger, cfg *config.Config) STT {
	switch cfg.STT_TYPE {
	case "WHISPER_BINARY":
		logger.Debug("stt init, chosen whisper binary")
		return NewWhisperBinary(logger, cfg)
	case "WHISPER_SERVER":
		logger.Debug("stt init, chosen whisper server")
		return NewWhisperServer(logger, cfg)
	}
	return NewWhisperServer(logger, cfg)
}

// recorder captures the microphone into a pcm buffer and, while recording,
// re-transcribes everything heard so far every interval. Each new text is
// published as the live transcript.
type recorder struct {
	logger     *slog.Logger
	SampleRate int
	Interval   time.Duration
	transcribe transcribeFunc
	mu         sync.Mutex
	audio      *bytes.Buffer
	recording  bool
	lang       string
	transcript string
	onChange   func(string)
	stopLive   chan struct{}
	wg         sync.WaitGroup
}

func newRecorder(logger *slog.Logger, cfg *config.Config, fn transcribeFunc) *recorder {
	return &recorder{
		logger:     logger,
		SampleRate: cfg.STT_SR,
		Interval:   cfg.STTInterval(),
		transcribe: fn,
		audio:      new(bytes.Buffer),
	}
}

func (r *recorder) OnTranscript(fn func(string)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onChange = fn
}

// SetLanguage hints the recognizer with the source language code
func (r *recorder) SetLanguage(code string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lang = models.BaseLanguage(code)
}

func (r *recorder) IsRecording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recording
}

func (r *recorder) StartRecording() error {
	r.mu.Lock()
	if r.recording {
		r.mu.Unlock()
		return nil
	}
	r.audio.Reset()
	r.transcript = ""
	r.recording = true
	r.stopLive = make(chan struct{})
	r.mu.Unlock()
	if err := r.microphoneStream(); err != nil {
		r.mu.Lock()
		r.recording = false
		r.mu.Unlock()
		return fmt.Errorf("failed to init microphone: %w", err)
	}
	r.wg.Add(1)
	go r.liveroutine(r.stopLive)
	return nil
}

func (r *recorder) StopRecording() (string, error) {
	r.mu.Lock()
	if !r.recording {
		r.mu.Unlock()
		return r.transcript, nil
	}
	r.recording = false
	close(r.stopLive)
	r.mu.Unlock()
	r.wg.Wait()
	text, err := r.transcribeSoFar()
	if err != nil {
		r.logger.Error("fn: StopRecording", "error", err)
		return "", err
	}
	r.publish(text)
	return text, nil
}

func (r *recorder) liveroutine(stop <-chan struct{}) {
	defer r.wg.Done()
	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			text, err := r.transcribeSoFar()
			if err != nil {
				r.logger.Warn("live transcription failed", "error", err)
				continue
			}
			r.publish(text)
		}
	}
}

func (r *recorder) transcribeSoFar() (string, error) {
	r.mu.Lock()
	pcm := bytes.Clone(r.audio.Bytes())
	lang := r.lang
	r.mu.Unlock()
	if len(pcm) == 0 {
		return "", nil
	}
	wav := &bytes.Buffer{}
	if err := writeWav(wav, pcm, r.SampleRate); err != nil {
		return "", err
	}
	text, err := r.transcribe(wav.Bytes(), lang)
	if err != nil {
		return "", err
	}
	return cleanTranscript(text), nil
}

func (r *recorder) publish(text string) {
	r.mu.Lock()
	if text == r.transcript {
		r.mu.Unlock()
		return
	}
	r.transcript = text
	fn := r.onChange
	r.mu.Unlock()
	if fn != nil {
		fn(text)
	}
}

// cleanTranscript drops whisper special tokens like [_BEG_] or [BLANK_AUDIO]
func cleanTranscript(text string) string {
	text = strings.TrimRight(text, "\n")
	text = specialRE.ReplaceAllString(text, "")
	return strings.TrimSpace(strings.ReplaceAll(text, "\n ", "\n"))
}

// writeWav writes a mono 16 bit pcm wav file
func writeWav(w io.Writer, pcm []byte, sampleRate int) error {
	dataSize := len(pcm)
	header := make([]byte, 44)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(36+dataSize))
	copy(header[8:12], "WAVE")
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], 1)
	binary.LittleEndian.PutUint16(header[22:24], 1)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(sampleRate)*1*(16/8))
	binary.LittleEndian.PutUint16(header[32:34], 1*(16/8))
	binary.LittleEndian.PutUint16(header[34:36], 16)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], uint32(dataSize))
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write wav header: %w", err)
	}
	if _, err := w.Write(pcm); err != nil {
		return fmt.Errorf("failed to write wav data: %w", err)
	}
	return nil
}

func (r *recorder) microphoneStream() error {
	// Temporarily redirect stderr to suppress ALSA warnings during PortAudio init
	origStderr, err := syscall.Dup(syscall.Stderr)
	if err != nil {
		return fmt.Errorf("failed to dup stderr: %w", err)
	}
	nullFD, err := syscall.Open("/dev/null", syscall.O_WRONLY, 0)
	if err != nil {
		syscall.Close(origStderr)
		return fmt.Errorf("failed to open /dev/null: %w", err)
	}
	_ = syscall.Dup2(nullFD, syscall.Stderr)
	defer func() {
		_ = syscall.Dup2(origStderr, syscall.Stderr)
		syscall.Close(origStderr)
		syscall.Close(nullFD)
	}()
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("portaudio init failed: %w", err)
	}
	in := make([]int16, 64)
	stream, err := portaudio.OpenDefaultStream(1, 0, float64(r.SampleRate), len(in), in)
	if err != nil {
		if paErr := portaudio.Terminate(); paErr != nil {
			return fmt.Errorf("failed to open microphone: %w; terminate error: %w", err, paErr)
		}
		return fmt.Errorf("failed to open microphone: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		_ = portaudio.Terminate()
		return fmt.Errorf("failed to start microphone: %w", err)
	}
	r.wg.Add(1)
	go func(stream *portaudio.Stream) {
		defer r.wg.Done()
		defer func() {
			if err := stream.Stop(); err != nil {
				r.logger.Warn("failed to stop stream", "error", err)
			}
			stream.Close()
			_ = portaudio.Terminate()
		}()
		for r.IsRecording() {
			if err := stream.Read(); err != nil {
				r.logger.Error("reading stream", "error", err)
				return
			}
			r.mu.Lock()
			err := binary.Write(r.audio, binary.LittleEndian, in)
			r.mu.Unlock()
			if err != nil {
				r.logger.Error("writing to buffer", "error", err)
				return
			}
		}
	}(stream)
	return nil
}
