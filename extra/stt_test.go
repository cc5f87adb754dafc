//go:build extra
// +build extra

package extra

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"log/slog"
	"slices"
	"testing"
	"time"

	"gf-tr/config"
)

func TestCleanTranscript(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"hello world\n", "hello world"},
		{"[_BEG_] hello [BLANK_AUDIO]\n", "hello"},
		{" line one\n line two", "line one\nline two"},
		{"", ""},
	}
	for _, test := range tests {
		if got := cleanTranscript(test.input); got != test.expected {
			t.Errorf("cleanTranscript(%q) = %q; expected %q", test.input, got, test.expected)
		}
	}
}

func TestWriteWav(t *testing.T) {
	pcm := []byte{1, 2, 3, 4}
	buf := &bytes.Buffer{}
	if err := writeWav(buf, pcm, 16000); err != nil {
		t.Fatalf("writeWav failed: %v", err)
	}
	data := buf.Bytes()
	if len(data) != 44+len(pcm) {
		t.Fatalf("expected %d bytes, got %d", 44+len(pcm), len(data))
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" || string(data[36:40]) != "data" {
		t.Errorf("bad wav markers: %q", data[:44])
	}
	if sr := binary.LittleEndian.Uint32(data[24:28]); sr != 16000 {
		t.Errorf("expected sample rate 16000, got %d", sr)
	}
	if size := binary.LittleEndian.Uint32(data[40:44]); size != uint32(len(pcm)) {
		t.Errorf("expected data size %d, got %d", len(pcm), size)
	}
}

func TestRecorderPublishesChangesOnly(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{STT_SR: 16000, STT_INTERVAL: 10}
	answers := []string{"hel", "hel", "hello [BLANK_AUDIO]"}
	calls := 0
	r := newRecorder(logger, cfg, func(wav []byte, lang string) (string, error) {
		if lang != "fr" {
			t.Errorf("expected language hint fr, got %q", lang)
		}
		if calls >= len(answers) {
			return "", errors.New("no more answers")
		}
		calls++
		return answers[calls-1], nil
	})
	r.SetLanguage("fr-FR")
	var got []string
	r.OnTranscript(func(s string) { got = append(got, s) })
	r.audio.Write([]byte{0, 0, 1, 1})
	for range answers {
		text, err := r.transcribeSoFar()
		if err != nil {
			t.Fatalf("transcribeSoFar failed: %v", err)
		}
		r.publish(text)
	}
	if !slices.Equal(got, []string{"hel", "hello"}) {
		t.Errorf("unexpected transcripts: %q", got)
	}
	if r.Interval != 10*time.Millisecond {
		t.Errorf("unexpected interval: %v", r.Interval)
	}
}

func TestWhisperBinaryArgs(t *testing.T) {
	wb := NewWhisperBinary(slog.New(slog.NewTextHandler(io.Discard, nil)), &config.Config{WhisperModelPath: "model.bin"})
	args := wb.args("rec.wav", "")
	want := []string{"-m", "model.bin", "-l", "auto", "-f", "rec.wav", "-nt", "-np"}
	if !slices.Equal(args, want) {
		t.Errorf("unexpected args: %q", args)
	}
}
