//go:build extra
// +build extra

package extra

import (
	"bytes"
	"fmt"
	"gf-tr/config"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
)

// WhisperServer posts the recording to a whisper.cpp server /inference endpoint
type WhisperServer struct {
	*recorder
	ServerURL string
	client    *http.Client
}

func NewWhisperServer(logger *slog.Logger, cfg *config.Config) *WhisperServer {
	ws := &WhisperServer{
		ServerURL: cfg.STT_URL,
		client:    &http.Client{Timeout: cfg.Timeout()},
	}
	ws.recorder = newRecorder(logger, cfg, ws.request)
	return ws
}

func (ws *WhisperServer) request(wav []byte, lang string) (string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "recording.wav")
	if err != nil {
		return "", err
	}
	if _, err := part.Write(wav); err != nil {
		return "", err
	}
	if err := writer.WriteField("response_format", "text"); err != nil {
		return "", err
	}
	if lang != "" {
		if err := writer.WriteField("language", lang); err != nil {
			return "", err
		}
	}
	if err := writer.Close(); err != nil {
		return "", err
	}
	resp, err := ws.client.Post(ws.ServerURL, writer.FormDataContentType(), body) //nolint:noctx
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	responseTextBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(responseTextBytes), nil
}
