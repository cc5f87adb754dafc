package translator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"gf-tr/models"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

var (
	ErrBadResponse = errors.New("unexpected translation response")
	ErrEmptyText   = errors.New("nothing to translate")
)

// MyMemory is a client of the MyMemory GET endpoint.
// https://mymemory.translated.net/doc/spec.php
type MyMemory struct {
	logger *slog.Logger
	URL    string
	client *http.Client
}

func NewMyMemory(logger *slog.Logger, apiURL string, timeout time.Duration) *MyMemory {
	return &MyMemory{
		logger: logger,
		URL:    apiURL,
		client: CreateClient(timeout),
	}
}

// CreateClient returns a client that gives up on slow connects and on the
// whole request after timeout.
func CreateClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			dialer := &net.Dialer{
				Timeout:   timeout,
				KeepAlive: 30 * time.Second,
			}
			return dialer.DialContext(ctx, network, addr)
		},
		TLSHandshakeTimeout:   timeout,
		ResponseHeaderTimeout: timeout,
	}
	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}

func (m *MyMemory) requestURL(text, source, target string) (string, error) {
	u, err := url.Parse(m.URL)
	if err != nil {
		return "", fmt.Errorf("bad translate api url %q: %w", m.URL, err)
	}
	q := u.Query()
	q.Set("q", text)
	q.Set("langpair", models.LangPair(source, target))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Translate sends exactly one request; there are no retries.
func (m *MyMemory) Translate(ctx context.Context, text, source, target string) (models.Translation, error) {
	if text == "" {
		return models.Translation{}, ErrEmptyText
	}
	reqID := uuid.NewString()
	apiURL, err := m.requestURL(text, source, target)
	if err != nil {
		return models.Translation{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return models.Translation{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	m.logger.Debug("translate request", "id", reqID, "langpair", models.LangPair(source, target), "text-len", len(text))
	start := time.Now()
	resp, err := m.client.Do(req)
	if err != nil {
		return models.Translation{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain for keep-alive reuse
		_, _ = io.Copy(io.Discard, resp.Body)
		return models.Translation{}, fmt.Errorf("%w; status: %s", ErrBadResponse, resp.Status)
	}
	data := &models.MyMemoryResponse{}
	if err := json.NewDecoder(resp.Body).Decode(data); err != nil {
		return models.Translation{}, fmt.Errorf("%w; failed to decode: %w", ErrBadResponse, err)
	}
	if status, ok := data.Status(); ok && status != http.StatusOK {
		return models.Translation{}, fmt.Errorf("%w; responseStatus: %d; details: %s", ErrBadResponse, status, data.ResponseDetails)
	}
	if data.ResponseData == nil || data.ResponseData.TranslatedText == nil {
		return models.Translation{}, fmt.Errorf("%w; missing responseData.translatedText", ErrBadResponse)
	}
	m.logger.Debug("translate response", "id", reqID, "took", time.Since(start), "match", data.ResponseData.Match)
	return models.Translation{
		Text:         *data.ResponseData.TranslatedText,
		Source:       source,
		Target:       target,
		Match:        data.ResponseData.Match,
		Alternatives: data.Alternatives(),
	}, nil
}
