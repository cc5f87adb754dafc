package translator

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestMyMemoryTranslate(t *testing.T) {
	var gotQ, gotPair string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		gotQ = r.URL.Query().Get("q")
		gotPair = r.URL.Query().Get("langpair")
		_, _ = w.Write([]byte(`{"responseData":{"translatedText":"salom","match":0.99},"responseStatus":200,
			"matches":[{"translation":"salom"},{"translation":"assalomu alaykum"}]}`))
	}))
	defer srv.Close()
	client := NewMyMemory(testLogger, srv.URL+"/get", time.Second)
	resp, err := client.Translate(context.Background(), "hello", "en-GB", "uz-UZ")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if gotQ != "hello" {
		t.Errorf("expected q=hello, got %q", gotQ)
	}
	if gotPair != "en-GB|uz-UZ" {
		t.Errorf("expected langpair en-GB|uz-UZ, got %q", gotPair)
	}
	if resp.Text != "salom" {
		t.Errorf("expected salom, got %q", resp.Text)
	}
	if len(resp.Alternatives) != 1 || resp.Alternatives[0] != "assalomu alaykum" {
		t.Errorf("unexpected alternatives: %v", resp.Alternatives)
	}
}

func TestMyMemoryResponseWithoutStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"responseData":{"translatedText":"salom"}}`))
	}))
	defer srv.Close()
	client := NewMyMemory(testLogger, srv.URL, time.Second)
	resp, err := client.Translate(context.Background(), "hello", "en-GB", "uz-UZ")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if resp.Text != "salom" {
		t.Errorf("expected salom, got %q", resp.Text)
	}
}

func TestMyMemoryEscapesQuery(t *testing.T) {
	var rawQuery string
	text := "fish & chips? 100% #yes"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		if q := r.URL.Query().Get("q"); q != text {
			t.Errorf("q was not transported intact: %q", q)
		}
		_, _ = w.Write([]byte(`{"responseData":{"translatedText":"ok"},"responseStatus":200}`))
	}))
	defer srv.Close()
	client := NewMyMemory(testLogger, srv.URL, time.Second)
	if _, err := client.Translate(context.Background(), text, "en-GB", "fr-FR"); err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if rawQuery == "" {
		t.Fatal("no query received")
	}
}

func TestMyMemoryFailures(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{"http error", http.StatusInternalServerError, `{}`},
		{"not json", http.StatusOK, `<html>nope</html>`},
		{"no responseData", http.StatusOK, `{"responseStatus":200}`},
		{"no translatedText", http.StatusOK, `{"responseData":{"match":1}}`},
		{"api status", http.StatusOK, `{"responseData":{"translatedText":"'XX' IS AN INVALID TARGET LANGUAGE"},"responseStatus":"403","responseDetails":"invalid"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()
			client := NewMyMemory(testLogger, srv.URL, time.Second)
			_, err := client.Translate(context.Background(), "hello", "en-GB", "xx-XX")
			if !errors.Is(err, ErrBadResponse) {
				t.Errorf("expected ErrBadResponse, got %v", err)
			}
		})
	}
}

func TestMyMemoryEmptyTextSkipsRequest(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()
	client := NewMyMemory(testLogger, srv.URL, time.Second)
	if _, err := client.Translate(context.Background(), "", "en-GB", "uz-UZ"); !errors.Is(err, ErrEmptyText) {
		t.Errorf("expected ErrEmptyText, got %v", err)
	}
	if hits.Load() != 0 {
		t.Errorf("expected no request, got %d", hits.Load())
	}
}

func TestMyMemoryNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()
	client := NewMyMemory(testLogger, url, time.Second)
	if _, err := client.Translate(context.Background(), "hello", "en-GB", "uz-UZ"); err == nil {
		t.Fatal("expected error from closed server")
	}
}
