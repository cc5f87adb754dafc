package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"gf-tr/models"
	"gf-tr/translator"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

type textTranslator interface {
	Translate(ctx context.Context, text, source, target string) (models.Translation, error)
}

// Server exposes the translator over http when the app runs without a tui
type Server struct {
	logger *slog.Logger
	client textTranslator
}

func NewServer(logger *slog.Logger, client textTranslator) *Server {
	return &Server{logger: logger, client: client}
}

func (srv *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", srv.pingHandler)
	mux.HandleFunc("GET /languages", srv.languagesHandler)
	mux.HandleFunc("GET /translate", srv.translateHandler)
	return mux
}

func (srv *Server) ListenToRequests(port string) error {
	server := &http.Server{
		Addr:         "localhost:" + port,
		Handler:      srv.routes(),
		ReadTimeout:  time.Second * 5,
		WriteTimeout: time.Second * 40,
	}
	fmt.Printf("Listening on %s\n", server.Addr)
	srv.logger.Info("api listening", "addr", server.Addr)
	return server.ListenAndServe()
}

func (srv *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		srv.logger.Error("failed to write response", "error", err)
	}
}

func (srv *Server) pingHandler(w http.ResponseWriter, req *http.Request) {
	if _, err := w.Write([]byte("pong")); err != nil {
		srv.logger.Error("server ping", "error", err)
	}
}

func (srv *Server) languagesHandler(w http.ResponseWriter, req *http.Request) {
	srv.writeJSON(w, http.StatusOK, models.Catalog)
}

func (srv *Server) translateHandler(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query()
	text := q.Get("q")
	source, target := q.Get("source"), q.Get("target")
	if source == "" {
		source = cfg.SourceLang
	}
	if target == "" {
		target = cfg.TargetLang
	}
	if strings.TrimSpace(text) == "" {
		srv.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "q is required"})
		return
	}
	for _, code := range []string{source, target} {
		if models.CatalogIndex(code) < 0 {
			srv.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown language: " + code})
			return
		}
	}
	resp, err := srv.client.Translate(req.Context(), text, source, target)
	if err != nil {
		srv.logger.Error("translate handler", "error", err, "langpair", models.LangPair(source, target))
		status := http.StatusBadGateway
		if errors.Is(err, translator.ErrEmptyText) {
			status = http.StatusBadRequest
		}
		srv.writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}
	srv.writeJSON(w, http.StatusOK, resp)
}
