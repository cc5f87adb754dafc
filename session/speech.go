package session

import "log/slog"

type Synthesizer interface {
	Speak(text, lang string) error
	Stop()
}

// Speech reads a buffer aloud. It never changes the store.
type Speech struct {
	logger *slog.Logger
	store  *Store
	synth  Synthesizer
}

func NewSpeech(logger *slog.Logger, store *Store, synth Synthesizer) *Speech {
	return &Speech{logger: logger, store: store, synth: synth}
}

// Utterance picks text and language for side. An empty source falls through
// to the target buffer.
func (st State) Utterance(side Side) (string, string) {
	if side == SideSource && st.SourceText != "" {
		return st.SourceText, st.SourceLang
	}
	return st.TargetText, st.TargetLang
}

func (s *Speech) Speak(side Side) {
	text, lang := s.store.State().Utterance(side)
	if err := s.synth.Speak(text, lang); err != nil {
		s.logger.Error("failed to speak", "side", side, "lang", lang, "error", err)
	}
}

func (s *Speech) Stop() {
	s.synth.Stop()
}
