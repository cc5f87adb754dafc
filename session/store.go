// Package session holds the translation screen state and the controllers
// that mutate it: swap, translate, speak and dictation.
package session

import (
	"sync"
)

type Side string

const (
	SideSource Side = "source"
	SideTarget Side = "target"
)

// State is a snapshot of the two text buffers and the two selected languages.
type State struct {
	SourceText string
	TargetText string
	SourceLang string
	TargetLang string
}

// Store owns the State. Every mutation is atomic; subscribers receive a
// snapshot after each mutation that changed something.
type Store struct {
	mu     sync.RWMutex
	state  State
	subsMu sync.Mutex
	subs   map[int]func(State)
	nextID int
}

func NewStore(sourceLang, targetLang string) *Store {
	return &Store{
		state: State{SourceLang: sourceLang, TargetLang: targetLang},
		subs:  make(map[int]func(State)),
	}
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers fn and returns a func removing it.
func (s *Store) Subscribe(fn func(State)) func() {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.subsMu.Lock()
		defer s.subsMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) notify(st State) {
	s.subsMu.Lock()
	fns := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subsMu.Unlock()
	for _, fn := range fns {
		fn(st)
	}
}

// update applies fn under the write lock; fn reports whether it changed state.
func (s *Store) update(fn func(st *State) bool) bool {
	s.mu.Lock()
	changed := fn(&s.state)
	st := s.state
	s.mu.Unlock()
	if changed {
		s.notify(st)
	}
	return changed
}

// SetSourceText sets the input text; an empty input also empties the
// translation.
func (s *Store) SetSourceText(text string) {
	s.update(func(st *State) bool {
		if st.SourceText == text && (text != "" || st.TargetText == "") {
			return false
		}
		st.SourceText = text
		if text == "" {
			st.TargetText = ""
		}
		return true
	})
}

func (s *Store) SetTargetText(text string) {
	s.update(func(st *State) bool {
		if st.TargetText == text {
			return false
		}
		st.TargetText = text
		return true
	})
}

// setTranslation writes a translation result unless the source has been
// emptied meanwhile; it reports whether the result was kept.
func (s *Store) setTranslation(text string) bool {
	kept := true
	s.update(func(st *State) bool {
		if st.SourceText == "" {
			kept = false
			return false
		}
		if st.TargetText == text {
			return false
		}
		st.TargetText = text
		return true
	})
	return kept
}

func (s *Store) SetSourceLang(code string) {
	s.update(func(st *State) bool {
		if st.SourceLang == code {
			return false
		}
		st.SourceLang = code
		return true
	})
}

func (s *Store) SetTargetLang(code string) {
	s.update(func(st *State) bool {
		if st.TargetLang == code {
			return false
		}
		st.TargetLang = code
		return true
	})
}

// CanSwap: a swap needs a translation, or both buffers empty. Source text
// without a translation stays where it is.
func (st State) CanSwap() bool {
	return st.TargetText != "" || (st.SourceText == "" && st.TargetText == "")
}

// Swap exchanges texts and languages in one step. Returns false when refused.
func (s *Store) Swap() bool {
	return s.update(func(st *State) bool {
		if !st.CanSwap() {
			return false
		}
		st.SourceText, st.TargetText = st.TargetText, st.SourceText
		st.SourceLang, st.TargetLang = st.TargetLang, st.SourceLang
		return true
	})
}
