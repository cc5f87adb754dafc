package session

import (
	"context"
	"gf-tr/models"
	"log/slog"
	"sync"
)

type Translator interface {
	Translate(ctx context.Context, text, source, target string) (models.Translation, error)
}

// Translation fills the target buffer from the source buffer.
type Translation struct {
	logger *slog.Logger
	store  *Store
	client Translator
	mu     sync.Mutex
	seq    uint64 // last issued request
	wg     sync.WaitGroup
	// OnError is called when the newest request fails; may be nil
	OnError func(err error)
}

func NewTranslation(logger *slog.Logger, store *Store, client Translator) *Translation {
	return &Translation{
		logger: logger,
		store:  store,
		client: client,
	}
}

// Translate issues at most one request. Empty source text clears the target
// without a request. Failures are logged and leave the target untouched;
// a response that arrives after a newer request was issued, or after the
// source was emptied, is dropped.
func (t *Translation) Translate(ctx context.Context) error {
	st := t.store.State()
	seq := t.next()
	if st.SourceText == "" {
		t.store.SetTargetText("")
		return nil
	}
	resp, err := t.client.Translate(ctx, st.SourceText, st.SourceLang, st.TargetLang)
	if err != nil {
		t.mu.Lock()
		stale := seq != t.seq
		t.mu.Unlock()
		t.logger.Error("failed to translate", "error", err, "langpair", models.LangPair(st.SourceLang, st.TargetLang), "stale", stale)
		if !stale && t.OnError != nil {
			t.OnError(err)
		}
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if seq != t.seq {
		t.logger.Debug("dropping stale translation", "seq", seq, "latest", t.seq)
		return nil
	}
	if !t.store.setTranslation(resp.Text) {
		t.logger.Debug("dropping translation for emptied source", "seq", seq)
	}
	return nil
}

// next invalidates every request issued so far
func (t *Translation) next() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seq++
	return t.seq
}

// Go runs Translate on its own goroutine.
func (t *Translation) Go(ctx context.Context) {
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		_ = t.Translate(ctx)
	}()
}

// Wait blocks until every request started with Go has finished.
func (t *Translation) Wait() {
	t.wg.Wait()
}
