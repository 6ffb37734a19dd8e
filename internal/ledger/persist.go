package ledger

import (
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/saadjs/lifelog/internal/clock"
	"github.com/saadjs/lifelog/internal/id"
	"github.com/saadjs/lifelog/internal/storage"
)

// Deps are the collaborators shared by every ledger. Zero values fall back to
// an in-memory store, the system clock, UUID ids and a no-op logger.
type Deps struct {
	Store storage.Store
	Clock clock.Clock
	IDs   id.Generator
	Log   *zap.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Store == nil {
		d.Store = storage.NewMemoryStore()
	}
	if d.Clock == nil {
		d.Clock = clock.System{}
	}
	if d.IDs == nil {
		d.IDs = id.UUID{}
	}
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	return d
}

// envelope mirrors the persisted layout {"state": ..., "version": N}.
type envelope[T any] struct {
	State   *T  `json:"state"`
	Version int `json:"version"`
}

const documentVersion = 0

type persister struct {
	store storage.Store
	key   string
	log   *zap.Logger
	err   error
}

func newPersister(d Deps, key string) persister {
	return persister{store: d.Store, key: key, log: d.Log.With(zap.String("document", key))}
}

// load decodes the stored document into dst. It reports false when the
// document is absent or unreadable; the caller then starts from defaults.
func load[T any](p *persister, dst *T) bool {
	raw, ok, err := p.store.Load(p.key)
	if err != nil {
		p.log.Warn("load document failed, using defaults", zap.Error(err))
		return false
	}
	if !ok {
		p.log.Debug("no stored document, using defaults")
		return false
	}
	state, err := decodeDocument[T](raw)
	if err != nil {
		p.log.Warn("stored document is corrupt, using defaults", zap.Error(err))
		return false
	}
	*dst = *state
	return true
}

func decodeDocument[T any](raw []byte) (*T, error) {
	var env envelope[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if env.State == nil {
		return nil, fmt.Errorf("decode document: missing state")
	}
	return env.State, nil
}

func encodeDocument[T any](state *T) ([]byte, error) {
	raw, err := json.Marshal(envelope[T]{State: state, Version: documentVersion})
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return raw, nil
}

// save writes the full document. A failure is logged and kept for PersistErr
// until the next successful write; the in-memory state stays authoritative.
func save[T any](p *persister, state *T) {
	raw, err := encodeDocument(state)
	if err == nil {
		err = p.store.Save(p.key, raw)
	}
	if err != nil {
		p.err = err
		p.log.Error("persist document failed", zap.Error(err))
		return
	}
	p.err = nil
	p.log.Debug("persisted document", zap.Int("bytes", len(raw)))
}

// lastErr is read under the owning ledger's mutex, the same one save runs
// under.
func (p *persister) lastErr() error {
	return p.err
}

func parseTimestamp(value string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	if t, err := time.Parse(clock.DateLayout, value); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func timestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}

func emptyIfNil[S ~[]E, E any](s S) S {
	if s == nil {
		return S{}
	}
	return s
}
