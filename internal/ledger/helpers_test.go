package ledger_test

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/saadjs/lifelog/internal/clock"
	"github.com/saadjs/lifelog/internal/id"
	"github.com/saadjs/lifelog/internal/ledger"
	"github.com/saadjs/lifelog/internal/storage"
)

// Wednesday, 2024-01-10 12:00 local time.
var wednesdayNoon = time.Date(2024, 1, 10, 12, 0, 0, 0, time.Local)

func newDeps(t *testing.T, now time.Time) ledger.Deps {
	t.Helper()
	return ledger.Deps{
		Store: storage.NewMemoryStore(),
		Clock: clock.Fixed{T: now},
		IDs:   &id.Sequence{Prefix: "rec-"},
		Log:   zaptest.NewLogger(t),
	}
}

type failingStore struct {
	*storage.MemoryStore
}

func (failingStore) Save(string, []byte) error {
	return errors.New("disk full")
}
