package id

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator creates record identifiers that are never reused.
type Generator interface {
	New() string
}

type UUID struct{}

func (UUID) New() string {
	return uuid.NewString()
}

// Sequence hands out Prefix+"1", Prefix+"2", ... and is meant for tests.
type Sequence struct {
	Prefix string
	n      atomic.Int64
}

func (s *Sequence) New() string {
	return s.Prefix + strconv.FormatInt(s.n.Add(1), 10)
}
