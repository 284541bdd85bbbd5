// filepath: internal/store/ids.go
package store

import (
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Generator produces entity ids and client access codes. NextID must
// return values that are unique and lexicographically increasing for the
// lifetime of a store: listing queries order rows by id, so the id order
// IS the insertion order.
type Generator interface {
	NextID() string
	NextAccessCode() string
}

const (
	accessCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	accessCodeLength   = 8
)

// ULIDGenerator is the production Generator. Monotonic entropy keeps ids
// strictly increasing even within a single millisecond.
type ULIDGenerator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{entropy: ulid.Monotonic(rand.Reader, 0)}
}

func (g *ULIDGenerator) NextID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy).String()
}

// NextAccessCode returns an 8-character uppercase alphanumeric code.
// Uniqueness is the caller's problem; the store checks against existing
// clients and retries on collision.
func (g *ULIDGenerator) NextAccessCode() string {
	buf := make([]byte, accessCodeLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the OS entropy source is broken;
		// nothing sensible to fall back to.
		panic(fmt.Sprintf("crypto/rand unavailable: %v", err))
	}
	for i, b := range buf {
		buf[i] = accessCodeAlphabet[int(b)%len(accessCodeAlphabet)]
	}
	return string(buf)
}

// SequenceGenerator is a deterministic Generator for tests. Ids are
// zero-padded so their lexical order matches their numeric order.
type SequenceGenerator struct {
	mu    sync.Mutex
	ids   int
	codes int
}

func (g *SequenceGenerator) NextID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ids++
	return fmt.Sprintf("id-%08d", g.ids)
}

func (g *SequenceGenerator) NextAccessCode() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.codes++
	return fmt.Sprintf("CODE%04d", g.codes)
}
