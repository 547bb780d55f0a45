package service

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
)

func randIntn(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}

func randShuffle(n int, swap func(i, j int)) {
	rngMu.Lock()
	defer rngMu.Unlock()
	rng.Shuffle(n, swap)
}

// newGameID generates a short game id for callers that do not supply one.
func newGameID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}
