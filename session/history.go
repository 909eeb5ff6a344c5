package session

import (
	"sync"

	"github.com/raushankrgupta/tryon-studio/models"
)

// HistoryLedger is the session-scoped log of past try-on results, newest
// first. It is append-only: no update, delete or reorder operations exist.
type HistoryLedger struct {
	mu      sync.Mutex
	results []models.Result
}

// Prepend adds a result at the front of the ledger
func (l *HistoryLedger) Prepend(r models.Result) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.results = append([]models.Result{r}, l.results...)
}

// All returns a copy of the ledger, newest first. Never returns nil.
func (l *HistoryLedger) All() []models.Result {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Result, len(l.results))
	copy(out, l.results)
	return out
}

// Len returns the number of recorded results
func (l *HistoryLedger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.results)
}
