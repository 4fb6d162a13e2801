package analysisscheduler

import (
	"context"
	"sync"

	"github.com/gofrs/uuid"
)

type pendingAnalysis struct {
	id         uuid.UUID
	session    uuid.UUID
	cancelFunc context.CancelFunc
}

// pendingStore holds at most one pending analysis per file.
type pendingStore struct {
	pending map[string]pendingAnalysis
	mu      sync.Mutex
}

// set records the analysis for file and cancels the one it supersedes, if any.
func (p *pendingStore) set(file string, val pendingAnalysis) (superseded bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pending == nil {
		p.pending = make(map[string]pendingAnalysis)
	}

	if previous, ok := p.pending[file]; ok {
		previous.cancelFunc()
		superseded = true
	}
	p.pending[file] = val
	return superseded
}

// finish removes the entry for file if it still belongs to the given analysis.
func (p *pendingStore) finish(file string, id uuid.UUID) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if val, ok := p.pending[file]; ok && val.id == id {
		delete(p.pending, file)
	}
}

// cancel cancels the analysis with the given id. Returns false if it is not pending.
func (p *pendingStore) cancel(id uuid.UUID) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	for file, val := range p.pending {
		if val.id == id {
			val.cancelFunc()
			delete(p.pending, file)
			return true
		}
	}
	return false
}

// cleanSession cancels every analysis requested by the given IDE session.
func (p *pendingStore) cleanSession(session uuid.UUID) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	cancelled := 0
	for file, val := range p.pending {
		if val.session == session {
			val.cancelFunc()
			delete(p.pending, file)
			cancelled++
		}
	}
	return cancelled
}

func (p *pendingStore) cancelAll() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for file, val := range p.pending {
		val.cancelFunc()
		delete(p.pending, file)
	}
}

func (p *pendingStore) len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pending)
}
