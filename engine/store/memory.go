// Package store provides Store implementations.
package store

import (
	"context"
	"sync"

	"github.com/beaverschoice/supply-engine/engine"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

// Memory keeps the ledger as one id-ordered slice: an append-only log,
// never a live mutable map of balances.
type Memory struct {
	mu      sync.RWMutex
	entries []engine.Entry
	nextID  engine.EntryID
}

func NewMemory() *Memory {
	return &Memory{nextID: 1}
}

// Append assigns the next monotonic id and stores the entry. Append-only.
func (m *Memory) Append(_ context.Context, e engine.Entry) (engine.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.appendLocked(e), nil
}

func (m *Memory) appendLocked(e engine.Entry) engine.Entry {
	e.ID = m.nextID
	m.nextID++
	m.entries = append(m.entries, e)
	return e
}

func (m *Memory) Load(_ context.Context, itemName string, asOf engine.Date) ([]engine.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []engine.Entry
	for _, e := range m.entries {
		if e.ItemName == itemName && !e.CashOnly() && e.OccurredOn.BeforeOrEqual(asOf) {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *Memory) LoadAll(_ context.Context, asOf engine.Date) ([]engine.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []engine.Entry
	for _, e := range m.entries {
		if e.OccurredOn.BeforeOrEqual(asOf) {
			result = append(result, e)
		}
	}
	return result, nil
}

// =============================================================================
// TRANSACTIONAL MEMORY STORE
// =============================================================================

// TxMemory wraps Memory with transaction support.
type TxMemory struct {
	*Memory
}

func NewTxMemory() *TxMemory {
	return &TxMemory{Memory: NewMemory()}
}

// WithTx executes fn under the write lock, simulated with a snapshot plus
// rollback on error. Holding the lock for the whole read-decide-append
// sequence is what serializes concurrent fulfillments.
func (tm *TxMemory) WithTx(ctx context.Context, fn func(engine.Store) error) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	savedLen := len(tm.entries)
	savedID := tm.nextID

	if err := fn(&txMemoryView{parent: tm}); err != nil {
		// Rollback: entries are append-only, so truncating restores state.
		tm.entries = tm.entries[:savedLen]
		tm.nextID = savedID
		return err
	}
	return nil
}

// txMemoryView gives fn access to the already-locked parent.
type txMemoryView struct {
	parent *TxMemory
}

func (tv *txMemoryView) Append(_ context.Context, e engine.Entry) (engine.Entry, error) {
	return tv.parent.appendLocked(e), nil
}

func (tv *txMemoryView) Load(_ context.Context, itemName string, asOf engine.Date) ([]engine.Entry, error) {
	var result []engine.Entry
	for _, e := range tv.parent.entries {
		if e.ItemName == itemName && !e.CashOnly() && e.OccurredOn.BeforeOrEqual(asOf) {
			result = append(result, e)
		}
	}
	return result, nil
}

func (tv *txMemoryView) LoadAll(_ context.Context, asOf engine.Date) ([]engine.Entry, error) {
	var result []engine.Entry
	for _, e := range tv.parent.entries {
		if e.OccurredOn.BeforeOrEqual(asOf) {
			result = append(result, e)
		}
	}
	return result, nil
}
