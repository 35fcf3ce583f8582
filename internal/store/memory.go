package store

import (
	"context"
	"sync"

	"github.com/mmeshcher/vizcaya-system/internal/model"
)

// Memory реализует хранилище состояний в памяти процесса. Используется по умолчанию:
// корзина посетителя не переживает перезапуск и не сохраняется между
// сессиями.
type Memory struct {
	mu       sync.RWMutex
	sessions map[string]*State
}

// NewMemory создаёт пустое хранилище в памяти.
func NewMemory() *Memory {
	return &Memory{
		sessions: make(map[string]*State),
	}
}

// State возвращает состояние сессии, для неизвестной сессии — пустое состояние.
func (m *Memory) State(ctx context.Context, sessionID string) (*State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	st, ok := m.sessions[sessionID]
	if !ok {
		return NewState(), nil
	}

	return cloneState(st), nil
}

// Save сохраняет состояние сессии.
func (m *Memory) Save(ctx context.Context, sessionID string, st *State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[sessionID] = cloneState(st)
	return nil
}

// Delete удаляет состояние сессии.
func (m *Memory) Delete(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, sessionID)
	return nil
}

// cloneState копирует состояние, чтобы вызывающие не делили один леджер.
func cloneState(st *State) *State {
	res := NewState()
	for id, q := range st.Ledger {
		res.Ledger[id] = q
	}
	if st.Pending != nil {
		p := *st.Pending
		p.Lines = append([]model.CartLine(nil), st.Pending.Lines...)
		res.Pending = &p
	}
	return res
}
