// Package store хранит состояние корзины посетителя между запросами.
package store

import (
	"context"

	"github.com/mmeshcher/vizcaya-system/internal/cart"
	"github.com/mmeshcher/vizcaya-system/internal/model"
)

// State описывает состояние корзины одной сессии: леджер количеств и, если открыта
// форма оформления, снимок оформляемого заказа. Наличие Pending означает
// состояние CheckoutOpen, его отсутствие — Idle.
type State struct {
	Ledger  cart.Ledger         `json:"ledger"`
	Pending *model.PendingOrder `json:"pending,omitempty"`
}

// NewState создаёт пустое состояние с инициализированным леджером.
func NewState() *State {
	return &State{Ledger: cart.NewLedger()}
}

// Store описывает контракт хранилища состояний сессий. Отсутствующая сессия
// возвращается как пустое состояние, никогда как nil.
type Store interface {
	State(ctx context.Context, sessionID string) (*State, error)
	Save(ctx context.Context, sessionID string, st *State) error
	Delete(ctx context.Context, sessionID string) error
}
