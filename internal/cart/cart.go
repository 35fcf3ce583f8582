// Package cart реализует леджер количеств и агрегацию корзины.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/mmeshcher/vizcaya-system/internal/model"
)

// Ledger хранит выбранное количество бульто по идентификатору товара.
// Нулевое количество означает «не в корзине» и исключается из производных
// представлений. Значения никогда не бывают отрицательными.
type Ledger map[string]int

// NewLedger создаёт пустой леджер.
func NewLedger() Ledger {
	return make(Ledger)
}

// Set сохраняет количество для товара. Отрицательные значения приводятся к нулю.
func (l Ledger) Set(productID string, quantity int) {
	if quantity < 0 {
		quantity = 0
	}
	l[productID] = quantity
}

// Quantity возвращает количество для товара, 0 — если товар не выбран.
func (l Ledger) Quantity(productID string) int {
	return l[productID]
}

// Lines выводит позиции корзины из каталога и леджера: только товары с
// количеством больше нуля, в порядке каталога (а не в порядке добавления).
func Lines(products []model.Product, ledger Ledger) []model.CartLine {
	lines := make([]model.CartLine, 0, len(ledger))
	for _, p := range products {
		if q := ledger.Quantity(p.ID); q > 0 {
			lines = append(lines, model.CartLine{Product: p, Quantity: q})
		}
	}
	return lines
}

// Totals вычисляет итоги корзины по позициям и курсу. Сумма в боливарах
// считается из точной суммы в центах, без предварительного округления.
// Пустая корзина даёт нулевые итоги.
func Totals(lines []model.CartLine, rate decimal.Decimal) model.CartTotals {
	var t model.CartTotals
	for _, l := range lines {
		t.TotalItems += l.Quantity
		t.TotalUSDCents += l.TotalCents()
	}

	usd := decimal.NewFromInt(t.TotalUSDCents).Div(decimal.NewFromInt(100))
	t.TotalBs = usd.Mul(rate)

	return t
}
