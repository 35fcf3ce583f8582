// Package model содержит доменные сущности витрины Alimentos Vizcaya.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category описывает категорию товара каталога.
type Category string

const (
	CategoryAll        Category = "all"
	CategoryLegumbres  Category = "legumbres"
	CategoryCereales   Category = "cereales"
	CategoryEspeciales Category = "especiales"
)

// Product описывает товар каталога. Цена хранится в центах США за один бульто.
type Product struct {
	ID            string
	Name          string
	Image         string
	Weight        string
	UnitsPerBulk  int
	WeightPerBulk string
	Category      Category
	PriceCents    int64
}

// PriceUSD возвращает цену за бульто в долларах.
func (p Product) PriceUSD() float64 {
	return float64(p.PriceCents) / 100
}

// CartLine описывает позицию корзины: товар и выбранное количество бульто.
// Позиции не хранятся, а каждый раз выводятся из каталога и леджера.
type CartLine struct {
	Product  Product
	Quantity int
}

// TotalCents возвращает стоимость позиции в центах.
func (l CartLine) TotalCents() int64 {
	return l.Product.PriceCents * int64(l.Quantity)
}

// CartTotals содержит итоги корзины. TotalBs вычисляется из точной суммы
// в центах до какого-либо округления.
type CartTotals struct {
	TotalItems    int
	TotalUSDCents int64
	TotalBs       decimal.Decimal
}

// CustomerInfo содержит данные покупателя, вводимые при оформлении заказа.
// Данные живут только между открытием формы и отправкой сообщения.
type CustomerInfo struct {
	FullName string `json:"fullName"`
	Cedula   string `json:"cedula"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// PendingOrder содержит снимок корзины, сделанный в момент запроса полного оформления.
// Правки леджера после открытия формы не влияют на оформляемый заказ.
type PendingOrder struct {
	Lines     []CartLine `json:"lines"`
	Totals    CartTotals `json:"totals"`
	CreatedAt time.Time  `json:"created_at"`
}

// NoticeSeverity описывает уровень пользовательского уведомления.
type NoticeSeverity string

const (
	NoticeWarning NoticeSeverity = "warning"
	NoticeSuccess NoticeSeverity = "success"
)

// Notice описывает пользовательское уведомление (toast) витрины.
type Notice struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Severity    NoticeSeverity `json:"severity"`
}

// PaymentInfo описывает статичные реквизиты оплаты Pago Móvil.
type PaymentInfo struct {
	Method string `json:"method"`
	Bank   string `json:"bank"`
	Phone  string `json:"phone"`
	Cedula string `json:"cedula"`
	Holder string `json:"holder"`
}
