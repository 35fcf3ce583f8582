// Package message формирует тексты заказов для исходящей ссылки WhatsApp.
//
// Формат сообщений зафиксирован: принимающая сторона ожидает ровно такой
// шаблон, поэтому перевод строк, эмодзи и пустые строки воспроизводятся
// байт в байт.
package message

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmeshcher/vizcaya-system/internal/model"
	"github.com/mmeshcher/vizcaya-system/internal/validation"
)

// ErrInvalidQuantity возвращается при попытке оформить заказ с количеством
// меньше одного бульто. Сообщение в этом случае не формируется.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// SingleItemOrder формирует текст заказа одного товара. Блок данных клиента
// и примечание о способе оплаты добавляются, только если переданы данные
// покупателя.
func SingleItemOrder(p model.Product, quantity int, customer *model.CustomerInfo) (string, error) {
	if !validation.IsValidQuantity(quantity) {
		return "", ErrInvalidQuantity
	}

	customerBlock := ""
	if customer != nil {
		customerBlock = fmt.Sprintf(
			"\n👤 *Datos del cliente:*\n• Nombre: %s\n• Cédula: %s\n• Teléfono: %s\n• Dirección: %s\n\n💳 *Método de pago:* Pago Móvil\n",
			customer.FullName, customer.Cedula, customer.Phone, customer.Address,
		)
	}

	return fmt.Sprintf(
		"¡Hola! Me interesa hacer un pedido:\n\n"+
			"📦 *Producto:* %s\n"+
			"📏 *Presentación:* %s x %d unidades\n"+
			"📊 *Cantidad:* %d bulto(s)\n"+
			"💰 *Total:* $%s USD\n\n"+
			"%s\n\n"+
			"¿Pueden confirmar disponibilidad y procesar mi pedido?",
		p.Name, p.Weight, p.UnitsPerBulk, quantity,
		FormatUSD(p.PriceCents*int64(quantity)), customerBlock,
	), nil
}

// CartOrder формирует текст заказа всей корзины: список позиций, итоги в
// долларах и боливарах, данные покупателя и способ оплаты. Данные покупателя
// обязательны: вызов происходит только после отправки формы оформления.
func CartOrder(lines []model.CartLine, totals model.CartTotals, customer model.CustomerInfo) string {
	items := make([]string, 0, len(lines))
	for _, l := range lines {
		items = append(items, fmt.Sprintf(
			"• %s - %d bulto(s) - $%s",
			l.Product.Name, l.Quantity, FormatUSD(l.TotalCents()),
		))
	}

	return fmt.Sprintf(
		"¡Hola! Me interesa hacer este pedido completo:\n\n"+
			"📦 *Productos:*\n%s\n\n"+
			"💰 *Total:* $%s USD\n"+
			"💰 *Total Bs:* Bs. %s\n\n"+
			"👤 *Datos del cliente:*\n"+
			"• Nombre: %s\n"+
			"• Cédula: %s\n"+
			"• Teléfono: %s\n"+
			"• Dirección: %s\n\n"+
			"💳 *Método de pago:* Pago Móvil\n\n"+
			"¿Pueden confirmar disponibilidad y procesar mi pedido?",
		strings.Join(items, "\n"),
		FormatUSD(totals.TotalUSDCents), FormatBs(totals.TotalBs),
		customer.FullName, customer.Cedula, customer.Phone, customer.Address,
	)
}

// FormatUSD форматирует сумму в центах как десятичную строку с двумя знаками.
func FormatUSD(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}
	s := fmt.Sprintf("%d.%02d", cents/100, cents%100)
	if neg {
		return "-" + s
	}
	return s
}

// FormatBs форматирует сумму в боливарах по венесуэльской локали: точка как
// разделитель тысяч, запятая как десятичный разделитель, два знака после
// запятой ("4.818,00").
func FormatBs(amount decimal.Decimal) string {
	s := amount.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	b.Grow(len(intPart) + len(intPart)/3 + len(fracPart) + 2)
	if neg {
		b.WriteByte('-')
	}

	rem := len(intPart) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(intPart[:rem])
	for i := rem; i < len(intPart); i += 3 {
		b.WriteByte('.')
		b.WriteString(intPart[i : i+3])
	}

	b.WriteByte(',')
	b.WriteString(fracPart)

	return b.String()
}

const upperhex = "0123456789ABCDEF"

// EncodeURIComponent кодирует текст для подстановки в query-параметр ссылки
// так же, как одноимённая функция JavaScript: без экранирования остаются
// латинские буквы, цифры и символы -_.!~*'(), всё остальное кодируется
// побайтно в UTF-8. Стандартный url.QueryEscape здесь не подходит: он
// экранирует !*'() и заменяет пробел на "+", ломая байтовую совместимость
// ссылки.
func EncodeURIComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0F])
	}

	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
