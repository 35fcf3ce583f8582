// Package whatsapp строит исходящие ссылки на эндпоинт обмена сообщениями.
package whatsapp

import (
	"fmt"
	"strings"

	"github.com/mmeshcher/vizcaya-system/internal/message"
)

const defaultBaseURL = "https://wa.me"

// Link строит ссылки вида <base>/<phone>?text=<encoded> для фиксированного
// номера получателя. Номер и базовый адрес — статичная конфигурация, не
// пользовательский ввод.
type Link struct {
	baseURL string
	phone   string
}

// NewLink создаёт построитель ссылок для указанного номера получателя.
// Пустой baseURL заменяется на https://wa.me.
func NewLink(baseURL, phone string) *Link {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Link{
		baseURL: strings.TrimRight(baseURL, "/"),
		phone:   phone,
	}
}

// Order возвращает ссылку отправки готового текста заказа. Текст кодируется
// для безопасной подстановки в query-параметр.
func (l *Link) Order(text string) string {
	return fmt.Sprintf("%s/%s?text=%s", l.baseURL, l.phone, message.EncodeURIComponent(text))
}
