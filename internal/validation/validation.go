// Package validation содержит функции валидации входных данных.
package validation

import (
	"strings"

	"github.com/mmeshcher/vizcaya-system/internal/model"
)

// IsValidQuantity проверяет, что количество бульто пригодно для заказа.
func IsValidQuantity(quantity int) bool {
	return quantity > 0
}

// IsCompleteCustomerInfo проверяет, что все обязательные поля покупателя
// заполнены. Поля из одних пробелов считаются пустыми.
func IsCompleteCustomerInfo(c model.CustomerInfo) bool {
	fields := []string{c.FullName, c.Cedula, c.Phone, c.Address}
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return false
		}
	}
	return true
}
