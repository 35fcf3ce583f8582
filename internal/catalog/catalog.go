// Package catalog содержит статичный каталог товаров витрины.
package catalog

import (
	"context"

	"github.com/mmeshcher/vizcaya-system/internal/model"
)

// products задаёт фиксированный ассортимент оптовой витрины. Порядок элементов
// определяет порядок выдачи каталога и позиций корзины.
var products = []model.Product{
	{
		ID:            "1",
		Name:          "Arveja Verde Partida Vizcaya",
		Image:         "arveja-verde.jpg",
		Weight:        "500gm",
		UnitsPerBulk:  24,
		WeightPerBulk: "12kgrs",
		Category:      model.CategoryLegumbres,
		PriceCents:    4500,
	},
	{
		ID:            "2",
		Name:          "NutriAvena Avena en Hojuelas",
		Image:         "avena-hojuelas.jpg",
		Weight:        "400grs",
		UnitsPerBulk:  24,
		WeightPerBulk: "9.600kgrs",
		Category:      model.CategoryCereales,
		PriceCents:    3850,
	},
	{
		ID:            "3",
		Name:          "Caraotas Negras Vizcaya",
		Image:         "caraotas-negras.jpg",
		Weight:        "500grs",
		UnitsPerBulk:  24,
		WeightPerBulk: "12kgrs",
		Category:      model.CategoryLegumbres,
		PriceCents:    4200,
	},
	{
		ID:            "4",
		Name:          "Maíz de Cotufa Vizcaya",
		Image:         "maiz-cotufa.jpg",
		Weight:        "500grs",
		UnitsPerBulk:  24,
		WeightPerBulk: "12kgrs",
		Category:      model.CategoryCereales,
		PriceCents:    3500,
	},
	{
		ID:            "5",
		Name:          "Avena Vizcaya en Hojuelas 200grs",
		Image:         "avena-hojuelas.jpg",
		Weight:        "200grs",
		UnitsPerBulk:  24,
		WeightPerBulk: "4.800kgrs",
		Category:      model.CategoryCereales,
		PriceCents:    2800,
	},
	{
		ID:            "6",
		Name:          "Avena Vizcaya en Hojuelas 400grs",
		Image:         "avena-hojuelas.jpg",
		Weight:        "400grs",
		UnitsPerBulk:  24,
		WeightPerBulk: "9.600kgrs",
		Category:      model.CategoryCereales,
		PriceCents:    3850,
	},
	{
		ID:            "7",
		Name:          "Saco Avena en Hojuelas Vizcaya 5KG",
		Image:         "avena-saco.jpg",
		Weight:        "5KG",
		UnitsPerBulk:  1,
		WeightPerBulk: "5KG",
		Category:      model.CategoryEspeciales,
		PriceCents:    1500,
	},
	{
		ID:            "8",
		Name:          "Saco de Avena en Hojuelas Vizcaya 10KG",
		Image:         "avena-saco.jpg",
		Weight:        "10KG",
		UnitsPerBulk:  1,
		WeightPerBulk: "10KG",
		Category:      model.CategoryEspeciales,
		PriceCents:    2800,
	},
}

// CategoryInfo описывает категорию для бокового меню витрины.
type CategoryInfo struct {
	ID   model.Category `json:"id"`
	Name string         `json:"name"`
}

var categories = []CategoryInfo{
	{ID: model.CategoryAll, Name: "Todos los Productos"},
	{ID: model.CategoryLegumbres, Name: "Legumbres"},
	{ID: model.CategoryCereales, Name: "Cereales"},
	{ID: model.CategoryEspeciales, Name: "Presentaciones Especiales"},
}

var paymentInfo = model.PaymentInfo{
	Method: "Pago Móvil",
	Bank:   "Banco de Venezuela",
	Phone:  "0412-1234567",
	Cedula: "V-12345678",
	Holder: "Alimentos Vizcaya C.A.",
}

// Static возвращает статичный каталог, реализующий контракт service.Catalog.
type Static struct{}

// NewStatic создаёт статичный каталог.
func NewStatic() *Static {
	return &Static{}
}

// Products возвращает копию полного списка товаров в порядке каталога.
func (s *Static) Products(ctx context.Context) ([]model.Product, error) {
	res := make([]model.Product, len(products))
	copy(res, products)
	return res, nil
}

// Filter возвращает подпоследовательность товаров выбранной категории,
// сохраняя порядок каталога. Категория "all" (или пустая) возвращает всё.
func Filter(items []model.Product, category model.Category) []model.Product {
	if category == "" || category == model.CategoryAll {
		return items
	}

	res := make([]model.Product, 0, len(items))
	for _, p := range items {
		if p.Category == category {
			res = append(res, p)
		}
	}
	return res
}

// Categories возвращает список категорий для бокового меню.
func Categories() []CategoryInfo {
	res := make([]CategoryInfo, len(categories))
	copy(res, categories)
	return res
}

// Payment возвращает статичные реквизиты оплаты.
func Payment() model.PaymentInfo {
	return paymentInfo
}
