// Package service реализует бизнес-логику оформления оптовых заказов.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmeshcher/vizcaya-system/internal/cart"
	"github.com/mmeshcher/vizcaya-system/internal/catalog"
	"github.com/mmeshcher/vizcaya-system/internal/message"
	"github.com/mmeshcher/vizcaya-system/internal/model"
	"github.com/mmeshcher/vizcaya-system/internal/store"
	"github.com/mmeshcher/vizcaya-system/internal/validation"
)

// ErrProductNotFound возвращается для неизвестного идентификатора товара.
var (
	ErrProductNotFound = errors.New("product not found")
	// ErrEmptyCart возвращается при попытке оформить пустую корзину.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrNoPendingOrder возвращается, если форма оформления не открыта.
	ErrNoPendingOrder = errors.New("no pending order")
	// ErrIncompleteCustomerInfo возвращается при незаполненных полях покупателя.
	ErrIncompleteCustomerInfo = errors.New("incomplete customer info")
)

// Catalog описывает контракт источника каталога, используемый сервисом.
type Catalog interface {
	Products(ctx context.Context) ([]model.Product, error)
}

// Linker строит исходящую ссылку для готового текста заказа.
type Linker interface {
	Order(text string) string
}

// CartView описывает производное представление корзины: позиции и итоги,
// пересчитанные из текущего состояния леджера.
type CartView struct {
	Lines  []model.CartLine
	Totals model.CartTotals
}

// Service содержит бизнес-логику витрины.
type Service struct {
	catalog Catalog
	store   store.Store
	link    Linker
	rate    decimal.Decimal
}

// NewService создаёт сервис с указанными каталогом, хранилищем сессий,
// построителем ссылок и курсом доллара к боливару.
func NewService(c Catalog, s store.Store, link Linker, rate decimal.Decimal) *Service {
	return &Service{
		catalog: c,
		store:   s,
		link:    link,
		rate:    rate,
	}
}

// Products возвращает каталог, отфильтрованный по категории.
func (s *Service) Products(ctx context.Context, category model.Category) ([]model.Product, error) {
	products, err := s.catalog.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return catalog.Filter(products, category), nil
}

// SetQuantity сохраняет количество бульто для товара в леджере сессии и
// возвращает пересчитанную корзину. Отрицательные значения приводятся к нулю,
// повторная установка того же количества ничего не меняет.
func (s *Service) SetQuantity(ctx context.Context, sessionID, productID string, quantity int) (*CartView, error) {
	products, err := s.catalog.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	if _, ok := findProduct(products, productID); !ok {
		return nil, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	}

	st, err := s.store.State(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session state: %w", err)
	}

	st.Ledger.Set(productID, quantity)

	if err := s.store.Save(ctx, sessionID, st); err != nil {
		return nil, fmt.Errorf("save session state: %w", err)
	}

	return s.view(products, st), nil
}

// Cart возвращает позиции и итоги корзины, пересчитанные из текущего леджера.
func (s *Service) Cart(ctx context.Context, sessionID string) (*CartView, error) {
	products, err := s.catalog.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	st, err := s.store.State(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session state: %w", err)
	}

	return s.view(products, st), nil
}

// OrderSingle формирует ссылку заказа одного товара. Количество меньше одного
// бульто отклоняется без формирования сообщения.
func (s *Service) OrderSingle(ctx context.Context, productID string, quantity int) (string, error) {
	products, err := s.catalog.Products(ctx)
	if err != nil {
		return "", fmt.Errorf("load catalog: %w", err)
	}

	p, ok := findProduct(products, productID)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	}

	text, err := message.SingleItemOrder(p, quantity, nil)
	if err != nil {
		return "", err
	}

	return s.link.Order(text), nil
}

// OpenCheckout делает снимок текущей корзины для оформления. Повторное
// открытие заменяет прежний снимок. Пустая корзина оформлению не подлежит.
func (s *Service) OpenCheckout(ctx context.Context, sessionID string) (*model.PendingOrder, error) {
	products, err := s.catalog.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	st, err := s.store.State(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session state: %w", err)
	}

	lines := cart.Lines(products, st.Ledger)
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	pending := &model.PendingOrder{
		Lines:     lines,
		Totals:    cart.Totals(lines, s.rate),
		CreatedAt: time.Now(),
	}

	st.Pending = pending
	if err := s.store.Save(ctx, sessionID, st); err != nil {
		return nil, fmt.Errorf("save session state: %w", err)
	}

	return pending, nil
}

// SubmitCheckout формирует ссылку заказа всей корзины по снимку, сделанному
// при открытии формы, и очищает леджер и снимок. Правки корзины после
// открытия формы на оформляемый заказ не влияют.
func (s *Service) SubmitCheckout(ctx context.Context, sessionID string, customer model.CustomerInfo) (string, error) {
	if !validation.IsCompleteCustomerInfo(customer) {
		return "", ErrIncompleteCustomerInfo
	}

	st, err := s.store.State(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("load session state: %w", err)
	}

	if st.Pending == nil {
		return "", ErrNoPendingOrder
	}

	text := message.CartOrder(st.Pending.Lines, st.Pending.Totals, customer)
	url := s.link.Order(text)

	st.Ledger = cart.NewLedger()
	st.Pending = nil
	if err := s.store.Save(ctx, sessionID, st); err != nil {
		return "", fmt.Errorf("save session state: %w", err)
	}

	return url, nil
}

// CancelCheckout отменяет оформление: снимок удаляется, леджер сохраняется.
func (s *Service) CancelCheckout(ctx context.Context, sessionID string) error {
	st, err := s.store.State(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("load session state: %w", err)
	}

	if st.Pending == nil {
		return nil
	}

	st.Pending = nil
	if err := s.store.Save(ctx, sessionID, st); err != nil {
		return fmt.Errorf("save session state: %w", err)
	}

	return nil
}

// Rate возвращает настроенный курс доллара к боливару.
func (s *Service) Rate() decimal.Decimal {
	return s.rate
}

func (s *Service) view(products []model.Product, st *store.State) *CartView {
	lines := cart.Lines(products, st.Ledger)
	return &CartView{
		Lines:  lines,
		Totals: cart.Totals(lines, s.rate),
	}
}

func findProduct(products []model.Product, id string) (model.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}
