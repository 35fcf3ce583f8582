// Package handler содержит HTTP-обработчики API сервиса витрины.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mmeshcher/vizcaya-system/internal/catalog"
	"github.com/mmeshcher/vizcaya-system/internal/message"
	"github.com/mmeshcher/vizcaya-system/internal/middleware"
	"github.com/mmeshcher/vizcaya-system/internal/model"
	"github.com/mmeshcher/vizcaya-system/internal/service"
)

// Уведомления витрины. Тексты фиксированы и показываются пользователю как есть.
var (
	noticeQuantityRequired = model.Notice{
		Title:       "Cantidad requerida",
		Description: "Debe seleccionar al menos 1 bulto para hacer el pedido",
		Severity:    model.NoticeWarning,
	}
	noticeOrderSent = model.Notice{
		Title:       "Pedido enviado",
		Description: "Su pedido ha sido enviado por WhatsApp. Le responderemos pronto.",
		Severity:    model.NoticeSuccess,
	}
)

// Service определяет контракт бизнес-логики, используемой HTTP-обработчиками.
type Service interface {
	Products(ctx context.Context, category model.Category) ([]model.Product, error)
	SetQuantity(ctx context.Context, sessionID, productID string, quantity int) (*service.CartView, error)
	Cart(ctx context.Context, sessionID string) (*service.CartView, error)
	OrderSingle(ctx context.Context, productID string, quantity int) (string, error)
	OpenCheckout(ctx context.Context, sessionID string) (*model.PendingOrder, error)
	SubmitCheckout(ctx context.Context, sessionID string, customer model.CustomerInfo) (string, error)
	CancelCheckout(ctx context.Context, sessionID string) error
	Rate() decimal.Decimal
}

// Handler реализует HTTP-обработчики API сервиса витрины.
type Handler struct {
	service Service
	logger  *zap.Logger
	session *middleware.SessionMiddleware
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов.
func NewHandler(s Service, logger *zap.Logger, session *middleware.SessionMiddleware) *Handler {
	return &Handler{
		service: s,
		logger:  logger,
		session: session,
	}
}

type productResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Image         string  `json:"image"`
	Weight        string  `json:"weight"`
	UnitsPerBulk  int     `json:"unitsPerBulk"`
	WeightPerBulk string  `json:"weightPerBulk"`
	Category      string  `json:"category"`
	PriceUSD      float64 `json:"priceUSD"`
}

func toProductResponse(p model.Product) productResponse {
	return productResponse{
		ID:            p.ID,
		Name:          p.Name,
		Image:         p.Image,
		Weight:        p.Weight,
		UnitsPerBulk:  p.UnitsPerBulk,
		WeightPerBulk: p.WeightPerBulk,
		Category:      string(p.Category),
		PriceUSD:      p.PriceUSD(),
	}
}

// GetProducts возвращает каталог, при необходимости отфильтрованный по категории.
func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	category := model.Category(r.URL.Query().Get("category"))

	products, err := h.service.Products(r.Context(), category)
	if err != nil {
		h.logger.Error("get products error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	resp := make([]productResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, toProductResponse(p))
	}

	h.writeJSON(w, resp)
}

// GetCategories возвращает список категорий для бокового меню.
func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, catalog.Categories())
}

// GetPaymentInfo возвращает статичные реквизиты оплаты Pago Móvil.
func (h *Handler) GetPaymentInfo(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, catalog.Payment())
}

type cartLineResponse struct {
	Product  productResponse `json:"product"`
	Quantity int             `json:"quantity"`
	TotalUSD float64         `json:"totalUSD"`
}

type cartResponse struct {
	Items      []cartLineResponse `json:"items"`
	TotalItems int                `json:"totalItems"`
	TotalUSD   float64            `json:"totalUSD"`
	TotalBs    string             `json:"totalBs"`
	Rate       string             `json:"rate"`
}

func toCartResponse(v *service.CartView, rate decimal.Decimal) cartResponse {
	items := make([]cartLineResponse, 0, len(v.Lines))
	for _, l := range v.Lines {
		items = append(items, cartLineResponse{
			Product:  toProductResponse(l.Product),
			Quantity: l.Quantity,
			TotalUSD: float64(l.TotalCents()) / 100,
		})
	}

	return cartResponse{
		Items:      items,
		TotalItems: v.Totals.TotalItems,
		TotalUSD:   float64(v.Totals.TotalUSDCents) / 100,
		TotalBs:    message.FormatBs(v.Totals.TotalBs),
		Rate:       rate.StringFixed(2),
	}
}

// GetCart возвращает корзину текущей сессии вместе с курсом пересчёта в
// боливары.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	view, err := h.service.Cart(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("get cart error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, toCartResponse(view, h.service.Rate()))
}

type setQuantityRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// SetQuantity сохраняет выбранное количество бульто для товара и возвращает
// пересчитанную корзину.
func (h *Handler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req setQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if req.ProductID == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	view, err := h.service.SetQuantity(r.Context(), sessionID, req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		h.logger.Error("set quantity error", zap.Error(err), zap.String("product", req.ProductID))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, toCartResponse(view, h.service.Rate()))
}

type singleOrderRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type orderResponse struct {
	WhatsAppURL string        `json:"whatsapp_url"`
	Notice      *model.Notice `json:"notice,omitempty"`
}

type noticeResponse struct {
	Notice model.Notice `json:"notice"`
}

// OrderSingle формирует ссылку заказа одного товара. Нулевое количество
// отклоняется с предупреждением, сообщение при этом не формируется.
func (h *Handler) OrderSingle(w http.ResponseWriter, r *http.Request) {
	var req singleOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	url, err := h.service.OrderSingle(r.Context(), req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, message.ErrInvalidQuantity) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(noticeResponse{Notice: noticeQuantityRequired})
			return
		}
		if errors.Is(err, service.ErrProductNotFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		h.logger.Error("single order error", zap.Error(err), zap.String("product", req.ProductID))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, orderResponse{WhatsAppURL: url})
}

// OpenCheckout снимает текущую корзину в оформляемый заказ. Пустая корзина —
// no-op: форма оформления для неё не показывается.
func (h *Handler) OpenCheckout(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	pending, err := h.service.OpenCheckout(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		h.logger.Error("open checkout error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, toCartResponse(&service.CartView{
		Lines:  pending.Lines,
		Totals: pending.Totals,
	}, h.service.Rate()))
}

// SubmitCheckout завершает оформление: формирует ссылку заказа всей корзины
// по снимку и очищает корзину.
func (h *Handler) SubmitCheckout(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var customer model.CustomerInfo
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	url, err := h.service.SubmitCheckout(r.Context(), sessionID, customer)
	if err != nil {
		if errors.Is(err, service.ErrIncompleteCustomerInfo) {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if errors.Is(err, service.ErrNoPendingOrder) {
			http.Error(w, http.StatusText(http.StatusConflict), http.StatusConflict)
			return
		}
		h.logger.Error("submit checkout error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	notice := noticeOrderSent
	h.writeJSON(w, orderResponse{WhatsAppURL: url, Notice: &notice})
}

// CancelCheckout отменяет оформление, сохраняя корзину.
func (h *Handler) CancelCheckout(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := h.service.CancelCheckout(r.Context(), sessionID); err != nil {
		h.logger.Error("cancel checkout error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
