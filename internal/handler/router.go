package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	custommiddleware "github.com/mmeshcher/vizcaya-system/internal/middleware"
)

// SetupRouter настраивает HTTP-маршруты и middleware сервиса витрины.
func (h *Handler) SetupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(custommiddleware.GzipMiddleware)
	r.Use(custommiddleware.Logger(h.logger))
	r.Use(h.session.Middleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", h.GetProducts)
		r.Get("/categories", h.GetCategories)
		r.Get("/payment-info", h.GetPaymentInfo)

		r.Get("/cart", h.GetCart)
		r.Post("/cart/items", h.SetQuantity)

		r.Post("/orders/product", h.OrderSingle)

		r.Post("/checkout", h.OpenCheckout)
		r.Post("/checkout/submit", h.SubmitCheckout)
		r.Post("/checkout/cancel", h.CancelCheckout)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	return r
}
