package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	custommiddleware "github.com/mmeshcher/dashboard-system/internal/middleware"
)

// SetupRouter настраивает HTTP-маршруты и middleware сервиса дашборда.
func (h *Handler) SetupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(custommiddleware.GzipMiddleware)
	r.Use(custommiddleware.Logger(h.logger))

	r.Route("/api", func(r chi.Router) {
		r.Get("/dashboard", h.GetDashboard)

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", h.ListNotifications)
			r.Post("/", h.AddNotification)
			r.Delete("/", h.ClearNotifications)
			r.Post("/{id}/read", h.MarkNotificationRead)
		})

		r.Route("/messages", func(r chi.Router) {
			r.Get("/", h.ListMessages)
			r.Post("/", h.AddMessage)
			r.Delete("/", h.ClearMessages)
			r.Post("/{id}/read", h.MarkMessageRead)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", h.AddOrder)
			r.Delete("/{id}", h.RemoveOrder)
			r.Patch("/{id}/status", h.UpdateOrderStatus)
		})

		r.Post("/revenue", h.UpdateRevenue)

		r.Get("/sales", h.GetSales)
		r.Post("/sales", h.UpdateSales)

		r.Put("/search", h.SetSearch)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	return r
}
