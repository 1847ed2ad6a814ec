// Package handler содержит HTTP-обработчики API сервиса дашборда.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mmeshcher/dashboard-system/internal/model"
	"github.com/mmeshcher/dashboard-system/internal/validation"
)

// Store определяет контракт хранилища состояния, используемый HTTP-обработчиками.
type Store interface {
	Snapshot() model.Snapshot

	AddNotification(message string, kind model.NotificationKind) model.Notification
	MarkNotificationRead(id string)
	ClearNotifications()
	FilterNotifications(mode model.FilterMode) []model.Notification
	SortNotifications(order model.SortOrder, items []model.Notification) []model.Notification

	AddMessage(sender, content, avatar string) model.Message
	MarkMessageRead(id string)
	ClearMessages()
	FilterMessages(mode model.FilterMode) []model.Message
	SortMessages(order model.SortOrder, items []model.Message) []model.Message

	AddOrder(status model.OrderStatus) model.Order
	RemoveOrder(id string, status model.OrderStatus)
	UpdateOrderStatus(id string, newStatus model.OrderStatus)

	UpdateRevenue(newTotal decimal.Decimal)
	UpdateSalesData(today, yesterday []float64)
	SalesForRange(r model.SalesRange) (model.SalesSeries, bool)

	SetSearchQuery(query string)
}

// Handler реализует HTTP-обработчики API сервиса дашборда.
type Handler struct {
	store  Store
	logger *zap.Logger
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов.
func NewHandler(s Store, logger *zap.Logger) *Handler {
	return &Handler{
		store:  s,
		logger: logger,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response", zap.Error(err))
	}
}

// GetDashboard возвращает полный снимок состояния дашборда.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.Snapshot())
}

type addNotificationRequest struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

// AddNotification добавляет новое уведомление.
func (h *Handler) AddNotification(w http.ResponseWriter, r *http.Request) {
	var req addNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if req.Message == "" || !validation.IsValidNotificationKind(req.Kind) {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	created := h.store.AddNotification(req.Message, model.NotificationKind(req.Kind))
	h.writeJSON(w, http.StatusCreated, created)
}

// ListNotifications возвращает отфильтрованную и, при необходимости,
// отсортированную проекцию уведомлений.
func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	mode, order, ok := projectionParams(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	items := h.store.FilterNotifications(mode)
	if order != "" {
		items = h.store.SortNotifications(order, items)
	}
	h.writeJSON(w, http.StatusOK, items)
}

// MarkNotificationRead помечает уведомление прочитанным.
// Отсутствующий идентификатор не является ошибкой.
func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	h.store.MarkNotificationRead(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusOK)
}

// ClearNotifications удаляет все уведомления.
func (h *Handler) ClearNotifications(w http.ResponseWriter, r *http.Request) {
	h.store.ClearNotifications()
	w.WriteHeader(http.StatusNoContent)
}

type addMessageRequest struct {
	Sender  string `json:"sender"`
	Content string `json:"content"`
	Avatar  string `json:"avatar,omitempty"`
}

// AddMessage добавляет новое входящее сообщение.
func (h *Handler) AddMessage(w http.ResponseWriter, r *http.Request) {
	var req addMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if req.Sender == "" || req.Content == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	created := h.store.AddMessage(req.Sender, req.Content, req.Avatar)
	h.writeJSON(w, http.StatusCreated, created)
}

// ListMessages возвращает отфильтрованную и, при необходимости,
// отсортированную проекцию сообщений.
func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	mode, order, ok := projectionParams(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	items := h.store.FilterMessages(mode)
	if order != "" {
		items = h.store.SortMessages(order, items)
	}
	h.writeJSON(w, http.StatusOK, items)
}

// MarkMessageRead помечает сообщение прочитанным.
func (h *Handler) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	h.store.MarkMessageRead(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusOK)
}

// ClearMessages удаляет все сообщения.
func (h *Handler) ClearMessages(w http.ResponseWriter, r *http.Request) {
	h.store.ClearMessages()
	w.WriteHeader(http.StatusNoContent)
}

// projectionParams разбирает параметры filter и sort. Пустой filter означает
// "all", пустой sort — без сортировки.
func projectionParams(r *http.Request) (model.FilterMode, model.SortOrder, bool) {
	filter := r.URL.Query().Get("filter")
	if filter == "" {
		filter = string(model.FilterAll)
	}
	if !validation.IsValidFilterMode(filter) {
		return "", "", false
	}

	sortParam := r.URL.Query().Get("sort")
	if sortParam != "" && !validation.IsValidSortOrder(sortParam) {
		return "", "", false
	}

	return model.FilterMode(filter), model.SortOrder(sortParam), true
}

type addOrderRequest struct {
	Status string `json:"status"`
}

// AddOrder создаёт демонстрационный заказ с указанным статусом.
func (h *Handler) AddOrder(w http.ResponseWriter, r *http.Request) {
	var req addOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if !validation.IsValidOrderStatus(req.Status) {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	created := h.store.AddOrder(model.OrderStatus(req.Status))
	h.writeJSON(w, http.StatusCreated, created)
}

// RemoveOrder удаляет заказ из коллекции указанного статуса.
// Отсутствующий заказ не является ошибкой.
func (h *Handler) RemoveOrder(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if !validation.IsValidOrderStatus(status) {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	h.store.RemoveOrder(chi.URLParam(r, "id"), model.OrderStatus(status))
	w.WriteHeader(http.StatusNoContent)
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus переносит заказ в коллекцию нового статуса.
func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req updateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if !validation.IsValidOrderStatus(req.Status) {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	h.store.UpdateOrderStatus(chi.URLParam(r, "id"), model.OrderStatus(req.Status))
	w.WriteHeader(http.StatusOK)
}

type updateRevenueRequest struct {
	Total decimal.Decimal `json:"total"`
}

// UpdateRevenue устанавливает новую общую выручку.
func (h *Handler) UpdateRevenue(w http.ResponseWriter, r *http.Request) {
	var req updateRevenueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	h.store.UpdateRevenue(req.Total)
	w.WriteHeader(http.StatusOK)
}

// GetSales возвращает ряд продаж для выбранного диапазона.
func (h *Handler) GetSales(w http.ResponseWriter, r *http.Request) {
	rangeParam := r.URL.Query().Get("range")
	if !validation.IsValidSalesRange(rangeParam) {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	series, ok := h.store.SalesForRange(model.SalesRange(rangeParam))
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	h.writeJSON(w, http.StatusOK, series)
}

type updateSalesRequest struct {
	Today     []float64 `json:"today"`
	Yesterday []float64 `json:"yesterday"`
}

// UpdateSales заменяет почасовые ряды продаж за сегодня и вчера.
func (h *Handler) UpdateSales(w http.ResponseWriter, r *http.Request) {
	var req updateSalesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	h.store.UpdateSalesData(req.Today, req.Yesterday)
	w.WriteHeader(http.StatusOK)
}

type searchRequest struct {
	Query string `json:"query"`
}

// SetSearch сохраняет текущий поисковый запрос.
func (h *Handler) SetSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	h.store.SetSearchQuery(req.Query)
	w.WriteHeader(http.StatusOK)
}
