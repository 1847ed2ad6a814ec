// Package model содержит доменные сущности дашборда магазина.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SchemaVersion — текущая версия схемы сохраняемого снимка состояния.
const SchemaVersion = 1

// NotificationKind описывает тип уведомления.
type NotificationKind string

const (
	NotificationKindMessage NotificationKind = "message"
	NotificationKindAlert   NotificationKind = "alert"
)

// Notification представляет системное уведомление о событии в магазине.
type Notification struct {
	ID        string           `json:"id"`
	Message   string           `json:"message"`
	Kind      NotificationKind `json:"kind"`
	IsRead    bool             `json:"is_read"`
	Timestamp time.Time        `json:"timestamp"`
}

// Message представляет входящее сообщение от клиента или сотрудника.
type Message struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	IsRead    bool      `json:"is_read"`
	Timestamp time.Time `json:"timestamp"`
	Avatar    string    `json:"avatar,omitempty"`
}

// OrderStatus описывает статус обработки заказа.
type OrderStatus string

const (
	OrderStatusNew     OrderStatus = "new"
	OrderStatusPending OrderStatus = "pending"
	OrderStatusShipped OrderStatus = "shipped"
)

// Order описывает заказ покупателя.
type Order struct {
	ID       string          `json:"id"`
	Status   OrderStatus     `json:"status"`
	Amount   decimal.Decimal `json:"amount"`
	Customer string          `json:"customer"`
	Date     time.Time       `json:"date"`
}

// OrderBook — разбиение заказов на три непересекающиеся коллекции по статусу.
// Заказ физически находится ровно в одной коллекции; смена статуса —
// это перенос между коллекциями, а не правка поля.
type OrderBook struct {
	New     []Order `json:"new"`
	Pending []Order `json:"pending"`
	Shipped []Order `json:"shipped"`
}

// Revenue содержит общую выручку и последние изменения в обе стороны.
// ChangeIncrease и ChangeDecrease хранят последнее наблюдаемое изменение
// соответствующего знака, а не максимальное.
type Revenue struct {
	Total          decimal.Decimal `json:"total"`
	ChangeIncrease decimal.Decimal `json:"change_increase"`
	ChangeDecrease decimal.Decimal `json:"change_decrease"`
}

// SalesSeries — пара числовых рядов с подписями для графика продаж.
type SalesSeries struct {
	Current  []float64 `json:"current"`
	Previous []float64 `json:"previous"`
	Labels   []string  `json:"labels"`
}

// SalesData содержит четыре независимых ряда продаж разной детализации.
// Ряды не агрегируются друг из друга: каждый поставляется отдельно.
type SalesData struct {
	Today     []float64   `json:"today"`
	Yesterday []float64   `json:"yesterday"`
	Labels    []string    `json:"labels"`
	Weekly    SalesSeries `json:"weekly"`
	Monthly   SalesSeries `json:"monthly"`
	Quarterly SalesSeries `json:"quarterly"`
}

// SalesRange описывает выбор диапазона графика продаж.
type SalesRange string

const (
	SalesRangeDay     SalesRange = "24h"
	SalesRangeWeek    SalesRange = "7d"
	SalesRangeMonth   SalesRange = "30d"
	SalesRangeQuarter SalesRange = "90d"
)

// FilterMode описывает режим фильтрации уведомлений и сообщений.
type FilterMode string

const (
	FilterAll    FilterMode = "all"
	FilterUnread FilterMode = "unread"
	FilterRead   FilterMode = "read"
)

// SortOrder описывает порядок сортировки по времени.
type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
)

// SearchResult описывает элемент результатов поиска.
type SearchResult struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// Snapshot — полное состояние дашборда на один момент времени.
// Заменяется целиком при каждой мутации; Version растёт на единицу
// с каждой зафиксированной мутацией.
type Snapshot struct {
	SchemaVersion  int            `json:"schema_version"`
	Version        uint64         `json:"version"`
	Notifications  []Notification `json:"notifications"`
	UnreadCount    int            `json:"unread_count"`
	Messages       []Message      `json:"messages"`
	UnreadMessages int            `json:"unread_messages"`
	Orders         OrderBook      `json:"orders"`
	Revenue        Revenue        `json:"revenue"`
	SalesData      SalesData      `json:"sales_data"`
	SearchQuery    string         `json:"search_query"`
	SearchResults  []SearchResult `json:"search_results"`
}
