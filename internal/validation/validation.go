// Package validation содержит функции валидации входных данных.
package validation

import "github.com/mmeshcher/dashboard-system/internal/model"

// IsValidOrderStatus проверяет, что строка является известным статусом заказа.
func IsValidOrderStatus(s string) bool {
	switch model.OrderStatus(s) {
	case model.OrderStatusNew, model.OrderStatusPending, model.OrderStatusShipped:
		return true
	}
	return false
}

// IsValidNotificationKind проверяет, что строка является известным типом уведомления.
func IsValidNotificationKind(s string) bool {
	switch model.NotificationKind(s) {
	case model.NotificationKindMessage, model.NotificationKindAlert:
		return true
	}
	return false
}

// IsValidFilterMode проверяет, что строка является известным режимом фильтрации.
func IsValidFilterMode(s string) bool {
	switch model.FilterMode(s) {
	case model.FilterAll, model.FilterUnread, model.FilterRead:
		return true
	}
	return false
}

// IsValidSortOrder проверяет, что строка является известным порядком сортировки.
func IsValidSortOrder(s string) bool {
	switch model.SortOrder(s) {
	case model.SortNewest, model.SortOldest:
		return true
	}
	return false
}

// IsValidSalesRange проверяет, что строка является известным диапазоном графика продаж.
func IsValidSalesRange(s string) bool {
	switch model.SalesRange(s) {
	case model.SalesRangeDay, model.SalesRangeWeek, model.SalesRangeMonth, model.SalesRangeQuarter:
		return true
	}
	return false
}
