package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmeshcher/dashboard-system/internal/model"
)

// DefaultSnapshot возвращает начальное состояние дашборда: пустые уведомления
// и заказы, предзаполненный ящик сообщений и демонстрационные данные выручки
// и продаж.
func DefaultSnapshot() model.Snapshot {
	return model.Snapshot{
		SchemaVersion:  model.SchemaVersion,
		Notifications:  []model.Notification{},
		UnreadCount:    0,
		Messages:       seedMessages(),
		UnreadMessages: 7,
		Orders: model.OrderBook{
			New:     []model.Order{},
			Pending: []model.Order{},
			Shipped: []model.Order{},
		},
		Revenue: model.Revenue{
			Total:          decimal.NewFromInt(45365),
			ChangeIncrease: decimal.NewFromInt(1294),
			ChangeDecrease: decimal.NewFromInt(1294),
		},
		SalesData:     seedSalesData(),
		SearchQuery:   "",
		SearchResults: []model.SearchResult{},
	}
}

func seedMessages() []model.Message {
	seeded := time.Date(2024, time.January, 20, 11, 43, 36, 0, time.UTC)

	entries := []struct {
		sender  string
		content string
		avatar  string
		offset  time.Duration
	}{
		{"John Smith", "Your order #4721 has been shipped", "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=256&h=256&fit=facearea", 0},
		{"Sarah Johnson", "New product inquiry for Electronics category", "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=256&h=256&fit=facearea", -2 * time.Second},
		{"Mike Wilson", "Customer support request #89123", "https://images.unsplash.com/photo-1519244703995-f4e0f30006d5?w=256&h=256&fit=facearea", -3 * time.Second},
		{"Emily Davis", "Inventory update required for SKU-789", "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=256&h=256&fit=facearea", -4 * time.Second},
		{"Alex Brown", "Payment confirmation for order #5832", "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=256&h=256&fit=facearea", -4 * time.Second},
		{"Lisa Anderson", "New feature request from client", "https://images.unsplash.com/photo-1534528741775-53994a69daeb?w=256&h=256&fit=facearea", -5 * time.Second},
		{"David Miller", "Weekly sales report available", "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=256&h=256&fit=facearea", -6 * time.Second},
	}

	messages := make([]model.Message, 0, len(entries))
	for i, e := range entries {
		messages = append(messages, model.Message{
			ID:        string(rune('1' + i)),
			Sender:    e.sender,
			Content:   e.content,
			Avatar:    e.avatar,
			Timestamp: seeded.Add(e.offset),
		})
	}
	return messages
}

func seedSalesData() model.SalesData {
	return model.SalesData{
		// Почасовые ряды за сегодня и вчера.
		Today:     []float64{20, 5, -15, 25, -5},
		Yesterday: []float64{15, 45, 65, 15, 50},
		Labels:    []string{"9AM", "12PM", "3PM", "6PM", "9PM"},
		Weekly: model.SalesSeries{
			Current:  []float64{32500, 36800, 42100, 38900, 45200, 35600, 31200},
			Previous: []float64{30200, 34500, 39800, 36500, 42900, 33200, 29800},
			Labels:   []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		},
		Monthly: model.SalesSeries{
			Current:  []float64{245000, 268000, 292000, 315000},
			Previous: []float64{235000, 255000, 278000, 298000},
			Labels:   []string{"Week 1", "Week 2", "Week 3", "Week 4"},
		},
		Quarterly: model.SalesSeries{
			Current:  []float64{980000, 1050000, 1150000, 1080000, 1180000, 1250000, 1320000, 1280000, 1420000, 1380000, 1450000, 1520000},
			Previous: []float64{920000, 980000, 1080000, 1020000, 1120000, 1180000, 1250000, 1220000, 1350000, 1320000, 1380000, 1450000},
			Labels:   []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		},
	}
}
