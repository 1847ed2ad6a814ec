// Package store реализует хранилище состояния дашборда магазина.
//
// Хранилище владеет всеми сущностями единолично: потребители получают
// состояние только в виде снимков-значений и мутируют его только через
// публичные операции. Каждая мутация строит новый снимок (copy-on-write)
// и атомарно заменяет им текущий.
package store

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmeshcher/dashboard-system/internal/model"
)

// Subscriber вызывается синхронно после каждой зафиксированной мутации
// с новым снимком состояния.
type Subscriber func(model.Snapshot)

// Store — хранилище состояния дашборда. Создаётся через New; один экземпляр
// на процесс в проде, отдельный экземпляр на тест.
type Store struct {
	mu          sync.RWMutex
	state       model.Snapshot
	gen         Generator
	now         func() time.Time
	clampUnread bool
	subs        []Subscriber
}

// Option настраивает создаваемое хранилище.
type Option func(*Store)

// WithGenerator задаёт генератор демонстрационных данных заказов.
func WithGenerator(g Generator) Option {
	return func(s *Store) { s.gen = g }
}

// WithClock задаёт источник времени.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithUnreadClamp включает ограничение счётчиков непрочитанного снизу нулём.
// По умолчанию счётчики ведут себя как в исходной системе: пометка
// отсутствующего или уже прочитанного элемента всё равно уменьшает счётчик,
// и он может уйти в минус.
func WithUnreadClamp() Option {
	return func(s *Store) { s.clampUnread = true }
}

// WithState задаёт начальное состояние, например загруженный снимок.
func WithState(snap model.Snapshot) Option {
	return func(s *Store) { s.state = snap }
}

// New создаёт хранилище с начальным состоянием по умолчанию.
func New(opts ...Option) *Store {
	s := &Store{
		state: DefaultSnapshot(),
		gen:   NewRandomGenerator(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot возвращает текущее состояние целиком.
func (s *Store) Snapshot() model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe регистрирует подписчика, вызываемого после каждой мутации.
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// mutate выполняет операцию над копией состояния и, если операция сообщила
// об изменении, фиксирует новый снимок и оповещает подписчиков.
func (s *Store) mutate(fn func(cur model.Snapshot) (model.Snapshot, bool)) {
	s.mu.Lock()
	next, changed := fn(s.state)
	if !changed {
		s.mu.Unlock()
		return
	}
	next.Version = s.state.Version + 1
	s.state = next

	subs := make([]Subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub(next)
	}
}

// AddNotification добавляет непрочитанное уведомление в начало списка.
func (s *Store) AddNotification(message string, kind model.NotificationKind) model.Notification {
	var created model.Notification
	s.mutate(func(cur model.Snapshot) (model.Snapshot, bool) {
		created = s.pushNotification(&cur, message, kind)
		return cur, true
	})
	return created
}

// pushNotification вставляет уведомление в начало списка внутри снимка.
// Вызывается только из-под mutate.
func (s *Store) pushNotification(cur *model.Snapshot, message string, kind model.NotificationKind) model.Notification {
	n := model.Notification{
		ID:        s.gen.NewID(),
		Message:   message,
		Kind:      kind,
		Timestamp: s.now(),
	}
	cur.Notifications = append([]model.Notification{n}, cur.Notifications...)
	cur.UnreadCount++
	return n
}

// MarkNotificationRead помечает уведомление прочитанным. Счётчик
// непрочитанного уменьшается безусловно, как в исходной системе,
// если не включён WithUnreadClamp.
func (s *Store) MarkNotificationRead(id string) {
	s.mutate(func(cur model.Snapshot) (model.Snapshot, bool) {
		items := make([]model.Notification, len(cur.Notifications))
		copy(items, cur.Notifications)
		for i := range items {
			if items[i].ID == id {
				items[i].IsRead = true
			}
		}
		cur.Notifications = items
		cur.UnreadCount = s.decrementUnread(cur.UnreadCount)
		return cur, true
	})
}

// ClearNotifications удаляет все уведомления и обнуляет счётчик.
func (s *Store) ClearNotifications() {
	s.mutate(func(cur model.Snapshot) (model.Snapshot, bool) {
		cur.Notifications = []model.Notification{}
		cur.UnreadCount = 0
		return cur, true
	})
}

// FilterNotifications возвращает проекцию уведомлений без мутации состояния.
func (s *Store) FilterNotifications(mode model.FilterMode) []model.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Notification, 0, len(s.state.Notifications))
	for _, n := range s.state.Notifications {
		switch mode {
		case model.FilterUnread:
			if n.IsRead {
				continue
			}
		case model.FilterRead:
			if !n.IsRead {
				continue
			}
		}
		out = append(out, n)
	}
	return out
}

// SortNotifications возвращает отсортированную по времени копию переданного
// набора либо, если items == nil, всех уведомлений. Сортировка устойчивая:
// элементы с равным временем сохраняют исходный относительный порядок.
func (s *Store) SortNotifications(order model.SortOrder, items []model.Notification) []model.Notification {
	if items == nil {
		s.mu.RLock()
		items = s.state.Notifications
		s.mu.RUnlock()
	}

	out := make([]model.Notification, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		if order == model.SortOldest {
			return out[i].Timestamp.Before(out[j].Timestamp)
		}
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// AddMessage добавляет непрочитанное сообщение в начало списка.
func (s *Store) AddMessage(sender, content, avatar string) model.Message {
	var created model.Message
	s.mutate(func(cur model.Snapshot) (model.Snapshot, bool) {
		created = model.Message{
			ID:        s.gen.NewID(),
			Sender:    sender,
			Content:   content,
			Avatar:    avatar,
			Timestamp: s.now(),
		}
		cur.Messages = append([]model.Message{created}, cur.Messages...)
		cur.UnreadMessages++
		return cur, true
	})
	return created
}

// MarkMessageRead помечает сообщение прочитанным. Счётчик ведёт себя
// так же, как у уведомлений.
func (s *Store) MarkMessageRead(id string) {
	s.mutate(func(cur model.Snapshot) (model.Snapshot, bool) {
		items := make([]model.Message, len(cur.Messages))
		copy(items, cur.Messages)
		for i := range items {
			if items[i].ID == id {
				items[i].IsRead = true
			}
		}
		cur.Messages = items
		cur.UnreadMessages = s.decrementUnread(cur.UnreadMessages)
		return cur, true
	})
}

// ClearMessages удаляет все сообщения и обнуляет счётчик.
func (s *Store) ClearMessages() {
	s.mutate(func(cur model.Snapshot) (model.Snapshot, bool) {
		cur.Messages = []model.Message{}
		cur.UnreadMessages = 0
		return cur, true
	})
}

// FilterMessages возвращает проекцию сообщений без мутации состояния.
func (s *Store) FilterMessages(mode model.FilterMode) []model.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Message, 0, len(s.state.Messages))
	for _, m := range s.state.Messages {
		switch mode {
		case model.FilterUnread:
			if m.IsRead {
				continue
			}
		case model.FilterRead:
			if !m.IsRead {
				continue
			}
		}
		out = append(out, m)
	}
	return out
}

// SortMessages возвращает отсортированную по времени копию переданного
// набора либо, если items == nil, всех сообщений.
func (s *Store) SortMessages(order model.SortOrder, items []model.Message) []model.Message {
	if items == nil {
		s.mu.RLock()
		items = s.state.Messages
		s.mu.RUnlock()
	}

	out := make([]model.Message, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		if order == model.SortOldest {
			return out[i].Timestamp.Before(out[j].Timestamp)
		}
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

func (s *Store) decrementUnread(count int) int {
	count--
	if s.clampUnread && count < 0 {
		count = 0
	}
	return count
}

// AddOrder создаёт заказ с указанным статусом. Идентификатор, дата, сумма и
// покупатель порождаются генератором: этот сценарий используется дашбордом
// для демонстрационных заказов, внешние данные не принимаются.
// Побочный эффект — уведомление о новом заказе.
func (s *Store) AddOrder(status model.OrderStatus) model.Order {
	var created model.Order
	s.mutate(func(cur model.Snapshot) (model.Snapshot, bool) {
		created = model.Order{
			ID:       s.gen.NewID(),
			Status:   status,
			Amount:   s.gen.Amount(),
			Customer: s.gen.Customer(),
			Date:     s.now(),
		}

		s.pushNotification(&cur,
			fmt.Sprintf("New %s order #%s from %s", status, shortID(created.ID), created.Customer),
			model.NotificationKindAlert,
		)

		cur.Orders = insertOrder(cur.Orders, created)
		return cur, true
	})
	return created
}

// RemoveOrder удаляет заказ из коллекции указанного статуса.
// Отсутствие заказа — не ошибка: операция молча ничего не делает.
func (s *Store) RemoveOrder(id string, status model.OrderStatus) {
	s.mutate(func(cur model.Snapshot) (model.Snapshot, bool) {
		list := ordersFor(cur.Orders, status)
		filtered := make([]model.Order, 0, len(list))
		for _, o := range list {
			if o.ID != id {
				filtered = append(filtered, o)
			}
		}
		if len(filtered) == len(list) {
			return cur, false
		}
		cur.Orders = setOrders(cur.Orders, status, filtered)
		return cur, true
	})
}

// UpdateOrderStatus переносит заказ в коллекцию нового статуса и добавляет
// уведомление о переносе. Если заказ не найден ни в одной коллекции,
// состояние не меняется. Переход в текущий статус разрешён и переставляет
// заказ в начало коллекции. Допустимость перехода хранилище не проверяет:
// это зона ответственности вызывающего.
func (s *Store) UpdateOrderStatus(id string, newStatus model.OrderStatus) {
	s.mutate(func(cur model.Snapshot) (model.Snapshot, bool) {
		var (
			found     model.Order
			oldStatus model.OrderStatus
			ok        bool
		)
		for _, status := range []model.OrderStatus{model.OrderStatusNew, model.OrderStatusPending, model.OrderStatusShipped} {
			for _, o := range ordersFor(cur.Orders, status) {
				if o.ID == id {
					found, oldStatus, ok = o, status, true
					break
				}
			}
			if ok {
				break
			}
		}
		if !ok {
			return cur, false
		}

		s.pushNotification(&cur,
			fmt.Sprintf("Order %s moved from %s to %s", id, oldStatus, newStatus),
			model.NotificationKindMessage,
		)

		src := ordersFor(cur.Orders, oldStatus)
		remaining := make([]model.Order, 0, len(src))
		for _, o := range src {
			if o.ID != id {
				remaining = append(remaining, o)
			}
		}
		cur.Orders = setOrders(cur.Orders, oldStatus, remaining)

		found.Status = newStatus
		cur.Orders = insertOrder(cur.Orders, found)
		return cur, true
	})
}

// UpdateRevenue устанавливает новую общую выручку. Положительная разница
// записывается в ChangeIncrease, отрицательная — по модулю в ChangeDecrease;
// поле противоположного знака не трогается. Нулевая разница не меняет
// ни одно из полей изменений. Значения заменяются, а не накапливаются.
func (s *Store) UpdateRevenue(newTotal decimal.Decimal) {
	s.mutate(func(cur model.Snapshot) (model.Snapshot, bool) {
		delta := newTotal.Sub(cur.Revenue.Total)
		rev := cur.Revenue
		rev.Total = newTotal
		switch {
		case delta.IsPositive():
			rev.ChangeIncrease = delta
		case delta.IsNegative():
			rev.ChangeDecrease = delta.Abs()
		}
		cur.Revenue = rev
		return cur, true
	})
}

// UpdateSalesData заменяет два самых детальных ряда продаж. Недельный,
// месячный и квартальный ряды не пересчитываются и сохраняют прежние
// значения; отсутствующие ряды заменяются пустыми.
func (s *Store) UpdateSalesData(today, yesterday []float64) {
	s.mutate(func(cur model.Snapshot) (model.Snapshot, bool) {
		sd := cur.SalesData
		sd.Today = append([]float64{}, today...)
		sd.Yesterday = append([]float64{}, yesterday...)
		if sd.Labels == nil {
			sd.Labels = []string{}
		}
		sd.Weekly = normalizeSeries(sd.Weekly)
		sd.Monthly = normalizeSeries(sd.Monthly)
		sd.Quarterly = normalizeSeries(sd.Quarterly)
		cur.SalesData = sd
		return cur, true
	})
}

// SalesForRange возвращает ряд продаж для выбранного диапазона.
// Второе значение false для неизвестного диапазона.
func (s *Store) SalesForRange(r model.SalesRange) (model.SalesSeries, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sd := s.state.SalesData
	switch r {
	case model.SalesRangeDay:
		return model.SalesSeries{Current: sd.Today, Previous: sd.Yesterday, Labels: sd.Labels}, true
	case model.SalesRangeWeek:
		return sd.Weekly, true
	case model.SalesRangeMonth:
		return sd.Monthly, true
	case model.SalesRangeQuarter:
		return sd.Quarterly, true
	}
	return model.SalesSeries{}, false
}

// SetSearchQuery сохраняет поисковый запрос. Вычисление результатов поиска
// не реализовано: список результатов остаётся пустым.
func (s *Store) SetSearchQuery(query string) {
	s.mutate(func(cur model.Snapshot) (model.Snapshot, bool) {
		cur.SearchQuery = query
		return cur, true
	})
}

func normalizeSeries(series model.SalesSeries) model.SalesSeries {
	if series.Current == nil {
		series.Current = []float64{}
	}
	if series.Previous == nil {
		series.Previous = []float64{}
	}
	if series.Labels == nil {
		series.Labels = []string{}
	}
	return series
}

func ordersFor(book model.OrderBook, status model.OrderStatus) []model.Order {
	switch status {
	case model.OrderStatusPending:
		return book.Pending
	case model.OrderStatusShipped:
		return book.Shipped
	default:
		return book.New
	}
}

func setOrders(book model.OrderBook, status model.OrderStatus, orders []model.Order) model.OrderBook {
	switch status {
	case model.OrderStatusPending:
		book.Pending = orders
	case model.OrderStatusShipped:
		book.Shipped = orders
	default:
		book.New = orders
	}
	return book
}

func insertOrder(book model.OrderBook, order model.Order) model.OrderBook {
	list := ordersFor(book, order.Status)
	return setOrders(book, order.Status, append([]model.Order{order}, list...))
}

func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
