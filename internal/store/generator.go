package store

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Generator порождает данные демонстрационных заказов. Вынесен в интерфейс,
// чтобы тесты могли подставить детерминированную реализацию.
type Generator interface {
	// NewID возвращает новый уникальный идентификатор.
	NewID() string
	// Customer возвращает имя покупателя.
	Customer() string
	// Amount возвращает сумму заказа.
	Amount() decimal.Decimal
}

type randomGenerator struct{}

// NewRandomGenerator создаёт генератор со случайными данными: uuid в качестве
// идентификатора, покупатель с числовым суффиксом и сумма из [100, 1100).
func NewRandomGenerator() Generator {
	return randomGenerator{}
}

func (randomGenerator) NewID() string {
	return uuid.NewString()
}

func (randomGenerator) Customer() string {
	return fmt.Sprintf("Customer %d", rand.IntN(10000))
}

func (randomGenerator) Amount() decimal.Decimal {
	return decimal.NewFromInt(rand.Int64N(1000) + 100)
}
