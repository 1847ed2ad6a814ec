package store

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestRandomGenerator_IDsUnique(t *testing.T) {
	gen := NewRandomGenerator()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := gen.NewID()
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestRandomGenerator_AmountRange(t *testing.T) {
	gen := NewRandomGenerator()

	low := decimal.NewFromInt(100)
	high := decimal.NewFromInt(1100)
	for i := 0; i < 100; i++ {
		amount := gen.Amount()
		if amount.LessThan(low) || amount.GreaterThanOrEqual(high) {
			t.Fatalf("amount %s outside [100, 1100)", amount)
		}
	}
}

func TestRandomGenerator_CustomerShape(t *testing.T) {
	gen := NewRandomGenerator()

	for i := 0; i < 10; i++ {
		c := gen.Customer()
		if !strings.HasPrefix(c, "Customer ") {
			t.Fatalf("customer = %q", c)
		}
	}
}
