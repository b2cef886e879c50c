package utils

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderID(t *testing.T) {
	t.Run("Format", func(t *testing.T) {
		id := GenerateOrderID()

		assert.Len(t, id, orderIDLength, "Order id should be 9 chars")
		for _, c := range id {
			assert.True(t, strings.ContainsRune(base36Alphabet, c),
				"Order id should only contain base36 characters")
		}
	})

	t.Run("Uniqueness", func(t *testing.T) {
		id1 := GenerateOrderID()
		id2 := GenerateOrderID()
		assert.NotEqual(t, id1, id2, "Consecutive order ids should be different")
	})
}

func TestFormatAmount(t *testing.T) {
	t.Run("Whole amount", func(t *testing.T) {
		assert.Equal(t, "P116.00", FormatAmount("P", decimal.NewFromInt(116)))
	})

	t.Run("Fractional amount", func(t *testing.T) {
		assert.Equal(t, "₱38.50", FormatAmount("₱", decimal.NewFromFloat(38.5)))
	})

	t.Run("Zero", func(t *testing.T) {
		assert.Equal(t, "P0.00", FormatAmount("P", decimal.Zero))
	})
}
