package receipt

import (
	"testing"

	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestExtractAmount(t *testing.T) {
	t.Run("Prefers the total line", func(t *testing.T) {
		text := "Corner Cafe\nItem 12.00\nItem 3.50\nTotal 1,250.50\nThank you"
		assert.Equal(t, "1250.50", extractAmount(text))
	})

	t.Run("Currency marker counts as an amount line", func(t *testing.T) {
		assert.Equal(t, "480.00", extractAmount("Corner Cafe\nLKR 480\nVisit again"))
	})

	t.Run("Invoice lines never win", func(t *testing.T) {
		text := "Invoice Total 2024009175512\nItem 45.00\nItem 30.00"
		assert.Equal(t, "45.00", extractAmount(text))
	})

	t.Run("Falls back to the largest number", func(t *testing.T) {
		assert.Equal(t, "310.00", extractAmount("Corner Cafe\n120.50\n310\n75.25"))
	})

	t.Run("Discards implausibly long numbers", func(t *testing.T) {
		assert.Equal(t, "85.00", extractAmount("Ref 94550112233445\n85.00"))
	})

	t.Run("No numbers at all", func(t *testing.T) {
		assert.Equal(t, "0.00", extractAmount("Thank you for your visit"))
	})
}

func TestExtractMerchant(t *testing.T) {
	assert.Equal(t, "Corner Cafe", extractMerchant("\n  Corner Cafe  \nTotal 10.00"))
	assert.Equal(t, "Unknown", extractMerchant("   \n  "))
}

func TestExtractCategory(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		want     string
		wantType entity.CategoryType
	}{
		{"Default name match", "Monthly salary payment received", "Salary", entity.TypeIncome},
		{"Topic bucket match", "Espresso and coffee to go", "Food", entity.TypeExpense},
		{"Fuel bucket", "Petrol station receipt", "Fuel", entity.TypeExpense},
		{"Investment income", "Quarterly dividend statement", "Investments", entity.TypeIncome},
		{"Nothing matches", "Miscellaneous purchase", "Uncategorized", entity.TypeExpense},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, catType := extractCategory(tt.text)
			assert.Equal(t, tt.want, name)
			assert.Equal(t, tt.wantType, catType)
		})
	}
}
