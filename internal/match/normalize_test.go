package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAlias(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"StoreID", "storeid"},
		{"store_id", "storeid"},
		{"store-id", "storeid"},
		{"Store ID", "storeid"},
		{"store.id", "storeid"},
		{"STORE_ID", "storeid"},
		{"unitPrice", "unitprice"},
		{"SKUCode", "skucode"},
		{"", ""},
		{"a", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeAlias(tt.input))
		})
	}
}

func TestTokenizeCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"StoreID", []string{"Store", "ID"}},
		{"unitPrice", []string{"unit", "Price"}},
		{"SKUCode", []string{"SKU", "Code"}},
		{"sales date", []string{"sales", "date"}},
		{"order__id", []string{"order", "id"}},
		{"ALLCAPS", []string{"ALLCAPS"}},
		{"", nil},
		{"AbC", []string{"Ab", "C"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, tokenizeCamelCase(tt.input))
		})
	}
}
