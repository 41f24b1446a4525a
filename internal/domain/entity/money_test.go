package entity

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountsMarshalAsFixedNumbers(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"order cod amount", Order{Barcode: "B-1", CODAmount: decimal.NewFromInt(150)}, `"cod_amount":150.00`},
		{"order pointer", &Order{CODAmount: decimal.RequireFromString("19.999")}, `"cod_amount":20.00`},
		{"product price", Product{Name: "Tea", Price: decimal.RequireFromString("12.5")}, `"price":12.50`},
		{"sheet total", DelegateSheet{SheetBarcode: "S-1"}, `"total_amount":0.00`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(tt.value)
			require.NoError(t, err)

			assert.Contains(t, string(raw), tt.want)
			assert.NotContains(t, string(raw), `"plain"`)
		})
	}
}

func TestOrderJSONKeepsOtherFields(t *testing.T) {
	raw, err := json.Marshal(Order{Barcode: "B-1", Status: OrderStatusEntered, CODAmount: decimal.NewFromInt(5)})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "B-1", got["barcode"])
	assert.Equal(t, "entered", got["status"])
	assert.InDelta(t, 5.0, got["cod_amount"], 0)

	var back Order
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, back.CODAmount.Equal(decimal.NewFromInt(5)))
}
