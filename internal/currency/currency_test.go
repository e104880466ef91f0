package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSymbolFormatter_Format(t *testing.T) {
	tests := []struct {
		name   string
		symbol string
		places int32
		amount string
		want   string
	}{
		{name: "dollar two places", symbol: "$", places: 2, amount: "9.99", want: "$9.99"},
		{name: "rounds half up", symbol: "$", places: 2, amount: "9.995", want: "$10.00"},
		{name: "pads to precision", symbol: "€", places: 2, amount: "24", want: "€24.00"},
		{name: "zero places", symbol: "¥", places: 0, amount: "1200.4", want: "¥1200"},
		{name: "negative amount", symbol: "$", places: 2, amount: "-5", want: "$-5.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewSymbolFormatter(tt.symbol, tt.places)
			assert.Equal(t, tt.want, f.Format(decimal.RequireFromString(tt.amount)))
		})
	}
}
